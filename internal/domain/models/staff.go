package models

// Staff represents one payroll entry. Salary is the fixed monthly wage;
// Present counts days attended in the current period and Advance is cash
// already disbursed against this month's pay.
type Staff struct {
	ID      string  `bson:"_id" json:"id"`
	Name    string  `bson:"name" json:"name"`
	Role    string  `bson:"role" json:"role"`
	Salary  float64 `bson:"salary" json:"salary"`
	Advance float64 `bson:"advance" json:"advance"`
	Present int     `bson:"present" json:"present"`
	OTHours float64 `bson:"otHours" json:"otHours"`
	OTRate  float64 `bson:"otRate" json:"otRate"`
}

// MaxPresentDays bounds the attendance counter for the increment and
// decrement operations. Direct field updates are not clamped.
const MaxPresentDays = 31
