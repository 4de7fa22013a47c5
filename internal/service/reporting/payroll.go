package reporting

import (
	"math"

	"github.com/mmsports/backoffice/internal/domain/models"
)

// DailyWage is the rounded per-day rate for a fixed monthly salary. The
// month is always counted as 30 days regardless of calendar length.
func DailyWage(s models.Staff) float64 {
	return math.Round(s.Salary / 30)
}

// Earned is attendance pay: daily wage times days present. Present is taken
// as stored; values above 31 or negative advances pass through unchanged.
func Earned(s models.Staff) float64 {
	return DailyWage(s) * float64(s.Present)
}

// Overtime is the overtime payout for the period.
func Overtime(s models.Staff) float64 {
	return s.OTHours * s.OTRate
}

// Net is the net payable for one staff member: attendance pay plus overtime
// minus the advance already disbursed. May be negative.
func Net(s models.Staff) float64 {
	return Earned(s) + Overtime(s) - s.Advance
}

// PayrollTotals aggregates the payroll columns over the whole roster.
type PayrollTotals struct {
	Base    float64 `json:"base"`
	OT      float64 `json:"ot"`
	Advance float64 `json:"advance"`
	Net     float64 `json:"net"`
}

// SumPayroll computes column totals the way the salary sheet shows them.
func SumPayroll(staff []models.Staff) PayrollTotals {
	var t PayrollTotals
	for _, s := range staff {
		t.Base += Earned(s)
		t.OT += Overtime(s)
		t.Advance += s.Advance
		t.Net += Net(s)
	}
	return t
}

// PresentCount counts staff with at least one day of attendance.
func PresentCount(staff []models.Staff) int {
	n := 0
	for _, s := range staff {
		if s.Present > 0 {
			n++
		}
	}
	return n
}
