package models

// ProductionEntry is one machine-operator-design row for a shift. Rows are
// addressed by position inside a shift list, never by an id of their own.
type ProductionEntry struct {
	MC     string  `bson:"mc" json:"mc"`
	Op     string  `bson:"op" json:"op"`
	DS     string  `bson:"ds" json:"ds"`
	Stitch int     `bson:"stitch" json:"stitch"`
	Qty    float64 `bson:"qty" json:"qty"`
	Prc    float64 `bson:"prc" json:"prc"`
}

// ShiftSummary holds the aggregate quantity and monetary value of one shift.
type ShiftSummary struct {
	Qty float64 `bson:"qty" json:"qty"`
	Tk  float64 `bson:"tk" json:"tk"`
}

// Workspace is the currently-being-edited, not-yet-saved day/night entry
// set. It lives in a single well-known document slot and is mirrored live
// to every connected client.
type Workspace struct {
	Day   []ProductionEntry `bson:"day" json:"day"`
	Night []ProductionEntry `bson:"night" json:"night"`
}

// DefaultWorkspace returns a workspace with one blank row per shift, the
// state the editor starts from and resets to.
func DefaultWorkspace() Workspace {
	return Workspace{
		Day:   []ProductionEntry{{MC: "01", Op: "Operator", DS: "Design"}},
		Night: []ProductionEntry{{MC: "01", Op: "Operator", DS: "Design"}},
	}
}

// HistoryRecord is a saved snapshot of a full day's production. ID is a
// client-visible millisecond timestamp; DocID is the opaque store document
// id used for update and delete addressing. The cached summaries and grand
// totals must stay equal to what DayData/NightData derive to, so every
// write path recomputes them before persisting.
type HistoryRecord struct {
	DocID        string            `bson:"_id,omitempty" json:"docId,omitempty"`
	ID           int64             `bson:"id" json:"id"`
	Date         string            `bson:"date" json:"date"`
	Timestamp    string            `bson:"timestamp" json:"timestamp"`
	TotalQty     float64           `bson:"totalQty" json:"totalQty"`
	TotalTk      float64           `bson:"totalTk" json:"totalTk"`
	DayData      []ProductionEntry `bson:"dayData" json:"dayData"`
	NightData    []ProductionEntry `bson:"nightData" json:"nightData"`
	DaySummary   ShiftSummary      `bson:"daySummary" json:"daySummary"`
	NightSummary ShiftSummary      `bson:"nightSummary" json:"nightSummary"`
}
