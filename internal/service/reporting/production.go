package reporting

import "github.com/mmsports/backoffice/internal/domain/models"

// RowValue is the monetary value of one production row.
func RowValue(e models.ProductionEntry) float64 {
	return e.Qty * e.Prc
}

// ShiftTotals sums quantity and value over one shift's rows.
func ShiftTotals(entries []models.ProductionEntry) models.ShiftSummary {
	var sum models.ShiftSummary
	for _, e := range entries {
		sum.Qty += e.Qty
		sum.Tk += RowValue(e)
	}
	return sum
}

// WorkspaceTotals derives both shift summaries and the grand totals for the
// current workspace.
func WorkspaceTotals(ws models.Workspace) (day, night models.ShiftSummary, grandQty, grandTk float64) {
	day = ShiftTotals(ws.Day)
	night = ShiftTotals(ws.Night)
	return day, night, day.Qty + night.Qty, day.Tk + night.Tk
}

// RecomputeHistory refreshes a history record's cached summaries and grand
// totals from its row data. The store never does this on its own, so every
// write path must call it before persisting.
func RecomputeHistory(rec *models.HistoryRecord) {
	rec.DaySummary = ShiftTotals(rec.DayData)
	rec.NightSummary = ShiftTotals(rec.NightData)
	rec.TotalQty = rec.DaySummary.Qty + rec.NightSummary.Qty
	rec.TotalTk = rec.DaySummary.Tk + rec.NightSummary.Tk
}

// TotalProductionValue is the lifetime production value over saved history.
func TotalProductionValue(history []models.HistoryRecord) float64 {
	var total float64
	for _, h := range history {
		total += h.TotalTk
	}
	return total
}
