package reporting

import (
	"testing"

	"github.com/mmsports/backoffice/internal/domain/models"
)

func TestShiftTotals(t *testing.T) {
	entries := []models.ProductionEntry{
		{MC: "01", Op: "Hasan", Qty: 10, Prc: 5},
		{MC: "02", Op: "Riaz", Qty: 3, Prc: 20},
	}

	got := ShiftTotals(entries)
	if got.Qty != 13 {
		t.Errorf("Qty = %v, want 13", got.Qty)
	}
	if got.Tk != 110 {
		t.Errorf("Tk = %v, want 110", got.Tk)
	}

	if got := ShiftTotals(nil); got.Qty != 0 || got.Tk != 0 {
		t.Errorf("empty shift should total zero, got %+v", got)
	}
}

func TestRecomputeHistoryKeepsTotalsInLockstep(t *testing.T) {
	rec := models.HistoryRecord{
		DayData: []models.ProductionEntry{
			{Qty: 10, Prc: 5},
			{Qty: 3, Prc: 20},
		},
		NightData: []models.ProductionEntry{
			{Qty: 7, Prc: 10},
		},
		// Stale cached aggregates that must be overwritten.
		TotalQty:   999,
		TotalTk:    999,
		DaySummary: models.ShiftSummary{Qty: 1, Tk: 1},
	}

	RecomputeHistory(&rec)

	if rec.DaySummary != (models.ShiftSummary{Qty: 13, Tk: 110}) {
		t.Errorf("DaySummary = %+v", rec.DaySummary)
	}
	if rec.NightSummary != (models.ShiftSummary{Qty: 7, Tk: 70}) {
		t.Errorf("NightSummary = %+v", rec.NightSummary)
	}
	if rec.TotalQty != rec.DaySummary.Qty+rec.NightSummary.Qty {
		t.Errorf("TotalQty = %v, summaries add to %v", rec.TotalQty, rec.DaySummary.Qty+rec.NightSummary.Qty)
	}
	if rec.TotalTk != rec.DaySummary.Tk+rec.NightSummary.Tk {
		t.Errorf("TotalTk = %v, summaries add to %v", rec.TotalTk, rec.DaySummary.Tk+rec.NightSummary.Tk)
	}

	// Editing a row and recomputing must keep the invariant.
	rec.NightData[0].Qty = 9
	RecomputeHistory(&rec)
	if rec.TotalQty != 22 || rec.TotalTk != 200 {
		t.Errorf("after edit: TotalQty=%v TotalTk=%v, want 22 and 200", rec.TotalQty, rec.TotalTk)
	}
}

func TestWorkspaceTotals(t *testing.T) {
	ws := models.Workspace{
		Day:   []models.ProductionEntry{{Qty: 100, Prc: 2}},
		Night: []models.ProductionEntry{{Qty: 50, Prc: 3}},
	}

	day, night, grandQty, grandTk := WorkspaceTotals(ws)
	if day.Tk != 200 || night.Tk != 150 {
		t.Errorf("shift values: day=%v night=%v", day.Tk, night.Tk)
	}
	if grandQty != 150 {
		t.Errorf("grandQty = %v, want 150", grandQty)
	}
	if grandTk != 350 {
		t.Errorf("grandTk = %v, want 350", grandTk)
	}
}

func TestTotalProductionValue(t *testing.T) {
	history := []models.HistoryRecord{
		{TotalTk: 1200},
		{TotalTk: 800},
	}
	if got := TotalProductionValue(history); got != 2000 {
		t.Errorf("TotalProductionValue = %v, want 2000", got)
	}
}
