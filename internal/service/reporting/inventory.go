package reporting

import "github.com/mmsports/backoffice/internal/domain/models"

// The two low-stock thresholds intentionally differ: the inventory summary
// counts threads at or below 15 while individual rows highlight at or below
// 10. Pending product clarification, both are preserved as-is.
const (
	LowStockSummaryThreshold = 15
	LowStockRowThreshold     = 10
)

// Available is the usable quantity of one thread color.
func Available(t models.Thread) int {
	return t.Stock - t.Out
}

// LowStockCount counts threads at or below the summary threshold.
func LowStockCount(threads []models.Thread) int {
	n := 0
	for _, t := range threads {
		if Available(t) <= LowStockSummaryThreshold {
			n++
		}
	}
	return n
}

// LowStockRow reports whether one row should be flagged in the table view.
func LowStockRow(t models.Thread) bool {
	return Available(t) <= LowStockRowThreshold
}

// NextSN returns the sequence number for a newly added thread.
func NextSN(threads []models.Thread) int {
	max := 0
	for _, t := range threads {
		if t.SN > max {
			max = t.SN
		}
	}
	return max + 1
}
