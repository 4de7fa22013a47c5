package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmsports/backoffice/internal/domain/models"
)

const dateLayout = "2006-01-02"

// DigestInput carries the snapshots the daily digest is derived from.
type DigestInput struct {
	Staff        []models.Staff
	Threads      []models.Thread
	History      []models.HistoryRecord
	Transactions []models.Transaction
	Workspace    models.Workspace
}

// BuildDailyDigest renders the end-of-day status message pushed to the
// alert webhook. Every figure is recomputed from raw records.
func BuildDailyDigest(now time.Time, in DigestInput) string {
	day, night, grandQty, grandTk := WorkspaceTotals(in.Workspace)
	payroll := SumPayroll(in.Staff)
	ledger := SumLedger(in.Transactions)
	lowStock := LowStockCount(in.Threads)

	var b strings.Builder
	fmt.Fprintf(&b, "M.M Sports daily digest (%s)\n", now.Format(dateLayout))
	fmt.Fprintf(&b, "Workspace: %.0f pcs (day %.0f / night %.0f), value Tk %.0f.\n", grandQty, day.Qty, night.Qty, grandTk)
	fmt.Fprintf(&b, "Attendance: %d of %d staff present. Net payable Tk %.0f.\n", PresentCount(in.Staff), len(in.Staff), payroll.Net)
	fmt.Fprintf(&b, "Ledger: earned Tk %.0f, spent Tk %.0f, balance Tk %.0f.\n", ledger.Earn, ledger.Expense, ledger.Net)
	fmt.Fprintf(&b, "Lifetime production value Tk %.0f across %d saved days.\n", TotalProductionValue(in.History), len(in.History))

	if lowStock > 0 {
		fmt.Fprintf(&b, "Low stock: %d thread colors at or below %d units:", lowStock, LowStockSummaryThreshold)
		for _, t := range in.Threads {
			if Available(t) <= LowStockSummaryThreshold {
				fmt.Fprintf(&b, " %s(%d)", t.Code, Available(t))
			}
		}
		b.WriteString(".")
	} else {
		b.WriteString("Thread inventory healthy.")
	}

	return b.String()
}
