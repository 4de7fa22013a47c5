package reporting

import "github.com/mmsports/backoffice/internal/domain/models"

// LedgerTotals holds the earn/expense aggregates over the full ledger.
type LedgerTotals struct {
	Earn    float64 `json:"earn"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// SumLedger splits transaction amounts by type and derives the net balance.
// Anything that is not an earn counts as an expense, as the ledger UI does.
func SumLedger(txs []models.Transaction) LedgerTotals {
	var t LedgerTotals
	for _, tx := range txs {
		if tx.Type == models.TransactionEarn {
			t.Earn += tx.Amount
		} else {
			t.Expense += tx.Amount
		}
	}
	t.Net = t.Earn - t.Expense
	return t
}
