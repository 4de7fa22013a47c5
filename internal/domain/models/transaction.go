package models

// TransactionType discriminates ledger entries.
type TransactionType string

const (
	TransactionEarn    TransactionType = "earn"
	TransactionExpense TransactionType = "expense"
)

// Transaction is one cash movement in the ledger.
type Transaction struct {
	ID     string          `bson:"_id,omitempty" json:"id"`
	Date   string          `bson:"date" json:"date"`
	Name   string          `bson:"name" json:"name"`
	Amount float64         `bson:"amount" json:"amount"`
	Type   TransactionType `bson:"type" json:"type"`
}
