package models

import "time"

// TransactionKind enumerates the direction of a financial movement.
type TransactionKind string

const (
	KindInflow  TransactionKind = "in"
	KindOutflow TransactionKind = "out"
)

// Transaction captures a single financial movement. Transactions are
// append-only: once recorded they are never mutated or deleted.
type Transaction struct {
	ID          int64
	Kind        TransactionKind
	Category    string
	Description string
	Amount      float64
	Date        time.Time
}

// TransactionCategories is the fixed set of category labels accepted when
// recording a transaction.
var TransactionCategories = []string{
	"Mensalidade",
	"Matrícula",
	"Loja",
	"Outros Gastos",
	"Manutenção",
	"Energia",
	"Aluguel",
	"Limpeza",
	"Marketing",
}

// ValidTransactionCategory reports whether the label belongs to the fixed set.
func ValidTransactionCategory(label string) bool {
	for _, c := range TransactionCategories {
		if c == label {
			return true
		}
	}
	return false
}

// FinancialSummary aggregates ledger totals for the dashboard cards.
type FinancialSummary struct {
	TotalInflow   float64 `json:"total_inflow"`
	TotalOutflow  float64 `json:"total_outflow"`
	NetBalance    float64 `json:"net_balance"`
	MarginPercent float64 `json:"margin_percent"`
}
