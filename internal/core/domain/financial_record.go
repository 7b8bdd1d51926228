package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind separates expense records from income records.
type RecordKind string

const (
	KindExpense RecordKind = "expense"
	KindIncome  RecordKind = "income"
)

// Valid reports whether k is a known record kind.
func (k RecordKind) Valid() bool { return k == KindExpense || k == KindIncome }

// FinancialRecord is a plain cash expense or income entry.
type FinancialRecord struct {
	ID          string          `json:"id"`
	Kind        RecordKind      `json:"kind"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // >= 0
	Date        time.Time       `json:"date"`
	PaymentType string          `json:"paymentType"`
	AuditFields
}
