package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialRecord is a row of the financial_records table.
type FinancialRecord struct {
	RecordID    string          `json:"recordID"`
	Kind        string          `json:"kind"` // expense | income
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	RecordDate  time.Time       `json:"recordDate"`
	PaymentType string          `json:"paymentType"`
	AuditFields
}
