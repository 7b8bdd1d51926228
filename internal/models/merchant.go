package models

import "github.com/shopspring/decimal"

// Merchant is a row of the merchants table.
type Merchant struct {
	MerchantID string          `json:"merchantID"`
	Name       string          `json:"name"`
	Kind       string          `json:"kind"`
	Phone      string          `json:"phone"`
	TotalDue   decimal.Decimal `json:"totalDue"`
	TotalOwe   decimal.Decimal `json:"totalOwe"`
	AuditFields
}
