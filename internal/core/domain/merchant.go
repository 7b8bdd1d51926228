package domain

import "github.com/shopspring/decimal"

// CounterpartyKind distinguishes trading merchants from karigars (artisans).
type CounterpartyKind string

const (
	CounterpartyMerchant CounterpartyKind = "merchant"
	CounterpartyKarigar  CounterpartyKind = "karigar"
)

// Merchant is a counterparty. TotalDue and TotalOwe are the opening balance declared when
// the account was created; everything after that is replayed from trades.
type Merchant struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Kind     CounterpartyKind `json:"kind"`
	Phone    string           `json:"phone"`
	TotalDue decimal.Decimal  `json:"totalDue"` // owed to us
	TotalOwe decimal.Decimal  `json:"totalOwe"` // owed by us
	AuditFields
}
