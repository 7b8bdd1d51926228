package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Trade is a row of the trades table. Optional amounts are nullable columns.
type Trade struct {
	TradeID             string              `json:"tradeID"`
	TradeType           string              `json:"tradeType"`
	MerchantID          string              `json:"merchantID"`
	MetalType           string              `json:"metalType"`
	Weight              decimal.Decimal     `json:"weight"`
	Rate                decimal.Decimal     `json:"rate"`
	TotalAmount         decimal.Decimal     `json:"totalAmount"`
	AmountPaid          decimal.NullDecimal `json:"amountPaid"`
	AmountReceived      decimal.NullDecimal `json:"amountReceived"`
	SettlementDirection sql.NullString      `json:"settlementDirection"`
	TradeDate           sql.NullTime        `json:"tradeDate"`
	Notes               string              `json:"notes"`
	AuditFields
}
