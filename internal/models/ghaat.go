package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// GhaatTransaction is a row of the ghaat_transactions table.
type GhaatTransaction struct {
	GhaatID            string              `json:"ghaatID"`
	GhaatType          string              `json:"ghaatType"`
	Category           string              `json:"category"`
	MerchantID         sql.NullString      `json:"merchantID"`
	MerchantName       string              `json:"merchantName"`
	Units              int32               `json:"units"`
	GrossWeightPerUnit decimal.Decimal     `json:"grossWeightPerUnit"`
	Purity             decimal.Decimal     `json:"purity"`
	TotalGrossWeight   decimal.Decimal     `json:"totalGrossWeight"`
	FineGold           decimal.Decimal     `json:"fineGold"`
	LaborType          string              `json:"laborType"`
	LaborAmount        decimal.NullDecimal `json:"laborAmount"`
	GoldGivenFine      decimal.NullDecimal `json:"goldGivenFine"`
	CashPaid           decimal.NullDecimal `json:"cashPaid"`
	AmountReceived     decimal.NullDecimal `json:"amountReceived"`
	GoldReturnedFine   decimal.NullDecimal `json:"goldReturnedFine"`
	RatePerGram        decimal.NullDecimal `json:"ratePerGram"`
	Status             string              `json:"status"`
	GroupID            sql.NullString      `json:"groupID"`
	GroupSize          int32               `json:"groupSize"`
	TransactionDate    sql.NullTime        `json:"transactionDate"`
	AuditFields
}
