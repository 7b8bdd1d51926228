package domain

import "github.com/shopspring/decimal"

// BracketStock is the net stock of one weight bracket.
type BracketStock struct {
	Label    string          `json:"label"`
	Units    int             `json:"units"`
	FineGold decimal.Decimal `json:"fineGold"`
}

// CategoryStock is the net jewellery stock of a category. Brackets holding nothing are
// omitted, but every transaction still counts towards the totals.
type CategoryStock struct {
	Category      string               `json:"category"`
	Brackets      []BracketStock       `json:"brackets"`
	TotalUnits    int                  `json:"totalUnits"`
	TotalFineGold decimal.Decimal      `json:"totalFineGold"`
	Warnings      []DataQualityWarning `json:"warnings,omitempty"`
}

// JewelleryPnL is a fine-gold denominated profit measure.
type JewelleryPnL struct {
	TotalBuyFineGold  decimal.Decimal      `json:"totalBuyFineGold"`
	TotalSellFineGold decimal.Decimal      `json:"totalSellFineGold"`
	GoldLaborPaid     decimal.Decimal      `json:"goldLaborPaid"`
	NetGoldProfit     decimal.Decimal      `json:"netGoldProfit"`
	Warnings          []DataQualityWarning `json:"warnings,omitempty"`
}

// MerchantJewelleryDues is what a merchant still has to settle for jewellery sales.
type MerchantJewelleryDues struct {
	MerchantID      string               `json:"merchantID"`
	FineGoldPending decimal.Decimal      `json:"fineGoldPending"`
	CashDue         decimal.Decimal      `json:"cashDue"`
	Warnings        []DataQualityWarning `json:"warnings,omitempty"`
}
