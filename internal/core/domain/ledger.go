package domain

import "github.com/shopspring/decimal"

// PartyLedgerRow is a trade with the balances immediately after it was applied.
type PartyLedgerRow struct {
	Trade
	RunningDues     decimal.Decimal `json:"runningDues"`
	RunningAdvances decimal.Decimal `json:"runningAdvances"`
}

// PartyLedger is the chronological replay of one merchant's trades.
type PartyLedger struct {
	MerchantID string               `json:"merchantID"`
	OpeningDue decimal.Decimal      `json:"openingDue"`
	OpeningOwe decimal.Decimal      `json:"openingOwe"`
	Rows       []PartyLedgerRow     `json:"rows"`
	ClosingDue decimal.Decimal      `json:"closingDue"`
	ClosingOwe decimal.Decimal      `json:"closingOwe"`
	Warnings   []DataQualityWarning `json:"warnings,omitempty"`
}

// RawGoldLedgerRow is a ledger entry with the fine gold balance right after it.
type RawGoldLedgerRow struct {
	RawGoldLedgerEntry
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// RawGoldStats summarizes the whole, unfiltered raw gold history.
type RawGoldStats struct {
	TotalIn  decimal.Decimal `json:"totalIn"`
	TotalOut decimal.Decimal `json:"totalOut"`
	Balance  decimal.Decimal `json:"balance"`
	Count    int             `json:"count"`
}

// RawGoldLedgerView is a windowed raw gold ledger. Rows are newest first.
type RawGoldLedgerView struct {
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"`
	Rows           []RawGoldLedgerRow   `json:"rows"`
	Stats          RawGoldStats         `json:"stats"`
	Warnings       []DataQualityWarning `json:"warnings,omitempty"`
}
