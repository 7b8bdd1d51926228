package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeType is the kind of economic event a Trade records.
type TradeType string

const (
	TradeBuy        TradeType = "buy"
	TradeSell       TradeType = "sell"
	TradeTransfer   TradeType = "transfer"
	TradeSettlement TradeType = "settlement"
)

// Valid reports whether t is a known trade type.
func (t TradeType) Valid() bool {
	switch t {
	case TradeBuy, TradeSell, TradeTransfer, TradeSettlement:
		return true
	}
	return false
}

// SettlementDirection says which side of the balance a settlement reduces.
type SettlementDirection string

const (
	SettlementReceiving SettlementDirection = "receiving" // reduces due
	SettlementPaying    SettlementDirection = "paying"    // reduces owe
)

// Trade is one dated event affecting a merchant's balance.
type Trade struct {
	ID                  string              `json:"id"`
	Type                TradeType           `json:"type"`
	MerchantID          string              `json:"merchantID"`
	MetalType           string              `json:"metalType"`
	Weight              decimal.Decimal     `json:"weight"`
	Rate                decimal.Decimal     `json:"rate"`
	TotalAmount         decimal.Decimal     `json:"totalAmount"`
	AmountPaid          *decimal.Decimal    `json:"amountPaid,omitempty"`
	AmountReceived      *decimal.Decimal    `json:"amountReceived,omitempty"`
	SettlementDirection SettlementDirection `json:"settlementDirection,omitempty"`
	TradeDate           time.Time           `json:"tradeDate"`
	Notes               string              `json:"notes"`
	AuditFields
}

// EffectiveDate is the trade date, falling back to the creation time when it is unset.
func (t Trade) EffectiveDate() time.Time {
	if t.TradeDate.IsZero() {
		return t.CreatedAt
	}
	return t.TradeDate
}

// GoldMovement describes raw gold that changes hands as part of a trade.
type GoldMovement struct {
	Type        LedgerDirection `json:"type"`
	GrossWeight decimal.Decimal `json:"grossWeight"`
	Purity      decimal.Decimal `json:"purity"`
}

// RecordGoldPayment appends (or replaces) a trade together with its raw gold side effect.
// The store applies both in one transaction; the derived ledger entry is keyed by the trade id.
type RecordGoldPayment struct {
	Trade        Trade
	LedgerEffect *GoldMovement
}

// DerivedEntry builds the raw gold ledger entry implied by the command, or nil when the
// trade moves no gold. Gold going out is a karigar payment; gold coming in is a merchant return.
func (c RecordGoldPayment) DerivedEntry(id, counterpartyName string) *RawGoldLedgerEntry {
	if c.LedgerEffect == nil {
		return nil
	}
	source := SourceMerchantReturn
	if c.LedgerEffect.Type == LedgerOut {
		source = SourceKarigarPayment
	}
	return &RawGoldLedgerEntry{
		ID:               id,
		Type:             c.LedgerEffect.Type,
		Source:           source,
		ReferenceID:      c.Trade.ID,
		GrossWeight:      c.LedgerEffect.GrossWeight,
		Purity:           c.LedgerEffect.Purity,
		FineGold:         ComputeFineGold(c.LedgerEffect.GrossWeight, c.LedgerEffect.Purity),
		CounterpartyName: counterpartyName,
		CounterpartyID:   c.Trade.MerchantID,
		TransactionDate:  c.Trade.EffectiveDate(),
		AuditFields:      c.Trade.AuditFields,
	}
}
