package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerDirection is the direction of a raw gold movement.
type LedgerDirection string

const (
	LedgerIn  LedgerDirection = "in"
	LedgerOut LedgerDirection = "out"
)

// RawGoldSource records why a raw gold movement happened.
type RawGoldSource string

const (
	SourceMerchantReturn   RawGoldSource = "merchant_return"
	SourceKarigarPayment   RawGoldSource = "karigar_payment"
	SourceManualAdjustment RawGoldSource = "manual_adjustment"
	SourceInitialBalance   RawGoldSource = "initial_balance"
)

// IsManual reports whether entries of this source are entered by hand.
func (s RawGoldSource) IsManual() bool {
	return s == SourceManualAdjustment || s == SourceInitialBalance
}

// RawGoldLedgerEntry is one loose gold movement. A non-empty ReferenceID marks the entry
// as derived from a Trade or GhaatTransaction; such entries live and die with their source.
type RawGoldLedgerEntry struct {
	ID               string          `json:"id"`
	Type             LedgerDirection `json:"type"`
	Source           RawGoldSource   `json:"source"`
	ReferenceID      string          `json:"referenceID,omitempty"`
	GrossWeight      decimal.Decimal `json:"grossWeight"`
	Purity           decimal.Decimal `json:"purity"`
	FineGold         decimal.Decimal `json:"fineGold"`
	CounterpartyName string          `json:"counterpartyName"`
	CounterpartyID   string          `json:"counterpartyID,omitempty"`
	Notes            string          `json:"notes"`
	TransactionDate  time.Time       `json:"transactionDate"`
	AuditFields
}

// IsDerived reports whether the entry was created as a side effect of another record.
func (e RawGoldLedgerEntry) IsDerived() bool { return e.ReferenceID != "" }

// SignedFineGold is +fineGold for inflows and -fineGold for outflows.
func (e RawGoldLedgerEntry) SignedFineGold() decimal.Decimal {
	if e.Type == LedgerOut {
		return e.FineGold.Neg()
	}
	return e.FineGold
}
