package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PendingSaleGroup aggregates the pending sell lines handed to a merchant in one batch.
// It is derived on every read and never stored.
type PendingSaleGroup struct {
	GroupID       string             `json:"groupID"`
	MerchantID    string             `json:"merchantID"`
	MerchantName  string             `json:"merchantName"`
	DateGiven     time.Time          `json:"dateGiven"`
	Items         []GhaatTransaction `json:"items"`
	TotalFineGold decimal.Decimal    `json:"totalFineGold"`
}

// PendingSaleItem is one draft line of jewellery handed to a merchant.
type PendingSaleItem struct {
	Category           string
	Units              int
	GrossWeightPerUnit decimal.Decimal
	Purity             decimal.Decimal
	LaborType          LaborType
	LaborAmount        *decimal.Decimal
}

// PendingSaleDraft is the in-memory batch entered before anything is persisted.
type PendingSaleDraft struct {
	MerchantID   string
	MerchantName string
	DateGiven    time.Time
	Items        []PendingSaleItem
}

// SettlementTerms are recorded when a pending group is confirmed.
type SettlementTerms struct {
	AmountReceived     decimal.Decimal
	RatePerGram        *decimal.Decimal
	GoldReturnedGross  *decimal.Decimal
	GoldReturnedPurity *decimal.Decimal
	SettledOn          time.Time
}

// ReturnsGold reports whether the merchant handed back gold as part of the settlement.
func (s SettlementTerms) ReturnsGold() bool {
	return s.GoldReturnedGross != nil && s.GoldReturnedGross.IsPositive()
}

// GoldReturnedFine is the fine gold content of the returned gold.
func (s SettlementTerms) GoldReturnedFine() decimal.Decimal {
	if !s.ReturnsGold() || s.GoldReturnedPurity == nil {
		return decimal.Zero
	}
	return ComputeFineGold(*s.GoldReturnedGross, *s.GoldReturnedPurity)
}

// Validate requires cash, returned gold, or both.
func (s SettlementTerms) Validate() error {
	if s.AmountReceived.IsNegative() {
		return fmt.Errorf("%w: amount received cannot be negative", apperrors.ErrValidation)
	}
	if s.RatePerGram != nil && s.RatePerGram.IsNegative() {
		return fmt.Errorf("%w: rate per gram cannot be negative", apperrors.ErrValidation)
	}
	if s.ReturnsGold() {
		if s.GoldReturnedPurity == nil || s.GoldReturnedPurity.IsNegative() || s.GoldReturnedPurity.GreaterThan(hundred) {
			return fmt.Errorf("%w: returned gold purity must be between 0 and 100", apperrors.ErrValidation)
		}
	}
	if !s.AmountReceived.IsPositive() && !s.ReturnsGold() {
		return fmt.Errorf("%w: settlement needs cash received or gold returned", apperrors.ErrValidation)
	}
	if s.SettledOn.IsZero() {
		return fmt.Errorf("%w: settlement date is required", apperrors.ErrValidation)
	}
	return nil
}

// GroupConfirmation is the atomic write produced by confirming a pending group: every member
// flips to confirmed and, when gold came back, one merchant_return entry is appended.
type GroupConfirmation struct {
	GroupID      string
	Items        []GhaatTransaction
	LedgerEffect *RawGoldLedgerEntry
}
