package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoldMovementRequest is raw gold changing hands alongside a trade.
type GoldMovementRequest struct {
	Type        string          `json:"type" validate:"required,oneof=in out"`
	GrossWeight decimal.Decimal `json:"grossWeight" validate:"gt=0"`
	Purity      decimal.Decimal `json:"purity" validate:"gte=0,lte=100"`
}

// TradeRequest defines the data needed to record or replace a trade.
type TradeRequest struct {
	MerchantID          string               `json:"merchantID" validate:"required"`
	Type                string               `json:"type" validate:"required,oneof=buy sell transfer settlement"`
	MetalType           string               `json:"metalType"`
	Weight              decimal.Decimal      `json:"weight" validate:"gte=0"`
	Rate                decimal.Decimal      `json:"rate" validate:"gte=0"`
	TotalAmount         decimal.Decimal      `json:"totalAmount" validate:"gte=0"`
	AmountPaid          *decimal.Decimal     `json:"amountPaid" validate:"omitempty,gte=0"`
	AmountReceived      *decimal.Decimal     `json:"amountReceived" validate:"omitempty,gte=0"`
	SettlementDirection string               `json:"settlementDirection" validate:"omitempty,oneof=receiving paying"`
	TradeDate           string               `json:"tradeDate" validate:"omitempty,datetime=2006-01-02"`
	Notes               string               `json:"notes"`
	GoldMovement        *GoldMovementRequest `json:"goldMovement"`
}

// ParseTrade validates req and returns the write command for the trade store.
// Identity and audit fields are left for the caller.
func ParseTrade(req TradeRequest) (domain.RecordGoldPayment, error) {
	if err := validateStruct(req); err != nil {
		return domain.RecordGoldPayment{}, err
	}
	typ := domain.TradeType(req.Type)
	if typ == domain.TradeSettlement && req.SettlementDirection == "" {
		return domain.RecordGoldPayment{}, fmt.Errorf("%w: settlementDirection is required for settlements", apperrors.ErrValidation)
	}
	if typ != domain.TradeSettlement && req.SettlementDirection != "" {
		return domain.RecordGoldPayment{}, fmt.Errorf("%w: settlementDirection only applies to settlements", apperrors.ErrValidation)
	}
	date, err := parseOptionalDate(req.TradeDate)
	if err != nil {
		return domain.RecordGoldPayment{}, err
	}

	cmd := domain.RecordGoldPayment{Trade: domain.Trade{
		Type:                typ,
		MerchantID:          req.MerchantID,
		MetalType:           req.MetalType,
		Weight:              req.Weight,
		Rate:                req.Rate,
		TotalAmount:         req.TotalAmount,
		AmountPaid:          req.AmountPaid,
		AmountReceived:      req.AmountReceived,
		SettlementDirection: domain.SettlementDirection(req.SettlementDirection),
		TradeDate:           date,
		Notes:               req.Notes,
	}}
	if req.GoldMovement != nil {
		cmd.LedgerEffect = &domain.GoldMovement{
			Type:        domain.LedgerDirection(req.GoldMovement.Type),
			GrossWeight: req.GoldMovement.GrossWeight,
			Purity:      domain.RoundPurity(req.GoldMovement.Purity),
		}
	}
	return cmd, nil
}

// TradeResponse defines the data returned for a trade.
type TradeResponse struct {
	ID                  string           `json:"id"`
	Type                string           `json:"type"`
	MerchantID          string           `json:"merchantID"`
	MetalType           string           `json:"metalType"`
	Weight              decimal.Decimal  `json:"weight"`
	Rate                decimal.Decimal  `json:"rate"`
	TotalAmount         decimal.Decimal  `json:"totalAmount"`
	AmountPaid          *decimal.Decimal `json:"amountPaid,omitempty"`
	AmountReceived      *decimal.Decimal `json:"amountReceived,omitempty"`
	SettlementDirection string           `json:"settlementDirection,omitempty"`
	TradeDate           string           `json:"tradeDate"`
	Notes               string           `json:"notes"`
	CreatedAt           time.Time        `json:"createdAt"`
}

// ToTradeResponse converts a domain.Trade to TradeResponse DTO. An unset trade date is
// reported as the day the trade was entered.
func ToTradeResponse(t domain.Trade) TradeResponse {
	return TradeResponse{
		ID:                  t.ID,
		Type:                string(t.Type),
		MerchantID:          t.MerchantID,
		MetalType:           t.MetalType,
		Weight:              t.Weight,
		Rate:                t.Rate,
		TotalAmount:         t.TotalAmount,
		AmountPaid:          t.AmountPaid,
		AmountReceived:      t.AmountReceived,
		SettlementDirection: string(t.SettlementDirection),
		TradeDate:           formatDate(t.EffectiveDate()),
		Notes:               t.Notes,
		CreatedAt:           t.CreatedAt,
	}
}

// ToListTradeResponse converts a slice of trades.
func ToListTradeResponse(ts []domain.Trade) []TradeResponse {
	res := make([]TradeResponse, len(ts))
	for i, t := range ts {
		res[i] = ToTradeResponse(t)
	}
	return res
}
