package dto

import (
	"time"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMerchantRequest defines the data needed to open a counterparty account.
type CreateMerchantRequest struct {
	Name     string          `json:"name" validate:"required"`
	Kind     string          `json:"kind" validate:"omitempty,oneof=merchant karigar"`
	Phone    string          `json:"phone"`
	TotalDue decimal.Decimal `json:"totalDue" validate:"gte=0"` // opening balance owed to us
	TotalOwe decimal.Decimal `json:"totalOwe" validate:"gte=0"` // opening balance owed by us
}

// ParseMerchant validates req into a domain.Merchant; kind defaults to merchant.
func ParseMerchant(req CreateMerchantRequest) (domain.Merchant, error) {
	if err := validateStruct(req); err != nil {
		return domain.Merchant{}, err
	}
	kind := domain.CounterpartyKind(req.Kind)
	if kind == "" {
		kind = domain.CounterpartyMerchant
	}
	return domain.Merchant{
		Name:     req.Name,
		Kind:     kind,
		Phone:    req.Phone,
		TotalDue: req.TotalDue,
		TotalOwe: req.TotalOwe,
	}, nil
}

// MerchantResponse defines the data returned for a merchant.
type MerchantResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Phone     string          `json:"phone"`
	TotalDue  decimal.Decimal `json:"totalDue"`
	TotalOwe  decimal.Decimal `json:"totalOwe"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToMerchantResponse converts a domain.Merchant to MerchantResponse DTO
func ToMerchantResponse(m domain.Merchant) MerchantResponse {
	return MerchantResponse{
		ID:        m.ID,
		Name:      m.Name,
		Kind:      string(m.Kind),
		Phone:     m.Phone,
		TotalDue:  m.TotalDue,
		TotalOwe:  m.TotalOwe,
		CreatedAt: m.CreatedAt,
	}
}

// ToListMerchantResponse converts a slice of merchants.
func ToListMerchantResponse(ms []domain.Merchant) []MerchantResponse {
	res := make([]MerchantResponse, len(ms))
	for i, m := range ms {
		res[i] = ToMerchantResponse(m)
	}
	return res
}

// PartyLedgerParams are the query parameters of the merchant ledger endpoint.
type PartyLedgerParams struct {
	From      string `form:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" validate:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit" validate:"gte=0"`
	NextToken string `form:"nextToken"`
}

// Window returns the requested display window, or nil when no bounds are given.
func (p PartyLedgerParams) Window() (*domain.DateRange, error) {
	if err := validateStruct(p); err != nil {
		return nil, err
	}
	w, err := parseWindow(p.From, p.To)
	if err != nil || w == nil {
		return w, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// PartyLedgerRowResponse is one replayed trade with the balances after it.
type PartyLedgerRowResponse struct {
	TradeResponse
	RunningDues     decimal.Decimal `json:"runningDues"`
	RunningAdvances decimal.Decimal `json:"runningAdvances"`
}

// PartyLedgerResponse is a page of a merchant's ledger, newest first.
type PartyLedgerResponse struct {
	MerchantID string                      `json:"merchantID"`
	OpeningDue decimal.Decimal             `json:"openingDue"`
	OpeningOwe decimal.Decimal             `json:"openingOwe"`
	ClosingDue decimal.Decimal             `json:"closingDue"`
	ClosingOwe decimal.Decimal             `json:"closingOwe"`
	Rows       []PartyLedgerRowResponse    `json:"rows"`
	NextToken  *string                     `json:"nextToken,omitempty"`
	Warnings   []domain.DataQualityWarning `json:"warnings,omitempty"`
}

// ToPartyLedgerResponse converts a ledger whose Rows have already been windowed and paged.
func ToPartyLedgerResponse(l domain.PartyLedger, nextToken *string) PartyLedgerResponse {
	rows := make([]PartyLedgerRowResponse, len(l.Rows))
	for i, r := range l.Rows {
		rows[i] = PartyLedgerRowResponse{
			TradeResponse:   ToTradeResponse(r.Trade),
			RunningDues:     r.RunningDues,
			RunningAdvances: r.RunningAdvances,
		}
	}
	return PartyLedgerResponse{
		MerchantID: l.MerchantID,
		OpeningDue: l.OpeningDue,
		OpeningOwe: l.OpeningOwe,
		ClosingDue: l.ClosingDue,
		ClosingOwe: l.ClosingOwe,
		Rows:       rows,
		NextToken:  nextToken,
		Warnings:   l.Warnings,
	}
}
