package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RawGoldEntryRequest is a manual raw gold movement. Either gross weight with purity, or a
// fine gold figure alone, must be given.
type RawGoldEntryRequest struct {
	Type             string           `json:"type" validate:"required,oneof=in out"`
	Source           string           `json:"source" validate:"required,oneof=manual_adjustment initial_balance"`
	GrossWeight      *decimal.Decimal `json:"grossWeight" validate:"omitempty,gte=0"`
	Purity           *decimal.Decimal `json:"purity" validate:"omitempty,gte=0,lte=100"`
	FineGold         *decimal.Decimal `json:"fineGold" validate:"omitempty,gte=0"`
	CounterpartyName string           `json:"counterpartyName"`
	Notes            string           `json:"notes"`
	TransactionDate  string           `json:"transactionDate" validate:"required,datetime=2006-01-02"`
}

// ParseRawGoldEntry validates req and returns the typed entry.
func ParseRawGoldEntry(req RawGoldEntryRequest) (domain.RawGoldLedgerEntry, error) {
	if err := validateStruct(req); err != nil {
		return domain.RawGoldLedgerEntry{}, err
	}
	date, err := domain.ParseDate(req.TransactionDate)
	if err != nil {
		return domain.RawGoldLedgerEntry{}, err
	}
	e := domain.RawGoldLedgerEntry{
		Type:             domain.LedgerDirection(req.Type),
		Source:           domain.RawGoldSource(req.Source),
		GrossWeight:      decimal.Zero,
		Purity:           decimal.Zero,
		CounterpartyName: req.CounterpartyName,
		Notes:            req.Notes,
		TransactionDate:  date,
	}
	switch {
	case req.GrossWeight != nil && req.GrossWeight.IsPositive():
		if req.Purity == nil {
			return domain.RawGoldLedgerEntry{}, fmt.Errorf("%w: purity is required with grossWeight", apperrors.ErrValidation)
		}
		e.GrossWeight, e.Purity = *req.GrossWeight, domain.RoundPurity(*req.Purity)
		e.FineGold = domain.ComputeFineGold(e.GrossWeight, e.Purity)
	case req.FineGold != nil && req.FineGold.IsPositive():
		e.FineGold = *req.FineGold
	default:
		return domain.RawGoldLedgerEntry{}, fmt.Errorf("%w: grossWeight with purity, or fineGold, must be positive", apperrors.ErrValidation)
	}
	return e, nil
}

// RawGoldLedgerParams are the query parameters of the raw gold ledger endpoint.
type RawGoldLedgerParams struct {
	From string `form:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" validate:"omitempty,datetime=2006-01-02"`
}

// Window returns the display window or nil for the complete history. Ordering is checked
// by the ledger replay.
func (p RawGoldLedgerParams) Window() (*domain.DateRange, error) {
	if err := validateStruct(p); err != nil {
		return nil, err
	}
	return parseWindow(p.From, p.To)
}

// RawGoldEntryResponse defines the data returned for a raw gold entry.
type RawGoldEntryResponse struct {
	ID               string          `json:"id"`
	Type             string          `json:"type"`
	Source           string          `json:"source"`
	ReferenceID      string          `json:"referenceID,omitempty"`
	GrossWeight      decimal.Decimal `json:"grossWeight"`
	Purity           decimal.Decimal `json:"purity"`
	FineGold         decimal.Decimal `json:"fineGold"`
	CounterpartyName string          `json:"counterpartyName"`
	Notes            string          `json:"notes"`
	TransactionDate  string          `json:"transactionDate"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToRawGoldEntryResponse converts a domain.RawGoldLedgerEntry to its DTO.
func ToRawGoldEntryResponse(e domain.RawGoldLedgerEntry) RawGoldEntryResponse {
	return RawGoldEntryResponse{
		ID:               e.ID,
		Type:             string(e.Type),
		Source:           string(e.Source),
		ReferenceID:      e.ReferenceID,
		GrossWeight:      e.GrossWeight,
		Purity:           e.Purity,
		FineGold:         e.FineGold,
		CounterpartyName: e.CounterpartyName,
		Notes:            e.Notes,
		TransactionDate:  formatDate(e.TransactionDate),
		CreatedAt:        e.CreatedAt,
	}
}

// RawGoldLedgerRowResponse is an entry with the balance after it.
type RawGoldLedgerRowResponse struct {
	RawGoldEntryResponse
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// RawGoldLedgerResponse is the windowed raw gold ledger, newest first.
type RawGoldLedgerResponse struct {
	OpeningBalance decimal.Decimal             `json:"openingBalance"`
	ClosingBalance decimal.Decimal             `json:"closingBalance"`
	Rows           []RawGoldLedgerRowResponse  `json:"rows"`
	Stats          domain.RawGoldStats         `json:"stats"`
	Warnings       []domain.DataQualityWarning `json:"warnings,omitempty"`
}

// ToRawGoldLedgerResponse converts a ledger view.
func ToRawGoldLedgerResponse(v domain.RawGoldLedgerView) RawGoldLedgerResponse {
	rows := make([]RawGoldLedgerRowResponse, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = RawGoldLedgerRowResponse{
			RawGoldEntryResponse: ToRawGoldEntryResponse(r.RawGoldLedgerEntry),
			RunningBalance:       r.RunningBalance,
		}
	}
	return RawGoldLedgerResponse{
		OpeningBalance: v.OpeningBalance,
		ClosingBalance: v.ClosingBalance,
		Rows:           rows,
		Stats:          v.Stats,
		Warnings:       v.Warnings,
	}
}
