package dto

import (
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PendingSaleItemRequest is one line of jewellery handed to a merchant.
type PendingSaleItemRequest struct {
	Category           string           `json:"category" validate:"required"`
	Units              int              `json:"units" validate:"gt=0"`
	GrossWeightPerUnit decimal.Decimal  `json:"grossWeightPerUnit" validate:"gt=0"`
	Purity             decimal.Decimal  `json:"purity" validate:"gte=0,lte=100"`
	LaborType          string           `json:"laborType" validate:"omitempty,oneof=cash gold"`
	LaborAmount        *decimal.Decimal `json:"laborAmount" validate:"omitempty,gte=0"`
}

// CreatePendingSaleRequest hands a batch of jewellery to a merchant for sale.
type CreatePendingSaleRequest struct {
	MerchantID string                   `json:"merchantID" validate:"required"`
	DateGiven  string                   `json:"dateGiven" validate:"required,datetime=2006-01-02"`
	Items      []PendingSaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ParsePendingSale validates req into a draft. The merchant name is resolved by the service.
func ParsePendingSale(req CreatePendingSaleRequest) (domain.PendingSaleDraft, error) {
	if err := validateStruct(req); err != nil {
		return domain.PendingSaleDraft{}, err
	}
	date, err := domain.ParseDate(req.DateGiven)
	if err != nil {
		return domain.PendingSaleDraft{}, err
	}
	draft := domain.PendingSaleDraft{
		MerchantID: req.MerchantID,
		DateGiven:  date,
		Items:      make([]domain.PendingSaleItem, len(req.Items)),
	}
	for i, it := range req.Items {
		draft.Items[i] = domain.PendingSaleItem{
			Category:           it.Category,
			Units:              it.Units,
			GrossWeightPerUnit: it.GrossWeightPerUnit,
			Purity:             domain.RoundPurity(it.Purity),
			LaborType:          domain.LaborType(it.LaborType),
			LaborAmount:        it.LaborAmount,
		}
	}
	return draft, nil
}

// ConfirmPendingSaleRequest carries the settlement of a pending group.
type ConfirmPendingSaleRequest struct {
	AmountReceived     decimal.Decimal  `json:"amountReceived" validate:"gte=0"`
	RatePerGram        *decimal.Decimal `json:"ratePerGram" validate:"omitempty,gte=0"`
	GoldReturnedGross  *decimal.Decimal `json:"goldReturnedGross" validate:"omitempty,gte=0"`
	GoldReturnedPurity *decimal.Decimal `json:"goldReturnedPurity" validate:"omitempty,gte=0,lte=100"`
	SettledOn          string           `json:"settledOn" validate:"required,datetime=2006-01-02"`
}

// ParseSettlement validates req into settlement terms. Cross-field rules (cash or gold
// must be present) are enforced by SettlementTerms.Validate during confirmation.
func ParseSettlement(req ConfirmPendingSaleRequest) (domain.SettlementTerms, error) {
	if err := validateStruct(req); err != nil {
		return domain.SettlementTerms{}, err
	}
	date, err := domain.ParseDate(req.SettledOn)
	if err != nil {
		return domain.SettlementTerms{}, err
	}
	return domain.SettlementTerms{
		AmountReceived:     req.AmountReceived,
		RatePerGram:        req.RatePerGram,
		GoldReturnedGross:  req.GoldReturnedGross,
		GoldReturnedPurity: domain.RoundPurityPtr(req.GoldReturnedPurity),
		SettledOn:          date,
	}, nil
}

// PendingSaleGroupResponse is one batch awaiting settlement.
type PendingSaleGroupResponse struct {
	GroupID       string                     `json:"groupID"`
	MerchantID    string                     `json:"merchantID"`
	MerchantName  string                     `json:"merchantName"`
	DateGiven     string                     `json:"dateGiven"`
	TotalFineGold decimal.Decimal            `json:"totalFineGold"`
	Items         []GhaatTransactionResponse `json:"items"`
}

// ToPendingSaleGroupResponse converts a derived group.
func ToPendingSaleGroupResponse(g domain.PendingSaleGroup) PendingSaleGroupResponse {
	return PendingSaleGroupResponse{
		GroupID:       g.GroupID,
		MerchantID:    g.MerchantID,
		MerchantName:  g.MerchantName,
		DateGiven:     formatDate(g.DateGiven),
		TotalFineGold: g.TotalFineGold,
		Items:         ToListGhaatTransactionResponse(g.Items),
	}
}

// ListPendingSalesResponse lists pending groups, newest first.
type ListPendingSalesResponse struct {
	Groups   []PendingSaleGroupResponse  `json:"groups"`
	Warnings []domain.DataQualityWarning `json:"warnings,omitempty"`
}

// ToListPendingSalesResponse converts grouped pending sales.
func ToListPendingSalesResponse(groups []domain.PendingSaleGroup, warnings []domain.DataQualityWarning) ListPendingSalesResponse {
	res := ListPendingSalesResponse{Groups: make([]PendingSaleGroupResponse, len(groups)), Warnings: warnings}
	for i, g := range groups {
		res.Groups[i] = ToPendingSaleGroupResponse(g)
	}
	return res
}

// ConfirmPendingSaleResponse returns the confirmed items and the returned-gold entry, if any.
type ConfirmPendingSaleResponse struct {
	GroupID     string                     `json:"groupID"`
	Items       []GhaatTransactionResponse `json:"items"`
	LedgerEntry *RawGoldEntryResponse      `json:"ledgerEntry,omitempty"`
}

// ToConfirmPendingSaleResponse converts a group confirmation.
func ToConfirmPendingSaleResponse(c domain.GroupConfirmation) ConfirmPendingSaleResponse {
	res := ConfirmPendingSaleResponse{GroupID: c.GroupID, Items: ToListGhaatTransactionResponse(c.Items)}
	if c.LedgerEffect != nil {
		e := ToRawGoldEntryResponse(*c.LedgerEffect)
		res.LedgerEntry = &e
	}
	return res
}
