package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GhaatTransactionRequest records a jewellery purchase, or a sale made outside the
// pending-sale workflow.
type GhaatTransactionRequest struct {
	Type               string           `json:"type" validate:"required,oneof=buy sell"`
	Category           string           `json:"category" validate:"required"`
	MerchantID         string           `json:"merchantID"`
	Units              int              `json:"units" validate:"gt=0"`
	GrossWeightPerUnit decimal.Decimal  `json:"grossWeightPerUnit" validate:"gt=0"`
	Purity             decimal.Decimal  `json:"purity" validate:"gte=0,lte=100"`
	LaborType          string           `json:"laborType" validate:"omitempty,oneof=cash gold"`
	LaborAmount        *decimal.Decimal `json:"laborAmount" validate:"omitempty,gte=0"`
	GoldGivenFine      *decimal.Decimal `json:"goldGivenFine" validate:"omitempty,gte=0"`
	CashPaid           *decimal.Decimal `json:"cashPaid" validate:"omitempty,gte=0"`
	AmountReceived     *decimal.Decimal `json:"amountReceived" validate:"omitempty,gte=0"`
	RatePerGram        *decimal.Decimal `json:"ratePerGram" validate:"omitempty,gte=0"`
	TransactionDate    string           `json:"transactionDate" validate:"required,datetime=2006-01-02"`
}

// ParseGhaatTransaction validates req and returns the typed transaction with total gross
// weight and fine gold computed. Direct sells are stored as confirmed.
func ParseGhaatTransaction(req GhaatTransactionRequest) (domain.GhaatTransaction, error) {
	if err := validateStruct(req); err != nil {
		return domain.GhaatTransaction{}, err
	}
	typ := domain.GhaatType(req.Type)
	if typ == domain.GhaatSell && req.MerchantID == "" {
		return domain.GhaatTransaction{}, fmt.Errorf("%w: merchantID is required for sells", apperrors.ErrValidation)
	}
	if req.LaborType != "" && req.LaborAmount == nil {
		return domain.GhaatTransaction{}, fmt.Errorf("%w: laborAmount is required with laborType", apperrors.ErrValidation)
	}
	date, err := domain.ParseDate(req.TransactionDate)
	if err != nil {
		return domain.GhaatTransaction{}, err
	}

	gross := req.GrossWeightPerUnit.Mul(decimal.NewFromInt(int64(req.Units)))
	purity := domain.RoundPurity(req.Purity)
	g := domain.GhaatTransaction{
		Type:               typ,
		Category:           req.Category,
		MerchantID:         req.MerchantID,
		Units:              req.Units,
		GrossWeightPerUnit: req.GrossWeightPerUnit,
		Purity:             purity,
		TotalGrossWeight:   gross,
		FineGold:           domain.ComputeFineGold(gross, purity),
		LaborType:          domain.LaborType(req.LaborType),
		LaborAmount:        req.LaborAmount,
		GoldGivenFine:      req.GoldGivenFine,
		CashPaid:           req.CashPaid,
		AmountReceived:     req.AmountReceived,
		RatePerGram:        req.RatePerGram,
		TransactionDate:    date,
	}
	if typ == domain.GhaatSell {
		g.Status = domain.StatusConfirmed
	}
	return g, nil
}

// GhaatTransactionResponse defines the data returned for a jewellery transaction.
type GhaatTransactionResponse struct {
	ID                 string           `json:"id"`
	Type               string           `json:"type"`
	Category           string           `json:"category"`
	MerchantID         string           `json:"merchantID,omitempty"`
	MerchantName       string           `json:"merchantName,omitempty"`
	Units              int              `json:"units"`
	GrossWeightPerUnit decimal.Decimal  `json:"grossWeightPerUnit"`
	Purity             decimal.Decimal  `json:"purity"`
	TotalGrossWeight   decimal.Decimal  `json:"totalGrossWeight"`
	FineGold           decimal.Decimal  `json:"fineGold"`
	LaborType          string           `json:"laborType,omitempty"`
	LaborAmount        *decimal.Decimal `json:"laborAmount,omitempty"`
	GoldGivenFine      *decimal.Decimal `json:"goldGivenFine,omitempty"`
	CashPaid           *decimal.Decimal `json:"cashPaid,omitempty"`
	AmountReceived     *decimal.Decimal `json:"amountReceived,omitempty"`
	GoldReturnedFine   *decimal.Decimal `json:"goldReturnedFine,omitempty"`
	RatePerGram        *decimal.Decimal `json:"ratePerGram,omitempty"`
	Status             string           `json:"status,omitempty"`
	GroupID            string           `json:"groupID,omitempty"`
	TransactionDate    string           `json:"transactionDate"`
	CreatedAt          time.Time        `json:"createdAt"`
}

// ToGhaatTransactionResponse converts a domain.GhaatTransaction to its DTO.
func ToGhaatTransactionResponse(g domain.GhaatTransaction) GhaatTransactionResponse {
	return GhaatTransactionResponse{
		ID:                 g.ID,
		Type:               string(g.Type),
		Category:           g.Category,
		MerchantID:         g.MerchantID,
		MerchantName:       g.MerchantName,
		Units:              g.Units,
		GrossWeightPerUnit: g.GrossWeightPerUnit,
		Purity:             g.Purity,
		TotalGrossWeight:   g.TotalGrossWeight,
		FineGold:           g.FineGold,
		LaborType:          string(g.LaborType),
		LaborAmount:        g.LaborAmount,
		GoldGivenFine:      g.GoldGivenFine,
		CashPaid:           g.CashPaid,
		AmountReceived:     g.AmountReceived,
		GoldReturnedFine:   g.GoldReturnedFine,
		RatePerGram:        g.RatePerGram,
		Status:             string(g.Status),
		GroupID:            g.GroupID,
		TransactionDate:    formatDate(g.TransactionDate),
		CreatedAt:          g.CreatedAt,
	}
}

// ToListGhaatTransactionResponse converts a slice of transactions.
func ToListGhaatTransactionResponse(gs []domain.GhaatTransaction) []GhaatTransactionResponse {
	res := make([]GhaatTransactionResponse, len(gs))
	for i, g := range gs {
		res[i] = ToGhaatTransactionResponse(g)
	}
	return res
}

// StockResponse is the jewellery stock of every catalog category.
type StockResponse struct {
	Categories []domain.CategoryStock `json:"categories"`
}

// JewelleryPnLResponse wraps the fine-gold profit figures.
type JewelleryPnLResponse struct {
	domain.JewelleryPnL
}

// JewelleryDuesResponse wraps a merchant's outstanding jewellery dues.
type JewelleryDuesResponse struct {
	domain.MerchantJewelleryDues
}
