package dto

import (
	"time"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FinancialRecordRequest is the payload for creating or updating an expense or income record.
type FinancialRecordRequest struct {
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"gte=0"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	PaymentType string          `json:"paymentType"`
}

// ParseFinancialRecord validates req and returns the typed record. Identity and audit
// fields are left for the caller.
func ParseFinancialRecord(kind domain.RecordKind, req FinancialRecordRequest) (domain.FinancialRecord, error) {
	if err := validateStruct(req); err != nil {
		return domain.FinancialRecord{}, err
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return domain.FinancialRecord{}, err
	}
	return domain.FinancialRecord{
		Kind:        kind,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		PaymentType: req.PaymentType,
	}, nil
}

// FinancialRecordResponse defines the data returned for a financial record.
type FinancialRecordResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	PaymentType string          `json:"paymentType"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToFinancialRecordResponse converts a domain.FinancialRecord to FinancialRecordResponse DTO
func ToFinancialRecordResponse(r domain.FinancialRecord) FinancialRecordResponse {
	return FinancialRecordResponse{
		ID:          r.ID,
		Kind:        string(r.Kind),
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        formatDate(r.Date),
		PaymentType: r.PaymentType,
		CreatedAt:   r.CreatedAt,
	}
}

// ToFinancialRecordResponses converts a slice of records.
func ToFinancialRecordResponses(rs []domain.FinancialRecord) []FinancialRecordResponse {
	out := make([]FinancialRecordResponse, len(rs))
	for i, r := range rs {
		out[i] = ToFinancialRecordResponse(r)
	}
	return out
}

// ListFinancialRecordsResponse wraps a list of records.
type ListFinancialRecordsResponse struct {
	Records []FinancialRecordResponse `json:"records"`
}
