package services

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/dto"
)

// FinancialRecordReaderSvc defines read operations for expense and income records.
type FinancialRecordReaderSvc interface {
	// ListFinancialRecords returns every record of kind owned by the user.
	ListFinancialRecords(ctx context.Context, kind domain.RecordKind, userID string) ([]domain.FinancialRecord, error)
}

// FinancialRecordWriterSvc defines write operations for expense and income records.
type FinancialRecordWriterSvc interface {
	CreateFinancialRecord(ctx context.Context, kind domain.RecordKind, req dto.FinancialRecordRequest, userID string) (*domain.FinancialRecord, error)
	UpdateFinancialRecord(ctx context.Context, kind domain.RecordKind, recordID string, req dto.FinancialRecordRequest, userID string) (*domain.FinancialRecord, error)
	DeleteFinancialRecord(ctx context.Context, kind domain.RecordKind, recordID string, userID string) error
}

// AnalyticsSvc computes period analytics over financial records.
type AnalyticsSvc interface {
	// ComputePeriodAnalytics filters the user's records of kind by params and aggregates them.
	ComputePeriodAnalytics(ctx context.Context, kind domain.RecordKind, params dto.AnalyticsParams, userID string) (*domain.PeriodAnalytics, error)
}

// FinancialRecordSvcFacade combines all financial record service interfaces.
type FinancialRecordSvcFacade interface {
	FinancialRecordReaderSvc
	FinancialRecordWriterSvc
	AnalyticsSvc
}
