package repositories

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
)

// FinancialRecordReader defines read operations for expense and income records.
type FinancialRecordReader interface {
	// FindFinancialRecordByID returns apperrors.ErrNotFound when the record does not exist.
	FindFinancialRecordByID(ctx context.Context, recordID string) (*domain.FinancialRecord, error)

	// ListFinancialRecords returns every record of kind owned by userID.
	ListFinancialRecords(ctx context.Context, userID string, kind domain.RecordKind) ([]domain.FinancialRecord, error)
}

// FinancialRecordWriter defines write operations for expense and income records.
type FinancialRecordWriter interface {
	SaveFinancialRecord(ctx context.Context, record domain.FinancialRecord) error
	UpdateFinancialRecord(ctx context.Context, record domain.FinancialRecord) error
	DeleteFinancialRecord(ctx context.Context, recordID string) error
}

// FinancialRecordRepositoryFacade combines all financial record repository interfaces.
type FinancialRecordRepositoryFacade interface {
	FinancialRecordReader
	FinancialRecordWriter
}

// FinancialRecordRepositoryWithTx extends FinancialRecordRepositoryFacade with transaction capabilities.
type FinancialRecordRepositoryWithTx interface {
	FinancialRecordRepositoryFacade
	TransactionManager
}
