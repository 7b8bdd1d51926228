package services

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/dto"
)

// RawGoldReaderSvc defines read operations for the raw gold ledger.
type RawGoldReaderSvc interface {
	GetRawGoldLedger(ctx context.Context, params dto.RawGoldLedgerParams, userID string) (*domain.RawGoldLedgerView, error)
}

// RawGoldWriterSvc manages manually entered raw gold movements.
type RawGoldWriterSvc interface {
	CreateRawGoldEntry(ctx context.Context, req dto.RawGoldEntryRequest, userID string) (*domain.RawGoldLedgerEntry, error)

	// DeleteRawGoldEntry refuses entries derived from a trade or jewellery transaction.
	DeleteRawGoldEntry(ctx context.Context, entryID string, userID string) error
}

// RawGoldSvcFacade combines all raw gold service interfaces.
type RawGoldSvcFacade interface {
	RawGoldReaderSvc
	RawGoldWriterSvc
}
