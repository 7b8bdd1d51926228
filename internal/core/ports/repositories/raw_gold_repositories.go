package repositories

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
)

// RawGoldReader defines read operations for the raw gold ledger.
type RawGoldReader interface {
	FindRawGoldEntryByID(ctx context.Context, entryID string) (*domain.RawGoldLedgerEntry, error)
	ListRawGoldEntries(ctx context.Context, userID string) ([]domain.RawGoldLedgerEntry, error)
}

// RawGoldWriter defines write operations for manually entered raw gold movements.
// Derived entries are written by the repository owning their source record.
type RawGoldWriter interface {
	SaveRawGoldEntry(ctx context.Context, entry domain.RawGoldLedgerEntry) error
	DeleteRawGoldEntry(ctx context.Context, entryID string) error
}

// RawGoldRepositoryFacade combines all raw gold repository interfaces.
type RawGoldRepositoryFacade interface {
	RawGoldReader
	RawGoldWriter
}

// RawGoldRepositoryWithTx extends RawGoldRepositoryFacade with transaction capabilities.
type RawGoldRepositoryWithTx interface {
	RawGoldRepositoryFacade
	TransactionManager
}
