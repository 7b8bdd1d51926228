package repositories

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
)

// GhaatReader defines read operations for jewellery transactions.
type GhaatReader interface {
	FindGhaatTransactionByID(ctx context.Context, id string) (*domain.GhaatTransaction, error)
	ListGhaatTransactions(ctx context.Context, userID string) ([]domain.GhaatTransaction, error)
	ListGhaatTransactionsByGroup(ctx context.Context, userID, groupID string) ([]domain.GhaatTransaction, error)
}

// GhaatWriter defines write operations for jewellery transactions. Every method is atomic.
type GhaatWriter interface {
	// SaveGhaatTransactions inserts txns and the raw gold entries derived from them.
	SaveGhaatTransactions(ctx context.Context, txns []domain.GhaatTransaction, derived []domain.RawGoldLedgerEntry) error

	// ConfirmPendingGroup updates every member of the group and appends the ledger effect.
	// It fails with apperrors.ErrInvalidState when any member is no longer pending.
	ConfirmPendingGroup(ctx context.Context, confirmation domain.GroupConfirmation) error

	// DeleteGhaatTransactions removes the rows and the raw gold entries derived from them.
	DeleteGhaatTransactions(ctx context.Context, ids []string) error
}

// GhaatRepositoryFacade combines all jewellery transaction repository interfaces.
type GhaatRepositoryFacade interface {
	GhaatReader
	GhaatWriter
}

// GhaatRepositoryWithTx extends GhaatRepositoryFacade with transaction capabilities.
type GhaatRepositoryWithTx interface {
	GhaatRepositoryFacade
	TransactionManager
}
