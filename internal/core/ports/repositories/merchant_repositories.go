package repositories

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
)

// MerchantReader defines read operations for counterparties.
type MerchantReader interface {
	FindMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error)
	ListMerchants(ctx context.Context, userID string) ([]domain.Merchant, error)
}

// MerchantWriter defines write operations for counterparties.
type MerchantWriter interface {
	SaveMerchant(ctx context.Context, merchant domain.Merchant) error

	// DeleteMerchant fails with apperrors.ErrReferentialIntegrity while trades or jewellery
	// transactions still reference the merchant.
	DeleteMerchant(ctx context.Context, merchantID string) error
}

// MerchantRepositoryFacade combines all merchant repository interfaces.
type MerchantRepositoryFacade interface {
	MerchantReader
	MerchantWriter
}

// MerchantRepositoryWithTx extends MerchantRepositoryFacade with transaction capabilities.
type MerchantRepositoryWithTx interface {
	MerchantRepositoryFacade
	TransactionManager
}
