package services

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/dto"
)

// MerchantReaderSvc defines read operations for counterparties.
type MerchantReaderSvc interface {
	GetMerchantByID(ctx context.Context, merchantID string, userID string) (*domain.Merchant, error)
	ListMerchants(ctx context.Context, userID string) ([]domain.Merchant, error)
}

// MerchantWriterSvc defines write operations for counterparties.
type MerchantWriterSvc interface {
	CreateMerchant(ctx context.Context, req dto.CreateMerchantRequest, userID string) (*domain.Merchant, error)
	DeleteMerchant(ctx context.Context, merchantID string, userID string) error
}

// MerchantBalanceSvc derives balances from a merchant's history.
type MerchantBalanceSvc interface {
	// GetPartyLedger replays every trade of the merchant and returns the rows inside the
	// requested window, newest first, one page at a time. The second result is the token
	// of the next page, nil on the last page.
	GetPartyLedger(ctx context.Context, merchantID string, params dto.PartyLedgerParams, userID string) (*domain.PartyLedger, *string, error)

	// GetJewelleryDues reports pending fine gold and unpaid cash on jewellery sales.
	GetJewelleryDues(ctx context.Context, merchantID string, userID string) (*domain.MerchantJewelleryDues, error)
}

// MerchantSvcFacade combines all merchant service interfaces.
type MerchantSvcFacade interface {
	MerchantReaderSvc
	MerchantWriterSvc
	MerchantBalanceSvc
}
