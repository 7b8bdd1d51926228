package repositories

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
)

// TradeReader defines read operations for merchant trades.
type TradeReader interface {
	FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error)

	// ListTradesByMerchant returns the merchant's trades in no particular order.
	ListTradesByMerchant(ctx context.Context, userID, merchantID string) ([]domain.Trade, error)
}

// TradeWriter defines write operations for merchant trades. A non-nil derived entry is
// written in the same database transaction as the trade.
type TradeWriter interface {
	SaveTrade(ctx context.Context, trade domain.Trade, derived *domain.RawGoldLedgerEntry) error

	// UpdateTrade replaces the trade and every raw gold entry derived from it.
	UpdateTrade(ctx context.Context, trade domain.Trade, derived *domain.RawGoldLedgerEntry) error

	// DeleteTrade removes the trade together with its derived raw gold entries.
	DeleteTrade(ctx context.Context, tradeID string) error
}

// TradeRepositoryFacade combines all trade repository interfaces.
type TradeRepositoryFacade interface {
	TradeReader
	TradeWriter
}

// TradeRepositoryWithTx extends TradeRepositoryFacade with transaction capabilities.
type TradeRepositoryWithTx interface {
	TradeRepositoryFacade
	TransactionManager
}
