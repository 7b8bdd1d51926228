package services

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/dto"
)

// TradeWriterSvc records merchant trades together with any raw gold they move.
type TradeWriterSvc interface {
	RecordTrade(ctx context.Context, req dto.TradeRequest, userID string) (*domain.Trade, error)
	UpdateTrade(ctx context.Context, tradeID string, req dto.TradeRequest, userID string) (*domain.Trade, error)
	DeleteTrade(ctx context.Context, tradeID string, userID string) error
}

// TradeSvcFacade combines all trade service interfaces.
type TradeSvcFacade interface {
	TradeWriterSvc
}
