package services

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/dto"
)

// JewelleryReaderSvc reports inventory and profit over jewellery transactions.
type JewelleryReaderSvc interface {
	// GetStock returns the stock of every catalog category, followed by any category
	// found only in the data.
	GetStock(ctx context.Context, userID string) ([]domain.CategoryStock, error)
	GetPnL(ctx context.Context, userID string) (*domain.JewelleryPnL, error)
}

// JewelleryWriterSvc records jewellery bought or sold outside the pending-sale workflow.
type JewelleryWriterSvc interface {
	RecordGhaatTransaction(ctx context.Context, req dto.GhaatTransactionRequest, userID string) (*domain.GhaatTransaction, error)
	DeleteGhaatTransaction(ctx context.Context, id string, userID string) error
}

// JewellerySvcFacade combines all jewellery service interfaces.
type JewellerySvcFacade interface {
	JewelleryReaderSvc
	JewelleryWriterSvc
}
