package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/core/engine"
	portsrepo "github.com/SscSPs/bullion_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/SscSPs/bullion_ledger/internal/platform/config"
	"github.com/shopspring/decimal"
)

type jewelleryService struct {
	BaseService
	ghaatRepo    portsrepo.GhaatRepositoryFacade
	merchantRepo portsrepo.MerchantReader
	catalog      config.Catalog
}

// NewJewelleryService creates the jewellery inventory service.
func NewJewelleryService(
	ghaatRepo portsrepo.GhaatRepositoryFacade,
	merchantRepo portsrepo.MerchantReader,
	catalog config.Catalog,
	opts ...ServiceOption,
) portssvc.JewellerySvcFacade {
	return &jewelleryService{
		BaseService:  newBaseService(opts),
		ghaatRepo:    ghaatRepo,
		merchantRepo: merchantRepo,
		catalog:      catalog,
	}
}

func (s *jewelleryService) listAll(ctx context.Context, userID string) ([]domain.GhaatTransaction, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	txns, err := s.ghaatRepo.ListGhaatTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list jewellery transactions")
		return nil, fmt.Errorf("failed to load jewellery transactions: %w", err)
	}
	return txns, nil
}

func (s *jewelleryService) GetStock(ctx context.Context, userID string) ([]domain.CategoryStock, error) {
	txns, err := s.listAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories := slices.Clone(s.catalog.JewelleryCategories)
	var extra []string
	for _, g := range txns {
		if !slices.Contains(categories, g.Category) && !slices.Contains(extra, g.Category) {
			extra = append(extra, g.Category)
		}
	}
	slices.Sort(extra)
	categories = append(categories, extra...)

	out := make([]domain.CategoryStock, 0, len(categories))
	for _, c := range categories {
		stock := engine.CalculateStock(txns, c, s.catalog.WeightBrackets)
		s.LogWarnings(ctx, "jewellery_stock", stock.Warnings)
		out = append(out, stock)
	}
	return out, nil
}

func (s *jewelleryService) GetPnL(ctx context.Context, userID string) (*domain.JewelleryPnL, error) {
	txns, err := s.listAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	pnl := engine.CalculatePnL(txns)
	s.LogWarnings(ctx, "jewellery_pnl", pnl.Warnings)
	return &pnl, nil
}

func (s *jewelleryService) RecordGhaatTransaction(ctx context.Context, req dto.GhaatTransactionRequest, userID string) (*domain.GhaatTransaction, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	g, err := dto.ParseGhaatTransaction(req)
	if err != nil {
		return nil, err
	}
	if err := checkCategory(s.catalog.JewelleryCategories, g.Category); err != nil {
		return nil, err
	}
	if g.MerchantID != "" {
		merchant, err := s.merchantRepo.FindMerchantByID(ctx, g.MerchantID)
		if err != nil {
			return nil, err
		}
		if err := checkOwner(merchant.AuditFields, userID, "merchant", g.MerchantID); err != nil {
			return nil, err
		}
		g.MerchantName = merchant.Name
	}
	g.ID = s.newID()
	g.AuditFields = s.newAudit(userID)

	var derived []domain.RawGoldLedgerEntry
	if e := s.goldGivenEntry(g); e != nil {
		derived = append(derived, *e)
	}
	if err := s.ghaatRepo.SaveGhaatTransactions(ctx, []domain.GhaatTransaction{g}, derived); err != nil {
		s.LogError(ctx, err, "Failed to save jewellery transaction", slog.String("category", g.Category))
		return nil, fmt.Errorf("failed to record jewellery transaction: %w", err)
	}
	s.LogInfo(ctx, "Jewellery transaction recorded",
		slog.String("ghaat_id", g.ID),
		slog.String("type", string(g.Type)),
		slog.String("fine_gold", g.FineGold.String()))
	return &g, nil
}

// goldGivenEntry books fine gold handed to a karigar for a purchase as an outflow of raw gold.
func (s *jewelleryService) goldGivenEntry(g domain.GhaatTransaction) *domain.RawGoldLedgerEntry {
	if g.Type != domain.GhaatBuy || g.GoldGivenFine == nil || !g.GoldGivenFine.IsPositive() {
		return nil
	}
	return &domain.RawGoldLedgerEntry{
		ID:               s.newID(),
		Type:             domain.LedgerOut,
		Source:           domain.SourceKarigarPayment,
		ReferenceID:      g.ID,
		GrossWeight:      *g.GoldGivenFine,
		Purity:           decimal.NewFromInt(100),
		FineGold:         *g.GoldGivenFine,
		CounterpartyName: g.MerchantName,
		CounterpartyID:   g.MerchantID,
		TransactionDate:  g.TransactionDate,
		AuditFields:      g.AuditFields,
	}
}

func (s *jewelleryService) DeleteGhaatTransaction(ctx context.Context, id string, userID string) error {
	if err := s.RequireUser(userID); err != nil {
		return err
	}
	g, err := s.ghaatRepo.FindGhaatTransactionByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwner(g.AuditFields, userID, "jewellery transaction", id); err != nil {
		return err
	}
	if g.Status == domain.StatusPending && g.GroupID != "" {
		return fmt.Errorf("%w: transaction %s belongs to pending sale %s; delete the pending sale instead",
			apperrors.ErrInvalidState, id, g.GroupID)
	}
	// A settled group keeps its whole settlement on one anchor member.
	if g.Status == domain.StatusConfirmed && g.GroupID != "" {
		return fmt.Errorf("%w: transaction %s is part of settled sale %s covering %d items",
			apperrors.ErrReferentialIntegrity, id, g.GroupID, g.GroupSize)
	}
	if err := s.ghaatRepo.DeleteGhaatTransactions(ctx, []string{id}); err != nil {
		s.LogError(ctx, err, "Failed to delete jewellery transaction", slog.String("ghaat_id", id))
		return fmt.Errorf("failed to delete jewellery transaction: %w", err)
	}
	s.LogInfo(ctx, "Jewellery transaction deleted", slog.String("ghaat_id", id))
	return nil
}
