package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/core/engine"
	portsrepo "github.com/SscSPs/bullion_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/SscSPs/bullion_ledger/internal/utils/pagination"
)

type merchantService struct {
	BaseService
	merchantRepo portsrepo.MerchantRepositoryFacade
	tradeRepo    portsrepo.TradeReader
	ghaatRepo    portsrepo.GhaatReader
}

// NewMerchantService creates the counterparty service. Trades and jewellery transactions are
// read to derive balances.
func NewMerchantService(
	merchantRepo portsrepo.MerchantRepositoryFacade,
	tradeRepo portsrepo.TradeReader,
	ghaatRepo portsrepo.GhaatReader,
	opts ...ServiceOption,
) portssvc.MerchantSvcFacade {
	return &merchantService{
		BaseService:  newBaseService(opts),
		merchantRepo: merchantRepo,
		tradeRepo:    tradeRepo,
		ghaatRepo:    ghaatRepo,
	}
}

func (s *merchantService) CreateMerchant(ctx context.Context, req dto.CreateMerchantRequest, userID string) (*domain.Merchant, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	merchant, err := dto.ParseMerchant(req)
	if err != nil {
		return nil, err
	}
	merchant.ID = s.newID()
	merchant.AuditFields = s.newAudit(userID)
	if err := s.merchantRepo.SaveMerchant(ctx, merchant); err != nil {
		s.LogError(ctx, err, "Failed to save merchant", slog.String("name", merchant.Name))
		return nil, fmt.Errorf("failed to create merchant: %w", err)
	}
	s.LogInfo(ctx, "Merchant created", slog.String("merchant_id", merchant.ID))
	return &merchant, nil
}

func (s *merchantService) GetMerchantByID(ctx context.Context, merchantID string, userID string) (*domain.Merchant, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	merchant, err := s.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(merchant.AuditFields, userID, "merchant", merchantID); err != nil {
		return nil, err
	}
	return merchant, nil
}

func (s *merchantService) ListMerchants(ctx context.Context, userID string) ([]domain.Merchant, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	merchants, err := s.merchantRepo.ListMerchants(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list merchants")
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}
	if merchants == nil {
		return []domain.Merchant{}, nil
	}
	return merchants, nil
}

func (s *merchantService) DeleteMerchant(ctx context.Context, merchantID string, userID string) error {
	if _, err := s.GetMerchantByID(ctx, merchantID, userID); err != nil {
		return err
	}
	if err := s.merchantRepo.DeleteMerchant(ctx, merchantID); err != nil {
		s.LogError(ctx, err, "Failed to delete merchant", slog.String("merchant_id", merchantID))
		return fmt.Errorf("failed to delete merchant: %w", err)
	}
	s.LogInfo(ctx, "Merchant deleted", slog.String("merchant_id", merchantID))
	return nil
}

func (s *merchantService) GetPartyLedger(ctx context.Context, merchantID string, params dto.PartyLedgerParams, userID string) (*domain.PartyLedger, *string, error) {
	window, err := params.Window()
	if err != nil {
		return nil, nil, err
	}
	merchant, err := s.GetMerchantByID(ctx, merchantID, userID)
	if err != nil {
		return nil, nil, err
	}
	trades, err := s.tradeRepo.ListTradesByMerchant(ctx, userID, merchantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trades", slog.String("merchant_id", merchantID))
		return nil, nil, fmt.Errorf("failed to load trades: %w", err)
	}

	ledger := engine.ReplayPartyLedger(*merchant, trades)
	s.LogWarnings(ctx, "party_ledger", ledger.Warnings)

	rows := ledger.Rows
	if window != nil {
		rows = engine.FilterPartyLedgerRows(rows, *window)
	}
	newestFirst := make([]domain.PartyLedgerRow, len(rows))
	for i, r := range rows {
		newestFirst[len(rows)-1-i] = r
	}

	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}
	page, next, err := pagination.Page(newestFirst, params.Limit, token, func(r domain.PartyLedgerRow) pagination.Cursor {
		return pagination.Cursor{Date: r.EffectiveDate(), CreatedAt: r.CreatedAt, ID: r.ID}
	})
	if err != nil {
		return nil, nil, err
	}
	ledger.Rows = page
	return &ledger, next, nil
}

func (s *merchantService) GetJewelleryDues(ctx context.Context, merchantID string, userID string) (*domain.MerchantJewelleryDues, error) {
	if _, err := s.GetMerchantByID(ctx, merchantID, userID); err != nil {
		return nil, err
	}
	txns, err := s.ghaatRepo.ListGhaatTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list jewellery transactions")
		return nil, fmt.Errorf("failed to load jewellery transactions: %w", err)
	}
	dues := engine.CalculateMerchantJewelleryDues(txns, merchantID)
	s.LogWarnings(ctx, "jewellery_dues", dues.Warnings)
	return &dues, nil
}
