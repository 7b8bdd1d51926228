package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bullion_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
)

type tradeService struct {
	BaseService
	tradeRepo    portsrepo.TradeRepositoryFacade
	merchantRepo portsrepo.MerchantReader
}

// NewTradeService creates the trade service.
func NewTradeService(tradeRepo portsrepo.TradeRepositoryFacade, merchantRepo portsrepo.MerchantReader, opts ...ServiceOption) portssvc.TradeSvcFacade {
	return &tradeService{
		BaseService:  newBaseService(opts),
		tradeRepo:    tradeRepo,
		merchantRepo: merchantRepo,
	}
}

func (s *tradeService) ownedMerchant(ctx context.Context, merchantID, userID string) (*domain.Merchant, error) {
	merchant, err := s.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(merchant.AuditFields, userID, "merchant", merchantID); err != nil {
		return nil, err
	}
	return merchant, nil
}

func (s *tradeService) ownedTrade(ctx context.Context, tradeID, userID string) (*domain.Trade, error) {
	trade, err := s.tradeRepo.FindTradeByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(trade.AuditFields, userID, "trade", tradeID); err != nil {
		return nil, err
	}
	return trade, nil
}

// derivedEntry builds the raw gold side effect of cmd, if any, with a fresh id.
func (s *tradeService) derivedEntry(cmd domain.RecordGoldPayment, merchant *domain.Merchant) *domain.RawGoldLedgerEntry {
	if cmd.LedgerEffect == nil {
		return nil
	}
	return cmd.DerivedEntry(s.newID(), merchant.Name)
}

func (s *tradeService) RecordTrade(ctx context.Context, req dto.TradeRequest, userID string) (*domain.Trade, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	cmd, err := dto.ParseTrade(req)
	if err != nil {
		return nil, err
	}
	merchant, err := s.ownedMerchant(ctx, cmd.Trade.MerchantID, userID)
	if err != nil {
		return nil, err
	}
	cmd.Trade.ID = s.newID()
	cmd.Trade.AuditFields = s.newAudit(userID)
	derived := s.derivedEntry(cmd, merchant)

	if err := s.tradeRepo.SaveTrade(ctx, cmd.Trade, derived); err != nil {
		s.LogError(ctx, err, "Failed to save trade", slog.String("merchant_id", merchant.ID))
		return nil, fmt.Errorf("failed to record trade: %w", err)
	}
	s.LogInfo(ctx, "Trade recorded",
		slog.String("trade_id", cmd.Trade.ID),
		slog.String("type", string(cmd.Trade.Type)),
		slog.Bool("moves_gold", derived != nil))
	return &cmd.Trade, nil
}

func (s *tradeService) UpdateTrade(ctx context.Context, tradeID string, req dto.TradeRequest, userID string) (*domain.Trade, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	existing, err := s.ownedTrade(ctx, tradeID, userID)
	if err != nil {
		return nil, err
	}
	cmd, err := dto.ParseTrade(req)
	if err != nil {
		return nil, err
	}
	merchant, err := s.ownedMerchant(ctx, cmd.Trade.MerchantID, userID)
	if err != nil {
		return nil, err
	}
	cmd.Trade.ID = existing.ID
	cmd.Trade.AuditFields = s.touchAudit(existing.AuditFields, userID)
	derived := s.derivedEntry(cmd, merchant)

	if err := s.tradeRepo.UpdateTrade(ctx, cmd.Trade, derived); err != nil {
		s.LogError(ctx, err, "Failed to update trade", slog.String("trade_id", tradeID))
		return nil, fmt.Errorf("failed to update trade: %w", err)
	}
	return &cmd.Trade, nil
}

func (s *tradeService) DeleteTrade(ctx context.Context, tradeID string, userID string) error {
	if err := s.RequireUser(userID); err != nil {
		return err
	}
	if _, err := s.ownedTrade(ctx, tradeID, userID); err != nil {
		return err
	}
	if err := s.tradeRepo.DeleteTrade(ctx, tradeID); err != nil {
		s.LogError(ctx, err, "Failed to delete trade", slog.String("trade_id", tradeID))
		return fmt.Errorf("failed to delete trade: %w", err)
	}
	s.LogInfo(ctx, "Trade deleted", slog.String("trade_id", tradeID))
	return nil
}
