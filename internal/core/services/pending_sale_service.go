package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/core/engine"
	portsrepo "github.com/SscSPs/bullion_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bullion_ledger/internal/core/ports/services"
	"github.com/SscSPs/bullion_ledger/internal/dto"
	"github.com/SscSPs/bullion_ledger/internal/platform/config"
)

type pendingSaleService struct {
	BaseService
	ghaatRepo    portsrepo.GhaatRepositoryFacade
	merchantRepo portsrepo.MerchantReader
	catalog      config.Catalog
}

// NewPendingSaleService creates the pending-sale workflow service.
func NewPendingSaleService(
	ghaatRepo portsrepo.GhaatRepositoryFacade,
	merchantRepo portsrepo.MerchantReader,
	catalog config.Catalog,
	opts ...ServiceOption,
) portssvc.PendingSaleSvcFacade {
	return &pendingSaleService{
		BaseService:  newBaseService(opts),
		ghaatRepo:    ghaatRepo,
		merchantRepo: merchantRepo,
		catalog:      catalog,
	}
}

func (s *pendingSaleService) CreatePendingSale(ctx context.Context, req dto.CreatePendingSaleRequest, userID string) (*domain.PendingSaleGroup, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	draft, err := dto.ParsePendingSale(req)
	if err != nil {
		return nil, err
	}
	for _, item := range draft.Items {
		if err := checkCategory(s.catalog.JewelleryCategories, item.Category); err != nil {
			return nil, err
		}
	}
	merchant, err := s.merchantRepo.FindMerchantByID(ctx, draft.MerchantID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(merchant.AuditFields, userID, "merchant", draft.MerchantID); err != nil {
		return nil, err
	}
	draft.MerchantName = merchant.Name

	items, err := engine.NewPendingSale(draft, s.newID, userID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.ghaatRepo.SaveGhaatTransactions(ctx, items, nil); err != nil {
		s.LogError(ctx, err, "Failed to save pending sale", slog.String("merchant_id", merchant.ID))
		return nil, fmt.Errorf("failed to create pending sale: %w", err)
	}

	groups, _ := engine.GroupPendingSales(items)
	if len(groups) != 1 {
		return nil, apperrors.NewAppError(500, "pending sale could not be grouped", nil)
	}
	s.LogInfo(ctx, "Pending sale created",
		slog.String("group_id", groups[0].GroupID),
		slog.Int("items", len(items)),
		slog.String("fine_gold", groups[0].TotalFineGold.String()))
	return &groups[0], nil
}

func (s *pendingSaleService) ListPendingSales(ctx context.Context, userID string) ([]domain.PendingSaleGroup, []domain.DataQualityWarning, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, nil, err
	}
	txns, err := s.ghaatRepo.ListGhaatTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list jewellery transactions")
		return nil, nil, fmt.Errorf("failed to load jewellery transactions: %w", err)
	}
	groups, warnings := engine.GroupPendingSales(txns)
	s.LogWarnings(ctx, "pending_sales", warnings)
	return groups, warnings, nil
}

func (s *pendingSaleService) loadGroup(ctx context.Context, groupID, userID string) ([]domain.GhaatTransaction, error) {
	items, err := s.ghaatRepo.ListGhaatTransactionsByGroup(ctx, userID, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load pending sale", slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to load pending sale: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: pending sale %s", apperrors.ErrNotFound, groupID)
	}
	return items, nil
}

func (s *pendingSaleService) ConfirmPendingSale(ctx context.Context, groupID string, req dto.ConfirmPendingSaleRequest, userID string) (*domain.GroupConfirmation, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	terms, err := dto.ParseSettlement(req)
	if err != nil {
		return nil, err
	}
	items, err := s.loadGroup(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	confirmation, err := engine.ConfirmPendingSale(items, terms, s.newID, userID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.ghaatRepo.ConfirmPendingGroup(ctx, confirmation); err != nil {
		s.LogError(ctx, err, "Failed to confirm pending sale", slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to confirm pending sale: %w", err)
	}
	s.LogInfo(ctx, "Pending sale confirmed",
		slog.String("group_id", groupID),
		slog.String("amount_received", terms.AmountReceived.String()),
		slog.Bool("gold_returned", confirmation.LedgerEffect != nil))
	return &confirmation, nil
}

// DeletePendingSale also clears incomplete groups, as long as nothing in them was confirmed.
func (s *pendingSaleService) DeletePendingSale(ctx context.Context, groupID string, userID string) error {
	if err := s.RequireUser(userID); err != nil {
		return err
	}
	items, err := s.loadGroup(ctx, groupID, userID)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(items))
	for _, g := range items {
		if g.Status != domain.StatusPending {
			return fmt.Errorf("%w: pending sale %s has %s items and cannot be deleted",
				apperrors.ErrInvalidState, groupID, g.Status)
		}
		ids = append(ids, g.ID)
	}
	if err := s.ghaatRepo.DeleteGhaatTransactions(ctx, ids); err != nil {
		s.LogError(ctx, err, "Failed to delete pending sale", slog.String("group_id", groupID))
		return fmt.Errorf("failed to delete pending sale: %w", err)
	}
	s.LogInfo(ctx, "Pending sale deleted", slog.String("group_id", groupID), slog.Int("items", len(ids)))
	return nil
}
