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
)

type rawGoldService struct {
	BaseService
	rawGoldRepo portsrepo.RawGoldRepositoryFacade
}

// NewRawGoldService creates the raw gold ledger service.
func NewRawGoldService(rawGoldRepo portsrepo.RawGoldRepositoryFacade, opts ...ServiceOption) portssvc.RawGoldSvcFacade {
	return &rawGoldService{BaseService: newBaseService(opts), rawGoldRepo: rawGoldRepo}
}

func (s *rawGoldService) GetRawGoldLedger(ctx context.Context, params dto.RawGoldLedgerParams, userID string) (*domain.RawGoldLedgerView, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	window, err := params.Window()
	if err != nil {
		return nil, err
	}
	entries, err := s.rawGoldRepo.ListRawGoldEntries(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list raw gold entries")
		return nil, fmt.Errorf("failed to load raw gold entries: %w", err)
	}
	view, err := engine.BuildRawGoldLedger(entries, window)
	if err != nil {
		return nil, err
	}
	s.LogWarnings(ctx, "raw_gold_ledger", view.Warnings)
	return &view, nil
}

func (s *rawGoldService) CreateRawGoldEntry(ctx context.Context, req dto.RawGoldEntryRequest, userID string) (*domain.RawGoldLedgerEntry, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	entry, err := dto.ParseRawGoldEntry(req)
	if err != nil {
		return nil, err
	}
	entry.ID = s.newID()
	entry.AuditFields = s.newAudit(userID)
	if err := s.rawGoldRepo.SaveRawGoldEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save raw gold entry", slog.String("source", string(entry.Source)))
		return nil, fmt.Errorf("failed to create raw gold entry: %w", err)
	}
	s.LogInfo(ctx, "Raw gold entry created",
		slog.String("entry_id", entry.ID),
		slog.String("type", string(entry.Type)),
		slog.String("fine_gold", entry.FineGold.String()))
	return &entry, nil
}

func (s *rawGoldService) DeleteRawGoldEntry(ctx context.Context, entryID string, userID string) error {
	if err := s.RequireUser(userID); err != nil {
		return err
	}
	entry, err := s.rawGoldRepo.FindRawGoldEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if err := checkOwner(entry.AuditFields, userID, "raw gold entry", entryID); err != nil {
		return err
	}
	if err := engine.CheckRawGoldDeletable(*entry); err != nil {
		return err
	}
	if err := s.rawGoldRepo.DeleteRawGoldEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete raw gold entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete raw gold entry: %w", err)
	}
	return nil
}
