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

type financialRecordService struct {
	BaseService
	recordRepo portsrepo.FinancialRecordRepositoryFacade
	catalog    config.Catalog
}

// NewFinancialRecordService creates the expense/income service.
func NewFinancialRecordService(recordRepo portsrepo.FinancialRecordRepositoryFacade, catalog config.Catalog, opts ...ServiceOption) portssvc.FinancialRecordSvcFacade {
	return &financialRecordService{
		BaseService: newBaseService(opts),
		recordRepo:  recordRepo,
		catalog:     catalog,
	}
}

func checkKind(kind domain.RecordKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown record kind %q", apperrors.ErrValidation, kind)
	}
	return nil
}

func (s *financialRecordService) ListFinancialRecords(ctx context.Context, kind domain.RecordKind, userID string) ([]domain.FinancialRecord, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	records, err := s.recordRepo.ListFinancialRecords(ctx, userID, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list financial records", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list %s records: %w", kind, err)
	}
	if records == nil {
		return []domain.FinancialRecord{}, nil
	}
	return records, nil
}

func (s *financialRecordService) CreateFinancialRecord(ctx context.Context, kind domain.RecordKind, req dto.FinancialRecordRequest, userID string) (*domain.FinancialRecord, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	record, err := dto.ParseFinancialRecord(kind, req)
	if err != nil {
		return nil, err
	}
	if err := checkCategory(s.catalog.Categories(kind), record.Category); err != nil {
		return nil, err
	}
	record.ID = s.newID()
	record.AuditFields = s.newAudit(userID)

	if err := s.recordRepo.SaveFinancialRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save financial record", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to create %s record: %w", kind, err)
	}
	s.LogInfo(ctx, "Financial record created", slog.String("record_id", record.ID), slog.String("kind", string(kind)))
	return &record, nil
}

func (s *financialRecordService) getOwned(ctx context.Context, kind domain.RecordKind, recordID, userID string) (*domain.FinancialRecord, error) {
	existing, err := s.recordRepo.FindFinancialRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(existing.AuditFields, userID, "financial record", recordID); err != nil {
		return nil, err
	}
	if existing.Kind != kind {
		return nil, fmt.Errorf("%w: %s record %s", apperrors.ErrNotFound, kind, recordID)
	}
	return existing, nil
}

func (s *financialRecordService) UpdateFinancialRecord(ctx context.Context, kind domain.RecordKind, recordID string, req dto.FinancialRecordRequest, userID string) (*domain.FinancialRecord, error) {
	if err := s.RequireUser(userID); err != nil {
		return nil, err
	}
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	existing, err := s.getOwned(ctx, kind, recordID, userID)
	if err != nil {
		return nil, err
	}
	record, err := dto.ParseFinancialRecord(kind, req)
	if err != nil {
		return nil, err
	}
	if err := checkCategory(s.catalog.Categories(kind), record.Category); err != nil {
		return nil, err
	}
	record.ID = existing.ID
	record.AuditFields = s.touchAudit(existing.AuditFields, userID)

	if err := s.recordRepo.UpdateFinancialRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to update financial record", slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to update %s record: %w", kind, err)
	}
	return &record, nil
}

func (s *financialRecordService) DeleteFinancialRecord(ctx context.Context, kind domain.RecordKind, recordID string, userID string) error {
	if err := s.RequireUser(userID); err != nil {
		return err
	}
	if err := checkKind(kind); err != nil {
		return err
	}
	if _, err := s.getOwned(ctx, kind, recordID, userID); err != nil {
		return err
	}
	if err := s.recordRepo.DeleteFinancialRecord(ctx, recordID); err != nil {
		s.LogError(ctx, err, "Failed to delete financial record", slog.String("record_id", recordID))
		return fmt.Errorf("failed to delete %s record: %w", kind, err)
	}
	s.LogInfo(ctx, "Financial record deleted", slog.String("record_id", recordID))
	return nil
}

func (s *financialRecordService) ComputePeriodAnalytics(ctx context.Context, kind domain.RecordKind, params dto.AnalyticsParams, userID string) (*domain.PeriodAnalytics, error) {
	query, err := dto.ParseAnalyticsQuery(params)
	if err != nil {
		return nil, err
	}
	records, err := s.ListFinancialRecords(ctx, kind, userID)
	if err != nil {
		return nil, err
	}
	out, err := engine.ComputePeriodAnalytics(records, query)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Period analytics computed",
		slog.String("kind", string(kind)),
		slog.Int("items", out.ItemCount),
		slog.String("total", out.TotalForPeriod.String()))
	return &out, nil
}
