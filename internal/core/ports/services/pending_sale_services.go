package services

import (
	"context"

	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/dto"
)

// PendingSaleSvcFacade drives jewellery handed to merchants through give → confirm.
type PendingSaleSvcFacade interface {
	CreatePendingSale(ctx context.Context, req dto.CreatePendingSaleRequest, userID string) (*domain.PendingSaleGroup, error)

	// ListPendingSales returns complete pending groups, newest first. Incomplete or mixed
	// groups are left out and reported as warnings.
	ListPendingSales(ctx context.Context, userID string) ([]domain.PendingSaleGroup, []domain.DataQualityWarning, error)

	ConfirmPendingSale(ctx context.Context, groupID string, req dto.ConfirmPendingSaleRequest, userID string) (*domain.GroupConfirmation, error)

	// DeletePendingSale removes every member of a pending group.
	DeletePendingSale(ctx context.Context, groupID string, userID string) error
}
