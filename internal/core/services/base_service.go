package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/bullion_ledger/internal/apperrors"
	"github.com/SscSPs/bullion_ledger/internal/core/domain"
	"github.com/SscSPs/bullion_ledger/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	newID func() string
	now   func() time.Time
}

// ServiceOption configures the BaseService embedded in every service.
type ServiceOption func(*BaseService)

// WithIDGenerator replaces uuid generation, mostly for tests.
func WithIDGenerator(fn func() string) ServiceOption {
	return func(b *BaseService) { b.newID = fn }
}

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) ServiceOption {
	return func(b *BaseService) { b.now = fn }
}

func newBaseService(opts []ServiceOption) BaseService {
	b := BaseService{newID: uuid.NewString, now: time.Now}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogWarnings reports data-quality warnings returned by an engine at Warn level.
func (s *BaseService) LogWarnings(ctx context.Context, op string, warnings []domain.DataQualityWarning) {
	if len(warnings) == 0 {
		return
	}
	logger := s.GetLogger(ctx)
	for _, w := range warnings {
		logger.Warn("data quality warning",
			slog.String("operation", op),
			slog.String("record_id", w.RecordID),
			slog.String("field", w.Field),
			slog.String("detail", w.Message))
	}
}

// RequireUser fails with ErrNotAuthenticated when no user is attached to the call.
func (s *BaseService) RequireUser(userID string) error {
	if userID == "" {
		return apperrors.ErrNotAuthenticated
	}
	return nil
}

// newAudit stamps a freshly created record.
func (s *BaseService) newAudit(userID string) domain.AuditFields {
	now := s.now().UTC()
	return domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}
}

// touchAudit keeps the creation stamp of prev and records the update.
func (s *BaseService) touchAudit(prev domain.AuditFields, userID string) domain.AuditFields {
	prev.LastUpdatedAt = s.now().UTC()
	prev.LastUpdatedBy = userID
	return prev
}

// checkOwner hides records of other users behind ErrNotFound.
func checkOwner(audit domain.AuditFields, userID, what, id string) error {
	if audit.CreatedBy != userID {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, what, id)
	}
	return nil
}

// checkCategory accepts any category when the allowed list is empty.
func checkCategory(allowed []string, category string) error {
	if len(allowed) == 0 || slices.Contains(allowed, category) {
		return nil
	}
	return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
}
