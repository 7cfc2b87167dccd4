package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/SscSPs/cuzdan_backend/internal/middleware"
	"github.com/SscSPs/cuzdan_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or returns the default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// logUnexpected logs err unless it is an outcome the caller is expected to handle.
func (s *BaseService) logUnexpected(ctx context.Context, err error, msg string, keyvals ...any) {
	if isExpected(err) {
		s.LogDebug(ctx, msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

func isExpected(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrForbidden) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrUnauthorized) ||
		errors.Is(err, context.Canceled) ||
		domain.IsRuleViolation(err)
}

// runInTransaction begins a transaction on uow, runs fn and commits. Any error from fn
// rolls the transaction back and is returned unchanged.
func runInTransaction(ctx context.Context, uow portsrepo.UnitOfWork, fn func() error) error {
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(); err != nil {
		if rbErr := uow.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Rollback failed", slog.String("error", rbErr.Error()))
		}
		return err
	}
	return uow.Commit(ctx)
}

// ensureOwner returns ErrForbidden unless the resource belongs to userID.
func ensureOwner(ownerID, userID string) error {
	if ownerID != userID {
		return apperrors.ErrForbidden
	}
	return nil
}

// parseCurrency converts a request currency code, reporting unknown codes as validation errors.
func parseCurrency(code string) (domain.Currency, error) {
	c, err := domain.ParseCurrency(code)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return c, nil
}

// money rounds amount to the currency's precision.
func money(amount decimal.Decimal, currency domain.Currency) domain.Money {
	return domain.NewMoney(utils.RoundToCurrency(amount, currency), currency)
}

// dateOnly drops the time of day, in UTC. Budget periods are stored as dates.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
