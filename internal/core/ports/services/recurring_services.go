package services

import (
	"context"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
)

// RecurringSvcFacade manages recurring templates and materialises due occurrences.
type RecurringSvcFacade interface {
	CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest, userID string) (*domain.RecurringTransaction, error)
	ListRecurring(ctx context.Context, userID string) ([]domain.RecurringTransaction, error)
	UpdateRecurringAmount(ctx context.Context, recurringID string, req dto.UpdateRecurringAmountRequest, userID string) (*domain.RecurringTransaction, error)
	PauseRecurring(ctx context.Context, recurringID string, userID string) (*domain.RecurringTransaction, error)
	ResumeRecurring(ctx context.Context, recurringID string, userID string) (*domain.RecurringTransaction, error)
	DeleteRecurring(ctx context.Context, recurringID string, userID string) error

	// ProcessDue generates the transactions due at now across all users. A failing item
	// does not stop the others.
	ProcessDue(ctx context.Context, now time.Time) (*dto.ProcessDueResult, error)
}
