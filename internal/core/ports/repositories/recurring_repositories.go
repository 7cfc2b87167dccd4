package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
)

type RecurringTransactionReader interface {
	FindRecurringByID(ctx context.Context, id string) (*domain.RecurringTransaction, error)
	// FindRecurringByIDForUpdate locks the row so concurrent workers do not generate twice.
	FindRecurringByIDForUpdate(ctx context.Context, id string) (*domain.RecurringTransaction, error)
	ListRecurringByUser(ctx context.Context, userID string) ([]domain.RecurringTransaction, error)
	// ListDueRecurring returns active items with next_occurrence <= at whose end date is
	// unset or not yet passed.
	ListDueRecurring(ctx context.Context, at time.Time, limit int) ([]domain.RecurringTransaction, error)
}

type RecurringTransactionWriter interface {
	SaveRecurring(ctx context.Context, r *domain.RecurringTransaction) error
	UpdateRecurring(ctx context.Context, r *domain.RecurringTransaction) error
}

// RecurringTransactionRepository combines recurring transaction reads and writes.
type RecurringTransactionRepository interface {
	RecurringTransactionReader
	RecurringTransactionWriter
}
