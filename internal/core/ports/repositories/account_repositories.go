package repositories

import (
	"context"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Every finder excludes soft-deleted rows.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByUser returns the user's accounts, optionally only the active ones.
	ListAccountsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Account, error)

	// TotalBalanceByCurrency sums balances of active accounts included in the total, grouped by currency.
	TotalBalanceByCurrency(ctx context.Context, userID string) ([]domain.CurrencyTotal, error)
}

// AccountLocker loads accounts with a row lock. Only meaningful inside an open transaction.
type AccountLocker interface {
	// FindAccountByIDForUpdate selects one account FOR UPDATE.
	FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDsForUpdate locks several accounts in a stable order to avoid deadlocks.
	FindAccountsByIDsForUpdate(ctx context.Context, accountIDs []string) (map[string]*domain.Account, error)
}

// AccountWriter queues account writes on the unit of work.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account *domain.Account) error
	UpdateAccount(ctx context.Context, account *domain.Account) error
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountLocker
	AccountWriter
}
