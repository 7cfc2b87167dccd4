package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
)

type BudgetReader interface {
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	ListBudgetsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Budget, error)

	// FindActiveBudgetByCategoryAndDate returns the active budget of the category whose
	// period contains date, or ErrNotFound.
	FindActiveBudgetByCategoryAndDate(ctx context.Context, userID, categoryID string, date time.Time) (*domain.Budget, error)
}

type BudgetWriter interface {
	SaveBudget(ctx context.Context, budget *domain.Budget) error
	UpdateBudget(ctx context.Context, budget *domain.Budget) error
}

// BudgetRepository combines budget reads and writes.
type BudgetRepository interface {
	BudgetReader
	BudgetWriter
}
