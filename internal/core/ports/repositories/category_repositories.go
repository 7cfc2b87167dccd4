package repositories

import (
	"context"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
)

// CategoryFilter narrows ListCategoriesByUser.
type CategoryFilter struct {
	TransactionType *domain.TransactionType
	IncludeInactive bool
}

type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategoriesByUser(ctx context.Context, userID string, filter CategoryFilter) ([]domain.Category, error)
}

type CategoryWriter interface {
	SaveCategory(ctx context.Context, category *domain.Category) error
	// SaveCategories queues several inserts, used when seeding a new user.
	SaveCategories(ctx context.Context, categories []*domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
}

// CategoryRepository combines category reads and writes.
type CategoryRepository interface {
	CategoryReader
	CategoryWriter
}
