package services

import (
	"context"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
)

// CategorySeeder creates the starter catalog inside the caller's unit of work.
type CategorySeeder interface {
	SeedDefaultCategoriesForUser(ctx context.Context, uow portsrepo.UnitOfWork, userID string) error
}

// CategorySvcFacade manages categories.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context, userID string, params dto.ListCategoriesParams) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)
	DeactivateCategory(ctx context.Context, categoryID string, userID string) error
	ActivateCategory(ctx context.Context, categoryID string, userID string) error
}
