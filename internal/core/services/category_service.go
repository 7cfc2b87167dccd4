package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
)

// categorySeeder creates the default catalog for a new user.
type categorySeeder struct{}

// NewCategorySeeder returns the seeder used at registration.
func NewCategorySeeder() portssvc.CategorySeeder {
	return categorySeeder{}
}

// SeedDefaultCategoriesForUser queues the catalog on uow. The caller commits.
func (categorySeeder) SeedDefaultCategoriesForUser(ctx context.Context, uow portsrepo.UnitOfWork, userID string) error {
	return uow.Categories().SaveCategories(ctx, domain.NewDefaultCategories(userID))
}

type categoryService struct {
	BaseService
	uowFactory portsrepo.UnitOfWorkFactory
}

// NewCategoryService creates a new category service.
func NewCategoryService(uowFactory portsrepo.UnitOfWorkFactory) portssvc.CategorySvcFacade {
	return &categoryService{uowFactory: uowFactory}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, userID string, params dto.ListCategoriesParams) ([]domain.Category, error) {
	filter := portsrepo.CategoryFilter{IncludeInactive: params.IncludeInactive}
	if params.TransactionType != "" {
		t := domain.TransactionType(params.TransactionType)
		filter.TransactionType = &t
	}
	categories, err := s.uowFactory.New().Categories().ListCategoriesByUser(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("user_id", userID))
		return nil, err
	}
	return categories, nil
}

// getOwnedCategory loads a category through uow and checks it belongs to userID.
func getOwnedCategory(ctx context.Context, uow portsrepo.UnitOfWork, categoryID, userID string) (*domain.Category, error) {
	category, err := uow.Categories().FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(category.UserID, userID); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	if req.TransactionType == domain.Transfer {
		return nil, fmt.Errorf("%w: transfers do not use categories", apperrors.ErrValidation)
	}
	catType := req.CategoryType
	if catType == "" {
		catType = domain.CategoryOther
	}

	uow := s.uowFactory.New()
	if req.ParentCategoryID != nil {
		parent, err := getOwnedCategory(ctx, uow, *req.ParentCategoryID, userID)
		if err != nil {
			s.logUnexpected(ctx, err, "Invalid parent category", slog.String("parent_id", *req.ParentCategoryID))
			return nil, fmt.Errorf("invalid parent category: %w", err)
		}
		if !parent.Accepts(req.TransactionType) {
			return nil, domain.ErrCategoryTypeMismatch
		}
	}

	category := domain.NewCategory(userID, req.Name, req.TransactionType, catType, req.Icon, req.Color, false, req.ParentCategoryID)
	if err := uow.Categories().SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return category, nil
}

// mutate loads an owned category, applies fn and saves it.
func (s *categoryService) mutate(ctx context.Context, categoryID, userID string, fn func(*domain.Category) error) (*domain.Category, error) {
	uow := s.uowFactory.New()
	category, err := getOwnedCategory(ctx, uow, categoryID, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get category", slog.String("category_id", categoryID))
		return nil, err
	}
	if err := fn(category); err != nil {
		return nil, err
	}
	if err := uow.Categories().UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	return s.mutate(ctx, categoryID, userID, func(c *domain.Category) error {
		return c.Update(req.Name, req.Icon, req.Color)
	})
}

func (s *categoryService) DeactivateCategory(ctx context.Context, categoryID string, userID string) error {
	_, err := s.mutate(ctx, categoryID, userID, func(c *domain.Category) error {
		return c.Deactivate()
	})
	return err
}

func (s *categoryService) ActivateCategory(ctx context.Context, categoryID string, userID string) error {
	_, err := s.mutate(ctx, categoryID, userID, func(c *domain.Category) error {
		c.Activate()
		return nil
	})
	return err
}
