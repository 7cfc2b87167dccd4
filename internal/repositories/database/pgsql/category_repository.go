package pgsql

import (
	"context"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/SscSPs/cuzdan_backend/internal/models"
	"github.com/SscSPs/cuzdan_backend/internal/utils/mapping"
)

const categoryColumns = `category_id, user_id, name, transaction_type, category_type, icon, color,
	is_default, is_active, parent_category_id, ` + auditColumns

type pgxCategoryRepository struct {
	uow *unitOfWork
}

var _ portsrepo.CategoryRepository = (*pgxCategoryRepository)(nil)

func (r *pgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ` + whereLive("", "category_id = $1")
	rows, err := r.uow.conn().Query(ctx, query, categoryID)
	m, err := collectOne[models.Category](rows, err, "category "+categoryID)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCategory(*m)
	return &c, nil
}

// ListCategoriesByUser lists defaults first, then by name.
func (r *pgxCategoryRepository) ListCategoriesByUser(ctx context.Context, userID string, filter portsrepo.CategoryFilter) ([]domain.Category, error) {
	var args argList
	conds := []string{"user_id = " + args.add(userID)}
	if filter.TransactionType != nil {
		conds = append(conds, "transaction_type = "+args.add(string(*filter.TransactionType)))
	}
	if !filter.IncludeInactive {
		conds = append(conds, "is_active = TRUE")
	}
	query := `SELECT ` + categoryColumns + ` FROM categories ` + whereLive("", conds...) +
		` ORDER BY is_default DESC, name`
	rows, err := r.uow.conn().Query(ctx, query, args.args...)
	ms, err := collectAll[models.Category](rows, err, "categories of user "+userID)
	if err != nil {
		return nil, err
	}
	cats := make([]domain.Category, len(ms))
	for i, m := range ms {
		cats[i] = mapping.ToDomainCategory(m)
	}
	return cats, nil
}

const insertCategory = `
	INSERT INTO categories (` + categoryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func (r *pgxCategoryRepository) SaveCategory(_ context.Context, category *domain.Category) error {
	m := mapping.ToModelCategory(category)
	r.uow.insert("save category "+m.Name, insertCategory,
		m.CategoryID, m.UserID, m.Name, m.TransactionType, m.CategoryType, m.Icon, m.Color,
		m.IsDefault, m.IsActive, m.ParentCategoryID, m.CreatedAt, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}

func (r *pgxCategoryRepository) SaveCategories(ctx context.Context, categories []*domain.Category) error {
	for _, c := range categories {
		if err := r.SaveCategory(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *pgxCategoryRepository) UpdateCategory(_ context.Context, category *domain.Category) error {
	m := mapping.ToModelCategory(category)
	r.uow.update("update category "+m.CategoryID, `
		UPDATE categories
		SET name = $2, icon = $3, color = $4, is_active = $5, parent_category_id = $6,
			updated_at = $7, is_deleted = $8, deleted_at = $9
		WHERE category_id = $1 AND is_deleted = FALSE`,
		m.CategoryID, m.Name, m.Icon, m.Color, m.IsActive, m.ParentCategoryID,
		m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}
