package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/SscSPs/cuzdan_backend/internal/models"
	"github.com/SscSPs/cuzdan_backend/internal/utils/mapping"
)

const budgetColumns = `budget_id, user_id, category_id, name, amount, currency, period_start, period_end,
	alert_when_exceeded, alert_threshold_percentage, is_active, ` + auditColumns

type pgxBudgetRepository struct {
	uow *unitOfWork
}

var _ portsrepo.BudgetRepository = (*pgxBudgetRepository)(nil)

func (r *pgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets ` + whereLive("", "budget_id = $1")
	rows, err := r.uow.conn().Query(ctx, query, budgetID)
	m, err := collectOne[models.Budget](rows, err, "budget "+budgetID)
	if err != nil {
		return nil, err
	}
	b := mapping.ToDomainBudget(*m)
	return &b, nil
}

func (r *pgxBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Budget, error) {
	conds := []string{"user_id = $1"}
	if activeOnly {
		conds = append(conds, "is_active = TRUE")
	}
	query := `SELECT ` + budgetColumns + ` FROM budgets ` + whereLive("", conds...) + ` ORDER BY period_start DESC, name`
	rows, err := r.uow.conn().Query(ctx, query, userID)
	ms, err := collectAll[models.Budget](rows, err, "budgets of user "+userID)
	if err != nil {
		return nil, err
	}
	budgets := make([]domain.Budget, len(ms))
	for i, m := range ms {
		budgets[i] = mapping.ToDomainBudget(m)
	}
	return budgets, nil
}

func (r *pgxBudgetRepository) FindActiveBudgetByCategoryAndDate(ctx context.Context, userID, categoryID string, date time.Time) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets ` + whereLive("",
		"user_id = $1", "category_id = $2", "is_active = TRUE",
		"period_start <= $3::date", "period_end >= $3::date",
	) + ` ORDER BY period_start DESC LIMIT 1`
	rows, err := r.uow.conn().Query(ctx, query, userID, categoryID, date.UTC())
	m, err := collectOne[models.Budget](rows, err, "active budget for category "+categoryID)
	if err != nil {
		return nil, err
	}
	b := mapping.ToDomainBudget(*m)
	return &b, nil
}

func (r *pgxBudgetRepository) SaveBudget(_ context.Context, budget *domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	r.uow.insert("save budget "+m.BudgetID, `
		INSERT INTO budgets (`+budgetColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		m.BudgetID, m.UserID, m.CategoryID, m.Name, m.Amount, m.Currency, m.PeriodStart, m.PeriodEnd,
		m.AlertWhenExceeded, m.AlertThresholdPercentage, m.IsActive,
		m.CreatedAt, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}

func (r *pgxBudgetRepository) UpdateBudget(_ context.Context, budget *domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	r.uow.update("update budget "+m.BudgetID, `
		UPDATE budgets
		SET name = $2, amount = $3, currency = $4, period_start = $5, period_end = $6, alert_when_exceeded = $7,
			alert_threshold_percentage = $8, is_active = $9, updated_at = $10, is_deleted = $11, deleted_at = $12
		WHERE budget_id = $1 AND is_deleted = FALSE`,
		m.BudgetID, m.Name, m.Amount, m.Currency, m.PeriodStart, m.PeriodEnd, m.AlertWhenExceeded,
		m.AlertThresholdPercentage, m.IsActive, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}
