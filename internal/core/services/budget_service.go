package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
)

type budgetService struct {
	BaseService
	uowFactory portsrepo.UnitOfWorkFactory
}

// NewBudgetService creates a new budget service.
func NewBudgetService(uowFactory portsrepo.UnitOfWorkFactory) portssvc.BudgetSvcFacade {
	return &budgetService{uowFactory: uowFactory}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// budgetUsage sums the live expense of the budget's category over its period.
func budgetUsage(ctx context.Context, uow portsrepo.UnitOfWork, b *domain.Budget) (domain.BudgetUsage, error) {
	spent, err := uow.Transactions().SumByCategory(ctx, b.UserID, b.CategoryID, domain.Expense, b.Period)
	if err != nil {
		return domain.BudgetUsage{}, err
	}
	return domain.NewBudgetUsage(b, spent), nil
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.BudgetUsage, error) {
	currency, err := parseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	period, err := domain.NewDateRange(dateOnly(req.PeriodStart), dateOnly(req.PeriodEnd))
	if err != nil {
		return nil, err
	}
	amount := money(req.Amount, currency)
	if !amount.IsPositive() {
		return nil, domain.ErrNonPositiveAmount
	}

	uow := s.uowFactory.New()
	category, err := getOwnedCategory(ctx, uow, req.CategoryID, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Invalid budget category", slog.String("category_id", req.CategoryID))
		return nil, err
	}
	if !category.Accepts(domain.Expense) {
		return nil, domain.ErrCategoryTypeMismatch
	}

	existing, err := uow.Budgets().FindActiveBudgetByCategoryAndDate(ctx, userID, req.CategoryID, period.Start)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: budget %s already covers this category on %s", apperrors.ErrDuplicate, existing.BudgetID, period.Start.Format("2006-01-02"))
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check existing budgets", slog.String("category_id", req.CategoryID))
		return nil, err
	}

	budget := domain.NewBudget(userID, req.CategoryID, req.Name, amount, period)
	if req.AlertThresholdPercentage != nil {
		if err := budget.SetAlertThreshold(*req.AlertThresholdPercentage); err != nil {
			return nil, err
		}
	}
	if req.AlertWhenExceeded != nil {
		budget.SetAlertWhenExceeded(*req.AlertWhenExceeded)
	}
	budget.UpdatedAt = nil

	if err := uow.Budgets().SaveBudget(ctx, budget); err != nil {
		return nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("user_id", userID))
		return nil, err
	}

	usage, err := budgetUsage(ctx, uow, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute budget usage", slog.String("budget_id", budget.BudgetID))
		return nil, err
	}
	s.LogInfo(ctx, "Budget created", slog.String("budget_id", budget.BudgetID))
	return &usage, nil
}

// getOwnedBudget loads a budget through uow and checks it belongs to userID.
func getOwnedBudget(ctx context.Context, uow portsrepo.UnitOfWork, budgetID, userID string) (*domain.Budget, error) {
	budget, err := uow.Budgets().FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(budget.UserID, userID); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.BudgetUsage, error) {
	period, err := domain.NewDateRange(dateOnly(req.PeriodStart), dateOnly(req.PeriodEnd))
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	budget, err := getOwnedBudget(ctx, uow, budgetID, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get budget", slog.String("budget_id", budgetID))
		return nil, err
	}

	amount := money(req.Amount, budget.Amount.Currency)
	if !amount.IsPositive() {
		return nil, domain.ErrNonPositiveAmount
	}
	budget.Update(req.Name, amount, period)
	if req.AlertThresholdPercentage != nil {
		if err := budget.SetAlertThreshold(*req.AlertThresholdPercentage); err != nil {
			return nil, err
		}
	}
	if req.AlertWhenExceeded != nil {
		budget.SetAlertWhenExceeded(*req.AlertWhenExceeded)
	}
	if req.IsActive != nil {
		if *req.IsActive {
			budget.Activate()
		} else {
			budget.Deactivate()
		}
	}

	if err := uow.Budgets().UpdateBudget(ctx, budget); err != nil {
		return nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", budgetID))
		return nil, err
	}

	usage, err := budgetUsage(ctx, uow, budget)
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string, userID string) error {
	uow := s.uowFactory.New()
	budget, err := getOwnedBudget(ctx, uow, budgetID, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get budget", slog.String("budget_id", budgetID))
		return err
	}

	budget.Delete()
	if err := uow.Budgets().UpdateBudget(ctx, budget); err != nil {
		return err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		return err
	}
	s.LogInfo(ctx, "Budget deleted", slog.String("budget_id", budgetID))
	return nil
}

func (s *budgetService) GetBudget(ctx context.Context, budgetID string, userID string) (*domain.BudgetUsage, error) {
	uow := s.uowFactory.New()
	budget, err := getOwnedBudget(ctx, uow, budgetID, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get budget", slog.String("budget_id", budgetID))
		return nil, err
	}
	usage, err := budgetUsage(ctx, uow, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute budget usage", slog.String("budget_id", budgetID))
		return nil, err
	}
	return &usage, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, userID string, activeOnly bool) ([]domain.BudgetUsage, error) {
	uow := s.uowFactory.New()
	budgets, err := uow.Budgets().ListBudgetsByUser(ctx, userID, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets", slog.String("user_id", userID))
		return nil, err
	}

	usages := make([]domain.BudgetUsage, 0, len(budgets))
	for i := range budgets {
		usage, err := budgetUsage(ctx, uow, &budgets[i])
		if err != nil {
			s.LogError(ctx, err, "Failed to compute budget usage", slog.String("budget_id", budgets[i].BudgetID))
			return nil, err
		}
		usages = append(usages, usage)
	}
	return usages, nil
}
