package services

import (
	"context"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
)

// BudgetSvcFacade manages budgets. Reads return the budget together with its live usage.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.BudgetUsage, error)
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.BudgetUsage, error)
	DeleteBudget(ctx context.Context, budgetID string, userID string) error
	GetBudget(ctx context.Context, budgetID string, userID string) (*domain.BudgetUsage, error)
	ListBudgets(ctx context.Context, userID string, activeOnly bool) ([]domain.BudgetUsage, error)
}

// GoalSvcFacade manages savings goals.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error)
	// AddContribution optionally withdraws the amount from an account in the same transaction.
	AddContribution(ctx context.Context, goalID string, req dto.ContributionRequest, userID string) (*domain.Goal, error)
	PauseGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error)
	ResumeGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error)
	CancelGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string, userID string) error
	GetGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string, status *domain.GoalStatus) ([]domain.Goal, error)
}
