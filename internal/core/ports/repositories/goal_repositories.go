package repositories

import (
	"context"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
)

type GoalReader interface {
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)
	// FindGoalByIDForUpdate locks the row so concurrent contributions serialize.
	FindGoalByIDForUpdate(ctx context.Context, goalID string) (*domain.Goal, error)
	// ListGoalsByUser returns the user's goals, filtered by status when one is given.
	ListGoalsByUser(ctx context.Context, userID string, status *domain.GoalStatus) ([]domain.Goal, error)
}

type GoalWriter interface {
	SaveGoal(ctx context.Context, goal *domain.Goal) error
	UpdateGoal(ctx context.Context, goal *domain.Goal) error
}

// GoalRepository combines goal reads and writes.
type GoalRepository interface {
	GoalReader
	GoalWriter
}
