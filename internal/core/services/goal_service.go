package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
)

type goalService struct {
	BaseService
	uowFactory portsrepo.UnitOfWorkFactory
}

// NewGoalService creates a new goal service.
func NewGoalService(uowFactory portsrepo.UnitOfWorkFactory) portssvc.GoalSvcFacade {
	return &goalService{uowFactory: uowFactory}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error) {
	currency, err := parseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	target := money(req.TargetAmount, currency)
	if !target.IsPositive() {
		return nil, domain.ErrNonPositiveAmount
	}

	goal := domain.NewGoal(userID, req.Name, target, req.TargetDate, domain.GoalOptions{
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Icon:        req.Icon,
	})

	uow := s.uowFactory.New()
	if err := uow.Goals().SaveGoal(ctx, goal); err != nil {
		return nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.GoalID))
	return goal, nil
}

// lockOwnedGoal selects a goal FOR UPDATE and checks it belongs to userID.
func lockOwnedGoal(ctx context.Context, uow portsrepo.UnitOfWork, goalID, userID string) (*domain.Goal, error) {
	goal, err := uow.Goals().FindGoalByIDForUpdate(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(goal.UserID, userID); err != nil {
		return nil, err
	}
	return goal, nil
}

// mutate locks an owned goal, applies fn and commits.
func (s *goalService) mutate(ctx context.Context, goalID, userID, action string, fn func(*domain.Goal) error) (*domain.Goal, error) {
	uow := s.uowFactory.New()
	var goal *domain.Goal
	err := runInTransaction(ctx, uow, func() error {
		var err error
		goal, err = lockOwnedGoal(ctx, uow, goalID, userID)
		if err != nil {
			return err
		}
		if err := fn(goal); err != nil {
			return err
		}
		return uow.Goals().UpdateGoal(ctx, goal)
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to "+action+" goal", slog.String("goal_id", goalID))
		return nil, err
	}
	return goal, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error) {
	return s.mutate(ctx, goalID, userID, "update", func(g *domain.Goal) error {
		target := money(req.TargetAmount, g.TargetAmount.Currency)
		if !target.IsPositive() {
			return domain.ErrNonPositiveAmount
		}
		if err := g.Update(req.Name, req.Description, target, req.TargetDate); err != nil {
			return err
		}
		if req.ImageURL != g.ImageURL {
			g.SetImage(req.ImageURL, g.Icon)
		}
		return nil
	})
}

// AddContribution locks the goal before the source account so contributions and
// transactions never wait on each other in opposite orders.
func (s *goalService) AddContribution(ctx context.Context, goalID string, req dto.ContributionRequest, userID string) (*domain.Goal, error) {
	uow := s.uowFactory.New()
	var goal *domain.Goal
	err := runInTransaction(ctx, uow, func() error {
		var err error
		goal, err = lockOwnedGoal(ctx, uow, goalID, userID)
		if err != nil {
			return err
		}
		amount := money(req.Amount, goal.TargetAmount.Currency)
		if err := goal.AddContribution(amount); err != nil {
			return err
		}

		if req.FromAccountID != "" {
			account, err := lockOwnedAccount(ctx, uow, req.FromAccountID, userID)
			if err != nil {
				return err
			}
			if err := account.Withdraw(amount); err != nil {
				return err
			}
			if err := uow.Accounts().UpdateAccount(ctx, account); err != nil {
				return err
			}
		}
		return uow.Goals().UpdateGoal(ctx, goal)
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to add goal contribution", slog.String("goal_id", goalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal contribution added",
		slog.String("goal_id", goalID),
		slog.String("status", string(goal.Status)))
	return goal, nil
}

func (s *goalService) PauseGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error) {
	return s.mutate(ctx, goalID, userID, "pause", (*domain.Goal).Pause)
}

func (s *goalService) ResumeGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error) {
	return s.mutate(ctx, goalID, userID, "resume", (*domain.Goal).Resume)
}

func (s *goalService) CancelGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error) {
	return s.mutate(ctx, goalID, userID, "cancel", (*domain.Goal).Cancel)
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID string, userID string) error {
	_, err := s.mutate(ctx, goalID, userID, "delete", func(g *domain.Goal) error {
		g.Delete()
		return nil
	})
	return err
}

func (s *goalService) GetGoal(ctx context.Context, goalID string, userID string) (*domain.Goal, error) {
	goal, err := s.uowFactory.New().Goals().FindGoalByID(ctx, goalID)
	if err == nil {
		err = ensureOwner(goal.UserID, userID)
	}
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get goal", slog.String("goal_id", goalID))
		return nil, err
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, userID string, status *domain.GoalStatus) ([]domain.Goal, error) {
	goals, err := s.uowFactory.New().Goals().ListGoalsByUser(ctx, userID, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals", slog.String("user_id", userID))
		return nil, err
	}
	return goals, nil
}
