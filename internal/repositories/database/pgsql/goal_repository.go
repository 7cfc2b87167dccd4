package pgsql

import (
	"context"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/SscSPs/cuzdan_backend/internal/models"
	"github.com/SscSPs/cuzdan_backend/internal/utils/mapping"
)

const goalColumns = `goal_id, user_id, name, description, target_amount, current_amount, currency, target_date,
	status, image_url, icon, is_shared, family_id, ` + auditColumns

type pgxGoalRepository struct {
	uow *unitOfWork
}

var _ portsrepo.GoalRepository = (*pgxGoalRepository)(nil)

func (r *pgxGoalRepository) findOne(ctx context.Context, goalID, suffix string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals ` + whereLive("", "goal_id = $1") + suffix
	rows, err := r.uow.conn().Query(ctx, query, goalID)
	m, err := collectOne[models.Goal](rows, err, "goal "+goalID)
	if err != nil {
		return nil, err
	}
	g := mapping.ToDomainGoal(*m)
	return &g, nil
}

func (r *pgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	return r.findOne(ctx, goalID, "")
}

func (r *pgxGoalRepository) FindGoalByIDForUpdate(ctx context.Context, goalID string) (*domain.Goal, error) {
	return r.findOne(ctx, goalID, " FOR UPDATE")
}

func (r *pgxGoalRepository) ListGoalsByUser(ctx context.Context, userID string, status *domain.GoalStatus) ([]domain.Goal, error) {
	var args argList
	conds := []string{"user_id = " + args.add(userID)}
	if status != nil {
		conds = append(conds, "status = "+args.add(string(*status)))
	}
	query := `SELECT ` + goalColumns + ` FROM goals ` + whereLive("", conds...) + ` ORDER BY target_date, name`
	rows, err := r.uow.conn().Query(ctx, query, args.args...)
	ms, err := collectAll[models.Goal](rows, err, "goals of user "+userID)
	if err != nil {
		return nil, err
	}
	goals := make([]domain.Goal, len(ms))
	for i, m := range ms {
		goals[i] = mapping.ToDomainGoal(m)
	}
	return goals, nil
}

func (r *pgxGoalRepository) SaveGoal(_ context.Context, goal *domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	r.uow.insert("save goal "+m.GoalID, `
		INSERT INTO goals (`+goalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		m.GoalID, m.UserID, m.Name, m.Description, m.TargetAmount, m.CurrentAmount, m.Currency, m.TargetDate,
		m.Status, m.ImageURL, m.Icon, m.IsShared, m.FamilyID, m.CreatedAt, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}

func (r *pgxGoalRepository) UpdateGoal(_ context.Context, goal *domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	r.uow.update("update goal "+m.GoalID, `
		UPDATE goals
		SET name = $2, description = $3, target_amount = $4, current_amount = $5, target_date = $6, status = $7,
			image_url = $8, icon = $9, updated_at = $10, is_deleted = $11, deleted_at = $12
		WHERE goal_id = $1 AND is_deleted = FALSE`,
		m.GoalID, m.Name, m.Description, m.TargetAmount, m.CurrentAmount, m.TargetDate, m.Status,
		m.ImageURL, m.Icon, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}
