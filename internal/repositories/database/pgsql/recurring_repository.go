package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/SscSPs/cuzdan_backend/internal/models"
	"github.com/SscSPs/cuzdan_backend/internal/utils/mapping"
)

const recurringColumns = `recurring_transaction_id, user_id, account_id, category_id, transaction_type, amount,
	currency, description, frequency, interval_count, start_date, end_date, next_occurrence, last_generated_at,
	send_reminder, reminder_days_before, is_active, ` + auditColumns

type pgxRecurringRepository struct {
	uow *unitOfWork
}

var _ portsrepo.RecurringTransactionRepository = (*pgxRecurringRepository)(nil)

func (r *pgxRecurringRepository) findOne(ctx context.Context, id, suffix string) (*domain.RecurringTransaction, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_transactions ` +
		whereLive("", "recurring_transaction_id = $1") + suffix
	rows, err := r.uow.conn().Query(ctx, query, id)
	m, err := collectOne[models.RecurringTransaction](rows, err, "recurring transaction "+id)
	if err != nil {
		return nil, err
	}
	rt := mapping.ToDomainRecurring(*m)
	return &rt, nil
}

func (r *pgxRecurringRepository) FindRecurringByID(ctx context.Context, id string) (*domain.RecurringTransaction, error) {
	return r.findOne(ctx, id, "")
}

func (r *pgxRecurringRepository) FindRecurringByIDForUpdate(ctx context.Context, id string) (*domain.RecurringTransaction, error) {
	return r.findOne(ctx, id, " FOR UPDATE")
}

func (r *pgxRecurringRepository) list(ctx context.Context, desc, query string, args ...any) ([]domain.RecurringTransaction, error) {
	rows, err := r.uow.conn().Query(ctx, query, args...)
	ms, err := collectAll[models.RecurringTransaction](rows, err, desc)
	if err != nil {
		return nil, err
	}
	items := make([]domain.RecurringTransaction, len(ms))
	for i, m := range ms {
		items[i] = mapping.ToDomainRecurring(m)
	}
	return items, nil
}

func (r *pgxRecurringRepository) ListRecurringByUser(ctx context.Context, userID string) ([]domain.RecurringTransaction, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_transactions ` + whereLive("", "user_id = $1") +
		` ORDER BY next_occurrence`
	return r.list(ctx, "recurring transactions of user "+userID, query, userID)
}

func (r *pgxRecurringRepository) ListDueRecurring(ctx context.Context, at time.Time, limit int) ([]domain.RecurringTransaction, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_transactions ` + whereLive("",
		"is_active = TRUE", "next_occurrence <= $1", "(end_date IS NULL OR end_date >= $1)",
	) + ` ORDER BY next_occurrence LIMIT $2`
	return r.list(ctx, "due recurring transactions", query, at, limit)
}

func (r *pgxRecurringRepository) SaveRecurring(_ context.Context, rt *domain.RecurringTransaction) error {
	m := mapping.ToModelRecurring(rt)
	r.uow.insert("save recurring transaction "+m.RecurringTransactionID, `
		INSERT INTO recurring_transactions (`+recurringColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		m.RecurringTransactionID, m.UserID, m.AccountID, m.CategoryID, m.TransactionType, m.Amount,
		m.Currency, m.Description, m.Frequency, m.IntervalCount, m.StartDate, m.EndDate, m.NextOccurrence,
		m.LastGeneratedAt, m.SendReminder, m.ReminderDaysBefore, m.IsActive,
		m.CreatedAt, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}

func (r *pgxRecurringRepository) UpdateRecurring(_ context.Context, rt *domain.RecurringTransaction) error {
	m := mapping.ToModelRecurring(rt)
	r.uow.update("update recurring transaction "+m.RecurringTransactionID, `
		UPDATE recurring_transactions
		SET amount = $2, description = $3, next_occurrence = $4, last_generated_at = $5, send_reminder = $6,
			reminder_days_before = $7, is_active = $8, updated_at = $9, is_deleted = $10, deleted_at = $11
		WHERE recurring_transaction_id = $1 AND is_deleted = FALSE`,
		m.RecurringTransactionID, m.Amount, m.Description, m.NextOccurrence, m.LastGeneratedAt, m.SendReminder,
		m.ReminderDaysBefore, m.IsActive, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}
