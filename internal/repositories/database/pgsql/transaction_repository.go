package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/SscSPs/cuzdan_backend/internal/models"
	"github.com/SscSPs/cuzdan_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, user_id, account_id, category_id, transaction_type, amount, currency,
	transaction_date, description, notes, to_account_id, tags, receipt_url, is_auto_categorized,
	is_recurring, recurring_transaction_id, ` + auditColumns

const defaultTransactionPageSize = 50

type pgxTransactionRepository struct {
	uow *unitOfWork
}

var _ portsrepo.TransactionRepository = (*pgxTransactionRepository)(nil)

// inPeriod compares on the UTC calendar day so a period ending on a date includes that whole day.
func inPeriod(args *argList, column string, period domain.DateRange) string {
	return fmt.Sprintf("(%s AT TIME ZONE 'UTC')::date BETWEEN %s::date AND %s::date",
		column, args.add(period.Start), args.add(period.End))
}

func (r *pgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findOne(ctx, transactionID, "")
}

// FindTransactionByIDForUpdate retrieves a transaction and locks its row until the transaction ends.
func (r *pgxTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findOne(ctx, transactionID, " FOR UPDATE")
}

func (r *pgxTransactionRepository) findOne(ctx context.Context, transactionID, suffix string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ` + whereLive("", "transaction_id = $1") + suffix
	rows, err := r.uow.conn().Query(ctx, query, transactionID)
	m, err := collectOne[models.Transaction](rows, err, "transaction "+transactionID)
	if err != nil {
		return nil, err
	}
	t := mapping.ToDomainTransaction(*m)
	return &t, nil
}

// ListTransactions pages newest first. Transfers are listed for both the source and the destination account.
func (r *pgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var args argList
	conds := []string{"user_id = " + args.add(userID)}
	if filter.From != nil {
		conds = append(conds, "transaction_date >= "+args.add(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "transaction_date <= "+args.add(*filter.To))
	}
	if filter.AccountID != "" {
		p := args.add(filter.AccountID)
		conds = append(conds, fmt.Sprintf("(account_id = %s OR to_account_id = %s)", p, p))
	}
	if filter.CategoryID != "" {
		conds = append(conds, "category_id = "+args.add(filter.CategoryID))
	}
	if filter.Type != nil {
		conds = append(conds, "transaction_type = "+args.add(string(*filter.Type)))
	}
	if filter.AfterDate != nil && filter.AfterCreatedAt != nil {
		conds = append(conds, fmt.Sprintf("(transaction_date, created_at) < (%s, %s)",
			args.add(*filter.AfterDate), args.add(*filter.AfterCreatedAt)))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions ` + whereLive("", conds...) +
		` ORDER BY transaction_date DESC, created_at DESC LIMIT ` + args.add(limit)
	rows, err := r.uow.conn().Query(ctx, query, args.args...)
	ms, err := collectAll[models.Transaction](rows, err, "transactions of user "+userID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *pgxTransactionRepository) sum(ctx context.Context, desc, query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.uow.conn().QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s: %w", desc, err)
	}
	return total, nil
}

func (r *pgxTransactionRepository) SumByCategory(ctx context.Context, userID, categoryID string, txType domain.TransactionType, period domain.DateRange) (decimal.Decimal, error) {
	var args argList
	where := whereLive("",
		"user_id = "+args.add(userID),
		"category_id = "+args.add(categoryID),
		"transaction_type = "+args.add(string(txType)),
		inPeriod(&args, "transaction_date", period),
	)
	return r.sum(ctx, "category "+categoryID, `SELECT COALESCE(SUM(amount), 0) FROM transactions `+where, args.args...)
}

func (r *pgxTransactionRepository) TotalByType(ctx context.Context, userID string, txType domain.TransactionType, period domain.DateRange) (decimal.Decimal, error) {
	var args argList
	where := whereLive("",
		"user_id = "+args.add(userID),
		"transaction_type = "+args.add(string(txType)),
		inPeriod(&args, "transaction_date", period),
	)
	return r.sum(ctx, string(txType), `SELECT COALESCE(SUM(amount), 0) FROM transactions `+where, args.args...)
}

// TotalsByCategory returns rows ordered by total descending. Percentage is left for the caller.
func (r *pgxTransactionRepository) TotalsByCategory(ctx context.Context, userID string, txType domain.TransactionType, period domain.DateRange) ([]domain.CategoryTotal, error) {
	var args argList
	where := whereLive("t",
		"t.user_id = "+args.add(userID),
		"t.transaction_type = "+args.add(string(txType)),
		inPeriod(&args, "t.transaction_date", period),
	)
	query := `
		SELECT c.category_id, c.name, COALESCE(c.icon, ''), COALESCE(c.color, ''), SUM(t.amount), COUNT(*)
		FROM transactions t
		JOIN categories c ON c.category_id = t.category_id
		` + where + `
		GROUP BY c.category_id, c.name, c.icon, c.color
		ORDER BY SUM(t.amount) DESC`
	rows, err := r.uow.conn().Query(ctx, query, args.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.CategoryTotal{}
	for rows.Next() {
		var ct domain.CategoryTotal
		var count int64
		if err := rows.Scan(&ct.CategoryID, &ct.CategoryName, &ct.Icon, &ct.Color, &ct.Total, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		ct.Count = int(count)
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", err)
	}
	return totals, nil
}

func (r *pgxTransactionRepository) MonthlyTotals(ctx context.Context, userID string, period domain.DateRange) ([]domain.MonthlyTotal, error) {
	var args argList
	where := whereLive("",
		"user_id = "+args.add(userID),
		"transaction_type IN ('Income', 'Expense')",
		inPeriod(&args, "transaction_date", period),
	)
	query := `
		SELECT to_char(transaction_date AT TIME ZONE 'UTC', 'YYYY-MM') AS month,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'Income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'Expense'), 0)
		FROM transactions ` + where + `
		GROUP BY month
		ORDER BY month`
	rows, err := r.uow.conn().Query(ctx, query, args.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	months := []domain.MonthlyTotal{}
	for rows.Next() {
		var mt domain.MonthlyTotal
		if err := rows.Scan(&mt.Month, &mt.Income, &mt.Expense); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		mt.Net = mt.Income.Sub(mt.Expense)
		months = append(months, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly totals: %w", err)
	}
	return months, nil
}

// SummaryCurrency returns "" when the period has no transactions.
func (r *pgxTransactionRepository) SummaryCurrency(ctx context.Context, userID string, period domain.DateRange) (domain.Currency, error) {
	var args argList
	where := whereLive("", "user_id = "+args.add(userID), inPeriod(&args, "transaction_date", period))
	query := `SELECT COALESCE((SELECT currency FROM transactions ` + where +
		` ORDER BY transaction_date, created_at LIMIT 1), '')`
	var currency string
	if err := r.uow.conn().QueryRow(ctx, query, args.args...).Scan(&currency); err != nil {
		return "", fmt.Errorf("failed to query summary currency: %w", err)
	}
	return domain.Currency(currency), nil
}

func (r *pgxTransactionRepository) SaveTransaction(_ context.Context, tx *domain.Transaction) error {
	m := mapping.ToModelTransaction(tx)
	r.uow.insert("save transaction "+m.TransactionID, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		m.TransactionID, m.UserID, m.AccountID, m.CategoryID, m.TransactionType, m.Amount, m.Currency,
		m.TransactionDate, m.Description, m.Notes, m.ToAccountID, m.Tags, m.ReceiptURL, m.IsAutoCategorized,
		m.IsRecurring, m.RecurringTransactionID, m.CreatedAt, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}

func (r *pgxTransactionRepository) UpdateTransaction(_ context.Context, tx *domain.Transaction) error {
	m := mapping.ToModelTransaction(tx)
	r.uow.update("update transaction "+m.TransactionID, `
		UPDATE transactions
		SET category_id = $2, amount = $3, transaction_date = $4, description = $5, notes = $6, tags = $7,
			receipt_url = $8, is_auto_categorized = $9, updated_at = $10, is_deleted = $11, deleted_at = $12
		WHERE transaction_id = $1 AND is_deleted = FALSE`,
		m.TransactionID, m.CategoryID, m.Amount, m.TransactionDate, m.Description, m.Notes, m.Tags,
		m.ReceiptURL, m.IsAutoCategorized, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}
