package pgsql

import (
	"context"
	"fmt"
	"slices"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/SscSPs/cuzdan_backend/internal/models"
	"github.com/SscSPs/cuzdan_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, user_id, name, account_type, balance_amount, balance_currency,
	initial_balance_amount, initial_balance_currency, bank_name, iban, card_last_four_digits,
	credit_limit, billing_cycle_day, is_active, include_in_total_balance, ` + auditColumns

type pgxAccountRepository struct {
	uow *unitOfWork
}

var _ portsrepo.AccountRepository = (*pgxAccountRepository)(nil)

func (r *pgxAccountRepository) findOne(ctx context.Context, accountID, suffix string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ` + whereLive("", "account_id = $1") + suffix
	rows, err := r.uow.conn().Query(ctx, query, accountID)
	m, err := collectOne[models.Account](rows, err, "account "+accountID)
	if err != nil {
		return nil, err
	}
	a := mapping.ToDomainAccount(*m)
	return &a, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *pgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.findOne(ctx, accountID, "")
}

// FindAccountByIDForUpdate retrieves an account and locks its row until the transaction ends.
func (r *pgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.findOne(ctx, accountID, " FOR UPDATE")
}

// FindAccountsByIDsForUpdate locks the given accounts ordered by id, so two transfers
// touching the same pair always acquire locks in the same order.
func (r *pgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, accountIDs []string) (map[string]*domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]*domain.Account{}, nil
	}
	ids := slices.Clone(accountIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	query := `SELECT ` + accountColumns + ` FROM accounts ` + whereLive("", "account_id = ANY($1)") +
		` ORDER BY account_id FOR UPDATE`
	rows, err := r.uow.conn().Query(ctx, query, ids)
	ms, err := collectAll[models.Account](rows, err, "accounts for update")
	if err != nil {
		return nil, err
	}

	accounts := make(map[string]*domain.Account, len(ms))
	for _, m := range ms {
		a := mapping.ToDomainAccount(m)
		accounts[a.AccountID] = &a
	}
	return accounts, nil
}

func (r *pgxAccountRepository) ListAccountsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Account, error) {
	conds := []string{"user_id = $1"}
	if activeOnly {
		conds = append(conds, "is_active = TRUE")
	}
	query := `SELECT ` + accountColumns + ` FROM accounts ` + whereLive("", conds...) + ` ORDER BY created_at, name`
	rows, err := r.uow.conn().Query(ctx, query, userID)
	ms, err := collectAll[models.Account](rows, err, "accounts of user "+userID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (r *pgxAccountRepository) TotalBalanceByCurrency(ctx context.Context, userID string) ([]domain.CurrencyTotal, error) {
	query := `
		SELECT balance_currency, COALESCE(SUM(balance_amount), 0)
		FROM accounts ` + whereLive("", "user_id = $1", "is_active = TRUE", "include_in_total_balance = TRUE") + `
		GROUP BY balance_currency
		ORDER BY balance_currency`
	rows, err := r.uow.conn().Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query total balance: %w", err)
	}
	defer rows.Close()

	totals := []domain.CurrencyTotal{}
	for rows.Next() {
		var currency string
		var total decimal.Decimal
		if err := rows.Scan(&currency, &total); err != nil {
			return nil, fmt.Errorf("failed to scan total balance: %w", err)
		}
		totals = append(totals, domain.CurrencyTotal{Currency: domain.Currency(currency), Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating total balance rows: %w", err)
	}
	return totals, nil
}

func (r *pgxAccountRepository) SaveAccount(_ context.Context, account *domain.Account) error {
	m := mapping.ToModelAccount(account)
	r.uow.insert("save account "+m.AccountID, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		m.AccountID, m.UserID, m.Name, m.AccountType, m.BalanceAmount, m.BalanceCurrency,
		m.InitialBalanceAmount, m.InitialBalanceCurrency, m.BankName, m.IBAN, m.CardLastFourDigits,
		m.CreditLimit, m.BillingCycleDay, m.IsActive, m.IncludeInTotalBalance,
		m.CreatedAt, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}

// UpdateAccount writes every mutable column. Account type and currencies are fixed at creation.
func (r *pgxAccountRepository) UpdateAccount(_ context.Context, account *domain.Account) error {
	m := mapping.ToModelAccount(account)
	r.uow.update("update account "+m.AccountID, `
		UPDATE accounts
		SET name = $2, balance_amount = $3, bank_name = $4, iban = $5, card_last_four_digits = $6,
			credit_limit = $7, billing_cycle_day = $8, is_active = $9, include_in_total_balance = $10,
			updated_at = $11, is_deleted = $12, deleted_at = $13
		WHERE account_id = $1 AND is_deleted = FALSE`,
		m.AccountID, m.Name, m.BalanceAmount, m.BankName, m.IBAN, m.CardLastFourDigits,
		m.CreditLimit, m.BillingCycleDay, m.IsActive, m.IncludeInTotalBalance,
		m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}
