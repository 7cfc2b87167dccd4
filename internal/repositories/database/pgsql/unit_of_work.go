package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pendingWrite struct {
	sql        string
	args       []any
	desc       string
	mustAffect bool
}

// unitOfWork is request scoped and not safe for concurrent use.
type unitOfWork struct {
	db      txStarter
	tx      pgx.Tx
	pending []pendingWrite

	users        *pgxUserRepository
	tokens       *pgxRefreshTokenRepository
	accounts     *pgxAccountRepository
	categories   *pgxCategoryRepository
	transactions *pgxTransactionRepository
	budgets      *pgxBudgetRepository
	goals        *pgxGoalRepository
	recurring    *pgxRecurringRepository
}

var _ portsrepo.UnitOfWork = (*unitOfWork)(nil)

func newUnitOfWork(db txStarter) *unitOfWork {
	return &unitOfWork{db: db}
}

type unitOfWorkFactory struct {
	pool *pgxpool.Pool
}

// NewUnitOfWorkFactory returns a factory whose units of work run against pool.
func NewUnitOfWorkFactory(pool *pgxpool.Pool) portsrepo.UnitOfWorkFactory {
	return &unitOfWorkFactory{pool: pool}
}

func (f *unitOfWorkFactory) New() portsrepo.UnitOfWork {
	return newUnitOfWork(f.pool)
}

// conn returns the open transaction, or the pool outside one.
func (u *unitOfWork) conn() DBTX {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *unitOfWork) insert(desc, sql string, args ...any) {
	u.pending = append(u.pending, pendingWrite{sql: sql, args: args, desc: desc})
}

// update queues a write that must hit a row, otherwise the flush reports ErrNotFound.
func (u *unitOfWork) update(desc, sql string, args ...any) {
	u.pending = append(u.pending, pendingWrite{sql: sql, args: args, desc: desc, mustAffect: true})
}

func (u *unitOfWork) Users() portsrepo.UserRepository {
	if u.users == nil {
		u.users = &pgxUserRepository{uow: u}
	}
	return u.users
}

func (u *unitOfWork) RefreshTokens() portsrepo.RefreshTokenRepository {
	if u.tokens == nil {
		u.tokens = &pgxRefreshTokenRepository{uow: u}
	}
	return u.tokens
}

func (u *unitOfWork) Accounts() portsrepo.AccountRepository {
	if u.accounts == nil {
		u.accounts = &pgxAccountRepository{uow: u}
	}
	return u.accounts
}

func (u *unitOfWork) Categories() portsrepo.CategoryRepository {
	if u.categories == nil {
		u.categories = &pgxCategoryRepository{uow: u}
	}
	return u.categories
}

func (u *unitOfWork) Transactions() portsrepo.TransactionRepository {
	if u.transactions == nil {
		u.transactions = &pgxTransactionRepository{uow: u}
	}
	return u.transactions
}

func (u *unitOfWork) Budgets() portsrepo.BudgetRepository {
	if u.budgets == nil {
		u.budgets = &pgxBudgetRepository{uow: u}
	}
	return u.budgets
}

func (u *unitOfWork) Goals() portsrepo.GoalRepository {
	if u.goals == nil {
		u.goals = &pgxGoalRepository{uow: u}
	}
	return u.goals
}

func (u *unitOfWork) RecurringTransactions() portsrepo.RecurringTransactionRepository {
	if u.recurring == nil {
		u.recurring = &pgxRecurringRepository{uow: u}
	}
	return u.recurring
}

// flush sends all queued writes as one batch on tx.
func (u *unitOfWork) flush(ctx context.Context, tx pgx.Tx) error {
	if len(u.pending) == 0 {
		return nil
	}
	pending := u.pending
	u.pending = nil

	batch := &pgx.Batch{}
	for _, w := range pending {
		batch.Queue(w.sql, w.args...)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for _, w := range pending {
		ct, err := br.Exec()
		if err != nil {
			batchErr = mapWriteError(err, w.desc)
			break
		}
		if w.mustAffect && ct.RowsAffected() == 0 {
			batchErr = fmt.Errorf("%w: %s", apperrors.ErrNotFound, w.desc)
			break
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close write batch: %w", err)
	}
	return batchErr
}

func (u *unitOfWork) SaveChanges(ctx context.Context) error {
	if u.tx != nil {
		return u.flush(ctx, u.tx)
	}
	if len(u.pending) == 0 {
		return nil
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		u.pending = nil
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := u.flush(ctx, tx); err != nil {
		_ = tx.Rollback(context.WithoutCancel(ctx))
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return portsrepo.ErrTransactionAlreadyOpen
	}
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	u.tx = tx
	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return portsrepo.ErrNoTransaction
	}
	tx := u.tx
	defer func() { u.tx = nil }()

	if err := u.flush(ctx, tx); err != nil {
		_ = tx.Rollback(context.WithoutCancel(ctx))
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		_ = tx.Rollback(context.WithoutCancel(ctx))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	u.pending = nil
	if u.tx == nil {
		return nil
	}
	tx := u.tx
	u.tx = nil
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}
