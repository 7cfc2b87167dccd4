package repositories

import (
	"context"
	"errors"
)

var (
	// ErrTransactionAlreadyOpen is returned by Begin when a transaction is already in progress.
	ErrTransactionAlreadyOpen = errors.New("a transaction is already in progress")
	// ErrNoTransaction is returned by Commit when nothing was begun.
	ErrNoTransaction = errors.New("no transaction in progress")
)

// UnitOfWork scopes one request's persistence. Repository accessors are created lazily
// and share the same session: the open transaction if there is one, the pool otherwise.
// Writes are queued and reach the database on SaveChanges or Commit.
type UnitOfWork interface {
	Users() UserRepository
	Accounts() AccountRepository
	Categories() CategoryRepository
	Transactions() TransactionRepository
	Budgets() BudgetRepository
	Goals() GoalRepository
	RecurringTransactions() RecurringTransactionRepository
	RefreshTokens() RefreshTokenRepository

	// SaveChanges flushes queued writes. Without an open transaction the flush runs in
	// its own short transaction so it is still all-or-nothing.
	SaveChanges(ctx context.Context) error

	// Begin opens a transaction. Nesting is not supported.
	Begin(ctx context.Context) error

	// Commit flushes and commits. On any failure it rolls back before returning the error.
	Commit(ctx context.Context) error

	// Rollback discards queued writes and the open transaction. Safe to call when none is open.
	Rollback(ctx context.Context) error
}

// UnitOfWorkFactory hands out request-scoped units of work.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
