package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows ListTransactions. Results are ordered newest first by
// (transaction_date, created_at); AfterDate/AfterCreatedAt continue from a previous page.
type TransactionFilter struct {
	From           *time.Time
	To             *time.Time
	AccountID      string
	CategoryID     string
	Type           *domain.TransactionType
	Limit          int
	AfterDate      *time.Time
	AfterCreatedAt *time.Time
}

// TransactionReader defines read operations and the aggregate sums used by budgets,
// dashboards and reports. All sums skip soft-deleted rows.
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// FindTransactionByIDForUpdate selects one transaction FOR UPDATE.
	FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, error)

	// SumByCategory totals transactions of txType in a category whose date falls within period.
	SumByCategory(ctx context.Context, userID, categoryID string, txType domain.TransactionType, period domain.DateRange) (decimal.Decimal, error)

	// TotalByType totals all transactions of txType within period.
	TotalByType(ctx context.Context, userID string, txType domain.TransactionType, period domain.DateRange) (decimal.Decimal, error)

	// TotalsByCategory groups transactions of txType within period by category.
	TotalsByCategory(ctx context.Context, userID string, txType domain.TransactionType, period domain.DateRange) ([]domain.CategoryTotal, error)

	// MonthlyTotals returns income and expense per calendar month within period.
	MonthlyTotals(ctx context.Context, userID string, period domain.DateRange) ([]domain.MonthlyTotal, error)

	// SummaryCurrency returns the currency of the earliest transaction in period, if any.
	SummaryCurrency(ctx context.Context, userID string, period domain.DateRange) (domain.Currency, error)
}

type TransactionWriter interface {
	SaveTransaction(ctx context.Context, tx *domain.Transaction) error
	UpdateTransaction(ctx context.Context, tx *domain.Transaction) error
}

// TransactionRepository combines transaction reads and writes.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
