package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Tags are a comma-joined string.
type Transaction struct {
	TransactionID          string          `db:"transaction_id"`
	UserID                 string          `db:"user_id"`
	AccountID              string          `db:"account_id"`
	CategoryID             *string         `db:"category_id"`
	TransactionType        string          `db:"transaction_type"`
	Amount                 decimal.Decimal `db:"amount"`
	Currency               string          `db:"currency"`
	TransactionDate        time.Time       `db:"transaction_date"`
	Description            *string         `db:"description"`
	Notes                  *string         `db:"notes"`
	ToAccountID            *string         `db:"to_account_id"`
	Tags                   *string         `db:"tags"`
	ReceiptURL             *string         `db:"receipt_url"`
	IsAutoCategorized      bool            `db:"is_auto_categorized"`
	IsRecurring            bool            `db:"is_recurring"`
	RecurringTransactionID *string         `db:"recurring_transaction_id"`
	AuditFields
}
