package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringTransaction is a row of the recurring_transactions table.
type RecurringTransaction struct {
	RecurringTransactionID string          `db:"recurring_transaction_id"`
	UserID                 string          `db:"user_id"`
	AccountID              string          `db:"account_id"`
	CategoryID             string          `db:"category_id"`
	TransactionType        string          `db:"transaction_type"`
	Amount                 decimal.Decimal `db:"amount"`
	Currency               string          `db:"currency"`
	Description            *string         `db:"description"`
	Frequency              string          `db:"frequency"`
	IntervalCount          int32           `db:"interval_count"`
	StartDate              time.Time       `db:"start_date"`
	EndDate                *time.Time      `db:"end_date"`
	NextOccurrence         time.Time       `db:"next_occurrence"`
	LastGeneratedAt        *time.Time      `db:"last_generated_at"`
	SendReminder           bool            `db:"send_reminder"`
	ReminderDaysBefore     int32           `db:"reminder_days_before"`
	IsActive               bool            `db:"is_active"`
	AuditFields
}
