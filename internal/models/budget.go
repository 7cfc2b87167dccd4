package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a row of the budgets table.
type Budget struct {
	BudgetID                 string          `db:"budget_id"`
	UserID                   string          `db:"user_id"`
	CategoryID               string          `db:"category_id"`
	Name                     string          `db:"name"`
	Amount                   decimal.Decimal `db:"amount"`
	Currency                 string          `db:"currency"`
	PeriodStart              time.Time       `db:"period_start"`
	PeriodEnd                time.Time       `db:"period_end"`
	AlertWhenExceeded        bool            `db:"alert_when_exceeded"`
	AlertThresholdPercentage decimal.Decimal `db:"alert_threshold_percentage"`
	IsActive                 bool            `db:"is_active"`
	AuditFields
}
