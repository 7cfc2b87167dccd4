package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultAlertThreshold = 80

var hundred = decimal.NewFromInt(100)

// Budget is a spending envelope for one category over a period. Spent amounts are
// never stored on it; see BudgetUsage.
type Budget struct {
	BudgetID                 string          `json:"budgetID"`
	UserID                   string          `json:"userID"`
	CategoryID               string          `json:"categoryID"`
	Name                     string          `json:"name"`
	Amount                   Money           `json:"amount"`
	Period                   DateRange       `json:"period"`
	AlertWhenExceeded        bool            `json:"alertWhenExceeded"`
	AlertThresholdPercentage decimal.Decimal `json:"alertThresholdPercentage"`
	IsActive                 bool            `json:"isActive"`
	AuditFields
}

func NewBudget(userID, categoryID, name string, amount Money, period DateRange) *Budget {
	return &Budget{
		BudgetID:                 uuid.NewString(),
		UserID:                   userID,
		CategoryID:               categoryID,
		Name:                     name,
		Amount:                   amount,
		Period:                   period,
		AlertWhenExceeded:        true,
		AlertThresholdPercentage: decimal.NewFromInt(DefaultAlertThreshold),
		IsActive:                 true,
		AuditFields:              newAuditFields(),
	}
}

func (b *Budget) Update(name string, amount Money, period DateRange) {
	b.Name = name
	b.Amount = amount
	b.Period = period
	b.MarkAsUpdated()
}

// SetAlertThreshold accepts 0..100 inclusive.
func (b *Budget) SetAlertThreshold(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return ErrInvalidThreshold
	}
	b.AlertThresholdPercentage = pct
	b.MarkAsUpdated()
	return nil
}

func (b *Budget) SetAlertWhenExceeded(enabled bool) {
	b.AlertWhenExceeded = enabled
	b.MarkAsUpdated()
}

func (b *Budget) Activate() {
	b.IsActive = true
	b.MarkAsUpdated()
}

func (b *Budget) Deactivate() {
	b.IsActive = false
	b.MarkAsUpdated()
}

func (b *Budget) Delete() {
	b.IsActive = false
	b.MarkAsDeleted()
}

// IsCurrentPeriod reports whether the calendar day of date falls within the budget period.
// Periods are whole days, so any instant on the end date still counts.
func (b *Budget) IsCurrentPeriod(date time.Time) bool {
	return b.Period.Contains(truncateDay(date))
}

// ShouldAlert reports whether spent has reached the alert threshold.
func (b *Budget) ShouldAlert(spent Money) bool {
	if !b.AlertWhenExceeded {
		return false
	}
	limit := b.Amount.Amount.Mul(b.AlertThresholdPercentage).Div(hundred)
	return spent.Amount.GreaterThanOrEqual(limit)
}

// BudgetStatus is the classification of a budget's consumption.
type BudgetStatus string

const (
	BudgetNormal   BudgetStatus = "Normal"
	BudgetWarning  BudgetStatus = "Warning"
	BudgetExceeded BudgetStatus = "Exceeded"
)

// ClassifyBudget maps a usage percentage onto a status. 100% is always Exceeded,
// even with a threshold of 100.
func ClassifyBudget(percentageUsed, threshold decimal.Decimal) BudgetStatus {
	switch {
	case percentageUsed.GreaterThanOrEqual(hundred):
		return BudgetExceeded
	case percentageUsed.GreaterThanOrEqual(threshold):
		return BudgetWarning
	default:
		return BudgetNormal
	}
}

// BudgetUsage is the read-side view of a budget against live spend.
type BudgetUsage struct {
	Budget         *Budget         `json:"budget"`
	Spent          Money           `json:"spent"`
	Remaining      Money           `json:"remaining"`
	PercentageUsed decimal.Decimal `json:"percentageUsed"`
	Status         BudgetStatus    `json:"status"`
}

// NewBudgetUsage derives remaining, percentage and status. Every read path that reports
// budget consumption goes through here so classifications agree.
func NewBudgetUsage(b *Budget, spent decimal.Decimal) BudgetUsage {
	pct := decimal.Zero
	if b.Amount.Amount.IsPositive() {
		pct = spent.Div(b.Amount.Amount).Mul(hundred)
	}
	return BudgetUsage{
		Budget:         b,
		Spent:          NewMoney(spent, b.Amount.Currency),
		Remaining:      NewMoney(b.Amount.Amount.Sub(spent), b.Amount.Currency),
		PercentageUsed: pct,
		Status:         ClassifyBudget(pct, b.AlertThresholdPercentage),
	}
}

// IsAlerting reports whether the usage belongs on the dashboard alert list.
func (u BudgetUsage) IsAlerting() bool {
	return u.Status != BudgetNormal
}
