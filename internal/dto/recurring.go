package dto

import (
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateRecurringRequest struct {
	AccountID          string                 `json:"accountID" binding:"required"`
	CategoryID         string                 `json:"categoryID" binding:"required"`
	Type               domain.TransactionType `json:"type" binding:"required,oneof=Income Expense"`
	Amount             decimal.Decimal        `json:"amount"`
	Description        string                 `json:"description" binding:"omitempty,max=500"`
	Frequency          domain.Frequency       `json:"frequency" binding:"required,oneof=Daily Weekly Monthly Yearly"`
	Interval           int                    `json:"interval" binding:"omitempty,min=1,max=366"`
	StartDate          time.Time              `json:"startDate" binding:"required"`
	EndDate            *time.Time             `json:"endDate"`
	SendReminder       bool                   `json:"sendReminder"`
	ReminderDaysBefore *int                   `json:"reminderDaysBefore" binding:"omitempty,min=0,max=30"`
}

type UpdateRecurringAmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ProcessDueResult summarizes one run over due recurring transactions.
type ProcessDueResult struct {
	Processed int      `json:"processed"`
	Generated int      `json:"generated"`
	Failed    int      `json:"failed"`
	FailedIDs []string `json:"failedIDs,omitempty"`
}
