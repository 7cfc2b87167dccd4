package domain

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is the recurrence unit.
type Frequency string

const (
	Daily   Frequency = "Daily"
	Weekly  Frequency = "Weekly"
	Monthly Frequency = "Monthly"
	Yearly  Frequency = "Yearly"
)

const DefaultReminderDaysBefore = 3

// RecurringTransaction is a template that materialises Income/Expense transactions on a schedule.
type RecurringTransaction struct {
	RecurringTransactionID string          `json:"recurringTransactionID"`
	UserID                 string          `json:"userID"`
	AccountID              string          `json:"accountID"`
	CategoryID             string          `json:"categoryID"`
	Type                   TransactionType `json:"type"`
	Amount                 Money           `json:"amount"`
	Description            string          `json:"description"`
	Frequency              Frequency       `json:"frequency"`
	Interval               int             `json:"interval"`
	StartDate              time.Time       `json:"startDate"`
	EndDate                *time.Time      `json:"endDate,omitempty"`
	NextOccurrence         time.Time       `json:"nextOccurrence"`
	LastGeneratedAt        *time.Time      `json:"lastGeneratedAt,omitempty"`
	SendReminder           bool            `json:"sendReminder"`
	ReminderDaysBefore     int             `json:"reminderDaysBefore"`
	IsActive               bool            `json:"isActive"`
	AuditFields
}

// NewRecurringTransaction schedules the first occurrence on startDate.
func NewRecurringTransaction(userID, accountID, categoryID string, txType TransactionType, amount Money, description string, freq Frequency, interval int, startDate time.Time, endDate *time.Time) (*RecurringTransaction, error) {
	if interval < 1 {
		return nil, ErrInvalidInterval
	}
	if txType == Transfer {
		return nil, ErrTransferNotSupported
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if endDate != nil && endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}
	return &RecurringTransaction{
		RecurringTransactionID: uuid.NewString(),
		UserID:                 userID,
		AccountID:              accountID,
		CategoryID:             categoryID,
		Type:                   txType,
		Amount:                 amount,
		Description:            description,
		Frequency:              freq,
		Interval:               interval,
		StartDate:              startDate.UTC(),
		EndDate:                endDate,
		NextOccurrence:         startDate.UTC(),
		SendReminder:           true,
		ReminderDaysBefore:     DefaultReminderDaysBefore,
		IsActive:               true,
		AuditFields:            newAuditFields(),
	}, nil
}

// ShouldGenerateTransaction reports whether an occurrence is due at the given instant.
func (r *RecurringTransaction) ShouldGenerateTransaction(at time.Time) bool {
	if !r.IsActive || r.IsDeleted {
		return false
	}
	if r.NextOccurrence.After(at) {
		return false
	}
	return r.EndDate == nil || !r.EndDate.Before(r.NextOccurrence)
}

// NextAfter returns the occurrence following t. Monthly and yearly steps keep
// the start date's day of month, clamped to the length of the target month.
func (r *RecurringTransaction) NextAfter(t time.Time) time.Time {
	switch r.Frequency {
	case Daily:
		return t.AddDate(0, 0, r.Interval)
	case Weekly:
		return t.AddDate(0, 0, 7*r.Interval)
	case Yearly:
		return addMonthsClamped(t, 12*r.Interval, r.StartDate.Day())
	default:
		return addMonthsClamped(t, r.Interval, r.StartDate.Day())
	}
}

func addMonthsClamped(t time.Time, months, day int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, months, 0)
	if last := daysIn(target.Year(), target.Month()); day > last {
		day = last
	}
	return target.AddDate(0, 0, day-1)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// UpdateNextOccurrence advances the schedule by one step and records the generation time.
func (r *RecurringTransaction) UpdateNextOccurrence() {
	t := now()
	r.LastGeneratedAt = &t
	r.NextOccurrence = r.NextAfter(r.NextOccurrence)
	if r.EndDate != nil && r.NextOccurrence.After(*r.EndDate) {
		r.IsActive = false
	}
	r.MarkAsUpdated()
}

// Materialize builds the transaction for the current occurrence.
func (r *RecurringTransaction) Materialize() *Transaction {
	var tx *Transaction
	if r.Type == Income {
		tx = NewIncome(r.UserID, r.AccountID, r.CategoryID, r.Amount, r.NextOccurrence, r.Description, "")
	} else {
		tx = NewExpense(r.UserID, r.AccountID, r.CategoryID, r.Amount, r.NextOccurrence, r.Description, "")
	}
	tx.LinkToRecurring(r.RecurringTransactionID)
	return tx
}

func (r *RecurringTransaction) UpdateAmount(amount Money) error {
	if amount.Currency != r.Amount.Currency {
		return ErrCurrencyMismatch
	}
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	r.Amount = amount
	r.MarkAsUpdated()
	return nil
}

func (r *RecurringTransaction) Pause() {
	r.IsActive = false
	r.MarkAsUpdated()
}

func (r *RecurringTransaction) Resume() {
	r.IsActive = true
	r.MarkAsUpdated()
}

func (r *RecurringTransaction) Delete() {
	r.IsActive = false
	r.MarkAsDeleted()
}
