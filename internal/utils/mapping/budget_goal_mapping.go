package mapping

import (
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/models"
)

func ToModelBudget(d *domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:                 d.BudgetID,
		UserID:                   d.UserID,
		CategoryID:               d.CategoryID,
		Name:                     d.Name,
		Amount:                   d.Amount.Amount,
		Currency:                 string(d.Amount.Currency),
		PeriodStart:              d.Period.Start,
		PeriodEnd:                d.Period.End,
		AlertWhenExceeded:        d.AlertWhenExceeded,
		AlertThresholdPercentage: d.AlertThresholdPercentage,
		IsActive:                 d.IsActive,
		AuditFields:              ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget trusts the stored period; the table's CHECK constraint keeps end >= start.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:                 m.BudgetID,
		UserID:                   m.UserID,
		CategoryID:               m.CategoryID,
		Name:                     m.Name,
		Amount:                   domain.NewMoney(m.Amount, domain.Currency(m.Currency)),
		Period:                   domain.DateRange{Start: m.PeriodStart.UTC(), End: m.PeriodEnd.UTC()},
		AlertWhenExceeded:        m.AlertWhenExceeded,
		AlertThresholdPercentage: m.AlertThresholdPercentage,
		IsActive:                 m.IsActive,
		AuditFields:              ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelGoal(d *domain.Goal) models.Goal {
	return models.Goal{
		GoalID:        d.GoalID,
		UserID:        d.UserID,
		Name:          d.Name,
		Description:   nullable(d.Description),
		TargetAmount:  d.TargetAmount.Amount,
		CurrentAmount: d.CurrentAmount.Amount,
		Currency:      string(d.TargetAmount.Currency),
		TargetDate:    d.TargetDate,
		Status:        string(d.Status),
		ImageURL:      nullable(d.ImageURL),
		Icon:          nullable(d.Icon),
		IsShared:      d.IsShared,
		FamilyID:      d.FamilyID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainGoal(m models.Goal) domain.Goal {
	currency := domain.Currency(m.Currency)
	return domain.Goal{
		GoalID:        m.GoalID,
		UserID:        m.UserID,
		Name:          m.Name,
		Description:   deref(m.Description),
		TargetAmount:  domain.NewMoney(m.TargetAmount, currency),
		CurrentAmount: domain.NewMoney(m.CurrentAmount, currency),
		TargetDate:    m.TargetDate.UTC(),
		Status:        domain.GoalStatus(m.Status),
		ImageURL:      deref(m.ImageURL),
		Icon:          deref(m.Icon),
		IsShared:      m.IsShared,
		FamilyID:      m.FamilyID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelRecurring(d *domain.RecurringTransaction) models.RecurringTransaction {
	return models.RecurringTransaction{
		RecurringTransactionID: d.RecurringTransactionID,
		UserID:                 d.UserID,
		AccountID:              d.AccountID,
		CategoryID:             d.CategoryID,
		TransactionType:        string(d.Type),
		Amount:                 d.Amount.Amount,
		Currency:               string(d.Amount.Currency),
		Description:            nullable(d.Description),
		Frequency:              string(d.Frequency),
		IntervalCount:          int32(d.Interval),
		StartDate:              d.StartDate,
		EndDate:                d.EndDate,
		NextOccurrence:         d.NextOccurrence,
		LastGeneratedAt:        d.LastGeneratedAt,
		SendReminder:           d.SendReminder,
		ReminderDaysBefore:     int32(d.ReminderDaysBefore),
		IsActive:               d.IsActive,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainRecurring(m models.RecurringTransaction) domain.RecurringTransaction {
	return domain.RecurringTransaction{
		RecurringTransactionID: m.RecurringTransactionID,
		UserID:                 m.UserID,
		AccountID:              m.AccountID,
		CategoryID:             m.CategoryID,
		Type:                   domain.TransactionType(m.TransactionType),
		Amount:                 domain.NewMoney(m.Amount, domain.Currency(m.Currency)),
		Description:            deref(m.Description),
		Frequency:              domain.Frequency(m.Frequency),
		Interval:               int(m.IntervalCount),
		StartDate:              m.StartDate.UTC(),
		EndDate:                m.EndDate,
		NextOccurrence:         m.NextOccurrence.UTC(),
		LastGeneratedAt:        m.LastGeneratedAt,
		SendReminder:           m.SendReminder,
		ReminderDaysBefore:     int(m.ReminderDaysBefore),
		IsActive:               m.IsActive,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}
