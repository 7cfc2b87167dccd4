package mapping

import (
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d *domain.Account) models.Account {
	m := models.Account{
		AccountID:              d.AccountID,
		UserID:                 d.UserID,
		Name:                   d.Name,
		AccountType:            string(d.Type),
		BalanceAmount:          d.Balance.Amount,
		BalanceCurrency:        string(d.Balance.Currency),
		InitialBalanceAmount:   d.InitialBalance.Amount,
		InitialBalanceCurrency: string(d.InitialBalance.Currency),
		BankName:               nullable(d.BankName),
		IBAN:                   nullable(d.IBAN),
		CardLastFourDigits:     nullable(d.CardLastFourDigits),
		IsActive:               d.IsActive,
		IncludeInTotalBalance:  d.IncludeInTotalBalance,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
	if d.CreditLimit != nil {
		m.CreditLimit = decimal.NewNullDecimal(*d.CreditLimit)
	}
	if d.BillingCycleDay != nil {
		day := int32(*d.BillingCycleDay)
		m.BillingCycleDay = &day
	}
	return m
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		AccountID:             m.AccountID,
		UserID:                m.UserID,
		Name:                  m.Name,
		Type:                  domain.AccountType(m.AccountType),
		Balance:               domain.NewMoney(m.BalanceAmount, domain.Currency(m.BalanceCurrency)),
		InitialBalance:        domain.NewMoney(m.InitialBalanceAmount, domain.Currency(m.InitialBalanceCurrency)),
		BankName:              deref(m.BankName),
		IBAN:                  deref(m.IBAN),
		CardLastFourDigits:    deref(m.CardLastFourDigits),
		IsActive:              m.IsActive,
		IncludeInTotalBalance: m.IncludeInTotalBalance,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
	if m.CreditLimit.Valid {
		limit := m.CreditLimit.Decimal
		d.CreditLimit = &limit
	}
	if m.BillingCycleDay != nil {
		day := int(*m.BillingCycleDay)
		d.BillingCycleDay = &day
	}
	return d
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
