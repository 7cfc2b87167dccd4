package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies where money is held.
type AccountType string

const (
	BankAccount AccountType = "BankAccount"
	CreditCard  AccountType = "CreditCard"
	Cash        AccountType = "Cash"
	Wallet      AccountType = "Wallet"
	Investment  AccountType = "Investment"
)

// Account owns a balance. For credit cards the balance is debt and is normally <= 0.
type Account struct {
	AccountID             string           `json:"accountID"`
	UserID                string           `json:"userID"`
	Name                  string           `json:"name"`
	Type                  AccountType      `json:"type"`
	Balance               Money            `json:"balance"`
	InitialBalance        Money            `json:"initialBalance"`
	BankName              string           `json:"bankName,omitempty"`
	IBAN                  string           `json:"iban,omitempty"`
	CardLastFourDigits    string           `json:"cardLastFourDigits,omitempty"`
	CreditLimit           *decimal.Decimal `json:"creditLimit,omitempty"`
	BillingCycleDay       *int             `json:"billingCycleDay,omitempty"`
	IsActive              bool             `json:"isActive"`
	IncludeInTotalBalance bool             `json:"includeInTotalBalance"`
	AuditFields
}

// AccountOptions carries the optional fields accepted at creation time.
type AccountOptions struct {
	BankName           string
	IBAN               string
	CardLastFourDigits string
	CreditLimit        *decimal.Decimal
	BillingCycleDay    *int
	// ExcludeFromTotal hides the account from the aggregate balance.
	ExcludeFromTotal bool
}

// NewAccount snapshots initialBalance into both Balance and InitialBalance.
func NewAccount(userID, name string, accountType AccountType, initialBalance Money, opts AccountOptions) (*Account, error) {
	a := &Account{
		AccountID:             uuid.NewString(),
		UserID:                userID,
		Name:                  name,
		Type:                  accountType,
		Balance:               initialBalance,
		InitialBalance:        initialBalance,
		BankName:              opts.BankName,
		IBAN:                  opts.IBAN,
		CardLastFourDigits:    opts.CardLastFourDigits,
		BillingCycleDay:       opts.BillingCycleDay,
		IsActive:              true,
		IncludeInTotalBalance: !opts.ExcludeFromTotal,
		AuditFields:           newAuditFields(),
	}
	if opts.CreditLimit != nil {
		if err := a.SetCreditLimit(*opts.CreditLimit); err != nil {
			return nil, err
		}
		a.UpdatedAt = nil
	}
	return a, nil
}

// IsCreditCard reports whether balance is tracked as debt.
func (a *Account) IsCreditCard() bool {
	return a.Type == CreditCard
}

// Deposit adds amount to the balance. On a credit card this pays down debt.
func (a *Account) Deposit(amount Money) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	next, err := a.Balance.Add(amount)
	if err != nil {
		return err
	}
	a.Balance = next
	a.MarkAsUpdated()
	return nil
}

// Withdraw removes amount from the balance. Credit cards are bounded by CreditLimit,
// every other type by the current balance. A failed call leaves the balance untouched.
func (a *Account) Withdraw(amount Money) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if amount.Currency != a.Balance.Currency {
		return fmt.Errorf("%w: account is %s, amount is %s", ErrCurrencyMismatch, a.Balance.Currency, amount.Currency)
	}

	if a.IsCreditCard() {
		totalDebt := a.Balance.Amount.Abs().Add(amount.Amount)
		if a.CreditLimit != nil && totalDebt.GreaterThan(*a.CreditLimit) {
			return fmt.Errorf("%w: debt would be %s, limit is %s", ErrCreditLimitExceeded, totalDebt.StringFixed(2), a.CreditLimit.StringFixed(2))
		}
	} else if a.Balance.Amount.LessThan(amount.Amount) {
		return fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, a.Balance, amount)
	}

	next, err := a.Balance.Sub(amount)
	if err != nil {
		return err
	}
	a.Balance = next
	a.MarkAsUpdated()
	return nil
}

// SetCreditLimit is only valid for credit cards.
func (a *Account) SetCreditLimit(limit decimal.Decimal) error {
	if !a.IsCreditCard() {
		return ErrNotCreditCard
	}
	if limit.IsNegative() {
		return fmt.Errorf("%w: credit limit must not be negative", ErrInvalidArgument)
	}
	a.CreditLimit = &limit
	a.MarkAsUpdated()
	return nil
}

// AvailableCredit returns limit minus current debt, or nil when no limit is set.
func (a *Account) AvailableCredit() *decimal.Decimal {
	if !a.IsCreditCard() || a.CreditLimit == nil {
		return nil
	}
	available := a.CreditLimit.Sub(a.Balance.Amount.Abs())
	return &available
}

func (a *Account) UpdateDetails(name string, isActive, includeInTotalBalance bool) {
	a.Name = name
	a.IsActive = isActive
	a.IncludeInTotalBalance = includeInTotalBalance
	a.MarkAsUpdated()
}

// UpdateBankInfo replaces the optional bank metadata.
func (a *Account) UpdateBankInfo(bankName, iban, cardLastFourDigits string) {
	a.BankName = bankName
	a.IBAN = iban
	a.CardLastFourDigits = cardLastFourDigits
	a.MarkAsUpdated()
}

func (a *Account) Activate() {
	a.IsActive = true
	a.MarkAsUpdated()
}

func (a *Account) Deactivate() {
	a.IsActive = false
	a.MarkAsUpdated()
}

// Delete soft-deletes the account.
func (a *Account) Delete() {
	a.IsActive = false
	a.MarkAsDeleted()
}

// CountsTowardsTotal reports whether the account participates in the total balance.
func (a *Account) CountsTowardsTotal() bool {
	return a.IsActive && a.IncludeInTotalBalance && !a.IsDeleted
}
