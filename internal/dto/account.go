package dto

import (
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name               string             `json:"name" binding:"required,max=100"`
	AccountType        domain.AccountType `json:"accountType" binding:"required,oneof=BankAccount CreditCard Cash Wallet Investment"`
	Currency           string             `json:"currency" binding:"required,currency"`
	InitialBalance     decimal.Decimal    `json:"initialBalance"`
	BankName           string             `json:"bankName" binding:"omitempty,max=100"`
	IBAN               string             `json:"iban" binding:"omitempty,iban"`
	CardLastFourDigits string             `json:"cardLastFourDigits" binding:"omitempty,len=4,numeric"`
	CreditLimit        *decimal.Decimal   `json:"creditLimit"`                                                                        // CreditCard only
	BillingCycleDay    *int               `json:"billingCycleDay" binding:"omitempty,min=1,max=31"`
	ExcludeFromTotal   bool               `json:"excludeFromTotal"`
}

// UpdateAccountRequest replaces the editable fields of an account.
type UpdateAccountRequest struct {
	Name                  string           `json:"name" binding:"required,max=100"`
	IsActive              bool             `json:"isActive"`
	IncludeInTotalBalance bool             `json:"includeInTotalBalance"`
	BankName              string           `json:"bankName" binding:"omitempty,max=100"`
	IBAN                  string           `json:"iban" binding:"omitempty,iban"`
	CardLastFourDigits    string           `json:"cardLastFourDigits" binding:"omitempty,len=4,numeric"`
	CreditLimit           *decimal.Decimal `json:"creditLimit"`
}

type ListAccountsParams struct {
	ActiveOnly bool `form:"activeOnly"`
}

// AccountResponse adds the derived available credit to the account.
type AccountResponse struct {
	domain.Account
	AvailableCredit *decimal.Decimal `json:"availableCredit,omitempty"`
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{Account: *a, AvailableCredit: a.AvailableCredit()}
}

func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

type TotalBalanceResponse struct {
	Totals []domain.CurrencyTotal `json:"totals"`
}
