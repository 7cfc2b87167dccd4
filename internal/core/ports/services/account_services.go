package services

import (
	"context"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account owned by userID.
	GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// ListAccounts retrieves the user's accounts.
	ListAccounts(ctx context.Context, userID string, activeOnly bool) ([]domain.Account, error)

	// GetTotalBalance sums the balances that count towards the total, one entry per currency.
	GetTotalBalance(ctx context.Context, userID string) ([]domain.CurrencyTotal, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	// DeleteAccount soft-deletes the account.
	DeleteAccount(ctx context.Context, accountID string, userID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
