package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	uowFactory portsrepo.UnitOfWorkFactory
}

// NewAccountService creates a new account service.
func NewAccountService(uowFactory portsrepo.UnitOfWorkFactory) portssvc.AccountSvcFacade {
	return &accountService{uowFactory: uowFactory}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	currency, err := parseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	account, err := domain.NewAccount(userID, req.Name, req.AccountType, money(req.InitialBalance, currency), domain.AccountOptions{
		BankName:           req.BankName,
		IBAN:               req.IBAN,
		CardLastFourDigits: req.CardLastFourDigits,
		CreditLimit:        req.CreditLimit,
		BillingCycleDay:    req.BillingCycleDay,
		ExcludeFromTotal:   req.ExcludeFromTotal,
	})
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	if err := uow.Accounts().SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("user_id", userID))
	return account, nil
}

// getOwnedAccount loads an account through uow and checks it belongs to userID.
func getOwnedAccount(ctx context.Context, uow portsrepo.UnitOfWork, accountID, userID string) (*domain.Account, error) {
	account, err := uow.Accounts().FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(account.UserID, userID); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := getOwnedAccount(ctx, s.uowFactory.New(), accountID, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string, activeOnly bool) ([]domain.Account, error) {
	accounts, err := s.uowFactory.New().Accounts().ListAccountsByUser(ctx, userID, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("user_id", userID))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) GetTotalBalance(ctx context.Context, userID string) ([]domain.CurrencyTotal, error) {
	totals, err := s.uowFactory.New().Accounts().TotalBalanceByCurrency(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to total balances", slog.String("user_id", userID))
		return nil, err
	}
	return totals, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	uow := s.uowFactory.New()

	var account *domain.Account
	err := runInTransaction(ctx, uow, func() error {
		var err error
		account, err = uow.Accounts().FindAccountByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if err := ensureOwner(account.UserID, userID); err != nil {
			return err
		}

		account.UpdateDetails(req.Name, req.IsActive, req.IncludeInTotalBalance)
		account.UpdateBankInfo(req.BankName, req.IBAN, req.CardLastFourDigits)
		if req.CreditLimit != nil {
			if err := account.SetCreditLimit(*req.CreditLimit); err != nil {
				return err
			}
		}
		return uow.Accounts().UpdateAccount(ctx, account)
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string, userID string) error {
	uow := s.uowFactory.New()
	err := runInTransaction(ctx, uow, func() error {
		account, err := uow.Accounts().FindAccountByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if err := ensureOwner(account.UserID, userID); err != nil {
			return err
		}
		account.Delete()
		return uow.Accounts().UpdateAccount(ctx, account)
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
