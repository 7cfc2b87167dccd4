package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
	"github.com/SscSPs/cuzdan_backend/internal/utils/pagination"
)

const maxTransactionPageSize = 200

// transactionService implements TransactionSvcFacade. Every write locks the touched
// accounts and commits the balance change together with the transaction row.
type transactionService struct {
	BaseService
	uowFactory portsrepo.UnitOfWorkFactory
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(uowFactory portsrepo.UnitOfWorkFactory) portssvc.TransactionSvcFacade {
	return &transactionService{uowFactory: uowFactory}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// lockOwnedAccount selects an account FOR UPDATE and checks ownership and that it is active.
func lockOwnedAccount(ctx context.Context, uow portsrepo.UnitOfWork, accountID, userID string) (*domain.Account, error) {
	account, err := uow.Accounts().FindAccountByIDForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(account.UserID, userID); err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, domain.ErrInactiveAccount
	}
	return account, nil
}

// lockTransferAccounts locks both sides of a transfer in id order.
func lockTransferAccounts(ctx context.Context, uow portsrepo.UnitOfWork, fromID, toID, userID string) (*domain.Account, *domain.Account, error) {
	locked, err := uow.Accounts().FindAccountsByIDsForUpdate(ctx, []string{fromID, toID})
	if err != nil {
		return nil, nil, err
	}
	from, to := locked[fromID], locked[toID]
	if from == nil || to == nil {
		return nil, nil, fmt.Errorf("%w: transfer account", apperrors.ErrNotFound)
	}
	for _, a := range []*domain.Account{from, to} {
		if err := ensureOwner(a.UserID, userID); err != nil {
			return nil, nil, err
		}
		if !a.IsActive {
			return nil, nil, domain.ErrInactiveAccount
		}
	}
	return from, to, nil
}

// categoryFor checks the category belongs to userID, is active and matches txType.
func categoryFor(ctx context.Context, uow portsrepo.UnitOfWork, categoryID, userID string, txType domain.TransactionType) (*domain.Category, error) {
	category, err := getOwnedCategory(ctx, uow, categoryID, userID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, fmt.Errorf("%w: category is inactive", domain.ErrInvalidOperation)
	}
	if !category.Accepts(txType) {
		return nil, domain.ErrCategoryTypeMismatch
	}
	return category, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	switch req.Type {
	case domain.Income, domain.Expense:
	case domain.Transfer:
		return nil, domain.ErrTransferNotSupported
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}

	uow := s.uowFactory.New()
	var tx *domain.Transaction
	err := runInTransaction(ctx, uow, func() error {
		account, err := lockOwnedAccount(ctx, uow, req.AccountID, userID)
		if err != nil {
			return err
		}
		if _, err := categoryFor(ctx, uow, req.CategoryID, userID, req.Type); err != nil {
			return err
		}

		amount := money(req.Amount, account.Balance.Currency)
		if req.Type == domain.Income {
			tx = domain.NewIncome(userID, account.AccountID, req.CategoryID, amount, req.TransactionDate, req.Description, req.Notes)
		} else {
			tx = domain.NewExpense(userID, account.AccountID, req.CategoryID, amount, req.TransactionDate, req.Description, req.Notes)
		}
		if err := tx.ApplyTo(account); err != nil {
			return err
		}
		if req.ReceiptURL != "" {
			tx.AttachReceipt(req.ReceiptURL)
		}
		if len(req.Tags) > 0 {
			tx.AddTags(req.Tags...)
		}

		if err := uow.Transactions().SaveTransaction(ctx, tx); err != nil {
			return err
		}
		return uow.Accounts().UpdateAccount(ctx, account)
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to create transaction",
			slog.String("account_id", req.AccountID),
			slog.String("type", string(req.Type)))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", tx.TransactionID),
		slog.String("account_id", tx.AccountID))
	return tx, nil
}

func (s *transactionService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.Transaction, error) {
	if req.FromAccountID == req.ToAccountID {
		return nil, domain.ErrTransferToSelf
	}

	uow := s.uowFactory.New()
	var tx *domain.Transaction
	err := runInTransaction(ctx, uow, func() error {
		from, to, err := lockTransferAccounts(ctx, uow, req.FromAccountID, req.ToAccountID, userID)
		if err != nil {
			return err
		}

		amount := money(req.Amount, from.Balance.Currency)
		tx, err = domain.NewTransfer(userID, from.AccountID, to.AccountID, amount, req.TransactionDate, req.Description)
		if err != nil {
			return err
		}
		if err := from.Withdraw(amount); err != nil {
			return err
		}
		if err := to.Deposit(amount); err != nil {
			return err
		}

		if err := uow.Transactions().SaveTransaction(ctx, tx); err != nil {
			return err
		}
		if err := uow.Accounts().UpdateAccount(ctx, from); err != nil {
			return err
		}
		return uow.Accounts().UpdateAccount(ctx, to)
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to create transfer",
			slog.String("from_account_id", req.FromAccountID),
			slog.String("to_account_id", req.ToAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer created", slog.String("transaction_id", tx.TransactionID))
	return tx, nil
}

// getOwnedTransaction loads a transaction through uow and checks it belongs to userID.
func getOwnedTransaction(ctx context.Context, uow portsrepo.UnitOfWork, transactionID, userID string) (*domain.Transaction, error) {
	tx, err := uow.Transactions().FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(tx.UserID, userID); err != nil {
		return nil, err
	}
	return tx, nil
}

// lockOwnedTransaction selects a transaction FOR UPDATE before any of its accounts are locked,
// so the amount being reverted is the committed one.
func lockOwnedTransaction(ctx context.Context, uow portsrepo.UnitOfWork, transactionID, userID string) (*domain.Transaction, error) {
	tx, err := uow.Transactions().FindTransactionByIDForUpdate(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(tx.UserID, userID); err != nil {
		return nil, err
	}
	return tx, nil
}

// reverseTransfer undoes a transfer's balance effect on both accounts.
func reverseTransfer(tx *domain.Transaction, from, to *domain.Account) error {
	if err := to.Withdraw(tx.Amount); err != nil {
		return err
	}
	return from.Deposit(tx.Amount)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	uow := s.uowFactory.New()
	var tx *domain.Transaction
	err := runInTransaction(ctx, uow, func() error {
		var err error
		tx, err = lockOwnedTransaction(ctx, uow, transactionID, userID)
		if err != nil {
			return err
		}
		amount := money(req.Amount, tx.Amount.Currency)

		if tx.Type == domain.Transfer {
			from, to, err := lockTransferAccounts(ctx, uow, tx.AccountID, *tx.ToAccountID, userID)
			if err != nil {
				return err
			}
			if err := reverseTransfer(tx, from, to); err != nil {
				return err
			}
			tx.Update("", amount, req.TransactionDate, req.Description, req.Notes)
			if err := from.Withdraw(tx.Amount); err != nil {
				return err
			}
			if err := to.Deposit(tx.Amount); err != nil {
				return err
			}
			if err := uow.Accounts().UpdateAccount(ctx, from); err != nil {
				return err
			}
			if err := uow.Accounts().UpdateAccount(ctx, to); err != nil {
				return err
			}
		} else {
			account, err := lockOwnedAccount(ctx, uow, tx.AccountID, userID)
			if err != nil {
				return err
			}
			categoryID := tx.CategoryID
			if req.CategoryID != "" && req.CategoryID != categoryID {
				if _, err := categoryFor(ctx, uow, req.CategoryID, userID, tx.Type); err != nil {
					return err
				}
				categoryID = req.CategoryID
			}
			if err := tx.RevertFrom(account); err != nil {
				return err
			}
			tx.Update(categoryID, amount, req.TransactionDate, req.Description, req.Notes)
			if err := tx.ApplyTo(account); err != nil {
				return err
			}
			if err := uow.Accounts().UpdateAccount(ctx, account); err != nil {
				return err
			}
		}

		if req.Tags != nil {
			tx.Tags = nil
			tx.AddTags(req.Tags...)
		}
		return uow.Transactions().UpdateTransaction(ctx, tx)
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return tx, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	uow := s.uowFactory.New()
	err := runInTransaction(ctx, uow, func() error {
		tx, err := lockOwnedTransaction(ctx, uow, transactionID, userID)
		if err != nil {
			return err
		}

		if tx.Type == domain.Transfer {
			from, to, err := lockTransferAccounts(ctx, uow, tx.AccountID, *tx.ToAccountID, userID)
			if err != nil {
				return err
			}
			if err := reverseTransfer(tx, from, to); err != nil {
				return err
			}
			if err := uow.Accounts().UpdateAccount(ctx, from); err != nil {
				return err
			}
			if err := uow.Accounts().UpdateAccount(ctx, to); err != nil {
				return err
			}
		} else {
			account, err := lockOwnedAccount(ctx, uow, tx.AccountID, userID)
			if err != nil {
				return err
			}
			if err := tx.RevertFrom(account); err != nil {
				return err
			}
			if err := uow.Accounts().UpdateAccount(ctx, account); err != nil {
				return err
			}
		}

		tx.Delete()
		return uow.Transactions().UpdateTransaction(ctx, tx)
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	tx, err := getOwnedTransaction(ctx, s.uowFactory.New(), transactionID, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return tx, nil
}

// ListTransactions fetches one row past the page to know whether a next page exists.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}

	filter := portsrepo.TransactionFilter{
		From:       params.From,
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
		Limit:      limit + 1,
	}
	if params.To != nil {
		// to is a calendar date and covers the whole day
		endOfDay := params.To.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.To = &endOfDay
	}
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		filter.Type = &t
	}
	if params.NextToken != "" {
		cursor, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		filter.AfterDate = &cursor.TransactionDate
		filter.AfterCreatedAt = &cursor.CreatedAt
	}

	txs, err := s.uowFactory.New().Transactions().ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, err
	}

	resp := &dto.ListTransactionsResponse{Transactions: txs}
	if len(txs) > limit {
		resp.Transactions = txs[:limit]
		last := resp.Transactions[limit-1]
		resp.NextToken = pagination.EncodeToken(pagination.Cursor{
			TransactionDate: last.TransactionDate,
			CreatedAt:       last.CreatedAt,
		})
	}
	return resp, nil
}
