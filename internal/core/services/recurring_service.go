package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
)

const (
	// dueBatchSize bounds how many recurring items one ProcessDue run picks up.
	dueBatchSize = 500
	// maxCatchUpOccurrences bounds the backlog generated for one item in one run.
	maxCatchUpOccurrences = 366
)

type recurringService struct {
	BaseService
	uowFactory portsrepo.UnitOfWorkFactory
}

// NewRecurringService creates a new recurring transaction service.
func NewRecurringService(uowFactory portsrepo.UnitOfWorkFactory) portssvc.RecurringSvcFacade {
	return &recurringService{uowFactory: uowFactory}
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest, userID string) (*domain.RecurringTransaction, error) {
	uow := s.uowFactory.New()

	account, err := getOwnedAccount(ctx, uow, req.AccountID, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Invalid recurring account", slog.String("account_id", req.AccountID))
		return nil, err
	}
	if _, err := categoryFor(ctx, uow, req.CategoryID, userID, req.Type); err != nil {
		s.logUnexpected(ctx, err, "Invalid recurring category", slog.String("category_id", req.CategoryID))
		return nil, err
	}

	interval := req.Interval
	if interval == 0 {
		interval = 1
	}
	rt, err := domain.NewRecurringTransaction(userID, account.AccountID, req.CategoryID, req.Type,
		money(req.Amount, account.Balance.Currency), req.Description, req.Frequency, interval, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	rt.SendReminder = req.SendReminder
	if req.ReminderDaysBefore != nil {
		rt.ReminderDaysBefore = *req.ReminderDaysBefore
	}

	if err := uow.RecurringTransactions().SaveRecurring(ctx, rt); err != nil {
		return nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		s.LogError(ctx, err, "Failed to save recurring transaction", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Recurring transaction created", slog.String("recurring_id", rt.RecurringTransactionID))
	return rt, nil
}

func (s *recurringService) ListRecurring(ctx context.Context, userID string) ([]domain.RecurringTransaction, error) {
	items, err := s.uowFactory.New().RecurringTransactions().ListRecurringByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring transactions", slog.String("user_id", userID))
		return nil, err
	}
	return items, nil
}

// mutate locks an owned recurring item, applies fn and commits.
func (s *recurringService) mutate(ctx context.Context, id, userID, action string, fn func(*domain.RecurringTransaction) error) (*domain.RecurringTransaction, error) {
	uow := s.uowFactory.New()
	var rt *domain.RecurringTransaction
	err := runInTransaction(ctx, uow, func() error {
		var err error
		rt, err = uow.RecurringTransactions().FindRecurringByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := ensureOwner(rt.UserID, userID); err != nil {
			return err
		}
		if err := fn(rt); err != nil {
			return err
		}
		return uow.RecurringTransactions().UpdateRecurring(ctx, rt)
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to "+action+" recurring transaction", slog.String("recurring_id", id))
		return nil, err
	}
	return rt, nil
}

func (s *recurringService) UpdateRecurringAmount(ctx context.Context, recurringID string, req dto.UpdateRecurringAmountRequest, userID string) (*domain.RecurringTransaction, error) {
	return s.mutate(ctx, recurringID, userID, "update", func(rt *domain.RecurringTransaction) error {
		return rt.UpdateAmount(money(req.Amount, rt.Amount.Currency))
	})
}

func (s *recurringService) PauseRecurring(ctx context.Context, recurringID string, userID string) (*domain.RecurringTransaction, error) {
	return s.mutate(ctx, recurringID, userID, "pause", func(rt *domain.RecurringTransaction) error {
		rt.Pause()
		return nil
	})
}

func (s *recurringService) ResumeRecurring(ctx context.Context, recurringID string, userID string) (*domain.RecurringTransaction, error) {
	return s.mutate(ctx, recurringID, userID, "resume", func(rt *domain.RecurringTransaction) error {
		rt.Resume()
		return nil
	})
}

func (s *recurringService) DeleteRecurring(ctx context.Context, recurringID string, userID string) error {
	_, err := s.mutate(ctx, recurringID, userID, "delete", func(rt *domain.RecurringTransaction) error {
		rt.Delete()
		return nil
	})
	return err
}

func (s *recurringService) ProcessDue(ctx context.Context, now time.Time) (*dto.ProcessDueResult, error) {
	due, err := s.uowFactory.New().RecurringTransactions().ListDueRecurring(ctx, now, dueBatchSize)
	if err != nil {
		s.LogError(ctx, err, "Failed to list due recurring transactions")
		return nil, err
	}

	result := &dto.ProcessDueResult{}
	for _, item := range due {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Processed++

		generated, err := s.processOne(ctx, item.RecurringTransactionID, now)
		if err != nil {
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, item.RecurringTransactionID)
			s.LogError(ctx, err, "Failed to process recurring transaction",
				slog.String("recurring_id", item.RecurringTransactionID),
				slog.String("user_id", item.UserID))
			continue
		}
		result.Generated += generated
	}

	s.LogInfo(ctx, "Processed due recurring transactions",
		slog.Int("processed", result.Processed),
		slog.Int("generated", result.Generated),
		slog.Int("failed", result.Failed))
	return result, nil
}

// processOne materialises every occurrence of one item that is due at now, in a single
// transaction. The row lock keeps two workers from generating the same occurrence.
func (s *recurringService) processOne(ctx context.Context, id string, now time.Time) (int, error) {
	uow := s.uowFactory.New()
	generated := 0
	err := runInTransaction(ctx, uow, func() error {
		rt, err := uow.RecurringTransactions().FindRecurringByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !rt.ShouldGenerateTransaction(now) {
			return nil
		}
		account, err := lockOwnedAccount(ctx, uow, rt.AccountID, rt.UserID)
		if err != nil {
			return fmt.Errorf("recurring account %s: %w", rt.AccountID, err)
		}

		for rt.ShouldGenerateTransaction(now) && generated < maxCatchUpOccurrences {
			tx := rt.Materialize()
			if err := tx.ApplyTo(account); err != nil {
				return fmt.Errorf("occurrence %s: %w", rt.NextOccurrence.Format(time.DateOnly), err)
			}
			if err := uow.Transactions().SaveTransaction(ctx, tx); err != nil {
				return err
			}
			rt.UpdateNextOccurrence()
			generated++
		}

		if err := uow.Accounts().UpdateAccount(ctx, account); err != nil {
			return err
		}
		return uow.RecurringTransactions().UpdateRecurring(ctx, rt)
	})
	if err != nil {
		return 0, err
	}
	return generated, nil
}
