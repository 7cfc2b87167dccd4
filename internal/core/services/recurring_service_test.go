package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecurringServiceTestSuite struct {
	suite.Suite
	uow     *MockUnitOfWork
	service portssvc.RecurringSvcFacade
	userID  string
	now     time.Time
	ctx     context.Context
}

func (suite *RecurringServiceTestSuite) SetupTest() {
	suite.uow = newMockUnitOfWork()
	suite.service = services.NewRecurringService(&MockUnitOfWorkFactory{uow: suite.uow})
	suite.userID = uuid.NewString()
	suite.now = time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	suite.ctx = context.Background()
}

func (suite *RecurringServiceTestSuite) newMonthly(accountID string, start time.Time) *domain.RecurringTransaction {
	rt, err := domain.NewRecurringTransaction(suite.userID, accountID, uuid.NewString(), domain.Expense,
		try("100"), "Rent", domain.Monthly, 1, start, nil)
	suite.Require().NoError(err)
	return rt
}

func (suite *RecurringServiceTestSuite) TestProcessDue_CatchesUpMissedOccurrences() {
	account := newBankAccount(suite.userID, "1000")
	rt := suite.newMonthly(account.AccountID, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	suite.uow.recurring.On("ListDueRecurring", suite.ctx, suite.now, mock.AnythingOfType("int")).
		Return([]domain.RecurringTransaction{*rt}, nil).Once()
	suite.uow.On("Begin", suite.ctx).Return(nil).Once()
	suite.uow.recurring.On("FindRecurringByIDForUpdate", suite.ctx, rt.RecurringTransactionID).Return(rt, nil).Once()
	suite.uow.accounts.On("FindAccountByIDForUpdate", suite.ctx, account.AccountID).Return(account, nil).Once()
	suite.uow.transactions.On("SaveTransaction", suite.ctx, mock.AnythingOfType("*domain.Transaction")).Return(nil).Times(4)
	suite.uow.accounts.On("UpdateAccount", suite.ctx, account).Return(nil).Once()
	suite.uow.recurring.On("UpdateRecurring", suite.ctx, rt).Return(nil).Once()
	suite.uow.On("Commit", suite.ctx).Return(nil).Once()

	result, err := suite.service.ProcessDue(suite.ctx, suite.now)

	suite.Require().NoError(err)
	suite.Equal(1, result.Processed)
	suite.Equal(4, result.Generated, "Jan, Feb, Mar and Apr 15th are all due")
	suite.Zero(result.Failed)
	suite.True(decimal.NewFromInt(600).Equal(account.Balance.Amount))
	suite.Equal(time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), rt.NextOccurrence)

	first := suite.uow.transactions.Calls[0].Arguments.Get(1).(*domain.Transaction)
	suite.True(first.IsRecurring)
	suite.Require().NotNil(first.RecurringTransactionID)
	suite.Equal(rt.RecurringTransactionID, *first.RecurringTransactionID)
	suite.uow.AssertExpectations(suite.T())
	suite.uow.transactions.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestProcessDue_IsolatesFailures() {
	good := newBankAccount(suite.userID, "1000")
	okItem := suite.newMonthly(good.AccountID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	missingAccountID := uuid.NewString()
	badItem := suite.newMonthly(missingAccountID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))

	suite.uow.recurring.On("ListDueRecurring", suite.ctx, suite.now, mock.AnythingOfType("int")).
		Return([]domain.RecurringTransaction{*badItem, *okItem}, nil).Once()
	suite.uow.On("Begin", suite.ctx).Return(nil).Twice()

	suite.uow.recurring.On("FindRecurringByIDForUpdate", suite.ctx, badItem.RecurringTransactionID).Return(badItem, nil).Once()
	suite.uow.accounts.On("FindAccountByIDForUpdate", suite.ctx, missingAccountID).Return(nil, apperrors.ErrNotFound).Once()
	suite.uow.On("Rollback", mock.Anything).Return(nil).Once()

	suite.uow.recurring.On("FindRecurringByIDForUpdate", suite.ctx, okItem.RecurringTransactionID).Return(okItem, nil).Once()
	suite.uow.accounts.On("FindAccountByIDForUpdate", suite.ctx, good.AccountID).Return(good, nil).Once()
	suite.uow.transactions.On("SaveTransaction", suite.ctx, mock.AnythingOfType("*domain.Transaction")).Return(nil).Once()
	suite.uow.accounts.On("UpdateAccount", suite.ctx, good).Return(nil).Once()
	suite.uow.recurring.On("UpdateRecurring", suite.ctx, okItem).Return(nil).Once()
	suite.uow.On("Commit", suite.ctx).Return(nil).Once()

	result, err := suite.service.ProcessDue(suite.ctx, suite.now)

	suite.Require().NoError(err)
	suite.Equal(2, result.Processed)
	suite.Equal(1, result.Generated)
	suite.Equal(1, result.Failed)
	suite.Equal([]string{badItem.RecurringTransactionID}, result.FailedIDs)
	suite.uow.recurring.AssertNotCalled(suite.T(), "UpdateRecurring", mock.Anything, badItem)
	suite.uow.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestProcessDue_AlreadyGeneratedIsSkipped() {
	rt := suite.newMonthly(uuid.NewString(), time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	stale := *rt
	rt.UpdateNextOccurrence() // another worker got there first

	suite.uow.recurring.On("ListDueRecurring", suite.ctx, suite.now, mock.AnythingOfType("int")).
		Return([]domain.RecurringTransaction{stale}, nil).Once()
	suite.uow.On("Begin", suite.ctx).Return(nil).Once()
	suite.uow.recurring.On("FindRecurringByIDForUpdate", suite.ctx, rt.RecurringTransactionID).Return(rt, nil).Once()
	suite.uow.On("Commit", suite.ctx).Return(nil).Once()

	result, err := suite.service.ProcessDue(suite.ctx, suite.now)

	suite.Require().NoError(err)
	suite.Equal(1, result.Processed)
	suite.Zero(result.Generated)
	suite.uow.accounts.AssertNotCalled(suite.T(), "FindAccountByIDForUpdate", mock.Anything, mock.Anything)
	suite.uow.transactions.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *RecurringServiceTestSuite) TestProcessDue_StopsWhenCancelled() {
	rt := suite.newMonthly(uuid.NewString(), time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	suite.uow.recurring.On("ListDueRecurring", ctx, suite.now, mock.AnythingOfType("int")).
		Return([]domain.RecurringTransaction{*rt}, nil).Once()

	result, err := suite.service.ProcessDue(ctx, suite.now)

	suite.ErrorIs(err, context.Canceled)
	suite.Zero(result.Processed)
	suite.uow.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func TestRecurringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringServiceTestSuite))
}
