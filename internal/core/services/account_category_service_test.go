package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/core/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount_Success(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := services.NewAccountService(&MockUnitOfWorkFactory{uow: uow})
	ctx := context.Background()
	userID := uuid.NewString()

	uow.accounts.On("SaveAccount", ctx, mock.AnythingOfType("*domain.Account")).Return(nil).Once()
	uow.On("SaveChanges", ctx).Return(nil).Once()

	account, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{
		Name:           "Ziraat",
		AccountType:    domain.BankAccount,
		Currency:       "TRY",
		InitialBalance: decimal.RequireFromString("1250.505"),
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, account.UserID)
	assert.True(t, decimal.RequireFromString("1250.51").Equal(account.Balance.Amount))
	assert.True(t, account.Balance.Equal(account.InitialBalance))
	assert.True(t, account.IncludeInTotalBalance)
	uow.AssertExpectations(t)
}

func TestCreateAccount_CreditLimitOnBankAccount(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := services.NewAccountService(&MockUnitOfWorkFactory{uow: uow})
	limit := decimal.NewFromInt(1000)

	_, err := svc.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name:        "Cash",
		AccountType: domain.Cash,
		Currency:    "TRY",
		CreditLimit: &limit,
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrNotCreditCard)
	uow.accounts.AssertNotCalled(t, "SaveAccount", mock.Anything, mock.Anything)
}

func TestGetAccount_OtherUser(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := services.NewAccountService(&MockUnitOfWorkFactory{uow: uow})
	account := newBankAccount(uuid.NewString(), "10")
	uow.accounts.On("FindAccountByID", mock.Anything, account.AccountID).Return(account, nil).Once()

	_, err := svc.GetAccountByID(context.Background(), account.AccountID, uuid.NewString())

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestDeleteAccount_LocksRowInTransaction(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := services.NewAccountService(&MockUnitOfWorkFactory{uow: uow})
	ctx := context.Background()
	account := newBankAccount(uuid.NewString(), "75")

	uow.On("Begin", ctx).Return(nil).Once()
	uow.accounts.On("FindAccountByIDForUpdate", ctx, account.AccountID).Return(account, nil).Once()
	uow.accounts.On("UpdateAccount", ctx, account).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	require.NoError(t, svc.DeleteAccount(ctx, account.AccountID, account.UserID))
	assert.True(t, account.IsDeleted)
	assert.True(t, decimal.NewFromInt(75).Equal(account.Balance.Amount))
	uow.AssertExpectations(t)
	uow.accounts.AssertNotCalled(t, "FindAccountByID", mock.Anything, mock.Anything)
}

func TestDeleteAccount_OtherUserRollsBack(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := services.NewAccountService(&MockUnitOfWorkFactory{uow: uow})
	ctx := context.Background()
	account := newBankAccount(uuid.NewString(), "10")

	uow.On("Begin", ctx).Return(nil).Once()
	uow.accounts.On("FindAccountByIDForUpdate", ctx, account.AccountID).Return(account, nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	err := svc.DeleteAccount(ctx, account.AccountID, uuid.NewString())

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.False(t, account.IsDeleted)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCategorySeeder_QueuesDefaultCatalog(t *testing.T) {
	uow := newMockUnitOfWork()
	userID := uuid.NewString()
	uow.categories.On("SaveCategories", mock.Anything, mock.MatchedBy(func(cs []*domain.Category) bool {
		if len(cs) != len(domain.DefaultCatalog()) {
			return false
		}
		for _, c := range cs {
			if c.UserID != userID || !c.IsDefault {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	err := services.NewCategorySeeder().SeedDefaultCategoriesForUser(context.Background(), uow, userID)

	require.NoError(t, err)
	uow.categories.AssertExpectations(t)
	uow.AssertNotCalled(t, "SaveChanges", mock.Anything)
}

func TestCreateCategory_TransferRejected(t *testing.T) {
	svc := services.NewCategoryService(&MockUnitOfWorkFactory{uow: newMockUnitOfWork()})

	_, err := svc.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: "X", TransactionType: domain.Transfer}, uuid.NewString())

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateCategory_DefaultsType(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := services.NewCategoryService(&MockUnitOfWorkFactory{uow: uow})
	uow.categories.On("SaveCategory", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil).Once()
	uow.On("SaveChanges", mock.Anything).Return(nil).Once()

	c, err := svc.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: "Pets", TransactionType: domain.Expense}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryOther, c.Type)
	assert.False(t, c.IsDefault)
}

func TestDeactivateCategory_DefaultIsProtected(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := services.NewCategoryService(&MockUnitOfWorkFactory{uow: uow})
	userID := uuid.NewString()
	c := domain.NewDefaultCategories(userID)[0]
	uow.categories.On("FindCategoryByID", mock.Anything, c.CategoryID).Return(c, nil).Once()

	err := svc.DeactivateCategory(context.Background(), c.CategoryID, userID)

	assert.ErrorIs(t, err, domain.ErrDefaultCategory)
	assert.True(t, c.IsActive)
	uow.categories.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything)
}
