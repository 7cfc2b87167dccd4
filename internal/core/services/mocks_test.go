package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Unit of work ---

// MockUnitOfWork records transaction calls and hands out the embedded repository mocks.
type MockUnitOfWork struct {
	mock.Mock
	users        *MockUserRepository
	tokens       *MockRefreshTokenRepository
	accounts     *MockAccountRepository
	categories   *MockCategoryRepository
	transactions *MockTransactionRepository
	budgets      *MockBudgetRepository
	goals        *MockGoalRepository
	recurring    *MockRecurringRepository
}

func newMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		users:        new(MockUserRepository),
		tokens:       new(MockRefreshTokenRepository),
		accounts:     new(MockAccountRepository),
		categories:   new(MockCategoryRepository),
		transactions: new(MockTransactionRepository),
		budgets:      new(MockBudgetRepository),
		goals:        new(MockGoalRepository),
		recurring:    new(MockRecurringRepository),
	}
}

func (m *MockUnitOfWork) Users() portsrepo.UserRepository                 { return m.users }
func (m *MockUnitOfWork) RefreshTokens() portsrepo.RefreshTokenRepository { return m.tokens }
func (m *MockUnitOfWork) Accounts() portsrepo.AccountRepository           { return m.accounts }
func (m *MockUnitOfWork) Categories() portsrepo.CategoryRepository        { return m.categories }
func (m *MockUnitOfWork) Transactions() portsrepo.TransactionRepository   { return m.transactions }
func (m *MockUnitOfWork) Budgets() portsrepo.BudgetRepository             { return m.budgets }
func (m *MockUnitOfWork) Goals() portsrepo.GoalRepository                 { return m.goals }
func (m *MockUnitOfWork) RecurringTransactions() portsrepo.RecurringTransactionRepository {
	return m.recurring
}

func (m *MockUnitOfWork) SaveChanges(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Begin(ctx context.Context) error       { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Commit(ctx context.Context) error      { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Rollback(ctx context.Context) error    { return m.Called(ctx).Error(0) }

// expectTx allows Begin and Commit and Rollback, for tests that do not assert on them.
func (m *MockUnitOfWork) expectTx() {
	m.On("Begin", mock.Anything).Return(nil).Maybe()
	m.On("Commit", mock.Anything).Return(nil).Maybe()
	m.On("Rollback", mock.Anything).Return(nil).Maybe()
}

// MockUnitOfWorkFactory returns the same unit of work on every call.
type MockUnitOfWorkFactory struct {
	uow *MockUnitOfWork
}

func (f *MockUnitOfWorkFactory) New() portsrepo.UnitOfWork { return f.uow }

// --- Repositories ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) FindRefreshToken(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token *domain.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenRepository) UpdateRefreshToken(ctx context.Context, token *domain.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Account, error) {
	args := m.Called(ctx, userID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) TotalBalanceByCurrency(ctx context.Context, userID string) ([]domain.CurrencyTotal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyTotal), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, accountIDs []string) (map[string]*domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByUser(ctx context.Context, userID string, filter portsrepo.CategoryFilter) ([]domain.Category, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) SaveCategories(ctx context.Context, categories []*domain.Category) error {
	return m.Called(ctx, categories).Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumByCategory(ctx context.Context, userID, categoryID string, txType domain.TransactionType, period domain.DateRange) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, categoryID, txType, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) TotalByType(ctx context.Context, userID string, txType domain.TransactionType, period domain.DateRange) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, txType, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) TotalsByCategory(ctx context.Context, userID string, txType domain.TransactionType, period domain.DateRange) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, userID, txType, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockTransactionRepository) MonthlyTotals(ctx context.Context, userID string, period domain.DateRange) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTotal), args.Error(1)
}

func (m *MockTransactionRepository) SummaryCurrency(ctx context.Context, userID string, period domain.DateRange) (domain.Currency, error) {
	args := m.Called(ctx, userID, period)
	return args.Get(0).(domain.Currency), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, tx *domain.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, tx *domain.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Budget, error) {
	args := m.Called(ctx, userID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindActiveBudgetByCategoryAndDate(ctx context.Context, userID, categoryID string, date time.Time) (*domain.Budget, error) {
	args := m.Called(ctx, userID, categoryID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget *domain.Budget) error {
	return m.Called(ctx, budget).Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget *domain.Budget) error {
	return m.Called(ctx, budget).Error(0)
}

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindGoalByIDForUpdate(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListGoalsByUser(ctx context.Context, userID string, status *domain.GoalStatus) ([]domain.Goal, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal *domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal *domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

type MockRecurringRepository struct {
	mock.Mock
}

func (m *MockRecurringRepository) FindRecurringByID(ctx context.Context, id string) (*domain.RecurringTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringTransaction), args.Error(1)
}

func (m *MockRecurringRepository) FindRecurringByIDForUpdate(ctx context.Context, id string) (*domain.RecurringTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringTransaction), args.Error(1)
}

func (m *MockRecurringRepository) ListRecurringByUser(ctx context.Context, userID string) ([]domain.RecurringTransaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringTransaction), args.Error(1)
}

func (m *MockRecurringRepository) ListDueRecurring(ctx context.Context, at time.Time, limit int) ([]domain.RecurringTransaction, error) {
	args := m.Called(ctx, at, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringTransaction), args.Error(1)
}

func (m *MockRecurringRepository) SaveRecurring(ctx context.Context, r *domain.RecurringTransaction) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRecurringRepository) UpdateRecurring(ctx context.Context, r *domain.RecurringTransaction) error {
	return m.Called(ctx, r).Error(0)
}

// --- Fixtures ---

func try(v string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(v), domain.TRY)
}

func newBankAccount(userID, balance string) *domain.Account {
	a, err := domain.NewAccount(userID, "Checking", domain.BankAccount, try(balance), domain.AccountOptions{})
	if err != nil {
		panic(err)
	}
	return a
}

func newExpenseCategory(userID string) *domain.Category {
	return domain.NewCategory(userID, "Food", domain.Expense, domain.CategoryFood, "", "", false, nil)
}
