package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetReport_SharesAndSummary(t *testing.T) {
	uow := newMockUnitOfWork()
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	svc := services.NewReportingService(&MockUnitOfWorkFactory{uow: uow}, services.WithReportingClock(func() time.Time { return now }))
	userID := uuid.NewString()
	period := domain.DateRange{Start: now.AddDate(0, 0, -30), End: now}

	uow.transactions.On("TotalsByCategory", mock.Anything, userID, domain.Income, period).Return([]domain.CategoryTotal{
		{CategoryID: "salary", Total: decimal.NewFromInt(3000), Count: 1},
		{CategoryID: "freelance", Total: decimal.NewFromInt(1000), Count: 2},
	}, nil).Once()
	uow.transactions.On("TotalsByCategory", mock.Anything, userID, domain.Expense, period).Return([]domain.CategoryTotal{
		{CategoryID: "rent", Total: decimal.NewFromInt(1500), Count: 1},
		{CategoryID: "food", Total: decimal.NewFromInt(500), Count: 7},
	}, nil).Once()
	uow.transactions.On("MonthlyTotals", mock.Anything, userID, period).Return([]domain.MonthlyTotal{
		{Month: "2025-03", Income: decimal.NewFromInt(4000), Expense: decimal.NewFromInt(2000), Net: decimal.NewFromInt(2000)},
	}, nil).Once()
	uow.transactions.On("SummaryCurrency", mock.Anything, userID, period).Return(domain.TRY, nil).Once()

	r, err := svc.GetReport(context.Background(), userID, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, period, r.Range)
	assert.True(t, decimal.NewFromInt(4000).Equal(r.Summary.TotalIncome))
	assert.True(t, decimal.NewFromInt(2000).Equal(r.Summary.TotalExpense))
	assert.True(t, decimal.NewFromInt(2000).Equal(r.Summary.NetIncome))
	assert.Equal(t, 11, r.Summary.Transactions)
	assert.Equal(t, domain.TRY, r.Summary.Currency)
	assert.True(t, decimal.NewFromInt(75).Equal(r.IncomeByCategory[0].Percentage))
	assert.True(t, decimal.NewFromInt(25).Equal(r.ExpenseByCategory[1].Percentage))
	uow.users.AssertNotCalled(t, "FindUserByID", mock.Anything, mock.Anything)
}

func TestGetReport_EmptyWindowUsesPreferredCurrency(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := services.NewReportingService(&MockUnitOfWorkFactory{uow: uow})
	user := domain.NewUser("a@b.com", "h", "A", "B", domain.EUR)
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	uow.transactions.On("TotalsByCategory", mock.Anything, user.UserID, mock.Anything, mock.Anything).Return([]domain.CategoryTotal{}, nil).Twice()
	uow.transactions.On("MonthlyTotals", mock.Anything, user.UserID, mock.Anything).Return([]domain.MonthlyTotal{}, nil).Once()
	uow.transactions.On("SummaryCurrency", mock.Anything, user.UserID, mock.Anything).Return(domain.Currency(""), nil).Once()
	uow.users.On("FindUserByID", mock.Anything, user.UserID).Return(user, nil).Once()

	r, err := svc.GetReport(context.Background(), user.UserID, &from, &to)

	require.NoError(t, err)
	assert.Equal(t, domain.EUR, r.Summary.Currency)
	assert.True(t, r.Summary.TotalIncome.IsZero())
	assert.Zero(t, r.Summary.Transactions)
}

func TestGetReport_InvertedRange(t *testing.T) {
	svc := services.NewReportingService(&MockUnitOfWorkFactory{uow: newMockUnitOfWork()})
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetReport(context.Background(), uuid.NewString(), &from, &to)

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestExportReportXLSX(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := services.NewReportingService(&MockUnitOfWorkFactory{uow: uow})
	userID := uuid.NewString()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	uow.transactions.On("TotalsByCategory", mock.Anything, userID, mock.Anything, mock.Anything).Return([]domain.CategoryTotal{
		{CategoryID: "food", CategoryName: "Food", Total: decimal.NewFromInt(10), Count: 1},
	}, nil).Twice()
	uow.transactions.On("MonthlyTotals", mock.Anything, userID, mock.Anything).Return([]domain.MonthlyTotal{}, nil).Once()
	uow.transactions.On("SummaryCurrency", mock.Anything, userID, mock.Anything).Return(domain.TRY, nil).Once()

	var buf bytes.Buffer
	name, err := svc.ExportReportXLSX(context.Background(), userID, &from, &to, &buf)

	require.NoError(t, err)
	assert.Contains(t, name, ".xlsx")
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}

func TestGetDashboard(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := services.NewDashboardService(&MockUnitOfWorkFactory{uow: uow})
	userID := uuid.NewString()
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := domain.MonthRange(now)
	lastMonth := domain.MonthRange(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	checking := newBankAccount(userID, "100")
	closed := newBankAccount(userID, "0")
	closed.Deactivate()

	active := domain.NewGoal(userID, "Car", try("100"), now, domain.GoalOptions{})
	done := domain.NewGoal(userID, "Phone", try("10"), now, domain.GoalOptions{})
	require.NoError(t, done.AddContribution(try("10")))
	doneAt := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	done.UpdatedAt = &doneAt

	food := domain.NewBudget(userID, "food", "Food", try("100"), thisMonth)
	fun := domain.NewBudget(userID, "fun", "Fun", try("100"), thisMonth)
	calm := domain.NewBudget(userID, "calm", "Calm", try("100"), thisMonth)
	old := domain.NewBudget(userID, "old", "Old", try("100"), lastMonth)

	uow.accounts.On("TotalBalanceByCurrency", mock.Anything, userID).Return([]domain.CurrencyTotal{{Currency: domain.TRY, Total: decimal.NewFromInt(100)}}, nil).Once()
	uow.transactions.On("TotalByType", mock.Anything, userID, domain.Income, thisMonth).Return(decimal.NewFromInt(1500), nil).Once()
	uow.transactions.On("TotalByType", mock.Anything, userID, domain.Expense, thisMonth).Return(decimal.NewFromInt(800), nil).Once()
	uow.transactions.On("TotalByType", mock.Anything, userID, domain.Income, lastMonth).Return(decimal.NewFromInt(1000), nil).Once()
	uow.transactions.On("TotalByType", mock.Anything, userID, domain.Expense, lastMonth).Return(decimal.Zero, nil).Once()
	uow.accounts.On("ListAccountsByUser", mock.Anything, userID, false).Return([]domain.Account{*checking, *closed}, nil).Once()
	uow.goals.On("ListGoalsByUser", mock.Anything, userID, (*domain.GoalStatus)(nil)).Return([]domain.Goal{*active, *done}, nil).Once()
	uow.budgets.On("ListBudgetsByUser", mock.Anything, userID, true).Return([]domain.Budget{*food, *fun, *calm, *old}, nil).Once()
	uow.transactions.On("SumByCategory", mock.Anything, userID, "food", domain.Expense, thisMonth).Return(decimal.NewFromInt(85), nil).Once()
	uow.transactions.On("SumByCategory", mock.Anything, userID, "fun", domain.Expense, thisMonth).Return(decimal.NewFromInt(120), nil).Once()
	uow.transactions.On("SumByCategory", mock.Anything, userID, "calm", domain.Expense, thisMonth).Return(decimal.NewFromInt(10), nil).Once()
	uow.transactions.On("ListTransactions", mock.Anything, userID, mock.Anything).Return([]domain.Transaction{}, nil).Once()

	d, err := svc.GetDashboard(context.Background(), userID, now)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(d.IncomeChangePercent))
	assert.True(t, d.ExpenseChangePercent.IsZero(), "no spend last month")
	assert.Equal(t, 2, d.TotalAccounts)
	assert.Equal(t, 1, d.ActiveAccounts)
	assert.Equal(t, 1, d.ActiveGoals)
	assert.Equal(t, 1, d.CompletedGoalsThisMonth)
	require.Len(t, d.BudgetAlerts, 2)
	assert.Equal(t, "fun", d.BudgetAlerts[0].Budget.CategoryID, "most consumed first")
	assert.Equal(t, domain.BudgetExceeded, d.BudgetAlerts[0].Status)
	assert.Equal(t, domain.BudgetWarning, d.BudgetAlerts[1].Status)
	uow.transactions.AssertNotCalled(t, "SumByCategory", mock.Anything, userID, "old", mock.Anything, mock.Anything)
}

func TestGetDashboard_PropagatesError(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := services.NewDashboardService(&MockUnitOfWorkFactory{uow: uow})
	boom := errors.New("connection reset")

	uow.accounts.On("TotalBalanceByCurrency", mock.Anything, mock.Anything).Return(nil, boom).Maybe()
	uow.transactions.On("TotalByType", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, nil).Maybe()
	uow.accounts.On("ListAccountsByUser", mock.Anything, mock.Anything, false).Return([]domain.Account{}, nil).Maybe()
	uow.goals.On("ListGoalsByUser", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Goal{}, nil).Maybe()
	uow.budgets.On("ListBudgetsByUser", mock.Anything, mock.Anything, true).Return([]domain.Budget{}, nil).Maybe()
	uow.transactions.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Transaction{}, nil).Maybe()

	_, err := svc.GetDashboard(context.Background(), uuid.NewString(), time.Now())

	assert.ErrorIs(t, err, boom)
}
