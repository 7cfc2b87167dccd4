package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

const (
	recentTransactionsLimit = 10
	recentTransactionsDays  = 30
)

// dashboardService runs its sub-queries concurrently. A pgx connection serves one query
// at a time, so every goroutine gets its own unit of work.
type dashboardService struct {
	BaseService
	uowFactory portsrepo.UnitOfWorkFactory
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(uowFactory portsrepo.UnitOfWorkFactory) portssvc.DashboardSvc {
	return &dashboardService{uowFactory: uowFactory}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) GetDashboard(ctx context.Context, userID string, now time.Time) (*domain.Dashboard, error) {
	thisMonth := domain.MonthRange(now)
	lastMonth := domain.MonthRange(thisMonth.Start.AddDate(0, -1, 0))

	d := &domain.Dashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := s.uowFactory.New().Accounts().TotalBalanceByCurrency(gctx, userID)
		d.TotalBalance = totals
		return err
	})

	g.Go(func() error {
		txs := s.uowFactory.New().Transactions()
		var err error
		if d.MonthlyIncome, err = txs.TotalByType(gctx, userID, domain.Income, thisMonth); err != nil {
			return err
		}
		if d.MonthlyExpense, err = txs.TotalByType(gctx, userID, domain.Expense, thisMonth); err != nil {
			return err
		}
		return nil
	})

	g.Go(func() error {
		txs := s.uowFactory.New().Transactions()
		var err error
		if d.LastMonthIncome, err = txs.TotalByType(gctx, userID, domain.Income, lastMonth); err != nil {
			return err
		}
		if d.LastMonthExpense, err = txs.TotalByType(gctx, userID, domain.Expense, lastMonth); err != nil {
			return err
		}
		return nil
	})

	g.Go(func() error {
		accounts, err := s.uowFactory.New().Accounts().ListAccountsByUser(gctx, userID, false)
		if err != nil {
			return err
		}
		d.TotalAccounts = len(accounts)
		for _, a := range accounts {
			if a.IsActive {
				d.ActiveAccounts++
			}
		}
		return nil
	})

	g.Go(func() error {
		goals, err := s.uowFactory.New().Goals().ListGoalsByUser(gctx, userID, nil)
		if err != nil {
			return err
		}
		for _, goal := range goals {
			switch goal.Status {
			case domain.GoalActive:
				d.ActiveGoals++
			case domain.GoalCompleted:
				if goal.UpdatedAt != nil && thisMonth.Contains(*goal.UpdatedAt) {
					d.CompletedGoalsThisMonth++
				}
			}
		}
		return nil
	})

	g.Go(func() error {
		alerts, err := s.budgetAlerts(gctx, userID, now)
		d.BudgetAlerts = alerts
		return err
	})

	g.Go(func() error {
		from := now.AddDate(0, 0, -recentTransactionsDays)
		recent, err := s.uowFactory.New().Transactions().ListTransactions(gctx, userID, portsrepo.TransactionFilter{
			From:  &from,
			Limit: recentTransactionsLimit,
		})
		d.RecentTransactions = recent
		return err
	})

	if err := g.Wait(); err != nil {
		s.logUnexpected(ctx, err, "Failed to build dashboard", slog.String("user_id", userID))
		return nil, err
	}

	d.IncomeChangePercent = domain.ChangePercent(d.MonthlyIncome, d.LastMonthIncome)
	d.ExpenseChangePercent = domain.ChangePercent(d.MonthlyExpense, d.LastMonthExpense)
	return d, nil
}

// budgetAlerts returns the current-period budgets at Warning or Exceeded, highest usage first.
func (s *dashboardService) budgetAlerts(ctx context.Context, userID string, now time.Time) ([]domain.BudgetUsage, error) {
	uow := s.uowFactory.New()
	budgets, err := uow.Budgets().ListBudgetsByUser(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	alerts := []domain.BudgetUsage{}
	for i := range budgets {
		if !budgets[i].IsCurrentPeriod(now) {
			continue
		}
		usage, err := budgetUsage(ctx, uow, &budgets[i])
		if err != nil {
			return nil, err
		}
		if usage.IsAlerting() {
			alerts = append(alerts, usage)
		}
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].PercentageUsed.GreaterThan(alerts[j].PercentageUsed)
	})
	return alerts, nil
}
