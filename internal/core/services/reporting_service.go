package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/utils/report"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const defaultReportDays = 30

// reportingService implements ReportingSvc.
type reportingService struct {
	BaseService
	uowFactory portsrepo.UnitOfWorkFactory
	now        func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock replaces time.Now when defaulting the report window.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service.
func NewReportingService(uowFactory portsrepo.UnitOfWorkFactory, options ...ReportingServiceOption) portssvc.ReportingSvc {
	svc := &reportingService{uowFactory: uowFactory, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) reportRange(from, to *time.Time) (domain.DateRange, error) {
	end := s.now().UTC()
	if to != nil {
		end = *to
	}
	start := end.AddDate(0, 0, -defaultReportDays)
	if from != nil {
		start = *from
	}
	return domain.NewDateRange(start, end)
}

func (s *reportingService) GetReport(ctx context.Context, userID string, from, to *time.Time) (*domain.Report, error) {
	period, err := s.reportRange(from, to)
	if err != nil {
		return nil, err
	}

	r := &domain.Report{Range: period}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		r.IncomeByCategory, err = s.uowFactory.New().Transactions().TotalsByCategory(gctx, userID, domain.Income, period)
		return err
	})
	g.Go(func() error {
		var err error
		r.ExpenseByCategory, err = s.uowFactory.New().Transactions().TotalsByCategory(gctx, userID, domain.Expense, period)
		return err
	})
	g.Go(func() error {
		var err error
		r.MonthlyTrend, err = s.uowFactory.New().Transactions().MonthlyTotals(gctx, userID, period)
		return err
	})
	g.Go(func() error {
		currency, err := s.summaryCurrency(gctx, userID, period)
		r.Summary.Currency = currency
		return err
	})

	if err := g.Wait(); err != nil {
		s.logUnexpected(ctx, err, "Failed to build report", slog.String("user_id", userID))
		return nil, err
	}

	r.Summary.TotalIncome, r.Summary.Transactions = applyShares(r.IncomeByCategory)
	expense, expenseCount := applyShares(r.ExpenseByCategory)
	r.Summary.TotalExpense = expense
	r.Summary.Transactions += expenseCount
	r.Summary.NetIncome = r.Summary.TotalIncome.Sub(r.Summary.TotalExpense)
	return r, nil
}

// summaryCurrency falls back to the user's preferred currency when the window is empty.
func (s *reportingService) summaryCurrency(ctx context.Context, userID string, period domain.DateRange) (domain.Currency, error) {
	uow := s.uowFactory.New()
	currency, err := uow.Transactions().SummaryCurrency(ctx, userID, period)
	if err != nil || currency != "" {
		return currency, err
	}
	user, err := uow.Users().FindUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.PreferredCurrency, nil
}

// applyShares fills each row's percentage of the group total and returns the total and row count.
func applyShares(totals []domain.CategoryTotal) (sum decimal.Decimal, count int) {
	for _, t := range totals {
		sum = sum.Add(t.Total)
		count += t.Count
	}
	for i := range totals {
		totals[i].Percentage = domain.Share(totals[i].Total, sum)
	}
	return sum, count
}

func (s *reportingService) ExportReportXLSX(ctx context.Context, userID string, from, to *time.Time, w io.Writer) (string, error) {
	r, err := s.GetReport(ctx, userID, from, to)
	if err != nil {
		return "", err
	}
	if err := report.WriteXLSX(w, r); err != nil {
		s.LogError(ctx, err, "Failed to render report workbook", slog.String("user_id", userID))
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return report.Filename(r), nil
}
