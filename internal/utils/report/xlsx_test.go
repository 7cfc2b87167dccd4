package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/utils/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	r := &domain.Report{
		Range: domain.DateRange{
			Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		Summary: domain.ReportSummary{
			TotalIncome:  decimal.NewFromInt(1000),
			TotalExpense: decimal.NewFromInt(400),
			NetIncome:    decimal.NewFromInt(600),
			Currency:     domain.TRY,
			Transactions: 3,
		},
		ExpenseByCategory: []domain.CategoryTotal{
			{CategoryID: "c1", CategoryName: "Food", Total: decimal.NewFromInt(400), Count: 2, Percentage: decimal.NewFromInt(100)},
		},
		IncomeByCategory: []domain.CategoryTotal{
			{CategoryID: "c2", CategoryName: "Salary", Total: decimal.NewFromInt(1000), Count: 1, Percentage: decimal.NewFromInt(100)},
		},
		MonthlyTrend: []domain.MonthlyTotal{
			{Month: "2024-01", Income: decimal.NewFromInt(1000), Expense: decimal.NewFromInt(400), Net: decimal.NewFromInt(600)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, r))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{report.SummarySheet, report.CategoriesSheet, report.TrendSheet}, f.GetSheetList())

	v, err := f.GetCellValue(report.SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", v)
	v, err = f.GetCellValue(report.SummarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "TRY", v)

	v, err = f.GetCellValue(report.CategoriesSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Salary", v)
	v, err = f.GetCellValue(report.CategoriesSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Expense", v)

	v, err = f.GetCellValue(report.TrendSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01", v)

	assert.Equal(t, "report_2024-01-01_2024-01-31.xlsx", report.Filename(r))
}
