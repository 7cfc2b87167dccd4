// Package report renders analytics reports as Excel workbooks.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet    = "Summary"
	CategoriesSheet = "Categories"
	TrendSheet      = "Trend"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

type styles struct {
	header int
	data   int
	total  int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	}); err != nil {
		return s, err
	}
	if s.data, err = f.NewStyle(&excelize.Style{Border: thinBorder}); err != nil {
		return s, err
	}
	s.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: thinBorder,
	})
	return s, err
}

// sheetWriter appends rows to one sheet.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

func (w *sheetWriter) write(style int, values ...any) error {
	w.row++
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(w.sheet, cell, v); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, w.row)
	last, _ := excelize.CoordinatesToCellName(len(values), w.row)
	return w.f.SetCellStyle(w.sheet, first, last, style)
}

// WriteXLSX renders r as a workbook with Summary, Categories and Trend sheets.
func WriteXLSX(w io.Writer, r *domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("create styles: %w", err)
	}
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	for _, name := range []string{CategoriesSheet, TrendSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	currency := r.Summary.Currency
	amount := func(d decimal.Decimal) float64 {
		return utils.RoundToCurrency(d, currency).InexactFloat64()
	}

	summary := &sheetWriter{f: f, sheet: SummarySheet}
	rows := [][]any{
		{"From", r.Range.Start.Format(time.DateOnly)},
		{"To", r.Range.End.Format(time.DateOnly)},
		{"Currency", string(currency)},
		{"Total income", amount(r.Summary.TotalIncome)},
		{"Total expense", amount(r.Summary.TotalExpense)},
		{"Transactions", r.Summary.Transactions},
	}
	if err := summary.write(st.header, "Field", "Value"); err != nil {
		return err
	}
	for _, row := range rows {
		if err := summary.write(st.data, row...); err != nil {
			return err
		}
	}
	if err := summary.write(st.total, "Net income", amount(r.Summary.NetIncome)); err != nil {
		return err
	}
	_ = f.SetColWidth(SummarySheet, "A", "B", 18)

	cats := &sheetWriter{f: f, sheet: CategoriesSheet}
	if err := cats.write(st.header, "Type", "Category", "Total", "Count", "Percentage"); err != nil {
		return err
	}
	for _, group := range []struct {
		kind   domain.TransactionType
		totals []domain.CategoryTotal
	}{
		{domain.Income, r.IncomeByCategory},
		{domain.Expense, r.ExpenseByCategory},
	} {
		for _, ct := range group.totals {
			if err := cats.write(st.data, string(group.kind), ct.CategoryName, amount(ct.Total), ct.Count, ct.Percentage.InexactFloat64()); err != nil {
				return err
			}
		}
	}
	_ = f.SetColWidth(CategoriesSheet, "A", "E", 16)

	trend := &sheetWriter{f: f, sheet: TrendSheet}
	if err := trend.write(st.header, "Month", "Income", "Expense", "Net"); err != nil {
		return err
	}
	for _, m := range r.MonthlyTrend {
		if err := trend.write(st.data, m.Month, amount(m.Income), amount(m.Expense), amount(m.Net)); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(TrendSheet, "A", "D", 14)

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Filename names an export after its date range.
func Filename(r *domain.Report) string {
	return fmt.Sprintf("report_%s_%s.xlsx", r.Range.Start.Format(time.DateOnly), r.Range.End.Format(time.DateOnly))
}
