package domain

import (
	"github.com/shopspring/decimal"
)

// CurrencyTotal is an amount summed over rows of one currency.
type CurrencyTotal struct {
	Currency Currency        `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryTotal is a per-category aggregate over a window.
type CategoryTotal struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Icon         string          `json:"icon,omitempty"`
	Color        string          `json:"color,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// MonthlyTotal is one month of the income/expense trend, keyed "YYYY-MM".
type MonthlyTotal struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// ReportSummary totals a window.
type ReportSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetIncome    decimal.Decimal `json:"netIncome"`
	Currency     Currency        `json:"currency"`
	Transactions int             `json:"transactions"`
}

// Report is the full analytics view for a window.
type Report struct {
	Range             DateRange       `json:"range"`
	Summary           ReportSummary   `json:"summary"`
	IncomeByCategory  []CategoryTotal `json:"incomeByCategory"`
	ExpenseByCategory []CategoryTotal `json:"expenseByCategory"`
	MonthlyTrend      []MonthlyTotal  `json:"monthlyTrend"`
}

// Dashboard is the home-screen aggregate for one user.
type Dashboard struct {
	TotalBalance            []CurrencyTotal `json:"totalBalance"`
	MonthlyIncome           decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpense          decimal.Decimal `json:"monthlyExpense"`
	LastMonthIncome         decimal.Decimal `json:"lastMonthIncome"`
	LastMonthExpense        decimal.Decimal `json:"lastMonthExpense"`
	IncomeChangePercent     decimal.Decimal `json:"incomeChangePercent"`
	ExpenseChangePercent    decimal.Decimal `json:"expenseChangePercent"`
	TotalAccounts           int             `json:"totalAccounts"`
	ActiveAccounts          int             `json:"activeAccounts"`
	ActiveGoals             int             `json:"activeGoals"`
	CompletedGoalsThisMonth int             `json:"completedGoalsThisMonth"`
	BudgetAlerts            []BudgetUsage   `json:"budgetAlerts"`
	RecentTransactions      []Transaction   `json:"recentTransactions"`
}

// ChangePercent returns (current-last)/last*100 rounded to 2 places, or 0 when last <= 0.
func ChangePercent(current, last decimal.Decimal) decimal.Decimal {
	if !last.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(last).Div(last).Mul(hundred).Round(2)
}

// Share returns part/total*100 rounded to 2 places, or 0 when total <= 0.
func Share(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(2)
}
