package models

import "github.com/shopspring/decimal"

// Account is a row of the accounts table. Money columns are split into amount/currency pairs.
type Account struct {
	AccountID              string              `db:"account_id"`
	UserID                 string              `db:"user_id"`
	Name                   string              `db:"name"`
	AccountType            string              `db:"account_type"`
	BalanceAmount          decimal.Decimal     `db:"balance_amount"`
	BalanceCurrency        string              `db:"balance_currency"`
	InitialBalanceAmount   decimal.Decimal     `db:"initial_balance_amount"`
	InitialBalanceCurrency string              `db:"initial_balance_currency"`
	BankName               *string             `db:"bank_name"`
	IBAN                   *string             `db:"iban"`
	CardLastFourDigits     *string             `db:"card_last_four_digits"`
	CreditLimit            decimal.NullDecimal `db:"credit_limit"`
	BillingCycleDay        *int32              `db:"billing_cycle_day"`
	IsActive               bool                `db:"is_active"`
	IncludeInTotalBalance  bool                `db:"include_in_total_balance"`
	AuditFields
}
