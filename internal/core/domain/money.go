package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is an ISO-like currency code. GOLD is tracked in grams.
type Currency string

const (
	TRY  Currency = "TRY"
	USD  Currency = "USD"
	EUR  Currency = "EUR"
	GBP  Currency = "GBP"
	GOLD Currency = "GOLD"
)

// SupportedCurrencies lists every currency an account or goal may be denominated in.
var SupportedCurrencies = []Currency{TRY, USD, EUR, GBP, GOLD}

// ParseCurrency validates a currency code.
func ParseCurrency(code string) (Currency, error) {
	for _, c := range SupportedCurrencies {
		if string(c) == code {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
}

// Money is an immutable amount in a single currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Zero returns a zero amount in the given currency.
func Zero(currency Currency) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Add returns m+o. Cross-currency arithmetic is rejected.
func (m Money) Add(o Money) (Money, error) {
	if m.Currency != o.Currency {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrCurrencyMismatch, m.Currency, o.Currency)
	}
	return Money{Amount: m.Amount.Add(o.Amount), Currency: m.Currency}, nil
}

// Sub returns m-o. Cross-currency arithmetic is rejected.
func (m Money) Sub(o Money) (Money, error) {
	if m.Currency != o.Currency {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrCurrencyMismatch, m.Currency, o.Currency)
	}
	return Money{Amount: m.Amount.Sub(o.Amount), Currency: m.Currency}, nil
}

// ConvertTo multiplies the amount by rate and relabels the currency.
// No flow uses it yet; rates are the caller's problem.
func (m Money) ConvertTo(target Currency, rate decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(rate), Currency: target}
}

// Equal compares amount and currency.
func (m Money) Equal(o Money) bool {
	return m.Currency == o.Currency && m.Amount.Equal(o.Amount)
}

func (m Money) IsZero() bool     { return m.Amount.IsZero() }
func (m Money) IsNegative() bool { return m.Amount.IsNegative() }
func (m Money) IsPositive() bool { return m.Amount.IsPositive() }

func (m Money) Abs() Money { return Money{Amount: m.Amount.Abs(), Currency: m.Currency} }
func (m Money) Neg() Money { return Money{Amount: m.Amount.Neg(), Currency: m.Currency} }

func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + string(m.Currency)
}
