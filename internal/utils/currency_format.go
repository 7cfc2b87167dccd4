package utils

import (
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// goldPrecision keeps gram amounts to the milligram.
const goldPrecision = 3

// CurrencyPrecision returns the number of decimal places shown for a currency.
func CurrencyPrecision(currency domain.Currency) int32 {
	if currency == domain.GOLD {
		return goldPrecision
	}
	return 2
}

// RoundToCurrency rounds an amount to its currency's precision.
func RoundToCurrency(amount decimal.Decimal, currency domain.Currency) decimal.Decimal {
	return amount.Round(CurrencyPrecision(currency))
}
