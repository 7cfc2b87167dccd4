package domain_test

import (
	"testing"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_DepositWithdraw_BankAccount(t *testing.T) {
	acc, err := domain.NewAccount("user-1", "Checking", domain.BankAccount, try("1000"), domain.AccountOptions{})
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(acc.InitialBalance))
	assert.Nil(t, acc.UpdatedAt)

	require.NoError(t, acc.Deposit(try("500")))
	assert.True(t, acc.Balance.Equal(try("1500")))
	assert.NotNil(t, acc.UpdatedAt)

	err = acc.Withdraw(try("2000"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.True(t, acc.Balance.Equal(try("1500")))
	assert.True(t, acc.InitialBalance.Equal(try("1000")))
}

func TestAccount_Withdraw_CreditCardLimit(t *testing.T) {
	limit := decimal.NewFromInt(1000)
	card, err := domain.NewAccount("user-1", "Card", domain.CreditCard, try("-200"), domain.AccountOptions{CreditLimit: &limit})
	require.NoError(t, err)

	require.NoError(t, card.Withdraw(try("700")))
	assert.True(t, card.Balance.Equal(try("-900")))

	err = card.Withdraw(try("200"))
	assert.ErrorIs(t, err, domain.ErrCreditLimitExceeded)
	assert.True(t, card.Balance.Equal(try("-900")))

	require.NotNil(t, card.AvailableCredit())
	assert.True(t, card.AvailableCredit().Equal(decimal.NewFromInt(100)))
}

func TestAccount_Withdraw_CreditCardWithoutLimit(t *testing.T) {
	card, err := domain.NewAccount("user-1", "Card", domain.CreditCard, try("0"), domain.AccountOptions{})
	require.NoError(t, err)

	require.NoError(t, card.Withdraw(try("50000")))
	assert.True(t, card.Balance.Equal(try("-50000")))
	assert.Nil(t, card.AvailableCredit())
}

func TestAccount_Withdraw_ExactBalanceAllowed(t *testing.T) {
	acc, err := domain.NewAccount("user-1", "Wallet", domain.Wallet, try("100"), domain.AccountOptions{})
	require.NoError(t, err)

	require.NoError(t, acc.Withdraw(try("100")))
	assert.True(t, acc.Balance.IsZero())
}

func TestAccount_CurrencyMismatch(t *testing.T) {
	acc, err := domain.NewAccount("user-1", "Cash", domain.Cash, try("100"), domain.AccountOptions{})
	require.NoError(t, err)
	usd := domain.NewMoney(decimal.NewFromInt(10), domain.USD)

	assert.ErrorIs(t, acc.Deposit(usd), domain.ErrCurrencyMismatch)
	assert.ErrorIs(t, acc.Withdraw(usd), domain.ErrCurrencyMismatch)
	assert.True(t, acc.Balance.Equal(try("100")))
}

func TestAccount_RejectsNonPositiveAmounts(t *testing.T) {
	acc, err := domain.NewAccount("user-1", "Cash", domain.Cash, try("100"), domain.AccountOptions{})
	require.NoError(t, err)

	assert.ErrorIs(t, acc.Deposit(try("0")), domain.ErrNonPositiveAmount)
	assert.ErrorIs(t, acc.Withdraw(try("-5")), domain.ErrNonPositiveAmount)
}

func TestAccount_SetCreditLimit(t *testing.T) {
	acc, err := domain.NewAccount("user-1", "Checking", domain.BankAccount, try("0"), domain.AccountOptions{})
	require.NoError(t, err)
	assert.ErrorIs(t, acc.SetCreditLimit(decimal.NewFromInt(500)), domain.ErrNotCreditCard)

	limit := decimal.NewFromInt(500)
	_, err = domain.NewAccount("user-1", "Checking", domain.BankAccount, try("0"), domain.AccountOptions{CreditLimit: &limit})
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestAccount_DetailsAndLifecycle(t *testing.T) {
	acc, err := domain.NewAccount("user-1", "Old", domain.Investment, try("0"), domain.AccountOptions{ExcludeFromTotal: true})
	require.NoError(t, err)
	assert.False(t, acc.CountsTowardsTotal())

	acc.UpdateDetails("New", true, true)
	assert.Equal(t, "New", acc.Name)
	assert.True(t, acc.CountsTowardsTotal())

	acc.Deactivate()
	assert.False(t, acc.CountsTowardsTotal())
	acc.Activate()
	assert.True(t, acc.IsActive)

	acc.Delete()
	assert.True(t, acc.IsDeleted)
	assert.NotNil(t, acc.DeletedAt)
	assert.False(t, acc.CountsTowardsTotal())
}
