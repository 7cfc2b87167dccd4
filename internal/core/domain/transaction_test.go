package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransfer_SameAccountFails(t *testing.T) {
	tx, err := domain.NewTransfer("user-1", "acc-1", "acc-1", try("10"), time.Now(), "")
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, domain.ErrTransferToSelf)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestNewTransfer(t *testing.T) {
	tx, err := domain.NewTransfer("user-1", "acc-1", "acc-2", try("10"), time.Now(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.Transfer, tx.Type)
	assert.Empty(t, tx.CategoryID)
	require.NotNil(t, tx.ToAccountID)
	assert.Equal(t, "acc-2", *tx.ToAccountID)
	assert.Equal(t, "Transfer", tx.Description)
}

func TestTransaction_AddTagsIsIdempotent(t *testing.T) {
	tx := domain.NewExpense("user-1", "acc-1", "cat-1", try("10"), time.Now(), "coffee", "")

	tx.AddTags("food", "morning")
	tx.AddTags("food", " morning ", "work,food")
	assert.Equal(t, []string{"food", "morning", "work"}, tx.Tags)
	assert.Equal(t, "food,morning,work", tx.TagString())
	assert.Equal(t, tx.Tags, domain.ParseTags(tx.TagString()))
	assert.Nil(t, domain.ParseTags(""))
}

func TestTransaction_Update(t *testing.T) {
	tx := domain.NewIncome("user-1", "acc-1", "cat-1", try("10"), time.Now(), "", "")
	date := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tx.Update("cat-2", try("25"), date, "salary", "may")
	assert.Equal(t, "cat-2", tx.CategoryID)
	assert.True(t, tx.Amount.Equal(try("25")))
	assert.Equal(t, date, tx.TransactionDate)
	assert.Equal(t, domain.Income, tx.Type)
	assert.Equal(t, "acc-1", tx.AccountID)
}

func TestTransaction_ApplyAndRevert(t *testing.T) {
	acc, err := domain.NewAccount("user-1", "Checking", domain.BankAccount, try("100"), domain.AccountOptions{})
	require.NoError(t, err)

	expense := domain.NewExpense("user-1", acc.AccountID, "cat-1", try("40"), time.Now(), "", "")
	require.NoError(t, expense.ApplyTo(acc))
	assert.True(t, acc.Balance.Equal(try("60")))
	require.NoError(t, expense.RevertFrom(acc))
	assert.True(t, acc.Balance.Equal(try("100")))

	income := domain.NewIncome("user-1", acc.AccountID, "cat-2", try("5"), time.Now(), "", "")
	require.NoError(t, income.ApplyTo(acc))
	assert.True(t, acc.Balance.Equal(try("105")))

	transfer, err := domain.NewTransfer("user-1", acc.AccountID, "acc-2", try("5"), time.Now(), "")
	require.NoError(t, err)
	assert.ErrorIs(t, transfer.ApplyTo(acc), domain.ErrTransferNotSupported)
}

func TestTransaction_MetadataHelpers(t *testing.T) {
	tx := domain.NewExpense("user-1", "acc-1", "cat-1", try("10"), time.Now(), "", "")
	tx.AttachReceipt("https://receipts.example/1.png")
	tx.MarkAsAutoCategorized()
	tx.LinkToRecurring("rec-1")

	assert.Equal(t, "https://receipts.example/1.png", tx.ReceiptURL)
	assert.True(t, tx.IsAutoCategorized)
	assert.True(t, tx.IsRecurring)
	require.NotNil(t, tx.RecurringTransactionID)
	assert.Equal(t, "rec-1", *tx.RecurringTransactionID)

	tx.Delete()
	assert.True(t, tx.IsDeleted)
}
