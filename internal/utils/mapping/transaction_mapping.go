package mapping

import (
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Tags are flattened into their comma-joined storage form.
func ToModelTransaction(d *domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:          d.TransactionID,
		UserID:                 d.UserID,
		AccountID:              d.AccountID,
		CategoryID:             nullable(d.CategoryID),
		TransactionType:        string(d.Type),
		Amount:                 d.Amount.Amount,
		Currency:               string(d.Amount.Currency),
		TransactionDate:        d.TransactionDate,
		Description:            nullable(d.Description),
		Notes:                  nullable(d.Notes),
		ToAccountID:            d.ToAccountID,
		Tags:                   nullable(d.TagString()),
		ReceiptURL:             nullable(d.ReceiptURL),
		IsAutoCategorized:      d.IsAutoCategorized,
		IsRecurring:            d.IsRecurring,
		RecurringTransactionID: d.RecurringTransactionID,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:          m.TransactionID,
		UserID:                 m.UserID,
		AccountID:              m.AccountID,
		CategoryID:             deref(m.CategoryID),
		Type:                   domain.TransactionType(m.TransactionType),
		Amount:                 domain.NewMoney(m.Amount, domain.Currency(m.Currency)),
		TransactionDate:        m.TransactionDate.UTC(),
		Description:            deref(m.Description),
		Notes:                  deref(m.Notes),
		ToAccountID:            m.ToAccountID,
		Tags:                   domain.ParseTags(deref(m.Tags)),
		ReceiptURL:             deref(m.ReceiptURL),
		IsAutoCategorized:      m.IsAutoCategorized,
		IsRecurring:            m.IsRecurring,
		RecurringTransactionID: m.RecurringTransactionID,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
