package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transaction records a single ledger movement. Type and AccountID are fixed after creation.
type Transaction struct {
	TransactionID          string          `json:"transactionID"`
	UserID                 string          `json:"userID"`
	AccountID              string          `json:"accountID"`
	CategoryID             string          `json:"categoryID,omitempty"` // empty for transfers
	Type                   TransactionType `json:"type"`
	Amount                 Money           `json:"amount"`
	TransactionDate        time.Time       `json:"transactionDate"`
	Description            string          `json:"description,omitempty"`
	Notes                  string          `json:"notes,omitempty"`
	ToAccountID            *string         `json:"toAccountID,omitempty"`
	Tags                   []string        `json:"tags,omitempty"`
	ReceiptURL             string          `json:"receiptURL,omitempty"`
	IsAutoCategorized      bool            `json:"isAutoCategorized"`
	IsRecurring            bool            `json:"isRecurring"`
	RecurringTransactionID *string         `json:"recurringTransactionID,omitempty"`
	AuditFields
}

func newTransaction(userID, accountID, categoryID string, txType TransactionType, amount Money, date time.Time, description, notes string) *Transaction {
	return &Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		AccountID:       accountID,
		CategoryID:      categoryID,
		Type:            txType,
		Amount:          amount,
		TransactionDate: date.UTC(),
		Description:     description,
		Notes:           notes,
		AuditFields:     newAuditFields(),
	}
}

func NewExpense(userID, accountID, categoryID string, amount Money, date time.Time, description, notes string) *Transaction {
	return newTransaction(userID, accountID, categoryID, Expense, amount, date, description, notes)
}

func NewIncome(userID, accountID, categoryID string, amount Money, date time.Time, description, notes string) *Transaction {
	return newTransaction(userID, accountID, categoryID, Income, amount, date, description, notes)
}

// NewTransfer rejects from == to before anything is built.
func NewTransfer(userID, fromAccountID, toAccountID string, amount Money, date time.Time, description string) (*Transaction, error) {
	if fromAccountID == toAccountID {
		return nil, ErrTransferToSelf
	}
	if description == "" {
		description = "Transfer"
	}
	t := newTransaction(userID, fromAccountID, "", Transfer, amount, date, description, "")
	to := toAccountID
	t.ToAccountID = &to
	return t, nil
}

// Update replaces the mutable fields.
func (t *Transaction) Update(categoryID string, amount Money, date time.Time, description, notes string) {
	t.CategoryID = categoryID
	t.Amount = amount
	t.TransactionDate = date.UTC()
	t.Description = description
	t.Notes = notes
	t.MarkAsUpdated()
}

func (t *Transaction) AttachReceipt(url string) {
	t.ReceiptURL = url
	t.MarkAsUpdated()
}

// AddTags merges tags into the existing set, keeping first-seen order.
// Comma-separated input is split since commas delimit the stored form.
func (t *Transaction) AddTags(tags ...string) {
	seen := make(map[string]struct{}, len(t.Tags)+len(tags))
	merged := make([]string, 0, len(t.Tags)+len(tags))
	for _, raw := range append(append([]string{}, t.Tags...), tags...) {
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			merged = append(merged, tag)
		}
	}
	t.Tags = merged
	t.MarkAsUpdated()
}

// TagString is the storage form of Tags.
func (t *Transaction) TagString() string {
	return strings.Join(t.Tags, ",")
}

// ParseTags splits the storage form back into a list.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (t *Transaction) MarkAsAutoCategorized() {
	t.IsAutoCategorized = true
	t.MarkAsUpdated()
}

func (t *Transaction) LinkToRecurring(recurringID string) {
	id := recurringID
	t.RecurringTransactionID = &id
	t.IsRecurring = true
	t.MarkAsUpdated()
}

func (t *Transaction) Delete() {
	t.MarkAsDeleted()
}

// ApplyTo applies the balance effect of t on account. Transfers are handled by the caller
// since they touch two accounts.
func (t *Transaction) ApplyTo(account *Account) error {
	switch t.Type {
	case Expense:
		return account.Withdraw(t.Amount)
	case Income:
		return account.Deposit(t.Amount)
	default:
		return ErrTransferNotSupported
	}
}

// RevertFrom undoes ApplyTo. Reverting an expense on a non-credit account cannot fail
// on funds; reverting income may, if the money has already been spent.
func (t *Transaction) RevertFrom(account *Account) error {
	switch t.Type {
	case Expense:
		return account.Deposit(t.Amount)
	case Income:
		return account.Withdraw(t.Amount)
	default:
		return ErrTransferNotSupported
	}
}
