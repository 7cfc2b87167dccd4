package dto

import (
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest records an income or an expense. Transfers use CreateTransferRequest.
type CreateTransactionRequest struct {
	AccountID       string                 `json:"accountID" binding:"required"`
	CategoryID      string                 `json:"categoryID" binding:"required"`
	Type            domain.TransactionType `json:"type" binding:"required"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionDate time.Time              `json:"transactionDate" binding:"required"`
	Description     string                 `json:"description" binding:"omitempty,max=500"`
	Notes           string                 `json:"notes" binding:"omitempty,max=2000"`
	Tags            []string               `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	ReceiptURL      string                 `json:"receiptURL" binding:"omitempty,url"`
}

type CreateTransferRequest struct {
	FromAccountID   string          `json:"fromAccountID" binding:"required"`
	ToAccountID     string          `json:"toAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
	Description     string          `json:"description" binding:"omitempty,max=500"`
}

// UpdateTransactionRequest replaces amount, date, texts and category. CategoryID is ignored for transfers.
type UpdateTransactionRequest struct {
	CategoryID      string          `json:"categoryID"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
	Description     string          `json:"description" binding:"omitempty,max=500"`
	Notes           string          `json:"notes" binding:"omitempty,max=2000"`
	Tags            []string        `json:"tags" binding:"omitempty,max=20,dive,max=50"`
}

type ListTransactionsParams struct {
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
	AccountID  string     `form:"accountID"`
	CategoryID string     `form:"categoryID"`
	Type       string     `form:"type" binding:"omitempty,oneof=Income Expense Transfer"`
	Limit      int        `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken  string     `form:"nextToken"`
}

type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    string               `json:"nextToken,omitempty"`
}
