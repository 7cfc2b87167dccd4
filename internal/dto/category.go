package dto

import "github.com/SscSPs/cuzdan_backend/internal/core/domain"

type CreateCategoryRequest struct {
	Name             string                 `json:"name" binding:"required,max=100"`
	TransactionType  domain.TransactionType `json:"transactionType" binding:"required,oneof=Income Expense"`
	CategoryType     domain.CategoryType    `json:"categoryType" binding:"omitempty,max=32"`
	Icon             string                 `json:"icon" binding:"omitempty,max=32"`
	Color            string                 `json:"color" binding:"omitempty,hexcolor"`
	ParentCategoryID *string                `json:"parentCategoryID" binding:"omitempty,uuid"`
}

type UpdateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Icon  string `json:"icon" binding:"omitempty,max=32"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

type ListCategoriesParams struct {
	TransactionType string `form:"type" binding:"omitempty,oneof=Income Expense"`
	IncludeInactive bool   `form:"includeInactive"`
}
