package models

// Category is a row of the categories table.
type Category struct {
	CategoryID       string  `db:"category_id"`
	UserID           string  `db:"user_id"`
	Name             string  `db:"name"`
	TransactionType  string  `db:"transaction_type"`
	CategoryType     string  `db:"category_type"`
	Icon             *string `db:"icon"`
	Color            *string `db:"color"`
	IsDefault        bool    `db:"is_default"`
	IsActive         bool    `db:"is_active"`
	ParentCategoryID *string `db:"parent_category_id"`
	AuditFields
}
