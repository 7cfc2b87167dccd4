package domain

import "github.com/google/uuid"

// TransactionType is the ledger side of a movement.
type TransactionType string

const (
	Income   TransactionType = "Income"
	Expense  TransactionType = "Expense"
	Transfer TransactionType = "Transfer"
)

// CategoryType is the finer classification below Income/Expense.
type CategoryType string

const (
	CategoryFood           CategoryType = "Food"
	CategoryTransportation CategoryType = "Transportation"
	CategoryShopping       CategoryType = "Shopping"
	CategoryBills          CategoryType = "Bills"
	CategoryHealth         CategoryType = "Health"
	CategoryEducation      CategoryType = "Education"
	CategoryEntertainment  CategoryType = "Entertainment"
	CategoryTravel         CategoryType = "Travel"
	CategoryHousing        CategoryType = "Housing"
	CategoryInsurance      CategoryType = "Insurance"
	CategorySavings        CategoryType = "Savings"
	CategoryOther          CategoryType = "Other"

	CategorySalary     CategoryType = "Salary"
	CategoryBonus      CategoryType = "Bonus"
	CategoryInvestment CategoryType = "Investment"
	CategoryGift       CategoryType = "Gift"
	CategoryRefund     CategoryType = "Refund"
)

// Category classifies transactions and scopes budgets.
type Category struct {
	CategoryID       string          `json:"categoryID"`
	UserID           string          `json:"userID"`
	Name             string          `json:"name"`
	TransactionType  TransactionType `json:"transactionType"`
	Type             CategoryType    `json:"type"`
	Icon             string          `json:"icon,omitempty"`
	Color            string          `json:"color,omitempty"`
	IsDefault        bool            `json:"isDefault"`
	IsActive         bool            `json:"isActive"`
	ParentCategoryID *string         `json:"parentCategoryID,omitempty"`
	AuditFields
}

// NewCategory builds a user-defined or seeded category.
func NewCategory(userID, name string, txType TransactionType, catType CategoryType, icon, color string, isDefault bool, parentCategoryID *string) *Category {
	return &Category{
		CategoryID:       uuid.NewString(),
		UserID:           userID,
		Name:             name,
		TransactionType:  txType,
		Type:             catType,
		Icon:             icon,
		Color:            color,
		IsDefault:        isDefault,
		IsActive:         true,
		ParentCategoryID: parentCategoryID,
		AuditFields:      newAuditFields(),
	}
}

// Update changes presentation fields. Default categories are immutable.
func (c *Category) Update(name, icon, color string) error {
	if c.IsDefault {
		return ErrDefaultCategory
	}
	c.Name = name
	c.Icon = icon
	c.Color = color
	c.MarkAsUpdated()
	return nil
}

func (c *Category) Deactivate() error {
	if c.IsDefault {
		return ErrDefaultCategory
	}
	c.IsActive = false
	c.MarkAsUpdated()
	return nil
}

func (c *Category) Activate() {
	c.IsActive = true
	c.MarkAsUpdated()
}

// Accepts reports whether a transaction of the given type may use this category.
func (c *Category) Accepts(t TransactionType) bool {
	return c.TransactionType == t
}

// CategoryTemplate describes one entry of the starter catalog.
type CategoryTemplate struct {
	Name            string
	TransactionType TransactionType
	Type            CategoryType
	Icon            string
	Color           string
}

var defaultCatalog = []CategoryTemplate{
	{"Food", Expense, CategoryFood, "🍔", "#FF6B6B"},
	{"Transportation", Expense, CategoryTransportation, "🚗", "#4ECDC4"},
	{"Shopping", Expense, CategoryShopping, "🛍️", "#95E1D3"},
	{"Bills", Expense, CategoryBills, "📄", "#F38181"},
	{"Health", Expense, CategoryHealth, "💊", "#AA96DA"},
	{"Education", Expense, CategoryEducation, "📚", "#FCBAD3"},
	{"Entertainment", Expense, CategoryEntertainment, "🎮", "#FEE440"},
	{"Travel", Expense, CategoryTravel, "✈️", "#00BBF9"},
	{"Housing", Expense, CategoryHousing, "🏠", "#F28482"},
	{"Insurance", Expense, CategoryInsurance, "🛡️", "#84A59D"},
	{"Savings", Expense, CategorySavings, "💰", "#06FFA5"},
	{"Other", Expense, CategoryOther, "📦", "#A0A0A0"},
	{"Salary", Income, CategorySalary, "💵", "#06D6A0"},
	{"Bonus", Income, CategoryBonus, "🎁", "#FFD23F"},
	{"Investment", Income, CategoryInvestment, "📈", "#118AB2"},
	{"Gift", Income, CategoryGift, "🎉", "#EF476F"},
	{"Refund", Income, CategoryRefund, "↩️", "#06FFA5"},
}

// DefaultCatalog returns a copy of the starter categories seeded for every new user.
func DefaultCatalog() []CategoryTemplate {
	out := make([]CategoryTemplate, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// NewDefaultCategories instantiates the starter catalog for a user.
func NewDefaultCategories(userID string) []*Category {
	cats := make([]*Category, 0, len(defaultCatalog))
	for _, t := range defaultCatalog {
		cats = append(cats, NewCategory(userID, t.Name, t.TransactionType, t.Type, t.Icon, t.Color, true, nil))
	}
	return cats
}
