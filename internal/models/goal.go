package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a row of the goals table.
type Goal struct {
	GoalID        string          `db:"goal_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	Description   *string         `db:"description"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Currency      string          `db:"currency"`
	TargetDate    time.Time       `db:"target_date"`
	Status        string          `db:"status"`
	ImageURL      *string         `db:"image_url"`
	Icon          *string         `db:"icon"`
	IsShared      bool            `db:"is_shared"`
	FamilyID      *string         `db:"family_id"`
	AuditFields
}
