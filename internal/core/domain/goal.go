package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "Active"
	GoalCompleted GoalStatus = "Completed"
	GoalCancelled GoalStatus = "Cancelled"
	GoalPaused    GoalStatus = "Paused"
)

// allowedGoalTransitions lists the explicit status changes. Completion only happens
// through AddContribution; Cancelled and Completed are terminal.
var allowedGoalTransitions = map[GoalStatus][]GoalStatus{
	GoalActive: {GoalPaused, GoalCancelled},
	GoalPaused: {GoalActive, GoalCancelled},
}

// Goal is a savings target that accumulates contributions.
type Goal struct {
	GoalID        string     `json:"goalID"`
	UserID        string     `json:"userID"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	TargetAmount  Money      `json:"targetAmount"`
	CurrentAmount Money      `json:"currentAmount"`
	TargetDate    time.Time  `json:"targetDate"`
	Status        GoalStatus `json:"status"`
	ImageURL      string     `json:"imageURL,omitempty"`
	Icon          string     `json:"icon,omitempty"`
	IsShared      bool       `json:"isShared"`
	FamilyID      *string    `json:"familyID,omitempty"`
	AuditFields
}

// GoalOptions carries the optional fields accepted at creation time.
type GoalOptions struct {
	Description string
	ImageURL    string
	Icon        string
	IsShared    bool
	FamilyID    *string
}

// NewGoal starts at zero in the target's currency.
func NewGoal(userID, name string, target Money, targetDate time.Time, opts GoalOptions) *Goal {
	return &Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          name,
		Description:   opts.Description,
		TargetAmount:  target,
		CurrentAmount: Zero(target.Currency),
		TargetDate:    targetDate.UTC(),
		Status:        GoalActive,
		ImageURL:      opts.ImageURL,
		Icon:          opts.Icon,
		IsShared:      opts.IsShared,
		FamilyID:      opts.FamilyID,
		AuditFields:   newAuditFields(),
	}
}

// AddContribution accumulates amount and completes the goal once the target is reached.
func (g *Goal) AddContribution(amount Money) error {
	if amount.Currency != g.TargetAmount.Currency {
		return fmt.Errorf("%w: goal is %s, contribution is %s", ErrCurrencyMismatch, g.TargetAmount.Currency, amount.Currency)
	}
	if g.Status != GoalActive {
		return ErrGoalNotActive
	}
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	next, err := g.CurrentAmount.Add(amount)
	if err != nil {
		return err
	}
	g.CurrentAmount = next
	if g.CurrentAmount.Amount.GreaterThanOrEqual(g.TargetAmount.Amount) {
		g.Status = GoalCompleted
	}
	g.MarkAsUpdated()
	return nil
}

// Update replaces the descriptive fields and the target. The target keeps its currency
// relationship with CurrentAmount.
func (g *Goal) Update(name, description string, target Money, targetDate time.Time) error {
	if target.Currency != g.CurrentAmount.Currency {
		return fmt.Errorf("%w: goal is %s, new target is %s", ErrCurrencyMismatch, g.CurrentAmount.Currency, target.Currency)
	}
	g.Name = name
	g.Description = description
	g.TargetAmount = target
	g.TargetDate = targetDate.UTC()
	g.MarkAsUpdated()
	return nil
}

func (g *Goal) SetImage(imageURL, icon string) {
	g.ImageURL = imageURL
	g.Icon = icon
	g.MarkAsUpdated()
}

func (g *Goal) Pause() error  { return g.transition(GoalPaused) }
func (g *Goal) Resume() error { return g.transition(GoalActive) }
func (g *Goal) Cancel() error { return g.transition(GoalCancelled) }

func (g *Goal) transition(to GoalStatus) error {
	for _, allowed := range allowedGoalTransitions[g.Status] {
		if allowed == to {
			g.Status = to
			g.MarkAsUpdated()
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrGoalTransition, g.Status, to)
}

func (g *Goal) Delete() {
	g.MarkAsDeleted()
}

// ProgressPercentage is current/target*100 capped at 100, and 0 for a non-positive target.
func (g *Goal) ProgressPercentage() decimal.Decimal {
	if !g.TargetAmount.Amount.IsPositive() {
		return decimal.Zero
	}
	pct := g.CurrentAmount.Amount.Div(g.TargetAmount.Amount).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// RemainingAmount is target-current, clamped at zero.
func (g *Goal) RemainingAmount() Money {
	remaining := g.TargetAmount.Amount.Sub(g.CurrentAmount.Amount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return NewMoney(remaining, g.TargetAmount.Currency)
}

// DaysRemaining counts calendar days from now to the target date. Negative once overdue.
func (g *Goal) DaysRemaining(at time.Time) int {
	return int(truncateDay(g.TargetDate).Sub(truncateDay(at)).Hours() / 24)
}
