package dto

import (
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateBudgetRequest struct {
	CategoryID               string           `json:"categoryID" binding:"required"`
	Name                     string           `json:"name" binding:"required,max=100"`
	Amount                   decimal.Decimal  `json:"amount"`
	Currency                 string           `json:"currency" binding:"required,currency"`
	PeriodStart              time.Time        `json:"periodStart" binding:"required"`
	PeriodEnd                time.Time        `json:"periodEnd" binding:"required"`
	AlertThresholdPercentage *decimal.Decimal `json:"alertThresholdPercentage"`
	AlertWhenExceeded        *bool            `json:"alertWhenExceeded"`
}

type UpdateBudgetRequest struct {
	Name                     string           `json:"name" binding:"required,max=100"`
	Amount                   decimal.Decimal  `json:"amount"`
	PeriodStart              time.Time        `json:"periodStart" binding:"required"`
	PeriodEnd                time.Time        `json:"periodEnd" binding:"required"`
	AlertThresholdPercentage *decimal.Decimal `json:"alertThresholdPercentage"`
	AlertWhenExceeded        *bool            `json:"alertWhenExceeded"`
	IsActive                 *bool            `json:"isActive"`
}

type ListBudgetsParams struct {
	ActiveOnly bool `form:"activeOnly"`
}

type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Description  string          `json:"description" binding:"omitempty,max=500"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Currency     string          `json:"currency" binding:"required,currency"`
	TargetDate   time.Time       `json:"targetDate" binding:"required"`
	ImageURL     string          `json:"imageURL" binding:"omitempty,url"`
	Icon         string          `json:"icon" binding:"omitempty,max=32"`
}

type UpdateGoalRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Description  string          `json:"description" binding:"omitempty,max=500"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	TargetDate   time.Time       `json:"targetDate" binding:"required"`
	ImageURL     string          `json:"imageURL" binding:"omitempty,url"`
}

// ContributionRequest adds to a goal. With FromAccountID set the amount is withdrawn from that account.
type ContributionRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	FromAccountID string          `json:"fromAccountID"`
}

type ListGoalsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=Active Completed Cancelled Paused"`
}

// GoalResponse adds progress figures to the goal.
type GoalResponse struct {
	domain.Goal
	ProgressPercentage decimal.Decimal `json:"progressPercentage"`
	RemainingAmount    domain.Money    `json:"remainingAmount"`
	DaysRemaining      int             `json:"daysRemaining"`
}

func ToGoalResponse(g *domain.Goal, now time.Time) GoalResponse {
	return GoalResponse{
		Goal:               *g,
		ProgressPercentage: g.ProgressPercentage(),
		RemainingAmount:    g.RemainingAmount(),
		DaysRemaining:      g.DaysRemaining(now),
	}
}

func ToListGoalResponse(goals []domain.Goal, now time.Time) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i], now)
	}
	return res
}
