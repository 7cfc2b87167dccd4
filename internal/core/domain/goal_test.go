package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoal_ContributionsAndCompletion(t *testing.T) {
	g := domain.NewGoal("user-1", "Car", try("5000"), time.Now().AddDate(1, 0, 0), domain.GoalOptions{})
	assert.True(t, g.CurrentAmount.Equal(try("0")))
	assert.Equal(t, domain.GoalActive, g.Status)

	require.NoError(t, g.AddContribution(try("4999")))
	assert.Equal(t, domain.GoalActive, g.Status)
	assert.True(t, g.RemainingAmount().Equal(try("1")))
	assert.True(t, g.ProgressPercentage().Equal(decimal.RequireFromString("99.98")))

	require.NoError(t, g.AddContribution(try("1")))
	assert.True(t, g.CurrentAmount.Equal(try("5000")))
	assert.Equal(t, domain.GoalCompleted, g.Status)
	assert.True(t, g.RemainingAmount().IsZero())
	assert.True(t, g.ProgressPercentage().Equal(decimal.NewFromInt(100)))

	err := g.AddContribution(try("1"))
	assert.ErrorIs(t, err, domain.ErrGoalNotActive)
	assert.True(t, g.CurrentAmount.Equal(try("5000")))
}

func TestGoal_OvershootClamps(t *testing.T) {
	g := domain.NewGoal("user-1", "Phone", try("100"), time.Now(), domain.GoalOptions{})
	require.NoError(t, g.AddContribution(try("150")))
	assert.True(t, g.ProgressPercentage().Equal(decimal.NewFromInt(100)))
	assert.True(t, g.RemainingAmount().IsZero())
}

func TestGoal_ContributionCurrencyCheckedFirst(t *testing.T) {
	g := domain.NewGoal("user-1", "Trip", try("100"), time.Now(), domain.GoalOptions{})
	require.NoError(t, g.Pause())

	err := g.AddContribution(domain.NewMoney(decimal.NewFromInt(1), domain.EUR))
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
	assert.ErrorIs(t, g.AddContribution(try("1")), domain.ErrGoalNotActive)
}

func TestGoal_ZeroTarget(t *testing.T) {
	g := domain.NewGoal("user-1", "Nothing", try("0"), time.Now(), domain.GoalOptions{})
	assert.True(t, g.ProgressPercentage().IsZero())
}

func TestGoal_DaysRemaining(t *testing.T) {
	target := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	g := domain.NewGoal("user-1", "Holiday", try("100"), target, domain.GoalOptions{})

	assert.Equal(t, 29, g.DaysRemaining(time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, g.DaysRemaining(time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, -2, g.DaysRemaining(time.Date(2024, 7, 2, 1, 0, 0, 0, time.UTC)))
}

func TestGoal_Transitions(t *testing.T) {
	g := domain.NewGoal("user-1", "Fund", try("100"), time.Now(), domain.GoalOptions{})

	require.NoError(t, g.Pause())
	assert.Equal(t, domain.GoalPaused, g.Status)
	require.NoError(t, g.Resume())
	assert.Equal(t, domain.GoalActive, g.Status)
	require.NoError(t, g.Cancel())
	assert.Equal(t, domain.GoalCancelled, g.Status)

	assert.ErrorIs(t, g.Resume(), domain.ErrGoalTransition)
	assert.ErrorIs(t, g.Pause(), domain.ErrGoalTransition)

	done := domain.NewGoal("user-1", "Done", try("1"), time.Now(), domain.GoalOptions{})
	require.NoError(t, done.AddContribution(try("1")))
	assert.ErrorIs(t, done.Pause(), domain.ErrGoalTransition)
	assert.ErrorIs(t, done.Cancel(), domain.ErrGoalTransition)
	assert.Equal(t, domain.GoalCompleted, done.Status)
}

func TestGoal_UpdateKeepsCurrency(t *testing.T) {
	g := domain.NewGoal("user-1", "Fund", try("100"), time.Now(), domain.GoalOptions{})
	err := g.Update("Fund", "", domain.NewMoney(decimal.NewFromInt(100), domain.USD), time.Now())
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)

	require.NoError(t, g.Update("Bigger fund", "desc", try("200"), time.Now()))
	assert.Equal(t, "Bigger fund", g.Name)
	assert.True(t, g.TargetAmount.Equal(try("200")))
}
