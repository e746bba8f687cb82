package derive

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opus/dashboard/internal/models"
)

var projectionToday = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func goal(target, current, monthly int64, targetDate time.Time, priority models.GoalPriority) models.Goal {
	return models.Goal{
		ID:                  "g-0",
		Name:                "Goal",
		TargetAmount:        decimal.NewFromInt(target),
		CurrentAmount:       decimal.NewFromInt(current),
		MonthlyContribution: decimal.NewFromInt(monthly),
		TargetDate:          targetDate,
		Priority:            priority,
	}
}

func TestProjectGoal_ExactlyOnTrack(t *testing.T) {
	// 360 days out is exactly 12 thirty-day months; the projection lands
	// exactly on the target, which counts as on track.
	g := goal(120000, 0, 10000, projectionToday.AddDate(0, 0, 360), models.PriorityHigh)

	p := ProjectGoal(g, projectionToday)

	assert.InDelta(t, 12.0, p.MonthsRemaining, 1e-9)
	assert.True(t, p.ProjectedAmount.Equal(decimal.NewFromInt(120000)),
		"projected: got %s", p.ProjectedAmount)
	assert.True(t, p.OnTrack)
	assert.Equal(t, GoalOnTrack, p.Status, "high priority must not downgrade an on-track goal")
}

func TestProjectGoal_BehindStatusByPriority(t *testing.T) {
	tests := []struct {
		name     string
		priority models.GoalPriority
		want     GoalStatus
	}{
		{"high priority off track", models.PriorityHigh, GoalOffTrack},
		{"medium priority at risk", models.PriorityMedium, GoalAtRisk},
		{"low priority at risk", models.PriorityLow, GoalAtRisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goal(1000000, 0, 100, projectionToday.AddDate(0, 0, 30), tt.priority)
			p := ProjectGoal(g, projectionToday)
			assert.False(t, p.OnTrack)
			assert.Equal(t, tt.want, p.Status)
		})
	}
}

func TestProjectGoal_PastTargetDate(t *testing.T) {
	g := goal(100000, 50000, 10000, projectionToday.AddDate(0, 0, -90), models.PriorityMedium)

	p := ProjectGoal(g, projectionToday)

	assert.Zero(t, p.MonthsRemaining, "months remaining is floored at zero")
	assert.True(t, p.ProjectedAmount.Equal(decimal.NewFromInt(50000)))
	assert.False(t, p.OnTrack)
	assert.Equal(t, GoalAtRisk, p.Status)
}

func TestProjectGoal_Progress(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		g := goal(8000000, 4500000, 50000, projectionToday.AddDate(1, 0, 0), models.PriorityHigh)
		p := ProjectGoal(g, projectionToday)
		assert.InDelta(t, 56.25, p.Progress, 1e-9)
	})

	t.Run("capped at one hundred", func(t *testing.T) {
		g := goal(1000, 2500, 0, projectionToday.AddDate(1, 0, 0), models.PriorityLow)
		p := ProjectGoal(g, projectionToday)
		assert.Equal(t, 100.0, p.Progress)
	})

	t.Run("zero target yields zero", func(t *testing.T) {
		g := goal(0, 500, 0, projectionToday.AddDate(1, 0, 0), models.PriorityLow)
		p := ProjectGoal(g, projectionToday)
		assert.Zero(t, p.Progress)
	})
}

func TestProjectGoals_KeepsOrder(t *testing.T) {
	goals := []models.Goal{
		goal(100, 100, 0, projectionToday.AddDate(0, 1, 0), models.PriorityHigh),
		goal(100, 0, 0, projectionToday.AddDate(0, 1, 0), models.PriorityLow),
	}
	goals[0].ID = "g-0"
	goals[1].ID = "g-1"

	out := ProjectGoals(goals, projectionToday)

	require.Len(t, out, 2)
	assert.Equal(t, "g-0", out[0].GoalID)
	assert.Equal(t, GoalOnTrack, out[0].Status)
	assert.Equal(t, "g-1", out[1].GoalID)
	assert.Equal(t, GoalAtRisk, out[1].Status)
}
