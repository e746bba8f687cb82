package derive

import (
	"time"

	"github.com/shopspring/decimal"

	"opus/dashboard/internal/models"
)

// GoalStatus classifies a goal's trajectory.
type GoalStatus string

const (
	// GoalOnTrack means the projected amount meets the target.
	GoalOnTrack GoalStatus = "on track"
	// GoalAtRisk means a medium or low priority goal is behind.
	GoalAtRisk GoalStatus = "at risk"
	// GoalOffTrack means a high priority goal is behind.
	GoalOffTrack GoalStatus = "off track"
)

// hoursPerMonth uses the fixed 30-day month approximation. The projection is
// deliberately not calendar-accurate.
const hoursPerMonth = 24 * 30

// GoalProjection is the linear on-track projection for one goal.
type GoalProjection struct {
	GoalID          string
	MonthsRemaining float64
	ProjectedAmount decimal.Decimal
	OnTrack         bool
	Status          GoalStatus
	Progress        float64
}

// ProjectGoal computes the linear projection for a goal as of today.
// monthsRemaining counts 30-day months until the target date, floored at
// zero. The projected amount assumes the monthly contribution continues
// unchanged. Progress is capped at 100.
func ProjectGoal(goal models.Goal, today time.Time) GoalProjection {
	months := goal.TargetDate.Sub(today).Hours() / hoursPerMonth
	if months < 0 {
		months = 0
	}

	projected := goal.CurrentAmount.Add(
		goal.MonthlyContribution.Mul(decimal.NewFromFloat(months)))

	p := GoalProjection{
		GoalID:          goal.ID,
		MonthsRemaining: months,
		ProjectedAmount: projected,
		OnTrack:         projected.GreaterThanOrEqual(goal.TargetAmount),
	}

	switch {
	case p.OnTrack:
		p.Status = GoalOnTrack
	case goal.Priority == models.PriorityHigh:
		p.Status = GoalOffTrack
	default:
		p.Status = GoalAtRisk
	}

	if goal.TargetAmount.IsPositive() {
		progress, _ := goal.CurrentAmount.Div(goal.TargetAmount).Mul(oneHundred).Float64()
		if progress > 100 {
			progress = 100
		}
		p.Progress = progress
	}
	return p
}

// ProjectGoals computes projections for all goals in input order.
func ProjectGoals(goals []models.Goal, today time.Time) []GoalProjection {
	out := make([]GoalProjection, 0, len(goals))
	for _, g := range goals {
		out = append(out, ProjectGoal(g, today))
	}
	return out
}
