package derive

import (
	"github.com/shopspring/decimal"

	"opus/dashboard/internal/models"
)

// BudgetStatus classifies a budget line's utilization.
type BudgetStatus string

const (
	// BudgetOnTrack means utilization is at or below 80 percent.
	BudgetOnTrack BudgetStatus = "on track"
	// BudgetWarning means utilization is above 80 and at most 100 percent.
	BudgetWarning BudgetStatus = "warning"
	// BudgetOver means utilization exceeds 100 percent.
	BudgetOver BudgetStatus = "over budget"
)

var (
	warningThreshold = decimal.NewFromInt(80)
	overThreshold    = decimal.NewFromInt(100)
)

// Utilization is one budget line with its derived percent and status.
type Utilization struct {
	Category string
	Budgeted decimal.Decimal
	Actual   decimal.Decimal
	Percent  decimal.Decimal
	Status   BudgetStatus
}

// Remaining returns the absolute difference between budgeted and actual.
func (u Utilization) Remaining() decimal.Decimal {
	return u.Budgeted.Sub(u.Actual).Abs()
}

// BudgetUtilization computes utilization percent and status for every budget
// line, in input order. Percent is 0 when nothing is budgeted. The status
// cut points are exact: 80 is on track, 100 is warning, anything above 100
// is over budget.
func BudgetUtilization(lines []models.BudgetLine) []Utilization {
	out := make([]Utilization, 0, len(lines))
	for _, line := range lines {
		u := Utilization{
			Category: line.Category,
			Budgeted: line.Budgeted,
			Actual:   line.Actual,
			Percent:  decimal.Zero,
		}
		if line.Budgeted.IsPositive() {
			u.Percent = line.Actual.Div(line.Budgeted).Mul(oneHundred)
		}
		switch {
		case u.Percent.GreaterThan(overThreshold):
			u.Status = BudgetOver
		case u.Percent.GreaterThan(warningThreshold):
			u.Status = BudgetWarning
		default:
			u.Status = BudgetOnTrack
		}
		out = append(out, u)
	}
	return out
}
