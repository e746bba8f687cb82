package derive

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opus/dashboard/internal/models"
)

func budgetLine(category string, budgeted, actual string) models.BudgetLine {
	return models.BudgetLine{
		Category: category,
		Budgeted: decimal.RequireFromString(budgeted),
		Actual:   decimal.RequireFromString(actual),
	}
}

func TestBudgetUtilization_StatusBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		budgeted   string
		actual     string
		wantPct    string
		wantStatus BudgetStatus
	}{
		{"well under", "100", "50", "50", BudgetOnTrack},
		{"exactly 80 is on track", "100", "80", "80", BudgetOnTrack},
		{"just over 80 is warning", "100", "80.01", "80.01", BudgetWarning},
		{"exactly 100 is warning not over", "100", "100", "100", BudgetWarning},
		{"just over 100 is over budget", "100", "100.01", "100.01", BudgetOver},
		{"far over", "100", "250", "250", BudgetOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := BudgetUtilization([]models.BudgetLine{budgetLine("Food", tt.budgeted, tt.actual)})
			require.Len(t, out, 1)
			assert.True(t, out[0].Percent.Equal(decimal.RequireFromString(tt.wantPct)),
				"percent: got %s want %s", out[0].Percent, tt.wantPct)
			assert.Equal(t, tt.wantStatus, out[0].Status)
		})
	}
}

func TestBudgetUtilization_ZeroBudget(t *testing.T) {
	out := BudgetUtilization([]models.BudgetLine{budgetLine("Travel", "0", "500")})

	require.Len(t, out, 1)
	assert.True(t, out[0].Percent.IsZero(), "zero budget must yield zero percent, not a division by zero")
	assert.Equal(t, BudgetOnTrack, out[0].Status)
}

func TestBudgetUtilization_KeepsInputOrder(t *testing.T) {
	lines := []models.BudgetLine{
		budgetLine("Housing", "45000", "45000"),
		budgetLine("Shopping", "10000", "14500"),
		budgetLine("Travel", "20000", "0"),
	}

	out := BudgetUtilization(lines)

	require.Len(t, out, 3)
	assert.Equal(t, "Housing", out[0].Category)
	assert.Equal(t, BudgetWarning, out[0].Status)
	assert.Equal(t, "Shopping", out[1].Category)
	assert.Equal(t, BudgetOver, out[1].Status)
	assert.Equal(t, "Travel", out[2].Category)
	assert.Equal(t, BudgetOnTrack, out[2].Status)
}

func TestUtilizationRemaining(t *testing.T) {
	u := BudgetUtilization([]models.BudgetLine{budgetLine("Shopping", "10000", "14500")})[0]
	assert.Equal(t, "4500", u.Remaining().String())
}
