package derive

import (
	"github.com/shopspring/decimal"

	"opus/dashboard/internal/models"
)

// CategorySlice is one category's share of total expenses, with its assigned
// chart color.
type CategorySlice struct {
	Name   string
	Amount decimal.Decimal
	Color  string
}

// ExpenseBreakdown sums expense-kind transactions by category. Output order
// is first-seen-category order; each slice gets a deterministic color by
// cycling through the palette indexed by position.
func ExpenseBreakdown(transactions []models.Transaction, palette []string) []CategorySlice {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, tx := range transactions {
		if tx.Kind != models.KindExpense {
			continue
		}
		if _, ok := totals[tx.Category]; !ok {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	slices := make([]CategorySlice, 0, len(order))
	for i, name := range order {
		slice := CategorySlice{Name: name, Amount: totals[name]}
		if len(palette) > 0 {
			slice.Color = palette[i%len(palette)]
		}
		slices = append(slices, slice)
	}
	return slices
}
