package derive

import (
	"github.com/shopspring/decimal"

	"opus/dashboard/internal/models"
)

// monthOrder is the canonical month-of-year ordering used for the trend
// chart. Buckets are keyed on month name only, so multiple years collapse
// into the same bucket; the chart labels depend on this.
var monthOrder = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlyPoint is one month's income/expense aggregate.
type MonthlyPoint struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Net returns income minus expenses for the month.
func (p MonthlyPoint) Net() decimal.Decimal {
	return p.Income.Sub(p.Expenses)
}

// MonthlySeries groups transactions by calendar month name and sums amounts
// per kind. Output follows the canonical January..December order, not
// first-seen order, and months with neither income nor expenses are omitted.
func MonthlySeries(transactions []models.Transaction) []MonthlyPoint {
	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}
	buckets := make(map[string]*bucket)

	for _, tx := range transactions {
		key := tx.Date.Format("Jan")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{income: decimal.Zero, expenses: decimal.Zero}
			buckets[key] = b
		}
		if tx.Kind == models.KindIncome {
			b.income = b.income.Add(tx.Amount)
		} else {
			b.expenses = b.expenses.Add(tx.Amount)
		}
	}

	series := make([]MonthlyPoint, 0, len(buckets))
	for _, month := range monthOrder {
		b, ok := buckets[month]
		if !ok {
			continue
		}
		if b.income.IsZero() && b.expenses.IsZero() {
			continue
		}
		series = append(series, MonthlyPoint{
			Month:    month,
			Income:   b.income,
			Expenses: b.expenses,
		})
	}
	return series
}

// SeriesNet sums net over a monthly series.
func SeriesNet(series []MonthlyPoint) decimal.Decimal {
	total := decimal.Zero
	for _, p := range series {
		total = total.Add(p.Net())
	}
	return total
}
