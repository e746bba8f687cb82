// Package derive computes every display value from a snapshot. All functions
// are pure: they never mutate their inputs and hold no state, so they can be
// recomputed freely whenever the snapshot or the active filters change.
package derive

import (
	"github.com/shopspring/decimal"

	"opus/dashboard/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// TotalMarketValue sums shares times current price over all holdings.
func TotalMarketValue(holdings []models.Holding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.MarketValue())
	}
	return total
}

// ApplyAllocations returns a copy of the holdings with each Allocation set to
// its percentage share of the total market value. When the total is zero,
// every allocation is zero. This is the single authoritative computation of
// allocation; it is never read from input data.
func ApplyAllocations(holdings []models.Holding) []models.Holding {
	out := make([]models.Holding, len(holdings))
	copy(out, holdings)

	total := TotalMarketValue(holdings)
	if total.IsZero() {
		for i := range out {
			out[i].Allocation = 0
		}
		return out
	}

	for i := range out {
		share, _ := out[i].MarketValue().Div(total).Mul(oneHundred).Float64()
		out[i].Allocation = share
	}
	return out
}

// HoldingPerformance is the gain/loss of one position.
type HoldingPerformance struct {
	Ticker      string
	Name        string
	MarketValue decimal.Decimal
	Gain        decimal.Decimal
	GainPercent float64
	Allocation  float64
}

// Performance computes gain and gain percent for one holding. A zero cost
// basis yields a 0% gain, never a division by zero.
func Performance(h models.Holding) HoldingPerformance {
	perf := HoldingPerformance{
		Ticker:      h.Ticker,
		Name:        h.Name,
		MarketValue: h.MarketValue(),
		Gain:        h.CurrentPrice.Sub(h.CostBasis).Mul(h.Shares),
		Allocation:  h.Allocation,
	}
	if h.CostBasis.IsPositive() {
		pct, _ := h.CurrentPrice.Sub(h.CostBasis).Div(h.CostBasis).Mul(oneHundred).Float64()
		perf.GainPercent = pct
	}
	return perf
}

// PortfolioPerformance computes the per-holding performance table in holding
// order.
func PortfolioPerformance(holdings []models.Holding) []HoldingPerformance {
	out := make([]HoldingPerformance, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, Performance(h))
	}
	return out
}
