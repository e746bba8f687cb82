package derive

import (
	"github.com/shopspring/decimal"

	"opus/dashboard/internal/models"
)

// Overview carries the headline metrics for the overview view.
type Overview struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetCashFlow  decimal.Decimal
	SavingsRate  float64 // Percent of income kept; 0 when there is no income
	ActiveGoals  int
	HighPriority int
}

// Summarize computes the overview metrics from the full transaction list and
// the goal list.
func Summarize(transactions []models.Transaction, goals []models.Goal) Overview {
	o := Overview{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, tx := range transactions {
		if tx.Kind == models.KindIncome {
			o.TotalIncome = o.TotalIncome.Add(tx.Amount)
		} else {
			o.TotalExpense = o.TotalExpense.Add(tx.Amount)
		}
	}
	o.NetCashFlow = o.TotalIncome.Sub(o.TotalExpense)

	if o.TotalIncome.IsPositive() {
		rate, _ := o.NetCashFlow.Div(o.TotalIncome).Mul(oneHundred).Float64()
		o.SavingsRate = rate
	}

	o.ActiveGoals = len(goals)
	for _, g := range goals {
		if g.Priority == models.PriorityHigh {
			o.HighPriority++
		}
	}
	return o
}

// CashFlowSlice is one bar of the cash-flow breakdown chart.
type CashFlowSlice struct {
	Name   string
	Amount decimal.Decimal
	Kind   string // income, expense or save
}

// CashFlowBreakdown splits the period's cash flow into income, fixed
// expenses (recurring transactions), variable expenses (the rest) and
// savings. Savings is floored at zero.
func CashFlowBreakdown(transactions []models.Transaction) []CashFlowSlice {
	income := decimal.Zero
	fixed := decimal.Zero
	variable := decimal.Zero

	for _, tx := range transactions {
		switch {
		case tx.Kind == models.KindIncome:
			income = income.Add(tx.Amount)
		case tx.Recurring:
			fixed = fixed.Add(tx.Amount)
		default:
			variable = variable.Add(tx.Amount)
		}
	}

	savings := income.Sub(fixed).Sub(variable)
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	return []CashFlowSlice{
		{Name: "Income", Amount: income, Kind: "income"},
		{Name: "Fixed", Amount: fixed, Kind: "expense"},
		{Name: "Variable", Amount: variable, Kind: "expense"},
		{Name: "Savings", Amount: savings, Kind: "save"},
	}
}
