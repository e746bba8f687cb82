// Package summary renders the dashboard views as text.
package summary

import (
	"fmt"
	"os"

	"opus/dashboard/cmd/common"
	"opus/dashboard/cmd/root"
	"opus/dashboard/internal/config"
	"opus/dashboard/internal/derive"
	"opus/dashboard/internal/models"
	"opus/dashboard/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Print dashboard summaries for a workbook or the demo dataset",
	Long: `Load a workbook (or the demo dataset) and print the overview metrics,
monthly income/expense series, budget utilization, portfolio performance
and goal projections.`,
	Run: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	sess, err := common.BuildSession()
	if err != nil {
		root.Log.Fatalf("Error loading data: %v", err)
	}

	cfg := config.GetGlobalConfig()
	paletteStore := store.NewPaletteStore(cfg.Palette.File)
	palette, err := paletteStore.LoadPalette()
	if err != nil {
		root.Log.Warnf("Error loading palette, using defaults: %v", err)
		palette = store.DefaultChartPalette
	}

	snap := sess.Snapshot()
	currency := cfg.Display.Currency
	out := os.Stdout

	overview := derive.Summarize(snap.Transactions, snap.Goals)
	fmt.Fprintf(out, "Overview\n")
	fmt.Fprintf(out, "  Total income:   %s %s\n", currency, overview.TotalIncome.StringFixed(2))
	fmt.Fprintf(out, "  Total expenses: %s %s\n", currency, overview.TotalExpense.StringFixed(2))
	fmt.Fprintf(out, "  Net cash flow:  %s %s\n", currency, overview.NetCashFlow.StringFixed(2))
	fmt.Fprintf(out, "  Savings rate:   %.1f%%\n", overview.SavingsRate)
	fmt.Fprintf(out, "  Active goals:   %d (%d high priority)\n\n", overview.ActiveGoals, overview.HighPriority)

	series := derive.MonthlySeries(snap.Transactions)
	fmt.Fprintf(out, "Monthly income/expenses\n")
	for _, p := range series {
		fmt.Fprintf(out, "  %s  income %s  expenses %s  net %s\n",
			p.Month, p.Income.StringFixed(2), p.Expenses.StringFixed(2), p.Net().StringFixed(2))
	}
	fmt.Fprintf(out, "  Total net: %s %s\n\n", currency, derive.SeriesNet(series).StringFixed(2))

	breakdown := derive.ExpenseBreakdown(snap.Transactions, palette)
	fmt.Fprintf(out, "Expenses by category\n")
	for _, slice := range breakdown {
		fmt.Fprintf(out, "  %-16s %s %s  (%s)\n", slice.Name, currency, slice.Amount.StringFixed(2), slice.Color)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Budget utilization\n")
	for _, u := range derive.BudgetUtilization(snap.Budgets) {
		fmt.Fprintf(out, "  %-16s %6s%%  %-11s remaining %s %s\n",
			u.Category, u.Percent.StringFixed(1), u.Status, currency, u.Remaining().StringFixed(2))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Portfolio\n")
	total := derive.TotalMarketValue(snap.Holdings)
	fmt.Fprintf(out, "  Total market value: %s %s\n", currency, total.StringFixed(2))
	for _, perf := range derive.PortfolioPerformance(snap.Holdings) {
		fmt.Fprintf(out, "  %-10s %5.1f%%  gain %s %s (%.1f%%)\n",
			perf.Ticker, perf.Allocation, currency, perf.Gain.StringFixed(2), perf.GainPercent)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Goals\n")
	projections := derive.ProjectGoals(snap.Goals, sess.Now())
	for i, p := range projections {
		fmt.Fprintf(out, "  %-20s %5.1f%%  %s\n", goalName(snap.Goals, i), p.Progress, p.Status)
	}

	filtered := sess.FilteredTransactions()
	fmt.Fprintf(out, "\nTransactions (filtered): %d of %d\n", len(filtered), len(snap.Transactions))
}

func goalName(goals []models.Goal, i int) string {
	if i < len(goals) {
		return goals[i].Name
	}
	return ""
}
