// Package export handles CSV export commands.
package export

import (
	"opus/dashboard/cmd/common"
	"opus/dashboard/cmd/root"
	"opus/dashboard/internal/derive"
	csvexport "opus/dashboard/internal/export"
	"opus/dashboard/internal/logging"

	"github.com/spf13/cobra"
)

// Table selects which table the export command writes.
var Table string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered transaction list or a derived summary as CSV",
	Long: `Export the current filtered transaction list, the monthly
income/expense series or the budget utilization table as CSV. The export is
write-only; it is never re-imported.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVar(&Table, "table", "transactions",
		"Table to export: transactions, monthly or budget")
}

func exportFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Output == "" {
		root.Log.Fatal("No output file: pass --output <file.csv>")
	}

	sess, err := common.BuildSession()
	if err != nil {
		root.Log.Fatalf("Error loading data: %v", err)
	}
	snap := sess.Snapshot()

	switch Table {
	case "transactions":
		err = csvexport.WriteTransactionsFile(sess.FilteredTransactions(), root.SharedFlags.Output)
	case "monthly":
		err = csvexport.WriteMonthlySeriesFile(derive.MonthlySeries(snap.Transactions), root.SharedFlags.Output)
	case "budget":
		err = csvexport.WriteBudgetUtilizationFile(derive.BudgetUtilization(snap.Budgets), root.SharedFlags.Output)
	default:
		root.Log.Fatalf("Unknown table %q: expected transactions, monthly or budget", Table)
	}
	if err != nil {
		root.Log.Fatalf("Error exporting CSV: %v", err)
	}

	root.Log.WithField(logging.FieldFile, root.SharedFlags.Output).Info("Export completed successfully")
}
