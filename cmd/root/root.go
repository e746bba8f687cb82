// Package root contains the root command for the application
package root

import (
	"opus/dashboard/internal/config"
	"opus/dashboard/internal/export"
	"opus/dashboard/internal/logging"
	"opus/dashboard/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input   string
	Output  string
	Demo    bool
	Account string
	Search  string
	Tag     string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "opus",
		Short: "A personal-finance dashboard over an imported spreadsheet.",
		Long: `opus reads a spreadsheet workbook of transactions, budgets, investment
holdings and goals, and renders summary metrics or exports derived tables
as CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to opus!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			store.SetLogger(Log)
			export.SetLogger(Log)

			cfg := config.GetGlobalConfig()
			if cfg.CSV.Delimiter != "" {
				export.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// GetLogrusAdapter returns the shared logger wrapped in the Logger interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input workbook (.xlsx)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Demo, "demo", false, "Use the built-in demo dataset instead of a file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Account, "account", "", "Restrict the transaction list to one account")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Search, "search", "", "Case-insensitive description search")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Tag, "tag", "all", "Tag filter: all, recurring, one-time or pending")
}
