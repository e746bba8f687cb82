// Package common provides shared command helpers.
package common

import (
	"fmt"
	"os"

	"opus/dashboard/cmd/root"
	"opus/dashboard/internal/config"
	"opus/dashboard/internal/derive"
	"opus/dashboard/internal/ingest"
	"opus/dashboard/internal/session"
)

// BuildSession loads a session from the shared flags: either the demo
// dataset or the workbook named by --input. The active filter is taken from
// the --account/--search/--tag flags.
func BuildSession() (*session.Session, error) {
	logger := root.GetLogrusAdapter()
	cfg := config.GetGlobalConfig()

	names := ingest.SheetNames{
		Transactions: cfg.Workbook.TransactionsSheet,
		Budget:       cfg.Workbook.BudgetSheet,
		Investments:  cfg.Workbook.InvestmentsSheet,
		Goals:        cfg.Workbook.GoalsSheet,
	}
	normalizer := ingest.NewNormalizer(logger, ingest.WithSheetNames(names))
	sess := session.New(logger, session.WithNormalizer(normalizer))

	switch {
	case root.SharedFlags.Demo:
		sess.LoadDemo()
	case root.SharedFlags.Input != "":
		file, err := os.Open(root.SharedFlags.Input) // #nosec G304 - user-chosen input path
		if err != nil {
			return nil, fmt.Errorf("error opening input file: %w", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				root.Log.WithError(err).Warn("Failed to close input file")
			}
		}()
		if err := sess.LoadWorkbook(file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("no input: pass --input <workbook.xlsx> or --demo")
	}

	sess.SetFilter(derive.Filter{
		Account: root.SharedFlags.Account,
		Search:  root.SharedFlags.Search,
		Tag:     derive.ParseTagFilter(root.SharedFlags.Tag),
	})
	return sess, nil
}
