package ingest

import (
	"io"
	"time"

	"opus/dashboard/internal/derive"
	"opus/dashboard/internal/ingesterror"
	"opus/dashboard/internal/logging"
	"opus/dashboard/internal/models"
)

// Normalizer turns raw workbook tables into a typed snapshot. The clock is
// injectable so that date defaulting stays testable.
type Normalizer struct {
	logger logging.Logger
	clock  func() time.Time
	sheets SheetNames
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock overrides the clock used for date defaulting.
func WithClock(clock func() time.Time) Option {
	return func(n *Normalizer) { n.clock = clock }
}

// WithSheetNames overrides the workbook sheet names.
func WithSheetNames(names SheetNames) Option {
	return func(n *Normalizer) { n.sheets = names }
}

// NewNormalizer creates a Normalizer. If logger is nil, a default logger is
// used.
func NewNormalizer(logger logging.Logger, opts ...Option) *Normalizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	n := &Normalizer{
		logger: logger,
		clock:  time.Now,
		sheets: DefaultSheetNames(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Normalizer) now() time.Time {
	return n.clock()
}

// Snapshot builds a typed snapshot from raw tables. It fails with
// NoUsableDataError when both primary tables are empty after mapping;
// Investments and Goals being empty alone is a valid result. Ingestion is
// all-or-nothing: on error no snapshot is produced.
func (n *Normalizer) Snapshot(tables *Tables) (*models.Snapshot, error) {
	transactions := n.normalizeTransactions(tables.Transactions)
	budgets := n.normalizeBudget(tables.Budget)
	holdings := n.normalizeHoldings(tables.Investments)
	goals := n.normalizeGoals(tables.Goals)

	if len(transactions) == 0 && len(budgets) == 0 {
		return nil, &ingesterror.NoUsableDataError{}
	}

	snap := models.NewSnapshot(n.now())
	snap.Transactions = transactions
	snap.Budgets = budgets
	snap.Holdings = derive.ApplyAllocations(holdings)
	snap.Goals = goals

	n.logger.WithField(logging.FieldSnapshot, snap.ID).Info("Built snapshot",
		logging.Field{Key: "transactions", Value: len(transactions)},
		logging.Field{Key: "budgets", Value: len(budgets)},
		logging.Field{Key: "holdings", Value: len(holdings)},
		logging.Field{Key: "goals", Value: len(goals)},
	)
	return snap, nil
}

// FromReader reads workbook bytes and builds a snapshot in one step. This is
// the single ingestion entry point per upload.
func (n *Normalizer) FromReader(r io.Reader) (*models.Snapshot, error) {
	tables, err := ReadWorkbook(r, n.sheets, n.logger)
	if err != nil {
		return nil, err
	}
	return n.Snapshot(tables)
}
