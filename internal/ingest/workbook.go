// Package ingest converts an uploaded spreadsheet workbook into a typed
// snapshot, applying the import defaulting rules.
package ingest

import (
	"io"

	"opus/dashboard/internal/ingesterror"
	"opus/dashboard/internal/logging"

	"github.com/xuri/excelize/v2"
)

// Default sheet names looked up in an uploaded workbook.
const (
	SheetTransactions = "Transactions"
	SheetBudget       = "Budget"
	SheetInvestments  = "Investments"
	SheetGoals        = "Goals"
)

// Row is one loosely-typed data row: column header to raw cell text.
type Row map[string]string

// Table is an ordered sequence of rows from one sheet.
type Table []Row

// Tables holds the four raw tables read from a workbook. A sheet missing
// from the workbook yields an empty table, not an error.
type Tables struct {
	Transactions Table
	Budget       Table
	Investments  Table
	Goals        Table
}

// SheetNames selects which workbook sheets hold which table.
type SheetNames struct {
	Transactions string
	Budget       string
	Investments  string
	Goals        string
}

// DefaultSheetNames returns the standard sheet-name mapping.
func DefaultSheetNames() SheetNames {
	return SheetNames{
		Transactions: SheetTransactions,
		Budget:       SheetBudget,
		Investments:  SheetInvestments,
		Goals:        SheetGoals,
	}
}

// ReadWorkbook decodes workbook bytes from r and extracts the four raw
// tables. A file that cannot be opened as a spreadsheet at all yields a
// MalformedSourceError.
func ReadWorkbook(r io.Reader, names SheetNames, logger logging.Logger) (*Tables, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ingesterror.MalformedSourceError{Source: "upload", Err: err}
	}
	defer func() {
		if err := wb.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	tables := &Tables{
		Transactions: readSheet(wb, names.Transactions, logger),
		Budget:       readSheet(wb, names.Budget, logger),
		Investments:  readSheet(wb, names.Investments, logger),
		Goals:        readSheet(wb, names.Goals, logger),
	}
	return tables, nil
}

// readSheet turns one sheet into a Table: the first row is the header, every
// following row becomes a header→cell map. Rows with no non-empty cell are
// skipped; short rows are padded with empty strings.
func readSheet(wb *excelize.File, sheet string, logger logging.Logger) Table {
	rows, err := wb.GetRows(sheet)
	if err != nil {
		// Missing sheet is treated as an empty table.
		logger.WithField(logging.FieldSheet, sheet).Debug("Sheet not present in workbook")
		return Table{}
	}
	if len(rows) < 2 {
		return Table{}
	}

	header := rows[0]
	table := make(Table, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if isEmptyRow(cells) {
			continue
		}
		row := make(Row, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(cells) {
				row[name] = cells[i]
			} else {
				row[name] = ""
			}
		}
		table = append(table, row)
	}

	logger.WithField(logging.FieldSheet, sheet).
		WithField(logging.FieldCount, len(table)).
		Debug("Read sheet rows")
	return table
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
