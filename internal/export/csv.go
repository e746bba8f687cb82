// Package export serializes transaction lists and derived summary tables as
// comma-separated text. Export is one-way: nothing written here is ever
// re-imported.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"opus/dashboard/internal/dateutils"
	"opus/dashboard/internal/derive"
	"opus/dashboard/internal/logging"
	"opus/dashboard/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// Delimiter is the global CSV delimiter, configurable via SetDelimiter.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// transactionRow is the fixed export shape of one transaction. The column
// order matches the header order the dashboard always produced.
type transactionRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Category    string `csv:"Category"`
	Account     string `csv:"Account"`
	Amount      string `csv:"Amount"`
	Type        string `csv:"Type"`
	Status      string `csv:"Status"`
}

// WriteTransactions writes a transaction list (typically the filtered list)
// as CSV to w with the fixed column header order.
func WriteTransactions(w io.Writer, transactions []models.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	rows := make([]transactionRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, transactionRow{
			Date:        dateutils.FormatDate(tx.Date, dateutils.DateLayoutISO),
			Description: tx.Description,
			Category:    tx.Category,
			Account:     tx.Account,
			Amount:      tx.Amount.StringFixed(2),
			Type:        string(tx.Kind),
			Status:      string(tx.Status),
		})
	}

	return marshalRows(w, rows)
}

// monthlyRow is the export shape of one monthly aggregate.
type monthlyRow struct {
	Month    string `csv:"Month"`
	Income   string `csv:"Income"`
	Expenses string `csv:"Expenses"`
	Net      string `csv:"Net"`
}

// WriteMonthlySeries writes the monthly income/expense series as CSV.
func WriteMonthlySeries(w io.Writer, series []derive.MonthlyPoint) error {
	rows := make([]monthlyRow, 0, len(series))
	for _, p := range series {
		rows = append(rows, monthlyRow{
			Month:    p.Month,
			Income:   p.Income.StringFixed(2),
			Expenses: p.Expenses.StringFixed(2),
			Net:      p.Net().StringFixed(2),
		})
	}
	return marshalRows(w, rows)
}

// budgetRow is the export shape of one budget utilization line.
type budgetRow struct {
	Category string `csv:"Category"`
	Budgeted string `csv:"Budgeted"`
	Actual   string `csv:"Actual"`
	Percent  string `csv:"Percent"`
	Status   string `csv:"Status"`
}

// WriteBudgetUtilization writes the budget utilization table as CSV.
func WriteBudgetUtilization(w io.Writer, utilization []derive.Utilization) error {
	rows := make([]budgetRow, 0, len(utilization))
	for _, u := range utilization {
		rows = append(rows, budgetRow{
			Category: u.Category,
			Budgeted: u.Budgeted.StringFixed(2),
			Actual:   u.Actual.StringFixed(2),
			Percent:  u.Percent.StringFixed(2),
			Status:   string(u.Status),
		})
	}
	return marshalRows(w, rows)
}

func marshalRows[T any](w io.Writer, rows []T) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteTransactionsFile writes the transaction CSV to a file, creating
// parent directories as needed.
func WriteTransactionsFile(transactions []models.Transaction, csvFile string) error {
	log.WithFields(logrus.Fields{
		logging.FieldFile:  csvFile,
		logging.FieldCount: len(transactions),
	}).Info("Writing transactions to CSV file")

	file, err := createFile(csvFile)
	if err != nil {
		return err
	}
	defer closeFile(file)

	return WriteTransactions(file, transactions)
}

// WriteMonthlySeriesFile writes the monthly series CSV to a file.
func WriteMonthlySeriesFile(series []derive.MonthlyPoint, csvFile string) error {
	file, err := createFile(csvFile)
	if err != nil {
		return err
	}
	defer closeFile(file)

	return WriteMonthlySeries(file, series)
}

// WriteBudgetUtilizationFile writes the budget utilization CSV to a file.
func WriteBudgetUtilizationFile(utilization []derive.Utilization, csvFile string) error {
	file, err := createFile(csvFile)
	if err != nil {
		return err
	}
	defer closeFile(file)

	return WriteBudgetUtilization(file, utilization)
}

func createFile(csvFile string) (*os.File, error) {
	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return nil, fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 - user-chosen export path
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return nil, fmt.Errorf("error creating CSV file: %w", err)
	}
	return file, nil
}

func closeFile(file *os.File) {
	if err := file.Close(); err != nil {
		log.WithError(err).Warn("Failed to close file")
	}
}
