// Package ingesterror defines the error types raised by workbook ingestion.
package ingesterror

import "fmt"

// NoUsableDataError is returned when both primary tables (Transactions and
// Budget) are empty after row mapping. Empty Investments or Goals tables
// alone never trigger it. The error is retry-able: the previously installed
// snapshot, if any, is left untouched.
type NoUsableDataError struct {
	Hint string
}

func (e *NoUsableDataError) Error() string {
	hint := e.Hint
	if hint == "" {
		hint = "ensure sheets are named 'Transactions', 'Budget', 'Investments' and 'Goals'"
	}
	return fmt.Sprintf("could not find usable data: %s", hint)
}

// MalformedSourceError is returned when the uploaded file cannot be opened
// or decoded as a spreadsheet workbook at all.
type MalformedSourceError struct {
	Source string
	Err    error
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("cannot read %s as a spreadsheet workbook: %v", e.Source, e.Err)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}
