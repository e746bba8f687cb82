package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceAmount parses a raw spreadsheet cell into a decimal amount.
// Currency symbols, spaces and thousand separators are stripped and a comma
// decimal separator is accepted. Parsing failures and empty cells coerce to
// zero; this silent fallback is the import policy, not an error path.
func CoerceAmount(raw string) decimal.Decimal {
	amount := strings.TrimSpace(raw)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "₹", "")
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, "€", "")
	amount = strings.ReplaceAll(amount, "INR", "")
	amount = strings.ReplaceAll(amount, "'", "")

	// A value like 1,234.56 or 1,25,000 carries grouping commas; a value
	// like 1234,56 uses the comma as decimal separator. Only a single comma
	// followed by one or two digits counts as a decimal point.
	if strings.Contains(amount, ".") {
		amount = strings.ReplaceAll(amount, ",", "")
	} else if i := strings.LastIndex(amount, ","); i >= 0 {
		if strings.Count(amount, ",") == 1 && len(amount)-i-1 <= 2 {
			amount = amount[:i] + "." + amount[i+1:]
		} else {
			amount = strings.ReplaceAll(amount, ",", "")
		}
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// CoerceBool reports whether a raw cell holds a true value. Only the literal
// string "true" and the spreadsheet boolean rendering "TRUE" count; anything
// else, including "yes" or "1", is false.
func CoerceBool(raw string) bool {
	return raw == "true" || raw == "TRUE"
}
