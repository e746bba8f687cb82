package derive

import (
	"strings"

	"opus/dashboard/internal/models"
)

// AllAccounts is the account filter value that matches every account.
const AllAccounts = "All Accounts"

// TagFilter narrows the transaction list by recurrence or settlement state.
type TagFilter string

const (
	TagAll       TagFilter = "all"
	TagRecurring TagFilter = "recurring"
	TagOneTime   TagFilter = "one-time"
	TagPending   TagFilter = "pending"
)

// ParseTagFilter maps an input value onto TagFilter, defaulting to all.
func ParseTagFilter(value string) TagFilter {
	switch TagFilter(strings.ToLower(value)) {
	case TagRecurring, TagOneTime, TagPending:
		return TagFilter(strings.ToLower(value))
	default:
		return TagAll
	}
}

// Filter is the active transaction-list filter. The three conditions compose
// with logical AND; the zero value matches everything.
type Filter struct {
	Account string    // AllAccounts or empty matches every account
	Search  string    // Case-insensitive description substring
	Tag     TagFilter // Recurrence/settlement tag
}

// Matches reports whether one transaction passes the filter.
func (f Filter) Matches(tx models.Transaction) bool {
	if f.Account != "" && f.Account != AllAccounts && tx.Account != f.Account {
		return false
	}
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(tx.Description), strings.ToLower(f.Search)) {
		return false
	}
	switch f.Tag {
	case TagRecurring:
		if !tx.Recurring {
			return false
		}
	case TagOneTime:
		if tx.Recurring {
			return false
		}
	case TagPending:
		if tx.Status != models.StatusPending {
			return false
		}
	}
	return true
}

// FilterTransactions returns the transactions passing the filter, preserving
// input order. An empty result is a valid, displayable state.
func FilterTransactions(transactions []models.Transaction, f Filter) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}
