// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind is the direction of a transaction. It is a closed
// enumeration: anything that is not income or expense maps to expense.
type TransactionKind string

const (
	// KindIncome marks money coming in.
	KindIncome TransactionKind = "income"
	// KindExpense marks money going out.
	KindExpense TransactionKind = "expense"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	// StatusPosted marks a settled transaction.
	StatusPosted TransactionStatus = "posted"
	// StatusPending marks a transaction that has not settled yet.
	StatusPending TransactionStatus = "pending"
)

// GoalPriority ranks a financial goal.
type GoalPriority string

const (
	PriorityHigh   GoalPriority = "high"
	PriorityMedium GoalPriority = "medium"
	PriorityLow    GoalPriority = "low"
)

// ParseKind maps an input value onto the closed TransactionKind enumeration.
// Unrecognized values fall back to expense.
func ParseKind(value string) TransactionKind {
	if TransactionKind(value) == KindIncome {
		return KindIncome
	}
	if TransactionKind(value) == KindExpense {
		return KindExpense
	}
	return KindExpense
}

// ParseStatus maps an input value onto TransactionStatus. Anything that is
// not pending, including the empty cell, maps to posted.
func ParseStatus(value string) TransactionStatus {
	if TransactionStatus(value) == StatusPending {
		return StatusPending
	}
	return StatusPosted
}

// ParsePriority maps an input value onto GoalPriority, defaulting to medium
// for empty or unrecognized values.
func ParsePriority(value string) GoalPriority {
	switch GoalPriority(value) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return GoalPriority(value)
	default:
		return PriorityMedium
	}
}

// Transaction represents a single imported bank transaction.
type Transaction struct {
	ID          string            // Synthetic id, stable within one ingestion run
	Date        time.Time         // Calendar date of the transaction
	Description string            // Free-text description
	Category    string            // Free-text category label
	Account     string            // Free-text account label
	Amount      decimal.Decimal   // Non-negative magnitude
	Kind        TransactionKind   // income or expense
	Status      TransactionStatus // posted or pending
	Recurring   bool              // True for repeating transactions
}

// BudgetLine represents one category of the monthly budget. Category is the
// unique key within a snapshot; on duplicates the last line wins.
type BudgetLine struct {
	Category string
	Budgeted decimal.Decimal
	Actual   decimal.Decimal
	Trend    decimal.Decimal // Signed percent vs prior period; fixed at 0 on import
}

// Holding represents one investment position. Allocation is derived from the
// snapshot's total market value, never read from input.
type Holding struct {
	Ticker       string
	Name         string
	Shares       decimal.Decimal
	CostBasis    decimal.Decimal // Per-share cost
	CurrentPrice decimal.Decimal // Per-share price at import time
	Allocation   float64         // Percent of total market value
}

// MarketValue returns shares times current price.
func (h Holding) MarketValue() decimal.Decimal {
	return h.Shares.Mul(h.CurrentPrice)
}

// Goal represents a savings goal with a target amount and date.
type Goal struct {
	ID                  string
	Name                string
	TargetAmount        decimal.Decimal
	CurrentAmount       decimal.Decimal
	MonthlyContribution decimal.Decimal
	TargetDate          time.Time
	Priority            GoalPriority
}

// Snapshot is the complete set of collections produced by one successful
// ingestion (or by the demo loader). A snapshot is immutable once built and
// is only ever replaced wholesale.
type Snapshot struct {
	ID           string
	CreatedAt    time.Time
	Transactions []Transaction
	Budgets      []BudgetLine
	Holdings     []Holding
	Goals        []Goal
}

// NewSnapshot creates an empty snapshot with a generated id.
func NewSnapshot(createdAt time.Time) *Snapshot {
	return &Snapshot{
		ID:        uuid.New().String(),
		CreatedAt: createdAt,
	}
}
