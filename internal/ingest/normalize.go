package ingest

import (
	"fmt"
	"time"

	"opus/dashboard/internal/dateutils"
	"opus/dashboard/internal/models"
)

// goalDatePlaceholder is the target date assigned to goals imported without
// one.
var goalDatePlaceholder = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// normalizeTransactions maps raw transaction rows to typed records in input
// order. Every malformed or missing field is absorbed by a default; a row is
// never rejected.
func (n *Normalizer) normalizeTransactions(table Table) []models.Transaction {
	txs := make([]models.Transaction, 0, len(table))
	for i, row := range table {
		tx := models.Transaction{
			ID:          fmt.Sprintf("tx-%d", i),
			Date:        n.coerceDate(row["date"], n.now()),
			Description: defaultString(row["description"], "Unknown"),
			Category:    defaultString(row["category"], "Misc"),
			Account:     defaultString(row["account"], "Cash"),
			Amount:      models.CoerceAmount(row["amount"]),
			Kind:        models.ParseKind(row["type"]),
			Status:      models.ParseStatus(row["status"]),
			Recurring:   models.CoerceBool(row["isRecurring"]),
		}
		txs = append(txs, tx)
	}
	return txs
}

// normalizeBudget maps raw budget rows. Category is the unique key: a later
// row for the same category replaces the earlier one in place. Trend is
// fixed at zero on import; no historical comparison is attempted here.
func (n *Normalizer) normalizeBudget(table Table) []models.BudgetLine {
	lines := make([]models.BudgetLine, 0, len(table))
	index := make(map[string]int)
	for _, row := range table {
		line := models.BudgetLine{
			Category: defaultString(row["category"], "Misc"),
			Budgeted: models.CoerceAmount(row["budget"]),
			Actual:   models.CoerceAmount(row["actual"]),
		}
		if i, ok := index[line.Category]; ok {
			lines[i] = line
			continue
		}
		index[line.Category] = len(lines)
		lines = append(lines, line)
	}
	return lines
}

// normalizeHoldings maps raw holding rows. Allocation is not read from input;
// it is derived once all rows are mapped.
func (n *Normalizer) normalizeHoldings(table Table) []models.Holding {
	holdings := make([]models.Holding, 0, len(table))
	for _, row := range table {
		holdings = append(holdings, models.Holding{
			Ticker:       defaultString(row["ticker"], "UNKNOWN"),
			Name:         defaultString(row["name"], "Unknown Asset"),
			Shares:       models.CoerceAmount(row["shares"]),
			CostBasis:    models.CoerceAmount(row["costBasis"]),
			CurrentPrice: models.CoerceAmount(row["currentPrice"]),
		})
	}
	return holdings
}

// normalizeGoals maps raw goal rows.
func (n *Normalizer) normalizeGoals(table Table) []models.Goal {
	goals := make([]models.Goal, 0, len(table))
	for i, row := range table {
		goals = append(goals, models.Goal{
			ID:                  fmt.Sprintf("g-%d", i),
			Name:                defaultString(row["name"], "New Goal"),
			TargetAmount:        models.CoerceAmount(row["targetAmount"]),
			CurrentAmount:       models.CoerceAmount(row["currentAmount"]),
			MonthlyContribution: models.CoerceAmount(row["monthlyContribution"]),
			TargetDate:          n.coerceDate(row["targetDate"], goalDatePlaceholder),
			Priority:            models.ParsePriority(row["priority"]),
		})
	}
	return goals
}

// coerceDate parses a raw cell as a calendar date, falling back silently.
func (n *Normalizer) coerceDate(raw string, fallback time.Time) time.Time {
	if raw == "" {
		return fallback
	}
	t, err := dateutils.ParseDate(raw)
	if err != nil {
		return fallback
	}
	return t
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
