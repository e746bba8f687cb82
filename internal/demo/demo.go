// Package demo provides a fixed snapshot usable in place of a file upload.
// The data is already in normalized form and exercises the same output shape
// as a real ingestion, so every view renders from it unchanged.
package demo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"opus/dashboard/internal/derive"
	"opus/dashboard/internal/models"
)

type demoTx struct {
	date        string
	description string
	category    string
	account     string
	amount      int64
	kind        models.TransactionKind
	status      models.TransactionStatus
	recurring   bool
}

var demoTransactions = []demoTx{
	{"2023-10-30", "Salary Deposit", "Income", "ICICI Bank", 185000, models.KindIncome, models.StatusPending, false},
	{"2023-10-29", "Netflix Subscription", "Entertainment", "ICICI Bank", 649, models.KindExpense, models.StatusPending, true},
	{"2023-10-28", "JioMart", "Groceries", "Federal Bank", 4350, models.KindExpense, models.StatusPending, false},
	{"2023-10-27", "Adani Electricity", "Utilities", "ICICI Bank", 2890, models.KindExpense, models.StatusPending, true},
	{"2023-10-24", "Amazon India", "Shopping", "Federal Bank", 7499, models.KindExpense, models.StatusPosted, false},
	{"2023-10-20", "Indian Oil", "Transport", "ICICI Bank", 3200, models.KindExpense, models.StatusPosted, false},
	{"2023-10-15", "Zerodha Fund Add", "Investments", "ICICI Bank", 25000, models.KindExpense, models.StatusPosted, true},
	{"2023-10-10", "JioMart", "Groceries", "Federal Bank", 5120, models.KindExpense, models.StatusPosted, false},
	{"2023-09-30", "Salary Deposit", "Income", "ICICI Bank", 185000, models.KindIncome, models.StatusPosted, false},
	{"2023-09-22", "Amazon India", "Shopping", "Federal Bank", 12999, models.KindExpense, models.StatusPosted, false},
	{"2023-09-18", "Netflix Subscription", "Entertainment", "ICICI Bank", 649, models.KindExpense, models.StatusPosted, true},
	{"2023-09-12", "Indian Oil", "Transport", "ICICI Bank", 2750, models.KindExpense, models.StatusPosted, false},
	{"2023-09-05", "Adani Electricity", "Utilities", "ICICI Bank", 3100, models.KindExpense, models.StatusPosted, true},
	{"2023-08-31", "Salary Deposit", "Income", "ICICI Bank", 185000, models.KindIncome, models.StatusPosted, false},
	{"2023-08-20", "Zerodha Fund Add", "Investments", "ICICI Bank", 25000, models.KindExpense, models.StatusPosted, true},
	{"2023-08-14", "JioMart", "Groceries", "Federal Bank", 4890, models.KindExpense, models.StatusPosted, false},
}

type demoBudget struct {
	category string
	budgeted int64
	actual   int64
}

var demoBudgets = []demoBudget{
	{"Housing", 45000, 45000},
	{"Food & Dining", 15000, 18500},
	{"Transportation", 8000, 6500},
	{"Utilities", 5000, 5500},
	{"Shopping", 10000, 14500},
	{"Entertainment", 5000, 4500},
	{"Health", 3000, 3000},
	{"Travel", 20000, 0},
	{"Misc", 5000, 6000},
}

type demoHolding struct {
	ticker    string
	name      string
	shares    int64
	costBasis int64
	price     int64
}

var demoHoldings = []demoHolding{
	{"HDFCBANK", "HDFC Bank Ltd", 450, 1400, 1650},
	{"RELIANCE", "Reliance Ind", 300, 2200, 2450},
	{"TCS", "Tata Consultancy", 100, 3200, 3600},
	{"INFY", "Infosys Ltd", 150, 1300, 1450},
	{"SBIN", "State Bank of India", 500, 500, 620},
}

type demoGoal struct {
	name       string
	target     int64
	current    int64
	monthly    int64
	targetDate string
	priority   models.GoalPriority
}

var demoGoals = []demoGoal{
	{"Home Down Payment", 8000000, 4500000, 50000, "2025-06-01", models.PriorityHigh},
	{"Europe Trip", 400000, 120000, 15000, "2024-08-01", models.PriorityMedium},
	{"New Car", 1500000, 300000, 25000, "2025-01-01", models.PriorityMedium},
}

// Snapshot builds the demo snapshot. The result is deterministic: calling it
// twice yields field-for-field equal collections.
func Snapshot(now time.Time) *models.Snapshot {
	snap := models.NewSnapshot(now)

	snap.Transactions = make([]models.Transaction, 0, len(demoTransactions))
	for i, d := range demoTransactions {
		date, _ := time.Parse("2006-01-02", d.date)
		snap.Transactions = append(snap.Transactions, models.Transaction{
			ID:          fmt.Sprintf("tx-%d", i),
			Date:        date,
			Description: d.description,
			Category:    d.category,
			Account:     d.account,
			Amount:      decimal.NewFromInt(d.amount),
			Kind:        d.kind,
			Status:      d.status,
			Recurring:   d.recurring,
		})
	}

	snap.Budgets = make([]models.BudgetLine, 0, len(demoBudgets))
	for _, b := range demoBudgets {
		snap.Budgets = append(snap.Budgets, models.BudgetLine{
			Category: b.category,
			Budgeted: decimal.NewFromInt(b.budgeted),
			Actual:   decimal.NewFromInt(b.actual),
		})
	}

	holdings := make([]models.Holding, 0, len(demoHoldings))
	for _, h := range demoHoldings {
		holdings = append(holdings, models.Holding{
			Ticker:       h.ticker,
			Name:         h.name,
			Shares:       decimal.NewFromInt(h.shares),
			CostBasis:    decimal.NewFromInt(h.costBasis),
			CurrentPrice: decimal.NewFromInt(h.price),
		})
	}
	snap.Holdings = derive.ApplyAllocations(holdings)

	snap.Goals = make([]models.Goal, 0, len(demoGoals))
	for i, g := range demoGoals {
		date, _ := time.Parse("2006-01-02", g.targetDate)
		snap.Goals = append(snap.Goals, models.Goal{
			ID:                  fmt.Sprintf("g-%d", i),
			Name:                g.name,
			TargetAmount:        decimal.NewFromInt(g.target),
			CurrentAmount:       decimal.NewFromInt(g.current),
			MonthlyContribution: decimal.NewFromInt(g.monthly),
			TargetDate:          date,
			Priority:            g.priority,
		})
	}

	return snap
}
