package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		value string
		want  TransactionKind
	}{
		{"income", KindIncome},
		{"expense", KindExpense},
		{"", KindExpense},
		{"refund", KindExpense},
		{"Income", KindExpense},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseKind(tt.value), "value %q", tt.value)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		value string
		want  TransactionStatus
	}{
		{"pending", StatusPending},
		{"posted", StatusPosted},
		{"", StatusPosted},
		{"cleared", StatusPosted},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseStatus(tt.value), "value %q", tt.value)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		value string
		want  GoalPriority
	}{
		{"high", PriorityHigh},
		{"medium", PriorityMedium},
		{"low", PriorityLow},
		{"", PriorityMedium},
		{"urgent", PriorityMedium},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePriority(tt.value), "value %q", tt.value)
	}
}

func TestHoldingMarketValue(t *testing.T) {
	h := Holding{
		Shares:       decimal.NewFromInt(450),
		CurrentPrice: decimal.NewFromInt(1650),
	}
	assert.True(t, h.MarketValue().Equal(decimal.NewFromInt(742500)))
}

func TestNewSnapshot(t *testing.T) {
	createdAt := time.Date(2023, time.November, 1, 12, 0, 0, 0, time.UTC)

	a := NewSnapshot(createdAt)
	b := NewSnapshot(createdAt)

	require.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, createdAt, a.CreatedAt)
	assert.Empty(t, a.Transactions)
}
