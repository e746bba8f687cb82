package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain integer", "1234", "1234"},
		{"plain decimal", "1234.56", "1234.56"},
		{"negative", "-500", "-500"},
		{"rupee symbol", "₹2500", "2500"},
		{"dollar symbol", "$99.95", "99.95"},
		{"euro symbol", "€10", "10"},
		{"currency code", "INR 1500", "1500"},
		{"thousand commas", "1,234.56", "1234.56"},
		{"lakh grouping", "1,25,000", "125000"},
		{"comma decimal", "1234,56", "1234.56"},
		{"swiss apostrophe", "1'234.50", "1234.5"},
		{"surrounding spaces", "  42  ", "42"},
		{"empty", "", "0"},
		{"garbage", "n/a", "0"},
		{"double dot", "1.2.3", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceAmount(tt.raw)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCoerceBool(t *testing.T) {
	assert.True(t, CoerceBool("true"))
	assert.True(t, CoerceBool("TRUE"))

	for _, raw := range []string{"", "false", "True", "yes", "1", "recurring"} {
		assert.False(t, CoerceBool(raw), "value %q", raw)
	}
}
