package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"ISO", "2023-10-05", time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC)},
		{"full timestamp", "2023-10-05 14:30:00", time.Date(2023, time.October, 5, 14, 30, 0, 0, time.UTC)},
		{"european dots", "05.10.2023", time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC)},
		{"month name", "Oct 5, 2023", time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC)},
		{"whitespace trimmed", "  2023-10-05  ", time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "banana", "2023-13-45"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2023-10-05", FormatDate(date, ""))
	assert.Equal(t, "05.10.2023", FormatDate(date, DateLayoutEuropean))
}
