package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for the Go 1.21 toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestInitializeConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	config, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.True(t, config.CSV.IncludeHeaders)
	assert.Equal(t, "INR", config.Display.Currency)
	assert.Equal(t, "Transactions", config.Workbook.TransactionsSheet)
	assert.Equal(t, "Budget", config.Workbook.BudgetSheet)
	assert.Equal(t, "Investments", config.Workbook.InvestmentsSheet)
	assert.Equal(t, "Goals", config.Workbook.GoalsSheet)
	assert.Empty(t, config.Palette.File)
}

func TestInitializeConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := `log:
  level: debug
  format: json
csv:
  delimiter: ";"
workbook:
  transactions_sheet: Txns
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	chdir(t, dir)

	config, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, "Txns", config.Workbook.TransactionsSheet)
	assert.Equal(t, "Budget", config.Workbook.BudgetSheet, "unset keys keep their defaults")
}

func TestInitializeConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "log:\n  level: loud\n"},
		{"bad log format", "log:\n  format: xml\n"},
		{"multi-char delimiter", "csv:\n  delimiter: \";;\"\n"},
		{"empty sheet name", "workbook:\n  goals_sheet: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tt.content), 0o600))
			chdir(t, dir)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(config)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfig_InvalidLevelFallsBack(t *testing.T) {
	var config Config
	config.Log.Level = "bogus"
	config.Log.Format = "text"

	logger := ConfigureLoggingFromConfig(&config)

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
