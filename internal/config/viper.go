// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	Display struct {
		Currency string `mapstructure:"currency" yaml:"currency"`
	} `mapstructure:"display" yaml:"display"`

	Workbook struct {
		TransactionsSheet string `mapstructure:"transactions_sheet" yaml:"transactions_sheet"`
		BudgetSheet       string `mapstructure:"budget_sheet" yaml:"budget_sheet"`
		InvestmentsSheet  string `mapstructure:"investments_sheet" yaml:"investments_sheet"`
		GoalsSheet        string `mapstructure:"goals_sheet" yaml:"goals_sheet"`
	} `mapstructure:"workbook" yaml:"workbook"`

	Palette struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"palette" yaml:"palette"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.opus-dashboard")
	v.AddConfigPath(".opus-dashboard")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("OPUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)

	// Display defaults
	v.SetDefault("display.currency", "INR")

	// Workbook sheet names
	v.SetDefault("workbook.transactions_sheet", "Transactions")
	v.SetDefault("workbook.budget_sheet", "Budget")
	v.SetDefault("workbook.investments_sheet", "Investments")
	v.SetDefault("workbook.goals_sheet", "Goals")

	// Palette defaults
	v.SetDefault("palette.file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate sheet names
	if config.Workbook.TransactionsSheet == "" || config.Workbook.BudgetSheet == "" ||
		config.Workbook.InvestmentsSheet == "" || config.Workbook.GoalsSheet == "" {
		return fmt.Errorf("workbook sheet names must not be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
