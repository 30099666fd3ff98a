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

	Data struct {
		Directory       string `mapstructure:"directory" yaml:"directory"`
		ExportDirectory string `mapstructure:"export_directory" yaml:"export_directory"`
	} `mapstructure:"data" yaml:"data"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Categorize struct {
		RulesFile  string  `mapstructure:"rules_file" yaml:"rules_file"`
		RentAmount float64 `mapstructure:"rent_amount" yaml:"rent_amount"`
	} `mapstructure:"categorize" yaml:"categorize"`

	Feed struct {
		Pattern        string `mapstructure:"pattern" yaml:"pattern"`
		SignConvention string `mapstructure:"sign_convention" yaml:"sign_convention"`
	} `mapstructure:"feed" yaml:"feed"`
}

// Feed sign conventions. "bank" takes feed amounts as-is (negative means
// outflow, same as the statements); "aggregator" means the feed reports
// outflows as positive and every amount is negated on ingest.
const (
	SignConventionBank       = "bank"
	SignConventionAggregator = "aggregator"
)

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.spendreport")
	v.AddConfigPath(".spendreport")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("SPEND")
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

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "statements")
	v.SetDefault("data.export_directory", "statements")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("categorize.rules_file", "categories.yaml")
	v.SetDefault("categorize.rent_amount", 2500)

	v.SetDefault("feed.pattern", "plaid_*.json")
	v.SetDefault("feed.sign_convention", SignConventionBank)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Categorize.RentAmount < 0 {
		return fmt.Errorf("categorize.rent_amount must not be negative, got: %f", config.Categorize.RentAmount)
	}

	switch config.Feed.SignConvention {
	case SignConventionBank, SignConventionAggregator:
	default:
		return fmt.Errorf("invalid feed.sign_convention: %s (must be '%s' or '%s')",
			config.Feed.SignConvention, SignConventionBank, SignConventionAggregator)
	}

	return nil
}
