// Package root contains the root command and the state shared by every
// subcommand.
package root

import (
	"spendreport/internal/categorizer"
	"spendreport/internal/config"
	"spendreport/internal/dedupe"
	"spendreport/internal/loader"
	"spendreport/internal/logging"
	"spendreport/internal/models"
	"spendreport/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands. It is replaced with
	// the configured logger in PersistentPreRun.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the resolved configuration, available after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "spendreport",
		Short: "Summarize, categorize and export personal bank and card transactions.",
		Long: `spendreport ingests bank statement CSV exports and aggregator JSON feeds,
normalizes and categorizes every transaction, removes cross-source
duplicates, and prints spending summaries by category, week, and month.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to spendreport!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv(logrus.New())

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}

			// Flag overrides beat config file and environment
			if DataDir != "" {
				cfg.Data.Directory = DataDir
			}
			if ExportDir != "" {
				cfg.Data.ExportDirectory = ExportDir
			}

			Cfg = cfg
			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
		},
	}

	// DataDir overrides data.directory when set.
	DataDir string

	// ExportDir overrides data.export_directory when set.
	ExportDir string
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataDir, "data-dir", "d", "", "Directory holding statement CSVs and feed files")
	Cmd.PersistentFlags().StringVarP(&ExportDir, "export-dir", "e", "", "Directory the normalized JSON export is written to")
}

// NewCategorizer builds the categorizer from the configured rule table.
func NewCategorizer() (*categorizer.Categorizer, error) {
	rules, err := store.NewRuleStore(Cfg.Categorize.RulesFile, Log).LoadRules()
	if err != nil {
		return nil, err
	}
	rentAmount := decimal.NewFromFloat(Cfg.Categorize.RentAmount)
	return categorizer.New(rules, rentAmount, Log), nil
}

// LoadTransactions runs the ingest half of the pipeline: scan the data
// directory, parse statements and the latest feed, categorize, sort, and
// deduplicate.
func LoadTransactions() ([]models.Transaction, error) {
	cat, err := NewCategorizer()
	if err != nil {
		return nil, err
	}

	transactions, err := loader.Load(Cfg, cat.Categorize, Log)
	if err != nil {
		return nil, err
	}

	return dedupe.Deduplicate(transactions, Log), nil
}
