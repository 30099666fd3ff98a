// Package summarize implements the default reporting verb: run the full
// pipeline and print summaries.
package summarize

import (
	"os"

	"spendreport/cmd/common"
	"spendreport/cmd/root"
	"spendreport/internal/summary"

	"github.com/spf13/cobra"
)

// Cmd represents the summarize command
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Ingest all sources and print spending summaries",
	Long: `Summarize parses every statement CSV in the data directory plus the
latest aggregator feed, categorizes and deduplicates the merged set, and
prints the transaction listing with category totals. Use --weekly or
--monthly for time-bucketed views, or --category for one category's
transactions.`,
	Run: summarizeFunc,
}

var (
	category string
	weekly   bool
	monthly  bool
	noExport bool
)

func init() {
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Print only this category's transactions")
	Cmd.Flags().BoolVarP(&weekly, "weekly", "w", false, "Print current and previous week totals")
	Cmd.Flags().BoolVarP(&monthly, "monthly", "m", false, "Print per-month income and expense totals")
	Cmd.Flags().BoolVar(&noExport, "no-export", false, "Skip writing the normalized JSON export")
}

func summarizeFunc(cmd *cobra.Command, args []string) {
	transactions, err := root.LoadTransactions()
	if err != nil {
		root.Log.Fatalf("Failed to load transactions: %v", err)
	}

	s := summary.New()
	out := os.Stdout

	switch {
	case category != "":
		summary.RenderCategoryTransactions(out, transactions, category)
	case weekly:
		summary.RenderWeekly(out, s.Weekly(transactions))
	case monthly:
		summary.RenderMonthly(out, s.Monthly(transactions))
	default:
		common.PrintFullSummary(out, s, transactions)
	}

	if noExport {
		return
	}
	if _, err := common.WriteExport(transactions); err != nil {
		root.Log.Fatalf("Failed to write export: %v", err)
	}
}
