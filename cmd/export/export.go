// Package export implements the export-only verb: run the full pipeline
// and write the normalized JSON file without printing summaries.
package export

import (
	"fmt"

	"spendreport/cmd/common"
	"spendreport/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Ingest all sources and write the normalized JSON export",
	Long: `Export runs the same ingest, categorization and deduplication steps as
summarize but only writes the date-stamped JSON file, printing nothing
but its path.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	transactions, err := root.LoadTransactions()
	if err != nil {
		root.Log.Fatalf("Failed to load transactions: %v", err)
	}

	path, err := common.WriteExport(transactions)
	if err != nil {
		root.Log.Fatalf("Failed to write export: %v", err)
	}
	fmt.Println(path)
}
