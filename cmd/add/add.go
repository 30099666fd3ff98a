// Package add implements manual entry: inject a hand-entered transaction
// into the pipeline and print the resulting summary.
package add

import (
	"os"
	"time"

	"spendreport/cmd/common"
	"spendreport/cmd/root"
	"spendreport/internal/dateutils"
	"spendreport/internal/loader"
	"spendreport/internal/models"
	"spendreport/internal/summary"

	"github.com/spf13/cobra"
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a manual transaction and print the updated summary",
	Long: `Add records a hand-entered transaction, dated today, alongside the
parsed sources. Cash income that never hits a statement is the typical
use, so the category defaults to Cash Income. The entry is appended
after deduplication and is never collapsed into a parsed record.`,
	Run: addFunc,
}

var (
	description string
	amountStr   string
	category    string
)

func init() {
	Cmd.Flags().StringVarP(&description, "description", "n", "", "Transaction description")
	Cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "Signed amount, negative for money out")
	Cmd.Flags().StringVarP(&category, "category", "c", models.CategoryCashIncome, "Category label for the entry")
}

func addFunc(cmd *cobra.Command, args []string) {
	if description == "" {
		root.Log.Fatalf("--description is required")
	}

	// Reject bad amounts before touching anything: no record is created.
	amount, err := models.ParseStatementAmount(amountStr)
	if err != nil {
		root.Log.Fatalf("Invalid amount %q: no entry recorded", amountStr)
	}

	transactions, err := root.LoadTransactions()
	if err != nil {
		root.Log.Fatalf("Failed to load transactions: %v", err)
	}

	now := time.Now()
	entry := models.Transaction{
		Date:        dateutils.FormatStatementDate(now),
		Booked:      now,
		Description: description,
		Amount:      amount,
		Category:    category,
		Source:      models.SourceManual,
	}

	transactions = append(transactions, entry)
	loader.Sort(transactions)

	s := summary.New()
	common.PrintFullSummary(os.Stdout, s, transactions)

	if _, err := common.WriteExport(transactions); err != nil {
		root.Log.Fatalf("Failed to write export: %v", err)
	}
}
