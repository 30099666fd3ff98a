// Package categorize implements the one-off category lookup verb.
package categorize

import (
	"fmt"

	"spendreport/cmd/root"
	"spendreport/internal/models"
	"spendreport/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Look up the category for a description and amount",
	Long: `Categorize runs a single description and amount through the active rule
table and overrides, printing the resulting category. Use --seed to
write the active table to the rules file for editing.`,
	Run: categorizeFunc,
}

var (
	description string
	amountStr   string
	seed        bool
)

func init() {
	Cmd.Flags().StringVarP(&description, "description", "n", "", "Transaction description to categorize")
	Cmd.Flags().StringVarP(&amountStr, "amount", "a", "0", "Signed amount, negative for money out")
	Cmd.Flags().BoolVar(&seed, "seed", false, "Write the active rule table to the rules file and exit")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	if seed {
		seedRules()
		return
	}

	if description == "" {
		root.Log.Fatalf("--description is required")
	}

	amount, err := models.ParseStatementAmount(amountStr)
	if err != nil {
		root.Log.Fatalf("Invalid amount %q: %v", amountStr, err)
	}

	cat, err := root.NewCategorizer()
	if err != nil {
		root.Log.Fatalf("Failed to load category rules: %v", err)
	}

	fmt.Printf("Category: %s\n", cat.Categorize(description, amount))
}

// seedRules writes the currently active rule table (file if present, the
// built-in table otherwise) back to the rules file so it can be audited
// and edited.
func seedRules() {
	rules := store.NewRuleStore(root.Cfg.Categorize.RulesFile, root.Log)

	table, err := rules.LoadRules()
	if err != nil {
		root.Log.Fatalf("Failed to load category rules: %v", err)
	}
	if err := rules.SaveRules(table); err != nil {
		root.Log.Fatalf("Failed to write rules file: %v", err)
	}
	root.Log.Info("Wrote category rules file")
}
