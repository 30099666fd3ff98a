// Package categorizer assigns a spending/income category to a transaction
// from its description and amount.
//
// Evaluation is an override chain followed by an ordered rule-table scan,
// first match wins:
//
//  1. paycheck keywords
//  2. "RETURN" with a negative amount -> Refunds
//  3. absolute amount equal to the rent amount -> Rent/Utilities
//  4. "TRANSFER" anywhere -> Transfers
//  5. the rule table, top to bottom
//  6. Miscellaneous
//
// The overrides exist because substring rules alone misclassify paychecks,
// refunds, a recurring fixed-amount rent payment, and generic transfers.
package categorizer

import (
	"strings"

	"spendreport/internal/logging"
	"spendreport/internal/models"

	"github.com/shopspring/decimal"
)

// paycheckKeywords are checked before everything else. A description that
// looks like a paycheck is one no matter what the rule table says.
var paycheckKeywords = []string{
	"PAYROLL",
	"MOBILE DEPOSIT",
	"PAYCHECK",
	"SALARY",
	"DIRECT DEPOSIT",
	"GUSTO PAY",
}

// Categorizer maps (description, amount) to exactly one category label.
// It is pure and deterministic: the same inputs always produce the same
// label.
type Categorizer struct {
	rules      models.RuleSet
	rentAmount decimal.Decimal
	logger     logging.Logger
}

// New creates a Categorizer over the given ordered rule table. rentAmount
// is the fixed recurring payment matched by the rent override; pass zero
// to disable it.
func New(rules models.RuleSet, rentAmount decimal.Decimal, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Categorizer{
		rules:      rules,
		rentAmount: rentAmount,
		logger:     logger,
	}
}

// Categorize returns the category label for a transaction. It is total:
// every input yields a label, Miscellaneous when nothing matches.
func (c *Categorizer) Categorize(description string, amount decimal.Decimal) string {
	descUpper := strings.ToUpper(description)

	// 1) Paycheck keywords beat the table
	for _, keyword := range paycheckKeywords {
		if strings.Contains(descUpper, keyword) {
			c.debugMatch(description, keyword, models.CategoryPaychecks)
			return models.CategoryPaychecks
		}
	}

	// 2) Returns are refunds only when money actually left and came back
	if strings.Contains(descUpper, "RETURN") && amount.IsNegative() {
		c.debugMatch(description, "RETURN", models.CategoryRefunds)
		return models.CategoryRefunds
	}

	// 3) The rent payment is a fixed amount with an unhelpful description
	if !c.rentAmount.IsZero() && amount.Abs().Equal(c.rentAmount) {
		c.debugMatch(description, "rent amount", models.CategoryRent)
		return models.CategoryRent
	}

	// 4) Anything mentioning a transfer is a transfer
	if strings.Contains(descUpper, "TRANSFER") {
		c.debugMatch(description, "TRANSFER", models.CategoryTransfers)
		return models.CategoryTransfers
	}

	// 5) Ordered table scan, first match wins
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(descUpper, strings.ToUpper(keyword)) {
				c.debugMatch(description, keyword, rule.Name)
				return rule.Name
			}
		}
	}

	// 6) Default
	return models.CategoryMiscellaneous
}

func (c *Categorizer) debugMatch(description, keyword, category string) {
	c.logger.WithFields(
		logging.Field{Key: logging.FieldDescription, Value: description},
		logging.Field{Key: "keyword", Value: keyword},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Transaction categorized")
}
