// Package dedupe collapses near-duplicate transactions that the two
// sources both report for the same real-world purchase.
//
// The key tolerates formatting differences (reference numbers, extra
// spaces) but will also collapse two genuinely distinct transactions that
// share a date, an amount, and a digit-stripped description. That is an
// accepted heuristic limitation; callers wanting stricter behavior can
// build their own key from the same pieces.
package dedupe

import (
	"regexp"
	"strings"

	"spendreport/internal/logging"
	"spendreport/internal/models"
)

var (
	digitsRe     = regexp.MustCompile(`\d+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Key identifies a transaction for deduplication purposes.
type Key struct {
	Date        string
	Amount      string
	Description string
}

// NormalizeDescription reduces a description to its dedup form: lowercase,
// digits stripped, whitespace runs collapsed, trimmed.
func NormalizeDescription(description string) string {
	normalized := strings.ToLower(description)
	normalized = digitsRe.ReplaceAllString(normalized, "")
	normalized = whitespaceRe.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// KeyOf computes the dedup key for a transaction. It is pure: equal inputs
// always produce equal keys.
func KeyOf(tx models.Transaction) Key {
	return Key{
		Date:        tx.Date,
		Amount:      tx.Amount.Round(2).String(),
		Description: NormalizeDescription(tx.Description),
	}
}

// Deduplicate returns the transactions with one record per unique key,
// preserving first-seen order. Every discard is logged; none is an error.
// Running Deduplicate on its own output changes nothing.
func Deduplicate(transactions []models.Transaction, logger logging.Logger) []models.Transaction {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	seen := make(map[Key]struct{}, len(transactions))
	deduped := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		key := KeyOf(tx)
		if _, ok := seen[key]; ok {
			logger.WithFields(
				logging.Field{Key: logging.FieldDate, Value: tx.Date},
				logging.Field{Key: logging.FieldDescription, Value: tx.Description},
				logging.Field{Key: logging.FieldAmount, Value: tx.Amount.StringFixed(2)},
				logging.Field{Key: logging.FieldSource, Value: tx.Source},
			).Info("Skipped duplicate transaction")
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, tx)
	}

	if dropped := len(transactions) - len(deduped); dropped > 0 {
		logger.WithField(logging.FieldCount, dropped).
			Debug("Removed duplicate transactions")
	}
	return deduped
}
