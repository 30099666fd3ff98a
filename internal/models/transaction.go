// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"
	"time"

	"spendreport/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Source identifies where a transaction record came from. It is carried for
// provenance and logging only and never influences categorization.
type Source string

const (
	// SourceStatement marks records parsed from a tabular statement export.
	SourceStatement Source = "statement"
	// SourceFeed marks records parsed from the aggregator's JSON feed.
	SourceFeed Source = "feed"
	// SourceManual marks records entered by hand on the command line.
	SourceManual Source = "manual"
	// SourceExport marks records re-ingested from a normalized export.
	SourceExport Source = "export"
)

// Transaction is the normalized record shape shared by every source.
//
// Amount follows the statement sign convention: negative means money
// leaving the account, positive means money coming in.
type Transaction struct {
	// Date is the display date. When the source date parsed cleanly it is
	// the MM/DD/YYYY rendering of Booked; otherwise the raw source string
	// is kept so nothing is lost.
	Date string

	// Booked is the parsed calendar date. The zero value means the source
	// date was unparsable; such records sort before everything else.
	Booked time.Time

	// Description is the merchant/memo text exactly as the source provided
	// it. Matching against it is always case-insensitive.
	Description string

	// Amount is the signed amount. Unparsable amounts normalize to zero,
	// never to an error.
	Amount decimal.Decimal

	// Category is the single label assigned by the categorizer.
	Category string

	// Source records which input produced this transaction.
	Source Source
}

// HasBookedDate reports whether the source date parsed successfully.
func (t *Transaction) HasBookedDate() bool {
	return !t.Booked.IsZero()
}

// IsExpense reports whether the amount is negative (money leaving the
// account).
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// String renders the transaction the way the summaries print it.
func (t *Transaction) String() string {
	return fmt.Sprintf("%s | %s | $%s | %s",
		t.Date, t.Description, t.Amount.StringFixed(2), t.Category)
}

// ParseStatementAmount parses an amount string as found in statement
// exports: an optional currency symbol, thousands separators, and
// parenthetical-negative notation ("(45.00)" means -45.00).
func ParseStatementAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, " ", "")

	negative := false
	if strings.HasPrefix(amount, "(") && strings.HasSuffix(amount, ")") {
		negative = true
		amount = strings.TrimSuffix(strings.TrimPrefix(amount, "("), ")")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{
			Source: "statement",
			Field:  "Amount",
			Value:  amountStr,
			Err:    err,
		}
	}
	if negative {
		dec = dec.Neg()
	}
	return dec, nil
}
