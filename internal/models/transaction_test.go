package models

import (
	"errors"
	"testing"
	"time"

	"spendreport/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseStatementAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "42.50", want: "42.5"},
		{name: "currency symbol", input: "$42.50", want: "42.5"},
		{name: "thousands separator", input: "$1,234.56", want: "1234.56"},
		{name: "negative sign", input: "-17.25", want: "-17.25"},
		{name: "parenthetical negative", input: "(45.00)", want: "-45"},
		{name: "parenthetical with symbol", input: "($1,045.00)", want: "-1045"},
		{name: "surrounding whitespace", input: "  12.00 ", want: "12"},
		{name: "garbage", input: "N/A", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatementAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				var parseErr *parsererror.ParseError
				assert.True(t, errors.As(err, &parseErr))
				assert.True(t, got.IsZero(), "failed parse should return zero")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTransactionString(t *testing.T) {
	tx := Transaction{
		Date:        "06/15/2025",
		Description: "TACO BELL #123",
		Amount:      decimal.NewFromFloat(-8.5),
		Category:    "Eating Out",
	}
	assert.Equal(t, "06/15/2025 | TACO BELL #123 | $-8.50 | Eating Out", tx.String())
}

func TestHasBookedDate(t *testing.T) {
	var tx Transaction
	assert.False(t, tx.HasBookedDate())

	tx.Booked = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, tx.HasBookedDate())
}

func TestDefaultRulesShape(t *testing.T) {
	rules := DefaultRules()
	assert.NotEmpty(t, rules)

	last := rules[len(rules)-1]
	assert.Equal(t, CategoryMiscellaneous, last.Name)
	assert.Empty(t, last.Keywords, "fallback category must not have keywords")
}
