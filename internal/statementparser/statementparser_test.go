package statementparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spendreport/internal/logging"
	"spendreport/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCategory(name string) Categorize {
	return func(string, decimal.Decimal) string { return name }
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseFile(t *testing.T) {
	content := `Posted Date,Description,Amount
06/20/2025,TACO BELL #4821,($8.50)
06/21/2025,PR PAYMENT ACME,"$1,500.00"
06/22/2025,CIRCLE K 123,-32.10`

	path := writeFile(t, "statement.csv", content)
	transactions, err := ParseFile(path, ',', fixedCategory("Test"), &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	first := transactions[0]
	assert.Equal(t, "06/20/2025", first.Date)
	assert.True(t, first.HasBookedDate())
	assert.Equal(t, "TACO BELL #4821", first.Description)
	assert.Equal(t, "-8.5", first.Amount.String())
	assert.Equal(t, "Test", first.Category)
	assert.Equal(t, models.SourceStatement, first.Source)

	assert.Equal(t, "1500", transactions[1].Amount.String())
	assert.Equal(t, "-32.1", transactions[2].Amount.String())
}

func TestParseAlternativeDateColumn(t *testing.T) {
	content := `Date,Description,Amount
06/20/2025,WALMART #4821,-40.00`

	transactions, err := Parse(strings.NewReader(content), ',', fixedCategory("Test"), &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "06/20/2025", transactions[0].Date)
	assert.True(t, transactions[0].HasBookedDate())
}

func TestParseExclusionMarkers(t *testing.T) {
	content := `Posted Date,Description,Amount
06/20/2025,AMAZON RETURN 99,40.00
06/21/2025,OVERDRAFT TRANSFER TO CHECKING,-25.00
06/22/2025,TRUIST ONLINE TRANSFER,-300.00`

	transactions, err := Parse(strings.NewReader(content), ',', fixedCategory("Test"), &logging.MockLogger{})
	require.NoError(t, err)

	// RETURN and OVERDRAFT TRANSFER rows are dropped; a bare TRANSFER stays.
	require.Len(t, transactions, 1)
	assert.Equal(t, "TRUIST ONLINE TRANSFER", transactions[0].Description)
}

func TestParseUnparsableDateKeepsRawString(t *testing.T) {
	content := `Posted Date,Description,Amount
pending,GECKOS GRILL,-20.00`

	logger := &logging.MockLogger{}
	transactions, err := Parse(strings.NewReader(content), ',', fixedCategory("Test"), logger)
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	assert.Equal(t, "pending", transactions[0].Date)
	assert.False(t, transactions[0].HasBookedDate())
	assert.True(t, logger.HasEntry("WARN", "Unparsable statement date, keeping raw string"))
}

func TestParseUnparsableAmountFallsBackToZero(t *testing.T) {
	content := `Posted Date,Description,Amount
06/20/2025,GECKOS GRILL,N/A`

	logger := &logging.MockLogger{}
	transactions, err := Parse(strings.NewReader(content), ',', fixedCategory("Test"), logger)
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	assert.True(t, transactions[0].Amount.IsZero())
	assert.True(t, logger.HasEntry("WARN", "Unparsable statement amount, using zero"))
}

func TestParseCategorizesDuringNormalization(t *testing.T) {
	content := `Posted Date,Description,Amount
06/20/2025,TACO BELL #4821,-8.50`

	var gotDesc string
	var gotAmount decimal.Decimal
	categorize := func(desc string, amount decimal.Decimal) string {
		gotDesc = desc
		gotAmount = amount
		return "Eating Out"
	}

	transactions, err := Parse(strings.NewReader(content), ',', categorize, &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	assert.Equal(t, "TACO BELL #4821", gotDesc)
	assert.Equal(t, "-8.5", gotAmount.String())
	assert.Equal(t, "Eating Out", transactions[0].Category)
}

func TestValidateFormat(t *testing.T) {
	valid := writeFile(t, "valid.csv", "Posted Date,Description,Amount\n06/20/2025,X,-1.00\n")
	ok, err := ValidateFormat(valid, ',', &logging.MockLogger{})
	require.NoError(t, err)
	assert.True(t, ok)

	alt := writeFile(t, "alt.csv", "Date,Description,Amount\n06/20/2025,X,-1.00\n")
	ok, err = ValidateFormat(alt, ',', &logging.MockLogger{})
	require.NoError(t, err)
	assert.True(t, ok)

	invalid := writeFile(t, "invalid.csv", "Foo,Bar\n1,2\n")
	ok, err = ValidateFormat(invalid, ',', &logging.MockLogger{})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ValidateFormat(filepath.Join(t.TempDir(), "missing.csv"), ',', &logging.MockLogger{})
	assert.Error(t, err)
}
