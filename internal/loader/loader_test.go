package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"spendreport/internal/config"
	"spendreport/internal/logging"
	"spendreport/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementCSV = `Posted Date,Description,Amount
06/18/2025,TACO BELL #1234,-8.50
06/10/2025,ACME PAYROLL,1500.00
`

const feedJSON = `[
  {"date": "2025-06-20", "amount": -41.20, "name": "ALDI 73011"}
]`

func fixedCategory(name string) Categorize {
	return func(string, decimal.Decimal) string { return name }
}

func testConfig(dir string) *config.Config {
	cfg := &config.Config{}
	cfg.Data.Directory = dir
	cfg.CSV.Delimiter = ","
	cfg.Feed.Pattern = "plaid_*.json"
	cfg.Feed.SignConvention = config.SignConventionBank
	return cfg
}

func TestLoadMergesStatementsAndFeed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "truist.csv"), []byte(statementCSV), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plaid_20250620.json"), []byte(feedJSON), 0600))

	transactions, err := Load(testConfig(dir), fixedCategory("Test"), &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	// Sorted ascending by booked date across both sources.
	assert.Equal(t, "ACME PAYROLL", transactions[0].Description)
	assert.Equal(t, "TACO BELL #1234", transactions[1].Description)
	assert.Equal(t, "ALDI 73011", transactions[2].Description)
	assert.Equal(t, models.SourceFeed, transactions[2].Source)
}

func TestLoadPicksLatestFeed(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "plaid_old.json")
	latest := filepath.Join(dir, "plaid_new.json")
	require.NoError(t, os.WriteFile(old, []byte(`[{"date": "2025-06-01", "amount": -1, "name": "OLD"}]`), 0600))
	require.NoError(t, os.WriteFile(latest, []byte(`[{"date": "2025-06-02", "amount": -2, "name": "NEW"}]`), 0600))
	require.NoError(t, os.Chtimes(old, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour)))

	transactions, err := Load(testConfig(dir), fixedCategory("Test"), &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "NEW", transactions[0].Description)
}

func TestLoadSkipsForeignCSV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "truist.csv"), []byte(statementCSV), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.csv"), []byte("a,b\n1,2\n"), 0600))

	transactions, err := Load(testConfig(dir), fixedCategory("Test"), &logging.MockLogger{})
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestLoadMissingFeedIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "truist.csv"), []byte(statementCSV), 0600))

	logger := &logging.MockLogger{}
	transactions, err := Load(testConfig(dir), fixedCategory("Test"), logger)
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.True(t, logger.HasEntry("INFO", "No aggregator feed found, continuing with statements only"))
}

func TestLoadMissingDirectoryYieldsEmptySet(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "does-not-exist"))
	transactions, err := Load(cfg, fixedCategory("Test"), &logging.MockLogger{})
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestSortPutsUnknownDatesFirst(t *testing.T) {
	known := models.Transaction{Date: "06/18/2025", Booked: time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)}
	unknown := models.Transaction{Date: "pending"}

	transactions := []models.Transaction{known, unknown}
	Sort(transactions)
	assert.Equal(t, "pending", transactions[0].Date)
}
