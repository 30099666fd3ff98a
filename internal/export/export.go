// Package export writes the normalized transaction set to a date-stamped
// JSON file and re-ingests such files.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spendreport/internal/dateutils"
	"spendreport/internal/fileutils"
	"spendreport/internal/logging"
	"spendreport/internal/models"

	"github.com/shopspring/decimal"
)

// Record is one exported transaction. DisplayDate duplicates Date for
// records whose source date parsed; it is omitted otherwise.
type Record struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	DisplayDate string          `json:"display_date,omitempty"`
}

// Filename returns the export filename for a given day, e.g.
// "transactions_06202025.json".
func Filename(now time.Time) string {
	return fmt.Sprintf("transactions_%s.json", now.Format(dateutils.LayoutStamp))
}

// Write serializes the transactions into dir, stamped with now's date, and
// returns the written path.
func Write(transactions []models.Transaction, dir string, now time.Time, logger logging.Logger) (string, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	records := make([]Record, 0, len(transactions))
	for _, tx := range transactions {
		record := Record{
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      tx.Amount,
			Category:    tx.Category,
		}
		if tx.HasBookedDate() {
			record.DisplayDate = dateutils.FormatStatementDate(tx.Booked)
		}
		records = append(records, record)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}

	path := filepath.Join(dir, Filename(now))
	if err := fileutils.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Info("Saved normalized export")
	return path, nil
}

// ReadFile re-ingests a normalized export. Categories are read back as
// stored; re-running the categorizer over the result must reproduce them,
// since categorization depends only on description and amount.
func ReadFile(filePath string, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		tx := models.Transaction{
			Date:        record.Date,
			Description: record.Description,
			Amount:      record.Amount,
			Category:    record.Category,
			Source:      models.SourceExport,
		}
		if booked, err := dateutils.ParseStatementDate(record.Date); err == nil {
			tx.Booked = booked
		}
		transactions = append(transactions, tx)
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Debug("Re-ingested normalized export")
	return transactions, nil
}
