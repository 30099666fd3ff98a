// Package statementparser parses tabular bank statement exports into
// normalized transactions.
//
// Per-row failures never surface to the caller: a bad date keeps its raw
// string, a bad amount becomes zero, and both are logged.
package statementparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"spendreport/internal/dateutils"
	"spendreport/internal/logging"
	"spendreport/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Categorize assigns a category label from a description and signed
// amount. It is injected so the parser stays independent of the rule
// table.
type Categorize func(description string, amount decimal.Decimal) string

// exclusionMarkers drop a statement row before it is ever categorized.
// Bare "TRANSFER" is deliberately absent: transfers are kept and labeled,
// returns and overdraft shuffles are statement noise.
var exclusionMarkers = []string{"RETURN", "OVERDRAFT TRANSFER"}

// StatementRow is a single row of a statement export. The date column
// appears under either "Posted Date" or "Date" depending on the export
// vintage, so both are mapped.
type StatementRow struct {
	PostedDate  string `csv:"Posted Date"`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
}

// Parse reads statement CSV rows from r and returns normalized, categorized
// transactions.
func Parse(r io.Reader, delimiter rune, categorize Categorize, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.Comma = delimiter
		return cr
	})
	defer gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return csv.NewReader(in)
	})

	var rows []*StatementRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse statement CSV")
		return nil, fmt.Errorf("error parsing statement CSV: %w", err)
	}

	var transactions []models.Transaction
	for _, row := range rows {
		tx, keep := convertRow(*row, categorize, logger)
		if !keep {
			continue
		}
		transactions = append(transactions, tx)
	}

	logger.WithField(logging.FieldCount, len(transactions)).
		Debug("Parsed statement rows")
	return transactions, nil
}

// ParseFile parses a statement CSV file.
func ParseFile(filePath string, delimiter rune, categorize Categorize, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.WithField(logging.FieldFile, filePath).Info("Loading statement CSV")

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, fmt.Errorf("error opening statement CSV: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file, delimiter, categorize, logger)
}

// convertRow normalizes one raw row. The second return value is false when
// the row is empty or carries an exclusion marker.
func convertRow(row StatementRow, categorize Categorize, logger logging.Logger) (models.Transaction, bool) {
	dateStr := row.PostedDate
	if dateStr == "" {
		dateStr = row.Date
	}
	description := strings.TrimSpace(row.Description)

	if dateStr == "" && description == "" && row.Amount == "" {
		return models.Transaction{}, false
	}

	tx := models.Transaction{
		Description: description,
		Source:      models.SourceStatement,
	}

	if booked, err := dateutils.ParseStatementDate(dateStr); err == nil {
		tx.Booked = booked
		tx.Date = dateutils.FormatStatementDate(booked)
	} else {
		// Keep the raw string for display; the zero Booked sorts first.
		tx.Date = dateStr
		logger.WithFields(
			logging.Field{Key: logging.FieldDate, Value: dateStr},
			logging.Field{Key: logging.FieldDescription, Value: description},
		).Warn("Unparsable statement date, keeping raw string")
	}

	amount, err := models.ParseStatementAmount(row.Amount)
	if err != nil {
		logger.WithError(err).WithFields(
			logging.Field{Key: logging.FieldDescription, Value: description},
		).Warn("Unparsable statement amount, using zero")
		amount = decimal.Zero
	}
	tx.Amount = amount

	descUpper := strings.ToUpper(description)
	for _, marker := range exclusionMarkers {
		if strings.Contains(descUpper, marker) {
			logger.WithFields(
				logging.Field{Key: logging.FieldDescription, Value: description},
				logging.Field{Key: logging.FieldReason, Value: marker},
			).Debug("Dropping excluded statement row")
			return models.Transaction{}, false
		}
	}

	tx.Category = categorize(description, amount)
	return tx, true
}

// ValidateFormat checks whether the file has the statement export header:
// Description, Amount, and one of Posted Date or Date.
func ValidateFormat(filePath string, delimiter rune, logger logging.Logger) (bool, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = delimiter

	header, err := reader.Read()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading CSV header: %w", err)
	}

	columns := make(map[string]bool, len(header))
	for _, col := range header {
		columns[strings.TrimSpace(col)] = true
	}

	hasDate := columns["Posted Date"] || columns["Date"]
	return hasDate && columns["Description"] && columns["Amount"], nil
}
