// Package feedparser parses the aggregator's JSON transaction feed into
// normalized transactions.
//
// The feed's sign convention is asserted by configuration rather than
// assumed: amounts either match the statement convention ("bank") or are
// negated on ingest ("aggregator", where the feed reports outflows as
// positive). The applied convention is logged once per file so a mismatch
// shows up instead of silently flipping every total.
package feedparser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"spendreport/internal/config"
	"spendreport/internal/dateutils"
	"spendreport/internal/logging"
	"spendreport/internal/models"

	"github.com/shopspring/decimal"
)

// Categorize assigns a category label from a description and signed amount.
type Categorize func(description string, amount decimal.Decimal) string

// FeedRecord is one object of the aggregator feed.
type FeedRecord struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Name   string          `json:"name"`
}

// Parse reads the feed from r and returns normalized, categorized
// transactions. invertSign negates every amount (the "aggregator"
// convention).
func Parse(r io.Reader, invertSign bool, categorize Categorize, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	var records []FeedRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		logger.WithError(err).Error("Failed to decode aggregator feed")
		return nil, fmt.Errorf("error decoding aggregator feed: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		tx := models.Transaction{
			Description: record.Name,
			Amount:      record.Amount,
			Source:      models.SourceFeed,
		}
		if invertSign {
			tx.Amount = tx.Amount.Neg()
		}

		if booked, err := dateutils.ParseFeedDate(record.Date); err == nil {
			tx.Booked = booked
			tx.Date = dateutils.FormatStatementDate(booked)
		} else {
			tx.Date = record.Date
			logger.WithFields(
				logging.Field{Key: logging.FieldDate, Value: record.Date},
				logging.Field{Key: logging.FieldDescription, Value: record.Name},
			).Warn("Unparsable feed date, keeping raw string")
		}

		tx.Category = categorize(tx.Description, tx.Amount)
		transactions = append(transactions, tx)
	}

	logger.WithField(logging.FieldCount, len(transactions)).
		Debug("Parsed aggregator feed records")
	return transactions, nil
}

// ParseFile parses an aggregator feed file using the configured sign
// convention.
func ParseFile(filePath, signConvention string, categorize Categorize, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	invertSign := signConvention == config.SignConventionAggregator
	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: "sign_convention", Value: signConvention},
	).Info("Loading aggregator feed")

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, fmt.Errorf("error opening aggregator feed: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file, invertSign, categorize, logger)
}

// FindLatest returns the most-recently-modified file in dir matching
// pattern (a filepath glob such as "plaid_*.json"). It returns
// os.ErrNotExist when nothing matches.
func FindLatest(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("bad feed pattern %q: %w", pattern, err)
	}

	latest := ""
	var latestMod int64
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		if latest == "" || info.ModTime().UnixNano() > latestMod {
			latest = match
			latestMod = info.ModTime().UnixNano()
		}
	}

	if latest == "" {
		return "", os.ErrNotExist
	}
	return latest, nil
}
