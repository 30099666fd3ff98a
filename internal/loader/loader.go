// Package loader assembles the full transaction set: every statement CSV
// in the data directory plus the latest aggregator feed, merged,
// deduplicated upstream of nothing (dedupe is the caller's step), and
// sorted by booked date.
package loader

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"spendreport/internal/config"
	"spendreport/internal/feedparser"
	"spendreport/internal/fileutils"
	"spendreport/internal/logging"
	"spendreport/internal/models"
	"spendreport/internal/parsererror"
	"spendreport/internal/statementparser"

	"github.com/shopspring/decimal"
)

// Categorize assigns a category label from a description and signed amount.
type Categorize func(description string, amount decimal.Decimal) string

// Load reads every recognizable statement CSV in cfg.Data.Directory and the
// most recent aggregator feed matching cfg.Feed.Pattern, and returns the
// merged set sorted ascending by booked date. Records without a booked
// date sort first. A missing feed or data directory is not an error.
func Load(cfg *config.Config, categorize Categorize, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	delimiter := rune(cfg.CSV.Delimiter[0])

	var transactions []models.Transaction

	csvFiles, err := fileutils.ListFilesWithExtension(cfg.Data.Directory, ".csv")
	if err != nil {
		return nil, fmt.Errorf("error scanning data directory: %w", err)
	}
	for _, path := range csvFiles {
		ok, err := statementparser.ValidateFormat(path, delimiter, logger)
		if err != nil {
			logger.WithError(err).WithField(logging.FieldFile, path).
				Warn("Skipping unreadable CSV")
			continue
		}
		if !ok {
			logger.WithError(&parsererror.InvalidFormatError{
				FilePath:       path,
				ExpectedFormat: "Posted Date or Date, Description, Amount columns",
				Msg:            "statement header not found",
			}).Debug("Skipping CSV without statement header")
			continue
		}

		parsed, err := statementparser.ParseFile(path, delimiter, statementparser.Categorize(categorize), logger)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, parsed...)
	}

	feedPath, err := feedparser.FindLatest(cfg.Data.Directory, cfg.Feed.Pattern)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.WithField("pattern", cfg.Feed.Pattern).
			Info("No aggregator feed found, continuing with statements only")
	case err != nil:
		return nil, err
	default:
		parsed, err := feedparser.ParseFile(feedPath, cfg.Feed.SignConvention, feedparser.Categorize(categorize), logger)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, parsed...)
	}

	Sort(transactions)

	logger.WithField(logging.FieldCount, len(transactions)).
		Info("Loaded transactions")
	return transactions, nil
}

// Sort orders transactions ascending by booked date, in place. Records
// whose date never parsed carry the zero time and therefore sort before
// everything else. The sort is stable so same-day records keep their
// source order.
func Sort(transactions []models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Booked.Before(transactions[j].Booked)
	})
}
