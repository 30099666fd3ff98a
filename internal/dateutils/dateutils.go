// Package dateutils provides the date layouts and calendar bucketing used
// by the transaction pipeline.
package dateutils

import (
	"fmt"
	"time"
)

// Date layouts for the two input sources and the export.
const (
	// LayoutStatement is the month/day/year layout used by statement
	// exports and by the normalized export ("01/02/2006").
	LayoutStatement = "01/02/2006"

	// LayoutFeed is the ISO layout used by the aggregator feed.
	LayoutFeed = "2006-01-02"

	// LayoutStamp is the compact layout used in export filenames.
	LayoutStamp = "01022006"
)

// ParseStatementDate parses a statement date string (MM/DD/YYYY).
func ParseStatementDate(dateStr string) (time.Time, error) {
	return time.Parse(LayoutStatement, dateStr)
}

// ParseFeedDate parses an aggregator feed date string (YYYY-MM-DD).
func ParseFeedDate(dateStr string) (time.Time, error) {
	return time.Parse(LayoutFeed, dateStr)
}

// FormatStatementDate renders a time as MM/DD/YYYY.
func FormatStatementDate(t time.Time) string {
	return t.Format(LayoutStatement)
}

// WeekKey identifies an ISO-8601 week.
type WeekKey struct {
	Year int
	Week int
}

// ISOWeek returns the ISO week bucket for a date.
func ISOWeek(t time.Time) WeekKey {
	year, week := t.ISOWeek()
	return WeekKey{Year: year, Week: week}
}

// MonthKey identifies a calendar month. The zero value is used for records
// whose date could not be parsed.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month bucket for a date.
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Display renders a month key as "January 2006", or "unknown" for the zero
// key.
func (k MonthKey) Display() string {
	if k == (MonthKey{}) {
		return "unknown"
	}
	return fmt.Sprintf("%s %d", k.Month.String(), k.Year)
}

// Before orders month keys chronologically, with the zero (unknown) key
// first.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Before orders week keys chronologically.
func (k WeekKey) Before(other WeekKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Week < other.Week
}
