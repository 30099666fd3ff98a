// Package parsererror defines the typed errors raised while normalizing
// raw transaction input.
package parsererror

import "fmt"

// ParseError represents a failure to parse a single field of a raw record.
// These are absorbed by the callers: a bad field falls back to a sentinel
// value and the batch continues.
type ParseError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError indicates that an input file does not look like the
// format its parser expects.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
