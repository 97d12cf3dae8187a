// Package parsererror defines the typed errors raised while loading, normalizing and
// summarizing a statement export.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDataset is wrapped by every EmptyDatasetError so callers can match it with errors.Is.
var ErrEmptyDataset = errors.New("dataset is empty")

// ParseError represents a field that could not be coerced to its canonical type
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Row    int // 1-based data row, 0 when unknown
	Err    error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: row %d: failed to parse %s='%s': %v",
			e.Parser, e.Row, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnError is returned when a required column is absent from the input header.
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("required column '%s' is missing", e.Column)
	}
	return fmt.Sprintf("required column '%s' is missing (available: %s)",
		e.Column, strings.Join(e.Available, ", "))
}

// EmptyDatasetError is returned by a reduction that has no rows to work on.
type EmptyDatasetError struct {
	Operation string
}

func (e *EmptyDatasetError) Error() string {
	if e.Operation == "" {
		return ErrEmptyDataset.Error()
	}
	return fmt.Sprintf("%s: %v", e.Operation, ErrEmptyDataset)
}

func (e *EmptyDatasetError) Unwrap() error {
	return ErrEmptyDataset
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
	Err                  error
}

func (e *InvalidFormatError) Error() string {
	source := e.FilePath
	if source == "" {
		source = "<input>"
	}
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			source, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		source, e.Msg, e.ExpectedFormat)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}
