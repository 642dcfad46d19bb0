package chartspec

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes pipeline failures so callers can tell input-shape
// problems apart from classification, assembly, and validation problems
// without string matching.
type ErrorKind string

const (
	// input-shape errors (parsers)
	ErrEmptyInput     ErrorKind = "empty_input"
	ErrNotAnArray     ErrorKind = "not_an_array"
	ErrInvalidElement ErrorKind = "invalid_element"
	ErrRaggedRow      ErrorKind = "ragged_row"

	// classification errors
	ErrNoNumericColumns ErrorKind = "no_numeric_columns"

	// assembly errors (explicit-form input)
	ErrLengthMismatch        ErrorKind = "length_mismatch"
	ErrDuplicateDatasetLabel ErrorKind = "duplicate_dataset_label"

	// validation errors
	ErrUnknownChartType          ErrorKind = "unknown_chart_type"
	ErrTooManySeriesForChartType ErrorKind = "too_many_series_for_chart_type"
	ErrStackingNotSupported      ErrorKind = "stacking_not_supported"
	ErrNoSeries                  ErrorKind = "no_series"
)

// Error is the single error type the pipeline produces. Every stage fails
// fast with the first Error it detects; none are retried because they are
// deterministic functions of the input.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errorf builds a categorized Error with a human-readable message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from err, or "" when err is not a pipeline
// Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
