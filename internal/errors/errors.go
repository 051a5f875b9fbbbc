// Package errors defines the error types report generation can surface.
// Lookup failures never appear here: a currency or stock that cannot be
// resolved is reported as an absent value, not an error.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a caller-supplied value that cannot be used,
// such as a reference date that does not parse.
type ErrInvalidArgument struct {
	Field   string
	Value   string
	Message string
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// ErrMalformedRecord reports a transaction row missing or misshaping a
// required field. It aborts the whole batch: a silently dropped row would
// corrupt totals unnoticed.
type ErrMalformedRecord struct {
	Row     int
	Field   string
	Message string
}

func (e *ErrMalformedRecord) Error() string {
	return fmt.Sprintf("malformed record at row %d, field %s: %s", e.Row, e.Field, e.Message)
}

// IsInvalidArgument reports whether err is an ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	var target *ErrInvalidArgument
	return errors.As(err, &target)
}

// IsMalformedRecord reports whether err is an ErrMalformedRecord.
func IsMalformedRecord(err error) bool {
	var target *ErrMalformedRecord
	return errors.As(err, &target)
}
