/*
errors.go - Centralized error types for the attendance engine

PURPOSE:
  All error types in one place for consistency and discoverability.

ERROR CATEGORIES:
  1. Format errors - malformed date or time strings
  2. Range errors - out-of-bound offsets, negative durations, bad minutes
  3. Precondition errors - an engine entry point received a record that
     should have been rejected by Validate first

USAGE:
  Engine entry points return *PreconditionError wrapping the structural
  cause, so both checks work:

    if errors.Is(err, attendance.ErrPrecondition) { ... }
    var fe *attendance.FormatError
    if errors.As(err, &fe) { ... }

  Validate never returns an error; it collects messages instead.

SEE ALSO:
  - validate.go: Collecting validator
  - record.go: First-failure structural checks used by the engine
*/
package attendance

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrFormat is returned for a date or time string that does not parse.
	ErrFormat = errors.New("malformed value")

	// ErrRange is returned for a well-formed value outside its allowed bounds.
	ErrRange = errors.New("value out of range")

	// ErrPrecondition is returned when the engine is handed an invalid record.
	ErrPrecondition = errors.New("record failed engine precondition")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// FormatError describes a string that does not match its expected format.
type FormatError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// RangeError describes a numeric value outside its bounds.
type RangeError struct {
	Field  string
	Value  int
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range: %s", e.Field, e.Value, e.Reason)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// PreconditionError identifies the offending record and carries the first
// structural problem found in it.
type PreconditionError struct {
	Index int // position in the input slice
	Date  string
	Err   error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("record %d (%s): %v", e.Index, e.Date, e.Err)
}

func (e *PreconditionError) Unwrap() []error { return []error{ErrPrecondition, e.Err} }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrFormat) ||
		errors.Is(err, ErrRange) ||
		errors.Is(err, ErrPrecondition)
}
