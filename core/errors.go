// Package core holds the error type and interfaces shared across the
// solver's sub-packages.
package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// LogicError represents an error raised by one of the solver's
// sub-systems (parsing, normalization, DAG lowering, ...).
type LogicError struct {
	System   string
	Op       string
	Message  string
	Position int
}

func (e *LogicError) Error() string {
	if e.System != "" {
		return fmt.Sprintf("logic error in %s.%s: %s", e.System, e.Op, e.Message)
	}
	return fmt.Sprintf("logic error in %s: %s", e.Op, e.Message)
}

// NewLogicError builds a LogicError identifying the sub-system and
// operation that failed.
func NewLogicError(system, operation, message string) *LogicError {
	return &LogicError{
		System:  system,
		Op:      operation,
		Message: message,
	}
}

// Invariant wraps an internal invariant violation (an unexpected node
// type reaching a stage that assumed it had already been eliminated,
// and similar impossible states) with a causal chain, so callers can
// recover the underlying LogicError via errors.Cause while still
// logging the full wrap trail.
func Invariant(system, operation, message string) error {
	return errors.Wrap(NewLogicError(system, operation, message), "internal invariant violation")
}

// AsLogicError unwraps err looking for a *LogicError, following any
// pkg/errors wrap chain produced by Invariant.
func AsLogicError(err error) (*LogicError, bool) {
	le, ok := errors.Cause(err).(*LogicError)
	return le, ok
}
