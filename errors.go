package valijson

import (
	"errors"
	"fmt"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTypeMismatch     = "type_mismatch"
	CodeUnsupportedValue = "unsupported_value"
)

// ErrTypeMismatch reports a view constructed over a value whose kind does not
// match the requested container kind. It marks a caller-side contract
// violation, not a data-quality outcome: callers escalate it immediately
// instead of retrying or defaulting.
var ErrTypeMismatch = errors.New(CodeTypeMismatch)

// ErrUnsupportedValue reports that a freeze met a native node kind the
// backend contract does not define. Like ErrTypeMismatch it signals a
// programming error and aborts the current operation.
var ErrUnsupportedValue = errors.New(CodeUnsupportedValue)

// TypeMismatch builds an ErrTypeMismatch describing the requested and actual
// kinds. Backends use it from their view constructors.
func TypeMismatch(want, got Kind) error {
	return fmt.Errorf("%w: want %s, got %s", ErrTypeMismatch, want, got)
}

// UnsupportedValue builds an ErrUnsupportedValue naming the backend and the
// offending native node. Backends call it from Freeze.
func UnsupportedValue(backend string, native any) error {
	return fmt.Errorf("%w: backend %s cannot freeze %T", ErrUnsupportedValue, backend, native)
}
