package masktable

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned for malformed or duplicate mask table entries.
	ErrConfiguration = errors.New("mask table configuration error")
	// ErrLengthMismatch is returned when XOR operands differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
)

// ConfigError describes a rejected mask table line.
// It carries the line number and a reason, never the mask text.
type ConfigError struct {
	// Line is the 1-based line number, or 0 for table-wide problems.
	Line int
	// Reason describes what is wrong with the line.
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v: %s", ErrConfiguration, e.Reason)
	}

	return fmt.Sprintf("%v: line %d: %s", ErrConfiguration, e.Line, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// LengthMismatchError reports the lengths of two XOR operands that differ.
type LengthMismatchError struct {
	A, B int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v, a: %d, b: %d", ErrLengthMismatch, e.A, e.B)
}

// Is reports whether target is ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}
