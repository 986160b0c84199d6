package derive

import (
	"errors"
	"fmt"
)

var (
	// ErrMaskNotFound is returned when the table has no mask for the requested device and level.
	ErrMaskNotFound = errors.New("mask not found")
	// ErrMaskLengthMismatch is returned when a configured mask does not match the seed length.
	ErrMaskLengthMismatch = errors.New("mask length mismatch")
)

// Error records the pipeline state a derivation failed in.
// Err is the underlying error kind; errors.Is and errors.As see through Error.
type Error struct {
	State State
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.State.action(), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
