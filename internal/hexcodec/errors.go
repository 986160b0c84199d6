package hexcodec

import "errors"

var (
	// ErrInvalidEncoding is returned for odd-length input or input containing a non-hex character.
	ErrInvalidEncoding = errors.New("invalid hex encoding")
	// ErrInvalidLength is returned when well-formed input decodes to the wrong number of bytes.
	ErrInvalidLength = errors.New("invalid operand length")
)
