// Package hexcodec converts between ASCII hex text and byte buffers.
//
// Decoding is strict: only [0-9a-fA-F] is accepted, with no prefix, separators or whitespace.
// Errors describe lengths and offsets only, never the offending input.
package hexcodec

import (
	"encoding/hex"
	"fmt"
)

// Decode converts hex text into bytes.
func Decode(text string) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidEncoding, len(text))
	}

	for idx := range len(text) {
		if !isHexDigit(text[idx]) {
			return nil, fmt.Errorf("%w: non-hex character at offset %d", ErrInvalidEncoding, idx)
		}
	}

	out := make([]byte, len(text)/2)

	// Input is already validated, the error path of hex.Decode is unreachable.
	if _, err := hex.Decode(out, []byte(text)); err != nil {
		return nil, ErrInvalidEncoding
	}

	return out, nil
}

// DecodeFixed decodes text and requires the result to be exactly size bytes.
// Encoding problems are reported before length problems.
func DecodeFixed(text string, size int) ([]byte, error) {
	out, err := Decode(text)
	if err != nil {
		return nil, err
	}

	if len(out) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(out), size)
	}

	return out, nil
}

// Encode returns the lowercase hex representation of data.
func Encode(data []byte) string {
	return hex.EncodeToString(data)
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
