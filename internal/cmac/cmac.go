// Package cmac computes AES-128-CMAC (NIST SP 800-38B, RFC 4493).
//
// The block cipher mode itself comes from Tink's PRF primitives. This package pins the
// key size to AES-128 and the output to one full cipher block.
package cmac

import (
	"fmt"

	"github.com/tink-crypto/tink-go/v2/prf/subtle"
)

const (
	// KeySize is the AES-128 key size in bytes.
	KeySize = 16
	// Size is the CMAC output size in bytes.
	Size = 16
)

// Compute returns the 16-byte AES-128-CMAC of message under key.
// Identical inputs always produce identical output and no state is kept between calls.
func Compute(key, message []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}

	prf, err := subtle.NewAESCMACPRF(key)
	if err != nil {
		return nil, fmt.Errorf("creating AES-CMAC: %w", err)
	}

	tag, err := prf.ComputePRF(message, Size)
	if err != nil {
		return nil, fmt.Errorf("computing AES-CMAC: %w", err)
	}

	return tag, nil
}
