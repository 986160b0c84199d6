package cmac

import "errors"

// ErrInvalidKeyLength is returned when the key is not exactly KeySize bytes.
var ErrInvalidKeyLength = errors.New("invalid key length")
