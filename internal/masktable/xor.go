package masktable

// Combine returns the byte-wise XOR of a and b, which must have equal length.
func Combine(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, &LengthMismatchError{A: len(a), B: len(b)}
	}

	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}

	return out, nil
}
