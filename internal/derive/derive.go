// Package derive computes the unlock key for the ECU seed/key security-access exchange.
//
// The key is AES-128-CMAC(secret key, seed XOR mask), where the mask is selected by
// device and security level from a masktable.Table. The operand order is fixed: the
// shared secret is always the CMAC key and the masked seed is always the message.
package derive

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/idelchi/seed2key/internal/cmac"
	"github.com/idelchi/seed2key/internal/hexcodec"
	"github.com/idelchi/seed2key/internal/masktable"
)

const (
	// SeedSize is the seed length in bytes.
	SeedSize = 16
	// KeySize is the shared secret length in bytes.
	KeySize = cmac.KeySize
)

// Request is a single derivation request. Seed and Key are hex text.
type Request struct {
	Seed   string
	Key    string
	Device masktable.Device
	Level  masktable.Level
}

// MaskSource resolves the mask for a device and security level.
// *masktable.Table is the production implementation.
type MaskSource interface {
	Lookup(device masktable.Device, level masktable.Level) ([]byte, bool)
}

// Deriver runs derivations against a shared, read-only mask source.
// It holds no per-request state and is safe for concurrent use.
type Deriver struct {
	masks  MaskSource
	logger *slog.Logger
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithLogger sets the logger used for state transitions.
// Only device, level, state and operand lengths are logged.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deriver) {
		d.logger = logger
	}
}

// New creates a Deriver resolving masks from masks.
func New(masks MaskSource, opts ...Option) *Deriver {
	deriver := &Deriver{
		masks:  masks,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(deriver)
	}

	return deriver
}

// Masks returns the mask source the Deriver was created with.
func (d *Deriver) Masks() MaskSource {
	return d.masks
}

// Derive returns the lowercase hex unlock key for req.
// Every failure is an *Error naming the state it occurred in.
func (d *Deriver) Derive(req Request) (string, error) {
	mac, err := d.DeriveBytes(req)
	if err != nil {
		return "", err
	}

	return hexcodec.Encode(mac), nil
}

// DeriveBytes is Derive without the final hex encoding.
func (d *Deriver) DeriveBytes(req Request) ([]byte, error) {
	logger := d.logger.With(slog.String("device", string(req.Device)), slog.Any("security_level", req.Level))

	state := Start
	fail := func(err error) ([]byte, error) {
		logger.Debug("derivation failed", slog.String("state", state.String()))

		return nil, &Error{State: state, Err: err}
	}
	advance := func(next State, attrs ...any) {
		state = next
		logger.Debug("derivation state", append([]any{slog.String("state", state.String())}, attrs...)...)
	}

	seed, err := hexcodec.DecodeFixed(req.Seed, SeedSize)
	if err != nil {
		return fail(err)
	}

	advance(SeedDecoded, slog.Int("seed_len", len(seed)))

	key, err := hexcodec.DecodeFixed(req.Key, KeySize)
	if err != nil {
		return fail(err)
	}

	advance(KeyDecoded, slog.Int("key_len", len(key)))

	mask, ok := d.masks.Lookup(req.Device, req.Level)
	if !ok {
		return fail(fmt.Errorf("%w: no entry for device %q level %d", ErrMaskNotFound, req.Device, req.Level))
	}

	advance(MaskResolved, slog.Int("mask_len", len(mask)))

	masked, err := masktable.Combine(seed, mask)
	if err != nil {
		if errors.Is(err, masktable.ErrLengthMismatch) {
			err = fmt.Errorf("%w: %w", ErrMaskLengthMismatch, err)
		}

		return fail(err)
	}

	advance(Masked)

	mac, err := cmac.Compute(key, masked)
	if err != nil {
		return fail(err)
	}

	advance(Computed, slog.Int("mac_len", len(mac)))
	advance(Done)

	return mac, nil
}
