// Package logic implements the command bodies: single and batch derivation,
// mask table listing and checking.
package logic

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/idelchi/seed2key/internal/config"
	"github.com/idelchi/seed2key/internal/derive"
	"github.com/idelchi/seed2key/internal/masktable"
)

// ErrNoKey is returned when no source supplies the shared secret.
var ErrNoKey = errors.New("no key given: use --key, --key-file, SEED2KEY_KEY or an interactive terminal")

// Runner executes commands against a configuration.
type Runner struct {
	// Out receives results.
	Out io.Writer
	// Err receives prompts and statistics.
	Err io.Writer
	// Logger receives diagnostics. Key material is never logged.
	Logger *slog.Logger
	// Prompt reads the key interactively. Nil disables prompting.
	Prompt func() (string, error)
}

// Derive runs a single derivation and prints the key.
func (r *Runner) Derive(cfg *config.Config) error {
	table, err := masktable.Load(cfg.Table)
	if err != nil {
		return err //nolint:wrapcheck // already describes the table source
	}

	device := masktable.Device(cfg.ECU)

	level, err := resolveLevel(table, device, cfg.Level)
	if err != nil {
		return err
	}

	key, err := r.key(cfg)
	if err != nil {
		return err
	}

	deriver := derive.New(table, derive.WithLogger(r.Logger))

	result, err := deriver.Derive(derive.Request{
		Seed:   cfg.Seed,
		Key:    key,
		Device: device,
		Level:  level,
	})
	if err != nil {
		return err //nolint:wrapcheck // shown verbatim to the user
	}

	fmt.Fprintln(r.Out, result)

	return nil
}

// key resolves the shared secret from, in order: --key, --key-file, SEED2KEY_KEY, the prompt.
func (r *Runner) key(cfg *config.Config) (string, error) {
	if cfg.Key != "" {
		return cfg.Key, nil
	}

	if cfg.KeyFile != "" {
		data, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return "", fmt.Errorf("reading key file: %w", err)
		}

		return strings.TrimSpace(string(data)), nil
	}

	if cfg.EnvKey != "" {
		return cfg.EnvKey, nil
	}

	if r.Prompt == nil {
		return "", ErrNoKey
	}

	key, err := r.Prompt()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoKey, err)
	}

	return key, nil
}

// resolveLevel parses token, or picks the lowest level configured for device when token is empty.
// Unknown devices fall back to the lowest level in the table and fail later at mask lookup.
func resolveLevel(table *masktable.Table, device masktable.Device, token string) (masktable.Level, error) {
	if token != "" {
		return masktable.ParseLevel(token) //nolint:wrapcheck // error names the token
	}

	if levels := table.LevelsFor(device); len(levels) > 0 {
		return levels[0], nil
	}

	return table.Levels()[0], nil
}
