// Package config holds the runtime configuration shared by all commands.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Command names used for command-specific validation.
const (
	CommandDerive = "derive"
	CommandBatch  = "batch"
	CommandList   = "list"
	CommandCheck  = "check"
)

// Config is populated from flags and SEED2KEY_* environment variables.
//
// Fields holding key material carry a mask tag so they are redacted by Display.
type Config struct {
	// Command is the subcommand being run, set before validation.
	Command string `mapstructure:"-" yaml:"command"`

	// Common flags
	Show     bool   `yaml:"-"`
	Quiet    bool   `yaml:"quiet"`
	Verbose  bool   `yaml:"verbose"`
	Stats    bool   `yaml:"stats"`
	Table    string `yaml:"table"`
	Parallel int    `yaml:"parallel" validate:"min=1" label:"--parallel"`

	// Derivation inputs
	Seed    string `yaml:"seed" validate:"required_if=Command derive" label:"--seed" mask:"filled"`
	Key     string `yaml:"key" label:"--key" mask:"filled"`
	KeyFile string `yaml:"key-file" validate:"exclusive=--key" label:"--key-file" mapstructure:"key-file"`
	// EnvKey is the key taken from SEED2KEY_KEY when --key is not given.
	// It ranks below --key-file.
	EnvKey string `mapstructure:"-" yaml:"env-key" mask:"filled"`
	ECU    string `yaml:"ecu" validate:"required_if=Command derive" label:"--ecu"`
	Level   string `yaml:"level"`

	// Batch output path; empty writes to stdout
	Output string `yaml:"output"`

	// Positional arguments
	Args []string `mapstructure:"-" yaml:"args"`
}

// Validate validates the configuration against the struct tags.
// Every violation is reported, sorted, each wrapping validator.ErrValidation.
func (c *Config) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	errs := validate.Validate(c)
	if len(errs) == 0 {
		return nil
	}

	slices.SortFunc(errs, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})

	return fmt.Errorf("invalid configuration:\n%w", errors.Join(errs...))
}
