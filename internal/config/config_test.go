package config_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/seed2key/internal/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "derive ok",
			cfg:  config.Config{Command: config.CommandDerive, Parallel: 1, Seed: "00", ECU: "ECU1"},
		},
		{
			name: "derive missing seed and ecu",
			cfg:  config.Config{Command: config.CommandDerive, Parallel: 1},
			want: "--ecu is a required field\nvalidation error: --seed is a required field",
		},
		{
			name: "list needs no seed",
			cfg:  config.Config{Command: config.CommandList, Parallel: 1},
		},
		{
			name: "key and key file",
			cfg: config.Config{
				Command: config.CommandBatch, Parallel: 1, Key: "00", KeyFile: "key.hex",
			},
			want: "--key-file and --key are mutually exclusive",
		},
		{
			name: "parallel zero",
			cfg:  config.Config{Command: config.CommandBatch},
			want: "--parallel must be 1 or greater",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate error: %v", err)
				}

				return
			}

			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate error = %v, want it to contain %q", err, tt.want)
			}

			if !errors.Is(err, validator.ErrValidation) {
				t.Errorf("Validate error %v does not wrap validator.ErrValidation", err)
			}
		})
	}
}

func TestDisplayRedactsKeyMaterial(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Command:  config.CommandDerive,
		Parallel: 4,
		Seed:     "000102030405060708090a0b0c0d0e0f",
		Key:      "2b7e151628aed2a6abf7158809cf4f3c",
		ECU:      "ECU1",
		Level:    "3",
	}

	var buf bytes.Buffer
	if err := cfg.Display(&buf); err != nil {
		t.Fatalf("Display error: %v", err)
	}

	out := buf.String()

	for _, secret := range []string{cfg.Seed, cfg.Key, "0001020304", "2b7e1516"} {
		if strings.Contains(out, secret) {
			t.Errorf("Display output leaks %q:\n%s", secret, out)
		}
	}

	for _, want := range []string{"ecu: ECU1", "parallel: 4", "command: derive"} {
		if !strings.Contains(out, want) {
			t.Errorf("Display output missing %q:\n%s", want, out)
		}
	}

	if cfg.Key != "2b7e151628aed2a6abf7158809cf4f3c" {
		t.Error("Display modified the configuration")
	}
}
