package commands_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/seed2key/internal/commands"
	"github.com/idelchi/seed2key/internal/config"
	"github.com/idelchi/seed2key/internal/logic"
)

const (
	seed00to0f = "000102030405060708090a0b0c0d0e0f"
	zeroKey    = "00000000000000000000000000000000"
	scenario1  = "a47621977272beb85985615cab763fec"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var (
		cfg         config.Config
		out, errOut bytes.Buffer
	)

	root := commands.NewRootCommand(&cfg, "test")
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestDeriveCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "derive", "-e", "ECU1", "-l", "1", "-s", seed00to0f, "-k", zeroKey)
	if err != nil {
		t.Fatalf("derive error: %v", err)
	}

	if got := strings.TrimSpace(out); got != scenario1 {
		t.Errorf("derive = %q, want %q", got, scenario1)
	}
}

func TestDeriveCommandValidation(t *testing.T) {
	t.Parallel()

	keyFile := filepath.Join(t.TempDir(), "key.txt")
	if err := os.WriteFile(keyFile, []byte(zeroKey), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "missing seed and device",
			args: []string{"derive", "-k", zeroKey},
			want: "--ecu is a required field\nvalidation error: --seed is a required field",
		},
		{
			name: "both key sources",
			args: []string{"derive", "-e", "ECU1", "-s", seed00to0f, "-k", zeroKey, "-f", keyFile},
			want: "--key-file and --key are mutually exclusive",
		},
		{
			name: "zero workers",
			args: []string{"derive", "-e", "ECU1", "-s", seed00to0f, "-k", zeroKey, "-j", "0"},
			want: "--parallel must be 1 or greater",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestDeriveCommandWithoutKey(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "derive", "-e", "ECU1", "-s", seed00to0f)
	if !errors.Is(err, logic.ErrNoKey) {
		t.Fatalf("error = %v, want %v", err, logic.ErrNoKey)
	}
}

func TestDeriveCommandErrorHidesKey(t *testing.T) {
	t.Parallel()

	const secret = "0123456789abcdef0123456789abcdeZ"

	out, errOut, err := execute(t, "derive", "-e", "ECU1", "-s", seed00to0f, "-k", secret, "-v")
	if err == nil {
		t.Fatal("expected error for invalid key")
	}

	for _, text := range []string{err.Error(), out, errOut} {
		if strings.Contains(text, "0123456789abcde") {
			t.Errorf("key material leaked: %q", text)
		}
	}
}

func TestEnvironmentBinding(t *testing.T) {
	t.Setenv("SEED2KEY_KEY", zeroKey)
	t.Setenv("SEED2KEY_ECU", "ECU1")

	out, _, err := execute(t, "derive", "-s", seed00to0f)
	if err != nil {
		t.Fatalf("derive error: %v", err)
	}

	if got := strings.TrimSpace(out); got != scenario1 {
		t.Errorf("derive = %q, want %q", got, scenario1)
	}
}

func TestKeyFileOutranksEnvironmentKey(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "key.txt")
	if err := os.WriteFile(keyFile, []byte(zeroKey+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SEED2KEY_KEY", strings.Repeat("f", 32))

	out, _, err := execute(t, "derive", "-e", "ECU1", "-l", "1", "-s", seed00to0f, "-f", keyFile)
	if err != nil {
		t.Fatalf("derive error: %v", err)
	}

	if got := strings.TrimSpace(out); got != scenario1 {
		t.Errorf("derive = %q, want %q", got, scenario1)
	}
}

func TestKeyFlagOutranksEnvironment(t *testing.T) {
	t.Setenv("SEED2KEY_KEY", strings.Repeat("f", 32))
	t.Setenv("SEED2KEY_KEY_FILE", filepath.Join(t.TempDir(), "missing.txt"))

	out, _, err := execute(t, "derive", "-e", "ECU1", "-l", "1", "-s", seed00to0f, "-k", zeroKey)
	if err != nil {
		t.Fatalf("derive error: %v", err)
	}

	if got := strings.TrimSpace(out); got != scenario1 {
		t.Errorf("derive = %q, want %q", got, scenario1)
	}
}

func TestVersionAndUnknownCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version error: %v", err)
	}

	if out != "test\n" {
		t.Errorf("--version = %q, want %q", out, "test\n")
	}

	if _, _, err := execute(t, "unlock"); err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
}

func TestShowRedactsKey(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "derive", "--show", "-e", "ECU1", "-s", seed00to0f, "-k", zeroKey)
	if err != nil {
		t.Fatalf("derive --show error: %v", err)
	}

	if strings.Contains(out, zeroKey) || strings.Contains(out, seed00to0f) {
		t.Errorf("--show leaked material:\n%s", out)
	}

	if !strings.Contains(out, "ECU1") {
		t.Errorf("--show missing device:\n%s", out)
	}

	if strings.Contains(out, scenario1) {
		t.Errorf("--show ran the derivation:\n%s", out)
	}
}

func TestBatchCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "requests.jsonc")
	output := filepath.Join(dir, "keys.txt")

	requests := `[{"seed": "` + seed00to0f + `", "ecu": "ECU1", "level": 1}]`
	if err := os.WriteFile(input, []byte(requests), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execute(t, "batch", "-k", zeroKey, "-o", output, input); err != nil {
		t.Fatalf("batch error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if want := "0 ECU1 1 " + scenario1 + "\n"; string(data) != want {
		t.Errorf("batch output = %q, want %q", data, want)
	}
}

func TestBatchCommandArgs(t *testing.T) {
	t.Parallel()

	if _, _, err := execute(t, "batch", "-k", zeroKey); err == nil {
		t.Fatal("expected error without requests file")
	}
}

func TestListAndCheckCommands(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "list", "-q", "ECU?")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}

	if out != "ECU1\nECU2\nECU3\n" {
		t.Errorf("list = %q", out)
	}

	out, _, err = execute(t, "check")
	if err != nil {
		t.Fatalf("check error: %v", err)
	}

	if !strings.HasPrefix(out, "embedded:") {
		t.Errorf("check = %q", out)
	}
}
