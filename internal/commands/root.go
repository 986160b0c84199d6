package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/seed2key/internal/config"
	"github.com/idelchi/seed2key/internal/logging"
	"github.com/idelchi/seed2key/internal/logic"
	"github.com/idelchi/seed2key/internal/terminal"
)

// EnvPrefix prefixes every environment variable bound to a flag.
const EnvPrefix = "SEED2KEY"

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	// Flags are bound into a fresh viper per invocation in preRun, not into the global one.
	root.PersistentPreRunE = nil

	root.Use = "seed2key [flags] command [flags]"
	root.Short = "ECU seed/key unlock key calculator"
	root.Long = `Derives the unlock key answering an ECU security access challenge.
The seed is XORed with the mask configured for the device and security level,
and the result is authenticated with AES-128-CMAC under the shared secret.

Every flag can also be set through the environment, e.g. SEED2KEY_KEY or SEED2KEY_KEY_FILE.
A key from the environment is used only when neither --key nor --key-file is given.`

	root.PersistentFlags().Bool("show", false, "Show the configuration and exit")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log each derivation step to stderr")
	root.PersistentFlags().Bool("stats", false, "Print statistics to stderr after a batch")
	root.PersistentFlags().StringP("table", "t", "", "Path to a mask table, defaults to the embedded table")
	root.PersistentFlags().
		IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")

	root.AddCommand(
		NewDeriveCommand(cfg),
		NewBatchCommand(cfg),
		NewListCommand(cfg),
		NewCheckCommand(cfg),
	)

	return root
}

// keyFlags registers the flags supplying the shared secret.
func keyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "Shared secret (16 bytes, hex-encoded)")
	cmd.Flags().StringP("key-file", "f", "", "Path to a file holding the shared secret (16 bytes, hex-encoded)")
}

// preRun returns a PreRunE handler that binds flags and environment into cfg
// and validates the configuration for the named command.
func preRun(cfg *config.Config, command string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		v := viper.New()

		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Command = command
		cfg.Args = args

		keySources(cmd, cfg)

		return cfg.Validate()
	}
}

// keySources separates key values given as flags from those taken from the environment.
// Environment values rank below any key flag, and only flags are checked for exclusivity.
func keySources(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if !flags.Changed("key") {
		cfg.EnvKey, cfg.Key = cfg.Key, ""
	}

	if !flags.Changed("key-file") && cfg.Key != "" {
		cfg.KeyFile = ""
	}
}

// run returns a RunE handler that shows the configuration when requested,
// or hands a Runner to body.
func run(cfg *config.Config, body func(*logic.Runner, *config.Config) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if cfg.Show {
			return cfg.Display(cmd.OutOrStdout())
		}

		runner := &logic.Runner{
			Out:    cmd.OutOrStdout(),
			Err:    cmd.ErrOrStderr(),
			Logger: logging.New(cmd.ErrOrStderr(), cfg.Verbose),
		}

		if terminal.IsInteractive() {
			runner.Prompt = func() (string, error) {
				return terminal.ReadSecret(cmd.ErrOrStderr(), "Key: ")
			}
		}

		return body(runner, cfg)
	}
}
