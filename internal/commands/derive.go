package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/seed2key/internal/config"
	"github.com/idelchi/seed2key/internal/logic"
)

// NewDeriveCommand creates a new cobra command for the derive subcommand.
func NewDeriveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "derive [flags]",
		Aliases: []string{"key"},
		Short:   "Derive the unlock key for one seed",
		Example: `  seed2key derive -e ECU1 -l 1 -s 000102030405060708090a0b0c0d0e0f -f secret.key`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, config.CommandDerive),
		RunE:    run(cfg, (*logic.Runner).Derive),
	}

	cmd.Flags().StringP("seed", "s", "", "Seed received from the device (16 bytes, hex-encoded)")
	cmd.Flags().StringP("ecu", "e", "", "Device identifier")
	cmd.Flags().StringP("level", "l", "", "Security level, defaults to the lowest level of the device")

	keyFlags(cmd)

	return cmd
}
