package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/seed2key/internal/config"
	"github.com/idelchi/seed2key/internal/logic"
)

// NewBatchCommand creates a new cobra command for the batch subcommand.
func NewBatchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [flags] requests.jsonc",
		Short: "Derive unlock keys for a file of requests",
		Long: `Derives one key per request in a JSON (comments allowed) array:

  [
    {"seed": "000102030405060708090a0b0c0d0e0f", "ecu": "ECU1", "level": 1},
  ]

Requests without a "key" use the key given by --key, --key-file or the prompt.
One line "<index> <ecu> <level> <key>" is written per request, in input order.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(cfg, config.CommandBatch),
		RunE:    run(cfg, (*logic.Runner).Batch),
	}

	cmd.Flags().StringP("output", "o", "", "Write results to this file instead of stdout")

	keyFlags(cmd)

	return cmd
}
