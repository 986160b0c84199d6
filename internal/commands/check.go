package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/seed2key/internal/config"
	"github.com/idelchi/seed2key/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "check [flags]",
		Short:   "Validate the mask table",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, config.CommandCheck),
		RunE:    run(cfg, (*logic.Runner).Check),
	}
}
