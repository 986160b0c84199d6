package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/seed2key/internal/config"
	"github.com/idelchi/seed2key/internal/logic"
)

// NewListCommand creates a new cobra command for the list subcommand.
func NewListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "list [flags] [patterns...]",
		Aliases: []string{"ls"},
		Short:   "List devices and security levels of the mask table",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, config.CommandList),
		RunE:    run(cfg, (*logic.Runner).List),
	}
}
