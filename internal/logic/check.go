package logic

import (
	"fmt"

	"github.com/idelchi/seed2key/internal/config"
	"github.com/idelchi/seed2key/internal/masktable"
)

// Check parses the configured mask table and reports its size.
// A malformed table fails with the line number of the first bad entry.
func (r *Runner) Check(cfg *config.Config) error {
	table, err := masktable.Load(cfg.Table)
	if err != nil {
		return err //nolint:wrapcheck // already describes the table source
	}

	if cfg.Quiet {
		return nil
	}

	source := cfg.Table
	if source == "" {
		source = "embedded"
	}

	fmt.Fprintf(r.Out, "%s: %d devices, %d levels, %d entries\n",
		source, len(table.Devices()), len(table.Levels()), table.Len())

	return nil
}
