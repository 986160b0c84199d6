package logic

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/idelchi/seed2key/internal/config"
	"github.com/idelchi/seed2key/internal/masktable"
	"github.com/idelchi/seed2key/pkg/tokenmatch"
)

// List prints the devices of the mask table with their security levels.
// Positional arguments are glob patterns selecting devices; none selects all.
func (r *Runner) List(cfg *config.Config) error {
	table, err := masktable.Load(cfg.Table)
	if err != nil {
		return err //nolint:wrapcheck // already describes the table source
	}

	matcher, err := tokenmatch.New(cfg.Args...)
	if err != nil {
		return fmt.Errorf("compiling device patterns: %w", err)
	}

	devices := tokenmatch.Filter(matcher, table.Devices())
	if len(devices) == 0 {
		return fmt.Errorf("no devices match %v", cfg.Args)
	}

	if cfg.Quiet {
		for _, device := range devices {
			fmt.Fprintln(r.Out, device)
		}

		return nil
	}

	rows := make([][]string, 0, len(devices))

	for _, device := range devices {
		levels := table.LevelsFor(device)

		names := make([]string, len(levels))
		for i, level := range levels {
			names[i] = level.String()
		}

		rows = append(rows, []string{string(device), strings.Join(names, ",")})
	}

	printTable(r.Out, []string{"device", "levels"}, rows)

	return nil
}

func printTable(writer io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(rows)
	table.Render()
}
