// Command seed2key derives ECU security access unlock keys from seeds.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/seed2key/internal/commands"
	"github.com/idelchi/seed2key/internal/config"
)

// version is set at build time via ldflags.
var version = "unknown - unofficial & generated by unknown"

func main() {
	var cfg config.Config

	root := commands.NewRootCommand(&cfg, version)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		os.Exit(1)
	}
}
