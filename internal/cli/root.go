// Package cli implements the proxima command-line interface.
//
// The CLI provides two commands: analyze, which writes an analysis result as
// JSON, and render, which draws a debug overlay PNG. Both accept a TOML
// config file for tuning thresholds. Logging uses charmbracelet/log and the
// --verbose flag switches to debug level; loggers are passed through
// context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the proxima CLI and returns an error if any command fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "proxima",
		Short:        "Proxima analyzes the spatial structure of 2D scenes",
		Long:         `Proxima groups scene elements by proximity, classifies each group's stacking direction, and detects anchor, flow, and alignment patterns.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("proxima %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
