// Package cli implements the logruler command-line interface.
//
// This package provides commands for generating log-spaced ruler icons
// in SVG, PNG, and JSON form, listing parameter presets, serving icons
// over HTTP for preview, and managing the render cache. The CLI is
// built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render a ruler icon and write it to disk
//   - presets: List built-in and file-defined parameter presets
//   - serve: Run the HTTP preview server
//   - cache: Manage the preview server's render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/logruler/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "logruler"

// Execute runs the logruler CLI and returns an error if any command
// fails. The context carries cancellation from the caller (typically
// signal handling in main).
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "logruler generates log-spaced ruler icons",
		Long:         `logruler is a CLI tool for generating small ruler icons whose tick marks follow a logarithmic spacing. Icons render to SVG, PNG, or JSON, and an HTTP preview server exposes the same parameters as query strings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
