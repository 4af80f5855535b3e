package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bobbyhiddn/canvaskit/pkg/buildinfo"
)

// Execute runs the canvaskit CLI and returns an error if any command
// fails. The context carries cancellation from signal handling in main.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "canvaskit",
		Short:        "CanvasKit organizes and renders canvas diagrams",
		Long:         `CanvasKit lays out hierarchical canvas documents (networks, factories, machines, nodes) along their connection flow and renders them as SVG, PNG or Graphviz diagrams.`,
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

	root.AddCommand(newOrganizeCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}

// addLayoutFlags registers the flags shared by every command that runs the
// layout engine.
func addLayoutFlags(cmd *cobra.Command, orientation *string, gridColumns *int, splitUnlinked *bool) {
	cmd.Flags().StringVar(orientation, "orientation", "horizontal", "flow axis: horizontal or vertical")
	cmd.Flags().IntVar(gridColumns, "grid-columns", 0, "grid width for documents with no connections")
	cmd.Flags().BoolVar(splitUnlinked, "split-unlinked", false, "spread unlinked containers across a grid instead of one column")
}
