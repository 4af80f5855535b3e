package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/bobbyhiddn/canvaskit/pkg/pipeline"
	"github.com/bobbyhiddn/canvaskit/pkg/preview"
	"github.com/bobbyhiddn/canvaskit/pkg/render"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr        string
	theme       string
	orientation string
}

// newServeCmd creates the serve command: a live HTTP preview that
// re-renders the document whenever it changes on disk.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a live preview that re-renders on save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8423", "listen address")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme profile")
	cmd.Flags().StringVar(&opts.orientation, "orientation", "horizontal", "flow axis: horizontal or vertical")

	return cmd
}

func runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	pipeOpts := pipeline.Options{Input: input, Orientation: opts.orientation, Logger: logger}
	if err := pipeOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	theme := render.DefaultTheme()
	if opts.theme != "" {
		var err error
		if theme, err = render.LoadTheme(opts.theme); err != nil {
			return err
		}
	}

	printInfo("Previewing %s at http://localhost%s", input, opts.addr)
	server := preview.New(input, pipeOpts.LayoutOrientation(), theme, logger)
	if err := server.Run(ctx, opts.addr); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
