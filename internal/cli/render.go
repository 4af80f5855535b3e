package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bobbyhiddn/canvaskit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output        string   // output file (single format) or base path
	formats       []string // output formats
	theme         string   // TOML theme profile path
	orientation   string   // flow axis
	gridColumns   int      // grid width override
	splitUnlinked bool     // spread unlinked siblings across the grid
}

// artifactExt maps pipeline formats to output file extensions.
var artifactExt = map[string]string{
	pipeline.FormatSVG:      ".svg",
	pipeline.FormatPNG:      ".png",
	pipeline.FormatDOT:      ".dot",
	pipeline.FormatYAML:     ".yaml",
	pipeline.FormatGraphSVG: ".graph.svg",
	pipeline.FormatGraphPNG: ".graph.png",
}

// newRenderCmd creates the render command for generating artifacts from a
// canvas document.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a canvas document to SVG, PNG or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, yaml, graph-svg, graph-png (comma-separated)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme profile")
	addLayoutFlags(cmd, &opts.orientation, &opts.gridColumns, &opts.splitUnlinked)

	return cmd
}

// parseFormats parses the --format flag. If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:         input,
		Orientation:   opts.orientation,
		Theme:         opts.theme,
		Formats:       opts.formats,
		GridColumns:   opts.gridColumns,
		SplitUnlinked: opts.splitUnlinked,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", input)
	printStats(result.Stats.NodeCount, result.Stats.ConnectionCount)

	for _, format := range opts.formats {
		path := outputPath(input, opts.output, format, len(opts.formats))
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// outputPath decides where one artifact lands. A single format honors
// --output verbatim; multiple formats treat it as a base path and append
// per-format extensions.
func outputPath(input, output, format string, formatCount int) string {
	if output != "" && formatCount == 1 {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	return base + artifactExt[format]
}
