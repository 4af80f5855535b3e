// Package pipeline provides the load → organize → render pipeline for
// canvas documents.
//
// The pipeline is the shared core behind the CLI commands and the preview
// server: one place that decides how a document on disk becomes an
// organized canvas and a set of rendered artifacts.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:   "canvas.yaml",
//	    Formats: []string{pipeline.FormatSVG},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
	"github.com/bobbyhiddn/canvaskit/pkg/layout"
)

// =============================================================================
// Defaults and Formats
// =============================================================================

// Orientation names accepted by [Options].
const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
)

// Format constants for output artifacts.
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatDOT      = "dot"
	FormatYAML     = "yaml"
	FormatGraphSVG = "graph-svg"
	FormatGraphPNG = "graph-png"
)

// ValidFormats is the set of supported output formats. The graph formats
// render the flat connection graph through Graphviz instead of drawing the
// organized canvas.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatDOT:      true,
	FormatYAML:     true,
	FormatGraphSVG: true,
	FormatGraphPNG: true,
}

var validOrientations = map[string]layout.Orientation{
	"":                    layout.Horizontal,
	OrientationHorizontal: layout.Horizontal,
	OrientationVertical:   layout.Vertical,
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Input is the path of the YAML canvas document. Required.
	Input string `json:"input"`

	// Orientation selects the flow axis: "horizontal" (default) or
	// "vertical".
	Orientation string `json:"orientation,omitempty"`

	// Theme is the path of an optional TOML theme profile.
	Theme string `json:"theme,omitempty"`

	// Formats lists the artifacts to render. Defaults to svg.
	Formats []string `json:"formats,omitempty"`

	// GridColumns overrides the grid width used for item sets with no
	// edges at all.
	GridColumns int `json:"grid_columns,omitempty"`

	// SplitUnlinked spreads unlinked sibling containers across the grid
	// instead of stacking them in a single column.
	SplitUnlinked bool `json:"split_unlinked,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return fmt.Errorf("input is required")
	}
	if _, ok := validOrientations[o.Orientation]; !ok {
		return fmt.Errorf("invalid orientation: %q (must be horizontal or vertical)", o.Orientation)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// LayoutOrientation maps the option string to the layout type.
func (o *Options) LayoutOrientation() layout.Orientation {
	return validOrientations[o.Orientation]
}

// organizeOptions translates the option fields into layout overrides.
func (o *Options) organizeOptions() []layout.OrganizeOption {
	var opts []layout.OrganizeOption
	if o.GridColumns > 0 {
		opts = append(opts, layout.WithGridColumns(o.GridColumns))
	}
	if o.SplitUnlinked {
		opts = append(opts, layout.WithSingleColumnFallback(false))
	}
	return opts
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, dot, yaml, graph-svg, graph-png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Canvas is the organized canvas.
	Canvas *canvas.Canvas

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount       int
	ConnectionCount int
	LoadTime        time.Duration
	OrganizeTime    time.Duration
	RenderTime      time.Duration
}
