package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
	"github.com/bobbyhiddn/canvaskit/pkg/document"
	"github.com/bobbyhiddn/canvaskit/pkg/layout"
	"github.com/bobbyhiddn/canvaskit/pkg/render"
)

// Runner executes the pipeline. It is stateless except for the logger, so
// multiple goroutines can safely share one Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → organize → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Load
	loadStart := time.Now()
	c, err := document.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Canvas = c
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = len(c.Nodes())
	result.Stats.ConnectionCount = len(c.Connections())

	r.Logger.Info("loaded document",
		"file", opts.Input,
		"nodes", result.Stats.NodeCount,
		"connections", result.Stats.ConnectionCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Organize
	organizeStart := time.Now()
	layout.Organize(c, c.Connections(), opts.LayoutOrientation(), opts.organizeOptions()...)
	result.Stats.OrganizeTime = time.Since(organizeStart)

	r.Logger.Info("organized canvas",
		"orientation", opts.LayoutOrientation(),
		"duration", result.Stats.OrganizeTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Render produces the requested artifacts for an already organized canvas.
func (r *Runner) Render(ctx context.Context, c *canvas.Canvas, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	theme := render.DefaultTheme()
	if opts.Theme != "" {
		var err error
		if theme, err = render.LoadTheme(opts.Theme); err != nil {
			return nil, err
		}
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := r.renderFormat(ctx, c, theme, format)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func (r *Runner) renderFormat(ctx context.Context, c *canvas.Canvas, theme render.Theme, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.RenderSVG(c, theme), nil
	case FormatPNG:
		var buf bytes.Buffer
		if err := render.WritePNG(c, theme, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(render.ToDOT(c)), nil
	case FormatYAML:
		var buf bytes.Buffer
		if err := document.Write(c, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatGraphSVG:
		return render.GraphSVG(ctx, render.ToDOT(c))
	case FormatGraphPNG:
		return render.GraphPNG(ctx, render.ToDOT(c))
	default:
		return nil, ValidateFormat(format)
	}
}
