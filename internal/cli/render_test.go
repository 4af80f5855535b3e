package cli

import (
	"reflect"
	"testing"

	"github.com/bobbyhiddn/canvaskit/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single", "png", []string{"png"}},
		{"comma separated", "svg,dot", []string{"svg", "dot"}},
		{"trims spaces", "svg, png", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		output      string
		format      string
		formatCount int
		want        string
	}{
		{"derived from input", "canvas.yaml", "", pipeline.FormatSVG, 1, "canvas.svg"},
		{"explicit single output", "canvas.yaml", "out.svg", pipeline.FormatSVG, 1, "out.svg"},
		{"base path for multiple", "canvas.yaml", "out", pipeline.FormatPNG, 2, "out.png"},
		{"derived for multiple", "canvas.yaml", "", pipeline.FormatDOT, 3, "canvas.dot"},
		{"graph format extension", "canvas.yaml", "", pipeline.FormatGraphSVG, 2, "canvas.graph.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.input, tt.output, tt.format, tt.formatCount)
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
