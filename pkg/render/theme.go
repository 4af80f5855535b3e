package render

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
)

// Theme holds the colors used by every renderer in this package.
type Theme struct {
	// Background fills the whole canvas. Defaults to
	// [canvas.DefaultBackground].
	Background string `toml:"background"`

	// FrameColor outlines container frames at every tier.
	FrameColor string `toml:"frame_color"`

	// LabelColor is used for container labels.
	LabelColor string `toml:"label_color"`

	// ConnectorColor strokes the curves between connected nodes.
	ConnectorColor string `toml:"connector_color"`

	// Styles overrides the built-in style table per node type. Types not
	// listed keep their built-in appearance.
	Styles map[string]canvas.Style `toml:"styles"`
}

// DefaultTheme returns the built-in appearance.
func DefaultTheme() Theme {
	return Theme{
		Background:     canvas.DefaultBackground,
		FrameColor:     "#45475a",
		LabelColor:     "#a6adc8",
		ConnectorColor: "#6c7086",
	}
}

// LoadTheme reads a TOML theme profile at path and layers it over
// [DefaultTheme]. Fields absent from the profile keep their defaults.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}

	theme := DefaultTheme()
	if err := toml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return theme, nil
}

// styleFor resolves the effective style for a node: a per-node override
// wins, then the theme's table, then the built-in table.
func (t Theme) styleFor(n *canvas.Node) canvas.Style {
	if n.Style != nil {
		return *n.Style
	}
	if s, ok := t.Styles[n.Type]; ok {
		return s
	}
	return canvas.StyleFor(n.Type)
}
