package document

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
)

// Write encodes c as a hierarchical YAML document. Node positions and sizes
// are written verbatim, so organized layouts survive the round trip.
func Write(c *canvas.Canvas, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// Save writes c to a YAML file at path, replacing any existing file.
func Save(c *canvas.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(c, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
