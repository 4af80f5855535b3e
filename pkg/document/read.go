package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
)

// ErrEmptyDocument is returned by [Read] when a document declares neither
// networks nor nodes.
var ErrEmptyDocument = errors.New("document has no networks and no nodes")

// Generated container ids for flat documents.
const (
	wrapMachineID = "machine-1"
	wrapFactoryID = "factory-1"
	wrapNetworkID = "network-1"
)

// file is the YAML shape of a document on disk. It is a superset of
// [canvas.Canvas]: a flat top-level node list is accepted alongside the
// hierarchical networks form.
type file struct {
	canvas.Canvas `yaml:",inline"`

	Nodes []*canvas.Node `yaml:"nodes,omitempty"`
}

// Read decodes a YAML canvas document from r.
//
// Flat documents (a top-level nodes list with no networks) are wrapped into
// a single generated machine, factory and network, so the returned canvas
// always carries the full containment tree. Nodes missing an id receive a
// generated one. The canvas is validated before it is returned; duplicate
// ids are an error, dangling connection references are not.
//
// Read does not close r.
func Read(r io.Reader) (*canvas.Canvas, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	c := doc.Canvas
	if len(c.Networks) == 0 {
		if len(doc.Nodes) == 0 {
			return nil, ErrEmptyDocument
		}
		c.Networks = wrapFlat(doc.Nodes)
	}

	for _, n := range c.Nodes() {
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return &c, nil
}

// Load reads the YAML document at path.
func Load(path string) (*canvas.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// wrapFlat builds the single-container tree around a flat node list.
func wrapFlat(nodes []*canvas.Node) []*canvas.Network {
	return []*canvas.Network{{
		ID: wrapNetworkID,
		Factories: []*canvas.Factory{{
			ID: wrapFactoryID,
			Machines: []*canvas.Machine{{
				ID:    wrapMachineID,
				Nodes: nodes,
			}},
		}},
	}}
}
