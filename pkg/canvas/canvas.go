// Package canvas defines the ownership tree for canvas diagrams.
//
// A diagram is a strict containment hierarchy: a Canvas holds Networks,
// a Network holds Factories, a Factory holds Machines, and a Machine holds
// leaf Nodes. Every node belongs to exactly one machine. Connections are a
// separate flat layer of directed references between node IDs; they may form
// cycles and may reference IDs that are not present in the tree (dangling
// references are valid and are skipped by consumers).
//
// Node positions (X, Y) are mutable and are rewritten in place by the
// layout engine. Widths and heights are layout inputs, computed upstream.
package canvas

import (
	"errors"
	"fmt"
)

// Default node dimensions, used when a node declares no size of its own.
const (
	DefaultNodeWidth  = 250.0
	DefaultNodeHeight = 120.0
)

// ErrDuplicateNodeID is returned by [Canvas.Validate] when two nodes share
// an ID. Node IDs must be unique across the whole canvas: the layout engine
// assumes uniqueness and produces last-write-wins results otherwise.
var ErrDuplicateNodeID = errors.New("duplicate node ID")

// ErrDuplicateContainerID is returned by [Canvas.Validate] when two
// containers at the same tier share an ID.
var ErrDuplicateContainerID = errors.New("duplicate container ID")

// Node is a leaf diagram element with a position and a size.
type Node struct {
	ID      string   `yaml:"id"`
	Type    string   `yaml:"type,omitempty"`
	Label   string   `yaml:"label,omitempty"`
	Content string   `yaml:"content,omitempty"`
	X       float64  `yaml:"x,omitempty"`
	Y       float64  `yaml:"y,omitempty"`
	Width   float64  `yaml:"width,omitempty"`
	Height  float64  `yaml:"height,omitempty"`
	Inputs  []string `yaml:"inputs,omitempty"`
	Outputs []string `yaml:"outputs,omitempty"`
	Style   *Style   `yaml:"style,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// EffectiveStyle returns the node's own style if set, otherwise the default
// style for its type.
func (n *Node) EffectiveStyle() Style {
	if n.Style != nil {
		return *n.Style
	}
	return StyleFor(n.Type)
}

// Machine is the lowest-level grouping of leaf nodes.
type Machine struct {
	ID    string  `yaml:"id"`
	Label string  `yaml:"label,omitempty"`
	Nodes []*Node `yaml:"nodes,omitempty"`
	Style *Style  `yaml:"style,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (m *Machine) DisplayLabel() string {
	if m.Label != "" {
		return m.Label
	}
	return m.ID
}

// Factory is a mid-level grouping of machines.
type Factory struct {
	ID       string     `yaml:"id"`
	Label    string     `yaml:"label,omitempty"`
	Machines []*Machine `yaml:"machines,omitempty"`
	Style    *Style     `yaml:"style,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (f *Factory) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.ID
}

// Nodes returns all leaf nodes under the factory in document order.
func (f *Factory) Nodes() []*Node {
	var nodes []*Node
	for _, m := range f.Machines {
		nodes = append(nodes, m.Nodes...)
	}
	return nodes
}

// Network is a top-level grouping of factories.
type Network struct {
	ID        string     `yaml:"id"`
	Label     string     `yaml:"label,omitempty"`
	Factories []*Factory `yaml:"factories,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (nw *Network) DisplayLabel() string {
	if nw.Label != "" {
		return nw.Label
	}
	return nw.ID
}

// Nodes returns all leaf nodes under the network in document order.
func (nw *Network) Nodes() []*Node {
	var nodes []*Node
	for _, f := range nw.Factories {
		nodes = append(nodes, f.Nodes()...)
	}
	return nodes
}

// Connection is a directed reference between two node IDs.
// Connections refer to nodes by ID, never by pointer, and a connection
// whose endpoint does not exist in the tree is still valid.
type Connection struct {
	From string
	To   string
}

// Canvas is the top-level document containing one or more networks.
type Canvas struct {
	Version    string     `yaml:"version,omitempty"`
	Title      string     `yaml:"title,omitempty"`
	Width      int        `yaml:"width,omitempty"`
	Height     int        `yaml:"height,omitempty"`
	Background string     `yaml:"background,omitempty"`
	Networks   []*Network `yaml:"networks"`
}

// Nodes returns every leaf node in the canvas in document order.
func (c *Canvas) Nodes() []*Node {
	var nodes []*Node
	for _, nw := range c.Networks {
		nodes = append(nodes, nw.Nodes()...)
	}
	return nodes
}

// Node returns the node with the given ID and true, or nil and false if no
// node carries that ID.
func (c *Canvas) Node(id string) (*Node, bool) {
	for _, n := range c.Nodes() {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// Connections returns every directed connection declared by the canvas's
// nodes. A node's inputs become (input, node) pairs and its outputs become
// (node, output) pairs. Exact duplicates are dropped; first-seen order is
// preserved so repeated calls yield identical slices.
func (c *Canvas) Connections() []Connection {
	seen := make(map[Connection]bool)
	var conns []Connection
	add := func(conn Connection) {
		if seen[conn] {
			return
		}
		seen[conn] = true
		conns = append(conns, conn)
	}
	for _, n := range c.Nodes() {
		for _, in := range n.Inputs {
			add(Connection{From: in, To: n.ID})
		}
		for _, out := range n.Outputs {
			add(Connection{From: n.ID, To: out})
		}
	}
	return conns
}

// Validate checks ID uniqueness across the tree. The layout engine assumes
// unique node IDs within any single item set; duplicates produce an
// inconsistent last-write-wins layout, so callers should validate before
// organizing. Dangling connection endpoints are not an error.
func (c *Canvas) Validate() error {
	nodeIDs := make(map[string]bool)
	containerIDs := make(map[string]bool)

	container := func(id string) error {
		if containerIDs[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateContainerID, id)
		}
		containerIDs[id] = true
		return nil
	}

	for _, nw := range c.Networks {
		if err := container(nw.ID); err != nil {
			return err
		}
		for _, f := range nw.Factories {
			if err := container(f.ID); err != nil {
				return err
			}
			for _, m := range f.Machines {
				if err := container(m.ID); err != nil {
					return err
				}
				for _, n := range m.Nodes {
					if nodeIDs[n.ID] {
						return fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
					}
					nodeIDs[n.ID] = true
				}
			}
		}
	}
	return nil
}
