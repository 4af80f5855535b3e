package layout

import (
	"golang.org/x/sync/errgroup"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
)

// OrganizeOption overrides a default of the recursive organizer.
type OrganizeOption func(*organizeConfig)

type organizeConfig struct {
	startX       float64
	startY       float64
	gridColumns  int
	singleColumn bool
}

// WithStart overrides the canvas margins where the outermost layout begins.
func WithStart(x, y float64) OrganizeOption {
	return func(cfg *organizeConfig) {
		cfg.startX = x
		cfg.startY = y
	}
}

// WithGridColumns overrides the grid width used when a tier's items have no
// edges at all.
func WithGridColumns(n int) OrganizeOption {
	return func(cfg *organizeConfig) {
		if n > 0 {
			cfg.gridColumns = n
		}
	}
}

// WithSingleColumnFallback controls the presentation policy for sibling
// containers with no cross-links: when enabled (the default), they are
// stacked in a single column or row instead of being split across an
// arbitrary grid.
func WithSingleColumnFallback(enabled bool) OrganizeOption {
	return func(cfg *organizeConfig) {
		cfg.singleColumn = enabled
	}
}

// Organize lays out the whole canvas tree in place. It applies the same
// five-step recipe at each of the four tiers: measure every child at a
// local origin, project the leaf connections into child-level edges, rank
// and position the children with [Compute], then translate each child's
// descendants by a single delta so internal arrangements are preserved
// exactly.
//
// Node X and Y fields are mutated; widths and heights are never touched.
// Organize is idempotent for a fixed topology, spacing, and orientation.
// An empty canvas is a no-op.
func Organize(c *canvas.Canvas, conns []canvas.Connection, orientation Orientation, opts ...OrganizeOption) {
	if c == nil || len(c.Nodes()) == 0 {
		return
	}
	if orientation == "" {
		orientation = Horizontal
	}

	cfg := organizeConfig{
		startX:       CanvasStartX,
		startY:       CanvasStartY,
		gridColumns:  GridColumns,
		singleColumn: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	org := &organizer{conns: conns, orientation: orientation, cfg: cfg}
	org.arrange(buildElement(c), cfg.startX, cfg.startY)
}

// element is one vertex of the containment tree as the organizer sees it:
// either a leaf node or a container with children one tier down.
type element struct {
	id       string
	kind     Kind
	node     *canvas.Node // set when kind == KindNode
	children []*element
}

func buildElement(c *canvas.Canvas) *element {
	root := &element{id: "canvas", kind: KindCanvas}
	for _, nw := range c.Networks {
		ne := &element{id: nw.ID, kind: KindNetwork}
		for _, f := range nw.Factories {
			fe := &element{id: f.ID, kind: KindFactory}
			for _, m := range f.Machines {
				me := &element{id: m.ID, kind: KindMachine}
				for _, n := range m.Nodes {
					me.children = append(me.children, &element{id: n.ID, kind: KindNode, node: n})
				}
				fe.children = append(fe.children, me)
			}
			ne.children = append(ne.children, fe)
		}
		root.children = append(root.children, ne)
	}
	return root
}

// leaves appends every leaf node beneath el to dst.
func (el *element) leaves(dst []*canvas.Node) []*canvas.Node {
	if el.kind == KindNode {
		return append(dst, el.node)
	}
	for _, child := range el.children {
		dst = child.leaves(dst)
	}
	return dst
}

// translate shifts every leaf node beneath el by (dx, dy).
func (el *element) translate(dx, dy float64) {
	for _, n := range el.leaves(nil) {
		n.X += dx
		n.Y += dy
	}
}

type organizer struct {
	conns       []canvas.Connection
	orientation Orientation
	cfg         organizeConfig
}

// arrange runs the per-tier recipe for el and returns the bounds of its
// subtree, or ok=false for an element with no measurable content.
//
// Measurement strictly precedes placement: every child's internal layout
// and bounds are final before the sibling-level Compute call runs, and a
// child's new position is fixed before its descendants are translated.
// Sibling measurements carry no data dependency on each other and run
// concurrently.
func (o *organizer) arrange(el *element, startX, startY float64) (Bounds, bool) {
	if el.kind == KindNode {
		return BoundsOf([]*canvas.Node{el.node})
	}

	tier := tierSpecs[el.kind]

	// Measure pass: organize each child at a temporary local origin.
	type measured struct {
		child  *element
		bounds Bounds
		ok     bool
	}
	results := make([]measured, len(el.children))
	var g errgroup.Group
	for i, child := range el.children {
		g.Go(func() error {
			b, ok := o.arrange(child, 0, 0)
			results[i] = measured{child: child, bounds: b, ok: ok}
			return nil
		})
	}
	_ = g.Wait()

	kept := results[:0]
	for _, r := range results {
		if r.ok {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return Bounds{}, false
	}

	// A lone child needs no sibling layout; drop it at the tier origin.
	if len(kept) == 1 {
		c := kept[0]
		c.child.translate(startX+tier.childPadding-c.bounds.X, startY+tier.childPadding-c.bounds.Y)
		return BoundsOf(el.leaves(nil))
	}

	items := make([]Item, len(kept))
	membership := make(map[string]string)
	scope := make(map[string]bool, len(kept))
	for i, m := range kept {
		leafIDs := make([]string, 0, 1)
		for _, n := range m.child.leaves(nil) {
			leafIDs = append(leafIDs, n.ID)
			membership[n.ID] = m.child.id
		}
		scope[m.child.id] = true
		items[i] = Item{
			ID:      m.child.id,
			Kind:    m.child.kind,
			Width:   m.bounds.Width + 2*tier.childPadding,
			Height:  m.bounds.Height + 2*tier.childPadding + tier.childLabel,
			X:       m.bounds.X,
			Y:       m.bounds.Y,
			LeafIDs: leafIDs,
		}
	}

	edges := ResolveEdges(o.conns, membership, scope)

	opts := Options{
		Orientation:       o.orientation,
		HorizontalSpacing: tier.hSpacing,
		VerticalSpacing:   tier.vSpacing,
		StartX:            startX + tier.childPadding,
		StartY:            startY + tier.childPadding,
		GridColumns:       o.cfg.gridColumns,
	}
	// Unlinked siblings stack in one column or row rather than being
	// split across an arbitrary grid.
	if len(edges) == 0 && o.cfg.singleColumn {
		opts.GridColumns = len(items)
	}

	positions := Compute(items, edges, opts)

	// Placement pass: one delta per child, applied once to each leaf,
	// preserving every child's internal arrangement.
	for _, m := range kept {
		p, ok := positions[m.child.id]
		if !ok {
			continue
		}
		dx := p.X + tier.childPadding - m.bounds.X
		dy := p.Y + tier.childPadding + tier.childLabel - m.bounds.Y
		m.child.translate(dx, dy)
	}

	return BoundsOf(el.leaves(nil))
}
