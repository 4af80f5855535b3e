package layout

import (
	"math"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
)

// Bounds is the axis-aligned bounding box of a set of leaf nodes.
// Width and height are floored at 1 so even a degenerate set of
// coincident nodes produces a drawable box.
type Bounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// BoundsOf computes the bounding box of a set of leaf nodes. Nodes with a
// missing or non-positive size count at the default node dimensions; nodes
// with a non-finite coordinate are skipped rather than poisoning the box.
// The second return value is false when no node contributed finite
// coordinates; the organizer treats that case as an empty container.
func BoundsOf(nodes []*canvas.Node) (Bounds, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, n := range nodes {
		if !isFinite(n.X) || !isFinite(n.Y) {
			continue
		}
		w, h := nodeSize(n)
		minX = math.Min(minX, n.X)
		minY = math.Min(minY, n.Y)
		maxX = math.Max(maxX, n.X+w)
		maxY = math.Max(maxY, n.Y+h)
	}

	if !isFinite(minX) || !isFinite(minY) {
		return Bounds{}, false
	}
	return Bounds{
		X:      minX,
		Y:      minY,
		Width:  math.Max(1, maxX-minX),
		Height: math.Max(1, maxY-minY),
	}, true
}

// nodeSize returns the node's declared dimensions, substituting the
// defaults for missing, zero, or non-finite values.
func nodeSize(n *canvas.Node) (w, h float64) {
	w, h = n.Width, n.Height
	if w <= 0 || !isFinite(w) {
		w = canvas.DefaultNodeWidth
	}
	if h <= 0 || !isFinite(h) {
		h = canvas.DefaultNodeHeight
	}
	return w, h
}
