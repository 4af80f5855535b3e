package render

import (
	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
	"github.com/bobbyhiddn/canvaskit/pkg/layout"
)

// frame is one container rectangle to draw, already inflated by its tier's
// interior padding. Frames are emitted outermost first so inner frames
// paint on top.
type frame struct {
	kind    layout.Kind
	label   string
	x, y    float64
	w, h    float64
	labeled bool
}

// inflate grows b by inset on every side.
func inflate(b layout.Bounds, inset float64) (x, y, w, h float64) {
	return b.X - inset, b.Y - inset, b.Width + 2*inset, b.Height + 2*inset
}

// collectFrames derives the container rectangles from the node positions.
// Each container's frame is the bounds of its leaf nodes inflated by that
// tier's interior padding, so frames nest the same way the organizer
// reserved space for them. Containers with no measurable nodes get no
// frame.
func collectFrames(c *canvas.Canvas) []frame {
	var frames []frame
	for _, nw := range c.Networks {
		if b, ok := layout.BoundsOf(nw.Nodes()); ok {
			x, y, w, h := inflate(b, layout.NetworkPadding)
			frames = append(frames, frame{
				kind: layout.KindNetwork, label: nw.DisplayLabel(),
				x: x, y: y, w: w, h: h,
			})
		}
		for _, f := range nw.Factories {
			if b, ok := layout.BoundsOf(f.Nodes()); ok {
				x, y, w, h := inflate(b, layout.FactoryPadding)
				frames = append(frames, frame{
					kind: layout.KindFactory, label: f.DisplayLabel(),
					x: x, y: y, w: w, h: h, labeled: true,
				})
			}
			for _, m := range f.Machines {
				if b, ok := layout.BoundsOf(m.Nodes); ok {
					x, y, w, h := inflate(b, layout.MachinePadding)
					frames = append(frames, frame{
						kind: layout.KindMachine, label: m.DisplayLabel(),
						x: x, y: y, w: w, h: h, labeled: true,
					})
				}
			}
		}
	}
	return frames
}

// drawingExtent returns the rectangle enclosing every frame and node, plus
// the outer margin, as integer canvas dimensions with the drawing offset.
func drawingExtent(c *canvas.Canvas, frames []frame, margin float64) (offsetX, offsetY, width, height float64) {
	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	first := true

	consider := func(x, y, w, h float64) {
		if first {
			minX, minY, maxX, maxY = x, y, x+w, y+h
			first = false
			return
		}
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x+w)
		maxY = max(maxY, y+h)
	}

	for _, f := range frames {
		consider(f.x, f.y-labelBand(f), f.w, f.h+labelBand(f))
	}
	if b, ok := layout.BoundsOf(c.Nodes()); ok {
		consider(b.X, b.Y, b.Width, b.Height)
	}
	if first {
		return 0, 0, 2 * margin, 2 * margin
	}
	return minX - margin, minY - margin, maxX - minX + 2*margin, maxY - minY + 2*margin
}

// labelBand is the header strip height above a labeled frame.
func labelBand(f frame) float64 {
	if f.labeled {
		return layout.LabelHeight
	}
	return 0
}
