package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
)

// svgMargin is the whitespace around the outermost frame.
const svgMargin = 40.0

// WriteSVG draws c as a standalone SVG document. Frames are painted
// outermost first, then connectors, then nodes, so nodes are always on
// top of the curves that link them.
func WriteSVG(c *canvas.Canvas, theme Theme, w io.Writer) error {
	frames := collectFrames(c)
	offX, offY, width, height := drawingExtent(c, frames, svgMargin)

	doc := svg.New(w)
	doc.Start(int(width), int(height))
	defer doc.End()

	background := c.Background
	if background == "" {
		background = theme.Background
	}
	doc.Rect(0, 0, int(width), int(height), fill(background))

	tx := func(x float64) int { return int(x - offX) }
	ty := func(y float64) int { return int(y - offY) }

	for _, f := range frames {
		doc.Roundrect(tx(f.x), ty(f.y), int(f.w), int(f.h), 8, 8,
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:1.5", theme.FrameColor))
		if f.label == "" {
			continue
		}
		labelY := ty(f.y) + 22
		if f.labeled {
			labelY = ty(f.y) - 10
		}
		doc.Text(tx(f.x)+12, labelY, f.label,
			fmt.Sprintf("font-family:sans-serif;font-size:14px;fill:%s", theme.LabelColor))
	}

	for _, conn := range c.Connections() {
		from, ok := c.Node(conn.From)
		if !ok {
			continue
		}
		to, ok := c.Node(conn.To)
		if !ok {
			continue
		}
		drawConnector(doc, from, to, tx, ty, theme.ConnectorColor)
	}

	for _, n := range c.Nodes() {
		drawNode(doc, n, theme, tx, ty)
	}

	return nil
}

// RenderSVG draws c into an in-memory SVG document.
func RenderSVG(c *canvas.Canvas, theme Theme) []byte {
	var buf bytes.Buffer
	_ = WriteSVG(c, theme, &buf)
	return buf.Bytes()
}

// ExportSVG writes the SVG rendering of c to a file at path.
func ExportSVG(c *canvas.Canvas, theme Theme, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteSVG(c, theme, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func drawNode(doc *svg.SVG, n *canvas.Node, theme Theme, tx, ty func(float64) int) {
	style := theme.styleFor(n)
	w, h := nodeSize(n)

	radius := style.CornerRadius
	if radius == 0 {
		radius = 12
	}
	doc.Roundrect(tx(n.X), ty(n.Y), int(w), int(h), radius, radius,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", style.FillColor, style.BorderColor))

	label := n.DisplayLabel()
	doc.Text(tx(n.X)+int(w)/2, ty(n.Y)+int(h)/2+5, label,
		fmt.Sprintf("font-family:sans-serif;font-size:15px;text-anchor:middle;fill:%s", style.TextColor))
}

// drawConnector routes a cubic curve from the source's right edge to the
// target's left edge, with horizontal control points at the midpoint.
func drawConnector(doc *svg.SVG, from, to *canvas.Node, tx, ty func(float64) int, color string) {
	fw, fh := nodeSize(from)
	_, th := nodeSize(to)

	x1 := tx(from.X + fw)
	y1 := ty(from.Y + fh/2)
	x2 := tx(to.X)
	y2 := ty(to.Y + th/2)
	midX := (x1 + x2) / 2

	path := fmt.Sprintf("M %d %d C %d %d, %d %d, %d %d", x1, y1, midX, y1, midX, y2, x2, y2)
	doc.Path(path, fmt.Sprintf("fill:none;stroke:%s;stroke-width:1.5", color))
}

func nodeSize(n *canvas.Node) (w, h float64) {
	w, h = n.Width, n.Height
	if w <= 0 {
		w = canvas.DefaultNodeWidth
	}
	if h <= 0 {
		h = canvas.DefaultNodeHeight
	}
	return w, h
}

func fill(color string) string {
	return "fill:" + color
}
