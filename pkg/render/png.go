package render

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sbinet/gg"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
)

// WritePNG rasterizes c and writes the PNG bytes to w. The drawing matches
// [WriteSVG]: same frames, connectors, nodes and theme colors.
func WritePNG(c *canvas.Canvas, theme Theme, w io.Writer) error {
	frames := collectFrames(c)
	offX, offY, width, height := drawingExtent(c, frames, svgMargin)

	dc := gg.NewContext(int(width), int(height))

	background := c.Background
	if background == "" {
		background = theme.Background
	}
	dc.SetHexColor(background)
	dc.Clear()

	tx := func(x float64) float64 { return x - offX }
	ty := func(y float64) float64 { return y - offY }

	dc.SetLineWidth(1.5)
	for _, f := range frames {
		dc.SetHexColor(theme.FrameColor)
		dc.DrawRoundedRectangle(tx(f.x), ty(f.y), f.w, f.h, 8)
		dc.Stroke()
		if f.label == "" {
			continue
		}
		labelY := ty(f.y) + 22
		if f.labeled {
			labelY = ty(f.y) - 10
		}
		dc.SetHexColor(theme.LabelColor)
		dc.DrawString(f.label, tx(f.x)+12, labelY)
	}

	dc.SetHexColor(theme.ConnectorColor)
	for _, conn := range c.Connections() {
		from, ok := c.Node(conn.From)
		if !ok {
			continue
		}
		to, ok := c.Node(conn.To)
		if !ok {
			continue
		}
		fw, fh := nodeSize(from)
		_, th := nodeSize(to)
		x1, y1 := tx(from.X+fw), ty(from.Y+fh/2)
		x2, y2 := tx(to.X), ty(to.Y+th/2)
		midX := (x1 + x2) / 2

		dc.MoveTo(x1, y1)
		dc.CubicTo(midX, y1, midX, y2, x2, y2)
		dc.Stroke()
	}

	for _, n := range c.Nodes() {
		style := theme.styleFor(n)
		nw, nh := nodeSize(n)
		radius := float64(style.CornerRadius)
		if radius == 0 {
			radius = 12
		}

		dc.DrawRoundedRectangle(tx(n.X), ty(n.Y), nw, nh, radius)
		dc.SetHexColor(style.FillColor)
		dc.FillPreserve()
		dc.SetHexColor(style.BorderColor)
		dc.SetLineWidth(2)
		dc.Stroke()

		dc.SetHexColor(style.TextColor)
		dc.DrawStringAnchored(n.DisplayLabel(), tx(n.X)+nw/2, ty(n.Y)+nh/2, 0.5, 0.35)
	}

	return dc.EncodePNG(w)
}

// ExportPNG writes the PNG rendering of c to a file at path.
func ExportPNG(c *canvas.Canvas, theme Theme, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(c, theme, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
