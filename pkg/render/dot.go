package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
)

// ToDOT exports the flat connection graph of c in Graphviz DOT format,
// one box per leaf node grouped into clusters per machine. The layout is
// Graphviz's own; node positions on the canvas are ignored.
func ToDOT(c *canvas.Canvas) string {
	var buf bytes.Buffer
	buf.WriteString("digraph canvas {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	cluster := 0
	for _, nw := range c.Networks {
		for _, f := range nw.Factories {
			for _, m := range f.Machines {
				if len(m.Nodes) == 0 {
					continue
				}
				fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", cluster)
				fmt.Fprintf(&buf, "    label=%q;\n", m.DisplayLabel())
				for _, n := range m.Nodes {
					style := n.EffectiveStyle()
					fmt.Fprintf(&buf, "    %q [label=%q, color=%q];\n",
						n.ID, n.DisplayLabel(), style.BorderColor)
				}
				buf.WriteString("  }\n")
				cluster++
			}
		}
	}

	buf.WriteString("\n")
	for _, conn := range c.Connections() {
		if _, ok := c.Node(conn.From); !ok {
			continue
		}
		if _, ok := c.Node(conn.To); !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", conn.From, conn.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// GraphSVG renders a DOT graph to SVG using Graphviz.
func GraphSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG, normalizeViewBox)
}

// GraphPNG renders a DOT graph to PNG using Graphviz.
func GraphPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG, nil)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out := buf.Bytes()
	if post != nil {
		out = post(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's svg element so the viewBox starts at
// the origin and the declared size matches it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
