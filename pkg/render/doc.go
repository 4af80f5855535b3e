// Package render turns organized canvases into SVG, PNG and DOT artifacts.
//
// # Overview
//
// The renderers draw what the layout engine produced and never move
// anything: node positions and sizes are taken verbatim, container frames
// are derived from the bounds of the nodes they contain, and connectors
// are routed between node edges.
//
//   - [WriteSVG] emits a standalone SVG document
//   - [PNG] rasterizes the same drawing
//   - [ToDOT], [GraphSVG] and [GraphPNG] export the flat connection graph
//     as a node-link diagram via Graphviz
//
// # Themes
//
// Colors come from a [Theme], which layers an optional TOML profile over
// the built-in per-type style table:
//
//	background = "#11111b"
//
//	[styles.process]
//	border_color = "#00BCD4"
//	fill_color = "#1e1e2e"
//
// Use [DefaultTheme] for the built-in appearance or [LoadTheme] to read a
// profile from disk. A per-node style declared in the document always wins
// over the theme.
package render
