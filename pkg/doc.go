// Package pkg provides the core libraries for CanvasKit diagram layout.
//
// # Overview
//
// CanvasKit organizes hierarchical canvas diagrams along their connection
// flow. A canvas is a four-tier containment tree (networks hold factories,
// factories hold machines, machines hold leaf nodes) with a flat layer of
// directed connections between node IDs. The pkg directory is organized
// into a handful of focused packages:
//
//  1. [canvas] - The document model (containment tree, connections, styles)
//  2. [layout] - The layout engine (level assignment, positioning, recursion)
//  3. [document] - YAML reading and writing
//  4. [render] - SVG, PNG and Graphviz DOT output
//  5. [pipeline] - Orchestration (load → organize → render)
//  6. [preview] - Live HTTP preview with re-render on save
//
// # Architecture
//
// The typical data flow through CanvasKit:
//
//	YAML document
//	     ↓
//	[document] package (parse, wrap flat documents)
//	     ↓
//	[layout] package (organize every tier recursively)
//	     ↓
//	[render] package (frames, connectors, nodes)
//	     ↓
//	SVG/PNG/DOT output
//
// # Quick Start
//
// Load a document, organize it, and render an SVG:
//
//	import (
//	    "os"
//
//	    "github.com/bobbyhiddn/canvaskit/pkg/document"
//	    "github.com/bobbyhiddn/canvaskit/pkg/layout"
//	    "github.com/bobbyhiddn/canvaskit/pkg/render"
//	)
//
//	// 1. Load the document
//	c, _ := document.Load("canvas.yaml")
//
//	// 2. Organize it along the connection flow
//	layout.Organize(c, c.Connections(), layout.Horizontal)
//
//	// 3. Render to SVG
//	_ = render.WriteSVG(c, render.DefaultTheme(), os.Stdout)
//
// # Main Packages
//
// [canvas] - The ownership tree for diagrams. Nodes carry positions, sizes,
// types and connection references; containers carry IDs and labels. The
// model is pure data with no layout logic.
//
// [layout] - The layout engine. Ranks items into levels along the
// connection flow (cycles and dangling references tolerated), positions
// each level without overlap, and applies the same recipe recursively at
// every tier of the containment tree.
//
// [document] - YAML import and export. Flat node lists are wrapped into a
// generated single-container tree so downstream code always sees the full
// hierarchy.
//
// [render] - Drawing. Container frames are derived from node bounds, so a
// rendered diagram always reflects exactly what the layout engine produced.
//
// [pipeline] - The shared load → organize → render orchestration behind
// the CLI and the preview server.
//
// [canvas]: github.com/bobbyhiddn/canvaskit/pkg/canvas
// [layout]: github.com/bobbyhiddn/canvaskit/pkg/layout
// [document]: github.com/bobbyhiddn/canvaskit/pkg/document
// [render]: github.com/bobbyhiddn/canvaskit/pkg/render
// [pipeline]: github.com/bobbyhiddn/canvaskit/pkg/pipeline
// [preview]: github.com/bobbyhiddn/canvaskit/pkg/preview
package pkg
