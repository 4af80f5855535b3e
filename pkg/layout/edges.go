package layout

import "github.com/bobbyhiddn/canvaskit/pkg/canvas"

// ResolveEdges projects leaf-level connections upward into container-level
// edges at one tier. membership maps leaf node IDs to the ID of their
// container at that tier; scope is the set of container IDs participating
// in the layout.
//
// A connection is skipped when either endpoint is missing from the
// membership map, when both endpoints resolve to the same container
// (self-edge), or when a resolved container is out of scope. Exact
// duplicates are dropped; first-seen order is preserved.
func ResolveEdges(conns []canvas.Connection, membership map[string]string, scope map[string]bool) []Edge {
	seen := make(map[Edge]bool)
	var edges []Edge
	for _, c := range conns {
		src, ok := membership[c.From]
		if !ok {
			continue
		}
		dst, ok := membership[c.To]
		if !ok {
			continue
		}
		if src == dst {
			continue
		}
		if !scope[src] || !scope[dst] {
			continue
		}
		e := Edge{From: src, To: dst}
		if seen[e] {
			continue
		}
		seen[e] = true
		edges = append(edges, e)
	}
	return edges
}
