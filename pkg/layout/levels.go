package layout

import (
	"cmp"
	"slices"
)

// fifo is a ring-buffer queue of item IDs. Kahn's traversal pops from the
// front constantly, so the queue avoids the O(n) cost of re-slicing.
type fifo struct {
	buf        []string
	head, tail int
	size       int
}

func newFIFO(capacity int) *fifo {
	if capacity < 1 {
		capacity = 1
	}
	return &fifo{buf: make([]string, capacity)}
}

func (q *fifo) push(id string) {
	if q.size == len(q.buf) {
		grown := make([]string, 2*len(q.buf))
		for i := 0; i < q.size; i++ {
			grown[i] = q.buf[(q.head+i)%len(q.buf)]
		}
		q.buf = grown
		q.head, q.tail = 0, q.size
	}
	q.buf[q.tail] = id
	q.tail = (q.tail + 1) % len(q.buf)
	q.size++
}

func (q *fifo) pop() string {
	id := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return id
}

func (q *fifo) len() int { return q.size }

// assignLevels topologically ranks items into integer levels.
//
// The traversal is Kahn's BFS with deterministic tie-breaks: sources are
// seeded in (x, y) order, and each edge pushes its target to at least one
// level past its source, so every edge points to a strictly later level in
// acyclic graphs. Items trapped in cycles never reach zero in-degree; they
// are resolved afterwards, in (y, x) order, to one past their deepest
// already-resolved predecessor. This is a single deterministic cycle cut,
// not a minimum cut. Levels are then compressed to consecutive integers.
//
// When the edge list is empty and more than one item is present, the
// topological result is discarded entirely and items are ranked as a grid:
// sorted by (y, x) and assigned level index/gridColumns.
//
// Edges whose endpoints are not in the item set are dropped. assignLevels
// never fails; every item receives a level.
func assignLevels(items []Item, edges []Edge, opts Options) map[string]int {
	adjacency := make(map[string][]string, len(items))
	indegree := make(map[string]int, len(items))
	for _, it := range items {
		adjacency[it.ID] = nil
		indegree[it.ID] = 0
	}

	for _, e := range edges {
		if _, ok := adjacency[e.From]; !ok {
			continue
		}
		if _, ok := indegree[e.To]; !ok {
			continue
		}
		adjacency[e.From] = append(adjacency[e.From], e.To)
		indegree[e.To]++
	}

	levels := make(map[string]int, len(items))

	seeds := slices.Clone(items)
	slices.SortStableFunc(seeds, func(a, b Item) int {
		if c := cmpCoord(a.X, b.X); c != 0 {
			return c
		}
		return cmpCoord(a.Y, b.Y)
	})

	queue := newFIFO(len(items))
	for _, it := range seeds {
		if indegree[it.ID] == 0 {
			levels[it.ID] = 0
			queue.push(it.ID)
		}
	}

	for queue.len() > 0 {
		current := queue.pop()
		currentLevel := levels[current]
		for _, target := range adjacency[current] {
			candidate := currentLevel + 1
			if existing, ok := levels[target]; !ok || candidate > existing {
				levels[target] = candidate
			}
			indegree[target]--
			if indegree[target] == 0 {
				queue.push(target)
			}
		}
	}

	// Cycle cut: items never dequeued take one past their deepest resolved
	// predecessor, or level 0 when no predecessor has resolved yet.
	var unresolved []Item
	for _, it := range items {
		if _, ok := levels[it.ID]; !ok {
			unresolved = append(unresolved, it)
		}
	}
	if len(unresolved) > 0 {
		slices.SortStableFunc(unresolved, func(a, b Item) int {
			if c := cmpCoord(a.Y, b.Y); c != 0 {
				return c
			}
			return cmpCoord(a.X, b.X)
		})
		for _, it := range unresolved {
			best, found := 0, false
			for _, e := range edges {
				if e.To != it.ID {
					continue
				}
				if lvl, ok := levels[e.From]; ok && (!found || lvl > best) {
					best, found = lvl, true
				}
			}
			if found {
				levels[it.ID] = best + 1
			} else {
				levels[it.ID] = 0
			}
		}
	}

	// Normalize: remap the distinct levels to consecutive integers,
	// closing any gaps the cycle cut opened.
	distinct := make([]int, 0, len(levels))
	seen := make(map[int]bool)
	for _, lvl := range levels {
		if !seen[lvl] {
			seen[lvl] = true
			distinct = append(distinct, lvl)
		}
	}
	slices.Sort(distinct)
	remap := make(map[int]int, len(distinct))
	for i, lvl := range distinct {
		remap[lvl] = i
	}
	for id, lvl := range levels {
		levels[id] = remap[lvl]
	}

	// Grid fallback: with no edges at all, a topological ranking says
	// nothing. Rank by reading order into fixed-width grid levels instead.
	if len(edges) == 0 && len(items) > 1 {
		ordered := slices.Clone(items)
		slices.SortStableFunc(ordered, func(a, b Item) int {
			if c := cmpCoord(a.Y, b.Y); c != 0 {
				return c
			}
			return cmpCoord(a.X, b.X)
		})
		for i, it := range ordered {
			levels[it.ID] = i / opts.GridColumns
		}
	}

	return levels
}

// cmpCoord orders coordinates ascending with a total order over non-finite
// values: NaN sorts after everything so ties stay deterministic.
func cmpCoord(a, b float64) int {
	switch {
	case a == b:
		return 0
	case isNaN(a) && isNaN(b):
		return 0
	case isNaN(a):
		return 1
	case isNaN(b):
		return -1
	}
	return cmp.Compare(a, b)
}

func isNaN(v float64) bool { return v != v }
