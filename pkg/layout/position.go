package layout

import (
	"math"
	"slices"
	"strings"
)

// Compute assigns a position to every item so that connected items read
// along the flow axis and items sharing a level never overlap. It is the
// stateless flat layout used identically at every tier of [Organize].
//
// Compute never fails: cycles, dangling edges, zero items and fully
// disconnected sets all have defined fallback behavior. The returned map
// holds exactly one position per input item, rounded to integer pixels.
func Compute(items []Item, edges []Edge, opts Options) map[string]Position {
	positions := make(map[string]Position, len(items))
	if len(items) == 0 {
		return positions
	}

	opts = opts.withDefaults()
	levels := assignLevels(items, edges, opts)

	itemByID := make(map[string]*Item, len(items))
	for i := range items {
		itemByID[items[i].ID] = &items[i]
	}

	grouped := make(map[int][]*Item)
	for id, lvl := range levels {
		if it, ok := itemByID[id]; ok {
			grouped[lvl] = append(grouped[lvl], it)
		}
	}
	orderedLevels := make([]int, 0, len(grouped))
	for lvl := range grouped {
		orderedLevels = append(orderedLevels, lvl)
	}
	slices.Sort(orderedLevels)

	// Extent of the original positions, for start and center defaults.
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := range items {
		it := &items[i]
		if isFinite(it.X) {
			minX = math.Min(minX, it.X)
			maxX = math.Max(maxX, it.X+it.Width)
		}
		if isFinite(it.Y) {
			minY = math.Min(minY, it.Y)
			maxY = math.Max(maxY, it.Y+it.Height)
		}
	}
	if !isFinite(minX) {
		minX, maxX = 0, 0
	}
	if !isFinite(minY) {
		minY, maxY = 0, 0
	}

	startX := opts.StartX
	if startX == 0 {
		startX = minX
	}
	startY := opts.StartY
	if startY == 0 {
		startY = minY
	}

	switch opts.Orientation {
	case Vertical:
		refCenterX := opts.ReferenceCenterX
		if refCenterX == 0 {
			refCenterX = (minX + maxX) / 2
		}
		placeRows(positions, grouped, orderedLevels, startY, refCenterX, opts)
	default:
		refCenterY := opts.ReferenceCenterY
		if refCenterY == 0 {
			refCenterY = (minY + maxY) / 2
		}
		placeColumns(positions, grouped, orderedLevels, edges, itemByID, startX, refCenterY, opts)
	}

	// Anything both branches missed keeps its original spot, rounded.
	for i := range items {
		it := &items[i]
		if _, ok := positions[it.ID]; !ok {
			positions[it.ID] = Position{X: roundCoord(it.X), Y: roundCoord(it.Y)}
		}
	}
	return positions
}

// placeColumns lays levels out as left-to-right columns. Within a column,
// each item aims for the mean vertical center of its already-positioned
// predecessors and is clamped downward when that would overlap the item
// placed above it.
func placeColumns(positions map[string]Position, grouped map[int][]*Item, orderedLevels []int, edges []Edge, itemByID map[string]*Item, startX, refCenterY float64, opts Options) {
	type entry struct {
		item     *Item
		target   float64
		fallback float64
	}

	currentX := startX
	for _, lvl := range orderedLevels {
		column := grouped[lvl]
		if len(column) == 0 {
			continue
		}

		columnWidth := 0.0
		for _, it := range column {
			columnWidth = math.Max(columnWidth, it.Width)
		}

		entries := make([]entry, 0, len(column))
		for _, it := range column {
			fallback := it.Y + it.Height/2
			target := fallback
			var sum float64
			var count int
			for _, e := range edges {
				if e.To != it.ID {
					continue
				}
				parent, ok := itemByID[e.From]
				if !ok {
					continue
				}
				pos, placed := positions[e.From]
				if !placed {
					continue
				}
				sum += pos.Y + parent.Height/2
				count++
			}
			if count > 0 {
				if mean := sum / float64(count); isFinite(mean) {
					target = mean
				}
			}
			entries = append(entries, entry{item: it, target: target, fallback: fallback})
		}

		slices.SortStableFunc(entries, func(a, b entry) int {
			if c := cmpCoord(a.target, b.target); c != 0 {
				return c
			}
			if c := cmpCoord(a.fallback, b.fallback); c != 0 {
				return c
			}
			return strings.Compare(a.item.ID, b.item.ID)
		})

		previousBottom := math.Inf(-1)
		for _, e := range entries {
			it := e.item
			desiredTop := e.target - it.Height/2
			if !isFinite(desiredTop) {
				desiredTop = e.fallback - it.Height/2
			}
			if !isFinite(desiredTop) {
				desiredTop = refCenterY - it.Height/2
			}

			if isFinite(previousBottom) {
				if minTop := previousBottom + opts.VerticalSpacing; desiredTop < minTop {
					desiredTop = minTop
				}
			}

			finalY := roundCoord(desiredTop)
			positions[it.ID] = Position{X: roundCoord(currentX), Y: finalY}
			previousBottom = finalY + it.Height
		}

		currentX += columnWidth + opts.HorizontalSpacing
	}
}

// placeRows lays levels out as top-to-bottom rows, each row centered on the
// reference x and placed left to right in (x, id) order.
func placeRows(positions map[string]Position, grouped map[int][]*Item, orderedLevels []int, startY, refCenterX float64, opts Options) {
	currentY := startY
	for _, lvl := range orderedLevels {
		row := slices.Clone(grouped[lvl])
		if len(row) == 0 {
			continue
		}
		slices.SortStableFunc(row, func(a, b *Item) int {
			if c := cmpCoord(a.X, b.X); c != 0 {
				return c
			}
			return strings.Compare(a.ID, b.ID)
		})

		totalWidth := float64(len(row)-1) * opts.HorizontalSpacing
		for _, it := range row {
			totalWidth += it.Width
		}

		cursorX := refCenterX - totalWidth/2
		rowHeight := 0.0
		for _, it := range row {
			positions[it.ID] = Position{X: roundCoord(cursorX), Y: roundCoord(currentY)}
			cursorX += it.Width + opts.HorizontalSpacing
			rowHeight = math.Max(rowHeight, it.Height)
		}
		currentY += rowHeight + opts.VerticalSpacing
	}
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// roundCoord rounds to the nearest integer pixel, collapsing non-finite
// values to zero rather than propagating them into the output.
func roundCoord(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return math.Round(v)
}
