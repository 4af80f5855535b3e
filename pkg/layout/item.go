package layout

// Kind discriminates what a layout item stands for: a leaf node or a
// measured container at one of the three container tiers.
type Kind int

const (
	// KindNode is a leaf diagram element.
	KindNode Kind = iota
	// KindMachine is a measured machine container.
	KindMachine
	// KindFactory is a measured factory container.
	KindFactory
	// KindNetwork is a measured network container.
	KindNetwork
	// KindCanvas is the tree root. It never appears as a layout item;
	// it only identifies the outermost tier of the organizer.
	KindCanvas
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindMachine:
		return "machine"
	case KindFactory:
		return "factory"
	case KindNetwork:
		return "network"
	case KindCanvas:
		return "canvas"
	}
	return "unknown"
}

// Item is one rectangle to be placed by [Compute]: either a leaf node or a
// measured container. X and Y carry the item's original position, which the
// algorithm uses for deterministic tie-breaking and as a placement fallback.
type Item struct {
	ID     string
	Kind   Kind
	Width  float64
	Height float64
	X      float64
	Y      float64

	// LeafIDs lists the leaf node IDs contained in this item. For a
	// KindNode item it is the item's own ID.
	LeafIDs []string
}

// Edge is a directed connection between two items in the same set.
// Edges whose endpoints are not in the item set are silently dropped.
type Edge struct {
	From string
	To   string
}

// Orientation selects the main flow axis of the layout.
type Orientation string

const (
	// Horizontal lays levels out as left-to-right columns.
	Horizontal Orientation = "horizontal"
	// Vertical lays levels out as top-to-bottom rows.
	Vertical Orientation = "vertical"
)

// Position is the computed placement for one item. Coordinates are rounded
// to integer pixel values.
type Position struct {
	X float64
	Y float64
}

// Options configures a single [Compute] call. The zero value selects
// horizontal orientation, node-tier spacing, and the standard grid width.
//
// StartX and StartY use zero as a sentinel: a zero start falls back to the
// minimum original coordinate across all items. Likewise a zero reference
// center falls back to the midpoint of the items' original extent.
type Options struct {
	Orientation       Orientation
	HorizontalSpacing float64
	VerticalSpacing   float64
	StartX            float64
	StartY            float64
	ReferenceCenterX  float64
	ReferenceCenterY  float64
	GridColumns       int
}

// withDefaults fills unset fields with node-tier defaults.
func (o Options) withDefaults() Options {
	if o.Orientation == "" {
		o.Orientation = Horizontal
	}
	if o.HorizontalSpacing == 0 {
		o.HorizontalSpacing = NodeHorizontalSpacing
	}
	if o.VerticalSpacing == 0 {
		o.VerticalSpacing = NodeVerticalSpacing
	}
	if o.GridColumns <= 0 {
		o.GridColumns = GridColumns
	}
	return o
}
