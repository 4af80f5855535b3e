package layout

// Spacing constants per tier. The three spacing tiers scale up from tight
// (nodes inside a machine) to spacious (networks on the canvas).
const (
	// NodeHorizontalSpacing separates node columns inside a machine.
	NodeHorizontalSpacing = 60.0
	// NodeVerticalSpacing separates nodes stacked in one column.
	NodeVerticalSpacing = 110.0

	// ContainerHorizontalSpacing separates machine and factory columns.
	ContainerHorizontalSpacing = 150.0
	// ContainerVerticalSpacing separates stacked machines and factories.
	ContainerVerticalSpacing = 190.0

	// NetworkHorizontalSpacing separates network columns on the canvas.
	NetworkHorizontalSpacing = 190.0
	// NetworkVerticalSpacing separates stacked networks.
	NetworkVerticalSpacing = 250.0

	// GridColumns is the level width used by the grid fallback for item
	// sets with no edges at all.
	GridColumns = 4
)

// Interior padding per container tier: the gap between a container's frame
// and its content. The same constant pads the container's measured bounds
// when it becomes an item at its parent tier.
const (
	MachinePadding = 40.0
	FactoryPadding = 60.0
	NetworkPadding = 70.0
)

// LabelHeight is the header allowance reserved above a container's content
// for its label. The canvas itself has no label header.
const LabelHeight = 32.0

// Canvas margins: where the outermost layout starts.
const (
	CanvasStartX = 80.0
	CanvasStartY = 100.0
)

// tierSpec holds the constants used when organizing the children of a
// container at one tier. childPadding and childLabel describe the frame of
// the children being arranged (nodes carry no frame of their own).
type tierSpec struct {
	hSpacing     float64
	vSpacing     float64
	childPadding float64
	childLabel   float64
}

// tierSpecs is the immutable tier-keyed constant table, indexed by the kind
// of the container whose children are being organized.
var tierSpecs = map[Kind]tierSpec{
	KindMachine: {NodeHorizontalSpacing, NodeVerticalSpacing, 0, 0},
	KindFactory: {ContainerHorizontalSpacing, ContainerVerticalSpacing, MachinePadding, LabelHeight},
	KindNetwork: {ContainerHorizontalSpacing, ContainerVerticalSpacing, FactoryPadding, LabelHeight},
	KindCanvas:  {NetworkHorizontalSpacing, NetworkVerticalSpacing, NetworkPadding, 0},
}
