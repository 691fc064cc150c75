package layout

// MeasureFunc returns the content size of a leaf given the inner
// dimensions already known. Undefined dimensions are unconstrained.
type MeasureFunc func(known Size[Number]) Size[float32]

// Layoutable is the interface for anything that can participate in layout calculation.
// Nodes are dense indexes; the layout engine works entirely with this interface,
// enabling custom implementations.
type Layoutable interface {
	// Len returns the number of nodes.
	Len() int

	// LayoutStyle returns the layout style properties for node.
	LayoutStyle(node int) Style

	// LayoutChildren returns the children of node in document order.
	LayoutChildren(node int) []int

	// MeasureFunc returns the content measure of a leaf such as text or an
	// image, or nil.
	MeasureFunc(node int) MeasureFunc
}
