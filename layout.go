// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package gui

import "github.com/grindlemire/go-gui/internal/layout"

// Rect is an axis-aligned rectangle in CSS pixels.
type Rect = layout.Rect

// Point is an x/y coordinate.
type Point = layout.Point

// Edges holds one length per box side (top, right, bottom, left).
type Edges = layout.Edges

// Size is a width/height pair.
type Size = layout.Size[float32]

// NodeLayout holds the computed box model of one node.
type NodeLayout = layout.Layout

// NewRect creates a Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return layout.NewRect(x, y, width, height)
}
