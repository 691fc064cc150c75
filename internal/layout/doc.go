// Package layout implements a flexbox layout engine over an arena of nodes.
//
// It supports row/column directions and their reverses, wrapping, justify
// and align modes, padding, margin, borders, min/max constraints, flex
// basis, aspect ratio, auto margins, baseline alignment, absolutely
// positioned children and display:none. All geometry is float32 CSS pixels.
//
// The main entry point is [Compute], which takes a [Layoutable] tree and
// returns a [Layout] for every node, positioned relative to its parent.
// [Positioned] turns those into absolute rectangles.
package layout
