// Package dom builds the arena-allocated element tree and applies CSS to it.
//
// A [Dom] is a user-facing builder tree. [Dom.Arena] flattens it into a
// [NodeHierarchy] (parent/sibling/child indices) and a parallel slice of
// [NodeData]. [Style] applies a stylesheet, inline declarations and
// per-node dynamic overrides to produce a [StyledDom].
package dom
