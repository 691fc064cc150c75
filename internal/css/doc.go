// Package css models the resolved CSS property values understood by the
// layout and rendering core.
//
// Every property is a tagged sum of a keyword ([Auto], [None], [Initial],
// [Inherit], [Revert], [Unset]) or an exact typed value. Lengths are
// [PixelValue]s with a unit and a fixed-point number. [RectStyle] and
// [RectLayout] hold the paint and geometry subsets applied to one node.
//
// [ParseProperty] parses single declarations ("width", "100px"); it is not a
// stylesheet parser. [Stylesheet] matches simple compound selectors.
package css
