package layout

// Positioned converts the parent-relative layouts returned by Compute into
// border box rectangles in the coordinate space of origin.
func Positioned(tree Layoutable, root int, layouts []Layout, origin Point) []Rect {
	rects := make([]Rect, len(layouts))
	if root < 0 || root >= len(layouts) {
		return rects
	}
	var walk func(node int, parent Point)
	walk = func(node int, parent Point) {
		p := parent.Add(layouts[node].Location)
		rects[node] = RectFrom(p, layouts[node].Size)
		for _, c := range tree.LayoutChildren(node) {
			walk(c, p)
		}
	}
	walk(root, origin)
	return rects
}
