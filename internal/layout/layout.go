package layout

// Layout holds the computed position and size of one node.
type Layout struct {
	// Order is the index of the node among its parent's children.
	Order uint32

	// Location is the border box origin relative to the parent's border box.
	Location Point
	Size     Size[float32]

	// Resolved box edges in pixels. Margin includes space absorbed by auto
	// margins.
	Padding Edges
	Border  Edges
	Margin  Edges
}

// Rect returns the border box relative to the parent.
func (l Layout) Rect() Rect {
	return RectFrom(l.Location, l.Size)
}

// PaddingBox returns the border box inset by the border, relative to the
// node's own origin.
func (l Layout) PaddingBox() Rect {
	return NewRect(0, 0, l.Size.Width, l.Size.Height).Inset(l.Border)
}

// ContentBox returns the padding box inset by the padding, relative to the
// node's own origin.
func (l Layout) ContentBox() Rect {
	return l.PaddingBox().Inset(l.Padding)
}
