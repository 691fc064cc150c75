package text

import (
	"slices"

	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/layout"
)

// InlineTextLayout is the set of line boxes of a positioned text.
type InlineTextLayout struct {
	Lines       []Line
	ContentSize layout.Size[float32]
}

// InlineLayout returns the left-aligned line boxes of p.
func InlineLayout(p WordPositions) InlineTextLayout {
	return InlineTextLayout{Lines: slices.Clone(p.Lines), ContentSize: p.ContentSize}
}

// alignFactor is the share of a line's free space placed before it.
func alignFactor(align css.TextAlign) float32 {
	switch align {
	case css.TextAlignCenter:
		return 0.5
	case css.TextAlignRight:
		return 1
	default:
		return 0
	}
}

// Align shifts each line box by its free space for center or right
// alignment.
func (l InlineTextLayout) Align(align css.TextAlign) InlineTextLayout {
	f := alignFactor(align)
	if f == 0 {
		return l
	}
	out := InlineTextLayout{Lines: slices.Clone(l.Lines), ContentSize: l.ContentSize}
	for i := range out.Lines {
		b := &out.Lines[i].Bounds
		b.X += (l.ContentSize.Width - b.Width) * f
	}
	return out
}

// Bounds returns the union of all line boxes.
func (l InlineTextLayout) Bounds() layout.Rect {
	var r layout.Rect
	for _, line := range l.Lines {
		r = r.Union(line.Bounds)
	}
	return r
}
