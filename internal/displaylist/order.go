package displaylist

import (
	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/dom"
)

// ContentGroup mirrors the node hierarchy with children in paint order.
type ContentGroup struct {
	Root     dom.NodeId
	Children []ContentGroup
}

// SortChildren builds the paint-order tree of sd: for every parent, the
// children that are not absolutely positioned come first and the absolute
// ones second, both in document order. Subtrees with display: none are left
// out.
func SortChildren(sd *dom.StyledDom) ContentGroup {
	if sd.Len() == 0 {
		return ContentGroup{}
	}
	return sortChildren(sd, 0)
}

func sortChildren(sd *dom.StyledDom, id dom.NodeId) ContentGroup {
	g := ContentGroup{Root: id}
	var absolute []dom.NodeId
	for c := range sd.Hierarchy.Children(id) {
		l := &sd.Styled[c].Layout
		if l.Display.GetOr(css.DisplayFlex) == css.DisplayNone {
			continue
		}
		if l.Position.GetOr(css.PositionStatic) == css.PositionAbsolute {
			absolute = append(absolute, c)
			continue
		}
		g.Children = append(g.Children, sortChildren(sd, c))
	}
	for _, c := range absolute {
		g.Children = append(g.Children, sortChildren(sd, c))
	}
	return g
}

// Order flattens g in paint order.
func (g ContentGroup) Order() []dom.NodeId {
	out := []dom.NodeId{g.Root}
	for _, c := range g.Children {
		out = append(out, c.Order()...)
	}
	return out
}
