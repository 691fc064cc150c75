package scroll

import (
	"math"

	"go.uber.org/zap"

	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/tag"
)

// OverflowingNode is a parent whose children do not fit its bounds and
// which scrolls them.
type OverflowingNode struct {
	// ParentRect is the border box of the scrolling node.
	ParentRect layout.Rect `json:"parent_rect"`
	// ChildRect is the union of the children's border boxes.
	ChildRect layout.Rect `json:"child_rect"`

	ExternalScrollId tag.ExternalScrollId `json:"external_scroll_id"`
	DomHash          uint64               `json:"dom_hash"`
	ScrollTag        tag.ScrollTagId      `json:"scroll_tag"`
}

// Nodes is the result of Analyze.
type Nodes struct {
	Overflowing map[dom.NodeId]OverflowingNode
	// Clip holds the nodes with overflow hidden on both axes whose children
	// overflow. They clip without scrolling.
	Clip map[dom.NodeId]layout.Rect
	// TagToNode maps a scroll tag back to its node.
	TagToNode map[tag.ScrollTagId]dom.NodeId
}

// IsScrolling reports whether id is wrapped in a scroll frame.
func (n Nodes) IsScrolling(id dom.NodeId) bool {
	_, ok := n.Overflowing[id]
	return ok
}

// Analyze decides for every parent of sd whether it needs a scroll frame.
// rects holds the border box of every node in a common coordinate space.
// An existing hit-test tag on the node is reused as its scroll tag.
func Analyze(sd *dom.StyledDom, rects []layout.Rect, pipeline tag.PipelineId) Nodes {
	out := Nodes{
		Overflowing: map[dom.NodeId]OverflowingNode{},
		Clip:        map[dom.NodeId]layout.Rect{},
		TagToNode:   map[tag.ScrollTagId]dom.NodeId{},
	}
	if len(rects) < sd.Len() {
		debug.L().Warn("scroll analysis skipped: missing rectangles",
			zap.Int("nodes", sd.Len()), zap.Int("rects", len(rects)))
		return out
	}

	for _, p := range sd.Hierarchy.ParentsByDepth() {
		id := p.Node
		parent := rects[id]
		children, ok := childrenRect(sd, rects, id)
		if !ok || containsRounded(parent, children) {
			continue
		}

		l := &sd.Styled[id].Layout
		ox := l.OverflowXOr(css.OverflowVisible)
		oy := l.OverflowYOr(css.OverflowVisible)
		switch {
		case ox.Scrolls() || oy.Scrolls():
		case ox.IsHidden() && oy.IsHidden():
			out.Clip[id] = parent
			continue
		default:
			continue
		}

		hash := sd.NodeData[id].Hash()
		scrollTag := tag.ScrollTagId{Tag: sd.Styled[id].Tag}
		if scrollTag.Tag.IsNone() {
			scrollTag = tag.NewScrollTagId()
		}
		out.Overflowing[id] = OverflowingNode{
			ParentRect:       parent,
			ChildRect:        children,
			ExternalScrollId: tag.ExternalScrollId{Hash: hash, Pipeline: pipeline},
			DomHash:          hash,
			ScrollTag:        scrollTag,
		}
		out.TagToNode[scrollTag] = id
	}
	return out
}

// childrenRect returns the union of the visible children of id. It reports
// false when every child is empty.
func childrenRect(sd *dom.StyledDom, rects []layout.Rect, id dom.NodeId) (layout.Rect, bool) {
	var union layout.Rect
	for c := range sd.Hierarchy.Children(id) {
		if sd.Styled[c].Layout.Display.GetOr(css.DisplayFlex) == css.DisplayNone {
			continue
		}
		union = union.Union(rects[c])
	}
	return union, !union.IsEmpty()
}

// containsRounded reports whether outer contains inner once both are
// rounded to whole pixels, which tolerates float jitter from layout.
func containsRounded(outer, inner layout.Rect) bool {
	return roundRect(outer).ContainsRect(roundRect(inner))
}

func roundRect(r layout.Rect) layout.Rect {
	round := func(f float32) float32 { return float32(math.Round(float64(f))) }
	return layout.NewRect(round(r.X), round(r.Y), round(r.Width), round(r.Height))
}
