package gui

import (
	"github.com/grindlemire/go-gui/internal/displaylist"
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/resources"
)

// styledTree presents a StyledDom to the flexbox solver. Layout node
// indexes are dom.NodeIds.
type styledTree struct {
	sd       *dom.StyledDom
	children [][]int
	texts    map[dom.NodeId]*textNode
	// images holds the natural size of image nodes whose image is loaded.
	images map[dom.NodeId]layout.Size[float32]
}

var _ layout.Layoutable = (*styledTree)(nil)

func newStyledTree(sd *dom.StyledDom, res *resources.AppResources) *styledTree {
	t := &styledTree{
		sd:       sd,
		children: make([][]int, sd.Len()),
		texts:    map[dom.NodeId]*textNode{},
		images:   map[dom.NodeId]layout.Size[float32]{},
	}
	for i := range sd.Len() {
		id := dom.NodeId(i)
		for _, c := range sd.Hierarchy.ChildIds(id) {
			t.children[i] = append(t.children[i], int(c))
		}

		nd := &sd.NodeData[i]
		switch nd.Type {
		case dom.NodeText, dom.NodeLabel:
			if tn, ok := newTextNode(res, nd, &sd.Styled[i]); ok {
				t.texts[id] = tn
			}
		case dom.NodeImage:
			imgID, ok := res.CSSImageId(nd.ImageId)
			if !ok {
				continue
			}
			if info, ok := res.ImageInfo(imgID); ok {
				t.images[id] = layout.Size[float32]{
					Width:  float32(info.Descriptor.Width),
					Height: float32(info.Descriptor.Height),
				}
			}
		}
	}
	return t
}

func (t *styledTree) Len() int                       { return t.sd.Len() }
func (t *styledTree) LayoutStyle(n int) layout.Style { return layoutStyle(&t.sd.Styled[n]) }
func (t *styledTree) LayoutChildren(n int) []int     { return t.children[n] }

// MeasureFunc sizes text from its shaped words and images from their
// natural size. Other leaves have no content size.
func (t *styledTree) MeasureFunc(n int) layout.MeasureFunc {
	id := dom.NodeId(n)
	if tn, ok := t.texts[id]; ok {
		return tn.measure
	}
	if natural, ok := t.images[id]; ok {
		return imageMeasure(natural)
	}
	return nil
}

// imageMeasure keeps the aspect ratio of natural when one side is known.
func imageMeasure(natural layout.Size[float32]) layout.MeasureFunc {
	return func(known layout.Size[layout.Number]) layout.Size[float32] {
		w, h := known.Width, known.Height
		switch {
		case w.IsDefined() && h.IsDefined():
			return layout.Size[float32]{Width: w.OrElse(0), Height: h.OrElse(0)}
		case w.IsDefined() && natural.Width > 0:
			kw := w.OrElse(0)
			return layout.Size[float32]{Width: kw, Height: natural.Height * kw / natural.Width}
		case h.IsDefined() && natural.Height > 0:
			kh := h.OrElse(0)
			return layout.Size[float32]{Width: natural.Width * kh / natural.Height, Height: kh}
		}
		return natural
	}
}

// visible reports for every node whether it and all its ancestors are
// displayed.
func (t *styledTree) visible() []bool {
	out := make([]bool, t.sd.Len())
	if len(out) == 0 {
		return out
	}
	var walk func(n int)
	walk = func(n int) {
		if layoutStyle(&t.sd.Styled[n]).Display == layout.DisplayNone {
			return
		}
		out[n] = true
		for _, c := range t.children[n] {
			walk(c)
		}
	}
	walk(0)
	return out
}

// textRuns lays out the glyphs of every visible text node inside its
// content box.
func (t *styledTree) textRuns(res *resources.AppResources, layouts []layout.Layout, rects []layout.Rect, visible []bool) map[dom.NodeId]displaylist.TextRun {
	runs := make(map[dom.NodeId]displaylist.TextRun, len(t.texts))
	for id, tn := range t.texts {
		if !visible[id] {
			continue
		}
		content := layouts[id].ContentBox().Translate(rects[id].X, rects[id].Y)
		if run, ok := tn.run(res, content); ok {
			runs[id] = run
		}
	}
	return runs
}
