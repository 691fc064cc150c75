package displaylist

import (
	"slices"

	"go.uber.org/zap"

	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/resources"
	"github.com/grindlemire/go-gui/internal/scroll"
	"github.com/grindlemire/go-gui/internal/tag"
	"github.com/grindlemire/go-gui/internal/text"
)

// Resources resolves the images a document references.
type Resources interface {
	CSSImageId(cssID string) (resources.ImageId, bool)
	ImageInfo(id resources.ImageId) (resources.ImageInfo, bool)
}

// TextRun is the laid-out text of one text or label node.
type TextRun struct {
	Glyphs          []text.GlyphInstance
	FontInstanceKey resources.FontInstanceKey
}

// Document is one laid-out styled tree.
type Document struct {
	Dom *dom.StyledDom
	// Rects holds the border box of every node in window coordinates.
	Rects []layout.Rect
	// Layouts holds the resolved box model of every node.
	Layouts  []layout.Layout
	Scroll   scroll.Nodes
	Text     map[dom.NodeId]TextRun
	Textures map[dom.NodeId]*dom.Texture
}

func (d *Document) rect(id dom.NodeId) layout.Rect {
	if int(id) < len(d.Rects) {
		return d.Rects[id]
	}
	return layout.Rect{}
}

func (d *Document) layout(id dom.NodeId) layout.Layout {
	if int(id) < len(d.Layouts) {
		return d.Layouts[id]
	}
	return layout.Layout{}
}

// IFrameKey names the sub-document node of a document.
type IFrameKey struct {
	Dom  tag.DomId
	Node dom.NodeId
}

// Context is everything Build reads.
type Context struct {
	Documents map[tag.DomId]*Document
	// IFrames maps a sub-document node to the document its callback
	// produced.
	IFrames    map[IFrameKey]tag.DomId
	Resources  Resources
	WindowSize layout.Size[float32]
}

// Build produces the display list of document root and, through its
// sub-document nodes, of every nested document.
func Build(ctx *Context, root tag.DomId) CachedDisplayList {
	b := &builder{ctx: ctx}
	return CachedDisplayList{Root: b.document(root, layout.RectFrom(layout.Point{}, ctx.WindowSize))}
}

type builder struct {
	ctx *Context
	// stack holds the documents being built, outermost first.
	stack []tag.DomId
}

// document builds the frame tree of a document. bounds is used for the
// empty frame emitted when the document is missing.
func (b *builder) document(id tag.DomId, bounds layout.Rect) Msg {
	doc := b.ctx.Documents[id]
	if doc == nil || doc.Dom == nil || doc.Dom.Len() == 0 {
		return Msg{Frame: &Frame{Rect: bounds}}
	}
	b.stack = append(b.stack, id)
	defer func() { b.stack = b.stack[:len(b.stack)-1] }()
	return b.node(doc, id, SortChildren(doc.Dom))
}

func (b *builder) node(doc *Document, domID tag.DomId, g ContentGroup) Msg {
	id := g.Root
	nd := &doc.Dom.NodeData[id]
	sn := &doc.Dom.Styled[id]
	rect := doc.rect(id)

	frame := &Frame{
		Rect:         rect,
		BorderRadius: borderRadius(&sn.Style, rect),
		Tag:          sn.Tag,
	}
	scrolled, isScroll := doc.Scroll.Overflowing[id]
	if frame.Tag.IsNone() && isScroll {
		frame.Tag = scrolled.ScrollTag.Tag
	}
	if clip, ok := doc.Scroll.Clip[id]; ok {
		frame.ClipRect = &clip
	}

	if p, ok := boxShadow(&sn.Style, css.ShadowOutset, rect); ok {
		frame.Content = append(frame.Content, p)
	}
	if p, ok := b.background(&sn.Style); ok {
		frame.Content = append(frame.Content, p)
	}

	switch nd.Type {
	case dom.NodeText, dom.NodeLabel:
		if run, ok := doc.Text[id]; ok {
			frame.Content = append(frame.Content, textPrimitive(run, sn, doc.layout(id), rect, b.ctx.WindowSize))
		}
	case dom.NodeImage:
		if p, ok := b.image(nd.ImageId, rect); ok {
			frame.Content = append(frame.Content, p)
		}
	case dom.NodeGlTexture:
		if tex := doc.Textures[id]; tex != nil {
			frame.Content = append(frame.Content, texturePrimitive(tex, rect))
		}
	case dom.NodeIFrame:
		frame.Children = append(frame.Children, b.iframe(domID, id, rect))
	}

	if p, ok := border(sn, rect); ok {
		frame.Content = append(frame.Content, p)
	}
	if p, ok := boxShadow(&sn.Style, css.ShadowInset, rect); ok {
		frame.Content = append(frame.Content, p)
	}

	for _, c := range g.Children {
		frame.Children = append(frame.Children, b.node(doc, domID, c))
	}

	if isScroll {
		return Msg{Scroll: &ScrollFrame{
			ContentRect: scrolled.ChildRect,
			ScrollID:    scrolled.ExternalScrollId,
			ScrollTag:   scrolled.ScrollTag,
			Frame:       *frame,
		}}
	}
	return Msg{Frame: frame}
}

// iframe builds the document linked to a sub-document node, or an empty
// frame at rect when there is none or linking it would recurse.
func (b *builder) iframe(domID tag.DomId, node dom.NodeId, rect layout.Rect) Msg {
	child, ok := b.ctx.IFrames[IFrameKey{Dom: domID, Node: node}]
	if !ok {
		return Msg{Frame: &Frame{Rect: rect}}
	}
	if slices.Contains(b.stack, child) {
		debug.L().Warn("sub-document cycle skipped",
			zap.Uint64("dom", uint64(domID)),
			zap.Uint32("node", uint32(node)),
			zap.Uint64("child", uint64(child)))
		return Msg{Frame: &Frame{Rect: rect}}
	}
	return b.document(child, rect)
}
