package gui

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/displaylist"
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/resources"
	"github.com/grindlemire/go-gui/internal/scroll"
	"github.com/grindlemire/go-gui/internal/tag"
)

// LayoutResult is one laid-out document of a frame.
type LayoutResult struct {
	DomId tag.DomId
	Dom   *dom.StyledDom
	// Layouts holds the parent-relative box model of every node.
	Layouts []layout.Layout
	// Rects holds the border box of every node in window coordinates.
	Rects  []layout.Rect
	Scroll scroll.Nodes
	Text   map[dom.NodeId]displaylist.TextRun
}

func (lr *LayoutResult) document(textures *GlTextureCache) *displaylist.Document {
	return &displaylist.Document{
		Dom:      lr.Dom,
		Rects:    lr.Rects,
		Layouts:  lr.Layouts,
		Scroll:   lr.Scroll,
		Text:     lr.Text,
		Textures: textures.forDom(lr.DomId),
	}
}

// IFrameMappings links each sub-document node to the document its callback
// produced.
type IFrameMappings map[displaylist.IFrameKey]tag.DomId

// Frame is the output of one RenderFrame call.
type Frame struct {
	Pipeline    tag.PipelineId
	Epoch       tag.Epoch
	DisplayList displaylist.CachedDisplayList

	// Layouts holds every document of the frame. The window's own document
	// is tag.RootDomId.
	Layouts  map[tag.DomId]*LayoutResult
	IFrames  IFrameMappings
	Textures *GlTextureCache

	Warnings []dom.OverrideWarning
	// Skipped lists the sub-documents that were not laid out.
	Skipped []error
	// Collected holds the deletions of the garbage collection that ran
	// after the frame.
	Collected []resources.ResourceUpdate
}

// Root returns the layout of the window's own document.
func (f *Frame) Root() *LayoutResult {
	return f.Layouts[tag.RootDomId]
}

// RenderFrame runs the layout callback and turns its tree into a display
// list: styling, resource loading, flexbox layout with the texture and
// sub-document callbacks, text layout, scroll analysis and display list
// construction. Resources the frame no longer uses are collected afterwards
// unless the window was created WithoutGC.
//
// ctx only bounds resource loading. Once layout starts the frame runs to
// completion.
func (w *Window) RenderFrame(ctx context.Context) (*Frame, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.layoutFn == nil {
		return nil, ErrNoLayoutCallback
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	info := w.layoutInfo()
	root := w.layoutFn(info)
	if root == nil {
		root = dom.Div()
	}

	r := &frameRun{
		w:    w,
		ctx:  ctx,
		info: info,
		frame: &Frame{
			Pipeline: w.pipeline,
			Epoch:    w.epoch,
			Layouts:  map[tag.DomId]*LayoutResult{},
			IFrames:  IFrameMappings{},
			Textures: newGlTextureCache(),
		},
		active: []*dom.Dom{root},
	}
	bounds := layout.RectFrom(layout.Point{}, w.size)
	if err := r.layoutDocument(w.withDefaultFont(root), tag.RootDomId, bounds, w.overrides, 0); err != nil {
		return nil, fmt.Errorf("render frame: %w", err)
	}

	f := r.frame
	docs := make(map[tag.DomId]*displaylist.Document, len(f.Layouts))
	for id, lr := range f.Layouts {
		docs[id] = lr.document(f.Textures)
	}
	f.DisplayList = displaylist.Build(&displaylist.Context{
		Documents:  docs,
		IFrames:    f.IFrames,
		Resources:  w.res,
		WindowSize: w.size,
	}, tag.RootDomId)

	if w.gcAfterFrame {
		f.Collected = resources.GarbageCollect(w.res, w.api, w.pipeline)
	}
	w.epoch = w.epoch.Next()

	w.log.Debug("frame rendered",
		zap.Uint32("epoch", uint32(f.Epoch)),
		zap.Int("documents", len(f.Layouts)),
		zap.Int("frames", f.DisplayList.FrameCount()),
		zap.Duration("elapsed", time.Since(start)))
	return f, nil
}

// withDefaultFont returns a shallow copy of root whose node starts with the
// configured font size, unless that is the CSS default. The node's own
// declarations still win.
func (w *Window) withDefaultFont(root *dom.Dom) *dom.Dom {
	if w.defaultFontPx <= 0 || w.defaultFontPx == css.EmHeight {
		return root
	}
	decl := css.Static(css.NewProperty(css.PropFontSize, css.Pixels(w.defaultFontPx)))
	cp := *root
	cp.Data.Declarations = slices.Insert(slices.Clone(root.Data.Declarations), 0, decl)
	return &cp
}

// frameRun carries the state of one RenderFrame call.
type frameRun struct {
	w     *Window
	ctx   context.Context
	info  dom.LayoutInfo
	frame *Frame
	// active holds the trees being laid out, outermost first.
	active []*dom.Dom
}

// layoutDocument styles and lays out d inside bounds and stores the result
// under id. Sub-documents are laid out recursively.
func (r *frameRun) layoutDocument(d *dom.Dom, id tag.DomId, bounds layout.Rect, overrides dom.Overrides, depth int) error {
	w := r.w
	sd, warnings := dom.Style(d, w.sheet, overrides)
	r.frame.Warnings = append(r.frame.Warnings, warnings...)

	if err := resources.AddFontsAndImages(r.ctx, w.res, w.api, w.pipeline, sd, w.loadFont, w.loadImage); err != nil {
		return err
	}

	tree := newStyledTree(sd, w.res)
	available := layout.Size[layout.Number]{
		Width:  layout.Defined(bounds.Width),
		Height: layout.Defined(bounds.Height),
	}
	layouts := layout.Compute(tree, 0, available)
	rects := layout.Positioned(tree, 0, layouts, bounds.Origin())
	visible := tree.visible()

	lr := &LayoutResult{
		DomId:   id,
		Dom:     sd,
		Layouts: layouts,
		Rects:   rects,
		Text:    tree.textRuns(w.res, layouts, rects, visible),
	}
	r.frame.Layouts[id] = lr

	for i := range sd.NodeData {
		if !visible[i] {
			continue
		}
		nd := &sd.NodeData[i]
		node := dom.NodeId(i)
		cbBounds := dom.Bounds{Width: rects[i].Width, Height: rects[i].Height, HidpiFactor: r.info.HidpiFactor}
		switch nd.Type {
		case dom.NodeGlTexture:
			if nd.GlCallback == nil {
				continue
			}
			tex := nd.GlCallback(r.info, cbBounds)
			resetGL(w.gl)
			if tex != nil {
				r.frame.Textures.add(id, node, tex)
			}
		case dom.NodeIFrame:
			if nd.IFrameCallback == nil {
				continue
			}
			if err := r.iframe(id, node, nd.IFrameCallback(r.info, cbBounds), rects[i], depth); err != nil {
				return err
			}
		}
	}

	lr.Scroll = scroll.Analyze(sd, rects, w.pipeline)
	return nil
}

// iframe lays out child, the tree a sub-document callback returned, and
// links it to its node. A nil child leaves the node empty.
func (r *frameRun) iframe(parent tag.DomId, node dom.NodeId, child *dom.Dom, rect layout.Rect, depth int) error {
	if child == nil {
		return nil
	}
	if slices.Contains(r.active, child) {
		r.skip(fmt.Errorf("%w: dom %d node %d", ErrIFrameCycle, parent, node))
		return nil
	}
	if depth+1 > r.w.maxIFrameDepth {
		r.skip(fmt.Errorf("%w: dom %d node %d exceeds depth %d", ErrIFrameDepth, parent, node, r.w.maxIFrameDepth))
		return nil
	}

	id := tag.NewDomId()
	r.frame.IFrames[displaylist.IFrameKey{Dom: parent, Node: node}] = id
	r.active = append(r.active, child)
	defer func() { r.active = r.active[:len(r.active)-1] }()
	return r.layoutDocument(child, id, rect, nil, depth+1)
}

func (r *frameRun) skip(err error) {
	r.w.log.Warn("sub-document skipped", zap.Error(err))
	r.frame.Skipped = append(r.frame.Skipped, err)
}
