package dom

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/tag"
)

// StyledNode is the resolved CSS and hit-test tag of one node.
type StyledNode struct {
	Tag    tag.TagId
	Style  css.RectStyle
	Layout css.RectLayout
}

// Overrides maps a node to its dynamic property overrides, keyed by dynamic id.
type Overrides map[NodeId]map[string]css.Property

// OverrideWarning records a dynamic override whose type did not match the
// declaration's default. The default was applied instead.
type OverrideWarning struct {
	Node       NodeId
	DynamicID  string
	Default    css.Property
	Overridden css.Property
}

// StyledDom is the element tree with resolved CSS on every node.
type StyledDom struct {
	Hierarchy NodeHierarchy
	NodeData  []NodeData
	Styled    []StyledNode
	Overrides Overrides
	Warnings  []OverrideWarning
}

// Len returns the number of nodes.
func (s *StyledDom) Len() int {
	return len(s.NodeData)
}

// Style flattens d and applies the stylesheet, inline declarations and
// dynamic overrides. Inheritable properties a node leaves unspecified are
// taken from the nearest ancestor that specifies them.
func Style(d *Dom, sheet *css.Stylesheet, overrides Overrides) (*StyledDom, []OverrideWarning) {
	h, data := d.Arena()
	return StyleArena(h, data, sheet, overrides)
}

// StyleArena styles an already flattened tree.
func StyleArena(h NodeHierarchy, data []NodeData, sheet *css.Stylesheet, overrides Overrides) (*StyledDom, []OverrideWarning) {
	sd := &StyledDom{
		Hierarchy: h,
		NodeData:  data,
		Styled:    make([]StyledNode, len(data)),
		Overrides: overrides,
	}
	for i := range data {
		id := NodeId(i)
		nd := &data[i]
		sn := &sd.Styled[i]

		decls := sheet.Matching(nd.Type.String(), nd.IDs, nd.Classes)
		decls = append(decls, nd.Declarations...)
		dynamic := false
		for _, decl := range decls {
			p := decl.Property
			if decl.IsDynamic() {
				dynamic = true
				if o, ok := overrides[id][decl.DynamicID]; ok {
					if o.Type == p.Type {
						p = o
					} else {
						sd.Warnings = append(sd.Warnings, OverrideWarning{
							Node: id, DynamicID: decl.DynamicID, Default: p, Overridden: o,
						})
						debug.L().Warn("dynamic css override type mismatch",
							zap.Uint32("node", uint32(id)),
							zap.String("dynamic_id", decl.DynamicID),
							zap.Stringer("default", p.Type),
							zap.Stringer("override", o.Type))
					}
				}
			}
			applyProperty(sn, p)
		}

		if nd.HitTest || dynamic {
			sn.Tag = tag.NewTagId()
		}

		var parent *StyledNode
		if p, ok := h.nodes[i].Parent(); ok {
			parent = &sd.Styled[p]
		}
		inherit(sn, parent)
	}
	return sd, sd.Warnings
}

func applyProperty(sn *StyledNode, p css.Property) {
	if p.Type.IsLayout() {
		sn.Layout.Apply(p)
		return
	}
	sn.Style.Apply(p)
}

// inherit fills unspecified, inherit and unset inheritable properties from the
// parent, then resolves a relative font-size against the parent's size.
func inherit(sn, parent *StyledNode) {
	parentFontPx := float32(css.EmHeight)
	if parent != nil {
		for _, t := range css.InheritedTypes {
			own, ok := sn.Style.Inherited(t)
			if ok && own.Kind != css.Inherit && own.Kind != css.Unset {
				continue
			}
			if from, ok := parent.Style.Inherited(t); ok {
				sn.Style.Apply(from)
			}
		}
		parentFontPx = parent.FontSizePx()
	}
	if sn.Style.FontSize == nil {
		return
	}
	fs, ok := sn.Style.FontSize.Get()
	if ok && (fs.Metric == css.Em || fs.Metric == css.Percent) {
		v := css.ExactValue(css.Pixels(fs.ToPixelsEm(parentFontPx, parentFontPx)))
		sn.Style.FontSize = &v
	}
}

// FontSizePx returns the node's resolved font size in pixels.
func (sn *StyledNode) FontSizePx() float32 {
	return sn.Style.FontSize.GetOr(css.Pixels(css.EmHeight)).ToPixels(css.EmHeight)
}
