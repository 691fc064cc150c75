package dom

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-gui/internal/css"
)

// Dom is a builder tree of nodes. It is flattened into the arena by Arena.
type Dom struct {
	Data     NodeData
	Children []*Dom
}

// Option configures a Dom node.
type Option func(*Dom)

// Div returns an empty container node.
func Div(opts ...Option) *Dom {
	return newDom(NodeData{Type: NodeDiv}, opts)
}

// Label returns a node displaying an inline string.
func Label(text string, opts ...Option) *Dom {
	return newDom(NodeData{Type: NodeLabel, Label: text}, opts)
}

// Text returns a node displaying a text run stored in the resource layer.
func Text(id TextId, opts ...Option) *Dom {
	return newDom(NodeData{Type: NodeText, TextId: id}, opts)
}

// Image returns a node displaying the image registered under a CSS image id.
func Image(id string, opts ...Option) *Dom {
	return newDom(NodeData{Type: NodeImage, ImageId: id}, opts)
}

// GlTexture returns a node whose content is rendered by cb.
func GlTexture(cb GlCallback, opts ...Option) *Dom {
	return newDom(NodeData{Type: NodeGlTexture, GlCallback: cb}, opts)
}

// IFrame returns a node whose content is a nested document produced by cb.
func IFrame(cb IFrameCallback, opts ...Option) *Dom {
	return newDom(NodeData{Type: NodeIFrame, IFrameCallback: cb}, opts)
}

func newDom(data NodeData, opts []Option) *Dom {
	d := &Dom{Data: data}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithID adds element ids.
func WithID(ids ...string) Option {
	return func(d *Dom) {
		d.Data.IDs = append(d.Data.IDs, ids...)
	}
}

// WithClass adds classes.
func WithClass(classes ...string) Option {
	return func(d *Dom) {
		d.Data.Classes = append(d.Data.Classes, classes...)
	}
}

// WithStyle adds inline declarations, applied after stylesheet rules.
func WithStyle(decls ...css.Declaration) Option {
	return func(d *Dom) {
		d.Data.Declarations = append(d.Data.Declarations, decls...)
	}
}

// WithCSS adds static inline properties.
func WithCSS(props ...css.Property) Option {
	return func(d *Dom) {
		for _, p := range props {
			d.Data.Declarations = append(d.Data.Declarations, css.Static(p))
		}
	}
}

// WithHitTest marks the node as hit-testable so that it receives a tag.
func WithHitTest() Option {
	return func(d *Dom) {
		d.Data.HitTest = true
	}
}

// WithChildren appends children.
func WithChildren(children ...*Dom) Option {
	return func(d *Dom) {
		d.AddChild(children...)
	}
}

// AddChild appends children and returns d for chaining.
func (d *Dom) AddChild(children ...*Dom) *Dom {
	d.Children = append(d.Children, children...)
	return d
}

// NodeCount returns the number of nodes in the tree rooted at d.
func (d *Dom) NodeCount() int {
	n := 1
	for _, c := range d.Children {
		n += c.NodeCount()
	}
	return n
}

// Arena flattens the tree in pre-order, so every parent precedes its children.
func (d *Dom) Arena() (NodeHierarchy, []NodeData) {
	count := d.NodeCount()
	h := NodeHierarchy{nodes: make([]Node, 0, count)}
	data := make([]NodeData, 0, count)
	var visit func(n *Dom, parent nodeRef) NodeId
	visit = func(n *Dom, parent nodeRef) NodeId {
		id := NodeId(len(h.nodes))
		h.nodes = append(h.nodes, Node{parent: parent})
		data = append(data, n.Data)
		var prev nodeRef
		for _, c := range n.Children {
			cid := visit(c, ref(id))
			h.nodes[cid].previousSibling = prev
			if prev != 0 {
				h.nodes[prev-1].nextSibling = ref(cid)
			} else {
				h.nodes[id].firstChild = ref(cid)
			}
			h.nodes[id].lastChild = ref(cid)
			prev = ref(cid)
		}
		return id
	}
	visit(d, 0)
	return h, data
}

// ParseInline parses "key: value; key: value" into static declarations.
// A value of the form "var(id, default)" becomes a dynamic declaration.
func ParseInline(s string) ([]css.Declaration, error) {
	var out []css.Declaration
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("declaration %q has no value: %w", part, css.ErrInvalidValue)
		}
		value = strings.TrimSpace(value)
		dynamicID := ""
		if strings.HasPrefix(value, "var(") && strings.HasSuffix(value, ")") {
			inner := strings.TrimSuffix(strings.TrimPrefix(value, "var("), ")")
			id, def, ok := strings.Cut(inner, ",")
			if !ok {
				return nil, fmt.Errorf("dynamic declaration %q needs a default: %w", part, css.ErrInvalidValue)
			}
			dynamicID = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(id), "--"))
			value = strings.TrimSpace(def)
		}
		props, err := css.ParseDeclaration(key, value)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		for _, p := range props {
			if dynamicID != "" {
				out = append(out, css.Dynamic(dynamicID, p))
			} else {
				out = append(out, css.Static(p))
			}
		}
	}
	return out, nil
}
