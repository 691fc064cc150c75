package gui

import (
	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/displaylist"
	"github.com/grindlemire/go-gui/internal/dom"
)

// Dom is an element tree returned by a layout callback.
type Dom = dom.Dom

// NodeOption configures an element.
type NodeOption = dom.Option

// LayoutInfo is the window context handed to callbacks.
type LayoutInfo = dom.LayoutInfo

// Bounds is the size handed to texture and sub-document callbacks.
type Bounds = dom.Bounds

// Texture is a texture returned by a texture callback.
type Texture = dom.Texture

// Stylesheet is an ordered list of CSS rules.
type Stylesheet = css.Stylesheet

// DisplayList is the frame tree handed to the renderer.
type DisplayList = displaylist.CachedDisplayList

// Div returns an empty container element.
func Div(opts ...NodeOption) *Dom { return dom.Div(opts...) }

// Label returns an element displaying s.
func Label(s string, opts ...NodeOption) *Dom { return dom.Label(s, opts...) }

// Image returns an element displaying the image loaded for id.
func Image(id string, opts ...NodeOption) *Dom { return dom.Image(id, opts...) }

// GlTexture returns an element whose content cb renders during layout.
func GlTexture(cb dom.GlCallback, opts ...NodeOption) *Dom { return dom.GlTexture(cb, opts...) }

// IFrame returns an element whose content is the tree cb returns during
// layout.
func IFrame(cb dom.IFrameCallback, opts ...NodeOption) *Dom { return dom.IFrame(cb, opts...) }

// WithChildren appends child elements.
func WithChildren(children ...*Dom) NodeOption { return dom.WithChildren(children...) }

// WithClass adds classes matched by stylesheet rules.
func WithClass(classes ...string) NodeOption { return dom.WithClass(classes...) }

// WithID adds ids matched by stylesheet rules.
func WithID(ids ...string) NodeOption { return dom.WithID(ids...) }

// WithHitTest gives the element a hit-test tag in the display list.
func WithHitTest() NodeOption { return dom.WithHitTest() }

// WithStyle parses inline CSS such as "width: 100px; background: red" and
// applies it to the element.
func WithStyle(inline string) (NodeOption, error) {
	decls, err := dom.ParseInline(inline)
	if err != nil {
		return nil, err
	}
	return dom.WithStyle(decls...), nil
}

// MarshalDisplayList encodes dl as JSON.
func MarshalDisplayList(dl DisplayList) ([]byte, error) {
	return displaylist.Marshal(dl)
}

// MustStyle is WithStyle for literal styles. It panics if inline does not
// parse.
func MustStyle(inline string) NodeOption {
	opt, err := WithStyle(inline)
	if err != nil {
		panic(err)
	}
	return opt
}
