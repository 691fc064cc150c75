package dom

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/grindlemire/go-gui/internal/css"
)

// NodeType is the kind of content a node carries.
type NodeType uint8

const (
	NodeDiv NodeType = iota
	NodeText
	NodeLabel
	NodeImage
	NodeGlTexture
	NodeIFrame
)

var nodeTypeNames = [...]string{"div", "text", "label", "image", "texture", "iframe"}

// String returns the selector name of the node type.
func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "unknown"
}

// TextId references a text run stored in the resource layer.
type TextId uint64

// Bounds is the size handed to texture and sub-document callbacks.
type Bounds struct {
	Width       float32
	Height      float32
	HidpiFactor float32
}

// LayoutInfo is the window context handed to callbacks.
type LayoutInfo struct {
	WindowWidth  float32
	WindowHeight float32
	HidpiFactor  float32
}

// TextureFormat is the pixel format of a rendered texture.
type TextureFormat uint8

const (
	FormatRGBA8 TextureFormat = iota
	FormatBGRA8
	FormatR8
)

// Texture is an externally rendered GPU texture.
type Texture struct {
	ID     uint32
	Width  uint32
	Height uint32
	Format TextureFormat
	Opaque bool
}

// GlCallback renders a texture for a texture node. It runs during layout.
type GlCallback func(info LayoutInfo, bounds Bounds) *Texture

// IFrameCallback produces the nested document of a sub-document node. It
// runs during layout.
type IFrameCallback func(info LayoutInfo, bounds Bounds) *Dom

// NodeData is the per-node payload of the arena.
type NodeData struct {
	Type    NodeType
	Label   string
	TextId  TextId
	ImageId string

	GlCallback     GlCallback
	IFrameCallback IFrameCallback

	IDs          []string
	Classes      []string
	Declarations []css.Declaration
	HitTest      bool
}

// HasDynamicDeclarations reports whether any inline declaration is dynamic.
func (d *NodeData) HasDynamicDeclarations() bool {
	for _, decl := range d.Declarations {
		if decl.IsDynamic() {
			return true
		}
	}
	return false
}

// Hash returns a content hash of the node, stable across DOM rebuilds as long
// as the node's type, content, ids and classes do not change.
func (d *NodeData) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	buf[0] = byte(d.Type)
	h.Write(buf[:1])
	h.Write([]byte(d.Label))
	binary.LittleEndian.PutUint64(buf[:], uint64(d.TextId))
	h.Write(buf[:])
	h.Write([]byte(d.ImageId))
	for _, id := range d.IDs {
		h.Write([]byte{'#'})
		h.Write([]byte(id))
	}
	for _, c := range d.Classes {
		h.Write([]byte{'.'})
		h.Write([]byte(c))
	}
	return h.Sum64()
}
