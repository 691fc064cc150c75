package displaylist

import (
	"fmt"

	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/resources"
	"github.com/grindlemire/go-gui/internal/tag"
	"github.com/grindlemire/go-gui/internal/text"
)

// CachedDisplayList is the output of Build.
type CachedDisplayList struct {
	Root Msg `json:"root"`
}

// Msg is either a plain frame or a frame wrapped in a scroll frame. Exactly
// one field is set.
type Msg struct {
	Frame  *Frame       `json:"frame,omitempty"`
	Scroll *ScrollFrame `json:"scroll,omitempty"`
}

// Inner returns the frame of m, unwrapping a scroll frame.
func (m Msg) Inner() *Frame {
	if m.Scroll != nil {
		return &m.Scroll.Frame
	}
	return m.Frame
}

// Frame is the paint of one node. Content is painted in order, then
// Children in order.
type Frame struct {
	Rect         layout.Rect  `json:"rect"`
	BorderRadius BorderRadius `json:"border_radius"`
	ClipRect     *layout.Rect `json:"clip_rect,omitempty"`
	Tag          tag.TagId    `json:"tag,omitempty"`
	Content      []Primitive  `json:"content,omitempty"`
	Children     []Msg        `json:"children,omitempty"`
}

// ScrollFrame clips Frame to its rect and offsets its descendants by the
// scroll position stored under ScrollID.
type ScrollFrame struct {
	ContentRect layout.Rect          `json:"content_rect"`
	ScrollID    tag.ExternalScrollId `json:"scroll_id"`
	ScrollTag   tag.ScrollTagId      `json:"scroll_tag"`
	Frame       Frame                `json:"frame"`
}

// BorderRadius holds the corner radii in pixels.
type BorderRadius struct {
	TopLeft     float32 `json:"top_left,omitempty"`
	TopRight    float32 `json:"top_right,omitempty"`
	BottomRight float32 `json:"bottom_right,omitempty"`
	BottomLeft  float32 `json:"bottom_left,omitempty"`
}

// PrimitiveKind discriminates Primitive.
type PrimitiveKind uint8

const (
	KindText PrimitiveKind = iota
	KindBackground
	KindImage
	KindBorder
	KindBoxShadow
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBackground:
		return "background"
	case KindImage:
		return "image"
	case KindBorder:
		return "border"
	case KindBoxShadow:
		return "box_shadow"
	default:
		return fmt.Sprintf("PrimitiveKind(%d)", uint8(k))
	}
}

// Primitive is one drawable item. The field matching Kind is set.
type Primitive struct {
	Kind       PrimitiveKind `json:"kind"`
	Text       *Text         `json:"text,omitempty"`
	Background *Background   `json:"background,omitempty"`
	Image      *Image        `json:"image,omitempty"`
	Border     *Border       `json:"border,omitempty"`
	BoxShadow  *BoxShadow    `json:"box_shadow,omitempty"`
}

// Text is a run of positioned glyphs. Clip, when set, bounds the glyphs.
type Text struct {
	Glyphs          []text.GlyphInstance      `json:"glyphs,omitempty"`
	FontInstanceKey resources.FontInstanceKey `json:"font_instance_key"`
	Color           css.ColorU                `json:"color"`
	Clip            *layout.Rect              `json:"clip,omitempty"`
}

// Background fills the frame rect.
type Background struct {
	Kind     css.BackgroundKind   `json:"kind"`
	Color    css.ColorU           `json:"color"`
	Image    *resources.ImageInfo `json:"image,omitempty"`
	Gradient *Gradient            `json:"gradient,omitempty"`
}

// Gradient is a linear gradient with every stop offset resolved to [0, 1].
type Gradient struct {
	Angle float32        `json:"angle"`
	Stops []GradientStop `json:"stops"`
}

// GradientStop is a resolved color stop.
type GradientStop struct {
	Offset float32    `json:"offset"`
	Color  css.ColorU `json:"color"`
}

// AlphaType tells the renderer how to blend image pixels.
type AlphaType uint8

const (
	AlphaPremultiplied AlphaType = iota
	AlphaStraight
)

// ImageSource discriminates where the pixels of an Image come from.
type ImageSource uint8

const (
	SourceResource ImageSource = iota
	SourceTexture
)

// Image draws an uploaded image or a rendered texture over Size.
type Image struct {
	Source    ImageSource          `json:"source"`
	Key       resources.ImageKey   `json:"key"`
	TextureID uint32               `json:"texture_id,omitempty"`
	Size      layout.Size[float32] `json:"size"`
	AlphaType AlphaType            `json:"alpha_type"`
}

// BorderSide is one resolved border edge.
type BorderSide struct {
	Width float32         `json:"width"`
	Color css.ColorU      `json:"color"`
	Style css.BorderStyle `json:"style"`
}

// Border strokes the inside edge of the frame rect.
type Border struct {
	Top    BorderSide `json:"top"`
	Right  BorderSide `json:"right"`
	Bottom BorderSide `json:"bottom"`
	Left   BorderSide `json:"left"`
}

// BoxShadow holds the shadows of one clip mode in declaration order.
type BoxShadow struct {
	ClipMode css.BoxShadowClipMode `json:"clip_mode"`
	Shadows  []Shadow              `json:"shadows"`
}

// Shadow is one resolved box-shadow.
type Shadow struct {
	Offset layout.Point `json:"offset"`
	Color  css.ColorU   `json:"color"`
	Blur   float32      `json:"blur"`
	Spread float32      `json:"spread"`
}
