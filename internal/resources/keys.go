package resources

import (
	"fmt"
	"math"
	"sync/atomic"
)

// IdNamespace separates the keys of different renderers.
type IdNamespace uint32

var keyCounter atomic.Uint32

func nextKey() uint32 {
	return keyCounter.Add(1)
}

// FontKey identifies an uploaded font face.
type FontKey struct {
	Namespace IdNamespace `json:"namespace"`
	Key       uint32      `json:"key"`
}

// NewFontKey allocates a unique font key in ns.
func NewFontKey(ns IdNamespace) FontKey {
	return FontKey{Namespace: ns, Key: nextKey()}
}

func (k FontKey) String() string {
	return fmt.Sprintf("FontKey(%d,%d)", k.Namespace, k.Key)
}

// FontInstanceKey identifies a font face at one size.
type FontInstanceKey struct {
	Namespace IdNamespace `json:"namespace"`
	Key       uint32      `json:"key"`
}

// NewFontInstanceKey allocates a unique font instance key in ns.
func NewFontInstanceKey(ns IdNamespace) FontInstanceKey {
	return FontInstanceKey{Namespace: ns, Key: nextKey()}
}

func (k FontInstanceKey) String() string {
	return fmt.Sprintf("FontInstanceKey(%d,%d)", k.Namespace, k.Key)
}

// ImageKey identifies an uploaded image.
type ImageKey struct {
	Namespace IdNamespace `json:"namespace"`
	Key       uint32      `json:"key"`
}

// NewImageKey allocates a unique image key in ns.
func NewImageKey(ns IdNamespace) ImageKey {
	return ImageKey{Namespace: ns, Key: nextKey()}
}

func (k ImageKey) String() string {
	return fmt.Sprintf("ImageKey(%d,%d)", k.Namespace, k.Key)
}

// FontId is the family name a font was registered under.
type FontId string

// ImageId identifies a registered image independently of its CSS id.
type ImageId uint64

var imageCounter atomic.Uint64

// NewImageId allocates a fresh ImageId.
func NewImageId() ImageId {
	return ImageId(imageCounter.Add(1))
}

// Au is a font size in app units, 60 per pixel.
type Au int32

// AuPerPx is the number of app units in one pixel.
const AuPerPx = 60

// AuFromPx converts pixels to app units, rounding to the nearest unit.
func AuFromPx(px float32) Au {
	return Au(math.Round(float64(px) * AuPerPx))
}

// Px converts a back to pixels.
func (a Au) Px() float32 {
	return float32(a) / AuPerPx
}

// ImageFormat is the pixel layout of decoded image data.
type ImageFormat uint8

const (
	FormatRGBA8 ImageFormat = iota
	FormatR8
)

func (f ImageFormat) String() string {
	switch f {
	case FormatRGBA8:
		return "rgba8"
	case FormatR8:
		return "r8"
	default:
		return fmt.Sprintf("ImageFormat(%d)", uint8(f))
	}
}

// ImageDescriptor describes decoded pixel data.
type ImageDescriptor struct {
	Format   ImageFormat `json:"format"`
	Width    uint32      `json:"width"`
	Height   uint32      `json:"height"`
	Stride   uint32      `json:"stride"`
	IsOpaque bool        `json:"is_opaque"`
}

// ImageInfo is an image as the renderer knows it.
type ImageInfo struct {
	Key        ImageKey        `json:"key"`
	Descriptor ImageDescriptor `json:"descriptor"`
}
