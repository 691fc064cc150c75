package resources

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// decodeImage decodes any registered image format into tightly packed
// pixels. Grayscale images stay single-channel; everything else becomes
// RGBA with premultiplied alpha.
func decodeImage(data []byte) (ImageDescriptor, []byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ImageDescriptor{}, nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if g, ok := img.(*image.Gray); ok {
		pix := make([]byte, w*h)
		for y := range h {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*w:(y+1)*w], g.Pix[off:off+w])
		}
		desc := ImageDescriptor{Format: FormatR8, Width: uint32(w), Height: uint32(h), Stride: uint32(w), IsOpaque: true}
		return desc, pix, nil
	}

	opaque := false
	if o, ok := img.(interface{ Opaque() bool }); ok {
		opaque = o.Opaque()
	}
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	desc := ImageDescriptor{Format: FormatRGBA8, Width: uint32(w), Height: uint32(h), Stride: uint32(rgba.Stride), IsOpaque: opaque}
	return desc, rgba.Pix, nil
}
