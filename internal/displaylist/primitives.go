package displaylist

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/resources"
)

func borderRadius(s *css.RectStyle, rect layout.Rect) BorderRadius {
	px := func(v *css.Value[css.PixelValue]) float32 {
		return max(0, v.GetOr(css.Pixels(0)).ToPixels(rect.Width))
	}
	return BorderRadius{
		TopLeft:     px(s.BorderTopLeftRadius),
		TopRight:    px(s.BorderTopRightRadius),
		BottomRight: px(s.BorderBottomRightRadius),
		BottomLeft:  px(s.BorderBottomLeftRadius),
	}
}

// boxShadow collects the shadows of one clip mode.
func boxShadow(s *css.RectStyle, mode css.BoxShadowClipMode, rect layout.Rect) (Primitive, bool) {
	var shadows []Shadow
	for _, bs := range s.BoxShadow.GetOr(nil) {
		if bs.ClipMode != mode {
			continue
		}
		shadows = append(shadows, Shadow{
			Offset: layout.Point{X: bs.OffsetX.ToPixels(rect.Width), Y: bs.OffsetY.ToPixels(rect.Height)},
			Color:  bs.Color,
			Blur:   max(0, bs.Blur.ToPixels(rect.Width)),
			Spread: bs.Spread.ToPixels(rect.Width),
		})
	}
	if len(shadows) == 0 {
		return Primitive{}, false
	}
	return Primitive{Kind: KindBoxShadow, BoxShadow: &BoxShadow{ClipMode: mode, Shadows: shadows}}, true
}

// background resolves the background of a node. An image background whose
// CSS id is not registered is skipped.
func (b *builder) background(s *css.RectStyle) (Primitive, bool) {
	if s.Background == nil {
		return Primitive{}, false
	}
	bg, ok := s.Background.Get()
	if !ok {
		return Primitive{}, false
	}
	out := &Background{Kind: bg.Kind}
	switch bg.Kind {
	case css.BackgroundColor:
		out.Color = bg.Color
	case css.BackgroundImage:
		info, ok := b.imageInfo(bg.Image)
		if !ok {
			return Primitive{}, false
		}
		out.Image = &info
	case css.BackgroundLinearGradient:
		out.Gradient = &Gradient{Angle: bg.Gradient.Angle, Stops: normalizeStops(bg.Gradient.Stops)}
	}
	return Primitive{Kind: KindBackground, Background: out}, true
}

func (b *builder) imageInfo(cssID string) (resources.ImageInfo, bool) {
	if b.ctx.Resources == nil {
		return resources.ImageInfo{}, false
	}
	id, ok := b.ctx.Resources.CSSImageId(cssID)
	if !ok {
		debug.L().Debug("image not registered", zap.String("id", cssID))
		return resources.ImageInfo{}, false
	}
	return b.ctx.Resources.ImageInfo(id)
}

func (b *builder) image(cssID string, rect layout.Rect) (Primitive, bool) {
	info, ok := b.imageInfo(cssID)
	if !ok {
		return Primitive{}, false
	}
	return Primitive{Kind: KindImage, Image: &Image{
		Source:    SourceResource,
		Key:       info.Key,
		Size:      rect.Size(),
		AlphaType: AlphaPremultiplied,
	}}, true
}

func texturePrimitive(tex *dom.Texture, rect layout.Rect) Primitive {
	return Primitive{Kind: KindImage, Image: &Image{
		Source:    SourceTexture,
		TextureID: tex.ID,
		Size:      rect.Size(),
		AlphaType: AlphaStraight,
	}}
}

func textPrimitive(run TextRun, sn *dom.StyledNode, l layout.Layout, rect layout.Rect, window layout.Size[float32]) Primitive {
	return Primitive{Kind: KindText, Text: &Text{
		Glyphs:          run.Glyphs,
		FontInstanceKey: run.FontInstanceKey,
		Color:           sn.Style.TextColor.GetOr(css.Black),
		Clip:            textClip(&sn.Layout, l.Padding, rect, window),
	}}
}

// textClip bounds the glyphs of a text node. A hidden axis is clipped to
// the rect inset by its padding; a visible axis extends to the window size.
func textClip(l *css.RectLayout, padding layout.Edges, rect layout.Rect, window layout.Size[float32]) *layout.Rect {
	xVisible := l.OverflowXOr(css.OverflowVisible).IsVisible()
	yVisible := l.OverflowYOr(css.OverflowVisible).IsVisible()
	inner := rect.Inset(padding)

	var clip layout.Rect
	switch {
	case xVisible && yVisible:
		return nil
	case !xVisible && !yVisible:
		clip = inner
	case xVisible:
		clip = layout.NewRect(rect.X, inner.Y, window.Width, inner.Height)
	default:
		clip = layout.NewRect(inner.X, rect.Y, inner.Width, window.Height)
	}
	return &clip
}

// border resolves the four sides of a node's border. Sides without a color
// use the text color, sides without a style are solid.
func border(sn *dom.StyledNode, rect layout.Rect) (Primitive, bool) {
	l, s := &sn.Layout, &sn.Style
	if !l.HasBorder() {
		return Primitive{}, false
	}
	fallback := s.TextColor.GetOr(css.Black)
	side := func(w *css.Value[css.PixelValue], c *css.Value[css.ColorU], st *css.Value[css.BorderStyle]) BorderSide {
		return BorderSide{
			Width: max(0, w.GetOr(css.Pixels(0)).ToPixels(rect.Width)),
			Color: c.GetOr(fallback),
			Style: st.GetOr(css.BorderSolid),
		}
	}
	return Primitive{Kind: KindBorder, Border: &Border{
		Top:    side(l.BorderTopWidth, s.BorderTopColor, s.BorderTopStyle),
		Right:  side(l.BorderRightWidth, s.BorderRightColor, s.BorderRightStyle),
		Bottom: side(l.BorderBottomWidth, s.BorderBottomColor, s.BorderBottomStyle),
		Left:   side(l.BorderLeftWidth, s.BorderLeftColor, s.BorderLeftStyle),
	}}, true
}

// normalizeStops resolves every stop offset to [0, 1]: a missing first or
// last offset is 0 or 1, an offset below an earlier one is raised to it, and
// runs of missing offsets are spread evenly between their neighbours.
func normalizeStops(stops []css.GradientStop) []GradientStop {
	n := len(stops)
	if n == 0 {
		return nil
	}
	offsets := make([]float32, n)
	known := make([]bool, n)
	for i, s := range stops {
		if s.Offset != nil {
			offsets[i] = s.Offset.Number.Get() / 100
			known[i] = true
		}
	}
	if !known[0] {
		offsets[0], known[0] = 0, true
	}
	if !known[n-1] {
		offsets[n-1], known[n-1] = 1, true
	}
	var highest float32
	for i := range offsets {
		if known[i] {
			offsets[i] = max(offsets[i], highest)
			highest = offsets[i]
		}
	}
	for i := 1; i < n; {
		if known[i] {
			i++
			continue
		}
		end := i
		for !known[end] {
			end++
		}
		start := i - 1
		step := (offsets[end] - offsets[start]) / float32(end-start)
		for j := i; j < end; j++ {
			offsets[j] = offsets[start] + step*float32(j-start)
		}
		i = end
	}

	out := make([]GradientStop, n)
	for i, s := range stops {
		out[i] = GradientStop{Offset: clamp01(offsets[i]), Color: s.Color}
	}
	return out
}

func clamp01(f float32) float32 {
	return min(1, max(0, f))
}
