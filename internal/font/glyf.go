package font

import (
	"iter"
	"slices"

	"honnef.co/go/curve"

	"go.uber.org/zap"

	"github.com/grindlemire/go-gui/internal/debug"
)

// MaxCompositePasses bounds composite glyph resolution. Components still
// unresolved afterwards (cycles, or nesting deeper than this) are dropped.
const MaxCompositePasses = 6

// BoundingBox is a glyph bounding box in font units.
type BoundingBox struct {
	XMin, YMin, XMax, YMax int16
}

// Width returns XMax - XMin.
func (b BoundingBox) Width() int32 { return int32(b.XMax) - int32(b.XMin) }

// Height returns YMax - YMin.
func (b BoundingBox) Height() int32 { return int32(b.YMax) - int32(b.YMin) }

// OwnedGlyph is a decoded glyph record.
type OwnedGlyph struct {
	Bounds  BoundingBox
	Advance uint16
	Outline []curve.PathElement

	// Unresolved holds composite components not yet merged into Outline.
	Unresolved []Component
}

// PathElements iterates the resolved outline.
func (g *OwnedGlyph) PathElements() iter.Seq[curve.PathElement] {
	if g == nil {
		return func(func(curve.PathElement) bool) {}
	}
	return slices.Values(g.Outline)
}

// TransformKind says which transform a composite component carries.
type TransformKind uint8

const (
	TransformNone TransformKind = iota
	TransformScale
	TransformXY
	TransformMatrix
)

// Component is one element of a composite glyph.
type Component struct {
	Glyph         GlyphIndex
	Flags         uint16
	DX, DY        int16
	Kind          TransformKind
	XX, XY        float32
	YX, YY        float32
	ScaledOffset  bool
	PointMatching bool
}

const (
	flagArgWords     = 0x0001
	flagArgsXY       = 0x0002
	flagScale        = 0x0008
	flagMoreComps    = 0x0020
	flagXYScale      = 0x0040
	flagTwoByTwo     = 0x0080
	flagScaledOffset = 0x0800
	flagOnCurve      = 0x01
	flagXShort       = 0x02
	flagYShort       = 0x04
	flagRepeat       = 0x08
	flagXSameOrPos   = 0x10
	flagYSameOrPos   = 0x20
)

func parseLoca(s segment, numGlyphs int, format int16) []uint32 {
	loca := make([]uint32, 0, numGlyphs+1)
	for i := 0; i <= numGlyphs; i++ {
		if format == 0 {
			if !s.has(2*i, 2) {
				break
			}
			loca = append(loca, uint32(s.u16(2*i))*2)
		} else {
			if !s.has(4*i, 4) {
				break
			}
			loca = append(loca, s.u32(4*i))
		}
	}
	return loca
}

func decodeGlyphs(glyf segment, loca []uint32, pf *ParsedFont) map[GlyphIndex]*OwnedGlyph {
	glyphs := make(map[GlyphIndex]*OwnedGlyph, len(loca))
	for i := 0; i+1 < len(loca); i++ {
		g := GlyphIndex(i)
		rec := &OwnedGlyph{Advance: pf.Advance(g)}
		glyphs[g] = rec
		start, end := int(loca[i]), int(loca[i+1])
		if end <= start {
			continue
		}
		data := glyf.slice(start, end)
		if len(data) < 10 {
			continue
		}
		rec.Bounds = BoundingBox{data.i16(2), data.i16(4), data.i16(6), data.i16(8)}
		if n := data.i16(0); n >= 0 {
			rec.Outline = decodeSimple(data, int(n))
		} else {
			rec.Unresolved = decodeComposite(data)
		}
	}
	resolveComposites(glyphs)
	return glyphs
}

type glyphPoint struct {
	x, y    float64
	onCurve bool
}

func decodeSimple(s segment, contours int) []curve.PathElement {
	if contours == 0 {
		return nil
	}
	ends := make([]int, contours)
	for i := range ends {
		ends[i] = int(s.u16(10 + 2*i))
	}
	numPoints := ends[contours-1] + 1
	off := 10 + 2*contours
	off += 2 + int(s.u16(off))

	flags := make([]uint8, 0, numPoints)
	for len(flags) < numPoints && off < len(s) {
		f := s.u8(off)
		off++
		flags = append(flags, f)
		if f&flagRepeat != 0 {
			n := int(s.u8(off))
			off++
			for ; n > 0 && len(flags) < numPoints; n-- {
				flags = append(flags, f)
			}
		}
	}
	if len(flags) < numPoints {
		return nil
	}

	pts := make([]glyphPoint, numPoints)
	var v int
	for i, f := range flags {
		switch {
		case f&flagXShort != 0:
			d := int(s.u8(off))
			off++
			if f&flagXSameOrPos == 0 {
				d = -d
			}
			v += d
		case f&flagXSameOrPos == 0:
			v += int(s.i16(off))
			off += 2
		}
		pts[i].x = float64(v)
		pts[i].onCurve = f&flagOnCurve != 0
	}
	v = 0
	for i, f := range flags {
		switch {
		case f&flagYShort != 0:
			d := int(s.u8(off))
			off++
			if f&flagYSameOrPos == 0 {
				d = -d
			}
			v += d
		case f&flagYSameOrPos == 0:
			v += int(s.i16(off))
			off += 2
		}
		pts[i].y = float64(v)
	}

	var path []curve.PathElement
	start := 0
	for _, end := range ends {
		if end < start || end >= numPoints {
			break
		}
		path = appendContour(path, pts[start:end+1])
		start = end + 1
	}
	return path
}

func pt(p glyphPoint) curve.Point { return curve.Point{X: p.x, Y: p.y} }

func mid(a, b glyphPoint) glyphPoint {
	return glyphPoint{x: (a.x + b.x) / 2, y: (a.y + b.y) / 2, onCurve: true}
}

// appendContour converts one quadratic TrueType contour into path commands.
func appendContour(path []curve.PathElement, c []glyphPoint) []curve.PathElement {
	if len(c) == 0 {
		return path
	}
	var first glyphPoint
	rest := c
	switch {
	case c[0].onCurve:
		first, rest = c[0], c[1:]
	case c[len(c)-1].onCurve:
		first, rest = c[len(c)-1], c[:len(c)-1]
	default:
		first = mid(c[len(c)-1], c[0])
	}
	path = append(path, curve.PathElement{Kind: curve.MoveToKind, P0: pt(first)})
	var ctrl *glyphPoint
	for i := range rest {
		p := rest[i]
		if p.onCurve {
			if ctrl != nil {
				path = append(path, curve.PathElement{Kind: curve.QuadToKind, P0: pt(*ctrl), P1: pt(p)})
				ctrl = nil
			} else {
				path = append(path, curve.PathElement{Kind: curve.LineToKind, P0: pt(p)})
			}
			continue
		}
		if ctrl != nil {
			m := mid(*ctrl, p)
			path = append(path, curve.PathElement{Kind: curve.QuadToKind, P0: pt(*ctrl), P1: pt(m)})
		}
		ctrl = &rest[i]
	}
	if ctrl != nil {
		path = append(path, curve.PathElement{Kind: curve.QuadToKind, P0: pt(*ctrl), P1: pt(first)})
	}
	return append(path, curve.PathElement{Kind: curve.ClosePathKind})
}

func decodeComposite(s segment) []Component {
	var comps []Component
	off := 10
	for {
		if !s.has(off, 4) {
			return comps
		}
		c := Component{Flags: s.u16(off), Glyph: GlyphIndex(s.u16(off + 2)), XX: 1, YY: 1}
		off += 4
		var a, b int16
		if c.Flags&flagArgWords != 0 {
			a, b = s.i16(off), s.i16(off+2)
			off += 4
		} else {
			a, b = int16(int8(s.u8(off))), int16(int8(s.u8(off+1)))
			off += 2
		}
		if c.Flags&flagArgsXY != 0 {
			c.DX, c.DY = a, b
		} else {
			c.PointMatching = true
		}
		switch {
		case c.Flags&flagScale != 0:
			c.Kind = TransformScale
			c.XX = s.f2dot14(off)
			c.YY = c.XX
			off += 2
		case c.Flags&flagXYScale != 0:
			c.Kind = TransformXY
			c.XX, c.YY = s.f2dot14(off), s.f2dot14(off+2)
			off += 4
		case c.Flags&flagTwoByTwo != 0:
			c.Kind = TransformMatrix
			c.XX, c.XY = s.f2dot14(off), s.f2dot14(off+2)
			c.YX, c.YY = s.f2dot14(off+4), s.f2dot14(off+6)
			off += 8
		}
		c.ScaledOffset = c.Flags&flagScaledOffset != 0
		comps = append(comps, c)
		if c.Flags&flagMoreComps == 0 {
			return comps
		}
	}
}

func (c Component) apply(p curve.Point) curve.Point {
	x := float64(c.XX)*p.X + float64(c.YX)*p.Y
	y := float64(c.XY)*p.X + float64(c.YY)*p.Y
	dx, dy := float64(c.DX), float64(c.DY)
	if c.ScaledOffset && c.Kind != TransformNone {
		dx, dy = float64(c.XX)*dx+float64(c.YX)*dy, float64(c.XY)*dx+float64(c.YY)*dy
	}
	return curve.Point{X: x + dx, Y: y + dy}
}

func (c Component) transform(path []curve.PathElement) []curve.PathElement {
	out := make([]curve.PathElement, len(path))
	for i, el := range path {
		out[i] = curve.PathElement{Kind: el.Kind}
		switch el.Kind {
		case curve.MoveToKind, curve.LineToKind:
			out[i].P0 = c.apply(el.P0)
		case curve.QuadToKind:
			out[i].P0, out[i].P1 = c.apply(el.P0), c.apply(el.P1)
		case curve.CubicToKind:
			out[i].P0, out[i].P1, out[i].P2 = c.apply(el.P0), c.apply(el.P1), c.apply(el.P2)
		}
	}
	return out
}

// resolveComposites merges component outlines in at most
// MaxCompositePasses passes. A composite resolves only once every component
// it references is fully resolved.
func resolveComposites(glyphs map[GlyphIndex]*OwnedGlyph) {
	for pass := 0; pass < MaxCompositePasses; pass++ {
		pending := make(map[GlyphIndex]bool)
		for id, g := range glyphs {
			if len(g.Unresolved) > 0 {
				pending[id] = true
			}
		}
		if len(pending) == 0 {
			return
		}
		progressed := false
	next:
		for id := range pending {
			g := glyphs[id]
			for _, c := range g.Unresolved {
				if pending[c.Glyph] {
					continue next
				}
			}
			for _, c := range g.Unresolved {
				if t, ok := glyphs[c.Glyph]; ok {
					g.Outline = append(g.Outline, c.transform(t.Outline)...)
				}
			}
			g.Unresolved = nil
			progressed = true
		}
		if !progressed {
			break
		}
	}
	for id, g := range glyphs {
		if len(g.Unresolved) > 0 {
			debug.L().Debug("dropping unresolved composite glyph", zap.Uint16("glyph", uint16(id)))
			g.Unresolved = nil
			g.Outline = nil
		}
	}
}
