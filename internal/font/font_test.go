package font

import (
	"encoding/binary"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/curve"
)

func TestParse_GoRegularMatchesSfnt(t *testing.T) {
	pf := Parse(goregular.TTF, 0)
	ref, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("sfnt.Parse: %v", err)
	}
	var buf sfnt.Buffer

	if got, want := int(pf.NumGlyphs), ref.NumGlyphs(); got != want {
		t.Errorf("NumGlyphs = %d, want %d", got, want)
	}
	if got, want := int(pf.Metrics.UnitsPerEm), int(ref.UnitsPerEm()); got != want {
		t.Errorf("UnitsPerEm = %d, want %d", got, want)
	}

	ppem := fixed.I(int(ref.UnitsPerEm()))
	for _, r := range "Aaz09 .,?ÀéŁ" {
		want, err := ref.GlyphIndex(&buf, r)
		if err != nil {
			t.Fatalf("sfnt GlyphIndex(%q): %v", r, err)
		}
		got, ok := pf.GlyphIndex(r)
		if !ok || uint16(got) != uint16(want) {
			t.Errorf("GlyphIndex(%q) = %d, %v, want %d", r, got, ok, want)
			continue
		}
		adv, err := ref.GlyphAdvance(&buf, want, ppem, font.HintingNone)
		if err != nil {
			t.Fatalf("sfnt GlyphAdvance(%q): %v", r, err)
		}
		if got, want := int(pf.Advance(got)), adv.Round(); got != want {
			t.Errorf("Advance(%q) = %d, want %d", r, got, want)
		}
	}
}

func TestParse_GoRegularGlyphs(t *testing.T) {
	pf := Parse(goregular.TTF, 0)
	if pf.SpaceWidth == 0 {
		t.Error("SpaceWidth = 0, want the advance of ' '")
	}
	space, ok := pf.GlyphIndex(' ')
	if !ok || pf.Glyph(space) == nil {
		t.Fatal("space glyph missing")
	}

	a, _ := pf.GlyphIndex('A')
	g := pf.Glyph(a)
	if g == nil || len(g.Outline) == 0 {
		t.Fatal("glyph 'A' has no outline")
	}
	if g.Outline[0].Kind != curve.MoveToKind {
		t.Errorf("first element kind = %v, want MoveTo", g.Outline[0].Kind)
	}
	if last := g.Outline[len(g.Outline)-1]; last.Kind != curve.ClosePathKind {
		t.Errorf("last element kind = %v, want ClosePath", last.Kind)
	}
	for _, el := range g.Outline {
		if el.Kind == curve.ClosePathKind {
			continue
		}
		if el.P0.X < float64(g.Bounds.XMin)-1 || el.P0.X > float64(g.Bounds.XMax)+1 {
			t.Errorf("outline point x %v outside bounds %+v", el.P0.X, g.Bounds)
			break
		}
	}

	e, _ := pf.GlyphIndex('é')
	if ge := pf.Glyph(e); ge == nil || len(ge.Outline) == 0 || len(ge.Unresolved) != 0 {
		t.Errorf("glyph 'é' = %+v, want a resolved outline", ge)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := map[string]struct {
		data  []byte
		index int
	}{
		"empty":           {data: nil},
		"garbage":         {data: []byte("definitely not a font file")},
		"truncated":       {data: goregular.TTF[:64]},
		"ttc empty face":  {data: append([]byte("ttcf\x00\x01\x00\x00\x00\x00\x00\x01"), 0, 0, 0, 16)},
		"index on single": {data: goregular.TTF, index: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pf := Parse(tt.data, tt.index)
			if pf.Metrics != (FontMetrics{}) {
				t.Errorf("Metrics = %+v, want zero", pf.Metrics)
			}
			if g, ok := pf.GlyphIndex('A'); ok || g != 0 {
				t.Errorf("GlyphIndex('A') = %d, %v, want 0, false", g, ok)
			}
			if adv := pf.Advance(0); adv != 0 {
				t.Errorf("Advance(0) = %d, want 0", adv)
			}
		})
	}
}

// fontBuilder assembles a minimal sfnt from raw tables.
type fontBuilder map[string][]byte

func (fb fontBuilder) build() []byte {
	tags := make([]string, 0, len(fb))
	for tag := range fb {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	out := make([]byte, 12+16*len(tags))
	binary.BigEndian.PutUint32(out, 0x00010000)
	binary.BigEndian.PutUint16(out[4:], uint16(len(tags)))
	for i, tag := range tags {
		rec := out[12+16*i:]
		copy(rec, tag)
		binary.BigEndian.PutUint32(rec[8:], uint32(len(out)))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(fb[tag])))
		out = append(out, fb[tag]...)
	}
	return out
}

func be16(vs ...int) []byte {
	out := make([]byte, 2*len(vs))
	for i, v := range vs {
		binary.BigEndian.PutUint16(out[2*i:], uint16(v))
	}
	return out
}

func be32(vs ...int) []byte {
	out := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.BigEndian.PutUint32(out[4*i:], uint32(v))
	}
	return out
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func headTable(unitsPerEm int) []byte {
	h := make([]byte, 54)
	binary.BigEndian.PutUint16(h[18:], uint16(unitsPerEm))
	binary.BigEndian.PutUint16(h[50:], 1) // long loca
	return h
}

// squareGlyph is a simple glyph with one on-curve square contour.
func squareGlyph(size int) []byte {
	return cat(
		be16(1, 0, 0, size, size), // contours, bbox
		be16(3),                   // end point of contour 0
		be16(0),                   // no instructions
		[]byte{0x01, 0x01, 0x01, 0x01},
		be16(0, size, 0, -size), // x deltas
		be16(0, 0, size, 0),     // y deltas
	)
}

// compositeGlyph references one glyph with an x/y offset.
func compositeGlyph(target, dx, dy int) []byte {
	return cat(be16(0xFFFF, 0, 0, 0, 0), be16(flagArgWords|flagArgsXY, target, dx, dy))
}

func glyfFont(unitsPerEm int, glyphs ...[]byte) []byte {
	var glyf []byte
	loca := []int{0}
	for _, g := range glyphs {
		glyf = append(glyf, g...)
		loca = append(loca, len(glyf))
	}
	return fontBuilder{
		"head": headTable(unitsPerEm),
		"maxp": cat(be32(0x5000), be16(len(glyphs))),
		"loca": be32(loca...),
		"glyf": glyf,
	}.build()
}

func TestParse_CompositeResolution(t *testing.T) {
	pf := Parse(glyfFont(1000,
		nil,                       // 0: empty
		compositeGlyph(2, 0, 0),   // 1: cycle 1 -> 2
		compositeGlyph(1, 0, 0),   // 2: cycle 2 -> 1
		squareGlyph(100),          // 3: simple
		compositeGlyph(3, 10, 20), // 4: offset copy of 3
		compositeGlyph(4, 5, 5),   // 5: nested composite
	), 0)

	for _, id := range []GlyphIndex{1, 2} {
		g := pf.Glyph(id)
		if g == nil {
			t.Fatalf("glyph %d missing", id)
		}
		if len(g.Unresolved) != 0 || len(g.Outline) != 0 {
			t.Errorf("cyclic glyph %d = %+v, want dropped", id, g)
		}
	}

	want := []curve.PathElement{
		{Kind: curve.MoveToKind, P0: curve.Point{X: 15, Y: 25}},
		{Kind: curve.LineToKind, P0: curve.Point{X: 115, Y: 25}},
		{Kind: curve.LineToKind, P0: curve.Point{X: 115, Y: 125}},
		{Kind: curve.LineToKind, P0: curve.Point{X: 15, Y: 125}},
		{Kind: curve.ClosePathKind},
	}
	if diff := cmp.Diff(want, pf.Glyph(5).Outline); diff != "" {
		t.Errorf("nested composite outline mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_CompositeDepthLimit(t *testing.T) {
	glyphs := [][]byte{squareGlyph(10)}
	for i := 0; i < MaxCompositePasses+2; i++ {
		glyphs = append(glyphs, compositeGlyph(i, 1, 0))
	}
	pf := Parse(glyfFont(1000, glyphs...), 0)

	if g := pf.Glyph(GlyphIndex(MaxCompositePasses)); len(g.Outline) == 0 {
		t.Errorf("glyph at depth %d unresolved, want resolved", MaxCompositePasses)
	}
	if g := pf.Glyph(GlyphIndex(MaxCompositePasses + 2)); len(g.Outline) != 0 || len(g.Unresolved) != 0 {
		t.Errorf("glyph beyond depth limit = %+v, want dropped", g)
	}
}

func TestParse_DefaultsAndMissingTables(t *testing.T) {
	pf := Parse(glyfFont(0, squareGlyph(10)), 0)
	if pf.Metrics.UnitsPerEm != 1000 {
		t.Errorf("UnitsPerEm = %d, want 1000", pf.Metrics.UnitsPerEm)
	}
	if g, ok := pf.GlyphIndex('x'); ok || g != 0 {
		t.Errorf("GlyphIndex without cmap = %d, %v, want 0, false", g, ok)
	}
	if pf.GSUB() != nil || pf.GPOS() != nil || pf.GDEF() != nil {
		t.Error("layout tables present in a font without them")
	}
}

func TestCmapFormat4(t *testing.T) {
	// Two segments: 'A'..'C' -> 10..12 via delta, then the 0xFFFF sentinel.
	sub := cat(
		be16(4, 0, 0, 4, 0, 0, 0), // format, length, language, segX2, search fields
		be16('C', 0xFFFF),         // end codes
		be16(0),                   // pad
		be16('A', 0xFFFF),         // start codes
		be16(10-'A', 1),           // deltas
		be16(0, 0),                // range offsets
	)
	cm := cat(be16(0, 1), be16(3, 1), be32(12), sub)
	c, _ := parseCmap(segment(cm))
	if c == nil {
		t.Fatal("no subtable selected")
	}

	tests := map[string]struct {
		r    rune
		want GlyphIndex
	}{
		"first":    {'A', 10},
		"last":     {'C', 12},
		"before":   {'@', 0},
		"after":    {'D', 0},
		"astral":   {0x1F600, 0},
		"sentinel": {0xFFFF, 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := c.lookup(tt.r); got != tt.want {
				t.Errorf("lookup(%U) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}
}

func TestCmapFormat12(t *testing.T) {
	sub := cat(be16(12, 0), be32(0, 0, 2), be32(0x20, 0x20, 3), be32(0x1F600, 0x1F602, 100))
	c := parseCmapSubtable(segment(sub), 12)
	if got := c.lookup(0x1F601); got != 101 {
		t.Errorf("lookup(U+1F601) = %d, want 101", got)
	}
}

func TestTag(t *testing.T) {
	if got := MakeTag("ab").String(); got != "ab  " {
		t.Errorf("MakeTag(ab) = %q, want %q", got, "ab  ")
	}
	if MakeTag("GSUB") != tagGSUB {
		t.Error("MakeTag(GSUB) != tagGSUB")
	}
}
