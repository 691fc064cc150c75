package shape

import "github.com/grindlemire/go-gui/internal/font"

// OriginKind says whether a glyph still corresponds to a single source
// character.
type OriginKind uint8

const (
	OriginChar OriginKind = iota
	OriginDirect
)

// GlyphOrigin records the source character of a glyph, or Direct when a
// substitution produced it.
type GlyphOrigin struct {
	Kind OriginKind
	Char rune
}

// VariationSelector is a standardized variation selector attached to a glyph.
type VariationSelector rune

// Flags carry per-glyph rendering hints.
type Flags uint8

const (
	FlagSmallCaps Flags = 1 << iota
	FlagMultiSubstDup
	FlagVertAlt
	FlagFakeBold
	FlagFakeItalic
)

// RawGlyph is a glyph in the substitution buffer.
type RawGlyph struct {
	Unicodes         []rune
	Glyph            font.GlyphIndex
	LigaComponentPos uint16
	Origin           GlyphOrigin
	Flags            Flags
	Variation        VariationSelector

	// Cluster is the index of the first source codepoint, ClusterLen the
	// number of source codepoints this glyph accounts for.
	Cluster    uint32
	ClusterLen uint32

	mask uint32
}

func (g *RawGlyph) SmallCaps() bool     { return g.Flags&FlagSmallCaps != 0 }
func (g *RawGlyph) MultiSubstDup() bool { return g.Flags&FlagMultiSubstDup != 0 }
func (g *RawGlyph) IsVertAlt() bool     { return g.Flags&FlagVertAlt != 0 }
func (g *RawGlyph) FakeBold() bool      { return g.Flags&FlagFakeBold != 0 }
func (g *RawGlyph) FakeItalic() bool    { return g.Flags&FlagFakeItalic != 0 }

// PlacementKind tags the Placement union.
type PlacementKind uint8

const (
	PlacementNone PlacementKind = iota
	PlacementDistance
	PlacementMarkAnchor
	PlacementMarkOverprint
	PlacementCursiveAnchor
)

// Placement positions a glyph relative to its pen position or to another
// glyph. Which fields are meaningful depends on Kind:
//
//	Distance:      DX, DY
//	MarkAnchor:    Base, BaseAnchor, MarkAnchor
//	MarkOverprint: Base
//	CursiveAnchor: Base (the exit glyph), RTL, ExitAnchor, EntryAnchor
type Placement struct {
	Kind        PlacementKind
	DX, DY      int32
	Base        int
	BaseAnchor  font.Anchor
	MarkAnchor  font.Anchor
	RTL         bool
	ExitAnchor  font.Anchor
	EntryAnchor font.Anchor
}

// Advance holds the unscaled advance and glyph box size.
type Advance struct {
	AdvanceX uint16
	SizeX    int32
	SizeY    int32
	Kerning  int16
}

// Total returns the advance including kerning.
func (a Advance) Total() int32 { return int32(a.AdvanceX) + int32(a.Kerning) }

// GlyphInfo is one shaped glyph.
type GlyphInfo struct {
	Glyph     RawGlyph
	Size      Advance
	Kerning   int16
	Placement Placement
	IsMark    bool
}

// ClusterRange is a half-open range of source codepoints.
type ClusterRange struct {
	Start, End uint32
}

// Clusters returns the source range of each glyph cluster, in glyph order.
// Glyphs sharing a cluster start are merged into one range.
func Clusters(infos []GlyphInfo) []ClusterRange {
	var out []ClusterRange
	for i := range infos {
		g := &infos[i].Glyph
		if n := len(out); n > 0 && out[n-1].Start == g.Cluster {
			out[n-1].End += g.ClusterLen
			continue
		}
		out = append(out, ClusterRange{Start: g.Cluster, End: g.Cluster + g.ClusterLen})
	}
	return out
}
