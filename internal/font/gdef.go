package font

// Glyph classes from the GDEF glyph class table.
const (
	ClassUnassigned = 0
	ClassBase       = 1
	ClassLigature   = 2
	ClassMark       = 3
	ClassComponent  = 4
)

// GDEF holds glyph classification data.
type GDEF struct {
	GlyphClasses    ClassDef
	MarkAttachClass ClassDef
	MarkGlyphSets   []Coverage
	hasGlyphClasses bool
}

func parseGDEF(s segment) *GDEF {
	g := &GDEF{}
	if off := int(s.u16(4)); off != 0 {
		g.GlyphClasses = parseClassDef(s.from(off))
		g.hasGlyphClasses = true
	}
	if off := int(s.u16(10)); off != 0 {
		g.MarkAttachClass = parseClassDef(s.from(off))
	}
	if s.u16(2) >= 2 {
		if off := int(s.u16(12)); off != 0 {
			sets := s.from(off)
			for i := 0; i < int(sets.u16(2)) && sets.has(4+4*i, 4); i++ {
				g.MarkGlyphSets = append(g.MarkGlyphSets, parseCoverage(sets.from(int(sets.u32(4+4*i)))))
			}
		}
	}
	return g
}

// GlyphClass returns the GDEF class of g, or ClassUnassigned.
func (g *GDEF) GlyphClass(gi GlyphIndex) uint16 {
	if g == nil || !g.hasGlyphClasses {
		return ClassUnassigned
	}
	return g.GlyphClasses.Class(gi)
}

// HasGlyphClasses reports whether the glyph class table was present.
func (g *GDEF) HasGlyphClasses() bool { return g != nil && g.hasGlyphClasses }

// InMarkSet reports whether g belongs to mark filtering set i.
func (g *GDEF) InMarkSet(i int, gi GlyphIndex) bool {
	if g == nil || i < 0 || i >= len(g.MarkGlyphSets) {
		return false
	}
	return g.MarkGlyphSets[i].Contains(gi)
}
