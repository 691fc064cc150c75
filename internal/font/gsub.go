package font

// GSUB lookup types.
const (
	GSUBSingle       = 1
	GSUBMultiple     = 2
	GSUBAlternate    = 3
	GSUBLigature     = 4
	GSUBContext      = 5
	GSUBChainContext = 6
	GSUBReverseChain = 8
)

// SingleSubst replaces one glyph with another, by delta (format 1) or by
// table (format 2).
type SingleSubst struct {
	Coverage    Coverage
	Delta       int16
	Substitutes []GlyphIndex
}

func (s *SingleSubst) Covers(g GlyphIndex) bool { return s.Coverage.Contains(g) }

// Apply returns the substitute for g.
func (s *SingleSubst) Apply(g GlyphIndex) (GlyphIndex, bool) {
	i, ok := s.Coverage.Index(g)
	if !ok {
		return g, false
	}
	if s.Substitutes == nil {
		return GlyphIndex(int(g) + int(s.Delta)), true
	}
	if i >= len(s.Substitutes) {
		return g, false
	}
	return s.Substitutes[i], true
}

// MultipleSubst replaces one glyph with a sequence.
type MultipleSubst struct {
	Coverage  Coverage
	Sequences [][]GlyphIndex
}

func (s *MultipleSubst) Covers(g GlyphIndex) bool { return s.Coverage.Contains(g) }

// AlternateSubst offers alternates for a glyph; the first one is used.
type AlternateSubst struct {
	Coverage   Coverage
	Alternates [][]GlyphIndex
}

func (s *AlternateSubst) Covers(g GlyphIndex) bool { return s.Coverage.Contains(g) }

// Ligature replaces the covered glyph followed by Components with Glyph.
type Ligature struct {
	Glyph      GlyphIndex
	Components []GlyphIndex
}

type LigatureSubst struct {
	Coverage Coverage
	Sets     [][]Ligature
}

func (s *LigatureSubst) Covers(g GlyphIndex) bool { return s.Coverage.Contains(g) }

// ReverseChainSubst is GSUB type 8, applied from the end of the buffer.
type ReverseChainSubst struct {
	Coverage    Coverage
	Backtrack   []Coverage
	Lookahead   []Coverage
	Substitutes []GlyphIndex
}

func (s *ReverseChainSubst) Covers(g GlyphIndex) bool { return s.Coverage.Contains(g) }

func parseGlyphSequences(s segment, off int) [][]GlyphIndex {
	n := int(s.u16(off))
	out := make([][]GlyphIndex, 0, n)
	for i := 0; i < n && s.has(off+2+2*i, 2); i++ {
		seq := s.from(int(s.u16(off + 2 + 2*i)))
		out = append(out, seq.glyphs(2, int(seq.u16(0))))
	}
	return out
}

func parseGSUBSubtable(s segment, typ uint16) Subtable {
	cov := func() Coverage { return parseCoverage(s.from(int(s.u16(2)))) }
	switch typ {
	case GSUBSingle:
		switch s.u16(0) {
		case 1:
			return &SingleSubst{Coverage: cov(), Delta: s.i16(4)}
		case 2:
			subs := s.glyphs(6, int(s.u16(4)))
			if subs == nil {
				subs = []GlyphIndex{}
			}
			return &SingleSubst{Coverage: cov(), Substitutes: subs}
		}
	case GSUBMultiple:
		return &MultipleSubst{Coverage: cov(), Sequences: parseGlyphSequences(s, 4)}
	case GSUBAlternate:
		return &AlternateSubst{Coverage: cov(), Alternates: parseGlyphSequences(s, 4)}
	case GSUBLigature:
		ls := &LigatureSubst{Coverage: cov()}
		n := int(s.u16(4))
		for i := 0; i < n && s.has(6+2*i, 2); i++ {
			set := s.from(int(s.u16(6 + 2*i)))
			var ligs []Ligature
			for j := 0; j < int(set.u16(0)) && set.has(2+2*j, 2); j++ {
				l := set.from(int(set.u16(2 + 2*j)))
				ligs = append(ligs, Ligature{Glyph: GlyphIndex(l.u16(0)), Components: l.glyphs(4, int(l.u16(2))-1)})
			}
			ls.Sets = append(ls.Sets, ligs)
		}
		return ls
	case GSUBContext:
		if c := parseContext(s); c != nil {
			return c
		}
	case GSUBChainContext:
		if c := parseChainedContext(s); c != nil {
			return c
		}
	case GSUBReverseChain:
		rc := &ReverseChainSubst{Coverage: cov()}
		o := 4
		rc.Backtrack, o = parseCoverages(s, o+2, int(s.u16(o)))
		rc.Lookahead, o = parseCoverages(s, o+2, int(s.u16(o)))
		rc.Substitutes = s.glyphs(o+2, int(s.u16(o)))
		return rc
	}
	return nil
}
