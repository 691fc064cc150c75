package font

import "sort"

type tableKind uint8

const (
	kindGSUB tableKind = iota
	kindGPOS
)

// Lookup flag bits.
const (
	LookupRightToLeft         = 0x0001
	LookupIgnoreBaseGlyphs    = 0x0002
	LookupIgnoreLigatures     = 0x0004
	LookupIgnoreMarks         = 0x0008
	LookupUseMarkFilteringSet = 0x0010
	LookupMarkAttachmentType  = 0xFF00
)

// LangSys lists the features of one language system.
type LangSys struct {
	RequiredFeature int
	Features        []uint16
}

// Script holds the language systems of one script.
type Script struct {
	Default *LangSys
	Langs   map[Tag]*LangSys
}

// Feature maps a feature tag to lookup indices.
type Feature struct {
	Tag     Tag
	Lookups []uint16
}

// Lookup is one entry of a lookup list. Extension subtables are unwrapped
// at parse time, so Type is never an extension type.
type Lookup struct {
	Type             uint16
	Flag             uint16
	MarkFilteringSet uint16
	Subtables        []Subtable
}

// Subtable is one of the GSUB or GPOS subtable types declared in this
// package.
type Subtable interface {
	// Covers reports whether g is in the subtable's primary coverage.
	Covers(g GlyphIndex) bool
}

// LayoutTable is a parsed GSUB or GPOS table.
type LayoutTable struct {
	Scripts  map[Tag]*Script
	Features []Feature
	Lookups  []Lookup
}

// FeatureLookup pairs a lookup index with the feature that enabled it.
type FeatureLookup struct {
	Lookup  int
	Feature Tag
}

// LangSys selects the language system for script and lang, falling back to
// the script default, then to DFLT and 'latn'.
func (t *LayoutTable) LangSys(script, lang Tag) *LangSys {
	if t == nil {
		return nil
	}
	for _, st := range []Tag{script, DefaultScript, MakeTag("latn")} {
		s, ok := t.Scripts[st]
		if !ok {
			continue
		}
		if ls, ok := s.Langs[lang]; ok {
			return ls
		}
		if s.Default != nil {
			return s.Default
		}
	}
	return nil
}

// FeatureLookups returns the lookups enabled by features under script/lang,
// ordered by lookup index. A lookup shared by several features is reported
// once, tagged with the first enabling feature.
func (t *LayoutTable) FeatureLookups(script, lang Tag, enabled func(Tag) bool) []FeatureLookup {
	ls := t.LangSys(script, lang)
	if ls == nil {
		return nil
	}
	seen := make(map[int]bool)
	var out []FeatureLookup
	add := func(fi int, required bool) {
		if fi < 0 || fi >= len(t.Features) {
			return
		}
		f := t.Features[fi]
		if !required && !enabled(f.Tag) {
			return
		}
		for _, li := range f.Lookups {
			if int(li) >= len(t.Lookups) || seen[int(li)] {
				continue
			}
			seen[int(li)] = true
			out = append(out, FeatureLookup{Lookup: int(li), Feature: f.Tag})
		}
	}
	add(ls.RequiredFeature, true)
	for _, fi := range ls.Features {
		add(int(fi), false)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Lookup < out[j].Lookup })
	return out
}

// HasFeature reports whether any script lists tag.
func (t *LayoutTable) HasFeature(tag Tag) bool {
	if t == nil {
		return false
	}
	for _, f := range t.Features {
		if f.Tag == tag {
			return true
		}
	}
	return false
}

func parseLayoutTable(s segment, kind tableKind) *LayoutTable {
	if !s.has(0, 10) {
		return nil
	}
	t := &LayoutTable{Scripts: map[Tag]*Script{}}

	sl := s.from(int(s.u16(4)))
	for i := 0; i < int(sl.u16(0)) && sl.has(2+6*i, 6); i++ {
		rec := 2 + 6*i
		t.Scripts[sl.tag(rec)] = parseScript(sl.from(int(sl.u16(rec + 4))))
	}

	fl := s.from(int(s.u16(6)))
	for i := 0; i < int(fl.u16(0)) && fl.has(2+6*i, 6); i++ {
		rec := 2 + 6*i
		f := fl.from(int(fl.u16(rec + 4)))
		t.Features = append(t.Features, Feature{Tag: fl.tag(rec), Lookups: u16s(f, 4, int(f.u16(2)))})
	}

	ll := s.from(int(s.u16(8)))
	for i := 0; i < int(ll.u16(0)) && ll.has(2+2*i, 2); i++ {
		t.Lookups = append(t.Lookups, parseLookup(ll.from(int(ll.u16(2+2*i))), kind))
	}
	return t
}

func parseScript(s segment) *Script {
	sc := &Script{Langs: map[Tag]*LangSys{}}
	if off := int(s.u16(0)); off != 0 {
		sc.Default = parseLangSys(s.from(off))
	}
	for i := 0; i < int(s.u16(2)) && s.has(4+6*i, 6); i++ {
		rec := 4 + 6*i
		sc.Langs[s.tag(rec)] = parseLangSys(s.from(int(s.u16(rec + 4))))
	}
	return sc
}

func parseLangSys(s segment) *LangSys {
	ls := &LangSys{RequiredFeature: -1}
	if r := s.u16(2); r != 0xFFFF {
		ls.RequiredFeature = int(r)
	}
	ls.Features = u16s(s, 6, int(s.u16(4)))
	return ls
}

func u16s(s segment, off, n int) []uint16 {
	if n <= 0 || !s.has(off, 2*n) {
		return nil
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = s.u16(off + 2*i)
	}
	return out
}

func parseLookup(s segment, kind tableKind) Lookup {
	l := Lookup{Type: s.u16(0), Flag: s.u16(2)}
	n := int(s.u16(4))
	if l.Flag&LookupUseMarkFilteringSet != 0 {
		l.MarkFilteringSet = s.u16(6 + 2*n)
	}
	extType := uint16(7)
	if kind == kindGPOS {
		extType = 9
	}
	for i := 0; i < n && s.has(6+2*i, 2); i++ {
		sub := s.from(int(s.u16(6 + 2*i)))
		typ := l.Type
		if typ == extType {
			typ = sub.u16(2)
			sub = sub.from(int(sub.u32(4)))
			l.Type = typ
		}
		var st Subtable
		if kind == kindGSUB {
			st = parseGSUBSubtable(sub, typ)
		} else {
			st = parseGPOSSubtable(sub, typ)
		}
		if st != nil {
			l.Subtables = append(l.Subtables, st)
		}
	}
	return l
}

// Coverage is an OpenType coverage table.
type Coverage struct {
	glyphs []GlyphIndex
	ranges []coverageRange
}

type coverageRange struct {
	start, end GlyphIndex
	index      int
}

func parseCoverage(s segment) Coverage {
	var c Coverage
	switch s.u16(0) {
	case 1:
		c.glyphs = s.glyphs(4, int(s.u16(2)))
	case 2:
		n := int(s.u16(2))
		for i := 0; i < n && s.has(4+6*i, 6); i++ {
			o := 4 + 6*i
			c.ranges = append(c.ranges, coverageRange{GlyphIndex(s.u16(o)), GlyphIndex(s.u16(o + 2)), int(s.u16(o + 4))})
		}
	}
	return c
}

// Index returns the coverage index of g.
func (c Coverage) Index(g GlyphIndex) (int, bool) {
	if c.glyphs != nil {
		i := sort.Search(len(c.glyphs), func(i int) bool { return c.glyphs[i] >= g })
		if i < len(c.glyphs) && c.glyphs[i] == g {
			return i, true
		}
		return 0, false
	}
	i := sort.Search(len(c.ranges), func(i int) bool { return c.ranges[i].end >= g })
	if i < len(c.ranges) && c.ranges[i].start <= g {
		r := c.ranges[i]
		return r.index + int(g-r.start), true
	}
	return 0, false
}

// Contains reports whether g is covered.
func (c Coverage) Contains(g GlyphIndex) bool {
	_, ok := c.Index(g)
	return ok
}

// ClassDef is an OpenType class definition table. Unlisted glyphs are
// class 0.
type ClassDef struct {
	start   GlyphIndex
	classes []uint16
	ranges  []classRange
}

type classRange struct {
	start, end GlyphIndex
	class      uint16
}

func parseClassDef(s segment) ClassDef {
	var cd ClassDef
	switch s.u16(0) {
	case 1:
		cd.start = GlyphIndex(s.u16(2))
		cd.classes = u16s(s, 6, int(s.u16(4)))
	case 2:
		n := int(s.u16(2))
		for i := 0; i < n && s.has(4+6*i, 6); i++ {
			o := 4 + 6*i
			cd.ranges = append(cd.ranges, classRange{GlyphIndex(s.u16(o)), GlyphIndex(s.u16(o + 2)), s.u16(o + 4)})
		}
	}
	return cd
}

// Class returns the class of g.
func (cd ClassDef) Class(g GlyphIndex) uint16 {
	if cd.classes != nil {
		i := int(g) - int(cd.start)
		if i >= 0 && i < len(cd.classes) {
			return cd.classes[i]
		}
		return 0
	}
	i := sort.Search(len(cd.ranges), func(i int) bool { return cd.ranges[i].end >= g })
	if i < len(cd.ranges) && cd.ranges[i].start <= g {
		return cd.ranges[i].class
	}
	return 0
}

// SequenceLookup applies lookup Lookup at input position Index of a matched
// context.
type SequenceLookup struct {
	Index  int
	Lookup int
}

// ContextRule is one rule of a (chained) sequence context subtable. For
// format 1 the sequences hold glyph ids, for format 2 class values. Input
// excludes the first glyph, which is matched by coverage or class set.
type ContextRule struct {
	Backtrack []uint16
	Input     []uint16
	Lookahead []uint16
	Lookups   []SequenceLookup
}

// ContextSubtable is a GSUB type 5/6 or GPOS type 7/8 subtable. Non-chained
// contexts have empty backtrack and lookahead.
type ContextSubtable struct {
	Format   uint16
	Chained  bool
	Coverage Coverage

	// formats 1 and 2
	RuleSets [][]ContextRule

	// format 2
	BacktrackClasses ClassDef
	InputClasses     ClassDef
	LookaheadClasses ClassDef

	// format 3
	BacktrackCoverage []Coverage
	InputCoverage     []Coverage
	LookaheadCoverage []Coverage
	Lookups           []SequenceLookup
}

func (c *ContextSubtable) Covers(g GlyphIndex) bool {
	if c.Format == 3 {
		return len(c.InputCoverage) > 0 && c.InputCoverage[0].Contains(g)
	}
	return c.Coverage.Contains(g)
}

func parseSequenceLookups(s segment, off, n int) []SequenceLookup {
	var out []SequenceLookup
	for i := 0; i < n && s.has(off+4*i, 4); i++ {
		out = append(out, SequenceLookup{Index: int(s.u16(off + 4*i)), Lookup: int(s.u16(off + 4*i + 2))})
	}
	return out
}

func parseCoverages(s segment, off, n int) ([]Coverage, int) {
	var out []Coverage
	for i := 0; i < n && s.has(off+2*i, 2); i++ {
		out = append(out, parseCoverage(s.from(int(s.u16(off + 2*i)))))
	}
	return out, off + 2*n
}

func parseContext(s segment) *ContextSubtable {
	c := &ContextSubtable{Format: s.u16(0)}
	switch c.Format {
	case 1, 2:
		c.Coverage = parseCoverage(s.from(int(s.u16(2))))
		setsOff := 4
		if c.Format == 2 {
			c.InputClasses = parseClassDef(s.from(int(s.u16(4))))
			setsOff = 6
		}
		n := int(s.u16(setsOff))
		c.RuleSets = make([][]ContextRule, n)
		for i := 0; i < n; i++ {
			off := int(s.u16(setsOff + 2 + 2*i))
			if off == 0 {
				continue
			}
			set := s.from(off)
			for j := 0; j < int(set.u16(0)) && set.has(2+2*j, 2); j++ {
				r := set.from(int(set.u16(2 + 2*j)))
				glyphCount, lookupCount := int(r.u16(0)), int(r.u16(2))
				rule := ContextRule{Input: u16s(r, 4, glyphCount-1)}
				rule.Lookups = parseSequenceLookups(r, 4+2*max(glyphCount-1, 0), lookupCount)
				c.RuleSets[i] = append(c.RuleSets[i], rule)
			}
		}
	case 3:
		glyphCount, lookupCount := int(s.u16(2)), int(s.u16(4))
		var off int
		c.InputCoverage, off = parseCoverages(s, 6, glyphCount)
		c.Lookups = parseSequenceLookups(s, off, lookupCount)
	default:
		return nil
	}
	return c
}

func parseChainedContext(s segment) *ContextSubtable {
	c := &ContextSubtable{Format: s.u16(0), Chained: true}
	switch c.Format {
	case 1, 2:
		c.Coverage = parseCoverage(s.from(int(s.u16(2))))
		setsOff := 4
		if c.Format == 2 {
			c.BacktrackClasses = parseClassDef(s.from(int(s.u16(4))))
			c.InputClasses = parseClassDef(s.from(int(s.u16(6))))
			c.LookaheadClasses = parseClassDef(s.from(int(s.u16(8))))
			setsOff = 10
		}
		n := int(s.u16(setsOff))
		c.RuleSets = make([][]ContextRule, n)
		for i := 0; i < n; i++ {
			off := int(s.u16(setsOff + 2 + 2*i))
			if off == 0 {
				continue
			}
			set := s.from(off)
			for j := 0; j < int(set.u16(0)) && set.has(2+2*j, 2); j++ {
				r := set.from(int(set.u16(2 + 2*j)))
				var rule ContextRule
				o := 0
				bn := int(r.u16(o))
				rule.Backtrack = u16s(r, o+2, bn)
				o += 2 + 2*bn
				in := int(r.u16(o))
				rule.Input = u16s(r, o+2, in-1)
				o += 2 + 2*max(in-1, 0)
				ln := int(r.u16(o))
				rule.Lookahead = u16s(r, o+2, ln)
				o += 2 + 2*ln
				rule.Lookups = parseSequenceLookups(r, o+2, int(r.u16(o)))
				c.RuleSets[i] = append(c.RuleSets[i], rule)
			}
		}
	case 3:
		o := 2
		c.BacktrackCoverage, o = parseCoverages(s, o+2, int(s.u16(o)))
		c.InputCoverage, o = parseCoverages(s, o+2, int(s.u16(o)))
		c.LookaheadCoverage, o = parseCoverages(s, o+2, int(s.u16(o)))
		c.Lookups = parseSequenceLookups(s, o+2, int(s.u16(o)))
	default:
		return nil
	}
	return c
}
