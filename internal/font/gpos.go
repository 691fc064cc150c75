package font

// GPOS lookup types.
const (
	GPOSSingle       = 1
	GPOSPair         = 2
	GPOSCursive      = 3
	GPOSMarkToBase   = 4
	GPOSMarkToLig    = 5
	GPOSMarkToMark   = 6
	GPOSContext      = 7
	GPOSChainContext = 8
)

// ValueRecord is a GPOS adjustment. Device tables are skipped.
type ValueRecord struct {
	XPlacement int16
	YPlacement int16
	XAdvance   int16
	YAdvance   int16
}

// IsZero reports whether v adjusts nothing.
func (v ValueRecord) IsZero() bool { return v == ValueRecord{} }

func valueRecordSize(format uint16) int {
	n := 0
	for f := format & 0xFF; f != 0; f >>= 1 {
		n += int(f & 1)
	}
	return 2 * n
}

func parseValueRecord(s segment, off int, format uint16) ValueRecord {
	var v ValueRecord
	if format&0x1 != 0 {
		v.XPlacement = s.i16(off)
		off += 2
	}
	if format&0x2 != 0 {
		v.YPlacement = s.i16(off)
		off += 2
	}
	if format&0x4 != 0 {
		v.XAdvance = s.i16(off)
		off += 2
	}
	if format&0x8 != 0 {
		v.YAdvance = s.i16(off)
	}
	return v
}

// Anchor is an attachment point in font units.
type Anchor struct {
	X, Y int16
}

func parseAnchor(s segment, off int) *Anchor {
	if off == 0 {
		return nil
	}
	a := s.from(off)
	if !a.has(0, 6) {
		return nil
	}
	return &Anchor{X: a.i16(2), Y: a.i16(4)}
}

// SinglePos adjusts one glyph.
type SinglePos struct {
	Coverage Coverage
	Value    ValueRecord
	Values   []ValueRecord
}

func (p *SinglePos) Covers(g GlyphIndex) bool { return p.Coverage.Contains(g) }

// Adjustment returns the value for g.
func (p *SinglePos) Adjustment(g GlyphIndex) (ValueRecord, bool) {
	i, ok := p.Coverage.Index(g)
	if !ok {
		return ValueRecord{}, false
	}
	if p.Values == nil {
		return p.Value, true
	}
	if i >= len(p.Values) {
		return ValueRecord{}, false
	}
	return p.Values[i], true
}

// PairValue is one second-glyph entry of a format 1 pair set.
type PairValue struct {
	Second GlyphIndex
	First  ValueRecord
	Next   ValueRecord
}

// PairPos adjusts a glyph pair, by glyph (format 1) or class (format 2).
type PairPos struct {
	Format   uint16
	Coverage Coverage
	Sets     [][]PairValue

	Class1  ClassDef
	Class2  ClassDef
	Classes [][][2]ValueRecord
}

func (p *PairPos) Covers(g GlyphIndex) bool { return p.Coverage.Contains(g) }

// Adjustment returns the values for the pair (first, second).
func (p *PairPos) Adjustment(first, second GlyphIndex) (ValueRecord, ValueRecord, bool) {
	i, ok := p.Coverage.Index(first)
	if !ok {
		return ValueRecord{}, ValueRecord{}, false
	}
	if p.Format == 1 {
		if i >= len(p.Sets) {
			return ValueRecord{}, ValueRecord{}, false
		}
		for _, pv := range p.Sets[i] {
			if pv.Second == second {
				return pv.First, pv.Next, true
			}
		}
		return ValueRecord{}, ValueRecord{}, false
	}
	c1, c2 := int(p.Class1.Class(first)), int(p.Class2.Class(second))
	if c1 >= len(p.Classes) || c2 >= len(p.Classes[c1]) {
		return ValueRecord{}, ValueRecord{}, false
	}
	v := p.Classes[c1][c2]
	return v[0], v[1], true
}

// CursivePos links exit and entry anchors of consecutive glyphs.
type CursivePos struct {
	Coverage Coverage
	Entry    []*Anchor
	Exit     []*Anchor
}

func (p *CursivePos) Covers(g GlyphIndex) bool { return p.Coverage.Contains(g) }

// MarkRecord is one entry of a mark array.
type MarkRecord struct {
	Class  uint16
	Anchor *Anchor
}

// MarkAttachPos is GPOS types 4, 5 and 6. For mark-to-ligature the base
// anchors are indexed [ligature][component][class]; otherwise
// [base][class] lives in Bases.
type MarkAttachPos struct {
	Type         uint16
	MarkCoverage Coverage
	BaseCoverage Coverage
	ClassCount   int
	Marks        []MarkRecord
	Bases        [][]*Anchor
	Ligatures    [][][]*Anchor
}

func (p *MarkAttachPos) Covers(g GlyphIndex) bool { return p.MarkCoverage.Contains(g) }

// Mark returns the mark record of g.
func (p *MarkAttachPos) Mark(g GlyphIndex) (MarkRecord, bool) {
	i, ok := p.MarkCoverage.Index(g)
	if !ok || i >= len(p.Marks) {
		return MarkRecord{}, false
	}
	return p.Marks[i], true
}

// BaseAnchor returns the anchor on base glyph g for class, or for a
// ligature, on the given component.
func (p *MarkAttachPos) BaseAnchor(g GlyphIndex, class uint16, component int) *Anchor {
	i, ok := p.BaseCoverage.Index(g)
	if !ok {
		return nil
	}
	if p.Type == GPOSMarkToLig {
		if i >= len(p.Ligatures) {
			return nil
		}
		comps := p.Ligatures[i]
		if len(comps) == 0 {
			return nil
		}
		component = min(max(component, 0), len(comps)-1)
		if int(class) >= len(comps[component]) {
			return nil
		}
		return comps[component][class]
	}
	if i >= len(p.Bases) || int(class) >= len(p.Bases[i]) {
		return nil
	}
	return p.Bases[i][class]
}

func parseMarkArray(s segment) []MarkRecord {
	n := int(s.u16(0))
	out := make([]MarkRecord, 0, n)
	for i := 0; i < n && s.has(2+4*i, 4); i++ {
		out = append(out, MarkRecord{Class: s.u16(2 + 4*i), Anchor: parseAnchor(s, int(s.u16(2+4*i+2)))})
	}
	return out
}

func parseAnchorMatrix(s segment, classCount int) [][]*Anchor {
	n := int(s.u16(0))
	out := make([][]*Anchor, 0, n)
	for i := 0; i < n; i++ {
		row := make([]*Anchor, classCount)
		for c := range row {
			o := 2 + 2*(i*classCount+c)
			if !s.has(o, 2) {
				return out
			}
			row[c] = parseAnchor(s, int(s.u16(o)))
		}
		out = append(out, row)
	}
	return out
}

func parseGPOSSubtable(s segment, typ uint16) Subtable {
	cov := func() Coverage { return parseCoverage(s.from(int(s.u16(2)))) }
	switch typ {
	case GPOSSingle:
		format := s.u16(4)
		switch s.u16(0) {
		case 1:
			return &SinglePos{Coverage: cov(), Value: parseValueRecord(s, 6, format)}
		case 2:
			n, size := int(s.u16(6)), valueRecordSize(format)
			vals := make([]ValueRecord, 0, n)
			for i := 0; i < n; i++ {
				vals = append(vals, parseValueRecord(s, 8+i*size, format))
			}
			return &SinglePos{Coverage: cov(), Values: vals}
		}
	case GPOSPair:
		f1, f2 := s.u16(4), s.u16(6)
		size1, size2 := valueRecordSize(f1), valueRecordSize(f2)
		p := &PairPos{Format: s.u16(0), Coverage: cov()}
		switch p.Format {
		case 1:
			n := int(s.u16(8))
			for i := 0; i < n && s.has(10+2*i, 2); i++ {
				set := s.from(int(s.u16(10 + 2*i)))
				var pvs []PairValue
				rec := 2 + size1 + size2
				for j := 0; j < int(set.u16(0)) && set.has(2+j*rec, rec); j++ {
					o := 2 + j*rec
					pvs = append(pvs, PairValue{
						Second: GlyphIndex(set.u16(o)),
						First:  parseValueRecord(set, o+2, f1),
						Next:   parseValueRecord(set, o+2+size1, f2),
					})
				}
				p.Sets = append(p.Sets, pvs)
			}
			return p
		case 2:
			p.Class1 = parseClassDef(s.from(int(s.u16(8))))
			p.Class2 = parseClassDef(s.from(int(s.u16(10))))
			n1, n2 := int(s.u16(12)), int(s.u16(14))
			o := 16
			for i := 0; i < n1; i++ {
				row := make([][2]ValueRecord, n2)
				for j := range row {
					row[j] = [2]ValueRecord{parseValueRecord(s, o, f1), parseValueRecord(s, o+size1, f2)}
					o += size1 + size2
				}
				p.Classes = append(p.Classes, row)
			}
			return p
		}
	case GPOSCursive:
		p := &CursivePos{Coverage: cov()}
		n := int(s.u16(4))
		for i := 0; i < n && s.has(6+4*i, 4); i++ {
			p.Entry = append(p.Entry, parseAnchor(s, int(s.u16(6+4*i))))
			p.Exit = append(p.Exit, parseAnchor(s, int(s.u16(6+4*i+2))))
		}
		return p
	case GPOSMarkToBase, GPOSMarkToLig, GPOSMarkToMark:
		p := &MarkAttachPos{
			Type:         typ,
			MarkCoverage: cov(),
			BaseCoverage: parseCoverage(s.from(int(s.u16(4)))),
			ClassCount:   int(s.u16(6)),
		}
		p.Marks = parseMarkArray(s.from(int(s.u16(8))))
		base := s.from(int(s.u16(10)))
		if typ != GPOSMarkToLig {
			p.Bases = parseAnchorMatrix(base, p.ClassCount)
			return p
		}
		for i := 0; i < int(base.u16(0)) && base.has(2+2*i, 2); i++ {
			p.Ligatures = append(p.Ligatures, parseAnchorMatrix(base.from(int(base.u16(2+2*i))), p.ClassCount))
		}
		return p
	case GPOSContext:
		if c := parseContext(s); c != nil {
			return c
		}
	case GPOSChainContext:
		if c := parseChainedContext(s); c != nil {
			return c
		}
	}
	return nil
}
