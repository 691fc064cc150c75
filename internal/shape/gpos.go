package shape

import "github.com/grindlemire/go-gui/internal/font"

var tagKern = font.MakeTag("kern")

type gposBuffer struct {
	infos   []GlyphInfo
	table   *font.LayoutTable
	gdef    *font.GDEF
	kerning bool
}

func (b *gposBuffer) Len() int                       { return len(b.infos) }
func (b *gposBuffer) GlyphAt(i int) font.GlyphIndex  { return b.infos[i].Glyph.Glyph }
func (b *gposBuffer) ClassAt(i int) uint16           { return glyphClass(b.gdef, b.GlyphAt(i), b.infos[i].Glyph.Unicodes) }
func (b *gposBuffer) MarkAttachClassAt(i int) uint16 { return b.gdef.MarkAttachClass.Class(b.GlyphAt(i)) }

// initInfos builds positioning records from the substituted glyphs.
func initInfos(glyphs []RawGlyph, gdef *font.GDEF) []GlyphInfo {
	infos := make([]GlyphInfo, len(glyphs))
	for i, g := range glyphs {
		infos[i] = GlyphInfo{
			Glyph:  g,
			IsMark: glyphClass(gdef, g.Glyph, g.Unicodes) == font.ClassMark,
		}
	}
	return infos
}

func (b *gposBuffer) run(lookups []font.FeatureLookup) {
	for _, fl := range lookups {
		if fl.Feature == tagKern && !b.kerning {
			continue
		}
		l := &b.table.Lookups[fl.Lookup]
		skip := skipper(b, b.gdef, l)
		for i := 0; i < len(b.infos); {
			if skip(i) {
				i++
				continue
			}
			i = max(b.applyLookup(fl.Lookup, i, 0), i+1)
		}
	}
	b.overprintMarks()
}

func (b *gposBuffer) applyLookup(li, i, depth int) int {
	if li < 0 || li >= len(b.table.Lookups) || i < 0 || i >= len(b.infos) {
		return -1
	}
	l := &b.table.Lookups[li]
	skip := skipper(b, b.gdef, l)
	g := b.GlyphAt(i)
	for _, st := range l.Subtables {
		if !st.Covers(g) {
			continue
		}
		switch st := st.(type) {
		case *font.SinglePos:
			if v, ok := st.Adjustment(g); ok {
				b.adjust(i, v)
				return i + 1
			}
		case *font.PairPos:
			j := nextIndex(b, skip, i)
			if j < 0 {
				return -1
			}
			if v1, v2, ok := st.Adjustment(g, b.GlyphAt(j)); ok {
				b.adjust(i, v1)
				b.adjust(j, v2)
				return i + 1
			}
		case *font.CursivePos:
			if b.cursive(st, l, skip, i) {
				return i + 1
			}
		case *font.MarkAttachPos:
			if b.attachMark(st, skip, i) {
				return i + 1
			}
		case *font.ContextSubtable:
			if depth >= maxNesting {
				return -1
			}
			matched, nested, ok := matchContext(st, b, skip, i)
			if !ok {
				continue
			}
			return applyNested(matched, nested, func(lookup, pos int) int {
				b.applyLookup(lookup, pos, depth+1)
				return 0
			})
		}
	}
	return -1
}

// adjust folds a value record into the glyph: placements become a Distance
// placement, the x advance becomes kerning.
func (b *gposBuffer) adjust(i int, v font.ValueRecord) {
	if v.IsZero() {
		return
	}
	info := &b.infos[i]
	info.Kerning += v.XAdvance
	if v.XPlacement == 0 && v.YPlacement == 0 {
		return
	}
	if info.Placement.Kind == PlacementNone {
		info.Placement.Kind = PlacementDistance
	}
	if info.Placement.Kind == PlacementDistance {
		info.Placement.DX += int32(v.XPlacement)
		info.Placement.DY += int32(v.YPlacement)
	}
}

func (b *gposBuffer) cursive(st *font.CursivePos, l *font.Lookup, skip func(int) bool, i int) bool {
	ci, _ := st.Coverage.Index(b.GlyphAt(i))
	if ci >= len(st.Exit) || st.Exit[ci] == nil {
		return false
	}
	j := nextIndex(b, skip, i)
	if j < 0 {
		return false
	}
	cj, ok := st.Coverage.Index(b.GlyphAt(j))
	if !ok || cj >= len(st.Entry) || st.Entry[cj] == nil {
		return false
	}
	b.infos[j].Placement = Placement{
		Kind:        PlacementCursiveAnchor,
		Base:        i,
		RTL:         l.Flag&font.LookupRightToLeft != 0,
		ExitAnchor:  *st.Exit[ci],
		EntryAnchor: *st.Entry[cj],
	}
	return true
}

// attachMark positions mark i against the preceding base, ligature or mark.
func (b *gposBuffer) attachMark(st *font.MarkAttachPos, skip func(int) bool, i int) bool {
	mark, ok := st.Mark(b.GlyphAt(i))
	if !ok || mark.Anchor == nil {
		return false
	}
	base := -1
	if st.Type == font.GPOSMarkToMark {
		base = prevIndex(b, skip, i)
		if base < 0 || !b.infos[base].IsMark {
			return false
		}
	} else {
		for j := i - 1; j >= 0; j-- {
			if !b.infos[j].IsMark {
				base = j
				break
			}
		}
	}
	if base < 0 {
		return false
	}
	anchor := st.BaseAnchor(b.GlyphAt(base), mark.Class, int(b.infos[i].Glyph.LigaComponentPos))
	if anchor == nil {
		return false
	}
	b.infos[i].Placement = Placement{
		Kind:       PlacementMarkAnchor,
		Base:       base,
		BaseAnchor: *anchor,
		MarkAnchor: *mark.Anchor,
	}
	return true
}

// overprintMarks attaches marks that no lookup positioned to the preceding
// non-mark glyph.
func (b *gposBuffer) overprintMarks() {
	base := -1
	for i := range b.infos {
		info := &b.infos[i]
		if !info.IsMark {
			base = i
			continue
		}
		if info.Placement.Kind == PlacementNone && base >= 0 {
			info.Placement = Placement{Kind: PlacementMarkOverprint, Base: base}
		}
	}
}
