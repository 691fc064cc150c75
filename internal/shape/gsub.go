package shape

import (
	"slices"

	"github.com/grindlemire/go-gui/internal/font"
)

type gsubBuffer struct {
	glyphs []RawGlyph
	table  *font.LayoutTable
	gdef   *font.GDEF
}

func (b *gsubBuffer) Len() int                       { return len(b.glyphs) }
func (b *gsubBuffer) GlyphAt(i int) font.GlyphIndex  { return b.glyphs[i].Glyph }
func (b *gsubBuffer) ClassAt(i int) uint16           { return glyphClass(b.gdef, b.glyphs[i].Glyph, b.glyphs[i].Unicodes) }
func (b *gsubBuffer) MarkAttachClassAt(i int) uint16 { return b.gdef.MarkAttachClass.Class(b.glyphs[i].Glyph) }

// run applies the selected lookups in lookup-list order. Each lookup only
// touches glyphs whose mask has the bit of the feature that enabled it.
func (b *gsubBuffer) run(lookups []font.FeatureLookup, masks map[font.Tag]uint32) {
	for _, fl := range lookups {
		bit := masks[fl.Feature]
		if bit == 0 {
			bit = globalMask
		}
		l := &b.table.Lookups[fl.Lookup]
		skip := skipper(b, b.gdef, l)
		if l.Type == font.GSUBReverseChain {
			for i := len(b.glyphs) - 1; i >= 0; i-- {
				if b.glyphs[i].mask&bit != 0 && !skip(i) {
					b.reverseChain(l, skip, i)
				}
			}
			continue
		}
		for i := 0; i < len(b.glyphs); {
			if b.glyphs[i].mask&bit == 0 || skip(i) {
				i++
				continue
			}
			next := b.applyLookup(fl.Lookup, i, 0)
			i = max(next, i+1)
		}
	}
}

// applyLookup applies the first matching subtable of lookup li at i and
// returns the index to continue from, or -1 if nothing applied.
func (b *gsubBuffer) applyLookup(li, i, depth int) int {
	if li < 0 || li >= len(b.table.Lookups) || i < 0 || i >= len(b.glyphs) {
		return -1
	}
	l := &b.table.Lookups[li]
	skip := skipper(b, b.gdef, l)
	g := b.glyphs[i].Glyph
	for _, st := range l.Subtables {
		if !st.Covers(g) {
			continue
		}
		switch st := st.(type) {
		case *font.SingleSubst:
			if sub, ok := st.Apply(g); ok {
				b.replace(i, sub)
				return i + 1
			}
		case *font.MultipleSubst:
			ci, _ := st.Coverage.Index(g)
			if ci < len(st.Sequences) {
				b.multiple(i, st.Sequences[ci])
				return i + len(st.Sequences[ci])
			}
		case *font.AlternateSubst:
			ci, _ := st.Coverage.Index(g)
			if ci < len(st.Alternates) && len(st.Alternates[ci]) > 0 {
				b.replace(i, st.Alternates[ci][0])
				return i + 1
			}
		case *font.LigatureSubst:
			if b.ligature(st, skip, i) {
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
				before := len(b.glyphs)
				b.applyLookup(lookup, pos, depth+1)
				return len(b.glyphs) - before
			})
		case *font.ReverseChainSubst:
			if b.reverseChain(l, skip, i) {
				return i + 1
			}
		}
	}
	return -1
}

func (b *gsubBuffer) replace(i int, g font.GlyphIndex) {
	b.glyphs[i].Glyph = g
	b.glyphs[i].Origin = GlyphOrigin{Kind: OriginDirect}
}

// multiple expands glyph i into seq. The first output glyph keeps the
// cluster; the rest are flagged as duplicates with an empty cluster share.
// An empty sequence deletes the glyph and hands its cluster share to a
// neighbour.
func (b *gsubBuffer) multiple(i int, seq []font.GlyphIndex) {
	src := b.glyphs[i]
	if len(seq) == 0 {
		switch {
		case i > 0:
			b.glyphs[i-1].ClusterLen += src.ClusterLen
		case len(b.glyphs) > 1:
			b.glyphs[1].Cluster = src.Cluster
			b.glyphs[1].ClusterLen += src.ClusterLen
		default:
			// Keep the only glyph so the cluster is still accounted for.
			return
		}
		b.glyphs = slices.Delete(b.glyphs, i, i+1)
		return
	}
	out := make([]RawGlyph, len(seq))
	for k, g := range seq {
		out[k] = src
		out[k].Glyph = g
		out[k].Origin = GlyphOrigin{Kind: OriginDirect}
		if k > 0 {
			out[k].Flags |= FlagMultiSubstDup
			out[k].ClusterLen = 0
		}
	}
	b.glyphs = slices.Replace(b.glyphs, i, i+1, out...)
}

func (b *gsubBuffer) ligature(st *font.LigatureSubst, skip func(int) bool, i int) bool {
	ci, _ := st.Coverage.Index(b.glyphs[i].Glyph)
	if ci >= len(st.Sets) {
		return false
	}
	for _, lig := range st.Sets[ci] {
		positions, ok := walk(b, skip, i, len(lig.Components), true, func(k, pos int) bool {
			return b.glyphs[pos].Glyph == lig.Components[k]
		})
		if !ok {
			continue
		}
		merged := b.glyphs[i]
		merged.Glyph = lig.Glyph
		merged.Origin = GlyphOrigin{Kind: OriginDirect}
		merged.Unicodes = slices.Clone(merged.Unicodes)
		for _, pos := range positions {
			c := b.glyphs[pos]
			merged.Unicodes = append(merged.Unicodes, c.Unicodes...)
			merged.ClusterLen += c.ClusterLen
		}
		// Skipped glyphs inside the ligature remember which component they
		// followed, for mark-to-ligature attachment. They join the
		// ligature's cluster so cluster ranges stay disjoint.
		comp := uint16(0)
		for pos := i + 1; len(positions) > 0 && pos < positions[len(positions)-1]; pos++ {
			if slices.Contains(positions, pos) {
				comp++
				continue
			}
			b.glyphs[pos].LigaComponentPos = comp
			merged.ClusterLen += b.glyphs[pos].ClusterLen
			b.glyphs[pos].Cluster = merged.Cluster
			b.glyphs[pos].ClusterLen = 0
		}
		b.glyphs[i] = merged
		for k := len(positions) - 1; k >= 0; k-- {
			b.glyphs = slices.Delete(b.glyphs, positions[k], positions[k]+1)
		}
		return true
	}
	return false
}

func (b *gsubBuffer) reverseChain(l *font.Lookup, skip func(int) bool, i int) bool {
	g := b.glyphs[i].Glyph
	for _, st := range l.Subtables {
		rc, ok := st.(*font.ReverseChainSubst)
		if !ok {
			continue
		}
		ci, ok := rc.Coverage.Index(g)
		if !ok || ci >= len(rc.Substitutes) {
			continue
		}
		if _, ok := walk(b, skip, i, len(rc.Backtrack), false, func(k, pos int) bool {
			return rc.Backtrack[k].Contains(b.glyphs[pos].Glyph)
		}); !ok {
			continue
		}
		if _, ok := walk(b, skip, i, len(rc.Lookahead), true, func(k, pos int) bool {
			return rc.Lookahead[k].Contains(b.glyphs[pos].Glyph)
		}); !ok {
			continue
		}
		b.replace(i, rc.Substitutes[ci])
		return true
	}
	return false
}
