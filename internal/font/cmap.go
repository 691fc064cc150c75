package font

import "sort"

type cmapSubtable interface {
	lookup(r rune) GlyphIndex
}

// parseCmap picks the best Unicode subtable and the format 14 variation
// subtable, if any.
func parseCmap(s segment) (cmapSubtable, *variationSubtable) {
	n := int(s.u16(2))
	var (
		best      cmapSubtable
		bestScore int
		uvs       *variationSubtable
	)
	for i := 0; i < n; i++ {
		rec := 4 + 8*i
		if !s.has(rec, 8) {
			break
		}
		platform, encoding := s.u16(rec), s.u16(rec+2)
		sub := s.from(int(s.u32(rec + 4)))
		format := sub.u16(0)
		if format == 14 {
			uvs = &variationSubtable{s: sub}
			continue
		}
		score := cmapScore(platform, encoding, format)
		if score <= bestScore {
			continue
		}
		if t := parseCmapSubtable(sub, format); t != nil {
			best, bestScore = t, score
		}
	}
	return best, uvs
}

func cmapScore(platform, encoding, format uint16) int {
	switch {
	case platform == 3 && encoding == 10 && format == 12:
		return 6
	case platform == 0 && format == 12:
		return 5
	case platform == 3 && encoding == 1:
		return 4
	case platform == 0:
		return 3
	case platform == 3 && encoding == 0:
		return 2
	case platform == 1 && encoding == 0:
		return 1
	}
	return 0
}

func parseCmapSubtable(s segment, format uint16) cmapSubtable {
	switch format {
	case 0:
		if !s.has(6, 256) {
			return nil
		}
		return cmap0(s.slice(6, 262))
	case 4:
		segX2 := int(s.u16(6))
		if segX2 == 0 || !s.has(16, 4*segX2) {
			return nil
		}
		return &cmap4{s: s, segX2: segX2}
	case 6:
		return &cmap6{first: rune(s.u16(6)), glyphs: s.glyphs(10, int(s.u16(8)))}
	case 12, 13:
		n := int(s.u32(12))
		if n < 0 || !s.has(16, 12*n) {
			return nil
		}
		groups := make([]cmapGroup, n)
		for i := range groups {
			o := 16 + 12*i
			groups[i] = cmapGroup{start: rune(s.u32(o)), end: rune(s.u32(o + 4)), glyph: s.u32(o + 8)}
		}
		return &cmap12{groups: groups, constant: format == 13}
	}
	return nil
}

type cmap0 segment

func (c cmap0) lookup(r rune) GlyphIndex {
	if r < 0 || int(r) >= len(c) {
		return 0
	}
	return GlyphIndex(c[r])
}

type cmap4 struct {
	s     segment
	segX2 int
}

func (c *cmap4) lookup(r rune) GlyphIndex {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	cp := uint16(r)
	segs := c.segX2 / 2
	endOff := 14
	startOff := 16 + c.segX2
	deltaOff := startOff + c.segX2
	rangeOff := deltaOff + c.segX2
	i := sort.Search(segs, func(i int) bool { return c.s.u16(endOff+2*i) >= cp })
	if i >= segs || c.s.u16(startOff+2*i) > cp {
		return 0
	}
	delta := c.s.u16(deltaOff + 2*i)
	ro := c.s.u16(rangeOff + 2*i)
	if ro == 0 {
		return GlyphIndex(cp + delta)
	}
	addr := rangeOff + 2*i + int(ro) + 2*int(cp-c.s.u16(startOff+2*i))
	g := c.s.u16(addr)
	if g == 0 {
		return 0
	}
	return GlyphIndex(g + delta)
}

type cmap6 struct {
	first  rune
	glyphs []GlyphIndex
}

func (c *cmap6) lookup(r rune) GlyphIndex {
	i := int(r - c.first)
	if i < 0 || i >= len(c.glyphs) {
		return 0
	}
	return c.glyphs[i]
}

type cmapGroup struct {
	start, end rune
	glyph      uint32
}

type cmap12 struct {
	groups   []cmapGroup
	constant bool
}

func (c *cmap12) lookup(r rune) GlyphIndex {
	i := sort.Search(len(c.groups), func(i int) bool { return c.groups[i].end >= r })
	if i >= len(c.groups) || c.groups[i].start > r {
		return 0
	}
	g := c.groups[i]
	if c.constant {
		return GlyphIndex(g.glyph)
	}
	return GlyphIndex(g.glyph + uint32(r-g.start))
}

// variationSubtable is cmap format 14.
type variationSubtable struct {
	s segment
}

func u24(s segment, off int) rune {
	return rune(s.u8(off))<<16 | rune(s.u8(off+1))<<8 | rune(s.u8(off+2))
}

// lookup reports the glyph for (r, selector). useDefault means the sequence
// maps to the default cmap glyph.
func (v *variationSubtable) lookup(r, selector rune) (g GlyphIndex, found, useDefault bool) {
	n := int(v.s.u32(6))
	for i := 0; i < n; i++ {
		rec := 10 + 11*i
		if !v.s.has(rec, 11) {
			return 0, false, false
		}
		if u24(v.s, rec) != selector {
			continue
		}
		if defOff := int(v.s.u32(rec + 3)); defOff != 0 {
			d := v.s.from(defOff)
			for j := 0; j < int(d.u32(0)) && d.has(4+4*j, 4); j++ {
				start := u24(d, 4+4*j)
				count := rune(d.u8(4 + 4*j + 3))
				if r >= start && r <= start+count {
					return 0, true, true
				}
			}
		}
		if ndOff := int(v.s.u32(rec + 7)); ndOff != 0 {
			d := v.s.from(ndOff)
			for j := 0; j < int(d.u32(0)) && d.has(4+5*j, 5); j++ {
				if u24(d, 4+5*j) == r {
					return GlyphIndex(d.u16(4 + 5*j + 3)), true, false
				}
			}
		}
		return 0, false, false
	}
	return 0, false, false
}

// IsVariationSelector reports whether r is in one of the variation selector
// blocks.
func IsVariationSelector(r rune) bool {
	return (r >= 0xFE00 && r <= 0xFE0F) || (r >= 0xE0100 && r <= 0xE01EF) || (r >= 0x180B && r <= 0x180D)
}
