package shape

import (
	"unicode"

	"github.com/grindlemire/go-gui/internal/font"
)

// maxNesting bounds nested lookup application from contextual subtables.
const maxNesting = 8

// sequence is the view of a glyph buffer the matching code needs. It is
// implemented by both the substitution and the positioning buffer.
type sequence interface {
	Len() int
	GlyphAt(i int) font.GlyphIndex
	ClassAt(i int) uint16
	MarkAttachClassAt(i int) uint16
}

// glyphClass returns the GDEF class of g, falling back to the Unicode
// category of its source character when the font has no class table.
func glyphClass(gdef *font.GDEF, g font.GlyphIndex, unicodes []rune) uint16 {
	if gdef.HasGlyphClasses() {
		return gdef.GlyphClass(g)
	}
	if len(unicodes) > 0 && unicode.In(unicodes[0], unicode.Mn, unicode.Me) {
		return font.ClassMark
	}
	return font.ClassBase
}

// skipper builds the ignore predicate for a lookup flag.
func skipper(seq sequence, gdef *font.GDEF, l *font.Lookup) func(i int) bool {
	flag := l.Flag
	attachType := (flag & font.LookupMarkAttachmentType) >> 8
	return func(i int) bool {
		switch seq.ClassAt(i) {
		case font.ClassBase:
			return flag&font.LookupIgnoreBaseGlyphs != 0
		case font.ClassLigature:
			return flag&font.LookupIgnoreLigatures != 0
		case font.ClassMark:
			if flag&font.LookupIgnoreMarks != 0 {
				return true
			}
			if flag&font.LookupUseMarkFilteringSet != 0 {
				return !gdef.InMarkSet(int(l.MarkFilteringSet), seq.GlyphAt(i))
			}
			if attachType != 0 {
				return seq.MarkAttachClassAt(i) != attachType
			}
		}
		return false
	}
}

func nextIndex(seq sequence, skip func(int) bool, i int) int {
	for j := i + 1; j < seq.Len(); j++ {
		if !skip(j) {
			return j
		}
	}
	return -1
}

func prevIndex(seq sequence, skip func(int) bool, i int) int {
	for j := i - 1; j >= 0; j-- {
		if !skip(j) {
			return j
		}
	}
	return -1
}

// walk collects n unskipped positions after (or before) i that satisfy
// match. It reports false if the buffer runs out or a glyph does not match.
func walk(seq sequence, skip func(int) bool, i, n int, forward bool, match func(k, pos int) bool) ([]int, bool) {
	out := make([]int, 0, n)
	pos := i
	for k := 0; k < n; k++ {
		if forward {
			pos = nextIndex(seq, skip, pos)
		} else {
			pos = prevIndex(seq, skip, pos)
		}
		if pos < 0 || !match(k, pos) {
			return nil, false
		}
		out = append(out, pos)
	}
	return out, true
}

// matchContext matches a (chained) context subtable at position i. It
// returns the input positions and the nested lookups to apply.
func matchContext(c *font.ContextSubtable, seq sequence, skip func(int) bool, i int) ([]int, []font.SequenceLookup, bool) {
	g0 := seq.GlyphAt(i)
	if c.Format == 3 {
		if len(c.InputCoverage) == 0 || !c.InputCoverage[0].Contains(g0) {
			return nil, nil, false
		}
		inputs, ok := walk(seq, skip, i, len(c.InputCoverage)-1, true, func(k, pos int) bool {
			return c.InputCoverage[k+1].Contains(seq.GlyphAt(pos))
		})
		if !ok {
			return nil, nil, false
		}
		if _, ok := walk(seq, skip, i, len(c.BacktrackCoverage), false, func(k, pos int) bool {
			return c.BacktrackCoverage[k].Contains(seq.GlyphAt(pos))
		}); !ok {
			return nil, nil, false
		}
		last := i
		if len(inputs) > 0 {
			last = inputs[len(inputs)-1]
		}
		if _, ok := walk(seq, skip, last, len(c.LookaheadCoverage), true, func(k, pos int) bool {
			return c.LookaheadCoverage[k].Contains(seq.GlyphAt(pos))
		}); !ok {
			return nil, nil, false
		}
		return append([]int{i}, inputs...), c.Lookups, true
	}

	ci, ok := c.Coverage.Index(g0)
	if !ok {
		return nil, nil, false
	}
	var (
		input     = func(pos int) uint16 { return uint16(seq.GlyphAt(pos)) }
		backtrack = input
		lookahead = input
	)
	if c.Format == 2 {
		ci = int(c.InputClasses.Class(g0))
		input = func(pos int) uint16 { return c.InputClasses.Class(seq.GlyphAt(pos)) }
		backtrack = func(pos int) uint16 { return c.BacktrackClasses.Class(seq.GlyphAt(pos)) }
		lookahead = func(pos int) uint16 { return c.LookaheadClasses.Class(seq.GlyphAt(pos)) }
	}
	if ci >= len(c.RuleSets) {
		return nil, nil, false
	}
	for _, rule := range c.RuleSets[ci] {
		inputs, ok := walk(seq, skip, i, len(rule.Input), true, func(k, pos int) bool {
			return input(pos) == rule.Input[k]
		})
		if !ok {
			continue
		}
		if _, ok := walk(seq, skip, i, len(rule.Backtrack), false, func(k, pos int) bool {
			return backtrack(pos) == rule.Backtrack[k]
		}); !ok {
			continue
		}
		last := i
		if len(inputs) > 0 {
			last = inputs[len(inputs)-1]
		}
		if _, ok := walk(seq, skip, last, len(rule.Lookahead), true, func(k, pos int) bool {
			return lookahead(pos) == rule.Lookahead[k]
		}); !ok {
			continue
		}
		return append([]int{i}, inputs...), rule.Lookups, true
	}
	return nil, nil, false
}

// applyNested runs the nested lookups of a matched context. apply returns
// how much the buffer length changed; later positions are shifted by that
// amount. The returned index is one past the last matched glyph.
func applyNested(matched []int, lookups []font.SequenceLookup, apply func(lookup, pos int) int) int {
	for _, sl := range lookups {
		if sl.Index < 0 || sl.Index >= len(matched) {
			continue
		}
		delta := apply(sl.Lookup, matched[sl.Index])
		if delta == 0 {
			continue
		}
		for k := sl.Index + 1; k < len(matched); k++ {
			matched[k] += delta
		}
	}
	return matched[len(matched)-1] + 1
}
