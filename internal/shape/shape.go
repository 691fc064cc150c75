package shape

import (
	"unicode"

	"github.com/grindlemire/go-gui/internal/font"
)

// DottedCircle is inserted before a combining mark that has no base.
const DottedCircle = '◌'

// Options tune Shape. The zero value disables kerning.
type Options struct {
	Kerning bool
}

// DefaultOptions enables kerning.
func DefaultOptions() Options { return Options{Kerning: true} }

// Shape converts text to glyphs using pf. A zero script is detected from the
// text; a zero lang selects the default language system. Missing glyphs map
// to glyph 0.
func Shape(pf *font.ParsedFont, text []rune, script, lang font.Tag) []GlyphInfo {
	return ShapeWith(pf, text, script, lang, DefaultOptions())
}

// ShapeWith is Shape with explicit options.
func ShapeWith(pf *font.ParsedFont, text []rune, script, lang font.Tag, opts Options) []GlyphInfo {
	if len(text) == 0 {
		return nil
	}
	if script == 0 {
		script = DetectScript(text)
	}
	if lang == 0 {
		lang = font.DefaultLanguage
	}

	glyphs := mapGlyphs(pf, text)
	if isIndic(script) {
		glyphs = insertDottedCircles(pf, glyphs)
	}
	assignMasks(glyphs, script)

	gdef := pf.GDEF()
	if gsub := pf.GSUB(); gsub != nil {
		b := &gsubBuffer{glyphs: glyphs, table: gsub, gdef: gdef}
		b.run(gsub.FeatureLookups(resolveScript(gsub, script), lang, substFeatures(script)), joiningMasks)
		glyphs = b.glyphs
	}

	infos := initInfos(glyphs, gdef)
	if gpos := pf.GPOS(); gpos != nil {
		b := &gposBuffer{infos: infos, table: gpos, gdef: gdef, kerning: opts.Kerning}
		b.run(gpos.FeatureLookups(resolveScript(gpos, script), lang, posFeatures))
		infos = b.infos
	}

	for i := range infos {
		g := infos[i].Glyph.Glyph
		infos[i].Size = Advance{AdvanceX: pf.Advance(g), Kerning: infos[i].Kerning}
		if og := pf.Glyph(g); og != nil {
			infos[i].Size.SizeX = og.Bounds.Width()
			infos[i].Size.SizeY = og.Bounds.Height()
		}
	}
	return infos
}

// mapGlyphs looks up each codepoint, folding a following variation selector
// into the glyph it modifies. A leading selector is folded into the next
// glyph's cluster.
func mapGlyphs(pf *font.ParsedFont, text []rune) []RawGlyph {
	glyphs := make([]RawGlyph, 0, len(text))
	pending := uint32(0)
	for i := 0; i < len(text); i++ {
		r := text[i]
		if font.IsVariationSelector(r) {
			if n := len(glyphs); n > 0 {
				glyphs[n-1].ClusterLen++
			} else {
				pending++
			}
			continue
		}
		g := RawGlyph{
			Unicodes:   []rune{r},
			Origin:     GlyphOrigin{Kind: OriginChar, Char: r},
			Cluster:    uint32(i) - pending,
			ClusterLen: 1 + pending,
		}
		pending = 0
		if i+1 < len(text) && font.IsVariationSelector(text[i+1]) {
			g.Variation = VariationSelector(text[i+1])
			g.Glyph, _ = pf.VariationGlyph(r, text[i+1])
		} else {
			g.Glyph, _ = pf.GlyphIndex(r)
		}
		glyphs = append(glyphs, g)
	}
	if pending > 0 {
		// Only selectors: keep them accounted for as a notdef glyph.
		glyphs = append(glyphs, RawGlyph{Origin: GlyphOrigin{Kind: OriginDirect}, ClusterLen: pending})
	}
	return glyphs
}

// insertDottedCircles places a dotted circle before every combining mark
// that starts the run or follows a space.
func insertDottedCircles(pf *font.ParsedFont, glyphs []RawGlyph) []RawGlyph {
	dotted, ok := pf.GlyphIndex(DottedCircle)
	if !ok {
		return glyphs
	}
	out := make([]RawGlyph, 0, len(glyphs))
	for i, g := range glyphs {
		if len(g.Unicodes) > 0 && unicode.In(g.Unicodes[0], unicode.Mn, unicode.Mc) {
			if i == 0 || (len(glyphs[i-1].Unicodes) > 0 && unicode.IsSpace(glyphs[i-1].Unicodes[0])) {
				out = append(out, RawGlyph{
					Unicodes: []rune{DottedCircle},
					Glyph:    dotted,
					Origin:   GlyphOrigin{Kind: OriginDirect},
					Cluster:  g.Cluster,
				})
			}
		}
		out = append(out, g)
	}
	return out
}
