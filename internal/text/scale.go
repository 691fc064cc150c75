package text

import (
	"github.com/rivo/uniseg"

	"github.com/grindlemire/go-gui/internal/font"
	"github.com/grindlemire/go-gui/internal/shape"
)

// ScaledWord is one shaped word in font units.
type ScaledWord struct {
	Glyphs []shape.GlyphInfo
	// Width is the sum of the glyph advances including kerning.
	Width int32
	// graphemes maps each codepoint of the word to the index of the
	// grapheme cluster containing it.
	graphemes []int
}

// Graphemes returns the number of grapheme clusters in the word.
func (w ScaledWord) Graphemes() int {
	if len(w.graphemes) == 0 {
		return 0
	}
	return w.graphemes[len(w.graphemes)-1] + 1
}

// WidthPx scales the word width to pixels.
func (w ScaledWord) WidthPx(m font.FontMetrics, fontSizePx float32) float32 {
	return m.Scale(w.Width, fontSizePx)
}

// ScaledWords holds the shaped text items of a Words value. Only WordText
// items are shaped; Items[i] is the i-th such item.
type ScaledWords struct {
	Items        []ScaledWord
	Metrics      font.FontMetrics
	SpaceAdvance uint16
	LongestWord  int32
}

// SpaceAdvancePx returns the advance of a space at the given font size.
func (s ScaledWords) SpaceAdvancePx(fontSizePx float32) float32 {
	return s.Metrics.Scale(int32(s.SpaceAdvance), fontSizePx)
}

// ScaleWords shapes every word of words with pf. The script is detected
// once for the whole text. Faces without a space glyph use one em as the
// space advance.
func ScaleWords(words Words, pf *font.ParsedFont) ScaledWords {
	out := ScaledWords{Metrics: pf.Metrics, SpaceAdvance: pf.Metrics.UnitsPerEm}
	if _, ok := pf.GlyphIndex(' '); ok {
		out.SpaceAdvance = pf.SpaceWidth
	}

	script := shape.DetectScript(words.Text)
	lang, ok := shape.DetectLanguage(words.Text)
	if !ok {
		lang = font.DefaultLanguage
	}

	for i, item := range words.Items {
		if item.Type != WordText {
			continue
		}
		runes := words.Runes(i)
		infos := shape.Shape(pf, runes, script, lang)
		w := ScaledWord{Glyphs: infos, graphemes: graphemeIndex(runes)}
		for _, info := range infos {
			w.Width += info.Size.Total()
		}
		out.LongestWord = max(out.LongestWord, w.Width)
		out.Items = append(out.Items, w)
	}
	return out
}

// graphemeIndex assigns each rune the index of its grapheme cluster.
func graphemeIndex(runes []rune) []int {
	idx := make([]int, 0, len(runes))
	g := uniseg.NewGraphemes(string(runes))
	for n := 0; g.Next(); n++ {
		for range g.Runes() {
			idx = append(idx, n)
		}
	}
	return idx
}
