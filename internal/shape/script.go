package shape

import (
	"unicode"

	"github.com/grindlemire/go-gui/internal/font"
)

// detectWindow is how many leading codepoints script and language
// detection look at.
const detectWindow = 100

var scriptTags = []struct {
	table *unicode.RangeTable
	tag   font.Tag
}{
	{unicode.Latin, font.MakeTag("latn")},
	{unicode.Arabic, font.MakeTag("arab")},
	{unicode.Armenian, font.MakeTag("armn")},
	{unicode.Bengali, font.MakeTag("beng")},
	{unicode.Cyrillic, font.MakeTag("cyrl")},
	{unicode.Devanagari, font.MakeTag("deva")},
	{unicode.Ethiopic, font.MakeTag("ethi")},
	{unicode.Georgian, font.MakeTag("geor")},
	{unicode.Greek, font.MakeTag("grek")},
	{unicode.Gujarati, font.MakeTag("gujr")},
	{unicode.Gurmukhi, font.MakeTag("guru")},
	{unicode.Han, font.MakeTag("hani")},
	{unicode.Hangul, font.MakeTag("hang")},
	{unicode.Hebrew, font.MakeTag("hebr")},
	{unicode.Hiragana, font.MakeTag("kana")},
	{unicode.Katakana, font.MakeTag("kana")},
	{unicode.Kannada, font.MakeTag("knda")},
	{unicode.Khmer, font.MakeTag("khmr")},
	{unicode.Lao, font.MakeTag("lao")},
	{unicode.Malayalam, font.MakeTag("mlym")},
	{unicode.Mongolian, font.MakeTag("mong")},
	{unicode.Myanmar, font.MakeTag("mymr")},
	{unicode.Nko, font.MakeTag("nko")},
	{unicode.Oriya, font.MakeTag("orya")},
	{unicode.Sinhala, font.MakeTag("sinh")},
	{unicode.Syriac, font.MakeTag("syrc")},
	{unicode.Tamil, font.MakeTag("taml")},
	{unicode.Telugu, font.MakeTag("telu")},
	{unicode.Thaana, font.MakeTag("thaa")},
	{unicode.Thai, font.MakeTag("thai")},
	{unicode.Tibetan, font.MakeTag("tibt")},
}

// indicV2 maps Indic script tags to their v2 shaping tags, which fonts
// built for the newer shaping model list instead.
var indicV2 = map[font.Tag]font.Tag{
	font.MakeTag("beng"): font.MakeTag("bng2"),
	font.MakeTag("deva"): font.MakeTag("dev2"),
	font.MakeTag("gujr"): font.MakeTag("gjr2"),
	font.MakeTag("guru"): font.MakeTag("gur2"),
	font.MakeTag("knda"): font.MakeTag("knd2"),
	font.MakeTag("mlym"): font.MakeTag("mlm2"),
	font.MakeTag("mymr"): font.MakeTag("mym2"),
	font.MakeTag("orya"): font.MakeTag("ory2"),
	font.MakeTag("taml"): font.MakeTag("tml2"),
	font.MakeTag("telu"): font.MakeTag("tel2"),
}

// DetectScript returns the OpenType script tag of the dominant script among
// the first codepoints of text. Common and inherited characters do not
// vote; text without any script votes for Latin.
func DetectScript(text []rune) font.Tag {
	votes := make(map[font.Tag]int)
	for i, r := range text {
		if i >= detectWindow {
			break
		}
		for _, st := range scriptTags {
			if unicode.Is(st.table, r) {
				votes[st.tag]++
				break
			}
		}
	}
	best, bestVotes := font.MakeTag("latn"), 0
	for _, st := range scriptTags {
		if n := votes[st.tag]; n > bestVotes {
			best, bestVotes = st.tag, n
		}
	}
	return best
}

// resolveScript picks the script tag the layout table actually lists,
// preferring the v2 tag for Indic scripts.
func resolveScript(t *font.LayoutTable, script font.Tag) font.Tag {
	if t == nil {
		return script
	}
	if v2, ok := indicV2[script]; ok {
		if _, listed := t.Scripts[v2]; listed {
			return v2
		}
	}
	return script
}

func isIndic(script font.Tag) bool {
	_, ok := indicV2[script]
	if ok {
		return true
	}
	for _, v2 := range indicV2 {
		if v2 == script {
			return true
		}
	}
	return false
}
