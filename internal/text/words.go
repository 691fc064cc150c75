package text

import "golang.org/x/text/unicode/norm"

// WordType classifies an item of a split text.
type WordType uint8

const (
	WordText WordType = iota
	WordSpace
	WordTab
	WordReturn
)

func (t WordType) String() string {
	switch t {
	case WordText:
		return "word"
	case WordSpace:
		return "space"
	case WordTab:
		return "tab"
	case WordReturn:
		return "return"
	default:
		return "unknown"
	}
}

// Word is a half-open rune range of Words.Text.
type Word struct {
	Start, End int
	Type       WordType
}

// Words is a normalized text broken into words and whitespace items.
type Words struct {
	Text  []rune
	Items []Word
}

// Runes returns the runes of item i.
func (w Words) Runes(i int) []rune {
	it := w.Items[i]
	return w.Text[it.Start:it.End]
}

// String returns the normalized text.
func (w Words) String() string { return string(w.Text) }

// SplitWords normalizes s to NFC and splits it at spaces, tabs and line
// breaks. "\r\n" counts as one line break and a trailing line break is
// dropped.
func SplitWords(s string) Words {
	text := []rune(norm.NFC.String(s))
	words := Words{Text: text}

	start := 0
	flush := func(end int) {
		if end > start {
			words.Items = append(words.Items, Word{Start: start, End: end, Type: WordText})
		}
	}
	for i, r := range text {
		var item Word
		switch r {
		case ' ':
			item = Word{Start: i, End: i + 1, Type: WordSpace}
		case '\t':
			item = Word{Start: i, End: i + 1, Type: WordTab}
		case '\n':
			item = Word{Start: i, End: i + 1, Type: WordReturn}
			if i > 0 && text[i-1] == '\r' {
				item.Start = i - 1
			}
		case '\r':
			// Only meaningful as the first half of "\r\n".
			flush(i)
			start = i + 1
			continue
		default:
			continue
		}
		flush(i)
		words.Items = append(words.Items, item)
		start = i + 1
	}
	flush(len(text))

	if n := len(words.Items); n > 0 && words.Items[n-1].Type == WordReturn {
		words.Items = words.Items[:n-1]
	}
	return words
}
