package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitWords(t *testing.T) {
	type tc struct {
		input string
		want  []Word
	}

	tests := map[string]tc{
		"mixed whitespace": {
			input: "abc\tdef  \nghi\r\njkl",
			want: []Word{
				{0, 3, WordText},
				{3, 4, WordTab},
				{4, 7, WordText},
				{7, 8, WordSpace},
				{8, 9, WordSpace},
				{9, 10, WordReturn},
				{10, 13, WordText},
				{13, 15, WordReturn},
				{15, 18, WordText},
			},
		},
		"wide characters": {
			input: "㌊㌋㌌ ㌒㌓",
			want: []Word{
				{0, 3, WordText},
				{3, 4, WordSpace},
				{4, 6, WordText},
			},
		},
		"single": {
			input: "A",
			want:  []Word{{0, 1, WordText}},
		},
		"trailing return dropped": {
			input: "a\n",
			want:  []Word{{0, 1, WordText}},
		},
		"empty": {
			input: "",
		},
		"nfc composes": {
			input: "éx",
			want:  []Word{{0, 2, WordText}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := SplitWords(tt.input)
			if diff := cmp.Diff(tt.want, got.Items); diff != "" {
				t.Errorf("SplitWords(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplitWords_RunesAndString(t *testing.T) {
	w := SplitWords("été")
	if got := w.String(); got != "été" {
		t.Errorf("String() = %q, want %q", got, "été")
	}
	if got := string(w.Runes(0)); got != "été" {
		t.Errorf("Runes(0) = %q, want %q", got, "été")
	}
}

func TestWordType_String(t *testing.T) {
	tests := map[WordType]string{
		WordText:    "word",
		WordSpace:   "space",
		WordTab:     "tab",
		WordReturn:  "return",
		WordType(9): "unknown",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("WordType(%d).String() = %q, want %q", typ, got, want)
		}
	}
}
