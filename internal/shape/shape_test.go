package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/grindlemire/go-gui/internal/font"
)

func clusterLens(infos []GlyphInfo) []uint32 {
	out := make([]uint32, len(infos))
	for i, info := range infos {
		out[i] = info.Glyph.ClusterLen
	}
	return out
}

func glyphIDs(infos []GlyphInfo) []font.GlyphIndex {
	out := make([]font.GlyphIndex, len(infos))
	for i, info := range infos {
		out[i] = info.Glyph.Glyph
	}
	return out
}

func TestShape_GoRegular(t *testing.T) {
	pf := font.Parse(goregular.TTF, 0)
	text := []rune("Hello, world")
	infos := Shape(pf, text, 0, 0)

	if len(infos) != len(text) {
		t.Fatalf("len(infos) = %d, want %d", len(infos), len(text))
	}
	for i, r := range text {
		want, _ := pf.GlyphIndex(r)
		info := infos[i]
		if info.Glyph.Glyph != want {
			t.Errorf("glyph %d = %d, want %d", i, info.Glyph.Glyph, want)
		}
		if info.Size.AdvanceX != pf.Advance(want) {
			t.Errorf("advance %d = %d, want %d", i, info.Size.AdvanceX, pf.Advance(want))
		}
		if info.Glyph.Origin != (GlyphOrigin{Kind: OriginChar, Char: r}) {
			t.Errorf("origin %d = %+v, want char %q", i, info.Glyph.Origin, r)
		}
	}
}

func TestShape_ClusterLengthsCoverInput(t *testing.T) {
	pf := font.Parse(goregular.TTF, 0)
	tests := map[string]string{
		"ascii":              "The quick brown fox",
		"combining":          "e\u0301a\u0300",
		"variation selector": "a\uFE0Fb\uFE0E",
		"leading selector":   "\uFE0Fab",
		"only selectors":     "\uFE0F\uFE0E",
		"unmapped":           "\u4e16\u754c",
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			runes := []rune(text)
			infos := Shape(pf, runes, 0, 0)
			var sum uint32
			for _, l := range clusterLens(infos) {
				sum += l
			}
			if int(sum) != len(runes) {
				t.Errorf("sum of cluster lengths = %d, want %d", sum, len(runes))
			}
			var next uint32
			for _, cr := range Clusters(infos) {
				if cr.Start != next {
					t.Errorf("cluster starts at %d, want %d", cr.Start, next)
				}
				next = cr.End
			}
		})
	}
}

func TestShape_VariationSelector(t *testing.T) {
	pf := font.Parse(goregular.TTF, 0)
	infos := Shape(pf, []rune("a\uFE0Fb"), 0, 0)
	if len(infos) != 2 {
		t.Fatalf("len(infos) = %d, want 2", len(infos))
	}
	if infos[0].Glyph.Variation != 0xfe0f {
		t.Errorf("variation = %U, want U+FE0F", infos[0].Glyph.Variation)
	}
	if diff := cmp.Diff([]uint32{2, 1}, clusterLens(infos)); diff != "" {
		t.Errorf("cluster lengths mismatch (-want +got):\n%s", diff)
	}
}

func TestShape_MissingGlyphIsNotdef(t *testing.T) {
	pf := font.Parse(testFont(nil), 0)
	infos := Shape(pf, []rune("a1b"), 0, 0)
	if diff := cmp.Diff([]font.GlyphIndex{glyphA, 0, glyphA + 1}, glyphIDs(infos)); diff != "" {
		t.Errorf("glyphs mismatch (-want +got):\n%s", diff)
	}
}

func TestShape_Ligature(t *testing.T) {
	pf := font.Parse(testFont(map[string][]byte{"GSUB": layoutTable("liga", font.GSUBLigature, fiLigature())}), 0)
	infos := Shape(pf, []rune("fix"), 0, 0)

	if diff := cmp.Diff([]font.GlyphIndex{glyphFI, glyphX}, glyphIDs(infos)); diff != "" {
		t.Fatalf("glyphs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint32{2, 1}, clusterLens(infos)); diff != "" {
		t.Errorf("cluster lengths mismatch (-want +got):\n%s", diff)
	}
	if infos[0].Glyph.Origin.Kind != OriginDirect {
		t.Errorf("ligature origin = %v, want Direct", infos[0].Glyph.Origin.Kind)
	}
	if diff := cmp.Diff([]rune("fi"), infos[0].Glyph.Unicodes); diff != "" {
		t.Errorf("ligature unicodes mismatch (-want +got):\n%s", diff)
	}
}

func TestShape_LigatureOverMark(t *testing.T) {
	gsub := layoutTableFlag("liga", font.GSUBLigature, font.LookupIgnoreMarks, fiLigature())
	pf := font.Parse(testFont(map[string][]byte{"GSUB": gsub}), 0)
	infos := Shape(pf, []rune("f\u0301ix"), 0, 0)

	if diff := cmp.Diff([]font.GlyphIndex{glyphFI, 0, glyphX}, glyphIDs(infos)); diff != "" {
		t.Fatalf("glyphs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint32{3, 0, 1}, clusterLens(infos)); diff != "" {
		t.Errorf("cluster lengths mismatch (-want +got):\n%s", diff)
	}
	want := []ClusterRange{{Start: 0, End: 3}, {Start: 3, End: 4}}
	if diff := cmp.Diff(want, Clusters(infos)); diff != "" {
		t.Errorf("Clusters() mismatch (-want +got):\n%s", diff)
	}
	if got := infos[1].Glyph.LigaComponentPos; got != 0 {
		t.Errorf("mark LigaComponentPos = %d, want 0", got)
	}
}

func TestShape_Kerning(t *testing.T) {
	pf := font.Parse(testFont(map[string][]byte{"GPOS": layoutTable("kern", font.GPOSPair, avKern())}), 0)

	tests := map[string]struct {
		opts Options
		want int32
	}{
		"enabled":  {opts: DefaultOptions(), want: testAdvance - 50},
		"disabled": {opts: Options{}, want: testAdvance},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			infos := ShapeWith(pf, []rune("av"), 0, 0, tt.opts)
			if got := infos[0].Size.Total(); got != tt.want {
				t.Errorf("advance of 'a' = %d, want %d", got, tt.want)
			}
			if got := infos[1].Size.Total(); got != testAdvance {
				t.Errorf("advance of 'v' = %d, want %d", got, testAdvance)
			}
		})
	}
}

func TestShape_ZeroMetricFont(t *testing.T) {
	infos := Shape(font.Default(), []rune("abc"), 0, 0)
	if len(infos) != 3 {
		t.Fatalf("len(infos) = %d, want 3", len(infos))
	}
	for i, info := range infos {
		if info.Glyph.Glyph != 0 || info.Size.Total() != 0 {
			t.Errorf("info %d = %+v, want glyph 0 with zero advance", i, info)
		}
	}
}

func TestShape_Empty(t *testing.T) {
	if infos := Shape(font.Default(), nil, 0, 0); infos != nil {
		t.Errorf("Shape(nil) = %v, want nil", infos)
	}
}
