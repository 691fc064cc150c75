package shape

import (
	"bytes"
	"testing"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/grindlemire/go-gui/internal/font"
)

// shapedRun is one output glyph in font units.
type shapedRun struct {
	Glyph   uint32
	Cluster int
	Advance int32
}

func ourShape(data []byte, text string, opts Options) []shapedRun {
	infos := ShapeWith(font.Parse(data, 0), []rune(text), 0, 0, opts)
	out := make([]shapedRun, len(infos))
	for i, info := range infos {
		out[i] = shapedRun{
			Glyph:   uint32(info.Glyph.Glyph),
			Cluster: int(info.Glyph.Cluster),
			Advance: info.Size.Total(),
		}
	}
	return out
}

// harfbuzzShape shapes text with the go-text HarfBuzz port. The size is one
// pixel per font unit so advances come back in font units.
func harfbuzzShape(t *testing.T, data []byte, text string, kerning bool) []shapedRun {
	t.Helper()
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseTTF: %v", err)
	}
	runes := []rune(text)
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.I(int(face.Upem())),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}
	if !kerning {
		in.FontFeatures = []shaping.FontFeature{{Tag: ot.MustNewTag("kern"), Value: 0}}
	}

	var sh shaping.HarfbuzzShaper
	glyphs := sh.Shape(in).Glyphs
	out := make([]shapedRun, len(glyphs))
	for i, g := range glyphs {
		out[i] = shapedRun{
			Glyph:   uint32(g.GlyphID),
			Cluster: g.ClusterIndex,
			Advance: int32(g.XAdvance.Round()),
		}
	}
	return out
}

func TestShape_MatchesHarfBuzz(t *testing.T) {
	type tc struct {
		font    []byte
		text    string
		kerning bool
	}

	liga := testFont(map[string][]byte{"GSUB": layoutTable("liga", font.GSUBLigature, fiLigature())})
	kern := testFont(map[string][]byte{"GPOS": layoutTable("kern", font.GPOSPair, avKern())})

	tests := map[string]tc{
		"go regular": {
			font:    goregular.TTF,
			text:    "Hello, world",
			kerning: true,
		},
		"ligature": {
			font:    liga,
			text:    "fix",
			kerning: true,
		},
		"ligature after a plain f": {
			font:    liga,
			text:    "affix",
			kerning: true,
		},
		"pair kerning": {
			font:    kern,
			text:    "avav",
			kerning: true,
		},
		"pair kerning disabled": {
			font: kern,
			text: "avav",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			want := harfbuzzShape(t, tt.font, tt.text, tt.kerning)
			got := ourShape(tt.font, tt.text, Options{Kerning: tt.kerning})
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("shaping differs from HarfBuzz (-harfbuzz +ours):\n%s", diff)
			}
		})
	}
}
