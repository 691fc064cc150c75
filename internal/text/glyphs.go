package text

import (
	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/font"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/shape"
)

// GlyphInstance is a glyph placed on its baseline. Cluster is the index
// into Words.Text of the first codepoint the glyph was shaped from.
type GlyphInstance struct {
	Index   font.GlyphIndex `json:"index"`
	Point   layout.Point    `json:"point"`
	Advance layout.Point    `json:"advance"`
	Cluster uint32          `json:"cluster"`
}

// LayoutGlyphs positions every shaped glyph, aligns the lines and moves the
// result to origin.
func LayoutGlyphs(words Words, scaled ScaledWords, p WordPositions, align css.TextAlign, origin layout.Point) []GlyphInstance {
	fs := p.Options.FontSizePx
	px := func(units int32) float32 { return scaled.Metrics.Scale(units, fs) }

	var (
		glyphs []GlyphInstance
		itemOf []int
	)
	for _, pos := range p.Positions {
		if pos.Scaled < 0 || pos.Scaled >= len(scaled.Items) {
			continue
		}
		word := scaled.Items[pos.Scaled]
		start := len(glyphs)
		runeStart := uint32(words.Items[pos.Item].Start)
		var pen float32
		for _, info := range word.Glyphs {
			adv := px(info.Size.Total())
			g := GlyphInstance{
				Index:   info.Glyph.Glyph,
				Point:   layout.Point{X: pos.Position.X + pen, Y: pos.Position.Y},
				Advance: layout.Point{X: adv},
				Cluster: runeStart + info.Glyph.Cluster,
			}
			placeGlyph(&g, info.Placement, glyphs[start:], px)
			if c := int(info.Glyph.Cluster); c < len(word.graphemes) {
				g.Point.X += p.Options.LetterSpacing * float32(word.graphemes[c])
			}
			glyphs = append(glyphs, g)
			itemOf = append(itemOf, pos.Item)
			pen += adv
		}
	}

	if f := alignFactor(align); f != 0 {
		for _, line := range p.Lines {
			shift := (p.ContentSize.Width - line.Bounds.Width) * f
			for i := range glyphs {
				if itemOf[i] >= line.WordStart && itemOf[i] <= line.WordEnd {
					glyphs[i].Point.X += shift
				}
			}
		}
	}

	for i := range glyphs {
		glyphs[i].Point = glyphs[i].Point.Add(origin)
	}
	return glyphs
}

// placeGlyph applies a GPOS placement. word holds the already placed glyphs
// of the same word; placement bases index into it. Font y grows upwards.
func placeGlyph(g *GlyphInstance, pl shape.Placement, word []GlyphInstance, px func(int32) float32) {
	switch pl.Kind {
	case shape.PlacementDistance:
		g.Point.X += px(pl.DX)
		g.Point.Y -= px(pl.DY)
	case shape.PlacementMarkAnchor:
		if pl.Base < len(word) {
			base := word[pl.Base].Point
			g.Point.X = base.X + px(int32(pl.BaseAnchor.X)-int32(pl.MarkAnchor.X))
			g.Point.Y = base.Y - px(int32(pl.BaseAnchor.Y)-int32(pl.MarkAnchor.Y))
		}
	case shape.PlacementMarkOverprint:
		if pl.Base < len(word) {
			g.Point = word[pl.Base].Point
		}
	case shape.PlacementCursiveAnchor:
		if pl.Base < len(word) {
			g.Point.Y = word[pl.Base].Point.Y - px(int32(pl.ExitAnchor.Y)-int32(pl.EntryAnchor.Y))
		}
	}
}
