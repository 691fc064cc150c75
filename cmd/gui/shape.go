package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-gui/internal/font"
	"github.com/grindlemire/go-gui/internal/shape"
)

var placementNames = map[shape.PlacementKind]string{
	shape.PlacementNone:          "",
	shape.PlacementDistance:      "distance",
	shape.PlacementMarkAnchor:    "mark",
	shape.PlacementMarkOverprint: "overprint",
	shape.PlacementCursiveAnchor: "cursive",
}

// shapedGlyph is one line of the shape command's output.
type shapedGlyph struct {
	Glyph     uint16 `json:"glyph"`
	Cluster   uint32 `json:"cluster"`
	Text      string `json:"text"`
	Advance   int32  `json:"advance"`
	Kerning   int16  `json:"kerning,omitempty"`
	Mark      bool   `json:"mark,omitempty"`
	Placement string `json:"placement,omitempty"`
	DX        int32  `json:"dx,omitempty"`
	DY        int32  `json:"dy,omitempty"`
}

type shapeOptions struct {
	font      string
	index     int
	script    string
	lang      string
	noKerning bool
	asJSON    bool
}

func newShapeCmd() *cobra.Command {
	var opts shapeOptions
	cmd := &cobra.Command{
		Use:   "shape --font <file> <text>",
		Short: "Print the glyphs a font produces for a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := loadFont(opts.font, opts.index)
			if err != nil {
				return err
			}
			glyphs := shapeText(pf, args[0], opts)
			if opts.asJSON {
				data, err := json.MarshalIndent(glyphs, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal glyphs: %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
				return err
			}
			return printGlyphs(cmd.OutOrStdout(), glyphs)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.font, "font", "", "font file")
	f.IntVar(&opts.index, "index", 0, "face index inside a font collection")
	f.StringVar(&opts.script, "script", "", "OpenType script tag such as latn or arab (detected when empty)")
	f.StringVar(&opts.lang, "lang", "", "OpenType language tag (default language system when empty)")
	f.BoolVar(&opts.noKerning, "no-kerning", false, "disable kerning")
	f.BoolVar(&opts.asJSON, "json", false, "print JSON")
	_ = cmd.MarkFlagRequired("font")
	return cmd
}

func shapeText(pf *font.ParsedFont, s string, opts shapeOptions) []shapedGlyph {
	var script, lang font.Tag
	if opts.script != "" {
		script = font.MakeTag(opts.script)
	}
	if opts.lang != "" {
		lang = font.MakeTag(opts.lang)
	}
	runes := []rune(s)
	infos := shape.ShapeWith(pf, runes, script, lang, shape.Options{Kerning: !opts.noKerning})

	out := make([]shapedGlyph, 0, len(infos))
	for _, info := range infos {
		g := shapedGlyph{
			Glyph:     uint16(info.Glyph.Glyph),
			Cluster:   info.Glyph.Cluster,
			Text:      string(info.Glyph.Unicodes),
			Advance:   info.Size.Total(),
			Kerning:   info.Size.Kerning,
			Mark:      info.IsMark,
			Placement: placementNames[info.Placement.Kind],
		}
		if info.Placement.Kind == shape.PlacementDistance {
			g.DX, g.DY = info.Placement.DX, info.Placement.DY
		}
		out = append(out, g)
	}
	return out
}

func printGlyphs(w io.Writer, glyphs []shapedGlyph) error {
	if _, err := fmt.Fprintf(w, "%-6s %-7s %-8s %-8s %-7s %s\n", "glyph", "cluster", "text", "advance", "kern", "placement"); err != nil {
		return err
	}
	for _, g := range glyphs {
		placement := g.Placement
		if g.Placement == "distance" {
			placement = fmt.Sprintf("distance(%d,%d)", g.DX, g.DY)
		}
		if g.Mark {
			placement = "mark " + placement
		}
		if _, err := fmt.Fprintf(w, "%-6d %-7d %-8q %-8d %-7d %s\n", g.Glyph, g.Cluster, g.Text, g.Advance, g.Kerning, placement); err != nil {
			return err
		}
	}
	return nil
}
