package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-gui/internal/font"
)

var errNotAFont = errors.New("not a usable font")

// fontInfo is the summary printed by the font command.
type fontInfo struct {
	UnitsPerEm  uint16 `json:"units_per_em"`
	Glyphs      uint16 `json:"glyphs"`
	Ascender    int16  `json:"ascender"`
	Descender   int16  `json:"descender"`
	LineGap     int16  `json:"line_gap"`
	LineHeight  int32  `json:"line_height"`
	XHeight     int16  `json:"x_height"`
	CapHeight   int16  `json:"cap_height"`
	WeightClass uint16 `json:"weight_class"`
	SpaceWidth  uint16 `json:"space_width"`
	Outlines    bool   `json:"outlines"`
	GSUB        bool   `json:"gsub"`
	GPOS        bool   `json:"gpos"`
	GDEF        bool   `json:"gdef"`
}

func newFontCmd() *cobra.Command {
	var (
		index  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "font <file>",
		Short: "Print the metrics and tables of a TrueType or OpenType font",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := loadFont(args[0], index)
			if err != nil {
				return err
			}
			info := describeFont(pf)
			if asJSON {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal font info: %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
				return err
			}
			return printFont(cmd.OutOrStdout(), info)
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "face index inside a font collection")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

// loadFont reads and parses face index of path. font.Parse never fails, so
// a face without units per em or glyphs is reported as unusable.
func loadFont(path string, index int) (*font.ParsedFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	pf := font.Parse(data, index)
	if pf.Metrics.UnitsPerEm == 0 || pf.NumGlyphs == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNotAFont)
	}
	return pf, nil
}

func describeFont(pf *font.ParsedFont) fontInfo {
	m := pf.Metrics
	return fontInfo{
		UnitsPerEm:  m.UnitsPerEm,
		Glyphs:      pf.NumGlyphs,
		Ascender:    m.Ascender,
		Descender:   m.Descender,
		LineGap:     m.LineGap,
		LineHeight:  m.LineHeight(),
		XHeight:     m.XHeight,
		CapHeight:   m.CapHeight,
		WeightClass: m.WeightClass,
		SpaceWidth:  pf.SpaceWidth,
		Outlines:    pf.HasOutlines(),
		GSUB:        pf.GSUB() != nil,
		GPOS:        pf.GPOS() != nil,
		GDEF:        pf.GDEF() != nil,
	}
}

func printFont(w io.Writer, info fontInfo) error {
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}
	_, err := fmt.Fprintf(w, `units per em  %d
glyphs        %d
ascender      %d
descender     %d
line gap      %d
line height   %d
x-height      %d
cap height    %d
weight        %d
space width   %d
outlines      %s
GSUB          %s
GPOS          %s
GDEF          %s
`,
		info.UnitsPerEm, info.Glyphs, info.Ascender, info.Descender, info.LineGap,
		info.LineHeight, info.XHeight, info.CapHeight, info.WeightClass, info.SpaceWidth,
		yesNo(info.Outlines), yesNo(info.GSUB), yesNo(info.GPOS), yesNo(info.GDEF))
	return err
}
