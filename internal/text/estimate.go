package text

import "github.com/mattn/go-runewidth"

// cellEm is the width of a narrow terminal cell relative to the font size.
const cellEm = 0.5

// EstimateWidth approximates the width of s when no font is available,
// counting East Asian wide characters as two cells.
func EstimateWidth(s string, fontSizePx float32) float32 {
	return float32(runewidth.StringWidth(s)) * fontSizePx * cellEm
}
