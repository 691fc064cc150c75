package gui

import (
	"strings"

	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/displaylist"
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/font"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/resources"
	"github.com/grindlemire/go-gui/internal/text"
)

// wrapSlack widens the wrap width of the final glyph pass so that a text
// sized to its own measured width does not wrap on rounding.
const wrapSlack = 1.0 / 64

// textNode holds the shaped words of one text or label node. Measuring and
// the final glyph layout share them, so each text is shaped once per frame.
type textNode struct {
	str    string
	words  text.Words
	scaled text.ScaledWords
	// face is nil when the node's font family is not loaded. The text is
	// then only estimated and draws no glyphs.
	face   *font.ParsedFont
	family resources.FontId
	fontPx float32
	style  *css.RectStyle
}

func newTextNode(res *resources.AppResources, nd *dom.NodeData, sn *dom.StyledNode) (*textNode, bool) {
	s, ok := res.NodeText(nd)
	if !ok {
		return nil, false
	}
	t := &textNode{
		str:    s,
		words:  text.SplitWords(s),
		family: res.FamilyOf(sn),
		fontPx: sn.FontSizePx(),
		style:  &sn.Style,
	}
	if face, ok := res.Font(t.family); ok && face != nil {
		t.face = face
		t.scaled = text.ScaleWords(t.words, face)
	}
	return t, true
}

// options returns the spacing of the node's CSS, wrapping at maxWidth when
// it is defined.
func (t *textNode) options(maxWidth layout.Number) text.Options {
	st := t.style
	opts := text.DefaultOptions(t.fontPx)
	if st.LineHeight != nil {
		if v, ok := st.LineHeight.Get(); ok {
			opts.LineHeight = v.Get()
		}
	}
	if st.TabWidth != nil {
		if v, ok := st.TabWidth.Get(); ok {
			opts.TabWidth = v.Get()
		}
	}
	opts.LetterSpacing = st.LetterSpacing.GetOr(css.Pixels(0)).ToPixelsEm(t.fontPx, t.fontPx)
	if st.WordSpacing != nil {
		// word-spacing is extra space in pixels; Options wants a multiple
		// of the space advance.
		space := t.scaled.SpaceAdvancePx(t.fontPx)
		if v, ok := st.WordSpacing.Get(); ok && space > 0 {
			opts.WordSpacing = 1 + v.ToPixelsEm(space, t.fontPx)/space
		}
	}
	if maxWidth.IsDefined() {
		w := maxWidth.OrElse(0)
		opts.MaxWidth = &w
	}
	return opts
}

// measure is the node's layout.MeasureFunc.
func (t *textNode) measure(known layout.Size[layout.Number]) layout.Size[float32] {
	if t.face == nil {
		return t.estimate()
	}
	return text.PositionWords(t.words, t.scaled, t.options(known.Width)).ContentSize
}

// estimate sizes the text from character widths when no font is loaded.
func (t *textNode) estimate() layout.Size[float32] {
	lines := strings.Split(t.str, "\n")
	var width float32
	for _, l := range lines {
		width = max(width, text.EstimateWidth(l, t.fontPx))
	}
	step := t.fontPx + text.EstimateWidth(" ", t.fontPx)
	return layout.Size[float32]{Width: width, Height: step * float32(len(lines))}
}

// run lays the glyphs out in content, a content box in window coordinates.
func (t *textNode) run(res *resources.AppResources, content layout.Rect) (displaylist.TextRun, bool) {
	if t.face == nil {
		return displaylist.TextRun{}, false
	}
	p := text.PositionWords(t.words, t.scaled, t.options(layout.Defined(content.Width+wrapSlack)))
	p.ContentSize.Width = content.Width
	align := t.style.TextAlign.GetOr(css.TextAlignLeft)
	run := displaylist.TextRun{
		Glyphs: text.LayoutGlyphs(t.words, t.scaled, p, align, content.Origin()),
	}
	run.FontInstanceKey, _ = res.FontInstanceKey(t.family, t.fontPx)
	return run, true
}
