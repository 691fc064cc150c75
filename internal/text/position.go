package text

import "github.com/grindlemire/go-gui/internal/layout"

// Spacing defaults, as multiples of the advance of a space (letter spacing
// is in pixels).
const (
	DefaultLineHeight    = 1.0
	DefaultWordSpacing   = 1.0
	DefaultLetterSpacing = 0.0
	DefaultTabWidth      = 4.0
)

// Options control PositionWords.
type Options struct {
	FontSizePx float32
	// LineHeight is the gap between lines as a multiple of the space
	// advance. A line is FontSizePx plus that gap tall.
	LineHeight    float32
	WordSpacing   float32
	LetterSpacing float32
	TabWidth      float32
	// MaxWidth is the wrap width in pixels. Nil disables wrapping.
	MaxWidth *float32
	// Leading indents the first line.
	Leading float32
}

// DefaultOptions returns the default spacing at the given font size.
func DefaultOptions(fontSizePx float32) Options {
	return Options{
		FontSizePx:    fontSizePx,
		LineHeight:    DefaultLineHeight,
		WordSpacing:   DefaultWordSpacing,
		LetterSpacing: DefaultLetterSpacing,
		TabWidth:      DefaultTabWidth,
	}
}

// WordPosition places one item of Words. Position is the left end of the
// item on its line's baseline.
type WordPosition struct {
	Item int
	// Scaled indexes ScaledWords.Items, or is -1 for whitespace.
	Scaled   int
	Position layout.Point
	Size     layout.Size[float32]
}

// Line is one laid-out line. WordStart and WordEnd are inclusive indexes
// into Words.Items; Bounds is left aligned and as wide as the line's content.
type Line struct {
	WordStart, WordEnd int
	Bounds             layout.Rect
}

// WordPositions is the result of PositionWords.
type WordPositions struct {
	Options     Options
	Positions   []WordPosition
	Lines       []Line
	ContentSize layout.Size[float32]
	// LineStep is the distance between two baselines.
	LineStep float32
	// Trailing is the caret x after the last item.
	Trailing    float32
	ScaledCount int
}

// Baseline returns the y of the baseline of line n, counted from 0.
func (p WordPositions) Baseline(n int) float32 {
	return p.LineStep*float32(n) + p.Options.FontSizePx
}

// breaks reports whether an item of width w placed at x must move to the
// next line. An item wider than the line never breaks at the line start.
func breaks(x, w float32, maxWidth *float32) bool {
	if maxWidth == nil {
		return false
	}
	if x == 0 && *maxWidth < w {
		return false
	}
	return x+w > *maxWidth
}

// PositionWords walks a caret over words, breaking lines at opts.MaxWidth.
// Zero-width items never cause a break, so zero-advance fonts terminate.
func PositionWords(words Words, scaled ScaledWords, opts Options) WordPositions {
	fs := opts.FontSizePx
	space := scaled.SpaceAdvancePx(fs)
	wordSpacing := space * opts.WordSpacing
	tabWidth := space * opts.TabWidth

	p := WordPositions{Options: opts, LineStep: fs + space*opts.LineHeight}

	x := opts.Leading
	var line, lineStart, lastWord, next int
	last := len(words.Items) - 1

	place := func(item, scaledIdx int, w float32) {
		p.Positions = append(p.Positions, WordPosition{
			Item:     item,
			Scaled:   scaledIdx,
			Position: layout.Point{X: x, Y: p.Baseline(line)},
			Size:     layout.Size[float32]{Width: w, Height: p.LineStep},
		})
	}
	endLine := func(end int) {
		p.Lines = append(p.Lines, Line{
			WordStart: lineStart,
			WordEnd:   max(end, lineStart),
			Bounds:    layout.NewRect(0, p.LineStep*float32(line), x, p.LineStep),
		})
	}

	for i, item := range words.Items {
		switch item.Type {
		case WordText:
			if next >= len(scaled.Items) {
				continue
			}
			sw := scaled.Items[next]
			w := sw.WidthPx(scaled.Metrics, fs) + opts.LetterSpacing*float32(max(sw.Graphemes()-1, 0))
			if breaks(x, w, opts.MaxWidth) {
				endLine(i - 1)
				lineStart = i
				line++
				x = 0
			}
			place(i, next, w)
			x += w
			next++
			lastWord = i

		case WordReturn:
			place(i, -1, 0)
			if i != last {
				endLine(i - 1)
				lineStart = i + 1
				line++
				x = 0
			}

		case WordSpace, WordTab:
			adv := wordSpacing
			if item.Type == WordTab {
				adv = tabWidth
			}
			place(i, -1, adv)
			if !breaks(x, adv, opts.MaxWidth) {
				x += adv
				continue
			}
			// The whitespace stays at the end of the old line.
			if i != last {
				endLine(i - 1)
				lineStart = i
				line++
				x = 0
			}
		}
	}
	endLine(lastWord)

	var longest float32
	for _, l := range p.Lines {
		longest = max(longest, l.Bounds.Width)
	}
	p.ContentSize = layout.Size[float32]{Width: longest, Height: float32(len(p.Lines)) * p.LineStep}
	if opts.MaxWidth != nil {
		p.ContentSize.Width = *opts.MaxWidth
	}
	p.Trailing = x
	p.ScaledCount = next
	return p
}
