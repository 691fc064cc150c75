package gui

import (
	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/layout"
)

// layoutStyle converts the resolved CSS of a node into the flexbox solver's
// style. Unspecified properties keep their CSS initial values. Static
// positioning lays out like relative positioning.
func layoutStyle(sn *dom.StyledNode) layout.Style {
	l := &sn.Layout
	em := sn.FontSizePx()
	s := layout.DefaultStyle()

	if l.Display.GetOr(css.DisplayFlex) == css.DisplayNone {
		s.Display = layout.DisplayNone
	}
	if l.Position.GetOr(css.PositionStatic) == css.PositionAbsolute {
		s.Position = layout.PositionAbsolute
	}
	s.Inset = layout.Sides{
		Top:    inset(l.Top, em),
		Right:  inset(l.Right, em),
		Bottom: inset(l.Bottom, em),
		Left:   inset(l.Left, em),
	}

	s.Width = size(l.Width, em)
	s.Height = size(l.Height, em)
	s.MinWidth = size(l.MinWidth, em)
	s.MinHeight = size(l.MinHeight, em)
	s.MaxWidth = size(l.MaxWidth, em)
	s.MaxHeight = size(l.MaxHeight, em)
	if l.AspectRatio != nil {
		if v, ok := l.AspectRatio.Get(); ok && v.Get() > 0 {
			s.AspectRatio = layout.Defined(v.Get())
		}
	}

	s.Direction = direction(l.FlexDirection.GetOr(css.DirectionRow))
	s.Wrap = wrap(l.FlexWrap.GetOr(css.NoWrap))
	s.JustifyContent = justify(l.JustifyContent.GetOr(css.JustifyStart))
	s.AlignItems = align(l.AlignItems.GetOr(css.AlignStretch))
	s.AlignContent = alignContent(l.AlignContent.GetOr(css.ContentStretch))
	if l.AlignSelf != nil {
		if v, ok := l.AlignSelf.Get(); ok {
			a := align(v)
			s.AlignSelf = &a
		}
	}

	s.FlexGrow = max(0, l.FlexGrow.GetOr(css.Float(0)).Get())
	s.FlexShrink = max(0, l.FlexShrink.GetOr(css.Float(1)).Get())
	s.FlexBasis = size(l.FlexBasis, em)

	s.Padding = layout.Sides{
		Top:    length(l.PaddingTop, em),
		Right:  length(l.PaddingRight, em),
		Bottom: length(l.PaddingBottom, em),
		Left:   length(l.PaddingLeft, em),
	}
	s.Margin = layout.Sides{
		Top:    margin(l.MarginTop, em),
		Right:  margin(l.MarginRight, em),
		Bottom: margin(l.MarginBottom, em),
		Left:   margin(l.MarginLeft, em),
	}
	s.Border = layout.Sides{
		Top:    borderWidth(l.BorderTopWidth, sn.Style.BorderTopStyle, em),
		Right:  borderWidth(l.BorderRightWidth, sn.Style.BorderRightStyle, em),
		Bottom: borderWidth(l.BorderBottomWidth, sn.Style.BorderBottomStyle, em),
		Left:   borderWidth(l.BorderLeftWidth, sn.Style.BorderLeftStyle, em),
	}
	return s
}

// pixels converts an exact length. Percentages stay relative so the solver
// resolves them against the containing block.
func pixels(p css.PixelValue, em float32) layout.Value {
	if p.IsPercent() {
		return layout.Percent(p.Number.Get())
	}
	return layout.Points(p.ToPixelsEm(0, em))
}

// size converts width-like properties, which default to auto.
func size(v *css.Value[css.PixelValue], em float32) layout.Value {
	if v == nil {
		return layout.Auto()
	}
	p, ok := v.Get()
	if !ok {
		return layout.Auto()
	}
	return pixels(p, em)
}

// length converts padding-like properties, which default to zero.
func length(v *css.Value[css.PixelValue], em float32) layout.Value {
	if v == nil {
		return layout.Value{}
	}
	p, ok := v.Get()
	if !ok {
		return layout.Value{}
	}
	return pixels(p, em)
}

func margin(v *css.Value[css.PixelValue], em float32) layout.Value {
	if v != nil && v.Kind == css.Auto {
		return layout.Auto()
	}
	return length(v, em)
}

// inset leaves unset and auto offsets undefined.
func inset(v *css.Value[css.PixelValue], em float32) layout.Value {
	return length(v, em)
}

// borderWidth drops the width of sides whose style draws nothing.
func borderWidth(v *css.Value[css.PixelValue], style *css.Value[css.BorderStyle], em float32) layout.Value {
	if style != nil {
		if s, ok := style.Get(); ok && (s == css.BorderNone || s == css.BorderHidden) {
			return layout.Value{}
		}
	}
	return length(v, em)
}

func direction(d css.FlexDirection) layout.Direction {
	switch d {
	case css.DirectionRowReverse:
		return layout.RowReverse
	case css.DirectionColumn:
		return layout.Column
	case css.DirectionColumnReverse:
		return layout.ColumnReverse
	default:
		return layout.Row
	}
}

func wrap(w css.FlexWrap) layout.Wrap {
	switch w {
	case css.Wrap:
		return layout.WrapLines
	case css.WrapReverse:
		return layout.WrapReverse
	default:
		return layout.NoWrap
	}
}

func justify(j css.JustifyContent) layout.Justify {
	switch j {
	case css.JustifyEnd:
		return layout.JustifyEnd
	case css.JustifyCenter:
		return layout.JustifyCenter
	case css.JustifySpaceBetween:
		return layout.JustifySpaceBetween
	case css.JustifySpaceAround:
		return layout.JustifySpaceAround
	case css.JustifySpaceEvenly:
		return layout.JustifySpaceEvenly
	default:
		return layout.JustifyStart
	}
}

func align(a css.AlignItems) layout.Align {
	switch a {
	case css.AlignStart:
		return layout.AlignStart
	case css.AlignEnd:
		return layout.AlignEnd
	case css.AlignCenter:
		return layout.AlignCenter
	case css.AlignBaseline:
		return layout.AlignBaseline
	default:
		return layout.AlignStretch
	}
}

func alignContent(a css.AlignContent) layout.AlignContent {
	switch a {
	case css.ContentStart:
		return layout.ContentStart
	case css.ContentEnd:
		return layout.ContentEnd
	case css.ContentCenter:
		return layout.ContentCenter
	case css.ContentSpaceBetween:
		return layout.ContentSpaceBetween
	case css.ContentSpaceAround:
		return layout.ContentSpaceAround
	default:
		return layout.ContentStretch
	}
}
