package css

// RectLayout is the geometric subset of a node's CSS. A nil field was not
// specified.
type RectLayout struct {
	Display  *Value[LayoutDisplay]
	Position *Value[LayoutPosition]

	Top    *Value[PixelValue]
	Right  *Value[PixelValue]
	Bottom *Value[PixelValue]
	Left   *Value[PixelValue]

	Width     *Value[PixelValue]
	Height    *Value[PixelValue]
	MinWidth  *Value[PixelValue]
	MinHeight *Value[PixelValue]
	MaxWidth  *Value[PixelValue]
	MaxHeight *Value[PixelValue]

	FlexDirection  *Value[FlexDirection]
	FlexWrap       *Value[FlexWrap]
	FlexGrow       *Value[FloatValue]
	FlexShrink     *Value[FloatValue]
	FlexBasis      *Value[PixelValue]
	JustifyContent *Value[JustifyContent]
	AlignItems     *Value[AlignItems]
	AlignSelf      *Value[AlignItems]
	AlignContent   *Value[AlignContent]
	AspectRatio    *Value[FloatValue]

	OverflowX *Value[Overflow]
	OverflowY *Value[Overflow]

	PaddingTop    *Value[PixelValue]
	PaddingRight  *Value[PixelValue]
	PaddingBottom *Value[PixelValue]
	PaddingLeft   *Value[PixelValue]

	MarginTop    *Value[PixelValue]
	MarginRight  *Value[PixelValue]
	MarginBottom *Value[PixelValue]
	MarginLeft   *Value[PixelValue]

	BorderTopWidth    *Value[PixelValue]
	BorderRightWidth  *Value[PixelValue]
	BorderBottomWidth *Value[PixelValue]
	BorderLeftWidth   *Value[PixelValue]
}

// RectStyle is the paint-related subset of a node's CSS. A nil field was not
// specified.
type RectStyle struct {
	Background *Value[BackgroundContent]
	BoxShadow  *Value[[]BoxShadow]

	BorderTopColor    *Value[ColorU]
	BorderRightColor  *Value[ColorU]
	BorderBottomColor *Value[ColorU]
	BorderLeftColor   *Value[ColorU]

	BorderTopStyle    *Value[BorderStyle]
	BorderRightStyle  *Value[BorderStyle]
	BorderBottomStyle *Value[BorderStyle]
	BorderLeftStyle   *Value[BorderStyle]

	BorderTopLeftRadius     *Value[PixelValue]
	BorderTopRightRadius    *Value[PixelValue]
	BorderBottomRightRadius *Value[PixelValue]
	BorderBottomLeftRadius  *Value[PixelValue]

	TextColor     *Value[ColorU]
	FontSize      *Value[PixelValue]
	FontFamily    *Value[[]string]
	TextAlign     *Value[TextAlign]
	LineHeight    *Value[FloatValue]
	LetterSpacing *Value[PixelValue]
	WordSpacing   *Value[PixelValue]
	TabWidth      *Value[FloatValue]
	Cursor        *Value[Cursor]
}

// Apply stores p in the matching field. It reports false if p is not a
// layout property or its value has the wrong type.
func (l *RectLayout) Apply(p Property) bool {
	switch p.Type {
	case PropDisplay:
		return set(&l.Display, p)
	case PropPosition:
		return set(&l.Position, p)
	case PropTop:
		return set(&l.Top, p)
	case PropRight:
		return set(&l.Right, p)
	case PropBottom:
		return set(&l.Bottom, p)
	case PropLeft:
		return set(&l.Left, p)
	case PropWidth:
		return set(&l.Width, p)
	case PropHeight:
		return set(&l.Height, p)
	case PropMinWidth:
		return set(&l.MinWidth, p)
	case PropMinHeight:
		return set(&l.MinHeight, p)
	case PropMaxWidth:
		return set(&l.MaxWidth, p)
	case PropMaxHeight:
		return set(&l.MaxHeight, p)
	case PropFlexDirection:
		return set(&l.FlexDirection, p)
	case PropFlexWrap:
		return set(&l.FlexWrap, p)
	case PropFlexGrow:
		return set(&l.FlexGrow, p)
	case PropFlexShrink:
		return set(&l.FlexShrink, p)
	case PropFlexBasis:
		return set(&l.FlexBasis, p)
	case PropJustifyContent:
		return set(&l.JustifyContent, p)
	case PropAlignItems:
		return set(&l.AlignItems, p)
	case PropAlignSelf:
		return set(&l.AlignSelf, p)
	case PropAlignContent:
		return set(&l.AlignContent, p)
	case PropAspectRatio:
		return set(&l.AspectRatio, p)
	case PropOverflowX:
		return set(&l.OverflowX, p)
	case PropOverflowY:
		return set(&l.OverflowY, p)
	case PropPaddingTop:
		return set(&l.PaddingTop, p)
	case PropPaddingRight:
		return set(&l.PaddingRight, p)
	case PropPaddingBottom:
		return set(&l.PaddingBottom, p)
	case PropPaddingLeft:
		return set(&l.PaddingLeft, p)
	case PropMarginTop:
		return set(&l.MarginTop, p)
	case PropMarginRight:
		return set(&l.MarginRight, p)
	case PropMarginBottom:
		return set(&l.MarginBottom, p)
	case PropMarginLeft:
		return set(&l.MarginLeft, p)
	case PropBorderTopWidth:
		return set(&l.BorderTopWidth, p)
	case PropBorderRightWidth:
		return set(&l.BorderRightWidth, p)
	case PropBorderBottomWidth:
		return set(&l.BorderBottomWidth, p)
	case PropBorderLeftWidth:
		return set(&l.BorderLeftWidth, p)
	}
	return false
}

// Apply stores p in the matching field. It reports false if p is not a
// style property or its value has the wrong type.
func (s *RectStyle) Apply(p Property) bool {
	switch p.Type {
	case PropBackground:
		return set(&s.Background, p)
	case PropBoxShadow:
		return set(&s.BoxShadow, p)
	case PropBorderTopColor:
		return set(&s.BorderTopColor, p)
	case PropBorderRightColor:
		return set(&s.BorderRightColor, p)
	case PropBorderBottomColor:
		return set(&s.BorderBottomColor, p)
	case PropBorderLeftColor:
		return set(&s.BorderLeftColor, p)
	case PropBorderTopStyle:
		return set(&s.BorderTopStyle, p)
	case PropBorderRightStyle:
		return set(&s.BorderRightStyle, p)
	case PropBorderBottomStyle:
		return set(&s.BorderBottomStyle, p)
	case PropBorderLeftStyle:
		return set(&s.BorderLeftStyle, p)
	case PropBorderTopLeftRadius:
		return set(&s.BorderTopLeftRadius, p)
	case PropBorderTopRightRadius:
		return set(&s.BorderTopRightRadius, p)
	case PropBorderBottomRightRadius:
		return set(&s.BorderBottomRightRadius, p)
	case PropBorderBottomLeftRadius:
		return set(&s.BorderBottomLeftRadius, p)
	case PropTextColor:
		return set(&s.TextColor, p)
	case PropFontSize:
		return set(&s.FontSize, p)
	case PropFontFamily:
		return set(&s.FontFamily, p)
	case PropTextAlign:
		return set(&s.TextAlign, p)
	case PropLineHeight:
		return set(&s.LineHeight, p)
	case PropLetterSpacing:
		return set(&s.LetterSpacing, p)
	case PropWordSpacing:
		return set(&s.WordSpacing, p)
	case PropTabWidth:
		return set(&s.TabWidth, p)
	case PropCursor:
		return set(&s.Cursor, p)
	}
	return false
}

// Inherited returns the inheritable property of type t, if specified.
func (s *RectStyle) Inherited(t PropertyType) (Property, bool) {
	switch t {
	case PropTextColor:
		return prop(t, s.TextColor)
	case PropFontSize:
		return prop(t, s.FontSize)
	case PropFontFamily:
		return prop(t, s.FontFamily)
	case PropTextAlign:
		return prop(t, s.TextAlign)
	case PropLineHeight:
		return prop(t, s.LineHeight)
	case PropLetterSpacing:
		return prop(t, s.LetterSpacing)
	case PropWordSpacing:
		return prop(t, s.WordSpacing)
	case PropTabWidth:
		return prop(t, s.TabWidth)
	case PropCursor:
		return prop(t, s.Cursor)
	}
	return Property{}, false
}

// InheritedTypes lists the inheritable properties.
var InheritedTypes = []PropertyType{
	PropTextColor, PropFontSize, PropFontFamily, PropTextAlign, PropLineHeight,
	PropLetterSpacing, PropWordSpacing, PropTabWidth, PropCursor,
}

// HasBorder reports whether any border side has a positive width.
func (l *RectLayout) HasBorder() bool {
	for _, w := range []*Value[PixelValue]{l.BorderTopWidth, l.BorderRightWidth, l.BorderBottomWidth, l.BorderLeftWidth} {
		if v, ok := w.getExact(); ok && v.Number.Get() > 0 {
			return true
		}
	}
	return false
}

// OverflowXOr returns overflow-x or the fallback.
func (l *RectLayout) OverflowXOr(fallback Overflow) Overflow {
	return l.OverflowX.GetOr(fallback)
}

// OverflowYOr returns overflow-y or the fallback.
func (l *RectLayout) OverflowYOr(fallback Overflow) Overflow {
	return l.OverflowY.GetOr(fallback)
}

func (v *Value[T]) getExact() (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return v.Get()
}

func set[T any](field **Value[T], p Property) bool {
	v := toValue[T](p)
	if v == nil {
		return false
	}
	*field = v
	return true
}

func prop[T any](t PropertyType, v *Value[T]) (Property, bool) {
	if v == nil {
		return Property{}, false
	}
	if v.Kind != Exact {
		return Property{Type: t, Kind: v.Kind}, true
	}
	return NewProperty(t, v.Inner), true
}
