package css

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProperty is returned for property names the core does not support.
	ErrUnknownProperty = errors.New("unknown css property")
	// ErrInvalidValue is returned when a value cannot be parsed for its property.
	ErrInvalidValue = errors.New("invalid css value")
)

// PropertyType is the discriminant of a Property.
type PropertyType uint16

const (
	PropTextColor PropertyType = iota
	PropFontSize
	PropFontFamily
	PropTextAlign
	PropLetterSpacing
	PropLineHeight
	PropWordSpacing
	PropTabWidth
	PropCursor

	PropDisplay
	PropPosition
	PropTop
	PropRight
	PropBottom
	PropLeft
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropFlexDirection
	PropFlexWrap
	PropFlexGrow
	PropFlexShrink
	PropFlexBasis
	PropJustifyContent
	PropAlignItems
	PropAlignSelf
	PropAlignContent
	PropAspectRatio
	PropOverflowX
	PropOverflowY

	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropBorderTopWidth
	PropBorderRightWidth
	PropBorderBottomWidth
	PropBorderLeftWidth

	PropBorderTopColor
	PropBorderRightColor
	PropBorderBottomColor
	PropBorderLeftColor
	PropBorderTopStyle
	PropBorderRightStyle
	PropBorderBottomStyle
	PropBorderLeftStyle
	PropBorderTopLeftRadius
	PropBorderTopRightRadius
	PropBorderBottomRightRadius
	PropBorderBottomLeftRadius
	PropBoxShadow
	PropBackground

	numPropertyTypes
)

var propertyNames = [numPropertyTypes]string{
	PropTextColor:               "color",
	PropFontSize:                "font-size",
	PropFontFamily:              "font-family",
	PropTextAlign:               "text-align",
	PropLetterSpacing:           "letter-spacing",
	PropLineHeight:              "line-height",
	PropWordSpacing:             "word-spacing",
	PropTabWidth:                "tab-width",
	PropCursor:                  "cursor",
	PropDisplay:                 "display",
	PropPosition:                "position",
	PropTop:                     "top",
	PropRight:                   "right",
	PropBottom:                  "bottom",
	PropLeft:                    "left",
	PropWidth:                   "width",
	PropHeight:                  "height",
	PropMinWidth:                "min-width",
	PropMinHeight:               "min-height",
	PropMaxWidth:                "max-width",
	PropMaxHeight:               "max-height",
	PropFlexDirection:           "flex-direction",
	PropFlexWrap:                "flex-wrap",
	PropFlexGrow:                "flex-grow",
	PropFlexShrink:              "flex-shrink",
	PropFlexBasis:               "flex-basis",
	PropJustifyContent:          "justify-content",
	PropAlignItems:              "align-items",
	PropAlignSelf:               "align-self",
	PropAlignContent:            "align-content",
	PropAspectRatio:             "aspect-ratio",
	PropOverflowX:               "overflow-x",
	PropOverflowY:               "overflow-y",
	PropPaddingTop:              "padding-top",
	PropPaddingRight:            "padding-right",
	PropPaddingBottom:           "padding-bottom",
	PropPaddingLeft:             "padding-left",
	PropMarginTop:               "margin-top",
	PropMarginRight:             "margin-right",
	PropMarginBottom:            "margin-bottom",
	PropMarginLeft:              "margin-left",
	PropBorderTopWidth:          "border-top-width",
	PropBorderRightWidth:        "border-right-width",
	PropBorderBottomWidth:       "border-bottom-width",
	PropBorderLeftWidth:         "border-left-width",
	PropBorderTopColor:          "border-top-color",
	PropBorderRightColor:        "border-right-color",
	PropBorderBottomColor:       "border-bottom-color",
	PropBorderLeftColor:         "border-left-color",
	PropBorderTopStyle:          "border-top-style",
	PropBorderRightStyle:        "border-right-style",
	PropBorderBottomStyle:       "border-bottom-style",
	PropBorderLeftStyle:         "border-left-style",
	PropBorderTopLeftRadius:     "border-top-left-radius",
	PropBorderTopRightRadius:    "border-top-right-radius",
	PropBorderBottomRightRadius: "border-bottom-right-radius",
	PropBorderBottomLeftRadius:  "border-bottom-left-radius",
	PropBoxShadow:               "box-shadow",
	PropBackground:              "background",
}

var propertyByName = func() map[string]PropertyType {
	m := make(map[string]PropertyType, numPropertyTypes)
	for i, name := range propertyNames {
		m[name] = PropertyType(i)
	}
	return m
}()

func (t PropertyType) String() string {
	if t < numPropertyTypes {
		return propertyNames[t]
	}
	return fmt.Sprintf("PropertyType(%d)", uint16(t))
}

// PropertyTypeByName looks up a property by its CSS name.
func PropertyTypeByName(name string) (PropertyType, bool) {
	t, ok := propertyByName[name]
	return t, ok
}

// IsInherited reports whether the property propagates from parent to child
// when the child omits it or specifies inherit.
func (t PropertyType) IsInherited() bool {
	switch t {
	case PropTextColor, PropFontSize, PropFontFamily, PropTextAlign, PropLetterSpacing,
		PropLineHeight, PropWordSpacing, PropTabWidth, PropCursor:
		return true
	}
	return false
}

// IsLayout reports whether the property belongs to RectLayout rather than RectStyle.
func (t PropertyType) IsLayout() bool {
	return t >= PropDisplay && t <= PropBorderLeftWidth
}

// Property is a single typed CSS property. Value holds the exact value when
// Kind is Exact; its dynamic type is fixed per PropertyType.
type Property struct {
	Type  PropertyType
	Kind  ValueKind
	Value any
}

// NewProperty returns an exact property.
func NewProperty(t PropertyType, v any) Property {
	return Property{Type: t, Kind: Exact, Value: v}
}

// Keyword returns a keyword property such as inherit or auto.
func Keyword(t PropertyType, kind ValueKind) Property {
	return Property{Type: t, Kind: kind}
}

// Get extracts the exact value of p as T.
func Get[T any](p Property) (T, bool) {
	if p.Kind != Exact {
		var zero T
		return zero, false
	}
	v, ok := p.Value.(T)
	return v, ok
}

func (p Property) String() string {
	if p.Kind != Exact {
		return fmt.Sprintf("%s: %s", p.Type, p.Kind)
	}
	return fmt.Sprintf("%s: %v", p.Type, p.Value)
}

// toValue converts p into the optional field representation used by RectStyle and RectLayout.
func toValue[T any](p Property) *Value[T] {
	if p.Kind != Exact {
		return &Value[T]{Kind: p.Kind}
	}
	v, ok := p.Value.(T)
	if !ok {
		return nil
	}
	return &Value[T]{Kind: Exact, Inner: v}
}

// BackgroundKind discriminates BackgroundContent.
type BackgroundKind uint8

const (
	BackgroundColor BackgroundKind = iota
	BackgroundImage
	BackgroundLinearGradient
)

// BackgroundContent is a solid color, a CSS image id or a linear gradient.
type BackgroundContent struct {
	Kind     BackgroundKind
	Color    ColorU
	Image    string
	Gradient LinearGradient
}

// LinearGradient is a linear-gradient() background.
type LinearGradient struct {
	// Angle in degrees, 180 = top to bottom.
	Angle float32
	Stops []GradientStop
}

// GradientStop is one color stop; Offset nil means evenly distributed.
type GradientStop struct {
	Offset *PercentageValue
	Color  ColorU
}

// BoxShadow is one box-shadow entry.
type BoxShadow struct {
	OffsetX  PixelValue
	OffsetY  PixelValue
	Color    ColorU
	Blur     PixelValue
	Spread   PixelValue
	ClipMode BoxShadowClipMode
}
