package css

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

const (
	// PtToPx converts typographic points to CSS pixels.
	PtToPx = 96.0 / 72.0
	// EmHeight is the pixel size of 1em when no font size is known.
	EmHeight = 16.0
)

// ValueKind discriminates a property value.
type ValueKind uint8

const (
	Auto ValueKind = iota
	None
	Initial
	Inherit
	Revert
	Unset
	Exact
)

var valueKindNames = [...]string{"auto", "none", "initial", "inherit", "revert", "unset", "exact"}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", uint8(k))
}

// Value is a CSS property value: either a keyword or an exact T.
type Value[T any] struct {
	Kind  ValueKind
	Inner T
}

// ExactValue wraps v as an exact value.
func ExactValue[T any](v T) Value[T] {
	return Value[T]{Kind: Exact, Inner: v}
}

// Get returns the exact value, or false for keywords.
func (v Value[T]) Get() (T, bool) {
	if v.Kind != Exact {
		var zero T
		return zero, false
	}
	return v.Inner, true
}

// GetOr returns the exact value or fallback.
func (v *Value[T]) GetOr(fallback T) T {
	if v == nil || v.Kind != Exact {
		return fallback
	}
	return v.Inner
}

// FloatValue is a fixed-point number with 12 fractional bits, so that equal
// inputs compare and hash equal after parsing.
type FloatValue struct {
	Number fixed.Int52_12
}

// Float converts f to a FloatValue.
func Float(f float32) FloatValue {
	return FloatValue{Number: fixed.Int52_12(math.Round(float64(f) * 4096))}
}

// Get returns the value as float32.
func (f FloatValue) Get() float32 {
	return float32(float64(f.Number) / 4096)
}

func (f FloatValue) String() string {
	return fmt.Sprintf("%g", f.Get())
}

// SizeMetric is the unit of a PixelValue.
type SizeMetric uint8

const (
	Px SizeMetric = iota
	Pt
	Em
	Percent
)

func (m SizeMetric) String() string {
	switch m {
	case Px:
		return "px"
	case Pt:
		return "pt"
	case Em:
		return "em"
	case Percent:
		return "%"
	default:
		return fmt.Sprintf("SizeMetric(%d)", uint8(m))
	}
}

// PixelValue is a length with a unit.
type PixelValue struct {
	Metric SizeMetric
	Number FloatValue
}

// Pixels returns a px length.
func Pixels(f float32) PixelValue { return PixelValue{Metric: Px, Number: Float(f)} }

// Points returns a pt length.
func Points(f float32) PixelValue { return PixelValue{Metric: Pt, Number: Float(f)} }

// Ems returns an em length.
func Ems(f float32) PixelValue { return PixelValue{Metric: Em, Number: Float(f)} }

// Percentage returns a percentage length on a 0-100 scale.
func Percentage(f float32) PixelValue { return PixelValue{Metric: Percent, Number: Float(f)} }

// ToPixels resolves the length. Percentages resolve against percentResolve,
// ems against EmHeight.
func (p PixelValue) ToPixels(percentResolve float32) float32 {
	return p.ToPixelsEm(percentResolve, EmHeight)
}

// ToPixelsEm resolves the length, using emSize for em units.
func (p PixelValue) ToPixelsEm(percentResolve, emSize float32) float32 {
	n := p.Number.Get()
	switch p.Metric {
	case Pt:
		return n * PtToPx
	case Em:
		return n * emSize
	case Percent:
		return n / 100 * percentResolve
	default:
		return n
	}
}

// IsPercent reports whether the length is relative to its containing block.
func (p PixelValue) IsPercent() bool {
	return p.Metric == Percent
}

func (p PixelValue) String() string {
	return fmt.Sprintf("%s%s", p.Number, p.Metric)
}

// PercentageValue is a plain percentage, e.g. a gradient stop offset.
type PercentageValue struct {
	Number FloatValue
}

// Get returns the percentage on a 0-100 scale.
func (p PercentageValue) Get() float32 {
	return p.Number.Get()
}
