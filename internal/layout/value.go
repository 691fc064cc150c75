package layout

import "strconv"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUndefined Unit = iota // Not set; resolves to nothing
	UnitAuto                  // Size determined by content/flex
	UnitPoints                // Absolute CSS pixels
	UnitPercent               // Percentage of the containing size
)

// Value is a dimension that can be points, a percentage, auto or unset.
// The zero Value is unset.
type Value struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Points returns a Value of n CSS pixels.
func Points(n float32) Value {
	return Value{Amount: n, Unit: UnitPoints}
}

// Percent returns a Value representing a percentage of the containing size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the Value against a containing size. Percentages of an
// undefined size, auto and unset values are undefined.
func (v Value) Resolve(parent Number) Number {
	switch v.Unit {
	case UnitPoints:
		return Defined(v.Amount)
	case UnitPercent:
		if !parent.defined {
			return Undefined
		}
		return Defined(parent.value * v.Amount / 100)
	default:
		return Undefined
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsDefined returns true for points and percentages.
func (v Value) IsDefined() bool {
	return v.Unit == UnitPoints || v.Unit == UnitPercent
}

func (v Value) String() string {
	switch v.Unit {
	case UnitAuto:
		return "auto"
	case UnitPoints:
		return formatFloat(v.Amount) + "px"
	case UnitPercent:
		return formatFloat(v.Amount) + "%"
	default:
		return "undefined"
	}
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
