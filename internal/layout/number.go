package layout

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is a length that may be undefined, such as the available space
// along an axis with no constraint.
type Number struct {
	value   float32
	defined bool
}

// Undefined is the Number without a value.
var Undefined = Number{}

// Defined returns a Number holding v.
func Defined(v float32) Number { return Number{value: v, defined: true} }

// IsDefined reports whether n holds a value.
func (n Number) IsDefined() bool { return n.defined }

// OrElse returns the value of n, or v when n is undefined.
func (n Number) OrElse(v float32) float32 {
	if n.defined {
		return n.value
	}
	return v
}

// Or returns n when defined and o otherwise.
func (n Number) Or(o Number) Number {
	if n.defined {
		return n
	}
	return o
}

// Add adds v to a defined n.
func (n Number) Add(v float32) Number {
	if !n.defined {
		return n
	}
	return Defined(n.value + v)
}

// Sub subtracts v from a defined n.
func (n Number) Sub(v float32) Number { return n.Add(-v) }

// AddN adds two numbers; the sum is undefined if either is.
func (n Number) AddN(o Number) Number {
	if !n.defined || !o.defined {
		return Undefined
	}
	return Defined(n.value + o.value)
}

// MaybeMax returns max(n, o), or n when o is undefined.
func (n Number) MaybeMax(o Number) Number {
	if n.defined && o.defined {
		return Defined(max(n.value, o.value))
	}
	return n
}

// MaybeMin returns min(n, o), or n when o is undefined.
func (n Number) MaybeMin(o Number) Number {
	if n.defined && o.defined {
		return Defined(min(n.value, o.value))
	}
	return n
}

func (n Number) String() string {
	if !n.defined {
		return "undefined"
	}
	return formatFloat(n.value)
}

// maybeMax returns max(v, o), or v when o is undefined.
func maybeMax(v float32, o Number) float32 {
	if o.defined {
		return max(v, o.value)
	}
	return v
}

// maybeMin returns min(v, o), or v when o is undefined.
func maybeMin(v float32, o Number) float32 {
	if o.defined {
		return min(v, o.value)
	}
	return v
}

// clamp restricts v to [lo, hi]. If lo > hi, lo wins (matches CSS behavior).
func clamp[T constraints.Float](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// isNormal reports whether v is finite and not zero or subnormal.
func isNormal(v float32) bool {
	f := math.Abs(float64(v))
	return f >= 0x1p-126 && f <= math.MaxFloat32
}
