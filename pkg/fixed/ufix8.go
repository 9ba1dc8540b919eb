// Package fixed implements UFix8, an unsigned 8.8 fixed-point number.
//
// A UFix8 stores value*256 in a uint16, covering 0 to 255.99609375 in steps
// of 1/256. Conversions round to nearest and saturate at both ends, and so
// does the arithmetic: results never wrap.
package fixed

import (
	"math"
	"strconv"
)

// UFix8 is an unsigned 8.8 fixed-point number.
type UFix8 uint16

const (
	fracBits = 8
	one      = 1 << fracBits

	// Max is the largest representable value, 255.99609375.
	Max UFix8 = math.MaxUint16
	// One is 1.0.
	One UFix8 = one
)

// FromRaw wraps a raw 8.8 bit pattern.
func FromRaw(raw uint16) UFix8 {
	return UFix8(raw)
}

// FromFloat64 converts f, rounding to the nearest step. Negative values and
// NaN become 0; values above Max become Max.
func FromFloat64(f float64) UFix8 {
	switch {
	case !(f > 0):
		return 0
	case f >= Max.Float64():
		return Max
	}
	return UFix8(math.Round(f * one))
}

// FromFloat32 converts f like FromFloat64.
func FromFloat32(f float32) UFix8 {
	return FromFloat64(float64(f))
}

// Raw returns the 8.8 bit pattern.
func (x UFix8) Raw() uint16 {
	return uint16(x)
}

// Float64 returns x as a float64. The conversion is exact.
func (x UFix8) Float64() float64 {
	return float64(x) / one
}

// Float32 returns x as a float32. The conversion is exact.
func (x UFix8) Float32() float32 {
	return float32(x) / one
}

// Int returns the integer part of x.
func (x UFix8) Int() uint8 {
	return uint8(x >> fracBits)
}

// Add returns x+y, saturating at Max.
func (x UFix8) Add(y UFix8) UFix8 {
	return saturate(uint32(x) + uint32(y))
}

// Sub returns x-y, saturating at 0.
func (x UFix8) Sub(y UFix8) UFix8 {
	if y > x {
		return 0
	}
	return x - y
}

// Mul returns x*y rounded to nearest, saturating at Max.
func (x UFix8) Mul(y UFix8) UFix8 {
	return saturate((uint32(x)*uint32(y) + one/2) >> fracBits)
}

// Div returns x/y rounded to nearest, saturating at Max. Division by zero
// returns Max, or 0 when x is also 0.
func (x UFix8) Div(y UFix8) UFix8 {
	if y == 0 {
		if x == 0 {
			return 0
		}
		return Max
	}
	return saturate((uint32(x)<<fracBits + uint32(y)/2) / uint32(y))
}

// String formats x in the shortest decimal form that converts back to it
// exactly, e.g. "1.5" or "0.00390625".
func (x UFix8) String() string {
	return strconv.FormatFloat(x.Float64(), 'f', -1, 64)
}

func saturate(v uint32) UFix8 {
	if v > uint32(Max) {
		return Max
	}
	return UFix8(v)
}
