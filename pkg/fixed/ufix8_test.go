package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint16
	}{
		{"zero", 0, 0},
		{"one", 1, 0x0100},
		{"half", 0.5, 0x0080},
		{"smallest step", 1.0 / 256, 0x0001},
		{"rounds down", 1.0/256*0.49, 0},
		{"rounds up", 1.0/256*0.51, 1},
		{"max", 255.99609375, 0xFFFF},
		{"above max", 300, 0xFFFF},
		{"just below max rounds to max", 255.998, 0xFFFF},
		{"negative", -1, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0xFFFF},
		{"mixed", 12.75, 0x0CC0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FromFloat64(tc.in).Raw())
		})
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for raw := 0; raw <= math.MaxUint16; raw += 97 {
		x := FromRaw(uint16(raw))
		assert.Equal(t, x, FromFloat64(x.Float64()))
		assert.Equal(t, x, FromFloat32(x.Float32()))
	}
}

func TestInt(t *testing.T) {
	assert.Equal(t, uint8(12), FromFloat64(12.75).Int())
	assert.Equal(t, uint8(255), Max.Int())
}

func TestArithmetic(t *testing.T) {
	a := FromFloat64(1.5)
	b := FromFloat64(2.25)

	assert.Equal(t, 3.75, a.Add(b).Float64())
	assert.Equal(t, 0.75, b.Sub(a).Float64())
	assert.Equal(t, 3.375, a.Mul(b).Float64())
	assert.Equal(t, 1.5, b.Div(a).Float64())
	assert.Equal(t, a, a.Mul(One))
	assert.Equal(t, a, a.Div(One))
}

func TestSaturation(t *testing.T) {
	assert.Equal(t, Max, Max.Add(One))
	assert.Equal(t, UFix8(0), One.Sub(Max))
	assert.Equal(t, Max, FromFloat64(200).Mul(FromFloat64(2)))
	assert.Equal(t, Max, FromFloat64(200).Div(FromFloat64(0.5)))
	assert.Equal(t, Max, One.Div(0))
	assert.Equal(t, UFix8(0), UFix8(0).Div(0))
}

func TestString(t *testing.T) {
	assert.Equal(t, "0", UFix8(0).String())
	assert.Equal(t, "1.5", FromFloat64(1.5).String())
	assert.Equal(t, "0.00390625", FromRaw(1).String())
	assert.Equal(t, "255.99609375", Max.String())
}
