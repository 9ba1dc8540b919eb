package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample has determinant 24 and an inverse with short exact fractions.
var sample = Mat4d{
	3, 2, 0, 1,
	4, 0, 1, 2,
	3, 0, 2, 1,
	9, 2, 3, 1,
}

// incremental holds 1..16 row by row; its rows are linearly dependent.
func incremental[T Float]() Mat4[T] {
	var a [16]T
	for i := range a {
		a[i] = T(i + 1)
	}
	return Mat4FromArray(a)
}

func assertMatNear[T Float](t *testing.T, want, got Mat4[T], eps T) {
	t.Helper()
	if !got.ApproxEqual(want, eps) {
		t.Errorf("matrix mismatch\n got: %v\nwant: %v", got, want)
	}
}

func TestMat4Identity(t *testing.T) {
	id := Mat4Identity[float64]()
	assert.True(t, id.IsIdentity())
	assert.Equal(t, 1.0, id.Determinant())

	m := id
	m.M12 = 1e-12
	assert.False(t, m.IsIdentity(), "IsIdentity must be exact")

	assert.Equal(t, sample, id.Mul(sample))
	assert.Equal(t, sample, sample.Mul(id))
}

func TestMat4ArrayRoundTrip(t *testing.T) {
	a := sample.Array()
	assert.Equal(t, [16]float64{3, 2, 0, 1, 4, 0, 1, 2, 3, 0, 2, 1, 9, 2, 3, 1}, a)
	assert.Equal(t, sample, Mat4FromArray(a))
}

func TestMat4GetSetRowCol(t *testing.T) {
	m := sample
	assert.Equal(t, 1.0, m.Get(1, 2))
	assert.Equal(t, V4(4.0, 0, 1, 2), m.Row(1))
	assert.Equal(t, V4(1.0, 2, 1, 1), m.Col(3))

	m.Set(3, 0, -7)
	assert.Equal(t, -7.0, m.M41)
}

func TestMat4Translation(t *testing.T) {
	m := sample
	assert.Equal(t, V3d(9, 2, 3), m.Translation())

	m.SetTranslation(V3d(-1, -2, -3))
	assert.Equal(t, V3d(-1, -2, -3), m.Translation())
	// Only row 4 changes.
	assert.Equal(t, sample.Row(0), m.Row(0))
	assert.Equal(t, sample.M44, m.M44)

	assert.Equal(t, m, sample.WithTranslation(V3d(-1, -2, -3)))
}

func TestMat4Determinant(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4d
		want float64
	}{
		{"identity", Mat4Identity[float64](), 1},
		{"sample", sample, 24},
		{"incremental", incremental[float64](), 0},
		{"scale", ScaleXYZ(2.0, 3, 4), 24},
		{"mirror", ScaleXYZ(-1.0, 1, 1), -1},
		{"rotation", RotateX(0.7).Mul(RotateY(-1.3)), 1},
		{"translation", TranslateXYZ(5.0, 6, 7), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.m.Determinant(), 1e-12)
		})
	}
}

func TestMat4Invert(t *testing.T) {
	inv, ok := sample.Invert()
	require.True(t, ok)

	want := Mat4d{
		-1.0 / 4, 1.0 / 4, -1.0 / 2, 1.0 / 4,
		2.0 / 3, -1.0 / 2, 1.0 / 2, -1.0 / 6,
		1.0 / 6, -1.0 / 2, 1, -1.0 / 6,
		5.0 / 12, 1.0 / 4, 1.0 / 2, -5.0 / 12,
	}
	assertMatNear(t, want, inv, 1e-12)
	assertMatNear(t, Mat4Identity[float64](), sample.Mul(inv), 1e-12)
	assertMatNear(t, Mat4Identity[float64](), inv.Mul(sample), 1e-12)
}

func TestMat4InvertAffine(t *testing.T) {
	m := Scale(V3f(2, 3, 0.5)).Mul(FromYawPitchRoll[float32](0.4, -0.2, 1.1)).Mul(Translate(V3f(10, -4, 3)))
	inv, ok := m.Invert()
	require.True(t, ok)
	assertMatNear(t, Mat4Identity[float32](), m.Mul(inv), 1e-4)

	p := V3f(1, 2, 3)
	assert.True(t, p.Transform(m).Transform(inv).ApproxEqual(p, 1e-4))
}

func TestMat4InvertSingular(t *testing.T) {
	for name, m := range map[string]Mat4d{
		"zero":        {},
		"incremental": incremental[float64](),
		"flattened":   ScaleXYZ(1.0, 1, 0),
	} {
		t.Run(name, func(t *testing.T) {
			inv, ok := m.Invert()
			assert.False(t, ok)
			for i, v := range inv.Array() {
				assert.True(t, math.IsNaN(v), "component %d = %v, want NaN", i, v)
			}
			assert.False(t, inv.Equal(inv), "NaN matrix must not equal itself")
			assert.True(t, m.Inverse().HasNaN())
		})
	}
}

func TestMat4InvertFloat32Singular(t *testing.T) {
	inv, ok := incremental[float32]().Invert()
	assert.False(t, ok)
	assert.True(t, inv.HasNaN())
}

func TestMat4Transpose(t *testing.T) {
	tr := sample.Transpose()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, sample.Get(r, c), tr.Get(c, r))
		}
	}
	assert.Equal(t, sample, tr.Transpose())
}

func TestMat4Arithmetic(t *testing.T) {
	id := Mat4Identity[float64]()

	sum := sample.Add(id)
	assert.Equal(t, 4.0, sum.M11)
	assert.Equal(t, 2.0, sum.M44)
	assert.Equal(t, sample, sum.Sub(id))
	assert.Equal(t, Mat4d{}, sample.Add(sample.Negate()))
	assert.Equal(t, sample.Add(sample), sample.MulScalar(2))
}

func TestMat4MulOrder(t *testing.T) {
	// Row vectors: A.Mul(B) applies A first.
	m := Translate(V3d(1, 0, 0)).Mul(RotateZ(math.Pi / 2))
	got := V3d(0, 0, 0).Transform(m)
	assert.True(t, got.ApproxEqual(V3d(0, 1, 0), 1e-12), "got %v", got)

	m = RotateZ(math.Pi / 2).Mul(Translate(V3d(1, 0, 0)))
	got = V3d(0, 0, 0).Transform(m)
	assert.True(t, got.ApproxEqual(V3d(1, 0, 0), 1e-12), "got %v", got)
}

func TestMat4MulVectors(t *testing.T) {
	m := sample
	v := V4(1.0, 2, 3, 1)
	want := V4(
		1*m.M11+2*m.M21+3*m.M31+m.M41,
		1*m.M12+2*m.M22+3*m.M32+m.M42,
		1*m.M13+2*m.M23+3*m.M33+m.M43,
		1*m.M14+2*m.M24+3*m.M34+m.M44,
	)
	assert.Equal(t, want, v.Transform(m))
	assert.Equal(t, want.Vec3(), v.Vec3().Transform(m))
}

func TestMat4Lerp(t *testing.T) {
	a := Mat4Identity[float64]()
	b := ScaleUniform(3.0)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, ScaleUniform(2.0).M11, a.Lerp(b, 0.5).M11)
}

func TestMat4TransformByQuat(t *testing.T) {
	q := QuatFromAxisAngle(V3d(0, 1, 0), 0.8)
	got := sample.TransformByQuat(q)
	assertMatNear(t, sample.Mul(RotateY(0.8)), got, 1e-12)
}

func TestMat4EqualNaN(t *testing.T) {
	a := Mat4Identity[float32]()
	b := a
	assert.True(t, a.Equal(b))
	assert.False(t, a.HasNaN())

	b.M23 = float32(math.NaN())
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(b))
	assert.True(t, b.HasNaN())
}
