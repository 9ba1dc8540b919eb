// Package math3d provides generic 3D math primitives: vectors, quaternions,
// planes and 4x4 matrices in single and double precision.
//
// Matrices use the row-vector convention: a point is transformed as v' = v*M
// and matrices compose left to right in application order, so
// Scale(s).Mul(FromQuat(q)).Mul(Translate(t)) scales, then rotates, then
// translates. Row 4 (M41, M42, M43) holds the translation of an affine
// matrix.
//
// Every type is parameterised over a float scalar. The Mat4f/Mat4d style
// aliases name the two instantiations most callers want.
package math3d

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint for every type in the package.
type Float interface {
	constraints.Float
}

// Precision aliases.
type (
	Vec2f  = Vec2[float32]
	Vec2d  = Vec2[float64]
	Vec3f  = Vec3[float32]
	Vec3d  = Vec3[float64]
	Vec4f  = Vec4[float32]
	Vec4d  = Vec4[float64]
	Quatf  = Quat[float32]
	Quatd  = Quat[float64]
	Planef = Plane[float32]
	Planed = Plane[float64]
	Mat4f  = Mat4[float32]
	Mat4d  = Mat4[float64]
)

// single reports whether T is a 32-bit float.
func single[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

func sqrt[T Float](x T) T {
	if single[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

func sincos[T Float](x T) (s, c T) {
	if single[T]() {
		s32, c32 := math32.Sincos(float32(x))
		return T(s32), T(c32)
	}
	s64, c64 := math.Sincos(float64(x))
	return T(s64), T(c64)
}

func tan[T Float](x T) T {
	if single[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(math.Tan(float64(x)))
}

func acos[T Float](x T) T {
	if single[T]() {
		return T(math32.Acos(float32(x)))
	}
	return T(math.Acos(float64(x)))
}

func abs[T Float](x T) T {
	if single[T]() {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}

func isNaN[T Float](x T) bool {
	return x != x
}

func isPosInf[T Float](x T) bool {
	return math.IsInf(float64(x), 1)
}

func nan[T Float]() T {
	return T(math.NaN())
}

// pi returns π rounded to T.
func pi[T Float]() T {
	return T(math.Pi)
}

// Epsilon thresholds. Each pair is (float32, float64).
var (
	// Rows shorter than this make Decompose fail.
	decomposeEpsilon = [2]float64{1e-6, 1e-12}
	// View vectors with a squared length below this are degenerate.
	billboardEpsilon = [2]float64{1e-4, 1e-4}
)

func threshold[T Float](pair [2]float64) T {
	if single[T]() {
		return T(pair[0])
	}
	return T(pair[1])
}
