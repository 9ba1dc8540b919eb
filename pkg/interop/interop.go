// Package interop converts math3d values to and from the matrix types of
// other Go graphics libraries and to raw GPU upload buffers.
//
// A math3d.Mat4 stores row-vector matrices row by row. Read as sixteen
// consecutive scalars that is exactly the column-major storage of the
// equivalent column-vector matrix, which is what mathgl, OpenGL and glTF
// use. Conversions to those are therefore plain copies; only the row-major
// x/image/math/f32 layout needs a transpose.
package interop

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/f32"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// ToMgl32 converts m to an mgl32.Mat4 describing the same transform.
func ToMgl32(m math3d.Mat4f) mgl32.Mat4 {
	return mgl32.Mat4(m.Array())
}

// FromMgl32 converts an mgl32.Mat4 to a math3d matrix.
func FromMgl32(m mgl32.Mat4) math3d.Mat4f {
	return math3d.Mat4FromArray([16]float32(m))
}

// ToMgl64 converts m to an mgl64.Mat4 describing the same transform.
func ToMgl64(m math3d.Mat4d) mgl64.Mat4 {
	return mgl64.Mat4(m.Array())
}

// FromMgl64 converts an mgl64.Mat4 to a math3d matrix.
func FromMgl64(m mgl64.Mat4) math3d.Mat4d {
	return math3d.Mat4FromArray([16]float64(m))
}

// QuatToMgl32 converts q to mathgl's {W, V} form.
func QuatToMgl32(q math3d.Quatf) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// QuatFromMgl32 converts a mathgl quaternion.
func QuatFromMgl32(q mgl32.Quat) math3d.Quatf {
	return math3d.Quatf{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// QuatToMgl64 converts q to mathgl's {W, V} form.
func QuatToMgl64(q math3d.Quatd) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// QuatFromMgl64 converts a mathgl quaternion.
func QuatFromMgl64(q mgl64.Quat) math3d.Quatd {
	return math3d.Quatd{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// Vec3ToMgl32 converts v.
func Vec3ToMgl32(v math3d.Vec3f) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Vec3FromMgl32 converts v.
func Vec3FromMgl32(v mgl32.Vec3) math3d.Vec3f {
	return math3d.V3f(v[0], v[1], v[2])
}

// ToF32 converts m to the row-major column-vector layout of
// golang.org/x/image/math/f32.
func ToF32(m math3d.Mat4f) f32.Mat4 {
	return f32.Mat4(m.Transpose().Array())
}

// FromF32 converts an x/image matrix.
func FromF32(m f32.Mat4) math3d.Mat4f {
	return math3d.Mat4FromArray([16]float32(m)).Transpose()
}

// FromGLTF converts a glTF node matrix (column-major, column vectors).
func FromGLTF(a [16]float64) math3d.Mat4d {
	return math3d.Mat4FromArray(a)
}

// ToGLTF converts m to a glTF node matrix.
func ToGLTF(m math3d.Mat4d) [16]float64 {
	return m.Array()
}
