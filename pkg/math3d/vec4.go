package math3d

import "fmt"

// Vec4 represents a 4D vector (or homogeneous 3D point).
type Vec4[T Float] struct {
	X, Y, Z, W T
}

// V4 creates a new Vec4.
func V4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// V4FromV3 creates a Vec4 from Vec3 with specified W.
func V4FromV3[T Float](v Vec3[T], w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4[T]) Vec3() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns Vec3 after dividing by W.
func (v Vec4[T]) PerspectiveDivide() Vec3[T] {
	if v.W == 0 {
		return Vec3[T]{v.X, v.Y, v.Z}
	}
	return Vec3[T]{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

// Add returns the vector sum.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the scalar product.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4[T]) Dot(b Vec4[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the length.
func (v Vec4[T]) Len() T {
	return sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// Normalize returns the unit vector.
func (v Vec4[T]) Normalize() Vec4[T] {
	l := v.Len()
	if l == 0 {
		return Vec4[T]{}
	}
	return Vec4[T]{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// Lerp returns linear interpolation.
//
//nolint:st1016 // a,b naming convention is clearer for interpolation
func (a Vec4[T]) Lerp(b Vec4[T], t T) Vec4[T] {
	return Vec4[T]{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}

// Transform returns v*m.
func (v Vec4[T]) Transform(m Mat4[T]) Vec4[T] {
	return Vec4[T]{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

// String renders the vector as <X, Y, Z, W>.
func (v Vec4[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", v.X, v.Y, v.Z, v.W)
}
