package math3d

import "fmt"

// Vec3 represents a 3D vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

// V3 creates a new Vec3.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// V3d creates a double precision Vec3.
func V3d(x, y, z float64) Vec3d {
	return Vec3d{x, y, z}
}

// V3f creates a single precision Vec3.
func V3f(x, y, z float32) Vec3f {
	return Vec3f{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3[T Float]() Vec3[T] {
	return Vec3[T]{}
}

// One3 returns (1, 1, 1).
func One3[T Float]() Vec3[T] {
	return Vec3[T]{1, 1, 1}
}

// UnitX returns (1, 0, 0).
func UnitX[T Float]() Vec3[T] {
	return Vec3[T]{1, 0, 0}
}

// UnitY returns (0, 1, 0), the world up vector.
func UnitY[T Float]() Vec3[T] {
	return Vec3[T]{0, 1, 0}
}

// UnitZ returns (0, 0, 1).
func UnitZ[T Float]() Vec3[T] {
	return Vec3[T]{0, 0, 1}
}

// Add returns the vector sum a + b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
func (a Vec3[T]) Div(s T) Vec3[T] {
	return Vec3[T]{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a · b.
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3[T]) Len() T {
	return sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3[T]) LenSq() T {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns the unit vector in the same direction.
func (a Vec3[T]) Normalize() Vec3[T] {
	l := a.Len()
	if l == 0 {
		return Vec3[T]{}
	}
	return Vec3[T]{a.X / l, a.Y / l, a.Z / l}
}

// Negate returns the negated vector.
func (a Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-a.X, -a.Y, -a.Z}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3[T]) Lerp(b Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Distance returns the distance between two points.
func (a Vec3[T]) Distance(b Vec3[T]) T {
	return a.Sub(b).Len()
}

// Reflect returns the reflection of a around normal n.
func (a Vec3[T]) Reflect(n Vec3[T]) Vec3[T] {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Min returns the component-wise minimum.
func (a Vec3[T]) Min(b Vec3[T]) Vec3[T] {
	return Vec3[T]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vec3[T]) Max(b Vec3[T]) Vec3[T] {
	return Vec3[T]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// Abs returns the component-wise absolute value.
func (a Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{abs(a.X), abs(a.Y), abs(a.Z)}
}

// Transform transforms a as a point (w=1) by m. No perspective divide is
// applied; use Project for that.
func (a Vec3[T]) Transform(m Mat4[T]) Vec3[T] {
	return Vec3[T]{
		a.X*m.M11 + a.Y*m.M21 + a.Z*m.M31 + m.M41,
		a.X*m.M12 + a.Y*m.M22 + a.Z*m.M32 + m.M42,
		a.X*m.M13 + a.Y*m.M23 + a.Z*m.M33 + m.M43,
	}
}

// TransformNormal transforms a as a direction (w=0, no translation).
func (a Vec3[T]) TransformNormal(m Mat4[T]) Vec3[T] {
	return Vec3[T]{
		a.X*m.M11 + a.Y*m.M21 + a.Z*m.M31,
		a.X*m.M12 + a.Y*m.M22 + a.Z*m.M32,
		a.X*m.M13 + a.Y*m.M23 + a.Z*m.M33,
	}
}

// Project transforms a as a point and divides by the resulting w.
// A zero w is treated as 1.
func (a Vec3[T]) Project(m Mat4[T]) Vec3[T] {
	w := a.X*m.M14 + a.Y*m.M24 + a.Z*m.M34 + m.M44
	if w == 0 {
		w = 1
	}
	return a.Transform(m).Div(w)
}

// Rotate rotates a by the quaternion q.
func (a Vec3[T]) Rotate(q Quat[T]) Vec3[T] {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z

	wx2, wy2, wz2 := q.W*x2, q.W*y2, q.W*z2
	xx2, xy2, xz2 := q.X*x2, q.X*y2, q.X*z2
	yy2, yz2, zz2 := q.Y*y2, q.Y*z2, q.Z*z2

	return Vec3[T]{
		a.X*(1-yy2-zz2) + a.Y*(xy2-wz2) + a.Z*(xz2+wy2),
		a.X*(xy2+wz2) + a.Y*(1-xx2-zz2) + a.Z*(yz2-wx2),
		a.X*(xz2-wy2) + a.Y*(yz2+wx2) + a.Z*(1-xx2-yy2),
	}
}

// ApproxEqual reports whether every component differs by at most eps.
func (a Vec3[T]) ApproxEqual(b Vec3[T], eps T) bool {
	return abs(a.X-b.X) <= eps && abs(a.Y-b.Y) <= eps && abs(a.Z-b.Z) <= eps
}

// String renders the vector as <X, Y, Z>.
func (a Vec3[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v>", a.X, a.Y, a.Z)
}
