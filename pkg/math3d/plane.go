package math3d

import "fmt"

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal and D is the distance from origin along it.
type Plane[T Float] struct {
	Normal Vec3[T]
	D      T
}

// NewPlane creates a plane from its equation coefficients.
func NewPlane[T Float](a, b, c, d T) Plane[T] {
	return Plane[T]{Normal: Vec3[T]{a, b, c}, D: d}
}

// PlaneFromVertices creates the plane through three points. The normal
// follows the winding p1 -> p2 -> p3.
func PlaneFromVertices[T Float](p1, p2, p3 Vec3[T]) Plane[T] {
	n := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
	return Plane[T]{Normal: n, D: -n.Dot(p1)}
}

// Normalize scales the plane equation so the normal has unit length.
func (p Plane[T]) Normalize() Plane[T] {
	l := p.Normal.Len()
	if l == 0 {
		return p
	}
	return Plane[T]{Normal: p.Normal.Div(l), D: p.D / l}
}

// DotCoordinate returns Normal·point + D, the signed distance from the
// plane when the normal is unit length. Positive values are on the side the
// normal points to.
func (p Plane[T]) DotCoordinate(point Vec3[T]) T {
	return p.Normal.Dot(point) + p.D
}

// DotNormal returns Normal·v, ignoring D.
func (p Plane[T]) DotNormal(v Vec3[T]) T {
	return p.Normal.Dot(v)
}

// Dot returns the four-component dot product with the plane coefficients.
func (p Plane[T]) Dot(v Vec4[T]) T {
	return p.Normal.X*v.X + p.Normal.Y*v.Y + p.Normal.Z*v.Z + p.D*v.W
}

// Transform returns the plane transformed by m. Plane coefficients are
// covariant, so they are multiplied by the inverse transpose of m. A
// singular m yields a plane with NaN coefficients.
func (p Plane[T]) Transform(m Mat4[T]) Plane[T] {
	inv, _ := m.Invert()
	x, y, z, w := p.Normal.X, p.Normal.Y, p.Normal.Z, p.D

	return Plane[T]{
		Normal: Vec3[T]{
			x*inv.M11 + y*inv.M12 + z*inv.M13 + w*inv.M14,
			x*inv.M21 + y*inv.M22 + z*inv.M23 + w*inv.M24,
			x*inv.M31 + y*inv.M32 + z*inv.M33 + w*inv.M34,
		},
		D: x*inv.M41 + y*inv.M42 + z*inv.M43 + w*inv.M44,
	}
}

// String renders the plane as {Normal:<a, b, c> D:d}.
func (p Plane[T]) String() string {
	return fmt.Sprintf("{Normal:%v D:%v}", p.Normal, p.D)
}
