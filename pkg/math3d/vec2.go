package math3d

import "fmt"

// Vec2 represents a 2D vector, typically texture coordinates.
type Vec2[T Float] struct {
	X, Y T
}

// V2 creates a new Vec2.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Add returns the vector sum.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product.
func (a Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{a.X * s, a.Y * s}
}

// Dot returns the dot product.
func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length.
func (a Vec2[T]) Len() T {
	return sqrt(a.X*a.X + a.Y*a.Y)
}

// Normalize returns the unit vector.
func (a Vec2[T]) Normalize() Vec2[T] {
	l := a.Len()
	if l == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{a.X / l, a.Y / l}
}

// Lerp returns linear interpolation.
func (a Vec2[T]) Lerp(b Vec2[T], t T) Vec2[T] {
	return Vec2[T]{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Transform transforms a as a point in the XY plane (z=0, w=1).
func (a Vec2[T]) Transform(m Mat4[T]) Vec2[T] {
	return Vec2[T]{
		a.X*m.M11 + a.Y*m.M21 + m.M41,
		a.X*m.M12 + a.Y*m.M22 + m.M42,
	}
}

// String renders the vector as <X, Y>.
func (a Vec2[T]) String() string {
	return fmt.Sprintf("<%v, %v>", a.X, a.Y)
}
