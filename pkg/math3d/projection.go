package math3d

// LookAt creates a right-handed view matrix for a camera at eye looking
// toward target. The camera looks down its local -Z axis.
//
// When eye == target, or up is parallel to the view direction, the
// degenerate axes normalize to zero: the result is finite but singular,
// never NaN.
func LookAt[T Float](eye, target, up Vec3[T]) Mat4[T] {
	z := eye.Sub(target).Normalize() // Backward
	x := up.Cross(z).Normalize()     // Right
	y := z.Cross(x)                  // Up (recomputed)

	return Mat4[T]{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// World creates a world matrix that places an object at position facing
// forward with the given up. Its Translation is exactly position.
func World[T Float](position, forward, up Vec3[T]) Mat4[T] {
	z := forward.Negate().Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4[T]{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		position.X, position.Y, position.Z, 1,
	}
}

// Orthographic creates a centered orthographic projection mapping depth
// near..far to 0..1. Arguments are not validated.
func Orthographic[T Float](width, height, near, far T) Mat4[T] {
	r := 1 / (near - far)
	return Mat4[T]{
		M11: 2 / width,
		M22: 2 / height,
		M33: r,
		M43: near * r,
		M44: 1,
	}
}

// OrthographicOffCenter creates an orthographic projection for an
// arbitrary view volume. Arguments are not validated.
func OrthographicOffCenter[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	r := 1 / (near - far)
	return Mat4[T]{
		M11: 2 / (right - left),
		M22: 2 / (top - bottom),
		M33: r,
		M41: (left + right) / (left - right),
		M42: (top + bottom) / (bottom - top),
		M43: near * r,
		M44: 1,
	}
}

// depthTerms returns M33 and M43 of a perspective projection. A
// positive-infinite far plane selects the limit form M33 = -1, M43 = -near.
func depthTerms[T Float](near, far T) (m33, m43 T) {
	negFarRange := T(-1)
	if !isPosInf(far) {
		negFarRange = far / (near - far)
	}
	return negFarRange, near * negFarRange
}

// Perspective creates a perspective projection from the view volume size at
// the near plane. Depth near..far maps to 0..1; far may be +Inf.
// It returns an error wrapping ErrOutOfRange when near <= 0, far <= 0 or
// near >= far.
func Perspective[T Float](width, height, near, far T) (Mat4[T], error) {
	if err := checkPlanes(near, far); err != nil {
		return Mat4[T]{}, err
	}

	m33, m43 := depthTerms(near, far)
	return Mat4[T]{
		M11: 2 * near / width,
		M22: 2 * near / height,
		M33: m33,
		M34: -1,
		M43: m43,
	}, nil
}

// PerspectiveFieldOfView creates a perspective projection from a vertical
// field of view in radians and a width/height aspect ratio. Besides the
// plane checks of Perspective, fov must lie strictly between 0 and π.
func PerspectiveFieldOfView[T Float](fov, aspect, near, far T) (Mat4[T], error) {
	if !(fov > 0) || fov >= pi[T]() {
		return Mat4[T]{}, outOfRange("fieldOfView", fov, "in (0, π)")
	}
	if err := checkPlanes(near, far); err != nil {
		return Mat4[T]{}, err
	}

	yScale := 1 / tan(fov*0.5)
	m33, m43 := depthTerms(near, far)
	return Mat4[T]{
		M11: yScale / aspect,
		M22: yScale,
		M33: m33,
		M34: -1,
		M43: m43,
	}, nil
}

// PerspectiveOffCenter creates an off-center perspective projection from
// the view volume bounds at the near plane.
func PerspectiveOffCenter[T Float](left, right, bottom, top, near, far T) (Mat4[T], error) {
	if err := checkPlanes(near, far); err != nil {
		return Mat4[T]{}, err
	}

	m33, m43 := depthTerms(near, far)
	return Mat4[T]{
		M11: 2 * near / (right - left),
		M22: 2 * near / (top - bottom),
		M31: (left + right) / (right - left),
		M32: (top + bottom) / (top - bottom),
		M33: m33,
		M34: -1,
		M43: m43,
	}, nil
}

// MustPerspective is like Perspective but panics on invalid arguments.
func MustPerspective[T Float](width, height, near, far T) Mat4[T] {
	return must[T](Perspective(width, height, near, far))
}

// MustPerspectiveFieldOfView is like PerspectiveFieldOfView but panics on
// invalid arguments.
func MustPerspectiveFieldOfView[T Float](fov, aspect, near, far T) Mat4[T] {
	return must[T](PerspectiveFieldOfView(fov, aspect, near, far))
}

// MustPerspectiveOffCenter is like PerspectiveOffCenter but panics on
// invalid arguments.
func MustPerspectiveOffCenter[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	return must[T](PerspectiveOffCenter(left, right, bottom, top, near, far))
}
