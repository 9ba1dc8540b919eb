package math3d

// Translate creates a translation matrix.
func Translate[T Float](v Vec3[T]) Mat4[T] {
	return TranslateXYZ(v.X, v.Y, v.Z)
}

// TranslateXYZ creates a translation matrix from its three offsets.
func TranslateXYZ[T Float](x, y, z T) Mat4[T] {
	m := Mat4Identity[T]()
	m.M41, m.M42, m.M43 = x, y, z
	return m
}

// Scale creates a scaling matrix.
func Scale[T Float](v Vec3[T]) Mat4[T] {
	return ScaleXYZ(v.X, v.Y, v.Z)
}

// ScaleXYZ creates a scaling matrix from per-axis factors.
func ScaleXYZ[T Float](x, y, z T) Mat4[T] {
	return Mat4[T]{M11: x, M22: y, M33: z, M44: 1}
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform[T Float](s T) Mat4[T] {
	return ScaleXYZ(s, s, s)
}

// ScaleAround creates a scaling matrix with center as the fixed point.
func ScaleAround[T Float](v, center Vec3[T]) Mat4[T] {
	return around(Scale(v), center)
}

// ScaleUniformAround creates a uniform scaling matrix with center as the
// fixed point.
func ScaleUniformAround[T Float](s T, center Vec3[T]) Mat4[T] {
	return around(ScaleUniform(s), center)
}

// around conjugates m by a translation so that center stays fixed:
// Translate(-center) * m * Translate(center).
func around[T Float](m Mat4[T], center Vec3[T]) Mat4[T] {
	return Translate(center.Negate()).Mul(m).Mul(Translate(center))
}

// RotateX creates a rotation matrix around the X axis.
func RotateX[T Float](angle T) Mat4[T] {
	s, c := sincos(angle)
	return Mat4[T]{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY[T Float](angle T) Mat4[T] {
	s, c := sincos(angle)
	return Mat4[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ[T Float](angle T) Mat4[T] {
	s, c := sincos(angle)
	return Mat4[T]{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateXAround rotates around the X-parallel axis through center.
func RotateXAround[T Float](angle T, center Vec3[T]) Mat4[T] {
	return around(RotateX(angle), center)
}

// RotateYAround rotates around the Y-parallel axis through center.
func RotateYAround[T Float](angle T, center Vec3[T]) Mat4[T] {
	return around(RotateY(angle), center)
}

// RotateZAround rotates around the Z-parallel axis through center.
func RotateZAround[T Float](angle T, center Vec3[T]) Mat4[T] {
	return around(RotateZ(angle), center)
}

// FromAxisAngle creates a rotation of angle radians about axis (Rodrigues'
// formula). The axis must already be normalized; it is used as given.
func FromAxisAngle[T Float](axis Vec3[T], angle T) Mat4[T] {
	x, y, z := axis.X, axis.Y, axis.Z
	sa, ca := sincos(angle)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z

	return Mat4[T]{
		M11: xx + ca*(1-xx),
		M12: xy - ca*xy + sa*z,
		M13: xz - ca*xz - sa*y,

		M21: xy - ca*xy - sa*z,
		M22: yy + ca*(1-yy),
		M23: yz - ca*yz + sa*x,

		M31: xz - ca*xz + sa*y,
		M32: yz - ca*yz - sa*x,
		M33: zz + ca*(1-zz),

		M44: 1,
	}
}

// FromQuat creates a rotation matrix from a unit quaternion.
func FromQuat[T Float](q Quat[T]) Mat4[T] {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, wz, xz := q.X*q.Y, q.Z*q.W, q.Z*q.X
	wy, yz, wx := q.Y*q.W, q.Y*q.Z, q.X*q.W

	return Mat4[T]{
		M11: 1 - 2*(yy+zz),
		M12: 2 * (xy + wz),
		M13: 2 * (xz - wy),

		M21: 2 * (xy - wz),
		M22: 1 - 2*(zz+xx),
		M23: 2 * (yz + wx),

		M31: 2 * (xz + wy),
		M32: 2 * (yz - wx),
		M33: 1 - 2*(yy+xx),

		M44: 1,
	}
}

// FromYawPitchRoll creates a rotation that applies roll about Z, then pitch
// about X, then yaw about Y: RotateZ(roll) * RotateX(pitch) * RotateY(yaw).
func FromYawPitchRoll[T Float](yaw, pitch, roll T) Mat4[T] {
	return FromQuat(QuatFromYawPitchRoll(yaw, pitch, roll))
}
