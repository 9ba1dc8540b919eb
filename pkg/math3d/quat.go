package math3d

import "fmt"

// Quat is a rotation quaternion with vector part (X, Y, Z) and scalar W.
type Quat[T Float] struct {
	X, Y, Z, W T
}

// QuatIdentity returns the quaternion that represents no rotation.
func QuatIdentity[T Float]() Quat[T] {
	return Quat[T]{0, 0, 0, 1}
}

// QuatFromAxisAngle creates a quaternion rotating angle radians about axis.
// The axis is expected to be normalized.
func QuatFromAxisAngle[T Float](axis Vec3[T], angle T) Quat[T] {
	s, c := sincos(angle * 0.5)
	return Quat[T]{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuatFromYawPitchRoll creates a quaternion from yaw (about Y), pitch
// (about X) and roll (about Z). Roll is applied first, then pitch, then yaw.
func QuatFromYawPitchRoll[T Float](yaw, pitch, roll T) Quat[T] {
	sr, cr := sincos(roll * 0.5)
	sp, cp := sincos(pitch * 0.5)
	sy, cy := sincos(yaw * 0.5)

	return Quat[T]{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// QuatFromRotationMatrix extracts the rotation of the upper-left 3x3 of m,
// which must be orthonormal. The branch is picked by the trace and the
// largest diagonal element so the divisor never approaches zero.
func QuatFromRotationMatrix[T Float](m Mat4[T]) Quat[T] {
	var q Quat[T]
	trace := m.M11 + m.M22 + m.M33

	switch {
	case trace > 0:
		s := sqrt(trace + 1)
		q.W = s * 0.5
		s = 0.5 / s
		q.X = (m.M23 - m.M32) * s
		q.Y = (m.M31 - m.M13) * s
		q.Z = (m.M12 - m.M21) * s
	case m.M11 >= m.M22 && m.M11 >= m.M33:
		s := sqrt(1 + m.M11 - m.M22 - m.M33)
		inv := 0.5 / s
		q.X = 0.5 * s
		q.Y = (m.M12 + m.M21) * inv
		q.Z = (m.M13 + m.M31) * inv
		q.W = (m.M23 - m.M32) * inv
	case m.M22 > m.M33:
		s := sqrt(1 + m.M22 - m.M11 - m.M33)
		inv := 0.5 / s
		q.X = (m.M21 + m.M12) * inv
		q.Y = 0.5 * s
		q.Z = (m.M32 + m.M23) * inv
		q.W = (m.M31 - m.M13) * inv
	default:
		s := sqrt(1 + m.M33 - m.M11 - m.M22)
		inv := 0.5 / s
		q.X = (m.M31 + m.M13) * inv
		q.Y = (m.M32 + m.M23) * inv
		q.Z = 0.5 * s
		q.W = (m.M12 - m.M21) * inv
	}

	return q
}

// IsIdentity reports whether q is exactly (0, 0, 0, 1).
func (q Quat[T]) IsIdentity() bool {
	return q == QuatIdentity[T]()
}

// Len returns the quaternion norm.
func (q Quat[T]) Len() T {
	return sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns q scaled to unit length.
func (q Quat[T]) Normalize() Quat[T] {
	inv := 1 / q.Len()
	return Quat[T]{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Conjugate returns (-X, -Y, -Z, W).
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the multiplicative inverse of q.
func (q Quat[T]) Inverse() Quat[T] {
	inv := 1 / (q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	return Quat[T]{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

// Negate returns -q, which represents the same rotation.
func (q Quat[T]) Negate() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, -q.W}
}

// Dot returns the four-component dot product.
func (q Quat[T]) Dot(o Quat[T]) T {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Mul returns the Hamilton product q*o, which applies o first, then q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	cx := q.Y*o.Z - q.Z*o.Y
	cy := q.Z*o.X - q.X*o.Z
	cz := q.X*o.Y - q.Y*o.X
	dot := q.X*o.X + q.Y*o.Y + q.Z*o.Z

	return Quat[T]{
		X: q.X*o.W + o.X*q.W + cx,
		Y: q.Y*o.W + o.Y*q.W + cy,
		Z: q.Z*o.W + o.Z*q.W + cz,
		W: q.W*o.W - dot,
	}
}

// Concat returns the rotation that applies q, then o.
func (q Quat[T]) Concat(o Quat[T]) Quat[T] {
	return o.Mul(q)
}

// Lerp interpolates linearly along the shorter arc and renormalizes.
func (q Quat[T]) Lerp(o Quat[T], t T) Quat[T] {
	if q.Dot(o) < 0 {
		o = o.Negate()
	}
	r := Quat[T]{
		q.X + (o.X-q.X)*t,
		q.Y + (o.Y-q.Y)*t,
		q.Z + (o.Z-q.Z)*t,
		q.W + (o.W-q.W)*t,
	}
	return r.Normalize()
}

// Slerp interpolates spherically along the shorter arc.
func (q Quat[T]) Slerp(o Quat[T], t T) Quat[T] {
	cos := q.Dot(o)
	if cos < 0 {
		cos = -cos
		o = o.Negate()
	}

	var s1, s2 T
	if cos > 1-1e-6 {
		// Nearly parallel: fall back to linear weights.
		s1, s2 = 1-t, t
	} else {
		omega := acos(cos)
		sinOmega, _ := sincos(omega)
		inv := 1 / sinOmega
		a, _ := sincos((1 - t) * omega)
		b, _ := sincos(t * omega)
		s1, s2 = a*inv, b*inv
	}

	return Quat[T]{
		q.X*s1 + o.X*s2,
		q.Y*s1 + o.Y*s2,
		q.Z*s1 + o.Z*s2,
		q.W*s1 + o.W*s2,
	}
}

// EqualRotation reports whether q and o describe the same rotation within
// eps, treating q and -q as equal.
func (q Quat[T]) EqualRotation(o Quat[T], eps T) bool {
	return q.approxEqual(o, eps) || q.approxEqual(o.Negate(), eps)
}

func (q Quat[T]) approxEqual(o Quat[T], eps T) bool {
	return abs(q.X-o.X) <= eps && abs(q.Y-o.Y) <= eps &&
		abs(q.Z-o.Z) <= eps && abs(q.W-o.W) <= eps
}

// String renders the quaternion as {X:x Y:y Z:z W:w}.
func (q Quat[T]) String() string {
	return fmt.Sprintf("{X:%v Y:%v Z:%v W:%v}", q.X, q.Y, q.Z, q.W)
}
