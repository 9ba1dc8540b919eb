package math3d

// Shadow creates a matrix that flattens geometry onto plane along
// lightDir. The plane is normalized first. Transformed points carry
// W = Normal·lightDir, so callers divide by W (Vec3.Project does).
//
// The result is undefined when lightDir is parallel to the plane.
func Shadow[T Float](lightDir Vec3[T], plane Plane[T]) Mat4[T] {
	p := plane.Normalize()
	dot := p.Normal.Dot(lightDir)
	a, b, c, d := -p.Normal.X, -p.Normal.Y, -p.Normal.Z, -p.D
	l := lightDir

	return Mat4[T]{
		M11: a*l.X + dot,
		M12: a * l.Y,
		M13: a * l.Z,

		M21: b * l.X,
		M22: b*l.Y + dot,
		M23: b * l.Z,

		M31: c * l.X,
		M32: c * l.Y,
		M33: c*l.Z + dot,

		M41: d * l.X,
		M42: d * l.Y,
		M43: d * l.Z,
		M44: dot,
	}
}

// Reflection creates a matrix that mirrors geometry through plane. The
// plane is normalized first.
func Reflection[T Float](plane Plane[T]) Mat4[T] {
	p := plane.Normalize()
	a, b, c, d := p.Normal.X, p.Normal.Y, p.Normal.Z, p.D
	fa, fb, fc := -2*a, -2*b, -2*c

	return Mat4[T]{
		M11: fa*a + 1,
		M12: fb * a,
		M13: fc * a,

		M21: fa * b,
		M22: fb*b + 1,
		M23: fc * b,

		M31: fa * c,
		M32: fb * c,
		M33: fc*c + 1,

		M41: fa * d,
		M42: fb * d,
		M43: fc * d,
		M44: 1,
	}
}
