package math3d

// Mat4 is a 4x4 matrix stored row-major in sixteen named fields; Mij is the
// element at row i, column j. Points are row vectors, so a transform matrix
// looks like:
//
//	| Xx Xy Xz 0 |   X,Y,Z = basis vectors (rotation/scale)
//	| Yx Yy Yz 0 |   T = translation
//	| Zx Zy Zz 0 |
//	| Tx Ty Tz 1 |
//
// The fields are contiguous with no padding, so the in-memory layout is the
// same as a column-major column-vector matrix (OpenGL, glTF) and can be
// uploaded as is.
//
// Comparison with == is componentwise IEEE comparison: a matrix holding a
// NaN is not equal to anything, itself included. Use HasNaN to detect it.
type Mat4[T Float] struct {
	M11, M12, M13, M14 T
	M21, M22, M23, M24 T
	M31, M32, M33, M34 T
	M41, M42, M43, M44 T
}

// Mat4Identity returns the identity matrix.
func Mat4Identity[T Float]() Mat4[T] {
	return Mat4[T]{
		M11: 1,
		M22: 1,
		M33: 1,
		M44: 1,
	}
}

// Mat4NaN returns a matrix whose sixteen components are NaN. It is what
// Invert produces for singular input.
func Mat4NaN[T Float]() Mat4[T] {
	n := nan[T]()
	return Mat4[T]{
		n, n, n, n,
		n, n, n, n,
		n, n, n, n,
		n, n, n, n,
	}
}

// Mat4FromArray builds a matrix from sixteen row-major values.
func Mat4FromArray[T Float](a [16]T) Mat4[T] {
	return Mat4[T]{
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	}
}

// Array returns the sixteen components in row-major order.
func (m Mat4[T]) Array() [16]T {
	return [16]T{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// Get returns the element at (row, col), both zero based.
func (m Mat4[T]) Get(row, col int) T {
	return m.Array()[row*4+col]
}

// Set sets the element at (row, col), both zero based.
func (m *Mat4[T]) Set(row, col int, val T) {
	a := m.Array()
	a[row*4+col] = val
	*m = Mat4FromArray(a)
}

// Row returns row i (zero based).
func (m Mat4[T]) Row(i int) Vec4[T] {
	a := m.Array()
	return Vec4[T]{a[i*4], a[i*4+1], a[i*4+2], a[i*4+3]}
}

// Col returns column j (zero based).
func (m Mat4[T]) Col(j int) Vec4[T] {
	a := m.Array()
	return Vec4[T]{a[j], a[4+j], a[8+j], a[12+j]}
}

// IsIdentity reports whether the diagonal is exactly 1 and every other
// element is exactly 0.
func (m Mat4[T]) IsIdentity() bool {
	return m.M11 == 1 && m.M22 == 1 && m.M33 == 1 && m.M44 == 1 &&
		m.M12 == 0 && m.M13 == 0 && m.M14 == 0 &&
		m.M21 == 0 && m.M23 == 0 && m.M24 == 0 &&
		m.M31 == 0 && m.M32 == 0 && m.M34 == 0 &&
		m.M41 == 0 && m.M42 == 0 && m.M43 == 0
}

// HasNaN reports whether any component is NaN.
func (m Mat4[T]) HasNaN() bool {
	for _, v := range m.Array() {
		if isNaN(v) {
			return true
		}
	}
	return false
}

// Equal reports componentwise IEEE equality. It is the same as m == o.
func (m Mat4[T]) Equal(o Mat4[T]) bool {
	return m == o
}

// ApproxEqual reports whether every component differs by at most eps.
func (m Mat4[T]) ApproxEqual(o Mat4[T], eps T) bool {
	a, b := m.Array(), o.Array()
	for i := range a {
		if !(abs(a[i]-b[i]) <= eps) {
			return false
		}
	}
	return true
}

// Translation extracts the translation component (M41, M42, M43).
func (m Mat4[T]) Translation() Vec3[T] {
	return Vec3[T]{m.M41, m.M42, m.M43}
}

// SetTranslation sets the translation component, leaving every other field
// untouched.
func (m *Mat4[T]) SetTranslation(v Vec3[T]) {
	m.M41 = v.X
	m.M42 = v.Y
	m.M43 = v.Z
}

// WithTranslation returns a copy of m with the translation replaced.
func (m Mat4[T]) WithTranslation(v Vec3[T]) Mat4[T] {
	m.SetTranslation(v)
	return m
}

// Transpose returns the transposed matrix.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

// Add returns the componentwise sum.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	return Mat4[T]{
		m.M11 + o.M11, m.M12 + o.M12, m.M13 + o.M13, m.M14 + o.M14,
		m.M21 + o.M21, m.M22 + o.M22, m.M23 + o.M23, m.M24 + o.M24,
		m.M31 + o.M31, m.M32 + o.M32, m.M33 + o.M33, m.M34 + o.M34,
		m.M41 + o.M41, m.M42 + o.M42, m.M43 + o.M43, m.M44 + o.M44,
	}
}

// Sub returns the componentwise difference.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	return Mat4[T]{
		m.M11 - o.M11, m.M12 - o.M12, m.M13 - o.M13, m.M14 - o.M14,
		m.M21 - o.M21, m.M22 - o.M22, m.M23 - o.M23, m.M24 - o.M24,
		m.M31 - o.M31, m.M32 - o.M32, m.M33 - o.M33, m.M34 - o.M34,
		m.M41 - o.M41, m.M42 - o.M42, m.M43 - o.M43, m.M44 - o.M44,
	}
}

// Negate returns -m.
func (m Mat4[T]) Negate() Mat4[T] {
	return Mat4[T]{
		-m.M11, -m.M12, -m.M13, -m.M14,
		-m.M21, -m.M22, -m.M23, -m.M24,
		-m.M31, -m.M32, -m.M33, -m.M34,
		-m.M41, -m.M42, -m.M43, -m.M44,
	}
}

// MulScalar returns m with every component multiplied by s.
func (m Mat4[T]) MulScalar(s T) Mat4[T] {
	return Mat4[T]{
		m.M11 * s, m.M12 * s, m.M13 * s, m.M14 * s,
		m.M21 * s, m.M22 * s, m.M23 * s, m.M24 * s,
		m.M31 * s, m.M32 * s, m.M33 * s, m.M34 * s,
		m.M41 * s, m.M42 * s, m.M43 * s, m.M44 * s,
	}
}

// Mul returns the matrix product a * b. With row vectors this applies a
// first, then b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4[T]) Mul(b Mat4[T]) Mat4[T] {
	return Mat4[T]{
		M11: a.M11*b.M11 + a.M12*b.M21 + a.M13*b.M31 + a.M14*b.M41,
		M12: a.M11*b.M12 + a.M12*b.M22 + a.M13*b.M32 + a.M14*b.M42,
		M13: a.M11*b.M13 + a.M12*b.M23 + a.M13*b.M33 + a.M14*b.M43,
		M14: a.M11*b.M14 + a.M12*b.M24 + a.M13*b.M34 + a.M14*b.M44,

		M21: a.M21*b.M11 + a.M22*b.M21 + a.M23*b.M31 + a.M24*b.M41,
		M22: a.M21*b.M12 + a.M22*b.M22 + a.M23*b.M32 + a.M24*b.M42,
		M23: a.M21*b.M13 + a.M22*b.M23 + a.M23*b.M33 + a.M24*b.M43,
		M24: a.M21*b.M14 + a.M22*b.M24 + a.M23*b.M34 + a.M24*b.M44,

		M31: a.M31*b.M11 + a.M32*b.M21 + a.M33*b.M31 + a.M34*b.M41,
		M32: a.M31*b.M12 + a.M32*b.M22 + a.M33*b.M32 + a.M34*b.M42,
		M33: a.M31*b.M13 + a.M32*b.M23 + a.M33*b.M33 + a.M34*b.M43,
		M34: a.M31*b.M14 + a.M32*b.M24 + a.M33*b.M34 + a.M34*b.M44,

		M41: a.M41*b.M11 + a.M42*b.M21 + a.M43*b.M31 + a.M44*b.M41,
		M42: a.M41*b.M12 + a.M42*b.M22 + a.M43*b.M32 + a.M44*b.M42,
		M43: a.M41*b.M13 + a.M42*b.M23 + a.M43*b.M33 + a.M44*b.M43,
		M44: a.M41*b.M14 + a.M42*b.M24 + a.M43*b.M34 + a.M44*b.M44,
	}
}

// Lerp interpolates each component linearly between a and b.
//
//nolint:st1016 // a,b naming convention is clearer for interpolation
func (a Mat4[T]) Lerp(b Mat4[T], t T) Mat4[T] {
	return a.Add(b.Sub(a).MulScalar(t))
}

// TransformByQuat returns m followed by the rotation q.
func (m Mat4[T]) TransformByQuat(q Quat[T]) Mat4[T] {
	return m.Mul(FromQuat(q))
}

// Determinant returns the determinant of the matrix, expanded along the
// first row with the 2x2 minors of the two bottom rows.
func (m Mat4[T]) Determinant() T {
	a, b, c, d := m.M11, m.M12, m.M13, m.M14
	e, f, g, h := m.M21, m.M22, m.M23, m.M24
	i, j, k, l := m.M31, m.M32, m.M33, m.M34
	mm, n, o, p := m.M41, m.M42, m.M43, m.M44

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*mm
	ioKm := i*o - k*mm
	inJm := i*n - j*mm

	return a*(f*kpLo-g*jpLn+h*joKn) -
		b*(e*kpLo-g*ipLm+h*ioKm) +
		c*(e*jpLn-f*ipLm+h*inJm) -
		d*(e*joKn-f*ioKm+g*inJm)
}

// Invert returns the inverse of m as the adjugate divided by the
// determinant. When the determinant is zero the result is Mat4NaN and ok is
// false; nothing panics.
func (m Mat4[T]) Invert() (inv Mat4[T], ok bool) {
	a, b, c, d := m.M11, m.M12, m.M13, m.M14
	e, f, g, h := m.M21, m.M22, m.M23, m.M24
	i, j, k, l := m.M31, m.M32, m.M33, m.M34
	mm, n, o, p := m.M41, m.M42, m.M43, m.M44

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*mm
	ioKm := i*o - k*mm
	inJm := i*n - j*mm

	a11 := f*kpLo - g*jpLn + h*joKn
	a12 := -(e*kpLo - g*ipLm + h*ioKm)
	a13 := e*jpLn - f*ipLm + h*inJm
	a14 := -(e*joKn - f*ioKm + g*inJm)

	det := a*a11 + b*a12 + c*a13 + d*a14
	if det == 0 {
		return Mat4NaN[T](), false
	}
	invDet := 1 / det

	inv.M11 = a11 * invDet
	inv.M21 = a12 * invDet
	inv.M31 = a13 * invDet
	inv.M41 = a14 * invDet

	inv.M12 = -(b*kpLo - c*jpLn + d*joKn) * invDet
	inv.M22 = (a*kpLo - c*ipLm + d*ioKm) * invDet
	inv.M32 = -(a*jpLn - b*ipLm + d*inJm) * invDet
	inv.M42 = (a*joKn - b*ioKm + c*inJm) * invDet

	gpHo := g*p - h*o
	fpHn := f*p - h*n
	foGn := f*o - g*n
	epHm := e*p - h*mm
	eoGm := e*o - g*mm
	enFm := e*n - f*mm

	inv.M13 = (b*gpHo - c*fpHn + d*foGn) * invDet
	inv.M23 = -(a*gpHo - c*epHm + d*eoGm) * invDet
	inv.M33 = (a*fpHn - b*epHm + d*enFm) * invDet
	inv.M43 = -(a*foGn - b*eoGm + c*enFm) * invDet

	glHk := g*l - h*k
	flHj := f*l - h*j
	fkGj := f*k - g*j
	elHi := e*l - h*i
	ekGi := e*k - g*i
	ejFi := e*j - f*i

	inv.M14 = -(b*glHk - c*flHj + d*fkGj) * invDet
	inv.M24 = (a*glHk - c*elHi + d*ekGi) * invDet
	inv.M34 = -(a*flHj - b*elHi + d*ejFi) * invDet
	inv.M44 = (a*fkGj - b*ekGi + c*ejFi) * invDet

	return inv, true
}

// Inverse returns the inverse of m, or Mat4NaN if m is singular.
func (m Mat4[T]) Inverse() Mat4[T] {
	inv, _ := m.Invert()
	return inv
}
