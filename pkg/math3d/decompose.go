package math3d

// Decompose splits an affine matrix built as Scale(s) * FromQuat(q) *
// Translate(t) back into its parts.
//
// It reports false when the upper 3x3 cannot be expressed as scale times
// rotation: a row shorter than the decompose epsilon, or rows that are
// linearly dependent or sheared. On failure rotation is the identity and
// scale and translation hold whatever had been extracted; callers must not
// use them.
//
// A mirrored basis (negative determinant) is returned as a proper rotation
// with one scale component negated. The axis chosen is the one whose
// normalized row has the smallest diagonal element, which recovers the
// sign exactly whenever the rotation is within 90° of the mirrored axis.
func (m Mat4[T]) Decompose() (scale Vec3[T], rotation Quat[T], translation Vec3[T], ok bool) {
	rotation = QuatIdentity[T]()
	translation = m.Translation()

	rows := [3]Vec3[T]{
		{m.M11, m.M12, m.M13},
		{m.M21, m.M22, m.M23},
		{m.M31, m.M32, m.M33},
	}
	scale = Vec3[T]{rows[0].Len(), rows[1].Len(), rows[2].Len()}

	eps := threshold[T](decomposeEpsilon)
	if !(scale.X >= eps && scale.Y >= eps && scale.Z >= eps) {
		return scale, rotation, translation, false
	}

	rows[0] = rows[0].Div(scale.X)
	rows[1] = rows[1].Div(scale.Y)
	rows[2] = rows[2].Div(scale.Z)

	det := rows[0].Dot(rows[1].Cross(rows[2]))
	if !(abs(abs(det)-1) <= 0.01) {
		return scale, rotation, translation, false
	}

	// Gram-Schmidt: keep row 0, strip its component from the others.
	rows[1] = rows[1].Sub(rows[0].Scale(rows[0].Dot(rows[1]))).Normalize()
	rows[2] = rows[2].
		Sub(rows[0].Scale(rows[0].Dot(rows[2]))).
		Sub(rows[1].Scale(rows[1].Dot(rows[2]))).
		Normalize()

	if det < 0 {
		axis := 0
		diag := [3]T{rows[0].X, rows[1].Y, rows[2].Z}
		for i := 1; i < 3; i++ {
			if diag[i] < diag[axis] {
				axis = i
			}
		}
		rows[axis] = rows[axis].Negate()
		switch axis {
		case 0:
			scale.X = -scale.X
		case 1:
			scale.Y = -scale.Y
		default:
			scale.Z = -scale.Z
		}
	}

	basis := Mat4[T]{
		rows[0].X, rows[0].Y, rows[0].Z, 0,
		rows[1].X, rows[1].Y, rows[1].Z, 0,
		rows[2].X, rows[2].Y, rows[2].Z, 0,
		0, 0, 0, 1,
	}
	rotation = QuatFromRotationMatrix(basis).Normalize()

	return scale, rotation, translation, true
}
