package math3d

// A facing candidate is one entry of a billboard fallback table. The first
// candidate whose direction is usable wins.
type candidate[T Float] struct {
	dir    Vec3[T]
	usable func(Vec3[T]) bool
}

// pick returns the first usable candidate direction, or the last one when
// none qualifies.
func pick[T Float](candidates ...candidate[T]) Vec3[T] {
	for _, c := range candidates {
		if c.usable == nil || c.usable(c.dir) {
			return c.dir
		}
	}
	return candidates[len(candidates)-1].dir
}

// billboardMinAngle is cos(0.1°): directions closer than this to the
// rotation axis are treated as parallel to it.
func billboardMinAngle[T Float]() T {
	return 1 - 0.1*(pi[T]()/180)
}

// longEnough reports whether v is far enough from zero to be normalized.
func longEnough[T Float](v Vec3[T]) bool {
	return v.LenSq() >= threshold[T](billboardEpsilon)
}

// notParallel returns a predicate rejecting directions within 0.1° of axis.
func notParallel[T Float](axis Vec3[T]) func(Vec3[T]) bool {
	limit := billboardMinAngle[T]()
	return func(v Vec3[T]) bool {
		return abs(axis.Dot(v)) <= limit
	}
}

// facing returns the unit vector from the camera to the object, or the
// reversed camera forward when the two positions coincide.
func facing[T Float](objectPos, cameraPos, cameraForward Vec3[T]) Vec3[T] {
	return pick(
		candidate[T]{dir: objectPos.Sub(cameraPos), usable: longEnough[T]},
		candidate[T]{dir: cameraForward.Negate()},
	).Normalize()
}

// Billboard creates a world matrix that rotates an object at objectPos to
// face a camera at cameraPos.
//
// Facing direction, in order of preference:
//
//  1. objectPos - cameraPos, when its squared length is at least 1e-4;
//  2. -cameraForward.
//
// If the facing direction is parallel to cameraUp the right vector is
// rebuilt from world Z, then world X, so the basis never degenerates.
func Billboard[T Float](objectPos, cameraPos, cameraUp, cameraForward Vec3[T]) Mat4[T] {
	z := facing(objectPos, cameraPos, cameraForward)

	x := pick(
		candidate[T]{dir: cameraUp.Cross(z), usable: longEnough[T]},
		candidate[T]{dir: UnitZ[T]().Cross(z), usable: longEnough[T]},
		candidate[T]{dir: UnitX[T]().Cross(z)},
	).Normalize()
	y := z.Cross(x)

	return Mat4[T]{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		objectPos.X, objectPos.Y, objectPos.Z, 1,
	}
}

// ConstrainedBillboard creates a world matrix that rotates an object at
// objectPos about rotateAxis only, turning it as far toward the camera as
// the constraint allows. rotateAxis must be normalized and becomes the
// object's Y axis.
//
// Facing direction, in order of preference, skipping any within 0.1° of
// rotateAxis:
//
//  1. the camera-to-object direction (or -cameraForward if they coincide);
//  2. objectForward;
//  3. world -Z;
//  4. world +X.
//
// Only the part of the view direction perpendicular to rotateAxis matters,
// so sliding the camera along the axis leaves the result unchanged.
func ConstrainedBillboard[T Float](objectPos, cameraPos, rotateAxis, cameraForward, objectForward Vec3[T]) Mat4[T] {
	usable := notParallel(rotateAxis)
	z := pick(
		candidate[T]{dir: facing(objectPos, cameraPos, cameraForward), usable: usable},
		candidate[T]{dir: objectForward, usable: usable},
		candidate[T]{dir: Vec3[T]{0, 0, -1}, usable: usable},
		candidate[T]{dir: UnitX[T]()},
	)

	y := rotateAxis
	x := rotateAxis.Cross(z).Normalize()
	z = x.Cross(y).Normalize()

	return Mat4[T]{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		objectPos.X, objectPos.Y, objectPos.Z, 1,
	}
}
