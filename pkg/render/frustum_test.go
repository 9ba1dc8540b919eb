package render

import (
	"math"
	"testing"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// lookingDownZ is a camera at the origin looking down -Z.
func lookingDownZ(aspect, near, far float64) Frustum {
	proj := math3d.MustPerspectiveFieldOfView(math.Pi/3, aspect, near, far)
	view := math3d.Mat4Identity[float64]()
	return NewFrustumFromMatrix(view.Mul(proj))
}

func TestAABBBasics(t *testing.T) {
	box := NewAABB(math3d.V3d(-1, -2, -3), math3d.V3d(1, 2, 3))

	center := box.Center()
	if center.X != 0 || center.Y != 0 || center.Z != 0 {
		t.Errorf("center = %v, want (0, 0, 0)", center)
	}

	size := box.Size()
	if size.X != 2 || size.Y != 4 || size.Z != 6 {
		t.Errorf("size = %v, want (2, 4, 6)", size)
	}

	halfSize := box.HalfSize()
	if halfSize.X != 1 || halfSize.Y != 2 || halfSize.Z != 3 {
		t.Errorf("halfSize = %v, want (1, 2, 3)", halfSize)
	}

	corners := box.Corners()
	if corners[0] != box.Min || corners[7] != box.Max {
		t.Errorf("corners = %v, want min first and max last", corners)
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := NewAABB(math3d.V3d(0, 0, 0), math3d.V3d(10, 10, 10))

	tests := []struct {
		name     string
		point    math3d.Vec3d
		expected bool
	}{
		{"center", math3d.V3d(5, 5, 5), true},
		{"corner min", math3d.V3d(0, 0, 0), true},
		{"corner max", math3d.V3d(10, 10, 10), true},
		{"edge", math3d.V3d(5, 0, 5), true},
		{"outside X", math3d.V3d(11, 5, 5), false},
		{"outside Y", math3d.V3d(5, -1, 5), false},
		{"outside Z", math3d.V3d(5, 5, 15), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := box.ContainsPoint(tc.point)
			if result != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, result, tc.expected)
			}
		})
	}
}

func TestAABBTransform(t *testing.T) {
	box := NewAABB(math3d.V3d(-1, -1, -1), math3d.V3d(1, 1, 1))

	t.Run("translation", func(t *testing.T) {
		transformed := box.Transform(math3d.Translate(math3d.V3d(10, 20, 30)))

		if transformed.Min != math3d.V3d(9, 19, 29) {
			t.Errorf("translated min = %v, want (9, 19, 29)", transformed.Min)
		}
		if transformed.Max != math3d.V3d(11, 21, 31) {
			t.Errorf("translated max = %v, want (11, 21, 31)", transformed.Max)
		}
	})

	t.Run("scale", func(t *testing.T) {
		transformed := box.Transform(math3d.ScaleUniform(2.0))

		if transformed.Min != math3d.V3d(-2, -2, -2) {
			t.Errorf("scaled min = %v, want (-2, -2, -2)", transformed.Min)
		}
		if transformed.Max != math3d.V3d(2, 2, 2) {
			t.Errorf("scaled max = %v, want (2, 2, 2)", transformed.Max)
		}
	})

	t.Run("rotation grows bounds", func(t *testing.T) {
		transformed := box.Transform(math3d.RotateY(math.Pi / 4))
		want := math.Sqrt2
		if math.Abs(transformed.Max.X-want) > 1e-12 || math.Abs(transformed.Min.Z+want) > 1e-12 {
			t.Errorf("rotated bounds = %v, want half-width %v in X and Z", transformed, want)
		}
		if transformed.Max.Y != 1 {
			t.Errorf("rotated max Y = %v, want 1", transformed.Max.Y)
		}
	})
}

func TestFrustumPlanesNormalized(t *testing.T) {
	frustum := lookingDownZ(16.0/9.0, 0.1, 100)

	for i, plane := range frustum.Planes {
		length := plane.Normal.Len()
		if math.Abs(length-1.0) > 1e-9 {
			t.Errorf("plane %d normal length = %v, want 1.0", i, length)
		}
	}

	near := frustum.Planes[FrustumNear]
	if !near.Normal.ApproxEqual(math3d.V3d(0, 0, -1), 1e-12) || math.Abs(near.D+0.1) > 1e-12 {
		t.Errorf("near plane = %v, want z = -0.1 facing -Z", near)
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	frustum := lookingDownZ(16.0/9.0, 0.1, 100)

	tests := []struct {
		name     string
		point    math3d.Vec3d
		expected bool
	}{
		{"center near", math3d.V3d(0, 0, -1), true},
		{"center mid", math3d.V3d(0, 0, -50), true},
		{"center far", math3d.V3d(0, 0, -99), true},
		{"behind camera", math3d.V3d(0, 0, 1), false},
		{"too far", math3d.V3d(0, 0, -200), false},
		{"too close", math3d.V3d(0, 0, -0.01), false},
		{"left of view", math3d.V3d(-50, 0, -10), false},
		{"above view", math3d.V3d(0, 50, -10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := frustum.ContainsPoint(tc.point)
			if result != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, result, tc.expected)
			}
		})
	}
}

func TestFrustumInfiniteFar(t *testing.T) {
	frustum := lookingDownZ(1, 1, math.Inf(1))

	if !frustum.ContainsPoint(math3d.V3d(0, 0, -1e9)) {
		t.Error("distant point should be inside a frustum without far plane")
	}
	if frustum.ContainsPoint(math3d.V3d(0, 0, -0.5)) {
		t.Error("point before the near plane should be outside")
	}
}

func TestFrustumIntersectAABB(t *testing.T) {
	frustum := lookingDownZ(16.0/9.0, 1, 100)

	tests := []struct {
		name     string
		box      AABB
		expected bool
	}{
		{
			"fully inside",
			NewAABB(math3d.V3d(-1, -1, -10), math3d.V3d(1, 1, -5)),
			true,
		},
		{
			"partially visible",
			NewAABB(math3d.V3d(-1, -1, -2), math3d.V3d(1, 1, 2)), // crosses the near plane
			true,
		},
		{
			"behind camera",
			NewAABB(math3d.V3d(-1, -1, 5), math3d.V3d(1, 1, 10)),
			false,
		},
		{
			"beyond far plane",
			NewAABB(math3d.V3d(-1, -1, -150), math3d.V3d(1, 1, -120)),
			false,
		},
		{
			"far to the right",
			NewAABB(math3d.V3d(100, -1, -10), math3d.V3d(110, 1, -5)),
			false,
		},
		{
			"large box containing frustum",
			NewAABB(math3d.V3d(-200, -200, -200), math3d.V3d(200, 200, 200)),
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := frustum.IntersectAABB(tc.box)
			if result != tc.expected {
				t.Errorf("IntersectAABB(%v) = %v, want %v", tc.box, result, tc.expected)
			}
		})
	}
}

func TestFrustumContainsAABB(t *testing.T) {
	frustum := lookingDownZ(1, 1, 100)

	inside := NewAABB(math3d.V3d(-1, -1, -10), math3d.V3d(1, 1, -5))
	if !frustum.ContainsAABB(inside) {
		t.Errorf("ContainsAABB(%v) = false, want true", inside)
	}

	straddling := NewAABB(math3d.V3d(-1, -1, -2), math3d.V3d(1, 1, 2))
	if frustum.ContainsAABB(straddling) {
		t.Errorf("ContainsAABB(%v) = true, want false", straddling)
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	frustum := lookingDownZ(16.0/9.0, 1, 100)

	tests := []struct {
		name     string
		center   math3d.Vec3d
		radius   float64
		expected bool
	}{
		{"inside", math3d.V3d(0, 0, -10), 1.0, true},
		{"partially visible", math3d.V3d(0, 0, -0.5), 1.0, true}, // near the near plane
		{"behind", math3d.V3d(0, 0, 5), 1.0, false},
		{"far behind", math3d.V3d(0, 0, 20), 1.0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := frustum.IntersectsSphere(tc.center, tc.radius)
			if result != tc.expected {
				t.Errorf("IntersectsSphere(%v, %v) = %v, want %v", tc.center, tc.radius, result, tc.expected)
			}
		})
	}
}

func TestFrustumWithRotatedCamera(t *testing.T) {
	proj := math3d.MustPerspectiveFieldOfView(math.Pi/3, 1.0, 1.0, 100.0)
	view := math3d.LookAt(math3d.V3d(0, 0, 0), math3d.V3d(10, 0, 0), math3d.V3d(0, 1, 0))
	frustum := NewFrustumFromMatrix(view.Mul(proj))

	if !frustum.ContainsPoint(math3d.V3d(10, 0, 0)) {
		t.Error("point in front of rotated camera should be visible")
	}
	if frustum.ContainsPoint(math3d.V3d(-10, 0, 0)) {
		t.Error("point behind rotated camera should not be visible")
	}
}

func TestCameraFrustumMatchesMatrix(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(math3d.V3d(0, 10, 20))
	cam.LookAt(math3d.V3d(0, 0, 0))

	f, err := cam.Frustum()
	if err != nil {
		t.Fatalf("Frustum: %v", err)
	}
	vp, err := cam.ViewProjectionMatrix()
	if err != nil {
		t.Fatalf("ViewProjectionMatrix: %v", err)
	}
	if f != NewFrustumFromMatrix(vp) {
		t.Error("camera frustum differs from frustum of its view-projection matrix")
	}
	if !f.ContainsPoint(math3d.V3d(0, 0, 0)) {
		t.Error("look-at target should be inside the frustum")
	}

	cam.SetClipPlanes(0, 10)
	if _, err := cam.Frustum(); err == nil {
		t.Error("Frustum with zero near plane should fail")
	}
}
