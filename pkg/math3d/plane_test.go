package math3d

import (
	"math"
	"testing"
)

func TestPlaneNormalize(t *testing.T) {
	plane := NewPlane(0.0, 3, 4, 10).Normalize()

	if l := plane.Normal.Len(); math.Abs(l-1) > 1e-12 {
		t.Errorf("normal length = %v, want 1", l)
	}
	if math.Abs(plane.Normal.Y-0.6) > 1e-12 || math.Abs(plane.Normal.Z-0.8) > 1e-12 {
		t.Errorf("normal = %v, want <0, 0.6, 0.8>", plane.Normal)
	}
	if math.Abs(plane.D-2) > 1e-12 {
		t.Errorf("D = %v, want 2", plane.D)
	}

	zero := Planed{D: 3}
	if got := zero.Normalize(); got != zero {
		t.Errorf("zero plane normalized to %v", got)
	}
}

func TestPlaneDotCoordinate(t *testing.T) {
	plane := NewPlane(0.0, 0, 1, 0)

	tests := []struct {
		name  string
		point Vec3d
		want  float64
	}{
		{"origin", V3d(0, 0, 0), 0},
		{"in front", V3d(0, 0, 5), 5},
		{"behind", V3d(0, 0, -3), -3},
		{"offset XY", V3d(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := plane.DotCoordinate(tc.point); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPlaneFromVertices(t *testing.T) {
	p := PlaneFromVertices(V3d(0, 2, 0), V3d(1, 2, 0), V3d(0, 2, -1))

	if !p.Normal.ApproxEqual(V3d(0, 1, 0), 1e-12) {
		t.Errorf("normal = %v, want <0, 1, 0>", p.Normal)
	}
	if math.Abs(p.D+2) > 1e-12 {
		t.Errorf("D = %v, want -2", p.D)
	}
	if got := p.Dot(V4(5.0, 2, 7, 1)); math.Abs(got) > 1e-12 {
		t.Errorf("point on plane has Dot = %v", got)
	}
	if got := p.DotNormal(V3d(3, 4, 5)); got != 4 {
		t.Errorf("DotNormal = %v, want 4", got)
	}
}

func TestPlaneTransform(t *testing.T) {
	ground := NewPlane(0.0, 1, 0, 0)

	moved := ground.Transform(Translate(V3d(0, 5, 0)))
	if !moved.Normal.ApproxEqual(V3d(0, 1, 0), 1e-12) || math.Abs(moved.D+5) > 1e-12 {
		t.Errorf("translated plane = %v, want y = 5", moved)
	}

	m := RotateZ(0.7).Mul(Translate(V3d(1, 2, 3)))
	tilted := ground.Transform(m)
	for _, p := range []Vec3d{V3d(0, 0, 0), V3d(4, 0, -1), V3d(-2, 0, 9)} {
		if d := tilted.DotCoordinate(p.Transform(m)); math.Abs(d) > 1e-12 {
			t.Errorf("transformed point %v off plane by %v", p, d)
		}
	}

	if bad := ground.Transform(Mat4d{}); !math.IsNaN(bad.D) {
		t.Errorf("singular transform gave %v, want NaN", bad)
	}
}
