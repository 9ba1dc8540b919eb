package render

import (
	"github.com/taigrr/vecmath/pkg/math3d"
)

// Frustum represents the 6 planes of a view frustum.
// Planes are ordered: Left, Right, Bottom, Top, Near, Far.
// Each plane's normal points inward (toward the center of the frustum).
type Frustum struct {
	Planes [6]math3d.Planed
}

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustumFromMatrix extracts frustum planes from a view-projection matrix
// (Gribb/Hartmann). With row vectors, clip = v*M, so each clip coordinate is
// the dot product with a column of m. Depth runs 0..1, which makes the near
// plane column 3 alone rather than column 4 + column 3.
// The resulting planes are normalized with normals pointing inward.
func NewFrustumFromMatrix(m math3d.Mat4d) Frustum {
	var f Frustum

	c1, c2, c3, c4 := m.Col(0), m.Col(1), m.Col(2), m.Col(3)

	f.Planes[FrustumLeft] = planeFromVec4(c4.Add(c1))
	f.Planes[FrustumRight] = planeFromVec4(c4.Sub(c1))
	f.Planes[FrustumBottom] = planeFromVec4(c4.Add(c2))
	f.Planes[FrustumTop] = planeFromVec4(c4.Sub(c2))
	f.Planes[FrustumNear] = planeFromVec4(c3)
	f.Planes[FrustumFar] = planeFromVec4(c4.Sub(c3))

	return f
}

func planeFromVec4(v math3d.Vec4d) math3d.Planed {
	return math3d.NewPlane(v.X, v.Y, v.Z, v.W).Normalize()
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math3d.Vec3d
	Max math3d.Vec3d
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max math3d.Vec3d) AABB {
	return AABB{Min: min, Max: max}
}

// Center returns the center of the AABB.
func (b AABB) Center() math3d.Vec3d {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() math3d.Vec3d {
	return b.Max.Sub(b.Min)
}

// HalfSize returns half the dimensions (extents from center).
func (b AABB) HalfSize() math3d.Vec3d {
	return b.Size().Scale(0.5)
}

// Corners returns the eight corners of the box, min corner first.
func (b AABB) Corners() [8]math3d.Vec3d {
	return [8]math3d.Vec3d{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// Transform returns an AABB that bounds the original AABB after transformation.
// This computes a new AABB that contains all 8 transformed corners.
func (b AABB) Transform(m math3d.Mat4d) AABB {
	corners := b.Corners()

	newMin := corners[0].Transform(m)
	newMax := newMin
	for _, c := range corners[1:] {
		p := c.Transform(m)
		newMin = newMin.Min(p)
		newMax = newMax.Max(p)
	}

	return AABB{Min: newMin, Max: newMax}
}

// ContainsPoint returns true if the point is inside the AABB.
func (b AABB) ContainsPoint(p math3d.Vec3d) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectAABB tests if the AABB intersects or is inside the frustum.
// Returns true if any part of the AABB is visible.
// Uses the "positive vertex" optimization for faster rejection.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, plane := range f.Planes {
		// The corner furthest along the normal; if even that one is
		// outside, the whole box is.
		pVertex := math3d.V3d(
			selectComponent(plane.Normal.X >= 0, box.Max.X, box.Min.X),
			selectComponent(plane.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			selectComponent(plane.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if plane.DotCoordinate(pVertex) < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB tests if the AABB is completely inside the frustum.
func (f Frustum) ContainsAABB(box AABB) bool {
	for _, plane := range f.Planes {
		nVertex := math3d.V3d(
			selectComponent(plane.Normal.X >= 0, box.Min.X, box.Max.X),
			selectComponent(plane.Normal.Y >= 0, box.Min.Y, box.Max.Y),
			selectComponent(plane.Normal.Z >= 0, box.Min.Z, box.Max.Z),
		)
		if plane.DotCoordinate(nVertex) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f Frustum) ContainsPoint(p math3d.Vec3d) bool {
	for _, plane := range f.Planes {
		if plane.DotCoordinate(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere tests if a sphere intersects the frustum.
func (f Frustum) IntersectsSphere(center math3d.Vec3d, radius float64) bool {
	for _, plane := range f.Planes {
		if plane.DotCoordinate(center) < -radius {
			return false
		}
	}
	return true
}

func selectComponent(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// Frustum returns the current view frustum of the camera.
func (c *Camera) Frustum() (Frustum, error) {
	vp, err := c.ViewProjectionMatrix()
	if err != nil {
		return Frustum{}, err
	}
	return NewFrustumFromMatrix(vp), nil
}
