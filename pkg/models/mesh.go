// Package models loads and holds triangle meshes positioned with math3d
// transforms.
package models

import (
	"github.com/taigrr/vecmath/pkg/math3d"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3d
	BoundsMax math3d.Vec3d
}

// Vertex holds per-vertex attributes.
type Vertex struct {
	Position math3d.Vec3d
	Normal   math3d.Vec3d
}

// Face is a triangle given by three indices into Mesh.Vertices,
// counter-clockwise when seen from the front.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]Vertex, 0),
		Faces:    make([]Face, 0),
	}
}

// NewCube creates a cube with the given edge length centered on the origin,
// with flat normals.
func NewCube(size float64) *Mesh {
	h := size / 2
	m := NewMesh("cube")

	quads := [6][4]math3d.Vec3d{
		{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}},     // +Z
		{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}}, // -Z
		{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}},     // +X
		{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}}, // -X
		{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}},     // +Y
		{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}}, // -Y
	}
	for _, q := range quads {
		base := len(m.Vertices)
		for _, p := range q {
			m.Vertices = append(m.Vertices, Vertex{Position: p})
		}
		m.Faces = append(m.Faces,
			Face{V: [3]int{base, base + 1, base + 2}},
			Face{V: [3]int{base, base + 2, base + 3}},
		)
	}

	m.CalculateNormals()
	m.CalculateBounds()
	return m
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3d {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3d {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Triangle returns the corner positions of face i.
func (m *Mesh) Triangle(i int) (a, b, c math3d.Vec3d) {
	f := m.Faces[i].V
	return m.Vertices[f[0]].Position, m.Vertices[f[1]].Position, m.Vertices[f[2]].Position
}

// faceNormal returns the unnormalized normal of face f; its length is twice
// the triangle area.
func (m *Mesh) faceNormal(f Face) math3d.Vec3d {
	a, b, c := m.Vertices[f.V[0]].Position, m.Vertices[f.V[1]].Position, m.Vertices[f.V[2]].Position
	return b.Sub(a).Cross(c.Sub(a))
}

// CalculateNormals assigns each face's normal to its vertices (flat
// shading). Vertices shared between faces keep the last face's normal.
func (m *Mesh) CalculateNormals() {
	for _, f := range m.Faces {
		n := m.faceNormal(f).Normalize()
		for _, vi := range f.V {
			m.Vertices[vi].Normal = n
		}
	}
}

// CalculateSmoothNormals computes area-weighted averaged vertex normals.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3[float64]()
	}

	for _, f := range m.Faces {
		n := m.faceNormal(f) // area weighted
		for _, vi := range f.V {
			m.Vertices[vi].Normal = m.Vertices[vi].Normal.Add(n)
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// HasNormals reports whether any vertex carries a usable normal.
func (m *Mesh) HasNormals() bool {
	for _, v := range m.Vertices {
		if v.Normal.LenSq() > 1e-6 {
			return true
		}
	}
	return false
}

// Transform applies mat to every vertex. Normals go through the inverse
// transpose so they stay perpendicular under non-uniform scale; a mirroring
// transform also flips the winding so faces keep pointing outward.
func (m *Mesh) Transform(mat math3d.Mat4d) {
	normalMat := normalMatrix(mat)
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = v.Position.Transform(mat)
		v.Normal = v.Normal.TransformNormal(normalMat).Normalize()
	}

	if mat.Determinant() < 0 {
		for i := range m.Faces {
			f := &m.Faces[i]
			f.V[1], f.V[2] = f.V[2], f.V[1]
		}
	}
	m.CalculateBounds()
}

// normalMatrix returns the inverse transpose of mat, or mat itself when it
// cannot be inverted.
func normalMatrix(mat math3d.Mat4d) math3d.Mat4d {
	inv, ok := mat.Invert()
	if !ok {
		return mat
	}
	return inv.Transpose()
}

// Append adds the geometry of o to m, placed by mat.
func (m *Mesh) Append(o *Mesh, mat math3d.Mat4d) {
	placed := o.Clone()
	placed.Transform(mat)

	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, placed.Vertices...)
	for _, f := range placed.Faces {
		m.Faces = append(m.Faces, Face{V: [3]int{base + f.V[0], base + f.V[1], base + f.V[2]}})
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]Vertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Bounds returns the axis-aligned bounding box.
func (m *Mesh) Bounds() (min, max math3d.Vec3d) {
	return m.BoundsMin, m.BoundsMax
}
