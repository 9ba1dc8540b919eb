package models

import (
	"math"
	"testing"

	"github.com/taigrr/vecmath/pkg/math3d"
)

func TestNewCube(t *testing.T) {
	cube := NewCube(2)

	if cube.TriangleCount() != 12 || cube.VertexCount() != 24 {
		t.Fatalf("cube has %d triangles and %d vertices, want 12 and 24", cube.TriangleCount(), cube.VertexCount())
	}
	if cube.Center() != math3d.Zero3[float64]() {
		t.Errorf("center = %v, want origin", cube.Center())
	}
	if cube.Size() != math3d.V3d(2, 2, 2) {
		t.Errorf("size = %v, want (2, 2, 2)", cube.Size())
	}

	// Every face points away from the center.
	for i := range cube.TriangleCount() {
		a, b, c := cube.Triangle(i)
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Dot(a) <= 0 {
			t.Errorf("face %d points inward", i)
		}
	}
}

func TestMeshTransformNormals(t *testing.T) {
	// A slanted quad: under non-uniform scale the normal must follow the
	// inverse transpose, not the matrix itself.
	m := NewMesh("slope")
	m.Vertices = []Vertex{
		{Position: math3d.V3d(0, 0, 0)},
		{Position: math3d.V3d(1, 1, 0)},
		{Position: math3d.V3d(1, 1, 1)},
	}
	m.Faces = []Face{{V: [3]int{0, 1, 2}}}
	m.CalculateNormals()

	m.Transform(math3d.ScaleXYZ(4.0, 1, 1))

	edge := m.Vertices[1].Position.Sub(m.Vertices[0].Position)
	n := m.Vertices[0].Normal
	if math.Abs(n.Dot(edge)) > 1e-12 {
		t.Errorf("normal %v not perpendicular to edge %v", n, edge)
	}
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("normal length = %v, want 1", n.Len())
	}
}

func TestMeshTransformMirrorFlipsWinding(t *testing.T) {
	cube := NewCube(1)
	cube.Transform(math3d.ScaleXYZ(-1.0, 1, 1))

	for i := range cube.TriangleCount() {
		a, b, c := cube.Triangle(i)
		if b.Sub(a).Cross(c.Sub(a)).Dot(a) <= 0 {
			t.Errorf("face %d points inward after mirroring", i)
		}
	}
}

func TestMeshTransformSingular(t *testing.T) {
	cube := NewCube(1)
	cube.Transform(math3d.ScaleXYZ(0.0, 1, 1))

	for i, v := range cube.Vertices {
		if math.IsNaN(v.Normal.X) || math.IsNaN(v.Normal.Y) || math.IsNaN(v.Normal.Z) {
			t.Fatalf("vertex %d normal is NaN", i)
		}
	}
	if cube.Size().X != 0 {
		t.Errorf("flattened size = %v", cube.Size())
	}
}

func TestMeshSmoothNormals(t *testing.T) {
	// Two triangles folded along a shared edge.
	m := NewMesh("fold")
	m.Vertices = []Vertex{
		{Position: math3d.V3d(0, 0, 0)},
		{Position: math3d.V3d(0, 0, -1)},
		{Position: math3d.V3d(1, 0, 0)},
		{Position: math3d.V3d(-1, 1, 0)},
	}
	m.Faces = []Face{
		{V: [3]int{0, 2, 1}}, // normal +Y
		{V: [3]int{0, 1, 3}},
	}
	m.CalculateSmoothNormals()

	shared := m.Vertices[0].Normal
	if math.Abs(shared.Len()-1) > 1e-12 {
		t.Errorf("shared normal length = %v", shared.Len())
	}
	if shared.ApproxEqual(m.Vertices[2].Normal, 1e-9) {
		t.Error("shared vertex should average both faces")
	}
}

func TestMeshAppendAndClone(t *testing.T) {
	m := NewMesh("scene")
	m.Append(NewCube(1), math3d.TranslateXYZ(5.0, 0, 0))
	m.Append(NewCube(1), math3d.TranslateXYZ(-5.0, 0, 0))

	if m.TriangleCount() != 24 {
		t.Fatalf("TriangleCount = %d, want 24", m.TriangleCount())
	}
	if m.Faces[12].V[0] != 24 {
		t.Errorf("second cube indices not rebased: %v", m.Faces[12])
	}
	if lo, hi := m.Bounds(); lo.X != -5.5 || hi.X != 5.5 {
		t.Errorf("bounds = %v..%v", lo, hi)
	}

	clone := m.Clone()
	clone.Vertices[0].Position = math3d.V3d(100, 100, 100)
	if m.Vertices[0].Position.X == 100 {
		t.Error("Clone shares vertex storage")
	}
}
