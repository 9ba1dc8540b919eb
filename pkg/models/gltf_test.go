package models

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/vecmath/pkg/interop"
	"github.com/taigrr/vecmath/pkg/math3d"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader == nil {
		t.Fatal("NewGLTFLoader returned nil")
	}
	if !loader.CalculateNormals {
		t.Error("CalculateNormals should default to true")
	}
	if !loader.SmoothNormals {
		t.Error("SmoothNormals should default to true")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.glb")
	require.NoError(t, SaveGLB(path, NewCube(2)))

	mesh, err := LoadGLB(path)
	require.NoError(t, err)

	assert.Equal(t, "cube.glb", mesh.Name)
	assert.Equal(t, 12, mesh.TriangleCount())
	assert.Equal(t, 24, mesh.VertexCount())
	assert.Equal(t, math3d.V3d(-1, -1, -1), mesh.BoundsMin)
	assert.Equal(t, math3d.V3d(1, 1, 1), mesh.BoundsMax)
	assert.True(t, mesh.HasNormals())
}

func TestFromDocumentNodeHierarchy(t *testing.T) {
	doc := ToDocument(NewCube(1))
	doc.Nodes[0].Scale = [3]float64{2, 2, 2}
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:        "parent",
		Translation: [3]float64{10, 0, 0},
		Children:    []int{0},
	})
	doc.Scenes[0].Nodes = []int{1}

	mesh, err := NewGLTFLoader().FromDocument(doc, "scene")
	require.NoError(t, err)

	// Child scale applies before the parent's translation.
	assert.Equal(t, math3d.V3d(9, -1, -1), mesh.BoundsMin)
	assert.Equal(t, math3d.V3d(11, 1, 1), mesh.BoundsMax)
}

func TestFromDocumentMirroredNode(t *testing.T) {
	doc := ToDocument(NewCube(1))
	doc.Nodes[0].Scale = [3]float64{-1, 1, 1}

	mesh, err := NewGLTFLoader().FromDocument(doc, "mirrored")
	require.NoError(t, err)

	// Winding is flipped along with the geometry, so faces still agree with
	// their stored normals.
	for i, f := range mesh.Faces {
		n := mesh.faceNormal(f)
		assert.Greater(t, n.Dot(mesh.Vertices[f.V[0]].Normal), 0.0, "face %d", i)
	}
}

func TestFromDocumentNoGeometry(t *testing.T) {
	_, err := NewGLTFLoader().FromDocument(gltf.NewDocument(), "empty")
	assert.ErrorIs(t, err, ErrNoGeometry)
}

func TestFromDocumentWithoutScenes(t *testing.T) {
	doc := ToDocument(NewCube(1))
	doc.Nodes[0].Translation = [3]float64{5, 0, 0} // ignored without scenes
	doc.Scenes = nil
	doc.Scene = nil

	mesh, err := NewGLTFLoader().FromDocument(doc, "loose")
	require.NoError(t, err)
	assert.Equal(t, math3d.V3d(0.5, 0.5, 0.5), mesh.BoundsMax)
}

func TestFromDocumentComputesNormals(t *testing.T) {
	cube := NewCube(1)
	for i := range cube.Vertices {
		cube.Vertices[i].Normal = math3d.Vec3d{}
	}

	mesh, err := NewGLTFLoader().FromDocument(ToDocument(cube), "bare")
	require.NoError(t, err)
	assert.True(t, mesh.HasNormals())
}

func TestNodeTransform(t *testing.T) {
	m := math3d.RotateX(0.4).Mul(math3d.TranslateXYZ(1.0, 2, 3))

	n := &gltf.Node{Matrix: interop.ToGLTF(m)}
	assert.Equal(t, m, NodeTransform(n))

	// No matrix, no TRS: identity.
	assert.True(t, NodeTransform(&gltf.Node{}).IsIdentity())

	trs := &gltf.Node{
		Scale:       [3]float64{2, 2, 2},
		Translation: [3]float64{0, 0, 5},
	}
	p := math3d.V3d(1, 0, 0).Transform(NodeTransform(trs))
	assert.Equal(t, math3d.V3d(2, 0, 5), p)
}

func TestSetNodeTransform(t *testing.T) {
	q := math3d.QuatFromAxisAngle(math3d.V3d(1, 2, 3).Normalize(), 0.9)
	m := math3d.ScaleXYZ(1.0, 2, 3).Mul(math3d.FromQuat(q)).Mul(math3d.TranslateXYZ(-4.0, 5, 6))

	n := &gltf.Node{}
	require.NoError(t, SetNodeTransform(n, m))
	assert.InDelta(t, 2, n.Scale[1], 1e-12)
	assert.Equal(t, [3]float64{-4, 5, 6}, n.Translation)
	assert.True(t, NodeTransform(n).ApproxEqual(m, 1e-12))
}

func TestSetNodeTransformRejects(t *testing.T) {
	sheared := math3d.Mat4Identity[float64]()
	sheared.M21 = 1

	projective := math3d.MustPerspectiveFieldOfView(1.0, 1, 1, 10)

	for name, m := range map[string]math3d.Mat4d{
		"sheared":    sheared,
		"projective": projective,
		"flat":       math3d.ScaleXYZ(1.0, 0, 1),
	} {
		t.Run(name, func(t *testing.T) {
			n := &gltf.Node{Translation: [3]float64{1, 1, 1}}
			err := SetNodeTransform(n, m)
			assert.True(t, errors.Is(err, ErrNotDecomposable), "err = %v", err)
			assert.Equal(t, [3]float64{1, 1, 1}, n.Translation, "node modified on failure")
		})
	}
}
