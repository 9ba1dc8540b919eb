package models

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/vecmath/pkg/interop"
	"github.com/taigrr/vecmath/pkg/math3d"
)

var (
	// ErrNoGeometry is returned when a document holds no triangle primitives.
	ErrNoGeometry = errors.New("models: no triangle geometry")

	// ErrNotDecomposable is returned when a matrix cannot be stored as a
	// node's translation, rotation and scale.
	ErrNotDecomposable = errors.New("models: transform is not scale-rotate-translate")
)

// maxNodeDepth bounds scene graph recursion so malformed documents with
// cyclic children cannot recurse forever.
const maxNodeDepth = 64

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// Options
	CalculateNormals bool
	SmoothNormals    bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		CalculateNormals: true,
		SmoothNormals:    true,
	}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns its default scene flattened
// into one mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(doc, filepath.Base(path))
}

// FromDocument flattens the default scene of doc into one mesh with every
// node's world transform applied. Documents without scenes contribute each
// mesh untransformed.
func (l *GLTFLoader) FromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	identity := math3d.Mat4Identity[float64]()

	if len(doc.Scenes) == 0 {
		for _, m := range doc.Meshes {
			if err := appendMesh(doc, m, identity, mesh); err != nil {
				return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
			}
		}
	} else {
		scene := 0
		if doc.Scene != nil {
			scene = *doc.Scene
		}
		if scene < 0 || scene >= len(doc.Scenes) {
			return nil, fmt.Errorf("default scene %d out of range", scene)
		}
		for _, root := range doc.Scenes[scene].Nodes {
			if err := visitNode(doc, root, identity, mesh, 0); err != nil {
				return nil, err
			}
		}
	}

	if len(mesh.Faces) == 0 {
		return nil, ErrNoGeometry
	}

	if l.CalculateNormals && !mesh.HasNormals() {
		if l.SmoothNormals {
			mesh.CalculateSmoothNormals()
		} else {
			mesh.CalculateNormals()
		}
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// visitNode appends the geometry of node idx and its children. With row
// vectors a child's world matrix is its local matrix followed by the
// parent's.
func visitNode(doc *gltf.Document, idx int, parent math3d.Mat4d, mesh *Mesh, depth int) error {
	if depth > maxNodeDepth {
		return fmt.Errorf("node %d: scene graph deeper than %d", idx, maxNodeDepth)
	}
	if idx < 0 || idx >= len(doc.Nodes) {
		return fmt.Errorf("node %d out of range", idx)
	}

	n := doc.Nodes[idx]
	world := NodeTransform(n).Mul(parent)

	if n.Mesh != nil {
		m := doc.Meshes[*n.Mesh]
		if err := appendMesh(doc, m, world, mesh); err != nil {
			return fmt.Errorf("node %q: mesh %q: %w", n.Name, m.Name, err)
		}
	}
	for _, child := range n.Children {
		if err := visitNode(doc, child, world, mesh, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// appendMesh adds the triangle primitives of m, transformed by world.
func appendMesh(doc *gltf.Document, m *gltf.Mesh, world math3d.Mat4d, mesh *Mesh) error {
	part := NewMesh(m.Name)

	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var normals [][3]float32
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			if err != nil {
				return fmt.Errorf("read normals: %w", err)
			}
		}

		base := len(part.Vertices)
		for i, p := range positions {
			v := Vertex{Position: vec3(p)}
			if i < len(normals) {
				v.Normal = vec3(normals[i])
			}
			part.Vertices = append(part.Vertices, v)
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices: consecutive vertices form triangles.
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			f := Face{V: [3]int{base + int(indices[i]), base + int(indices[i+1]), base + int(indices[i+2])}}
			for _, vi := range f.V {
				if vi >= len(part.Vertices) {
					return fmt.Errorf("index %d out of range (%d vertices)", vi-base, len(positions))
				}
			}
			part.Faces = append(part.Faces, f)
		}
	}

	mesh.Append(part, world)
	return nil
}

func vec3(p [3]float32) math3d.Vec3d {
	return math3d.V3d(float64(p[0]), float64(p[1]), float64(p[2]))
}

func float3(v math3d.Vec3d) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

var (
	gltfIdentity = interop.ToGLTF(math3d.Mat4Identity[float64]())
	zeroMatrix   [16]float64
)

// NodeTransform returns the local transform of n: its matrix when one is
// set, otherwise scale, then rotation, then translation.
func NodeTransform(n *gltf.Node) math3d.Mat4d {
	if n.Matrix != zeroMatrix && n.Matrix != gltfIdentity {
		return interop.FromGLTF(n.Matrix)
	}

	s := math3d.V3d(n.Scale[0], n.Scale[1], n.Scale[2])
	if s == math3d.Zero3[float64]() {
		s = math3d.One3[float64]() // unset
	}
	r := math3d.Quatd{X: n.Rotation[0], Y: n.Rotation[1], Z: n.Rotation[2], W: n.Rotation[3]}
	if r == (math3d.Quatd{}) {
		r = math3d.QuatIdentity[float64]()
	}
	t := math3d.V3d(n.Translation[0], n.Translation[1], n.Translation[2])

	return math3d.Scale(s).Mul(math3d.FromQuat(r)).Mul(math3d.Translate(t))
}

// SetNodeTransform stores m on n as translation, rotation and scale,
// clearing any matrix. It fails with ErrNotDecomposable when m has shear,
// projection or a degenerate axis, leaving n unchanged.
func SetNodeTransform(n *gltf.Node, m math3d.Mat4d) error {
	if m.M14 != 0 || m.M24 != 0 || m.M34 != 0 || m.M44 != 1 {
		return fmt.Errorf("%w: projective matrix", ErrNotDecomposable)
	}
	scale, rot, trans, ok := m.Decompose()
	if !ok {
		return ErrNotDecomposable
	}

	n.Matrix = gltfIdentity
	n.Scale = [3]float64{scale.X, scale.Y, scale.Z}
	n.Rotation = [4]float64{rot.X, rot.Y, rot.Z, rot.W}
	n.Translation = [3]float64{trans.X, trans.Y, trans.Z}
	return nil
}

// ToDocument builds a single-node glTF document holding mesh.
func ToDocument(mesh *Mesh) *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(mesh.Vertices))
	normals := make([][3]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = float3(v.Position)
		normals[i] = float3(v.Normal)
	}
	indices := make([]uint32, 0, len(mesh.Faces)*3)
	for _, f := range mesh.Faces {
		indices = append(indices, uint32(f.V[0]), uint32(f.V[1]), uint32(f.V[2]))
	}

	prim := &gltf.Primitive{
		Mode: gltf.PrimitiveTriangles,
		Attributes: map[string]int{
			gltf.POSITION: modeler.WritePosition(doc, positions),
			gltf.NORMAL:   modeler.WriteNormal(doc, normals),
		},
		Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
	}
	doc.Meshes = []*gltf.Mesh{{Name: mesh.Name, Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: mesh.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

// SaveGLB writes mesh to path as a binary glTF file.
func SaveGLB(path string, mesh *Mesh) error {
	if err := gltf.SaveBinary(ToDocument(mesh), path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}
