package main

import (
	"fmt"
	"math"

	"github.com/taigrr/vecmath/pkg/math3d"
	"github.com/taigrr/vecmath/pkg/models"
	"github.com/taigrr/vecmath/pkg/render"
)

const (
	defaultZoom = 6.0
	minZoom     = 2.0
	maxZoom     = 20.0

	lift  = 1.5  // height of the model center above the ground
	wallZ = -3.0 // mirror wall position
)

// Scene is everything drawn each frame: the model, its shadow on the
// ground, its mirror image in the wall, a light marker and two posts.
type Scene struct {
	Camera     *render.Camera
	Mesh       *models.Mesh
	Bounds     render.AABB
	Background render.Color

	LightDir math3d.Vec3d // toward the light
	Ground   math3d.Planed
	Wall     math3d.Planed

	ShowShadow   bool
	ShowMirror   bool
	FadeDistance float64

	zoom float64

	// Results of the last Draw.
	model  math3d.Mat4d
	culled bool
}

// NewScene centers mesh on the origin, scales its largest dimension to 2
// and sets up a camera looking at it.
func NewScene(mesh *models.Mesh, bg render.Color) *Scene {
	mesh.CalculateBounds()
	size := mesh.Size()
	if maxDim := max(size.X, size.Y, size.Z); maxDim > 0 {
		mesh.Transform(math3d.Translate(mesh.Center().Negate()).Mul(math3d.ScaleUniform(2 / maxDim)))
	}
	lo, hi := mesh.Bounds()

	cam := render.NewCamera()
	cam.SetFOV(math.Pi / 3)
	cam.SetClipPlanes(0.1, math.Inf(1))

	s := &Scene{
		Camera:     cam,
		Mesh:       mesh,
		Bounds:     render.NewAABB(lo, hi),
		Background: bg,
		LightDir:   math3d.V3d(0.5, 1, 0.3).Normalize(),
		Ground:     math3d.NewPlane(0.0, 1, 0, 0),
		Wall:       math3d.NewPlane(0.0, 0, 1, -wallZ),
		ShowShadow: true,
		ShowMirror: true,
	}
	s.SetZoom(defaultZoom)
	return s
}

// Zoom returns the camera distance.
func (s *Scene) Zoom() float64 { return s.zoom }

// SetZoom moves the camera to distance z, clamped to a sensible range.
func (s *Scene) SetZoom(z float64) {
	s.zoom = max(minZoom, min(maxZoom, z))
	s.Camera.SetPosition(math3d.V3d(0, lift+s.zoom*0.4, s.zoom))
	s.Camera.LookAt(math3d.V3d(0, lift, 0))
}

// ModelMatrix places the model: rotation about its center, then lifted
// above the ground.
func (s *Scene) ModelMatrix(rotation math3d.Mat4d) math3d.Mat4d {
	return rotation.Mul(math3d.TranslateXYZ(0, lift, 0))
}

// Draw renders the scene into fb with the model rotated by rotation.
func (s *Scene) Draw(fb *render.Framebuffer, rotation math3d.Mat4d) error {
	fb.Clear(s.Background)
	wf := render.NewWireframe(s.Camera, fb)
	wf.FadeDistance = s.FadeDistance

	model := s.ModelMatrix(rotation)
	s.model = model

	if err := wf.DrawGrid(12, 1, render.RGB(60, 60, 70)); err != nil {
		return err
	}
	if err := s.drawWall(wf); err != nil {
		return err
	}

	if s.ShowMirror {
		if err := wf.DrawReflection(s.Mesh, model, s.Wall, render.ColorMirror); err != nil {
			return err
		}
	}
	if s.ShowShadow {
		if err := wf.DrawShadow(s.Mesh, model, s.LightDir, s.Ground, render.ColorShadow); err != nil {
			return err
		}
	}

	for _, x := range []float64{-3, 3} {
		post := math3d.V3d(x, 0, 1)
		if err := wf.DrawAxisBillboard(post, math3d.UnitY[float64](), 0.6, 1.6, render.ColorGreen); err != nil {
			return err
		}
	}

	drawn, err := wf.DrawMeshCulled(s.Mesh, model, s.Bounds, render.ColorCyan)
	if err != nil {
		return err
	}
	s.culled = !drawn

	center := math3d.V3d(0, lift, 0)
	light := center.Add(s.LightDir.Scale(4))
	if err := wf.DrawLine3D(center, light, render.RGB(90, 90, 40)); err != nil {
		return err
	}
	return wf.DrawBillboard(light, 0.5, render.ColorYellow)
}

func (s *Scene) drawWall(wf *render.Wireframe) error {
	const w, h = 6.0, 4.0
	corners := []math3d.Vec3d{
		math3d.V3d(-w/2, 0, wallZ),
		math3d.V3d(w/2, 0, wallZ),
		math3d.V3d(w/2, h, wallZ),
		math3d.V3d(-w/2, h, wallZ),
	}
	for i := range corners {
		if err := wf.DrawLine3D(corners[i], corners[(i+1)%len(corners)], render.ColorMirror); err != nil {
			return err
		}
	}
	return nil
}

// Status summarizes the last drawn model transform.
func (s *Scene) Status() string {
	scale, rot, pos, ok := s.model.Decompose()
	if !ok {
		return "degenerate model transform"
	}
	spin := 2 * math.Acos(min(1, math.Abs(rot.W))) * 180 / math.Pi

	state := "visible"
	if s.culled {
		state = "culled"
	}
	return fmt.Sprintf("scale %.2f  pos (%.1f, %.1f, %.1f)  spin %3.0f°  %s",
		scale.X, pos.X, pos.Y, pos.Z, spin, state)
}
