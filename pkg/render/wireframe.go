package render

import (
	"github.com/taigrr/vecmath/pkg/fixed"
	"github.com/taigrr/vecmath/pkg/math3d"
)

// Triangles is the geometry DrawMesh walks. Vertices are in model space.
type Triangles interface {
	TriangleCount() int
	Triangle(i int) (a, b, c math3d.Vec3d)
}

// Wireframe renders line geometry through a camera into a framebuffer.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer

	// FadeDistance darkens lines with view distance, reaching the minimum
	// brightness at this distance. Zero disables fading.
	FadeDistance float64
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// Unit cube corners and edges, shared by the cube helpers.
var (
	cubeCorners = [8]math3d.Vec3d{
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
	}
	cubeEdges = [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
)

// DrawLine3D draws a world-space line, clipped against the view volume.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3d, color Color) error {
	return w.lines(math3d.Mat4Identity[float64](), color, p1, p2)
}

// lines draws consecutive pairs of model-space points.
func (w *Wireframe) lines(model math3d.Mat4d, color Color, pts ...math3d.Vec3d) error {
	vp, err := w.camera.ViewProjectionMatrix()
	if err != nil {
		return err
	}
	mvp := model.Mul(vp)
	for i := 0; i+1 < len(pts); i += 2 {
		w.clipLine(math3d.V4FromV3(pts[i], 1).Transform(mvp), math3d.V4FromV3(pts[i+1], 1).Transform(mvp), color)
	}
	return nil
}

// clipLine clips a clip-space segment against the canonical volume
// (-w <= x,y <= w, 0 <= z <= w) and draws what is left.
func (w *Wireframe) clipLine(a, b math3d.Vec4d, color Color) {
	a, b, ok := ClipSegment(a, b)
	if !ok {
		return
	}

	if w.FadeDistance > 0 {
		mid := (a.W + b.W) / 2
		color = Shade(color, fade(mid, w.FadeDistance))
	}

	x1, y1, ok1 := w.toScreen(a)
	x2, y2, ok2 := w.toScreen(b)
	if !ok1 || !ok2 {
		return
	}
	w.fb.DrawLine(x1, y1, x2, y2, color)
}

func (w *Wireframe) toScreen(p math3d.Vec4d) (x, y int, ok bool) {
	if p.W <= 0 {
		return 0, 0, false
	}
	ndc := p.PerspectiveDivide()
	x = int((ndc.X + 1) * 0.5 * float64(w.fb.Width-1))
	y = int((1 - ndc.Y) * 0.5 * float64(w.fb.Height-1))
	return x, y, true
}

// fade maps a view distance to a brightness between 1/4 and 1.
func fade(dist, far float64) fixed.UFix8 {
	k := 1 - 0.75*dist/far
	return fixed.FromFloat64(max(0.25, min(1, k)))
}

// ClipSegment clips the clip-space segment a-b to the view volume using
// parametric (Liang-Barsky) clipping in homogeneous coordinates. It reports
// false when nothing of the segment is visible.
func ClipSegment(a, b math3d.Vec4d) (math3d.Vec4d, math3d.Vec4d, bool) {
	da := boundaries(a)
	db := boundaries(b)

	t0, t1 := 0.0, 1.0
	for i := range da {
		switch {
		case da[i] < 0 && db[i] < 0:
			return a, b, false
		case da[i] < 0:
			t0 = max(t0, da[i]/(da[i]-db[i]))
		case db[i] < 0:
			t1 = min(t1, da[i]/(da[i]-db[i]))
		}
	}
	if t0 > t1 {
		return a, b, false
	}
	return a.Lerp(b, t0), a.Lerp(b, t1), true
}

// boundaries returns the signed distances of p to the six clip planes;
// negative means outside.
func boundaries(p math3d.Vec4d) [6]float64 {
	return [6]float64{
		p.W + p.X,
		p.W - p.X,
		p.W + p.Y,
		p.W - p.Y,
		p.Z,
		p.W - p.Z,
	}
}

// DrawMesh draws every triangle edge of mesh placed by model.
func (w *Wireframe) DrawMesh(mesh Triangles, model math3d.Mat4d, color Color) error {
	n := mesh.TriangleCount()
	pts := make([]math3d.Vec3d, 0, n*6)
	for i := range n {
		a, b, c := mesh.Triangle(i)
		pts = append(pts, a, b, b, c, c, a)
	}
	return w.lines(model, color, pts...)
}

// DrawMeshCulled draws mesh like DrawMesh unless its model-space bounds lie
// entirely outside the camera frustum. It reports whether anything was drawn.
func (w *Wireframe) DrawMeshCulled(mesh Triangles, model math3d.Mat4d, bounds AABB, color Color) (bool, error) {
	f, err := w.camera.Frustum()
	if err != nil {
		return false, err
	}
	if !f.IntersectAABB(bounds.Transform(model)) {
		return false, nil
	}
	return true, w.DrawMesh(mesh, model, color)
}

// DrawShadow draws the mesh flattened onto plane along lightDir. Nothing is
// drawn when the light runs parallel to the plane.
func (w *Wireframe) DrawShadow(mesh Triangles, model math3d.Mat4d, lightDir math3d.Vec3d, plane math3d.Planed, color Color) error {
	dot := plane.Normalize().Normal.Dot(lightDir)
	if dot == 0 {
		return nil
	}
	shadow := math3d.Shadow(lightDir, plane)
	if dot < 0 {
		// Same projected points, but with positive W so they survive clipping.
		shadow = shadow.Negate()
	}
	return w.DrawMesh(mesh, model.Mul(shadow), color)
}

// DrawReflection draws the mesh mirrored through plane.
func (w *Wireframe) DrawReflection(mesh Triangles, model math3d.Mat4d, plane math3d.Planed, color Color) error {
	return w.DrawMesh(mesh, model.Mul(math3d.Reflection(plane)), color)
}

// DrawBillboard draws a camera-facing square marker with diagonals.
func (w *Wireframe) DrawBillboard(pos math3d.Vec3d, size float64, color Color) error {
	c := w.camera
	m := math3d.Billboard(pos, c.Position, c.Up(), c.Forward())
	return w.quad(m, size/2, size/2, color)
}

// DrawAxisBillboard draws an upright rectangle that turns around axis to
// face the camera, like a tree sprite.
func (w *Wireframe) DrawAxisBillboard(pos, axis math3d.Vec3d, width, height float64, color Color) error {
	c := w.camera
	m := math3d.ConstrainedBillboard(pos, c.Position, axis, c.Forward(), math3d.V3d(0, 0, -1))
	// Anchor the base at pos.
	m = math3d.TranslateXYZ(0, height/2, 0).Mul(m)
	return w.quad(m, width/2, height/2, color)
}

func (w *Wireframe) quad(m math3d.Mat4d, hx, hy float64, color Color) error {
	p0 := math3d.V3d(-hx, -hy, 0)
	p1 := math3d.V3d(hx, -hy, 0)
	p2 := math3d.V3d(hx, hy, 0)
	p3 := math3d.V3d(-hx, hy, 0)
	return w.lines(m, color, p0, p1, p1, p2, p2, p3, p3, p0, p0, p2, p1, p3)
}

// DrawCube draws an axis-aligned wireframe cube.
func (w *Wireframe) DrawCube(center math3d.Vec3d, size float64, color Color) error {
	return w.DrawTransformedCube(math3d.ScaleUniform(size).Mul(math3d.Translate(center)), 1, color)
}

// DrawTransformedCube draws a cube of the given edge length centered on the
// origin of transform.
func (w *Wireframe) DrawTransformedCube(transform math3d.Mat4d, size float64, color Color) error {
	pts := make([]math3d.Vec3d, 0, len(cubeEdges)*2)
	for _, e := range cubeEdges {
		pts = append(pts, cubeCorners[e[0]].Scale(size), cubeCorners[e[1]].Scale(size))
	}
	return w.lines(transform, color, pts...)
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float64) error {
	id := math3d.Mat4Identity[float64]()
	origin := math3d.Zero3[float64]()
	if err := w.lines(id, ColorRed, origin, math3d.V3d(length, 0, 0)); err != nil {
		return err
	}
	if err := w.lines(id, ColorGreen, origin, math3d.V3d(0, length, 0)); err != nil {
		return err
	}
	return w.lines(id, ColorBlue, origin, math3d.V3d(0, 0, length))
}

// DrawGrid draws a grid on the XZ plane at y=0.
func (w *Wireframe) DrawGrid(size, step float64, color Color) error {
	half := size / 2
	var pts []math3d.Vec3d
	for x := -half; x <= half; x += step {
		pts = append(pts, math3d.V3d(x, 0, -half), math3d.V3d(x, 0, half))
	}
	for z := -half; z <= half; z += step {
		pts = append(pts, math3d.V3d(-half, 0, z), math3d.V3d(half, 0, z))
	}
	return w.lines(math3d.Mat4Identity[float64](), color, pts...)
}

// DrawPoint draws a point as a small 3D cross.
func (w *Wireframe) DrawPoint(pos math3d.Vec3d, size float64, color Color) error {
	h := size / 2
	return w.lines(math3d.Translate(pos), color,
		math3d.V3d(-h, 0, 0), math3d.V3d(h, 0, 0),
		math3d.V3d(0, -h, 0), math3d.V3d(0, h, 0),
		math3d.V3d(0, 0, -h), math3d.V3d(0, 0, h),
	)
}
