package render

import (
	"math"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// Camera represents a 3D camera with position and orientation.
type Camera struct {
	// Position in world space
	Position math3d.Vec3d

	// Orientation (Euler angles in radians)
	Pitch float64 // Rotation around X axis (look up/down)
	Yaw   float64 // Rotation around Y axis (look left/right)
	Roll  float64 // Rotation around the view direction (tilt)

	// Projection parameters
	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / Height
	Near        float64 // Near clipping plane
	Far         float64 // Far clipping plane; +Inf for no far plane

	// Cached matrices (computed on demand)
	viewMatrix     math3d.Mat4d
	projMatrix     math3d.Mat4d
	viewProjMatrix math3d.Mat4d
	projErr        error
	viewDirty      bool
	projDirty      bool
	viewProjDirty  bool
}

// NewCamera creates a new camera with default settings.
func NewCamera() *Camera {
	return &Camera{
		Position:      math3d.V3d(0, 10, 0),
		FOV:           math.Pi / 3, // 60 degrees
		AspectRatio:   16.0 / 9.0,
		Near:          0.1,
		Far:           1000,
		viewDirty:     true,
		projDirty:     true,
		viewProjDirty: true,
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3d) {
	c.Position = pos
	c.markView()
}

// SetRotation sets the camera rotation (pitch, yaw, roll in radians).
func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.Roll = roll
	c.markView()
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.markProj()
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.markProj()
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.markProj()
}

func (c *Camera) markView() {
	c.viewDirty = true
	c.viewProjDirty = true
}

func (c *Camera) markProj() {
	c.projDirty = true
	c.viewProjDirty = true
}

// Forward returns the forward direction vector.
func (c *Camera) Forward() math3d.Vec3d {
	// Forward is -Z in camera space, rotated by yaw and pitch
	return math3d.V3d(
		-math.Sin(c.Yaw)*math.Cos(c.Pitch),
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw)*math.Cos(c.Pitch),
	)
}

// Right returns the right direction vector, ignoring roll.
func (c *Camera) Right() math3d.Vec3d {
	return math3d.V3d(
		math.Cos(c.Yaw),
		0,
		-math.Sin(c.Yaw),
	)
}

// Up returns the up direction vector, including roll.
func (c *Camera) Up() math3d.Vec3d {
	fwd := c.Forward()
	up := c.Right().Cross(fwd)
	if c.Roll == 0 {
		return up
	}
	return up.Rotate(math3d.QuatFromAxisAngle(fwd, -c.Roll))
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4d {
	if c.viewDirty {
		c.viewMatrix = math3d.LookAt(c.Position, c.Position.Add(c.Forward()), c.Up())
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix. It fails when the field of
// view or clip planes are out of range.
func (c *Camera) ProjectionMatrix() (math3d.Mat4d, error) {
	if c.projDirty {
		c.projMatrix, c.projErr = math3d.PerspectiveFieldOfView(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix, c.projErr
}

// ViewProjectionMatrix returns view * projection: world space to clip space.
func (c *Camera) ViewProjectionMatrix() (math3d.Mat4d, error) {
	proj, err := c.ProjectionMatrix()
	if err != nil {
		return math3d.Mat4d{}, err
	}
	if c.viewProjDirty {
		c.viewProjMatrix = c.ViewMatrix().Mul(proj)
		c.viewProjDirty = false
	}
	return c.viewProjMatrix, nil
}

// MoveForward moves the camera forward (or backward if negative).
func (c *Camera) MoveForward(distance float64) {
	c.SetPosition(c.Position.Add(c.Forward().Scale(distance)))
}

// MoveRight moves the camera right (or left if negative).
func (c *Camera) MoveRight(distance float64) {
	c.SetPosition(c.Position.Add(c.Right().Scale(distance)))
}

// MoveUp moves the camera up (or down if negative).
func (c *Camera) MoveUp(distance float64) {
	c.SetPosition(c.Position.Add(math3d.UnitY[float64]().Scale(distance)))
}

// Rotate rotates the camera by the given angles (in radians).
func (c *Camera) Rotate(deltaPitch, deltaYaw, deltaRoll float64) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw
	c.Roll += deltaRoll

	// Clamp pitch so Forward never becomes parallel to world up.
	const maxPitch = math.Pi/2 - 0.01
	c.Pitch = max(-maxPitch, min(maxPitch, c.Pitch))

	c.markView()
}

// LookAt makes the camera look at a target point.
func (c *Camera) LookAt(target math3d.Vec3d) {
	dir := target.Sub(c.Position).Normalize()

	c.Pitch = math.Asin(dir.Y)
	c.Yaw = math.Atan2(-dir.X, -dir.Z)
	c.Roll = 0

	c.markView()
}

// WorldToScreen transforms a world point to screen coordinates.
// Returns (screenX, screenY, depth, visible); depth runs 0 at the near
// plane to 1 at the far plane.
func (c *Camera) WorldToScreen(worldPos math3d.Vec3d, screenWidth, screenHeight int) (x, y, depth float64, visible bool) {
	vp, err := c.ViewProjectionMatrix()
	if err != nil {
		return 0, 0, 0, false
	}
	return ClipToScreen(math3d.V4FromV3(worldPos, 1).Transform(vp), screenWidth, screenHeight)
}

// ClipToScreen maps a clip-space position to screen coordinates.
func ClipToScreen(clip math3d.Vec4d, screenWidth, screenHeight int) (x, y, depth float64, visible bool) {
	// Behind camera
	if clip.W <= 0 {
		return 0, 0, 0, false
	}

	ndc := clip.PerspectiveDivide()
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < 0 || ndc.Z > 1 {
		return 0, 0, 0, false
	}

	x = (ndc.X + 1) * 0.5 * float64(screenWidth)
	y = (1 - ndc.Y) * 0.5 * float64(screenHeight) // Y is flipped
	return x, y, ndc.Z, true
}
