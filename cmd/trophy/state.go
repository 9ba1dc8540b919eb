package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// Spin is the model's orientation as yaw/pitch/roll angles together with
// angular rates. Rates are in radians per frame and decay to zero through
// one critically damped spring per axis, so a flick coasts to a stop.
type Spin struct {
	Angles math3d.Vec3d // X pitch, Y yaw, Z roll
	Rates  math3d.Vec3d

	fps     int
	damping harmonica.Spring
	accel   [3]float64 // spring state for Rates.X, Rates.Y, Rates.Z
}

// NewSpin returns a spin at rest, damped for the given frame rate.
func NewSpin(fps int) *Spin {
	return &Spin{
		fps:     fps,
		damping: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Step advances the angles by one frame and damps the rates.
func (s *Spin) Step() {
	s.Angles = s.Angles.Add(s.Rates)
	s.Rates.X, s.accel[0] = s.damping.Update(s.Rates.X, s.accel[0], 0)
	s.Rates.Y, s.accel[1] = s.damping.Update(s.Rates.Y, s.accel[1], 0)
	s.Rates.Z, s.accel[2] = s.damping.Update(s.Rates.Z, s.accel[2], 0)
}

// Push adds to the angular rates.
func (s *Spin) Push(pitch, yaw, roll float64) {
	s.Rates = s.Rates.Add(math3d.V3d(pitch, yaw, roll))
}

// Stop resets the spin to rest at the identity orientation.
func (s *Spin) Stop() {
	*s = *NewSpin(s.fps)
}

// Matrix returns the current orientation.
func (s *Spin) Matrix() math3d.Mat4d {
	q := math3d.QuatFromYawPitchRoll(s.Angles.Y, s.Angles.X, s.Angles.Z)
	return math3d.FromQuat(q)
}

// ViewState holds UI state that is not part of the scene.
type ViewState struct {
	LightMode    bool         // Whether in light positioning mode
	PendingLight math3d.Vec3d // Light direction while positioning
	ShowHUD      bool
}

func NewViewState() *ViewState {
	return &ViewState{}
}

// HUD renders an overlay with model info and controls
type HUD struct {
	filename  string
	polyCount int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func NewHUD(filename string, polyCount int) *HUD {
	return &HUD{
		filename:  filename,
		polyCount: polyCount,
		fpsTime:   time.Now(),
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(width, height int, viewState *ViewState, scene *Scene) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if viewState.LightMode {
		lightMsg := fmt.Sprintf("%s%s%s ◉ LIGHT MODE - Move mouse to position, click to set, Esc to cancel %s",
			bgBlack, bold, fgYellow, reset)
		fmt.Print(moveTo(height, max((width-60)/2, 1)) + lightMsg)
		return
	}

	if !viewState.ShowHUD {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	titleStr := fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, h.filename, reset)
	fmt.Print(moveTo(1, max((width-len(h.filename)-2)/2, 1)) + titleStr)

	polyStr := fmt.Sprintf("%s%s%s %d polys %s", bgBlack, fgCyan, bold, h.polyCount, reset)
	fmt.Print(moveTo(1, max(width-12, 1)) + polyStr)

	fmt.Print(moveTo(height, 1) + bgBlack + fgWhite + " " + scene.Status() + " " + reset)

	hint := fmt.Sprintf("%s%s%s L: light  H: shadow  M: mirror %s", bgBlack, dim, fgYellow, reset)
	fmt.Print(moveTo(height, max(width-32, 1)) + hint)
}
