// trophy - Terminal wireframe viewer for math3d scenes.
// Draws a model with its planar shadow, its mirror image in a wall, a
// camera-facing light marker and axis-aligned posts.
//
// Controls:
//
//	Mouse drag  - Rotate model (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Reset rotation
//	H           - Toggle shadow
//	M           - Toggle mirror image
//	L           - Light positioning mode (move mouse, click to set, Esc to cancel)
//	?           - Toggle HUD overlay
//	+/-         - Adjust zoom
//	Esc         - Quit (or cancel light mode)
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/vecmath/pkg/math3d"
	"github.com/taigrr/vecmath/pkg/models"
	"github.com/taigrr/vecmath/pkg/render"
)

var (
	targetFPS = flag.Int("fps", 60, "Target FPS")
	bgColor   = flag.String("bg", "20,20,28", "Background color (R,G,B)")
	fadeDist  = flag.Float64("fade", 14, "Distance at which lines reach minimum brightness (0 disables)")
	snapshot  = flag.String("o", "", "Render one frame to this PNG file and exit")
	snapSize  = flag.String("size", "160x120", "Snapshot framebuffer size (WxH)")
	snapScale = flag.Int("scale", 4, "Snapshot pixel scale")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "trophy - Terminal wireframe viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: trophy [options] [model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Without a model a cube is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Rotate model\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  H / M       - Toggle shadow / mirror\n")
		fmt.Fprintf(os.Stderr, "  L           - Position light (mouse to aim, click to set)\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadMesh loads a glTF model, or returns a cube when path is empty.
func loadMesh(path string) (*models.Mesh, string, error) {
	if path == "" {
		return models.NewCube(1), "cube", nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		mesh, err := models.LoadGLB(path)
		if err != nil {
			return nil, "", fmt.Errorf("load model: %w", err)
		}
		return mesh, filepath.Base(path), nil
	default:
		return nil, "", fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}
}

func parseColor(s string) render.Color {
	var r, g, b uint8 = 20, 20, 28
	fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b)
	return render.RGB(r, g, b)
}

func renderSnapshot(scene *Scene, path string) error {
	var w, h int
	if _, err := fmt.Sscanf(*snapSize, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return fmt.Errorf("invalid -size %q, want WxH", *snapSize)
	}

	fb := render.NewFramebuffer(w, h)
	scene.Camera.SetAspectRatio(float64(w) / float64(h))
	if err := scene.Draw(fb, math3d.Mat4Identity[float64]()); err != nil {
		return err
	}
	if err := fb.SavePNG(path, *snapScale); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%dx%d)\n", path, w**snapScale, h**snapScale)
	return nil
}

func run(modelPath string) error {
	mesh, name, err := loadMesh(modelPath)
	if err != nil {
		return err
	}

	scene := NewScene(mesh, parseColor(*bgColor))
	scene.FadeDistance = *fadeDist

	if *snapshot != "" {
		return renderSnapshot(scene, *snapshot)
	}

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	fb := render.NewFramebuffer(width, height*2)
	scene.Camera.SetAspectRatio(float64(fb.Width) / float64(fb.Height))

	hud := NewHUD(name, mesh.TriangleCount())
	spin := NewSpin(*targetFPS)
	viewState := NewViewState()

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Input state
	inputTorque := struct{ pitch, yaw, roll float64 }{}
	const torqueStrength = 3.0

	// Mouse state
	var mouseDown bool
	var lastMouseX, lastMouseY int

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb.Resize(width, height*2)
				scene.Camera.SetAspectRatio(float64(fb.Width) / float64(fb.Height))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"):
					if viewState.LightMode {
						viewState.LightMode = false
					} else {
						cancel()
						return
					}
				case ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("q"):
					inputTorque.roll = -torqueStrength
				case ev.MatchString("e"):
					inputTorque.roll = torqueStrength
				case ev.MatchString("r"):
					spin.Stop()
					scene.SetZoom(defaultZoom)
				case ev.MatchString("w", "up"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("space"):
					spin.Push(
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
					)
				case ev.MatchString("+", "="):
					scene.SetZoom(scene.Zoom() - 0.5)
				case ev.MatchString("-", "_"):
					scene.SetZoom(scene.Zoom() + 0.5)
				case ev.MatchString("h"):
					scene.ShowShadow = !scene.ShowShadow
				case ev.MatchString("m"):
					scene.ShowMirror = !scene.ShowMirror
				case ev.MatchString("l"):
					viewState.LightMode = true
					viewState.PendingLight = scene.LightDir
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					viewState.ShowHUD = !viewState.ShowHUD
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputTorque.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputTorque.yaw = 0
				case ev.MatchString("q"), ev.MatchString("e"):
					inputTorque.roll = 0
				}

			case uv.MouseClickEvent:
				if viewState.LightMode {
					scene.LightDir = viewState.PendingLight
					viewState.LightMode = false
				} else {
					mouseDown = true
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseReleaseEvent:
				if !viewState.LightMode {
					mouseDown = false
				}

			case uv.MouseMotionEvent:
				if viewState.LightMode {
					viewState.PendingLight = ScreenToLightDir(ev.X, ev.Y, width, height)
				} else if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					spin.Push(float64(dy)*0.03, float64(dx)*0.03, 0)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					scene.SetZoom(scene.Zoom() - 0.5)
				case uv.MouseWheelDown:
					scene.SetZoom(scene.Zoom() + 0.5)
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := min(now.Sub(lastFrame).Seconds(), 0.1)
		lastFrame = now

		// Apply input torque and decay it (key release events unreliable)
		spin.Push(
			inputTorque.pitch*dt,
			inputTorque.yaw*dt,
			inputTorque.roll*dt,
		)
		inputTorque.pitch *= 0.9
		inputTorque.yaw *= 0.9
		inputTorque.roll *= 0.9

		spin.Step()

		// The pending direction previews while positioning the light.
		light := scene.LightDir
		if viewState.LightMode {
			scene.LightDir = viewState.PendingLight
		}
		err := scene.Draw(fb, spin.Matrix())
		scene.LightDir = light
		if err != nil {
			cleanup()
			return fmt.Errorf("draw: %w", err)
		}

		fb.Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(width, height, viewState, scene)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// ScreenToLightDir converts a screen position to a light direction on the
// hemisphere above the model.
func ScreenToLightDir(screenX, screenY, width, height int) math3d.Vec3d {
	nx := (float64(screenX)/float64(width))*2 - 1
	nz := (float64(screenY)/float64(height))*2 - 1

	// Clamp to unit circle
	lenSq := nx*nx + nz*nz
	if lenSq > 1 {
		l := math.Sqrt(lenSq)
		nx /= l
		nz /= l
		lenSq = 1
	}

	// Keep the light above the ground so shadows stay finite.
	ny := max(math.Sqrt(1-lenSq), 0.2)
	return math3d.V3d(nx, ny, nz).Normalize()
}
