package mandel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RenderMode selects which evaluator draws the frame.
type RenderMode uint8

const (
	// RenderGPU evaluates the fractal in a Kage fragment shader. The
	// preferred mode: parameters change cost a uniform rewrite, not a
	// full re-scan.
	RenderGPU RenderMode = iota
	// RenderCPU runs the reference pixel scan and blits the buffer.
	RenderCPU
)

// wheelPixelThreshold separates line-based wheel deltas from pixel-based
// ones; pixel deltas collapse to one line per event.
const wheelPixelThreshold = 10.0

// ViewerConfig configures a Viewer. Zero values pick the defaults noted
// on each field.
type ViewerConfig struct {
	// Width and Height are the initial window size in pixels.
	// Default 800x600.
	Width, Height int
	// MaxIterations is the escape-time iteration cap.
	// Default DefaultMaxIterations.
	MaxIterations int
	// Mode selects the evaluator. Default RenderGPU.
	Mode RenderMode
	// Palette colors escaping points. Default EscapeColor.
	Palette Palette
	// ShowFPS draws an FPS/TPS readout in the corner.
	ShowFPS bool
	// ClampToPlane keeps the camera center inside PlaneBounds so the
	// view cannot wander off into empty plane.
	ClampToPlane bool
}

// Viewer is the frame driver: it implements [ebiten.Game], polls pointer
// and wheel input into the camera, snapshots fresh render parameters after
// every camera-affecting event, and draws via the GPU shader or the CPU
// reference scan. Tab switches between the two at runtime for parity
// checking.
//
// Everything runs on the game-loop goroutine; the viewer holds the only
// reference to its camera and buffers, so nothing here locks.
type Viewer struct {
	cam     *Camera
	params  Params
	maxIter int
	mode    RenderMode
	palette Palette
	showFPS bool

	// CPU path: pixel buffer plus the image it is blitted through,
	// re-rendered only when the parameters changed.
	pix      []byte
	frame    *ebiten.Image
	cpuDirty bool

	// GPU path: persistent uniform map and backing arrays, refilled in
	// place on parameter changes so Draw allocates nothing.
	uniforms    map[string]any
	windowSize  [2]float32
	worldCenter [2]float32
	shaderOp    ebiten.DrawRectShaderOptions
}

// NewViewer creates a Viewer with the given configuration.
func NewViewer(cfg ViewerConfig) *Viewer {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.Palette == nil {
		cfg.Palette = EscapeColor
	}

	v := &Viewer{
		cam:      NewCamera(float64(cfg.Width), float64(cfg.Height)),
		maxIter:  cfg.MaxIterations,
		mode:     cfg.Mode,
		palette:  cfg.Palette,
		showFPS:  cfg.ShowFPS,
		uniforms: make(map[string]any, 4),
	}
	v.uniforms["WindowSize"] = v.windowSize[:]
	v.uniforms["WorldCenter"] = v.worldCenter[:]
	if cfg.ClampToPlane {
		v.cam.SetBounds(PlaneBounds)
	}
	v.refreshParams()
	return v
}

// Camera returns the viewer's camera for direct control, e.g. glides to a
// landmark. Mutate it only from Update callbacks (the game-loop
// goroutine).
func (v *Viewer) Camera() *Camera { return v.cam }

// Params returns the latest render-parameter snapshot.
func (v *Viewer) Params() Params { return v.params }

// Mode returns the active render mode.
func (v *Viewer) Mode() RenderMode { return v.mode }

// SetMode switches the evaluator.
func (v *Viewer) SetMode(mode RenderMode) {
	v.mode = mode
	v.cpuDirty = true
}

// Update polls input, advances camera animation, and refreshes the render
// parameters if anything moved. Part of the [ebiten.Game] contract.
func (v *Viewer) Update() error {
	changed := false

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.cam.SetPointerPressed(true)
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.cam.SetPointerPressed(false)
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	mx, my := ebiten.CursorPosition()
	if v.pointerMoved(float64(mx), float64(my)) {
		changed = true
	}

	if _, wheelY := ebiten.Wheel(); v.wheelScrolled(wheelY) {
		changed = true
	}

	if v.cam.Update(1 / float32(ebiten.TPS())) {
		changed = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.toggleMode()
	}

	if changed {
		v.refreshParams()
	}
	return nil
}

// pointerMoved feeds a new pointer position into the camera, panning when
// the primary button is held. It reports whether the camera moved.
func (v *Viewer) pointerMoved(x, y float64) bool {
	dx := x - v.cam.PointerX
	dy := y - v.cam.PointerY
	if dx == 0 && dy == 0 {
		return false
	}
	moved := v.cam.PointerPressed
	v.cam.Pan(dx, dy)
	v.cam.SetPointerPosition(x, y)
	return moved
}

// wheelScrolled feeds a wheel delta into the camera's pointer-anchored
// zoom. Pixel-based deltas collapse to one line per event. Reports whether
// the camera zoomed.
func (v *Viewer) wheelScrolled(dy float64) bool {
	if dy == 0 {
		return false
	}
	if dy > wheelPixelThreshold {
		dy = 1
	} else if dy < -wheelPixelThreshold {
		dy = -1
	}
	v.cam.Zoom(dy)
	return true
}

// toggleMode flips between the GPU and CPU evaluators.
func (v *Viewer) toggleMode() {
	if v.mode == RenderGPU {
		v.SetMode(RenderCPU)
	} else {
		v.SetMode(RenderGPU)
	}
}

// refreshParams takes a fresh snapshot for the evaluators: uniform arrays
// are refilled in place, and the CPU buffer is marked for a re-scan.
func (v *Viewer) refreshParams() {
	v.params = v.cam.Snapshot(v.maxIter)
	v.params.uniforms(v.uniforms, v.windowSize[:], v.worldCenter[:])
	v.cpuDirty = true
}

// Draw renders the current frame. Part of the [ebiten.Game] contract.
func (v *Viewer) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()

	if v.mode == RenderGPU {
		shader := ensureFractalShader(v.maxIter)
		v.shaderOp.Uniforms = v.uniforms
		screen.DrawRectShader(w, h, shader, &v.shaderOp)
	} else {
		v.drawCPU(screen)
	}

	if v.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// drawCPU re-scans the pixel buffer if the parameters changed since the
// last frame and blits it.
func (v *Viewer) drawCPU(screen *ebiten.Image) {
	w, h := int(v.params.Width), int(v.params.Height)
	if w <= 0 || h <= 0 {
		return
	}

	if v.frame == nil || v.frame.Bounds().Dx() != w || v.frame.Bounds().Dy() != h {
		v.frame = ebiten.NewImage(w, h)
		v.pix = make([]byte, w*h*4)
		v.cpuDirty = true
	}
	if v.cpuDirty {
		v.params.RenderParallel(v.pix, v.palette)
		v.frame.WritePixels(v.pix)
		v.cpuDirty = false
	}
	screen.DrawImage(v.frame, nil)
}

// Layout reports the logical screen size and forwards window resizes to
// the camera; zoom and pan survive a resize. Part of the [ebiten.Game]
// contract.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if (w != v.cam.Width || h != v.cam.Height) && w > 0 && h > 0 {
		v.cam.Resize(w, h)
		v.refreshParams()
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
