package mandel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// View constants. All are fixed at build time; nothing mutates them while
// the viewer runs.
const (
	// StartScale is the initial world-space height of the viewport. It
	// matches the classic static framing of the set (imaginary axis
	// -1.5..1.5).
	StartScale = 3.0
	// ZoomFactor is the base of the multiplicative zoom step.
	ZoomFactor = 2.0
	// ZoomSensitivity scales scroll deltas before they hit ZoomFactor's
	// exponent. One scroll line changes the scale by ZoomFactor^ZoomSensitivity.
	ZoomSensitivity = 0.1
	// DefaultMaxIterations is the iteration cap used when a config leaves
	// it unset.
	DefaultMaxIterations = 256
)

// glideAnim holds active glide-to tweens for camera center and scale.
type glideAnim struct {
	tweenX     *gween.Tween
	tweenY     *gween.Tween
	tweenScale *gween.Tween
	doneX      bool
	doneY      bool
	doneScale  bool
}

// Camera owns the view into the complex plane: zoom scale, world center,
// window size, and pointer state.
//
// Three coordinate spaces are involved: screen (pixels, origin top-left,
// y down), normalized (each axis in [-0.5, 0.5], origin at the viewport
// center), and world (the complex plane). A square on screen stays square
// in world space; the horizontal axis is stretched by the aspect ratio.
//
// All operations are synchronous, infallible mutations. The camera is
// mutated only on the event/update thread, so it needs no locking.
type Camera struct {
	// Scale is the world-space height of the viewport. Smaller = more
	// zoomed in. Always > 0.
	Scale float64
	// Width and Height are the viewport dimensions in pixels.
	Width, Height float64
	// CenterX and CenterY are the world coordinate mapped to the screen
	// center.
	CenterX, CenterY float64
	// PointerX and PointerY are the last known screen-space pointer
	// location.
	PointerX, PointerY float64
	// PointerPressed reports whether drag-pan is active.
	PointerPressed bool

	// BoundsEnabled clamps the world center so the view cannot wander
	// away from Bounds.
	BoundsEnabled bool
	// Bounds is the world-space region the center is clamped to when
	// BoundsEnabled is true.
	Bounds Region

	glide *glideAnim
}

// NewCamera creates a Camera for the given window size, framing the plane
// at StartScale around the origin.
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Scale:  StartScale,
		Width:  width,
		Height: height,
	}
}

// Zoom changes the scale by ZoomFactor^(-delta*ZoomSensitivity); a positive
// delta (scroll up) zooms in. The zoom is anchored at the current pointer
// position: the world point under the pointer is identical before and
// after, so a fixed visual feature under the cursor stays under the cursor.
//
// Zoom(0) is an exact no-op. A 0x0 (minimized) window is ignored.
func (c *Camera) Zoom(delta float64) {
	if delta == 0 || c.Width <= 0 || c.Height <= 0 {
		return
	}

	worldX, worldY := c.pointerWorld()

	c.Scale *= math.Pow(ZoomFactor, -delta*ZoomSensitivity)

	newWorldX, newWorldY := c.pointerWorld()

	c.CenterX += worldX - newWorldX
	c.CenterY += worldY - newWorldY

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// Pan moves the camera by a screen-space delta. Content follows the
// pointer: dragging right moves the visible window left in world space.
// No-op unless PointerPressed, and on a 0x0 window.
func (c *Camera) Pan(dx, dy float64) {
	if !c.PointerPressed || c.Width <= 0 || c.Height <= 0 {
		return
	}

	wx, wy := c.normalizedToWorldOffset(dx/c.Width, dy/c.Height)

	c.CenterX -= wx
	c.CenterY -= wy

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// SetPointerPosition records the pointer's screen-space location.
func (c *Camera) SetPointerPosition(x, y float64) {
	c.PointerX = x
	c.PointerY = y
}

// SetPointerPressed toggles drag-pan. It does not itself move the camera.
func (c *Camera) SetPointerPressed(pressed bool) {
	c.PointerPressed = pressed
}

// Resize updates the window size. Scale and center survive a resize; only
// the aspect ratio used by subsequent transforms changes. A 0x0 size
// (minimized window) is ignored so transforms never divide by zero.
func (c *Camera) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Width = width
	c.Height = height
}

// ScreenToWorld converts a screen-space position to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	nx := sx/c.Width - 0.5
	ny := sy/c.Height - 0.5
	ox, oy := c.normalizedToWorldOffset(nx, ny)
	return c.CenterX + ox, c.CenterY + oy
}

// Snapshot produces the render-parameter record for the current view and
// the given iteration cap.
func (c *Camera) Snapshot(maxIterations int) Params {
	return Params{
		MaxIterations: uint32(maxIterations),
		Scale:         c.Scale,
		Width:         c.Width,
		Height:        c.Height,
		CenterX:       c.CenterX,
		CenterY:       c.CenterY,
	}
}

// GlideTo animates the camera to the given world center and scale over
// duration seconds.
func (c *Camera) GlideTo(x, y, scale float64, duration float32, easeFn ease.TweenFunc) {
	c.glide = &glideAnim{
		tweenX:     gween.New(float32(c.CenterX), float32(x), duration, easeFn),
		tweenY:     gween.New(float32(c.CenterY), float32(y), duration, easeFn),
		tweenScale: gween.New(float32(c.Scale), float32(scale), duration, easeFn),
	}
}

// GlideToRegion glides to the center and scale framing the given region.
func (c *Camera) GlideToRegion(r Region, duration float32, easeFn ease.TweenFunc) {
	x, y := r.Center()
	c.GlideTo(x, y, r.ViewScale(), duration, easeFn)
}

// SetBounds enables clamping of the world center to the given region.
func (c *Camera) SetBounds(bounds Region) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables world-center clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances an active glide animation. It reports whether the camera
// changed, so the caller can refresh render parameters and schedule a
// redraw.
func (c *Camera) Update(dt float32) bool {
	if c.glide == nil {
		return false
	}

	g := c.glide
	if !g.doneX {
		val, done := g.tweenX.Update(dt)
		c.CenterX = float64(val)
		g.doneX = done
	}
	if !g.doneY {
		val, done := g.tweenY.Update(dt)
		c.CenterY = float64(val)
		g.doneY = done
	}
	if !g.doneScale {
		val, done := g.tweenScale.Update(dt)
		c.Scale = float64(val)
		g.doneScale = done
	}
	if g.doneX && g.doneY && g.doneScale {
		c.glide = nil
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
	return true
}

// Gliding reports whether a glide animation is in progress.
func (c *Camera) Gliding() bool {
	return c.glide != nil
}

// normalizedToWorldOffset converts a normalized-space displacement to a
// world-space offset, aspect-corrected so screen squares stay square.
func (c *Camera) normalizedToWorldOffset(nx, ny float64) (wx, wy float64) {
	return nx * c.Scale * c.Width / c.Height, ny * c.Scale
}

// pointerWorld returns the world coordinate under the pointer.
func (c *Camera) pointerWorld() (wx, wy float64) {
	return c.ScreenToWorld(c.PointerX, c.PointerY)
}

// clampToBounds restricts the world center so the visible area stays
// within Bounds. If the visible area is larger than the bounds on an axis,
// the center snaps to the bounds' midpoint on that axis.
func (c *Camera) clampToBounds() {
	halfH := c.Scale / 2
	halfW := halfH * c.Width / c.Height

	minX := c.Bounds.XMin + halfW
	maxX := c.Bounds.XMax - halfW
	minY := c.Bounds.YMin + halfH
	maxY := c.Bounds.YMax - halfH

	if minX > maxX {
		c.CenterX = (c.Bounds.XMin + c.Bounds.XMax) / 2
	} else {
		c.CenterX = math.Max(minX, math.Min(c.CenterX, maxX))
	}
	if minY > maxY {
		c.CenterY = (c.Bounds.YMin + c.Bounds.YMax) / 2
	} else {
		c.CenterY = math.Max(minY, math.Min(c.CenterY, maxY))
	}
}
