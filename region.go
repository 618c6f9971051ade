package mandel

// Region is an axis-aligned rectangle in the complex plane. X is the real
// axis, Y the imaginary axis.
type Region struct {
	XMin, XMax float64
	YMin, YMax float64
}

// PlaneBounds is the classic static framing of the Mandelbrot set: real
// axis -2..1, imaginary axis -1.5..1.5.
var PlaneBounds = Region{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}

// Classic landmarks in the set, handy targets for Camera.GlideToRegion.
var (
	// SeahorseValley has dense filaments and repeating seahorse curls.
	SeahorseValley = Region{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}

	// ElephantValley is a large bulb with trunk-like tendrils.
	ElephantValley = Region{XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02}

	// SpiralMinibrot is a small copy of the set with tight spiral arms.
	SpiralMinibrot = Region{XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325}

	// TripleSpiral is a threefold symmetric spiral structure.
	TripleSpiral = Region{XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980}

	// ValleyOfTheDragon holds deep, highly detailed spiral filaments.
	ValleyOfTheDragon = Region{XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850}
)

// Landmarks lists the named regions in presentation order.
var Landmarks = []Region{
	SeahorseValley,
	ElephantValley,
	SpiralMinibrot,
	TripleSpiral,
	ValleyOfTheDragon,
}

// Center returns the region's midpoint.
func (r Region) Center() (x, y float64) {
	return (r.XMin + r.XMax) / 2, (r.YMin + r.YMax) / 2
}

// ViewScale returns the camera scale that frames the region vertically.
func (r Region) ViewScale() float64 {
	return r.YMax - r.YMin
}

// Width returns the region's extent along the real axis.
func (r Region) Width() float64 { return r.XMax - r.XMin }

// Height returns the region's extent along the imaginary axis.
func (r Region) Height() float64 { return r.YMax - r.YMin }
