// Package mandel is an interactive escape-time fractal viewer for [Ebitengine].
//
// The package maps a rectangular region of the complex plane to screen
// pixels, colors each pixel by its Mandelbrot iteration count, and lets the
// user pan and zoom that mapping in real time by dragging and scrolling over
// the image.
//
// # Quick start
//
// [Viewer] implements [ebiten.Game]; hand it to [ebiten.RunGame] and you
// have a working viewer:
//
//	v := mandel.NewViewer(mandel.ViewerConfig{
//		Width: 800, Height: 600,
//	})
//	ebiten.SetWindowSize(800, 600)
//	if err := ebiten.RunGame(v); err != nil {
//		log.Fatal(err)
//	}
//
// Drag with the left mouse button to pan, scroll to zoom. Zooming is
// anchored at the pointer: the world point under the cursor stays put.
//
// # Architecture
//
// [Camera] owns the view state (scale, world center, pointer) and converts
// between screen, normalized, and world coordinates. After every
// camera-affecting event the viewer takes a [Params] snapshot — a
// fixed-layout numeric record shared verbatim with the evaluator — and
// schedules a redraw.
//
// Two equivalent evaluators render the same model: a Kage fragment shader
// (the default, GPU-resident) and a CPU reference scan built on
// [Iterations] and [EscapeColor]. Both read the same Params, so their
// output can be compared pixel for pixel.
//
// [Ebitengine]: https://ebitengine.org
package mandel
