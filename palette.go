package mandel

import "image/color"

// Palette maps an iteration count and cap to an RGBA color. Palettes must
// be deterministic pure functions; the renderer calls them once per pixel.
type Palette func(iterations, maxIter int) color.RGBA

// EscapeColor is the default palette: points inside the set are opaque
// black, escaping points follow a smooth warm gradient over the escape
// speed t = iterations/maxIter:
//
//	r = 9(1-t)t^3        g = 15(1-t)^2 t^2        b = 8.5(1-t)^3 t
//
// each scaled to [0, 255] and truncated. The polynomials peak below 1, so
// truncation never wraps. The coefficients are load-bearing: the GPU
// shader hard-codes the same ones, and parity between the two paths is
// bit-for-bit.
func EscapeColor(iterations, maxIter int) color.RGBA {
	if iterations >= maxIter {
		return color.RGBA{0, 0, 0, 255}
	}
	t := float64(iterations) / float64(maxIter)
	u := 1 - t
	return color.RGBA{
		R: uint8(9 * u * t * t * t * 255),
		G: uint8(15 * u * u * t * t * 255),
		B: uint8(8.5 * u * u * u * t * 255),
		A: 255,
	}
}

// GrayColor is a linear grayscale palette: black inside the set, escape
// speed mapped to luminance.
func GrayColor(iterations, maxIter int) color.RGBA {
	if iterations >= maxIter {
		return color.RGBA{0, 0, 0, 255}
	}
	v := uint8(255 * float64(iterations) / float64(maxIter))
	return color.RGBA{R: v, G: v, B: v, A: 255}
}
