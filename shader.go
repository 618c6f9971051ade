package mandel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// The GPU evaluator: a Kage fragment shader running the same escape-time
// recurrence and palette polynomial as the CPU path, reading its view from
// the Params uniforms.
//
// Kage requires compile-time loop bounds, so the source is generated with
// a fixed bound and breaks out at the MaxIterations uniform. One shader is
// compiled lazily per bound and cached; caps that round up to the same
// bound share a shader.
const fractalShaderSrcFmt = `//kage:unit pixels
package main

var MaxIterations float
var Scale float
var WindowSize vec2
var WorldCenter vec2

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	n := dst.xy/WindowSize - 0.5
	c := WorldCenter + vec2(n.x*Scale*WindowSize.x/WindowSize.y, n.y*Scale)
	z := c
	for i := 0; i < %d; i++ {
		if float(i) >= MaxIterations {
			break
		}
		re2 := z.x * z.x
		im2 := z.y * z.y
		if re2+im2 > 4.0 {
			t := float(i) / MaxIterations
			u := 1.0 - t
			return vec4(9.0*u*t*t*t, 15.0*u*u*t*t, 8.5*u*u*u*t, 1.0)
		}
		z = vec2(re2-im2+c.x, 2.0*z.x*z.y+c.y)
	}
	return vec4(0.0, 0.0, 0.0, 1.0)
}
`

// minShaderLoopBound keeps tiny caps from producing one shader per value.
const minShaderLoopBound = 64

// fractalShaders caches compiled shaders by loop bound. Access is
// single-threaded (the viewer draws from the game loop), so no sync.Once.
var fractalShaders = map[int]*ebiten.Shader{}

// shaderLoopBound returns the compile-time loop bound for an iteration
// cap: the next power of two at or above it.
func shaderLoopBound(maxIterations int) int {
	bound := minShaderLoopBound
	for bound < maxIterations {
		bound *= 2
	}
	return bound
}

// fractalShaderSrc returns the Kage source for the given loop bound.
func fractalShaderSrc(bound int) []byte {
	return fmt.Appendf(nil, fractalShaderSrcFmt, bound)
}

// ensureFractalShader returns the compiled shader for the given iteration
// cap, compiling it on first use. Compilation failure is a bug in the
// embedded source and panics.
func ensureFractalShader(maxIterations int) *ebiten.Shader {
	bound := shaderLoopBound(maxIterations)
	if s, ok := fractalShaders[bound]; ok {
		return s
	}
	s, err := ebiten.NewShader(fractalShaderSrc(bound))
	if err != nil {
		panic("mandel: failed to compile fractal shader: " + err.Error())
	}
	fractalShaders[bound] = s
	return s
}
