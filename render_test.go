package mandel

import (
	"bytes"
	"testing"
)

func testParams(w, h int) Params {
	return Params{
		MaxIterations: 64,
		Scale:         3.0,
		Width:         float64(w),
		Height:        float64(h),
		CenterX:       -0.5,
		CenterY:       0,
	}
}

func TestRenderMatchesEvaluator(t *testing.T) {
	const w, h = 40, 30
	p := testParams(w, h)
	pix := make([]byte, w*h*4)
	p.Render(pix, EscapeColor)

	// Spot-check pixels against the evaluator + palette run through the
	// same pixel-center transform.
	for _, pt := range [][2]int{{0, 0}, {20, 15}, {39, 29}, {7, 23}} {
		x, y := pt[0], pt[1]
		cre, cim := p.ScreenToWorld(float64(x)+0.5, float64(y)+0.5)
		want := EscapeColor(Iterations(cre, cim, 64), 64)
		o := (y*w + x) * 4
		if pix[o] != want.R || pix[o+1] != want.G || pix[o+2] != want.B || pix[o+3] != want.A {
			t.Errorf("pixel (%d,%d) = %v, want %v", x, y, pix[o:o+4], want)
		}
	}
}

func TestRenderCenterOfViewIsInside(t *testing.T) {
	// The view centered on (-0.5, 0) has the set's interior at its
	// center; that pixel must be opaque black.
	const w, h = 41, 31
	p := testParams(w, h)
	pix := make([]byte, w*h*4)
	p.Render(pix, EscapeColor)

	o := ((h/2)*w + w/2) * 4
	if pix[o] != 0 || pix[o+1] != 0 || pix[o+2] != 0 || pix[o+3] != 255 {
		t.Errorf("center pixel = %v, want opaque black", pix[o:o+4])
	}
}

func TestRenderParallelMatchesSequential(t *testing.T) {
	// Height chosen to leave a ragged final band.
	const w, h = 64, parallelBandRows*3 + 5
	p := testParams(w, h)

	seq := make([]byte, w*h*4)
	par := make([]byte, w*h*4)
	p.Render(seq, EscapeColor)
	p.RenderParallel(par, EscapeColor)

	if !bytes.Equal(seq, par) {
		t.Error("parallel render differs from sequential render")
	}
}

func TestRenderSkipsBadInput(t *testing.T) {
	p := testParams(8, 8)

	short := make([]byte, 7)
	p.Render(short, EscapeColor)
	for i, b := range short {
		if b != 0 {
			t.Fatalf("short buffer written at %d", i)
		}
	}

	p.Width, p.Height = 0, 0
	pix := make([]byte, 8*8*4)
	p.Render(pix, EscapeColor)
	p.RenderParallel(pix, EscapeColor)
}

func TestRenderRegion(t *testing.T) {
	const w, h = 30, 30
	pix := make([]byte, w*h*4)
	RenderRegion(pix, w, h, PlaneBounds, 64, EscapeColor)

	for _, pt := range [][2]int{{0, 0}, {15, 15}, {29, 29}} {
		x, y := pt[0], pt[1]
		cre := PlaneBounds.XMin + (float64(x)+0.5)*PlaneBounds.Width()/w
		cim := PlaneBounds.YMin + (float64(y)+0.5)*PlaneBounds.Height()/h
		want := EscapeColor(Iterations(cre, cim, 64), 64)
		o := (y*w + x) * 4
		if pix[o] != want.R || pix[o+1] != want.G || pix[o+2] != want.B {
			t.Errorf("pixel (%d,%d) = %v, want %v", x, y, pix[o:o+4], want)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	const w, h = 320, 240
	p := testParams(w, h)
	pix := make([]byte, w*h*4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Render(pix, EscapeColor)
	}
}

func BenchmarkRenderParallel(b *testing.B) {
	const w, h = 320, 240
	p := testParams(w, h)
	pix := make([]byte, w*h*4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.RenderParallel(pix, EscapeColor)
	}
}
