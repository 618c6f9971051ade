package mandel

// The CPU reference path. The GPU shader in shader.go evaluates the same
// model; these scans exist as the testable implementation and as the
// fallback renderer.

// parallelBandRows is the number of rows each worker goroutine renders.
const parallelBandRows = 16

// Render fills pix with an RGBA scan of the view described by p, row-major
// from the top-left, 4 bytes per pixel. Pixels are sampled at their
// centers through the same aspect-corrected transform the camera uses, so
// the output matches the GPU path for identical parameters.
//
// pix must hold at least Width*Height*4 bytes; undersized buffers and
// empty windows are skipped, leaving pix untouched.
func (p Params) Render(pix []byte, palette Palette) {
	w, h := int(p.Width), int(p.Height)
	if w <= 0 || h <= 0 || len(pix) < w*h*4 {
		return
	}
	p.renderRows(pix, 0, h, palette)
}

// RenderParallel is Render fanned out over goroutines, one per band of
// rows. Pixels have no cross-pixel dependencies, so the bands share
// nothing but disjoint slices of pix; output is byte-identical to Render.
func (p Params) RenderParallel(pix []byte, palette Palette) {
	w, h := int(p.Width), int(p.Height)
	if w <= 0 || h <= 0 || len(pix) < w*h*4 {
		return
	}

	ready := make(chan struct{})
	bands := 0
	for y := 0; y < h; y += parallelBandRows {
		y1 := min(y+parallelBandRows, h)
		bands++
		go func(y0, y1 int) {
			p.renderRows(pix, y0, y1, palette)
			ready <- struct{}{}
		}(y, y1)
	}
	for ; bands > 0; bands-- {
		<-ready
	}
}

// renderRows scans rows [y0, y1).
func (p Params) renderRows(pix []byte, y0, y1 int, palette Palette) {
	w := int(p.Width)
	maxIter := int(p.MaxIterations)

	for y := y0; y < y1; y++ {
		ny := (float64(y)+0.5)/p.Height - 0.5
		cim := p.CenterY + ny*p.Scale
		row := pix[y*w*4:]
		for x := 0; x < w; x++ {
			// Same expression as Params.ScreenToWorld, term for term, so
			// the scan and the transform agree to the last bit.
			nx := (float64(x)+0.5)/p.Width - 0.5
			cre := p.CenterX + nx*p.Scale*p.Width/p.Height

			c := palette(Iterations(cre, cim, maxIter), maxIter)
			o := x * 4
			row[o+0] = c.R
			row[o+1] = c.G
			row[o+2] = c.B
			row[o+3] = c.A
		}
	}
}

// RenderRegion fills pix with a w x h scan of a fixed plane region,
// mapping the pixel grid linearly onto the region with no aspect
// correction. This is the static-viewport variant; the interactive path
// goes through Params.
func RenderRegion(pix []byte, w, h int, r Region, maxIter int, palette Palette) {
	if w <= 0 || h <= 0 || len(pix) < w*h*4 {
		return
	}

	for y := 0; y < h; y++ {
		cim := r.YMin + (float64(y)+0.5)*r.Height()/float64(h)
		row := pix[y*w*4:]
		for x := 0; x < w; x++ {
			cre := r.XMin + (float64(x)+0.5)*r.Width()/float64(w)

			c := palette(Iterations(cre, cim, maxIter), maxIter)
			o := x * 4
			row[o+0] = c.R
			row[o+1] = c.G
			row[o+2] = c.B
			row[o+3] = c.A
		}
	}
}
