package mandel

// Iterations runs the escape-time recurrence z <- z^2 + c for the world
// coordinate c = (cre, cim) and returns the number of completed iterations
// before |z| exceeded the escape radius 2, in [0, maxIter]. A result of
// maxIter means the point did not escape and is presumed inside the set.
//
// The classic formulation seeds z0 = c, so a point already outside the
// radius escapes at iteration 0. The escape test runs before each step,
// and both squares in the step come from the pre-update components.
//
// This is the hot inner loop of the CPU path — one call per pixel per
// frame — so it works on the components directly instead of complex128.
func Iterations(cre, cim float64, maxIter int) int {
	zre, zim := cre, cim
	for i := 0; i < maxIter; i++ {
		re2 := zre * zre
		im2 := zim * zim
		if re2+im2 > 4.0 {
			return i
		}
		zim = 2*zre*zim + cim
		zre = re2 - im2 + cre
	}
	return maxIter
}
