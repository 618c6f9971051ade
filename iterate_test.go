package mandel

import "testing"

func TestIterations(t *testing.T) {
	cases := []struct {
		name     string
		cre, cim float64
		maxIter  int
		want     int
	}{
		// The origin never escapes: z stays at 0.
		{"origin", 0, 0, 256, 256},
		// z0 = c, so (2,2) has |z|^2 = 8 > 4 before the first step.
		{"immediateEscape", 2, 2, 256, 0},
		// (2,0) sits exactly on the escape radius: |z|^2 = 4 is not > 4,
		// so one step runs (z = 6), then it escapes.
		{"onRadius", 2, 0, 256, 1},
		// (1,0): z walks 1 -> 2 -> 5; |2|^2 = 4 survives the strict test.
		{"walkOut", 1, 0, 256, 2},
		// (-1,0) is the period-2 cycle -1 -> 0 -> -1; never escapes.
		{"periodTwo", -1, 0, 1000, 1000},
		// (-2,0) is the tip of the needle, on the set's boundary: the
		// orbit is fixed at 2 and never exceeds the radius.
		{"needleTip", -2, 0, 500, 500},
		{"capZero", 5, 5, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Iterations(tc.cre, tc.cim, tc.maxIter); got != tc.want {
				t.Errorf("Iterations(%v, %v, %d) = %d, want %d",
					tc.cre, tc.cim, tc.maxIter, got, tc.want)
			}
		})
	}
}

func TestIterationsRange(t *testing.T) {
	// Sample a grid across the plane; every count must be in [0, maxIter].
	const maxIter = 64
	for i := -20; i <= 20; i++ {
		for j := -20; j <= 20; j++ {
			cre := float64(i) / 8
			cim := float64(j) / 8
			got := Iterations(cre, cim, maxIter)
			if got < 0 || got > maxIter {
				t.Fatalf("Iterations(%v, %v) = %d out of [0,%d]", cre, cim, got, maxIter)
			}
		}
	}
}

func TestIterationsSymmetry(t *testing.T) {
	// The set is symmetric about the real axis.
	points := [][2]float64{{-0.7, 0.3}, {0.25, 0.5}, {-1.25, 0.05}, {0.3, 0.02}}
	for _, p := range points {
		up := Iterations(p[0], p[1], 512)
		down := Iterations(p[0], -p[1], 512)
		if up != down {
			t.Errorf("conjugate counts differ at (%v,%v): %d vs %d", p[0], p[1], up, down)
		}
	}
}

func BenchmarkIterations(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// A slow-escaping point near the boundary.
		Iterations(-0.7435, 0.1314, 1000)
	}
}
