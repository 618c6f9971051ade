package mandel

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestParamsMarshalBinaryLayout(t *testing.T) {
	p := Params{
		MaxIterations: 256,
		Scale:         3.0,
		Width:         800,
		Height:        600,
		CenterX:       -0.745,
		CenterY:       0.113,
	}

	buf, err := p.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(buf) != ParamsSize {
		t.Fatalf("len = %d, want %d", len(buf), ParamsSize)
	}

	if got := binary.LittleEndian.Uint32(buf[0:4]); got != 256 {
		t.Errorf("MaxIterations bytes = %d, want 256", got)
	}
	for i := 4; i < 8; i++ {
		if buf[i] != 0 {
			t.Errorf("padding byte %d = %#x, want 0", i, buf[i])
		}
	}

	f64 := func(off int) float64 {
		return math.Float64frombits(binary.LittleEndian.Uint64(buf[off : off+8]))
	}
	offsets := []struct {
		name string
		off  int
		want float64
	}{
		{"Scale", 8, 3.0},
		{"Width", 16, 800},
		{"Height", 24, 600},
		{"CenterX", 32, -0.745},
		{"CenterY", 40, 0.113},
	}
	for _, tc := range offsets {
		if got := f64(tc.off); got != tc.want {
			t.Errorf("%s at offset %d = %v, want %v", tc.name, tc.off, got, tc.want)
		}
	}
}

func TestParamsScreenToWorldMatchesCamera(t *testing.T) {
	cam := NewCamera(1280, 720)
	cam.CenterX, cam.CenterY = -0.745, 0.113
	cam.Scale = 0.005

	p := cam.Snapshot(256)
	points := [][2]float64{{0, 0}, {640, 360}, {1280, 720}, {17, 693}}
	for _, pt := range points {
		cx, cy := cam.ScreenToWorld(pt[0], pt[1])
		px, py := p.ScreenToWorld(pt[0], pt[1])
		if cx != px || cy != py {
			t.Errorf("transforms disagree at %v: camera (%v,%v), params (%v,%v)",
				pt, cx, cy, px, py)
		}
	}
}

func TestParamsUniforms(t *testing.T) {
	p := Params{
		MaxIterations: 512,
		Scale:         0.25,
		Width:         800,
		Height:        600,
		CenterX:       -1.25,
		CenterY:       0.5,
	}

	m := make(map[string]any)
	windowSize := make([]float32, 2)
	worldCenter := make([]float32, 2)
	p.uniforms(m, windowSize, worldCenter)

	if got := m["MaxIterations"].(float32); got != 512 {
		t.Errorf("MaxIterations uniform = %v, want 512", got)
	}
	if got := m["Scale"].(float32); got != 0.25 {
		t.Errorf("Scale uniform = %v, want 0.25", got)
	}
	if windowSize[0] != 800 || windowSize[1] != 600 {
		t.Errorf("WindowSize = %v, want [800 600]", windowSize)
	}
	if worldCenter[0] != -1.25 || worldCenter[1] != 0.5 {
		t.Errorf("WorldCenter = %v, want [-1.25 0.5]", worldCenter)
	}
}
