package mandel

import (
	"encoding/binary"
	"math"
)

// ParamsSize is the size in bytes of the marshaled Params record.
const ParamsSize = 48

// Params is the render-parameter record handed to the evaluator: an
// immutable snapshot of the camera plus the iteration cap, recomputed after
// every camera-affecting event and never persisted.
//
// The layout is fixed so host logic and a GPU kernel can read the same
// bytes: a uint32 iteration cap, 4 bytes of padding to the natural
// alignment of float64, then scale, window size, and world center as
// float64. All floating-point fields are 64-bit on the host and the CPU
// evaluator; the Kage shader boundary downcasts to float32 once, in
// uniforms, because Kage has no 64-bit floats.
type Params struct {
	MaxIterations uint32
	_             uint32
	Scale         float64
	Width, Height float64
	CenterX       float64
	CenterY       float64
}

// MarshalBinary encodes the record into its fixed 48-byte little-endian
// layout. The error is always nil; the signature satisfies
// encoding.BinaryMarshaler.
func (p Params) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ParamsSize)
	binary.LittleEndian.PutUint32(buf[0:4], p.MaxIterations)
	// buf[4:8] stays zero: padding to float64 alignment.
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(p.Scale))
	binary.LittleEndian.PutUint64(buf[16:24], math.Float64bits(p.Width))
	binary.LittleEndian.PutUint64(buf[24:32], math.Float64bits(p.Height))
	binary.LittleEndian.PutUint64(buf[32:40], math.Float64bits(p.CenterX))
	binary.LittleEndian.PutUint64(buf[40:48], math.Float64bits(p.CenterY))
	return buf, nil
}

// ScreenToWorld converts a screen-space position to the world coordinate
// this record maps it to. Same transform as Camera.ScreenToWorld, applied
// to the snapshot.
func (p Params) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	nx := sx/p.Width - 0.5
	ny := sy/p.Height - 0.5
	return p.CenterX + nx*p.Scale*p.Width/p.Height, p.CenterY + ny*p.Scale
}

// uniforms writes the record into a persistent Kage uniform map. The
// windowSize and worldCenter slices must already be stored in m (see
// Viewer); refilling their backing arrays avoids per-frame allocation, the
// same pattern the shader filters use for matrix uniforms.
func (p Params) uniforms(m map[string]any, windowSize, worldCenter []float32) {
	m["MaxIterations"] = float32(p.MaxIterations)
	m["Scale"] = float32(p.Scale)
	windowSize[0] = float32(p.Width)
	windowSize[1] = float32(p.Height)
	worldCenter[0] = float32(p.CenterX)
	worldCenter[1] = float32(p.CenterY)
}
