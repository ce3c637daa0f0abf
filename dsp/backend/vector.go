package backend

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/karatoken/karafx/dsp/core"
)

// Vector dispatches block arithmetic to the algo-vecmath SIMD kernels.
type Vector struct {
	level string
}

// NewVector inspects the CPU and returns a Vector backend, or an
// ErrNumericBackend error when no SIMD level is available.
func NewVector() (*Vector, error) {
	features := cpu.DetectFeatures()

	level := simdLevel(features)
	if level == "" {
		return nil, core.ErrNumericBackend.New(
			"no SIMD acceleration available on %q (force generic: %t)",
			features.Architecture, features.ForceGeneric)
	}

	return &Vector{level: level}, nil
}

func simdLevel(f cpu.Features) string {
	switch {
	case f.ForceGeneric:
		return ""
	case f.HasAVX2:
		return "avx2"
	case f.HasSSE2:
		return "sse2"
	case f.HasNEON:
		return "neon"
	default:
		return ""
	}
}

// Name implements Backend.
func (v *Vector) Name() string { return "vecmath-" + v.level }

// Scale implements Backend.
func (v *Vector) Scale(dst, src []float64, gain float64) {
	checkLen("Scale", len(dst), len(src))
	vecmath.ScaleBlock(dst, src, gain)
}

// Mix implements Backend.
func (v *Vector) Mix(dst, dry, wet []float64, dryGain, wetGain float64) {
	checkLen("Mix", len(dst), len(dry))
	checkLen("Mix", len(dst), len(wet))
	vecmath.ScaleBlock(wet, wet, wetGain)
	vecmath.ScaleBlock(dst, dry, dryGain)
	vecmath.AddBlockInPlace(dst, wet)
}

// Widen implements Backend. Conversion has no vector kernel and runs scalar.
func (v *Vector) Widen(dst []float64, src []float32) {
	Reference{}.Widen(dst, src)
}

// Narrow implements Backend.
func (v *Vector) Narrow(dst []float32, src []float64) {
	Reference{}.Narrow(dst, src)
}
