package backend

// Backend is a numeric strategy for block operations.
//
// Implementations must be safe for concurrent use; they carry no mutable
// state of their own.
type Backend interface {
	// Name identifies the strategy (e.g. "reference", "vecmath-avx2").
	Name() string

	// Scale computes dst[i] = src[i] * gain. dst may alias src.
	Scale(dst, src []float64, gain float64)

	// Mix computes dst[i] = dry[i]*dryGain + wet[i]*wetGain.
	// dst may alias dry. wet is used as scratch and is overwritten.
	Mix(dst, dry, wet []float64, dryGain, wetGain float64)

	// Widen converts float32 samples to float64.
	Widen(dst []float64, src []float32)

	// Narrow converts float64 samples to float32.
	Narrow(dst []float32, src []float64)
}

// Select returns the Vector backend when accelerate is set and Reference
// otherwise.
func Select(accelerate bool) (Backend, error) {
	if !accelerate {
		return Reference{}, nil
	}

	v, err := NewVector()
	if err != nil {
		return nil, err
	}

	return v, nil
}

func checkLen(op string, a, b int) {
	if a != b {
		panic("backend: " + op + ": slice length mismatch")
	}
}
