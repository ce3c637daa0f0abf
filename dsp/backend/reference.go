package backend

// Reference is the pure-Go strategy.
type Reference struct{}

// Name implements Backend.
func (Reference) Name() string { return "reference" }

// Scale implements Backend.
func (Reference) Scale(dst, src []float64, gain float64) {
	checkLen("Scale", len(dst), len(src))
	for i, v := range src {
		dst[i] = v * gain
	}
}

// Mix implements Backend.
func (Reference) Mix(dst, dry, wet []float64, dryGain, wetGain float64) {
	checkLen("Mix", len(dst), len(dry))
	checkLen("Mix", len(dst), len(wet))
	for i := range dst {
		dst[i] = dry[i]*dryGain + wet[i]*wetGain
	}
}

// Widen implements Backend.
func (Reference) Widen(dst []float64, src []float32) {
	checkLen("Widen", len(dst), len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
}

// Narrow implements Backend.
func (Reference) Narrow(dst []float32, src []float64) {
	checkLen("Narrow", len(dst), len(src))
	for i, v := range src {
		dst[i] = float32(v)
	}
}
