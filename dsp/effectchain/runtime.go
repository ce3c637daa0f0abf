package effectchain

// Runtime is the per-effect processing contract. Process transforms a block
// in place without changing its length; Reset clears carried state.
type Runtime interface {
	Process(block []float64)
	Reset()
}

// passthrough stands in for effects that cannot be built.
type passthrough struct{}

func (passthrough) Process([]float64) {}
func (passthrough) Reset()            {}
