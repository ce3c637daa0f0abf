package effects

import "github.com/karatoken/karafx/dsp/backend"

const (
	DefaultEQFrequency = 1000.0

	eqAlpha = 0.1
	eqBoost = 2.0
)

// EQ is a one-pole smoothing filter followed by a fixed 2x boost:
//
//	y[i] = 0.1*x[i] + 0.9*x[i-1] + 0.9*y[i-1]
//	out[i] = 2*y[i]
//
// The centre frequency is recorded but does not yet shape the response.
type EQ struct {
	frequency float64
	x1, y1    float64
	backend   backend.Backend
}

// NewEQ returns an EQ with zeroed filter state.
func NewEQ(frequency float64, be backend.Backend) *EQ {
	if be == nil {
		be = backend.Reference{}
	}
	return &EQ{frequency: frequency, backend: be}
}

// Frequency returns the configured (reserved) centre frequency.
func (e *EQ) Frequency() float64 { return e.frequency }

// Process filters block in place.
func (e *EQ) Process(block []float64) {
	if len(block) == 0 {
		return
	}

	x1, y1 := e.x1, e.y1
	for i, x := range block {
		y := eqAlpha*x + (1-eqAlpha)*x1 + (1-eqAlpha)*y1
		x1 = x
		y1 = y
		block[i] = y
	}
	e.x1, e.y1 = x1, y1

	e.backend.Scale(block, block, eqBoost)
}

// Reset zeroes x[-1] and y[-1].
func (e *EQ) Reset() {
	e.x1, e.y1 = 0, 0
}
