package effects

import (
	"math"

	"github.com/karatoken/karafx/dsp/backend"
	"github.com/karatoken/karafx/dsp/core"
	"github.com/karatoken/karafx/dsp/delay"
)

const (
	DefaultReverbDecay   = 0.5
	DefaultReverbSeconds = 2.0

	minReverbSeconds = 0.1
	maxReverbSeconds = 10.0

	reverbDryMix = 0.7
	reverbWetMix = 0.3
)

// Reverb is a single-tap feedback comb:
//
//	wet[i] = dry[i] + wet[i-delay]*decay
//	out[i] = 0.7*dry[i] + 0.3*wet[i]
//
// with delay = floor(sampleRate*seconds). The delay line persists until
// Reset, so whether feedback crosses block boundaries is decided by the
// caller. With Reverse set each processed block is emitted back to front.
type Reverb struct {
	decay   float64
	seconds float64
	reverse bool

	delaySamples int
	line         *delay.Line
	wet          []float64
	backend      backend.Backend
}

// NewReverb builds a reverb. decay is clamped to [0,1] and seconds to
// [0.1,10]; non-finite values fall back to the defaults (0.5, 2s).
func NewReverb(sampleRate, decay, seconds float64, reverse bool, be backend.Backend) (*Reverb, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, core.ErrInvalidConfiguration.New("reverb sample rate must be positive and finite: %f", sampleRate)
	}
	if be == nil {
		be = backend.Reference{}
	}

	r := &Reverb{
		decay:   core.ClampOr(decay, 0, 1, DefaultReverbDecay),
		seconds: core.ClampOr(seconds, minReverbSeconds, maxReverbSeconds, DefaultReverbSeconds),
		reverse: reverse,
		backend: be,
	}

	r.delaySamples = int(math.Floor(sampleRate * r.seconds))
	if r.delaySamples < 1 {
		r.delaySamples = 1
	}

	line, err := delay.New(r.delaySamples)
	if err != nil {
		return nil, err
	}
	r.line = line

	return r, nil
}

// Decay returns the effective feedback gain.
func (r *Reverb) Decay() float64 { return r.decay }

// Seconds returns the effective delay time.
func (r *Reverb) Seconds() float64 { return r.seconds }

// Reverse reports whether blocks are emitted reversed.
func (r *Reverb) Reverse() bool { return r.reverse }

// DelaySamples returns the comb delay in samples.
func (r *Reverb) DelaySamples() int { return r.delaySamples }

// Process applies the reverb to block in place.
func (r *Reverb) Process(block []float64) {
	if len(block) == 0 {
		return
	}

	r.wet = core.EnsureLen(r.wet, len(block))
	wet := r.wet

	for i, x := range block {
		w := x + core.FlushDenormals(r.line.Tail()*r.decay)
		r.line.Write(w)
		wet[i] = w
	}

	r.backend.Mix(block, block, wet, reverbDryMix, reverbWetMix)

	if r.reverse {
		core.Reverse(block)
	}
}

// Reset clears the delay line.
func (r *Reverb) Reset() {
	r.line.Reset()
}
