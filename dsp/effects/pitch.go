package effects

import (
	"math"

	"github.com/karatoken/karafx/dsp/core"
	"github.com/karatoken/karafx/dsp/interp"
)

// PitchShifter changes pitch by resampling each block.
//
// A block of n samples is resized to max(1, floor(n/ratio)) samples, which
// raises the pitch for ratio > 1, and is then conformed back to n samples:
// the resampled signal is truncated when it is longer and tiled cyclically
// when it is shorter. Block duration is therefore unchanged.
type PitchShifter struct {
	semitones float64
	ratio     float64
	scratch   []float64
}

// NewPitchShifter returns a shifter for the given interval in semitones.
// Non-finite intervals are treated as 0; the interval is limited to
// ±core.MaxSemitones.
func NewPitchShifter(semitones float64) *PitchShifter {
	s := core.ClampOr(semitones, -core.MaxSemitones, core.MaxSemitones, 0)
	return &PitchShifter{
		semitones: s,
		ratio:     core.SemitonesToRatio(s),
	}
}

// Semitones returns the effective interval.
func (p *PitchShifter) Semitones() float64 { return p.semitones }

// Ratio returns the frequency ratio 2^(semitones/12).
func (p *PitchShifter) Ratio() float64 { return p.ratio }

// ResampledLen returns the intermediate length used for a block of n samples.
func (p *PitchShifter) ResampledLen(n int) int {
	if n <= 0 {
		return 0
	}
	m := int(math.Floor(float64(n) / p.ratio))
	if m < 1 {
		m = 1
	}
	return m
}

// Process shifts block in place.
func (p *PitchShifter) Process(block []float64) {
	n := len(block)
	if n == 0 || p.semitones == 0 {
		return
	}

	m := p.ResampledLen(n)
	p.scratch = core.EnsureLen(p.scratch, m)
	resampled := p.scratch
	interp.ResizeLinear(resampled, block)

	for i := range block {
		block[i] = resampled[i%m]
	}
}

// Reset is a no-op; the shifter keeps no signal state between blocks.
func (p *PitchShifter) Reset() {}
