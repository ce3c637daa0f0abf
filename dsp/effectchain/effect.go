package effectchain

import "github.com/karatoken/karafx/dsp/effects"

// Kind tags an Effect variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindPitchShift
	KindReverb
	KindEQ
	KindCompressor
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPitchShift:
		return TypePitchShift
	case KindReverb:
		return TypeReverb
	case KindEQ:
		return TypeEQ
	case KindCompressor:
		return TypeCompressor
	default:
		return "unknown"
	}
}

// Effect is one entry of an effect chain. The set of variants is closed:
// PitchShift, Reverb, EQ, Compressor and Unknown.
type Effect interface {
	Kind() Kind
	sealed()
}

// PitchShift transposes by Semitones using block resampling.
type PitchShift struct {
	Semitones float64
}

// Reverb is a feedback comb with Decay in [0,1] and Seconds in [0.1,10].
type Reverb struct {
	Decay   float64
	Seconds float64
	Reverse bool
}

// EQ is the one-pole smoothing filter with a fixed 2x boost. Frequency is
// carried for future band-selective behaviour.
type EQ struct {
	Frequency float64
}

// Compressor is the envelope-follower compressor.
type Compressor struct {
	ThresholdDB    float64
	Ratio          float64
	AttackSeconds  float64
	ReleaseSeconds float64
}

// Unknown preserves an effect tag this version does not understand. It
// processes as a pass-through.
type Unknown struct {
	Type   string
	Params Params
}

func (PitchShift) Kind() Kind { return KindPitchShift }
func (Reverb) Kind() Kind     { return KindReverb }
func (EQ) Kind() Kind         { return KindEQ }
func (Compressor) Kind() Kind { return KindCompressor }
func (Unknown) Kind() Kind    { return KindUnknown }

func (PitchShift) sealed() {}
func (Reverb) sealed()     {}
func (EQ) sealed()         {}
func (Compressor) sealed() {}
func (Unknown) sealed()    {}

// DefaultReverb returns the reverb used when a description gives no values.
func DefaultReverb() Reverb {
	return Reverb{Decay: effects.DefaultReverbDecay, Seconds: effects.DefaultReverbSeconds}
}

// DefaultEQ returns the EQ used when a description gives no values.
func DefaultEQ() EQ {
	return EQ{Frequency: effects.DefaultEQFrequency}
}

// DefaultCompressor returns the compressor used when a description gives no
// values: -24 dB threshold, 4:1, 3 ms attack, 250 ms release.
func DefaultCompressor() Compressor {
	return Compressor{
		ThresholdDB:    effects.DefaultCompressorThresholdDB,
		Ratio:          effects.DefaultCompressorRatio,
		AttackSeconds:  effects.DefaultCompressorAttack,
		ReleaseSeconds: effects.DefaultCompressorRelease,
	}
}
