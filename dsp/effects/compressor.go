package effects

import (
	"math"

	"github.com/karatoken/karafx/dsp/core"
)

const (
	DefaultCompressorThresholdDB = -24.0
	DefaultCompressorRatio       = 4.0
	DefaultCompressorAttack      = 0.003
	DefaultCompressorRelease     = 0.25

	minCompressorRatio = 1.0
)

// Compressor is a hard-knee downward compressor driven by a peak envelope
// follower. The follower uses the attack coefficient while the rectified
// input exceeds the envelope and the release coefficient otherwise. While
// the envelope sits above the threshold the sample is scaled by
//
//	(threshold - envelopeDB) * (1 - 1/ratio)  dB
//
// and below it the sample passes through untouched.
type Compressor struct {
	thresholdDB float64
	ratio       float64
	attack      float64
	release     float64

	attackCoeff  float64
	releaseCoeff float64
	slope        float64

	envelope float64
}

// NewCompressor builds a compressor. Non-finite thresholds and ratios fall
// back to the defaults, ratios below 1 are raised to 1, and non-positive or
// non-finite times fall back to the default attack and release.
func NewCompressor(sampleRate, thresholdDB, ratio, attackSeconds, releaseSeconds float64) (*Compressor, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, core.ErrInvalidConfiguration.New("compressor sample rate must be positive and finite: %f", sampleRate)
	}

	c := &Compressor{
		thresholdDB: DefaultCompressorThresholdDB,
		ratio:       DefaultCompressorRatio,
		attack:      core.PositiveOr(attackSeconds, DefaultCompressorAttack),
		release:     core.PositiveOr(releaseSeconds, DefaultCompressorRelease),
	}

	if core.IsFinite(thresholdDB) {
		c.thresholdDB = thresholdDB
	}
	if core.IsFinite(ratio) {
		c.ratio = math.Max(ratio, minCompressorRatio)
	}

	c.attackCoeff = math.Exp(-1 / (sampleRate * c.attack))
	c.releaseCoeff = math.Exp(-1 / (sampleRate * c.release))
	c.slope = 1 - 1/c.ratio

	return c, nil
}

// Threshold returns the threshold in dB.
func (c *Compressor) Threshold() float64 { return c.thresholdDB }

// Ratio returns the compression ratio.
func (c *Compressor) Ratio() float64 { return c.ratio }

// Attack returns the attack time in seconds.
func (c *Compressor) Attack() float64 { return c.attack }

// Release returns the release time in seconds.
func (c *Compressor) Release() float64 { return c.release }

// Envelope returns the current follower level (linear).
func (c *Compressor) Envelope() float64 { return c.envelope }

// Process compresses block in place.
func (c *Compressor) Process(block []float64) {
	env := c.envelope
	for i, x := range block {
		level := math.Abs(x)
		if env < level {
			env = c.attackCoeff*env + (1-c.attackCoeff)*level
		} else {
			env = c.releaseCoeff*env + (1-c.releaseCoeff)*level
		}

		envDB := ampToDB(env)
		if envDB > c.thresholdDB {
			block[i] = x * dbToAmp((c.thresholdDB-envDB)*c.slope)
		}
	}
	c.envelope = core.FlushDenormals(env)
}

// Reset zeroes the envelope follower.
func (c *Compressor) Reset() {
	c.envelope = 0
}
