// Package level meters float32 audio in the sample domain.
package level

import "github.com/chewxy/math32"

// Stats holds level statistics of one channel.
type Stats struct {
	Length        int
	Peak          float32 // max |x|
	PeakPos       int
	PeakDB        float32
	RMS           float32
	RMSDB         float32
	CrestFactor   float32 // peak / RMS (linear)
	DC            float32
	ZeroCrossings int
	// Overs counts samples with |x| > 1. The engine never clips, so these
	// are reported rather than corrected.
	Overs int
}

// ToDB converts an amplitude to dBFS: 20*log10(|a|). Zero maps to -Inf.
func ToDB(a float32) float32 {
	a = math32.Abs(a)
	if a == 0 {
		return math32.Inf(-1)
	}

	return 20 * math32.Log10(a)
}

// Calculate computes all statistics in a single pass. Sums accumulate in
// float64 so long renders do not lose precision.
func Calculate(signal []float32) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{PeakDB: math32.Inf(-1), RMSDB: math32.Inf(-1)}
	}

	var (
		sum   float64
		sumSq float64
		s     Stats
	)

	s.Length = n

	for i, x := range signal {
		a := math32.Abs(x)
		if a > s.Peak {
			s.Peak = a
			s.PeakPos = i
		}
		if a > 1 {
			s.Overs++
		}

		sum += float64(x)
		sumSq += float64(x) * float64(x)

		if i > 0 && signal[i-1]*x < 0 {
			s.ZeroCrossings++
		}
	}

	s.DC = float32(sum / float64(n))
	s.RMS = math32.Sqrt(float32(sumSq / float64(n)))
	s.PeakDB = ToDB(s.Peak)
	s.RMSDB = ToDB(s.RMS)

	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}

	return s
}

// Peak returns max |x|.
func Peak(signal []float32) float32 {
	var p float32
	for _, x := range signal {
		p = math32.Max(p, math32.Abs(x))
	}

	return p
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float32) float32 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += float64(x) * float64(x)
	}

	return math32.Sqrt(float32(sumSq / float64(len(signal))))
}

// GainReductionDB returns the RMS change from before to after in dB.
// Negative values mean the signal got quieter.
func GainReductionDB(before, after []float32) float32 {
	return ToDB(RMS(after)) - ToDB(RMS(before))
}
