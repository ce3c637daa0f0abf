package core

import "math"

// MaxSemitones bounds pitch shifts to four octaves either way.
const MaxSemitones = 48.0

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampOr behaves like Clamp but returns def when value is NaN or infinite.
func ClampOr(value, min, max, def float64) float64 {
	if !IsFinite(value) {
		return def
	}

	return Clamp(value, min, max)
}

// PositiveOr returns value when it is finite and > 0, def otherwise.
func PositiveOr(value, def float64) float64 {
	if !IsFinite(value) || value <= 0 {
		return def
	}

	return value
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FlushDenormals converts tiny denormal-like values to exact zero.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// SemitonesToRatio converts an equal-tempered interval to a frequency ratio.
// Non-finite input maps to unity; the interval is limited to ±MaxSemitones.
func SemitonesToRatio(semitones float64) float64 {
	s := ClampOr(semitones, -MaxSemitones, MaxSemitones, 0)
	return math.Pow(2, s/12)
}
