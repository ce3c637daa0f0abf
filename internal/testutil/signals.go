package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// To32 converts a float64 signal to float32 samples.
func To32(signal []float64) []float32 {
	out := make([]float32, len(signal))
	for i, v := range signal {
		out[i] = float32(v)
	}
	return out
}

// Sine32 generates a deterministic float32 sine wave.
func Sine32(freqHz, sampleRate, amplitude float64, length int) []float32 {
	return To32(DeterministicSine(freqHz, sampleRate, amplitude, length))
}

// Noise32 generates deterministic float32 white noise.
func Noise32(seed int64, amplitude float64, length int) []float32 {
	return To32(DeterministicNoise(seed, amplitude, length))
}
