// Package spectrum estimates the spectral content of processed audio.
//
// An Analyzer windows a frame of float32 samples, runs it through an
// algo-fft plan and reduces the bins to magnitudes with the algo-vecmath
// kernels. It is used to check pitch shifting and to report the dominant
// frequency of a render.
package spectrum
