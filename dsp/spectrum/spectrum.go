package spectrum

import (
	"math/bits"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/karatoken/karafx/dsp/core"
	"github.com/karatoken/karafx/dsp/window"
)

// MaxFrameSize bounds the frame chosen by DominantFrequency.
const MaxFrameSize = 1 << 16

// Analyzer computes magnitude spectra of fixed-size frames. It is not safe
// for concurrent use.
type Analyzer struct {
	size   int
	plan   *algofft.Plan[complex128]
	window []float64

	in  []complex128
	out []complex128
	re  []float64
	im  []float64
	mag []float64
}

// NewAnalyzer returns an analyzer for frames of size samples. size must be
// a power of two of at least 4.
func NewAnalyzer(size int) (*Analyzer, error) {
	if size < 4 || size&(size-1) != 0 {
		return nil, core.ErrInvalidConfiguration.New("spectrum: frame size must be a power of two >= 4: %d", size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, core.ErrNumericBackend.Wrap(err, "spectrum: create FFT plan")
	}

	bins := size/2 + 1

	return &Analyzer{
		size:   size,
		plan:   plan,
		window: window.Generate(window.TypeHann, size, window.WithPeriodic()),
		in:     make([]complex128, size),
		out:    make([]complex128, size),
		re:     make([]float64, bins),
		im:     make([]float64, bins),
		mag:    make([]float64, bins),
	}, nil
}

// Size returns the frame size.
func (a *Analyzer) Size() int { return a.size }

// BinFrequency returns the centre frequency of bin k.
func (a *Analyzer) BinFrequency(k int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(a.size)
}

// Magnitudes returns |X[k]| for k in [0, size/2] of the Hann-windowed frame.
// Frames shorter than size are zero padded, longer ones truncated. The
// returned slice is reused by the next call.
func (a *Analyzer) Magnitudes(frame []float32) ([]float64, error) {
	for i := range a.in {
		var x float64
		if i < len(frame) {
			x = float64(frame[i])
		}
		a.in[i] = complex(x*a.window[i], 0)
	}

	err := a.plan.Forward(a.out, a.in)
	if err != nil {
		return nil, core.ErrNumericBackend.Wrap(err, "spectrum: forward transform")
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}

	vecmath.Magnitude(a.mag, a.re, a.im)

	return a.mag, nil
}

// DominantFrequency returns the frequency of the strongest non-DC bin,
// refined by parabolic interpolation over its neighbours. Silence yields 0.
func (a *Analyzer) DominantFrequency(frame []float32, sampleRate float64) (float64, error) {
	mag, err := a.Magnitudes(frame)
	if err != nil {
		return 0, err
	}

	peak := 0
	for k := 1; k < len(mag); k++ {
		if mag[k] > mag[peak] || peak == 0 {
			peak = k
		}
	}

	if mag[peak] == 0 {
		return 0, nil
	}

	offset := 0.0
	if peak > 0 && peak < len(mag)-1 {
		l, c, r := mag[peak-1], mag[peak], mag[peak+1]
		if d := l - 2*c + r; d != 0 {
			offset = 0.5 * (l - r) / d
		}
	}

	return (float64(peak) + offset) * sampleRate / float64(a.size), nil
}

// DominantFrequency analyses the start of samples with the largest
// power-of-two frame that fits, up to MaxFrameSize.
func DominantFrequency(samples []float32, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return 0, core.ErrInvalidConfiguration.New("spectrum: sample rate must be positive and finite: %f", sampleRate)
	}

	size := FrameSizeFor(len(samples))
	if size == 0 {
		return 0, nil
	}

	a, err := NewAnalyzer(size)
	if err != nil {
		return 0, err
	}

	return a.DominantFrequency(samples, sampleRate)
}

// FrameSizeFor returns the largest power of two <= n, capped at
// MaxFrameSize, or 0 when n < 4.
func FrameSizeFor(n int) int {
	if n < 4 {
		return 0
	}
	if n >= MaxFrameSize {
		return MaxFrameSize
	}

	return 1 << (bits.Len(uint(n)) - 1)
}
