package effects

import (
	"math"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/karatoken/karafx/dsp/core"
	"github.com/karatoken/karafx/internal/testutil"
)

func TestNewCompressorValidation(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		wantErr    bool
	}{
		{"valid 44100", 44100, false},
		{"valid 48000", 48000, false},
		{"invalid zero", 0, true},
		{"invalid negative", -1, true},
		{"invalid NaN", math.NaN(), true},
		{"invalid +Inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCompressor(tt.sampleRate, -24, 4, 0.003, 0.25)
			if tt.wantErr {
				if !errorx.IsOfType(err, core.ErrInvalidConfiguration) {
					t.Fatalf("error = %v, want invalid configuration", err)
				}
				return
			}
			if err != nil || c == nil {
				t.Fatalf("NewCompressor() = %v, %v", c, err)
			}
		})
	}
}

func TestCompressorParameterFallbacks(t *testing.T) {
	c, err := NewCompressor(44100, math.NaN(), math.NaN(), 0, -1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Threshold", c.Threshold(), DefaultCompressorThresholdDB},
		{"Ratio", c.Ratio(), DefaultCompressorRatio},
		{"Attack", c.Attack(), DefaultCompressorAttack},
		{"Release", c.Release(), DefaultCompressorRelease},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	low, _ := NewCompressor(44100, -24, 0.5, 0.003, 0.25)
	if low.Ratio() != 1 {
		t.Fatalf("Ratio() = %v, want 1 for sub-unity input", low.Ratio())
	}
}

func TestCompressorSilence(t *testing.T) {
	c, _ := NewCompressor(44100, -24, 4, 0.003, 0.25)

	block := make([]float64, 4096)
	c.Process(block)

	testutil.RequireSliceNearlyEqual(t, block, make([]float64, len(block)), 0)
	if c.Envelope() != 0 {
		t.Fatalf("Envelope() = %v, want 0", c.Envelope())
	}
}

func TestCompressorBelowThresholdIsUntouched(t *testing.T) {
	c, _ := NewCompressor(44100, -24, 4, 0.003, 0.25)

	// -40 dBFS peak never reaches the -24 dB threshold.
	in := testutil.DeterministicSine(440, 44100, 0.01, 8192)
	block := append([]float64(nil), in...)
	c.Process(block)

	testutil.RequireSliceNearlyEqual(t, block, in, 0)
}

func TestCompressorSteadyStateGain(t *testing.T) {
	c, _ := NewCompressor(44100, -24, 4, 0.003, 0.25)

	block := testutil.DC(1, 44100)
	c.Process(block)

	// Envelope settles at 0 dB: (−24 − 0) * (1 − 1/4) = −18 dB.
	want := core.DBToLinear(-18)
	if got := block[len(block)-1]; math.Abs(got-want) > 1e-3 {
		t.Fatalf("steady-state output = %v, want %v", got, want)
	}
}

func TestCompressorUnityRatioIsTransparent(t *testing.T) {
	c, _ := NewCompressor(44100, -40, 1, 0.001, 0.1)

	in := testutil.DeterministicSine(220, 44100, 1, 4096)
	block := append([]float64(nil), in...)
	c.Process(block)

	testutil.RequireSliceNearlyEqual(t, block, in, 1e-12)
}

func TestCompressorReset(t *testing.T) {
	c, _ := NewCompressor(44100, -24, 4, 0.003, 0.25)
	c.Process(testutil.DC(1, 512))

	if c.Envelope() == 0 {
		t.Fatal("envelope should rise on loud input")
	}

	c.Reset()
	if c.Envelope() != 0 {
		t.Fatalf("Envelope() after Reset = %v, want 0", c.Envelope())
	}
}

func TestCompressorEnvelopeFlushesToZero(t *testing.T) {
	c, err := NewCompressor(1000, -24, 4, 0.001, 0.001)
	if err != nil {
		t.Fatal(err)
	}

	c.Process([]float64{1})
	c.Process(make([]float64, 100))

	if c.Envelope() != 0 {
		t.Fatalf("Envelope() after long silence = %g, want exact 0", c.Envelope())
	}
}
