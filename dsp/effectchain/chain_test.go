package effectchain

import (
	"math"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/karatoken/karafx/dsp/backend"
	"github.com/karatoken/karafx/dsp/core"
	"github.com/karatoken/karafx/dsp/effects"
)

const testSampleRate = 1000.0

func testCtx() Context {
	return Context{SampleRate: testSampleRate}
}

func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i%7)/7 - 0.4
	}

	return out
}

func TestChainNew(t *testing.T) {
	t.Parallel()

	c, err := New(testCtx(), []Effect{PitchShift{Semitones: 3}, DefaultEQ()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	if len(c.Skipped()) != 0 {
		t.Errorf("Skipped() = %v, want none", c.Skipped())
	}

	if _, ok := c.Context().Backend.(backend.Reference); !ok {
		t.Errorf("nil backend should default to Reference, got %T", c.Context().Backend)
	}

	if _, ok := c.Runtime(0).(*effects.PitchShifter); !ok {
		t.Errorf("Runtime(0) = %T, want *effects.PitchShifter", c.Runtime(0))
	}

	if c.Runtime(2) != nil || c.Runtime(-1) != nil {
		t.Error("out of range Runtime should be nil")
	}
}

func TestChainNewInvalidSampleRate(t *testing.T) {
	t.Parallel()

	for _, sr := range []float64{0, -44100, math.NaN(), math.Inf(1)} {
		_, err := New(Context{SampleRate: sr}, nil)
		if !errorx.IsOfType(err, core.ErrInvalidConfiguration) {
			t.Errorf("New(sampleRate=%v) error = %v, want invalid configuration", sr, err)
		}
	}
}

func TestChainEmptyIsIdentity(t *testing.T) {
	t.Parallel()

	c, err := New(testCtx(), nil)
	if err != nil {
		t.Fatal(err)
	}

	block := ramp(64)
	want := append([]float64(nil), block...)
	c.Process(block)

	for i := range block {
		if block[i] != want[i] {
			t.Fatalf("sample %d changed: %v -> %v", i, want[i], block[i])
		}
	}
}

func TestChainUnsupportedIsPassThrough(t *testing.T) {
	t.Parallel()

	c, err := New(testCtx(), []Effect{Unknown{Type: "flanger"}, nil})
	if err != nil {
		t.Fatal(err)
	}

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	skipped := c.Skipped()
	if len(skipped) != 2 {
		t.Fatalf("Skipped() = %v, want 2 entries", skipped)
	}

	for _, err := range skipped {
		if !errorx.IsOfType(err, core.ErrUnsupportedEffect) {
			t.Errorf("skipped error %v is not unsupported effect", err)
		}
	}

	block := ramp(32)
	want := append([]float64(nil), block...)
	c.Process(block)

	for i := range block {
		if block[i] != want[i] {
			t.Fatalf("pass-through changed sample %d", i)
		}
	}
}

func TestChainOrderMatters(t *testing.T) {
	t.Parallel()

	rv := Reverb{Decay: 0.5, Seconds: 0.1}
	a, err := New(testCtx(), []Effect{rv, PitchShift{Semitones: 7}})
	if err != nil {
		t.Fatal(err)
	}

	b, err := New(testCtx(), []Effect{PitchShift{Semitones: 7}, rv})
	if err != nil {
		t.Fatal(err)
	}

	x := ramp(512)
	y := append([]float64(nil), x...)
	a.Process(x)
	b.Process(y)

	same := true
	for i := range x {
		if x[i] != y[i] {
			same = false
			break
		}
	}

	if same {
		t.Error("reversing the chain order should change the output")
	}
}

func TestChainMatchesManualComposition(t *testing.T) {
	t.Parallel()

	c, err := New(testCtx(), []Effect{PitchShift{Semitones: -5}, DefaultEQ()})
	if err != nil {
		t.Fatal(err)
	}

	block := ramp(300)
	want := append([]float64(nil), block...)

	effects.NewPitchShifter(-5).Process(want)
	effects.NewEQ(1000, nil).Process(want)

	c.Process(block)

	for i := range block {
		if block[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, block[i], want[i])
		}
	}
}

func TestChainReset(t *testing.T) {
	t.Parallel()

	c, err := New(testCtx(), []Effect{DefaultEQ(), DefaultCompressor()})
	if err != nil {
		t.Fatal(err)
	}

	first := ramp(128)
	c.Process(first)

	c.Reset()

	second := ramp(128)
	c.Process(second)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("after Reset sample %d = %v, want %v", i, second[i], first[i])
		}
	}
}

func TestChainFromDescription(t *testing.T) {
	t.Parallel()

	fx, err := ParseChain([]byte(`[{"type": "reverb", "value": {"seconds": 0.05}}, {"type": "chorus"}]`))
	if err != nil {
		t.Fatal(err)
	}

	c, err := New(testCtx(), fx)
	if err != nil {
		t.Fatal(err)
	}

	rv, ok := c.Runtime(0).(*effects.Reverb)
	if !ok {
		t.Fatalf("Runtime(0) = %T, want *effects.Reverb", c.Runtime(0))
	}

	// seconds is clamped to the 0.1 s minimum.
	if rv.DelaySamples() != 100 {
		t.Errorf("DelaySamples() = %d, want 100", rv.DelaySamples())
	}

	if len(c.Skipped()) != 1 {
		t.Errorf("Skipped() = %v, want 1 entry", c.Skipped())
	}
}
