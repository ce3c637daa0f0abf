package effectchain

import (
	"testing"

	"github.com/joomcode/errorx"
	"github.com/karatoken/karafx/dsp/core"
)

func TestParseChain(t *testing.T) {
	t.Parallel()

	raw := []byte(`[
		{"type": "pitchShift", "value": 2},
		{"type": "reverb", "value": {"decay": 0.25, "seconds": 1, "reverse": true}},
		{"type": "EQ", "value": {"frequency": 800}},
		{"type": "compressor", "value": {"threshold": -18, "ratio": 6, "attack": 0.01, "release": 0.1}},
		{"type": "vocoder", "value": {"bands": 16}}
	]`)

	fx, err := ParseChain(raw)
	if err != nil {
		t.Fatalf("ParseChain() error = %v", err)
	}

	want := []Effect{
		PitchShift{Semitones: 2},
		Reverb{Decay: 0.25, Seconds: 1, Reverse: true},
		EQ{Frequency: 800},
		Compressor{ThresholdDB: -18, Ratio: 6, AttackSeconds: 0.01, ReleaseSeconds: 0.1},
	}

	if len(fx) != 5 {
		t.Fatalf("len = %d, want 5", len(fx))
	}

	for i, w := range want {
		if fx[i] != w {
			t.Errorf("effect %d = %#v, want %#v", i, fx[i], w)
		}
	}

	unknown, ok := fx[4].(Unknown)
	if !ok {
		t.Fatalf("effect 4 = %T, want Unknown", fx[4])
	}

	if unknown.Type != "vocoder" || unknown.Params.GetNum("bands", 0) != 16 {
		t.Errorf("unexpected unknown effect %#v", unknown)
	}
}

func TestParseChainDefaults(t *testing.T) {
	t.Parallel()

	fx, err := ParseChain([]byte(`[
		{"type": "reverb"},
		{"type": "compressor", "value": null},
		{"type": "eq", "value": {}},
		{"type": "pitch-shift"}
	]`))
	if err != nil {
		t.Fatal(err)
	}

	want := []Effect{DefaultReverb(), DefaultCompressor(), DefaultEQ(), PitchShift{}}
	for i, w := range want {
		if fx[i] != w {
			t.Errorf("effect %d = %#v, want %#v", i, fx[i], w)
		}
	}
}

func TestParseChainBareValues(t *testing.T) {
	t.Parallel()

	fx, err := ParseChain([]byte(`[
		{"type": "reverb", "value": 0.5},
		{"type": "compressor", "value": -30},
		{"type": "eq", "value": 250}
	]`))
	if err != nil {
		t.Fatal(err)
	}

	rv := DefaultReverb()
	rv.Decay = 0.5

	comp := DefaultCompressor()
	comp.ThresholdDB = -30

	want := []Effect{rv, comp, EQ{Frequency: 250}}
	for i, w := range want {
		if fx[i] != w {
			t.Errorf("effect %d = %#v, want %#v", i, fx[i], w)
		}
	}
}

func TestParseChainAliases(t *testing.T) {
	t.Parallel()

	fx, err := ParseChain([]byte(`[
		{"type": "compressor", "value": {"thresholdDb": -12, "attackSeconds": 0.02, "releaseSeconds": 0.5}}
	]`))
	if err != nil {
		t.Fatal(err)
	}

	got := fx[0].(Compressor)
	if got.ThresholdDB != -12 || got.AttackSeconds != 0.02 || got.ReleaseSeconds != 0.5 {
		t.Errorf("unexpected compressor %#v", got)
	}
}

func TestParseChainErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `not json`},
		{"not an array", `{"type": "eq"}`},
		{"string value", `[{"type": "eq", "value": "loud"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseChain([]byte(tt.raw))
			if !errorx.IsOfType(err, core.ErrInvalidConfiguration) {
				t.Fatalf("ParseChain(%s) error = %v, want invalid configuration", tt.raw, err)
			}
		})
	}
}

func TestNormalizeEffectType(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"pitchShift":  TypePitchShift,
		" PITCH ":     TypePitchShift,
		"pitch_shift": TypePitchShift,
		"Reverb":      TypeReverb,
		"equalizer":   TypeEQ,
		"comp":        TypeCompressor,
		" Flanger ":   "Flanger",
	}

	for in, want := range tests {
		if got := normalizeEffectType(in); got != want {
			t.Errorf("normalizeEffectType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDescriptionParamsCaseCollisions(t *testing.T) {
	t.Parallel()

	d := Description{Type: "reverb", Value: []byte(`{"Decay": 0.9, "decay": 0.2, "DECAY": 0.7, "Seconds": 3}`)}

	// Repeat to cover map iteration order.
	for range 50 {
		p, err := d.Params()
		if err != nil {
			t.Fatalf("Params() error = %v", err)
		}
		if got := p.GetNum("decay", -1); got != 0.2 {
			t.Fatalf("decay = %v, want exact-case value 0.2", got)
		}
		if got := p.GetNum("seconds", -1); got != 3 {
			t.Fatalf("seconds = %v, want 3", got)
		}
	}
}

func TestDescriptionParamsAmbiguousCase(t *testing.T) {
	t.Parallel()

	_, err := ParseChain([]byte(`[{"type": "reverb", "value": {"Decay": 0.9, "DECAY": 0.7}}]`))
	if !errorx.IsOfType(err, core.ErrInvalidConfiguration) {
		t.Fatalf("ParseChain() error = %v, want invalid configuration", err)
	}
}
