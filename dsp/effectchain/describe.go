package effectchain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/karatoken/karafx/dsp/core"
)

// Description is the wire form of one chain entry:
//
//	{"type": "reverb", "value": {"decay": 0.4, "seconds": 1.5, "reverse": false}}
//	{"type": "pitchShift", "value": 3}
//
// value is either an object of named parameters or a bare number standing
// for the primary parameter (semitones, decay, frequency, threshold).
type Description struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// ParseChain decodes a JSON array of descriptions into an effect chain.
// Unknown types decode to Unknown; malformed JSON is an
// ErrInvalidConfiguration.
func ParseChain(data []byte) ([]Effect, error) {
	var descs []Description

	err := json.Unmarshal(data, &descs)
	if err != nil {
		return nil, core.ErrInvalidConfiguration.Wrap(err, "effectchain: decode chain")
	}

	out := make([]Effect, 0, len(descs))
	for i, d := range descs {
		p, err := d.Params()
		if err != nil {
			return nil, core.ErrInvalidConfiguration.Wrap(err, "effectchain: entry %d (%s)", i, d.Type)
		}
		out = append(out, FromParams(p))
	}

	return out, nil
}

// Params flattens the description value into typed parameter maps. Keys are
// lower-cased; an exact lower-case key takes precedence over other
// spellings, and differently cased duplicates without one are rejected.
func (d Description) Params() (Params, error) {
	p := Params{
		Type: normalizeEffectType(d.Type),
		Num:  map[string]float64{},
		Bool: map[string]bool{},
	}

	raw := bytes.TrimSpace(d.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return p, nil
	}

	if raw[0] != '{' {
		var v float64

		err := json.Unmarshal(raw, &v)
		if err != nil {
			return Params{}, err
		}
		p.Num[primaryParam(p.Type)] = v

		return p, nil
	}

	var fields map[string]any

	err := json.Unmarshal(raw, &fields)
	if err != nil {
		return Params{}, err
	}

	// Exact lower-case keys win over other spellings of the same name.
	// Two non-exact spellings with no exact key are ambiguous.
	claimed := make(map[string]string, len(fields))
	for k := range fields {
		if key := strings.ToLower(k); key == k {
			claimed[key] = k
		}
	}

	for k := range fields {
		key := strings.ToLower(k)
		prev, ok := claimed[key]
		switch {
		case !ok:
			claimed[key] = k
		case prev != k && prev != key:
			return Params{}, core.ErrInvalidConfiguration.New(
				"effectchain: parameter %q given as both %q and %q", key, prev, k)
		}
	}

	for key, k := range claimed {
		switch tv := fields[k].(type) {
		case float64:
			p.Num[key] = tv
		case bool:
			p.Bool[key] = tv
		}
	}

	return p, nil
}

// FromParams builds the typed Effect for p. Missing parameters take the
// variant defaults.
func FromParams(p Params) Effect {
	switch p.Type {
	case TypePitchShift:
		return PitchShift{Semitones: p.GetNum("semitones", 0)}
	case TypeReverb:
		def := DefaultReverb()
		return Reverb{
			Decay:   p.GetNum("decay", def.Decay),
			Seconds: p.GetNum("seconds", def.Seconds),
			Reverse: p.GetBool("reverse", false),
		}
	case TypeEQ:
		return EQ{Frequency: p.GetNum("frequency", DefaultEQ().Frequency)}
	case TypeCompressor:
		def := DefaultCompressor()
		return Compressor{
			ThresholdDB:    p.GetNum("threshold", p.GetNum("thresholddb", def.ThresholdDB)),
			Ratio:          p.GetNum("ratio", def.Ratio),
			AttackSeconds:  p.GetNum("attack", p.GetNum("attackseconds", def.AttackSeconds)),
			ReleaseSeconds: p.GetNum("release", p.GetNum("releaseseconds", def.ReleaseSeconds)),
		}
	default:
		return Unknown{Type: p.Type, Params: p}
	}
}
