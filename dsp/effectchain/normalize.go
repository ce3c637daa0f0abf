package effectchain

import "strings"

// Wire names of the effect types.
const (
	TypePitchShift = "pitchShift"
	TypeReverb     = "reverb"
	TypeEQ         = "eq"
	TypeCompressor = "compressor"
)

// normalizeEffectType maps spelling variants onto a wire name. Unrecognised
// input is returned trimmed and otherwise untouched.
func normalizeEffectType(raw string) string {
	trimmed := strings.TrimSpace(raw)

	switch strings.ToLower(trimmed) {
	case "pitchshift", "pitch-shift", "pitch_shift", "pitch":
		return TypePitchShift
	case "reverb":
		return TypeReverb
	case "eq", "equalizer":
		return TypeEQ
	case "compressor", "comp":
		return TypeCompressor
	default:
		return trimmed
	}
}

// primaryParam names the parameter a bare numeric "value" stands for.
func primaryParam(effectType string) string {
	switch effectType {
	case TypePitchShift:
		return "semitones"
	case TypeReverb:
		return "decay"
	case TypeEQ:
		return "frequency"
	case TypeCompressor:
		return "threshold"
	default:
		return "value"
	}
}
