package effectchain

import "math"

// Params holds the loosely typed parameters of one chain description entry.
type Params struct {
	Type string
	Num  map[string]float64
	Bool map[string]bool
}

// GetNum safely extracts a numeric parameter, returning def if missing or invalid.
func (p Params) GetNum(key string, def float64) float64 {
	if p.Num == nil {
		return def
	}

	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// GetBool extracts a boolean parameter, returning def if missing.
func (p Params) GetBool(key string, def bool) bool {
	v, ok := p.Bool[key]
	if !ok {
		return def
	}

	return v
}
