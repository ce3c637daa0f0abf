//go:build !fastmath

package effects

import "github.com/karatoken/karafx/dsp/core"

// ampToDB converts a non-negative amplitude to dB; zero maps to -Inf.
func ampToDB(x float64) float64 {
	return core.LinearToDB(x)
}

// dbToAmp converts dB to linear amplitude.
func dbToAmp(db float64) float64 {
	return core.DBToLinear(db)
}
