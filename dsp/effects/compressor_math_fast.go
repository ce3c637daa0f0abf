//go:build fastmath

package effects

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// ln10 is the natural logarithm of 10, used for dB base conversions.
const ln10 = 2.30258509299404568401799145468

// ampToDB converts a non-negative amplitude to dB using a fast logarithm.
func ampToDB(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return 20 * approx.FastLog(x) / ln10
}

// dbToAmp converts dB to linear amplitude using a fast exponential.
func dbToAmp(db float64) float64 {
	return approx.FastExp(db * ln10 / 20)
}
