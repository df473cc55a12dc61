//go:build !fastmath

package core

import "math"

// log10 is the exact base-10 logarithm used by the dB conversions.
func log10(x float64) float64 {
	return math.Log10(x)
}
