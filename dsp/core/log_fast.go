//go:build fastmath

package core

import "github.com/meko-christian/algo-approx"

// ln10 is the natural logarithm of 10.
const ln10 = 2.30258509299404568401799145468

// log10 computes log10(x) from a fast natural-log approximation. Selected
// with the fastmath build tag for dB-heavy paths such as spectrograms.
func log10(x float64) float64 {
	return approx.FastLog(x) / ln10
}
