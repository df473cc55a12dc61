package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Centroid returns the magnitude-weighted mean frequency in Hz, or 0 for a
// silent or mismatched spectrum.
func Centroid(freqs, magnitude []float64) float64 {
	if validatePair(freqs, magnitude) != nil {
		return 0
	}

	sum := floats.Sum(magnitude)
	if sum == 0 {
		return 0
	}

	return floats.Dot(freqs, magnitude) / sum
}

// Spread returns the magnitude-weighted standard deviation of frequency
// around the centroid.
func Spread(freqs, magnitude []float64) float64 {
	if validatePair(freqs, magnitude) != nil {
		return 0
	}

	sum := floats.Sum(magnitude)
	if sum == 0 {
		return 0
	}

	cent := floats.Dot(freqs, magnitude) / sum

	var acc float64
	for i, m := range magnitude {
		d := freqs[i] - cent
		acc += d * d * m
	}

	return math.Sqrt(acc / sum)
}

// Flatness returns the spectral flatness (Wiener entropy) in [0, 1]:
// geometric mean over arithmetic mean of bins 1..N-1. Any zero bin makes the
// geometric mean and therefore the flatness zero.
func Flatness(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	bins := magnitude[1:]

	mean := floats.Sum(bins) / float64(len(bins))
	if mean == 0 {
		return 0
	}

	var sumLog float64
	for _, v := range bins {
		if v <= 0 {
			return 0
		}

		sumLog += math.Log(v)
	}

	return math.Exp(sumLog/float64(len(bins))) / mean
}

// Bandwidth3dB returns the width in Hz of the region around the spectral
// peak where magnitude stays above peak/sqrt(2). Edges are linearly
// interpolated between bins; a region touching the spectrum boundary ends at
// that boundary.
func Bandwidth3dB(freqs, magnitude []float64) float64 {
	if validatePair(freqs, magnitude) != nil || len(magnitude) < 2 {
		return 0
	}

	peak := floats.MaxIdx(magnitude)
	if magnitude[peak] == 0 {
		return 0
	}

	threshold := magnitude[peak] / math.Sqrt2

	lower := freqs[0]
	for i := peak; i >= 1; i-- {
		if magnitude[i-1] <= threshold {
			lower = crossing(freqs[i-1], freqs[i], magnitude[i-1], magnitude[i], threshold)
			break
		}
	}

	upper := freqs[len(freqs)-1]
	for i := peak; i < len(magnitude)-1; i++ {
		if magnitude[i+1] <= threshold {
			upper = crossing(freqs[i], freqs[i+1], magnitude[i], magnitude[i+1], threshold)
			break
		}
	}

	return max(upper-lower, 0)
}

// crossing interpolates the frequency where magnitude passes threshold
// between two neighbouring bins.
func crossing(f0, f1, m0, m1, threshold float64) float64 {
	if m1 == m0 {
		return (f0 + f1) / 2
	}

	t := (threshold - m0) / (m1 - m0)

	return f0 + t*(f1-f0)
}
