package core

import "math"

const defaultEpsilon = 1e-12

// MagnitudeFloor is added to linear magnitudes and powers before taking a
// logarithm so that silent bins map to a finite dB value.
const MagnitudeFloor = 1e-10

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// AmplitudeToDB converts a linear magnitude to dB using 20*log10(v + floor).
// Zero maps to 20*log10(floor) instead of -Inf.
func AmplitudeToDB(v float64) float64 {
	return 20 * log10(v+MagnitudeFloor)
}

// PowerToDB converts a linear power to dB using 10*log10(p + floor).
func PowerToDB(p float64) float64 {
	return 10 * log10(p+MagnitudeFloor)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// PeakAbs returns max(|x|) over signal, or 0 for an empty slice.
func PeakAbs(signal []float64) float64 {
	peak := 0.0
	for _, v := range signal {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	return peak
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
