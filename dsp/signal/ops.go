package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Mix sums signals sample by sample. Shorter inputs are treated as zero
// beyond their end, so the result is as long as the longest input.
func Mix(signals ...[]float64) []float64 {
	n := 0
	for _, s := range signals {
		n = max(n, len(s))
	}

	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	for _, s := range signals {
		floats.Add(out[:len(s)], s)
	}

	return out
}

// Normalize returns a copy of data scaled so its peak absolute value equals
// targetPeak. An all-zero input stays zero.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 || math.IsNaN(targetPeak) || math.IsInf(targetPeak, 0) {
		return nil, fmt.Errorf("signal: normalize target peak must be finite and >= 0: %v: %w", targetPeak, core.ErrInvalidInput)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty: %w", core.ErrInvalidInput)
	}

	out := make([]float64, len(data))

	peak := core.PeakAbs(data)
	if peak == 0 || targetPeak == 0 {
		return out, nil
	}

	floats.ScaleTo(out, targetPeak/peak, data)

	return out, nil
}

// Decimate keeps every step-th sample of x, with step = ceil(len(x)/maxPoints),
// so at most maxPoints samples remain. It returns the kept samples and the
// step; a step of 1 means x was short enough and the result is a copy.
func Decimate(x []float64, maxPoints int) ([]float64, int) {
	if len(x) == 0 || maxPoints <= 0 {
		return nil, 1
	}

	step := (len(x) + maxPoints - 1) / maxPoints
	out := make([]float64, 0, (len(x)+step-1)/step)

	for i := 0; i < len(x); i += step {
		out = append(out, x[i])
	}

	return out, step
}
