// Package time summarizes a signal in the time domain.
package time

import (
	"math"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain signal statistics.
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMSDB         float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|Max|, |Min|)
	PeakDB        float64
	CrestFactor   float64 // Peak / RMS
	CrestFactorDB float64
	Energy        float64 // sum of squares
	Power         float64 // Energy / Length
	Variance      float64 // population variance
	ZeroCrossings int
}

func emptyStats() Stats {
	return Stats{
		RMSDB:  math.Inf(-1),
		PeakDB: math.Inf(-1),
	}
}

// Calculate computes all statistics of signal. An empty signal yields zero
// values with -Inf levels.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return emptyStats()
	}

	mean, variance := stat.PopMeanVariance(signal, nil)
	energy := floats.Dot(signal, signal)
	rms := math.Sqrt(energy / float64(n))

	maxPos, minPos := floats.MaxIdx(signal), floats.MinIdx(signal)
	maxVal, minVal := signal[maxPos], signal[minPos]
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:        n,
		DC:            mean,
		RMS:           rms,
		RMSDB:         core.LinearPowerToDB(energy / float64(n)),
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          peak,
		PeakDB:        core.LinearPowerToDB(peak * peak),
		CrestFactor:   crest,
		CrestFactorDB: crestDB(crest),
		Energy:        energy,
		Power:         energy / float64(n),
		Variance:      variance,
		ZeroCrossings: ZeroCrossings(signal),
	}
}

func crestDB(crest float64) float64 {
	if crest == 0 {
		return 0
	}

	return 20 * math.Log10(crest)
}

// RMS returns the root-mean-square of signal, or 0 when it is empty.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(signal, signal) / float64(len(signal)))
}

// ZeroCrossings counts sign changes between consecutive samples. Samples
// that are exactly zero never count as a crossing.
func ZeroCrossings(signal []float64) int {
	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}

// SNR returns 10*log10(sum(reference^2) / sum((reference-processed)^2)) in
// dB: how far processed stays from reference. Identical signals give +Inf;
// length mismatches give NaN.
func SNR(reference, processed []float64) float64 {
	if len(reference) != len(processed) || len(reference) == 0 {
		return math.NaN()
	}

	diff := make([]float64, len(reference))
	floats.SubTo(diff, reference, processed)

	noise := floats.Dot(diff, diff)
	if noise == 0 {
		return math.Inf(1)
	}

	return 10 * math.Log10(floats.Dot(reference, reference)/noise)
}
