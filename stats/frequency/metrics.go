package frequency

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// SNRGuardBins is the number of bins on each side of the peak excluded from
// the noise estimate in PeakSNR.
const SNRGuardBins = 2

// DefaultEnergyFraction is the cumulative-energy share used for the
// suggested low-pass cutoff.
const DefaultEnergyFraction = 0.95

// DefaultSignificance is the fraction of the spectral maximum a bin must
// exceed to count towards SignificantBandwidth.
const DefaultSignificance = 0.01

// PeakSNR returns 10*log10(peak power / mean noise power) in dB.
//
// The peak is the first bin holding the largest magnitude. Noise is the mean
// squared magnitude of all bins outside [peak-2, peak+2], clamped to the
// valid index range. The result is +Inf when no bins remain or the noise is
// exactly zero, and NaN for an empty spectrum.
func PeakSNR(magnitude []float64) float64 {
	if len(magnitude) == 0 {
		return math.NaN()
	}

	peak := floats.MaxIdx(magnitude)
	signal := magnitude[peak] * magnitude[peak]

	lo := max(0, peak-SNRGuardBins)
	hi := min(len(magnitude), peak+SNRGuardBins+1)

	var (
		noise float64
		count int
	)

	for i, m := range magnitude {
		if i >= lo && i < hi {
			continue
		}

		noise += m * m
		count++
	}

	if count == 0 || noise == 0 {
		return math.Inf(1)
	}

	return core.LinearPowerToDB(signal / (noise / float64(count)))
}

// EnergyCutoff returns the lowest bin frequency at which the cumulative sum
// of squared magnitudes reaches fraction of the total energy.
//
// A silent spectrum returns freqs[0]. fraction must lie in (0, 1].
func EnergyCutoff(freqs, magnitude []float64, fraction float64) (float64, error) {
	if err := validatePair(freqs, magnitude); err != nil {
		return 0, err
	}

	if !(fraction > 0 && fraction <= 1) {
		return 0, fmt.Errorf("frequency: energy fraction %g outside (0, 1]: %w", fraction, core.ErrInvalidInput)
	}

	cum := make([]float64, len(magnitude))
	for i, m := range magnitude {
		cum[i] = m * m
	}

	floats.CumSum(cum, cum)

	target := fraction * cum[len(cum)-1]

	// First index with cum[i] >= target.
	idx, _ := slices.BinarySearch(cum, target)
	if idx >= len(freqs) {
		idx = len(freqs) - 1
	}

	return freqs[idx], nil
}

// Peak is one spectral bin.
type Peak struct {
	Bin       int
	Frequency float64
	Magnitude float64
}

// TopPeaks returns up to k bins with the largest magnitude, skipping DC
// (bin 0). Peaks are ordered by descending magnitude; equal magnitudes keep
// the lower frequency first.
func TopPeaks(freqs, magnitude []float64, k int) ([]Peak, error) {
	if err := validatePair(freqs, magnitude); err != nil {
		return nil, err
	}

	if k < 0 {
		return nil, fmt.Errorf("frequency: negative peak count %d: %w", k, core.ErrInvalidInput)
	}

	bins := make([]int, 0, len(magnitude)-1)
	for i := 1; i < len(magnitude); i++ {
		bins = append(bins, i)
	}

	slices.SortStableFunc(bins, func(a, b int) int {
		switch {
		case magnitude[a] > magnitude[b]:
			return -1
		case magnitude[a] < magnitude[b]:
			return 1
		default:
			return 0
		}
	})

	k = min(k, len(bins))

	peaks := make([]Peak, k)
	for i, bin := range bins[:k] {
		peaks[i] = Peak{Bin: bin, Frequency: freqs[bin], Magnitude: magnitude[bin]}
	}

	return peaks, nil
}

// SignificantBandwidth returns the highest frequency whose magnitude exceeds
// relative times the spectral maximum. A silent spectrum returns 0.
func SignificantBandwidth(freqs, magnitude []float64, relative float64) (float64, error) {
	if err := validatePair(freqs, magnitude); err != nil {
		return 0, err
	}

	if relative < 0 || math.IsNaN(relative) {
		return 0, fmt.Errorf("frequency: invalid significance %g: %w", relative, core.ErrInvalidInput)
	}

	threshold := relative * floats.Max(magnitude)

	for i := len(magnitude) - 1; i >= 0; i-- {
		if magnitude[i] > threshold {
			return freqs[i], nil
		}
	}

	return 0, nil
}

// NyquistRate returns the minimum sample rate 2*fMax that represents content
// up to fMax without aliasing.
func NyquistRate(fMax float64) float64 {
	return 2 * fMax
}

// AliasingRisk reports whether sampling at newFs falls below nyquistRate.
func AliasingRisk(newFs int, nyquistRate float64) bool {
	return float64(newFs) < nyquistRate
}

func validatePair(freqs, magnitude []float64) error {
	if len(magnitude) == 0 {
		return fmt.Errorf("frequency: empty spectrum: %w", core.ErrInvalidInput)
	}

	if len(freqs) != len(magnitude) {
		return fmt.Errorf("frequency: %d frequencies for %d bins: %w",
			len(freqs), len(magnitude), core.ErrInvalidInput)
	}

	return nil
}
