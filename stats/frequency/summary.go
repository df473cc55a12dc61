package frequency

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"github.com/cwbudde/algo-siglab/dsp/spectrum"
	"gonum.org/v1/gonum/floats"
)

// DefaultTopPeaks is the number of peaks Summarize reports.
const DefaultTopPeaks = 5

// Summary collects the headline metrics of one spectrum.
type Summary struct {
	PeakBin       int
	PeakFrequency float64
	PeakMagnitude float64

	// SNR is PeakSNR in dB.
	SNR float64

	// Cutoff is the 95% energy frequency, the suggested low-pass cutoff.
	Cutoff float64

	// MaxFrequency is the significant bandwidth at 1% of the maximum and
	// NyquistRate twice that.
	MaxFrequency float64
	NyquistRate  float64

	Centroid     float64
	Flatness     float64
	Bandwidth3dB float64

	TopPeaks []Peak
}

// Summarize computes a Summary from a transform result. Log-scale results
// are converted back to linear magnitudes first.
func Summarize(res spectrum.Result) (Summary, error) {
	mag, err := linearMagnitude(res)
	if err != nil {
		return Summary{}, err
	}

	freqs := res.Frequencies

	cutoff, err := EnergyCutoff(freqs, mag, DefaultEnergyFraction)
	if err != nil {
		return Summary{}, err
	}

	fMax, err := SignificantBandwidth(freqs, mag, DefaultSignificance)
	if err != nil {
		return Summary{}, err
	}

	peaks, err := TopPeaks(freqs, mag, DefaultTopPeaks)
	if err != nil {
		return Summary{}, err
	}

	peak := floats.MaxIdx(mag)

	return Summary{
		PeakBin:       peak,
		PeakFrequency: freqs[peak],
		PeakMagnitude: mag[peak],
		SNR:           PeakSNR(mag),
		Cutoff:        cutoff,
		MaxFrequency:  fMax,
		NyquistRate:   NyquistRate(fMax),
		Centroid:      Centroid(freqs, mag),
		Flatness:      Flatness(mag),
		Bandwidth3dB:  Bandwidth3dB(freqs, mag),
		TopPeaks:      peaks,
	}, nil
}

func linearMagnitude(res spectrum.Result) ([]float64, error) {
	switch res.Scale {
	case spectrum.ScaleLinear:
		return res.Magnitude, nil
	case spectrum.ScaleLog:
		mag := make([]float64, len(res.Magnitude))
		for i, db := range res.Magnitude {
			mag[i] = max(math.Pow(10, db/20)-core.MagnitudeFloor, 0)
		}

		return mag, nil
	default:
		return nil, fmt.Errorf("frequency: unknown scale %v: %w", res.Scale, core.ErrInvalidInput)
	}
}
