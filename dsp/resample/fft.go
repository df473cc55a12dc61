package resample

import (
	"fmt"

	"github.com/cwbudde/algo-siglab/dsp/fft"
	"github.com/cwbudde/algo-vecmath"
)

// fftResample returns num samples spanning the same duration as x.
//
// The first min(num, len(x))/2+1 bins are carried over. For an even
// carried length the bin at its half-way point is doubled when shrinking,
// folding the mirrored component into the real Nyquist bin, and halved when
// growing, splitting it between the new +/- frequencies.
func fftResample(x []float64, num int) ([]float64, error) {
	nx := len(x)

	spec, err := fft.Real(x)
	if err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}

	n := min(num, nx)
	bins := make([]complex128, num/2+1)
	copy(bins, spec[:n/2+1])

	if n%2 == 0 {
		switch {
		case num < nx:
			bins[n/2] *= 2
		case num > nx:
			bins[n/2] *= 0.5
		}
	}

	y, err := fft.InverseReal(bins, num)
	if err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}

	vecmath.ScaleBlock(y, y, float64(num)/float64(nx))

	return y, nil
}
