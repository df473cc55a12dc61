package bank

import (
	"fmt"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"github.com/cwbudde/algo-siglab/dsp/filter/biquad"
	"github.com/cwbudde/algo-siglab/dsp/filter/design"
)

// Lowpass applies an order-n Butterworth low-pass with its -3 dB point at
// cutoff Hz. The filter runs causally in a single forward pass from zero
// initial state, so the output carries the filter's phase delay.
//
// cutoff must satisfy 0 < cutoff < fs/2 and order must be >= 1.
func Lowpass(signal []float64, fs int, cutoff float64, order int) ([]float64, error) {
	if err := validate(signal, fs); err != nil {
		return nil, err
	}

	coeffs, err := design.ButterworthLP(cutoff, order, float64(fs))
	if err != nil {
		return nil, fmt.Errorf("bank: lowpass: %w", err)
	}

	return biquad.NewChain(coeffs).Filter(signal), nil
}

func validate(signal []float64, fs int) error {
	if err := core.ValidateSignal(signal, 2); err != nil {
		return fmt.Errorf("bank: %w", err)
	}

	if err := core.ValidateSampleRate(fs); err != nil {
		return fmt.Errorf("bank: %w", err)
	}

	return nil
}
