package fft

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a transform is requested for zero samples.
	ErrEmptyInput = errors.New("fft: input must not be empty")
	// ErrInvalidLength is returned for a non-positive transform length.
	ErrInvalidLength = errors.New("fft: transform length must be > 0")
)

// Forward returns the full complex DFT of x.
func Forward(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]complex128, len(x))
	if len(x) == 1 {
		out[0] = x[0]
		return out, nil
	}

	plan := complexPlans.get(len(x))
	defer complexPlans.put(len(x), plan)

	if err := plan.Forward(out, x); err != nil {
		return nil, fmt.Errorf("fft: forward transform failed: %w", err)
	}

	return out, nil
}

// Inverse returns the inverse DFT of spectrum, scaled by 1/n.
func Inverse(spectrum []complex128) ([]complex128, error) {
	if len(spectrum) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]complex128, len(spectrum))
	if len(spectrum) == 1 {
		out[0] = spectrum[0]
		return out, nil
	}

	plan := complexPlans.get(len(spectrum))
	defer complexPlans.put(len(spectrum), plan)

	if err := plan.Inverse(out, spectrum); err != nil {
		return nil, fmt.Errorf("fft: inverse transform failed: %w", err)
	}

	return out, nil
}

// ForwardReal returns the full n-point complex DFT of the real sequence x,
// truncating or zero-padding x to n samples first (numpy.fft.fft(x, n)).
func ForwardReal(x []float64, n int) ([]complex128, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	buf := make([]complex128, n)
	for i := 0; i < n && i < len(x); i++ {
		buf[i] = complex(x[i], 0)
	}

	return Forward(buf)
}

// Real returns the one-sided DFT of x: len(x)/2+1 bins from DC up to and
// including Nyquist for even lengths.
func Real(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	if n == 1 {
		return []complex128{complex(x[0], 0)}, nil
	}

	plan := realPlans.get(n)
	defer realPlans.put(n, plan)

	return plan.Coefficients(make([]complex128, n/2+1), x), nil
}

// InverseReal returns the n-point real sequence whose one-sided spectrum is
// spectrum, scaled by 1/n (numpy.fft.irfft(spectrum, n)). spectrum is
// truncated or zero-padded to n/2+1 bins; the imaginary parts of the DC and,
// for even n, Nyquist bins are ignored.
func InverseReal(spectrum []complex128, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	if len(spectrum) == 0 {
		return nil, ErrEmptyInput
	}

	if n == 1 {
		return []float64{real(spectrum[0])}, nil
	}

	bins := make([]complex128, n/2+1)
	copy(bins, spectrum)

	plan := realPlans.get(n)
	defer realPlans.put(n, plan)

	out := plan.Sequence(make([]float64, n), bins)

	scale := 1 / float64(n)
	for i := range out {
		out[i] *= scale
	}

	return out, nil
}

// Frequencies returns the one-sided bin frequencies k*fs/n for k in
// [0, n/2] (numpy.fft.rfftfreq).
func Frequencies(n, fs int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n/2+1)
	for k := range out {
		out[k] = float64(k) * float64(fs) / float64(n)
	}

	return out
}
