package bank

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-siglab/dsp/fft"
	"github.com/cwbudde/algo-vecmath"
)

// SpectralSubtract removes stationary noise by magnitude subtraction.
//
// The noise reference is zero-padded to the signal length and transformed
// alongside the signal. Each bin keeps the signal's phase and the magnitude
// max(|X|-|N|, 0). The real part of the inverse transform is returned.
func SpectralSubtract(signal []float64, fs int, opts ...Option) ([]float64, error) {
	sig, noise, err := spectra(signal, fs, opts)
	if err != nil {
		return nil, fmt.Errorf("bank: spectral subtraction: %w", err)
	}

	sigMag := magnitudes(sig)
	noiseMag := magnitudes(noise)

	clean := make([]complex128, len(sig))
	for k, x := range sig {
		m := math.Max(sigMag[k]-noiseMag[k], 0)
		if m == 0 {
			continue
		}

		phi := math.Atan2(imag(x), real(x))
		clean[k] = complex(m*math.Cos(phi), m*math.Sin(phi))
	}

	return realInverse(clean)
}

// Wiener applies a per-bin Wiener gain H = max(S-N, 0)/(S+1e-10), where S and
// N are the power spectra of the signal and of the zero-padded noise
// reference. The complex spectrum is scaled by H and the real part of the
// inverse transform is returned.
func Wiener(signal []float64, fs int, opts ...Option) ([]float64, error) {
	sig, noise, err := spectra(signal, fs, opts)
	if err != nil {
		return nil, fmt.Errorf("bank: wiener: %w", err)
	}

	re, im := split(sig)
	sigPSD := make([]float64, len(sig))
	vecmath.Power(sigPSD, re, im)

	nRe, nIm := split(noise)
	noisePSD := make([]float64, len(noise))
	vecmath.Power(noisePSD, nRe, nIm)

	gain := make([]float64, len(sig))
	for k := range gain {
		gain[k] = math.Max(sigPSD[k]-noisePSD[k], 0) / (sigPSD[k] + psdFloor)
	}

	vecmath.MulBlockInPlace(re, gain)
	vecmath.MulBlockInPlace(im, gain)

	filtered := make([]complex128, len(sig))
	for k := range filtered {
		filtered[k] = complex(re[k], im[k])
	}

	return realInverse(filtered)
}

// spectra validates the input and returns the full complex spectra of the
// signal and of its noise reference zero-padded to the signal length.
func spectra(signal []float64, fs int, opts []Option) (sig, noise []complex128, err error) {
	if err := validate(signal, fs); err != nil {
		return nil, nil, err
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	n := len(signal)
	ref := signal[:NoiseReferenceLength(n, fs, cfg.noiseDuration)]

	if sig, err = fft.ForwardReal(signal, n); err != nil {
		return nil, nil, err
	}

	if noise, err = fft.ForwardReal(ref, n); err != nil {
		return nil, nil, err
	}

	return sig, noise, nil
}

func split(x []complex128) (re, im []float64) {
	re = make([]float64, len(x))
	im = make([]float64, len(x))

	for i, c := range x {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im
}

func magnitudes(x []complex128) []float64 {
	re, im := split(x)
	out := make([]float64, len(x))
	vecmath.Magnitude(out, re, im)

	return out
}

func realInverse(spectrum []complex128) ([]float64, error) {
	td, err := fft.Inverse(spectrum)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(td))
	for i, c := range td {
		out[i] = real(c)
	}

	return out, nil
}
