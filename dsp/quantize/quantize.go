package quantize

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Levels returns the number of quantization levels 2^nBits, or 0 when nBits
// is outside [MinBits, MaxBits].
func Levels(nBits int) int {
	if nBits < MinBits || nBits > MaxBits {
		return 0
	}

	return 1 << nBits
}

// Quantize maps every sample to one of 2^nBits levels spanning
// [-peak, +peak], where peak is the largest absolute sample:
//
//	level = roundHalfEven((x/peak + 1) * (L-1) / 2), clamped to [0, L-1]
//	q     = (level*2/(L-1) - 1) * peak
//
// errSignal holds signal - quantized. An all-zero signal is returned as a
// copy with zero error. nBits outside [MinBits, MaxBits] is rejected; the
// 32-bit ceiling is narrower than float64's 52-bit mantissa and keeps
// the level grid exactly representable.
func Quantize(signal []float64, nBits int, opts ...Option) (quantized, errSignal []float64, err error) {
	if err := core.ValidateSignal(signal, 1); err != nil {
		return nil, nil, fmt.Errorf("quantize: %w", err)
	}

	if nBits < MinBits || nBits > MaxBits {
		return nil, nil, fmt.Errorf("quantize: bit depth must be in [%d, %d]: %d: %w", MinBits, MaxBits, nBits, core.ErrInvalidInput)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, nil, err
		}
	}

	quantized = make([]float64, len(signal))
	errSignal = make([]float64, len(signal))

	peak := core.PeakAbs(signal)
	if peak == 0 {
		copy(quantized, signal)
		return quantized, errSignal, nil
	}

	top := float64(Levels(nBits) - 1)
	half := top / 2
	dither := newDitherSource(cfg.ditherType, cfg.ditherAmplitude, cfg.seed)

	for i, x := range signal {
		level := math.RoundToEven((x/peak+1)*half + dither.next())
		level = core.Clamp(level, 0, top)
		quantized[i] = (level*2/top - 1) * peak
	}

	floats.SubTo(errSignal, signal, quantized)

	return quantized, errSignal, nil
}

// SQNR returns the signal-to-quantization-noise ratio
// 10*log10(sum(signal^2) / sum(errSignal^2)) in dB. It is +Inf when the
// error is exactly zero and -Inf for a silent signal with nonzero error.
// Slices of different length yield NaN.
func SQNR(signal, errSignal []float64) float64 {
	if len(signal) != len(errSignal) {
		return math.NaN()
	}

	num := floats.Dot(signal, signal)
	den := floats.Dot(errSignal, errSignal)

	switch {
	case den == 0:
		return math.Inf(1)
	case num == 0:
		return math.Inf(-1)
	}

	return 10 * math.Log10(num/den)
}

// TheoreticalSQNR returns 6.02*nBits + 1.76 dB, the SQNR of a full-scale
// sine quantized to nBits.
func TheoreticalSQNR(nBits int) float64 {
	return 20*math.Log10(2)*float64(nBits) + 10*math.Log10(1.5)
}
