package quantize

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-siglab/dsp/core"
)

const (
	// MinBits and MaxBits bound the accepted bit depth.
	MinBits = 1
	MaxBits = 32

	defaultDitherAmplitude = 1.0
)

type config struct {
	ditherType      DitherType
	ditherAmplitude float64
	seed            uint64
}

func defaultConfig() config {
	return config{
		ditherType:      DitherNone,
		ditherAmplitude: defaultDitherAmplitude,
	}
}

// Option configures Quantize. Options validate their argument and report
// errors wrapping core.ErrInvalidInput.
type Option func(*config) error

// WithDither enables dither of the given type. The noise sequence is fully
// determined by seed.
func WithDither(dt DitherType, seed uint64) Option {
	return func(cfg *config) error {
		if !dt.Valid() {
			return fmt.Errorf("quantize: invalid dither type %d: %w", int(dt), core.ErrInvalidInput)
		}

		cfg.ditherType = dt
		cfg.seed = seed

		return nil
	}
}

// WithDitherAmplitude scales the dither noise, in quantization steps
// (default 1).
func WithDitherAmplitude(amp float64) Option {
	return func(cfg *config) error {
		if amp < 0 || math.IsNaN(amp) || math.IsInf(amp, 0) {
			return fmt.Errorf("quantize: dither amplitude must be finite and >= 0: %v: %w", amp, core.ErrInvalidInput)
		}

		cfg.ditherAmplitude = amp

		return nil
	}
}
