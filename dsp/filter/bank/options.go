package bank

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-siglab/dsp/core"
)

const (
	// DefaultOrder is the Butterworth order used when callers have no
	// preference.
	DefaultOrder = 5
	// DefaultNoiseDuration is the length in seconds of the leading span
	// assumed to contain only noise.
	DefaultNoiseDuration = 0.5

	// psdFloor keeps the Wiener gain finite on empty bins.
	psdFloor = 1e-10
)

// Option configures the noise-reduction filters.
type Option func(*config)

type config struct {
	noiseDuration float64
}

func defaultConfig() config {
	return config{
		noiseDuration: DefaultNoiseDuration,
	}
}

// WithNoiseDuration sets how many leading seconds form the noise reference.
// Zero disables the reference and turns both filters into a passthrough.
func WithNoiseDuration(seconds float64) Option {
	return func(c *config) {
		c.noiseDuration = seconds
	}
}

func (c config) validate() error {
	if c.noiseDuration < 0 || math.IsNaN(c.noiseDuration) || math.IsInf(c.noiseDuration, 0) {
		return fmt.Errorf("bank: noise duration must be finite and >= 0, got %v: %w", c.noiseDuration, core.ErrInvalidInput)
	}

	return nil
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg, cfg.validate()
}

// NoiseReferenceLength returns how many leading samples of an n-sample
// signal at fs Hz form the noise reference for the given duration:
// floor(seconds*fs), or n/10 when that would cover the whole signal.
func NoiseReferenceLength(n, fs int, seconds float64) int {
	want := seconds * float64(fs)
	if want >= float64(n) {
		return n / 10
	}

	return int(want)
}
