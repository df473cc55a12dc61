package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-siglab/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the seed for noise generation. Default 1.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator. coreOpts set the sample rate.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the configured rate in Hz.
func (g *Generator) SampleRate() int { return g.cfg.SampleRate }

// Samples converts a duration in seconds to a sample count, rounding down.
func (g *Generator) Samples(seconds float64) int {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}

	return int(seconds * float64(g.cfg.SampleRate))
}

// Sine generates amplitude*sin(2*pi*freqHz*n/fs + phase).
func (g *Generator) Sine(freqHz, amplitude, phase float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d: %w", samples, core.ErrInvalidInput)
	}

	if err := core.ValidateSampleRate(g.cfg.SampleRate); err != nil {
		return nil, fmt.Errorf("signal: sine: %w", err)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / float64(g.cfg.SampleRate)

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}

	return out, nil
}

// WhiteNoise generates uniform noise in [-amplitude, amplitude). The same
// seed always yields the same sequence.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d: %w", samples, core.ErrInvalidInput)
	}

	if amplitude < 0 || math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
		return nil, fmt.Errorf("signal: noise amplitude must be finite and >= 0: %v: %w", amplitude, core.ErrInvalidInput)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewPCG(g.seed, g.seed+1))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// Silence returns samples zeros.
func (g *Generator) Silence(samples int) []float64 {
	if samples <= 0 {
		return nil
	}

	return make([]float64, samples)
}
