package main

import (
	"fmt"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"github.com/cwbudde/algo-siglab/dsp/signal"
)

// SignalFlags describe the synthesized test signal shared by all processing
// commands: a sum of sines plus deterministic white noise.
type SignalFlags struct {
	SampleRate int       `name:"fs" default:"1000" env:"SIGLAB_FS" help:"Sample rate in Hz."`
	Duration   float64   `default:"1" env:"SIGLAB_DURATION" help:"Signal length in seconds."`
	Freqs      []float64 `name:"freq" default:"50,120" env:"SIGLAB_FREQ" help:"Sine frequencies in Hz."`
	Amps       []float64 `name:"amp" default:"1,0.5" env:"SIGLAB_AMP" help:"Sine amplitudes; missing entries use 1."`
	Noise      float64   `default:"0.2" env:"SIGLAB_NOISE" help:"White noise amplitude."`
	Seed       uint64    `default:"1" env:"SIGLAB_SEED" help:"Noise seed."`
}

// testSignal is a synthesized signal and its noise-free reference.
type testSignal struct {
	fs    int
	clean []float64
	noisy []float64
}

func (f SignalFlags) generator() *signal.Generator {
	return signal.NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(f.SampleRate)},
		signal.WithSeed(f.Seed),
	)
}

// synthesize builds the clean tone mix and its noisy version.
func (f SignalFlags) synthesize() (testSignal, error) {
	if err := core.ValidateSampleRate(f.SampleRate); err != nil {
		return testSignal{}, err
	}

	gen := f.generator()

	n := gen.Samples(f.Duration)
	if n < 2 {
		return testSignal{}, fmt.Errorf("duration %gs at %d Hz yields %d samples: %w",
			f.Duration, f.SampleRate, n, core.ErrInvalidInput)
	}

	tones := make([][]float64, 0, len(f.Freqs))

	for i, freq := range f.Freqs {
		amp := 1.0
		if i < len(f.Amps) {
			amp = f.Amps[i]
		}

		tone, err := gen.Sine(freq, amp, 0, n)
		if err != nil {
			return testSignal{}, err
		}

		tones = append(tones, tone)
	}

	clean := signal.Mix(tones...)
	if len(clean) == 0 {
		clean = gen.Silence(n)
	}

	noise, err := gen.WhiteNoise(f.Noise, n)
	if err != nil {
		return testSignal{}, err
	}

	return testSignal{
		fs:    f.SampleRate,
		clean: clean,
		noisy: signal.Mix(clean, noise),
	}, nil
}
