package main

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-siglab/dsp/filter/bank"
	"github.com/cwbudde/algo-siglab/internal/cli"
	sigtime "github.com/cwbudde/algo-siglab/stats/time"
	"go.uber.org/zap"
)

// DenoiseCmd compares the noise-reduction methods on the test signal. The
// tones are gated off for the noise-reference span so the leading segment
// holds noise only.
type DenoiseCmd struct {
	SignalFlags `embed:""`

	Method        string  `default:"both" enum:"subtract,wiener,both" env:"SIGLAB_DENOISE_METHOD" help:"Noise-reduction method."`
	NoiseDuration float64 `default:"0.5" env:"SIGLAB_NOISE_DURATION" help:"Leading noise-only span in seconds."`
}

type denoiser struct {
	name string
	fn   func([]float64, int, ...bank.Option) ([]float64, error)
}

// Run executes the denoise command.
func (c *DenoiseCmd) Run(a *app) error {
	sig, err := c.synthesize()
	if err != nil {
		return err
	}

	gate := bank.NoiseReferenceLength(len(sig.noisy), sig.fs, c.NoiseDuration)
	for i := range gate {
		sig.noisy[i] -= sig.clean[i]
		sig.clean[i] = 0
	}

	var methods []denoiser

	if c.Method != "wiener" {
		methods = append(methods, denoiser{"Spectral subtraction", bank.SpectralSubtract})
	}

	if c.Method != "subtract" {
		methods = append(methods, denoiser{"Wiener", bank.Wiener})
	}

	cli.PrintTitle(a.out, "Noise reduction")
	cli.PrintKeyValue(a.out, "Noise reference", fmt.Sprintf("%d samples", gate))
	fmt.Fprintln(a.out)

	tab := cli.Table{Headers: []string{"Signal", "SNR", "RMS"}}
	tab.AddRow("Noisy", db(sigtime.SNR(sig.clean, sig.noisy)), fmt.Sprintf("%.4f", sigtime.RMS(sig.noisy)))

	for _, m := range methods {
		start := time.Now()

		out, err := m.fn(sig.noisy, sig.fs, bank.WithNoiseDuration(c.NoiseDuration))
		if err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}

		a.log.Info("denoised",
			zap.String("method", m.name),
			zap.Duration("elapsed", time.Since(start)))

		tab.AddRow(m.name, db(sigtime.SNR(sig.clean, out)), fmt.Sprintf("%.4f", sigtime.RMS(out)))
	}

	fmt.Fprint(a.out, tab.String())

	return nil
}
