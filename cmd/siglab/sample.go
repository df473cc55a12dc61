package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cwbudde/algo-siglab/dsp/quantize"
	"github.com/cwbudde/algo-siglab/dsp/resample"
	"github.com/cwbudde/algo-siglab/dsp/spectrum"
	"github.com/cwbudde/algo-siglab/dsp/window"
	"github.com/cwbudde/algo-siglab/internal/cli"
	"github.com/cwbudde/algo-siglab/stats/frequency"
	"go.uber.org/zap"
)

// SampleCmd resamples the test signal to a new rate and quantizes it.
type SampleCmd struct {
	SignalFlags `embed:""`

	Rate       int    `default:"500" env:"SIGLAB_RATE" help:"Target sample rate in Hz."`
	Bits       int    `default:"8" env:"SIGLAB_BITS" help:"Quantizer bit depth."`
	Method     string `default:"fft" enum:"fft,polyphase" env:"SIGLAB_RESAMPLE_METHOD" help:"Resampling method."`
	Quality    string `default:"balanced" enum:"fast,balanced,best" env:"SIGLAB_QUALITY" help:"Polyphase filter quality."`
	Dither     string `default:"none" enum:"none,rectangular,triangular,gaussian" env:"SIGLAB_DITHER" help:"Dither applied before rounding."`
	DitherSeed uint64 `default:"1" help:"Dither seed."`
}

// Run executes the sample command.
func (c *SampleCmd) Run(a *app) error {
	sig, err := c.synthesize()
	if err != nil {
		return err
	}

	method, err := resample.ParseMethod(c.Method)
	if err != nil {
		return err
	}

	quality, err := resample.ParseQuality(c.Quality)
	if err != nil {
		return err
	}

	dither, err := quantize.ParseDitherType(c.Dither)
	if err != nil {
		return err
	}

	res, err := spectrum.Transform(sig.noisy, sig.fs, window.TypeHann, spectrum.ScaleLinear)
	if err != nil {
		return err
	}

	fMax, err := frequency.SignificantBandwidth(res.Frequencies, res.Magnitude, frequency.DefaultSignificance)
	if err != nil {
		return err
	}

	nyquist := frequency.NyquistRate(fMax)

	start := time.Now()

	out, times, err := resample.Resample(sig.noisy, sig.fs, c.Rate,
		resample.WithMethod(method), resample.WithQuality(quality))
	if err != nil {
		return err
	}

	a.log.Info("resampled",
		zap.Int("from_hz", sig.fs),
		zap.Int("to_hz", c.Rate),
		zap.Stringer("method", method),
		zap.Int("samples", len(out)),
		zap.Duration("elapsed", time.Since(start)))

	_, qerr, err := quantize.Quantize(out, c.Bits, quantize.WithDither(dither, c.DitherSeed))
	if err != nil {
		return err
	}

	cli.PrintTitle(a.out, "Sampling")
	cli.PrintKeyValue(a.out, "Original", fmt.Sprintf("%d samples at %s", len(sig.noisy), hz(float64(sig.fs))))
	cli.PrintKeyValue(a.out, "Resampled", fmt.Sprintf("%d samples at %s (%s)", len(out), hz(float64(c.Rate)), method))

	if len(times) > 0 {
		cli.PrintKeyValue(a.out, "Last sample", fmt.Sprintf("%.4f s", times[len(times)-1]))
	}

	cli.PrintKeyValue(a.out, "Significant bandwidth", hz(fMax))
	cli.PrintKeyValue(a.out, "Nyquist rate", hz(nyquist))

	if frequency.AliasingRisk(c.Rate, nyquist) {
		cli.PrintWarning(a.out, fmt.Sprintf("%d Hz is below the Nyquist rate; content above %s will alias",
			c.Rate, hz(float64(c.Rate)/2)))
	}

	fmt.Fprintln(a.out)

	tab := cli.Table{Headers: []string{"Quantizer", "Value"}}
	tab.AddRow("Bits", strconv.Itoa(c.Bits))
	tab.AddRow("Levels", strconv.Itoa(quantize.Levels(c.Bits)))
	tab.AddRow("Dither", dither.String())
	tab.AddRow("SQNR", db(quantize.SQNR(out, qerr)))
	tab.AddRow("Theoretical SQNR", db(quantize.TheoreticalSQNR(c.Bits)))

	fmt.Fprint(a.out, tab.String())

	return nil
}
