package main

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cwbudde/algo-siglab/dsp/filter/bank"
	"github.com/cwbudde/algo-siglab/dsp/spectrum"
	"github.com/cwbudde/algo-siglab/dsp/window"
	"github.com/cwbudde/algo-siglab/internal/cli"
	"github.com/cwbudde/algo-siglab/stats/frequency"
	sigtime "github.com/cwbudde/algo-siglab/stats/time"
	"go.uber.org/zap"
)

// LowpassCmd filters the test signal with a Butterworth low-pass.
type LowpassCmd struct {
	SignalFlags `embed:""`

	Cutoff float64 `default:"0" env:"SIGLAB_CUTOFF" help:"Cutoff in Hz; 0 uses the 95% energy frequency."`
	Order  int     `default:"5" env:"SIGLAB_ORDER" help:"Filter order."`
}

// Run executes the lowpass command.
func (c *LowpassCmd) Run(a *app) error {
	sig, err := c.synthesize()
	if err != nil {
		return err
	}

	before, err := spectrum.Transform(sig.noisy, sig.fs, window.TypeHann, spectrum.ScaleLinear)
	if err != nil {
		return err
	}

	cutoff := c.Cutoff
	if cutoff == 0 {
		cutoff, err = frequency.EnergyCutoff(before.Frequencies, before.Magnitude, frequency.DefaultEnergyFraction)
		if err != nil {
			return err
		}

		suggested := cutoff
		cutoff = clampCutoff(cutoff, sig.fs)

		a.log.Info("using suggested cutoff",
			zap.Float64("suggested_hz", suggested),
			zap.Float64("cutoff_hz", cutoff))
	}

	start := time.Now()

	filtered, err := bank.Lowpass(sig.noisy, sig.fs, cutoff, c.Order)
	if err != nil {
		return err
	}

	a.log.Info("lowpass applied",
		zap.Float64("cutoff_hz", cutoff),
		zap.Int("order", c.Order),
		zap.Duration("elapsed", time.Since(start)))

	after, err := spectrum.Transform(filtered, sig.fs, window.TypeHann, spectrum.ScaleLinear)
	if err != nil {
		return err
	}

	in, out := sigtime.Calculate(sig.noisy), sigtime.Calculate(filtered)

	cli.PrintTitle(a.out, "Low-pass")
	cli.PrintKeyValue(a.out, "Cutoff", hz(cutoff))
	cli.PrintKeyValue(a.out, "Order", strconv.Itoa(c.Order))
	fmt.Fprintln(a.out)

	tab := cli.Table{Headers: []string{"Metric", "Input", "Filtered"}}
	tab.AddRow("RMS", fmt.Sprintf("%.4f", in.RMS), fmt.Sprintf("%.4f", out.RMS))
	tab.AddRow("Peak", fmt.Sprintf("%.4f", in.Peak), fmt.Sprintf("%.4f", out.Peak))
	tab.AddRow("Crest factor", db(in.CrestFactorDB), db(out.CrestFactorDB))
	tab.AddRow("Peak SNR", db(frequency.PeakSNR(before.Magnitude)), db(frequency.PeakSNR(after.Magnitude)))
	tab.AddRow("Centroid", hz(frequency.Centroid(before.Frequencies, before.Magnitude)),
		hz(frequency.Centroid(after.Frequencies, after.Magnitude)))

	fmt.Fprint(a.out, tab.String())

	return nil
}

// Suggested cutoffs keep this distance from DC and Nyquist.
const cutoffMargin = 100.0

// clampCutoff keeps a suggested cutoff inside [margin, fs/2-margin]. Rates
// too low for that band fall back to fs/4.
func clampCutoff(cutoff float64, fs int) float64 {
	hi := float64(fs)/2 - cutoffMargin
	if hi <= cutoffMargin {
		return float64(fs) / 4
	}

	return math.Min(math.Max(cutoff, cutoffMargin), hi)
}
