package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cwbudde/algo-siglab/dsp/signal"
	"github.com/cwbudde/algo-siglab/dsp/spectrum"
	"github.com/cwbudde/algo-siglab/dsp/window"
	"github.com/cwbudde/algo-siglab/internal/cli"
	"github.com/cwbudde/algo-siglab/stats/frequency"
	"go.uber.org/zap"
)

// maxFrameRows bounds the spectrogram table.
const maxFrameRows = 12

// SpectrumCmd prints the spectral summary of the test signal.
type SpectrumCmd struct {
	SignalFlags `embed:""`

	Window      string `default:"hann" enum:"none,hann,hamming,tukey" env:"SIGLAB_WINDOW" help:"Analysis window."`
	Scale       string `default:"linear" enum:"linear,log" env:"SIGLAB_SCALE" help:"Magnitude scale."`
	Peaks       int    `default:"5" help:"Number of dominant peaks to list."`
	Spectrogram bool   `help:"Also print the dominant frequency per STFT frame."`
	Segment     int    `default:"256" help:"Spectrogram segment length in samples."`
}

// Run executes the spectrum command.
func (c *SpectrumCmd) Run(a *app) error {
	sig, err := c.synthesize()
	if err != nil {
		return err
	}

	w, err := window.ParseType(c.Window)
	if err != nil {
		return err
	}

	scale, err := spectrum.ParseScale(c.Scale)
	if err != nil {
		return err
	}

	start := time.Now()

	res, err := spectrum.Transform(sig.noisy, sig.fs, w, scale)
	if err != nil {
		return err
	}

	sum, err := frequency.Summarize(res)
	if err != nil {
		return err
	}

	a.log.Info("spectrum computed",
		zap.Int("samples", res.Size),
		zap.Int("bins", res.Bins()),
		zap.Stringer("window", w),
		zap.Duration("elapsed", time.Since(start)))

	cli.PrintTitle(a.out, "Spectrum")
	cli.PrintKeyValue(a.out, "Samples", strconv.Itoa(res.Size))
	cli.PrintKeyValue(a.out, "Sample rate", hz(float64(res.SampleRate)))
	cli.PrintKeyValue(a.out, "Window", w.String())
	cli.PrintKeyValue(a.out, "Resolution", hz(res.BinWidth()))
	cli.PrintKeyValue(a.out, "Peak", fmt.Sprintf("%s (bin %d)", hz(sum.PeakFrequency), sum.PeakBin))
	cli.PrintKeyValue(a.out, "SNR", db(sum.SNR))
	cli.PrintKeyValue(a.out, "95% energy cutoff", hz(sum.Cutoff))
	cli.PrintKeyValue(a.out, "Significant bandwidth", hz(sum.MaxFrequency))
	cli.PrintKeyValue(a.out, "Nyquist rate", hz(sum.NyquistRate))
	cli.PrintKeyValue(a.out, "Centroid", hz(sum.Centroid))
	cli.PrintKeyValue(a.out, "Flatness", fmt.Sprintf("%.4f", sum.Flatness))
	fmt.Fprintln(a.out)

	// Peak order is the same in either scale; magnitudes print as stored.
	peaks, err := frequency.TopPeaks(res.Frequencies, res.Magnitude, c.Peaks)
	if err != nil {
		return err
	}

	tab := cli.Table{Headers: []string{"#", "Frequency", "Magnitude", "Bin"}}
	for i, p := range peaks {
		tab.AddRow(strconv.Itoa(i+1), hz(p.Frequency), fmt.Sprintf("%.6f", p.Magnitude), strconv.Itoa(p.Bin))
	}

	fmt.Fprint(a.out, tab.String())

	if c.Spectrogram {
		return c.printSpectrogram(a, sig)
	}

	return nil
}

func (c *SpectrumCmd) printSpectrogram(a *app, sig testSignal) error {
	sg, err := spectrum.Spectrogram(sig.noisy, sig.fs, spectrum.WithSegmentLength(c.Segment))
	if err != nil {
		return err
	}

	a.log.Debug("spectrogram computed",
		zap.Int("frames", len(sg.Times)),
		zap.Int("bins", len(sg.Frequencies)))

	fmt.Fprintln(a.out)
	cli.PrintTitle(a.out, "Spectrogram")

	_, step := signal.Decimate(sg.Times, maxFrameRows)

	tab := cli.Table{Headers: []string{"Time", "Dominant", "Power"}}
	powerDB := spectrum.PowerToDB(sg.Power)

	for t := 0; t < len(sg.Times); t += step {
		best := 0
		for f := range sg.Frequencies {
			if sg.Power[f][t] > sg.Power[best][t] {
				best = f
			}
		}

		tab.AddRow(fmt.Sprintf("%.3f s", sg.Times[t]), hz(sg.Frequencies[best]), db(powerDB[best][t]))
	}

	fmt.Fprint(a.out, tab.String())

	return nil
}

func hz(v float64) string {
	return fmt.Sprintf("%.2f Hz", v)
}

func db(v float64) string {
	return fmt.Sprintf("%.2f dB", v)
}
