package main

import (
	"fmt"

	"github.com/cwbudde/algo-siglab/dsp/window"
	"github.com/cwbudde/algo-siglab/internal/cli"
)

// WindowsCmd prints figures of merit for every analysis window.
type WindowsCmd struct {
	Size     int     `default:"1024" env:"SIGLAB_WINDOW_SIZE" help:"Window length in samples."`
	Alpha    float64 `default:"0.5" help:"Tukey taper fraction."`
	Periodic bool    `help:"Use the periodic (DFT-even) form."`
}

// Run executes the windows command.
func (c *WindowsCmd) Run(a *app) error {
	opts := []window.Option{window.WithAlpha(c.Alpha)}
	if c.Periodic {
		opts = append(opts, window.WithPeriodic())
	}

	tab := cli.Table{Headers: []string{"Window", "Size", "Coherent gain", "ENBW [bins]", "Scallop [dB]"}}

	for _, t := range window.Types() {
		coeffs := window.Generate(t, c.Size, opts...)

		p, err := window.Analyze(coeffs)
		if err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}

		tab.AddRow(t.String(), fmt.Sprint(c.Size),
			fmt.Sprintf("%.6f", p.CoherentGain),
			fmt.Sprintf("%.4f", p.ENBW),
			fmt.Sprintf("%.4f", p.ScallopLossdB))
	}

	cli.PrintTitle(a.out, "Windows")
	fmt.Fprint(a.out, tab.String())

	return nil
}
