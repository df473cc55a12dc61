// Command siglab runs the signal-analysis pipeline on synthesized test
// signals: spectra, low-pass filtering, noise reduction, resampling and
// quantization.
//
// Usage:
//
//	siglab spectrum --freq 50,120 --noise 0.2
//	siglab lowpass --cutoff 80 --order 5
//	siglab denoise --method wiener --noise-duration 0.5
//	siglab sample --rate 200 --bits 8 --method polyphase
//	siglab windows --size 1024
//
// Every flag can also be set through its SIGLAB_* environment variable.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/algo-siglab/internal/cli"
	"github.com/cwbudde/algo-siglab/internal/logging"
	"go.uber.org/zap"
)

var version = "0.1.0"

// CLI is the root command.
type CLI struct {
	LogLevel  string           `name:"log-level" default:"warn" enum:"debug,info,warn,error" env:"SIGLAB_LOG_LEVEL" help:"Minimum log level."`
	LogFormat string           `name:"log-format" default:"console" enum:"json,console" env:"SIGLAB_LOG_FORMAT" help:"Log encoding."`
	Version   kong.VersionFlag `short:"v" help:"Show version information."`

	Spectrum SpectrumCmd `cmd:"" help:"Compute the one-sided spectrum and its headline metrics."`
	Lowpass  LowpassCmd  `cmd:"" help:"Apply a causal Butterworth low-pass filter."`
	Denoise  DenoiseCmd  `cmd:"" help:"Reduce noise by spectral subtraction or Wiener filtering."`
	Sample   SampleCmd   `cmd:"" help:"Resample and quantize a signal."`
	Windows  WindowsCmd  `cmd:"" help:"Print spectral properties of the analysis windows."`
}

// app carries what every subcommand needs.
type app struct {
	out io.Writer
	log *zap.Logger
}

func newParser(root *CLI, stdout, stderr io.Writer, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("siglab"),
		kong.Description("Signal analysis on synthesized test signals."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version},
		kong.Help(cli.StyledHelpPrinter("siglab", "Signal analysis on synthesized test signals.")),
	}, opts...)

	return kong.New(root, opts...)
}

func main() {
	var root CLI

	parser, err := newParser(&root, os.Stdout, os.Stderr)
	if err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	log, err := logging.New(
		logging.WithLevel(root.LogLevel),
		logging.WithFormat(root.LogFormat),
		logging.WithFields(map[string]any{"cmd": ctx.Command()}),
	)
	if err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}

	defer func() { _ = log.Sync() }()

	if err := ctx.Run(&app{out: os.Stdout, log: log}); err != nil {
		log.Warn("command failed", zap.Error(err))
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}
