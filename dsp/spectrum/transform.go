package spectrum

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"github.com/cwbudde/algo-siglab/dsp/fft"
	"github.com/cwbudde/algo-siglab/dsp/window"
)

// Scale selects how Transform reports magnitudes.
type Scale int

const (
	// ScaleLinear reports |X[k]|/N.
	ScaleLinear Scale = iota
	// ScaleLog reports 20*log10(|X[k]|/N + 1e-10) in dB.
	ScaleLog
)

// String returns the scale name.
func (s Scale) String() string {
	switch s {
	case ScaleLinear:
		return "Linear"
	case ScaleLog:
		return "Log"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// ParseScale resolves "linear", "log" or "db" (case-insensitive).
func ParseScale(name string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear", "lin":
		return ScaleLinear, nil
	case "log", "db", "log (db)":
		return ScaleLog, nil
	default:
		return ScaleLinear, fmt.Errorf("spectrum: unknown scale %q: %w", name, core.ErrInvalidInput)
	}
}

// Result is the one-sided spectrum of a real signal. Frequencies, Magnitude
// and Phase all hold N/2+1 entries (floor for odd N).
type Result struct {
	Frequencies []float64
	Magnitude   []float64
	Phase       []float64

	// SampleRate and Size record the fs and N the result was computed from.
	SampleRate int
	Size       int
	Window     window.Type
	Scale      Scale
}

// Bins returns the number of one-sided bins.
func (r Result) Bins() int { return len(r.Frequencies) }

// BinWidth returns the frequency spacing fs/N in Hz.
func (r Result) BinWidth() float64 {
	if r.Size == 0 {
		return 0
	}

	return float64(r.SampleRate) / float64(r.Size)
}

// Transform windows signal with w, takes its one-sided DFT and returns bin
// frequencies k*fs/N, magnitudes |X[k]|/N in the requested scale and phases
// in (-pi, pi].
//
// The window is the symmetric form of length N. An all-zero signal yields
// zero magnitude (or the -200 dB floor in log scale) and zero phase.
// signal is not modified.
func Transform(signal []float64, fs int, w window.Type, scale Scale) (Result, error) {
	if err := core.ValidateSignal(signal, 1); err != nil {
		return Result{}, fmt.Errorf("spectrum: %w", err)
	}

	if err := core.ValidateSampleRate(fs); err != nil {
		return Result{}, fmt.Errorf("spectrum: %w", err)
	}

	if !validWindow(w) {
		return Result{}, fmt.Errorf("spectrum: unsupported window %v: %w", w, core.ErrInvalidInput)
	}

	if scale != ScaleLinear && scale != ScaleLog {
		return Result{}, fmt.Errorf("spectrum: unsupported scale %v: %w", scale, core.ErrInvalidInput)
	}

	n := len(signal)
	bins, err := fft.Real(window.Apply(w, signal))
	if err != nil {
		return Result{}, fmt.Errorf("spectrum: %w", err)
	}

	mag := Magnitude(bins)
	inv := 1 / float64(n)
	for i := range mag {
		mag[i] *= inv
		if scale == ScaleLog {
			mag[i] = core.AmplitudeToDB(mag[i])
		}
	}

	return Result{
		Frequencies: fft.Frequencies(n, fs),
		Magnitude:   mag,
		Phase:       Phase(bins),
		SampleRate:  fs,
		Size:        n,
		Window:      w,
		Scale:       scale,
	}, nil
}

func validWindow(w window.Type) bool {
	for _, t := range window.Types() {
		if t == w {
			return true
		}
	}

	return false
}
