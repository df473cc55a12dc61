package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"github.com/cwbudde/algo-siglab/dsp/fft"
	"github.com/cwbudde/algo-siglab/dsp/window"
)

const (
	// DefaultSegmentLength is the STFT segment length used when the signal
	// is long enough.
	DefaultSegmentLength = 256
	// DefaultTukeyAlpha is the taper fraction of the segment window.
	DefaultTukeyAlpha = 0.25
)

// SpectrogramResult holds a one-sided power spectral density grid.
// Power is indexed [frequency][segment] in units of V^2/Hz.
type SpectrogramResult struct {
	Times       []float64
	Frequencies []float64
	Power       [][]float64
}

// SpectrogramOption configures Spectrogram.
type SpectrogramOption func(*spectrogramConfig)

type spectrogramConfig struct {
	segment int
	overlap int // -1 selects segment/8
}

func defaultSpectrogramConfig() spectrogramConfig {
	return spectrogramConfig{
		segment: DefaultSegmentLength,
		overlap: -1,
	}
}

// WithSegmentLength sets the samples per STFT segment. Values < 1 are ignored.
func WithSegmentLength(n int) SpectrogramOption {
	return func(c *spectrogramConfig) {
		if n >= 1 {
			c.segment = n
		}
	}
}

// WithOverlap sets the number of samples shared by consecutive segments.
// It is clamped below the segment length.
func WithOverlap(n int) SpectrogramOption {
	return func(c *spectrogramConfig) {
		if n >= 0 {
			c.overlap = n
		}
	}
}

func (c spectrogramConfig) finalized(n int) spectrogramConfig {
	if c.segment > n {
		c.segment = n
	}

	if c.overlap < 0 {
		c.overlap = c.segment / 8
	}

	if c.overlap >= c.segment {
		c.overlap = c.segment - 1
	}

	return c
}

// Spectrogram computes a short-time power spectral density of signal.
//
// Each segment is mean-detrended, multiplied by a periodic Tukey window
// (alpha 0.25) and transformed. Power is scaled to a one-sided density:
// |X|^2 / (fs * sum(w^2)), doubled for every bin except DC and, for even
// segment lengths, Nyquist. Times are segment centers in seconds.
func Spectrogram(signal []float64, fs int, opts ...SpectrogramOption) (SpectrogramResult, error) {
	if err := core.ValidateSignal(signal, 1); err != nil {
		return SpectrogramResult{}, fmt.Errorf("spectrum: spectrogram: %w", err)
	}

	if err := core.ValidateSampleRate(fs); err != nil {
		return SpectrogramResult{}, fmt.Errorf("spectrum: spectrogram: %w", err)
	}

	cfg := defaultSpectrogramConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cfg = cfg.finalized(len(signal))
	seg := cfg.segment
	step := seg - cfg.overlap
	segments := (len(signal) - cfg.overlap) / step

	win := window.Generate(window.TypeTukey, seg, window.WithAlpha(DefaultTukeyAlpha), window.WithPeriodic())

	var winPower float64
	for _, v := range win {
		winPower += v * v
	}

	scale := 1 / (float64(fs) * winPower)
	nBins := seg/2 + 1

	out := SpectrogramResult{
		Times:       make([]float64, segments),
		Frequencies: fft.Frequencies(seg, fs),
		Power:       make([][]float64, nBins),
	}
	for k := range out.Power {
		out.Power[k] = make([]float64, segments)
	}

	frame := make([]float64, seg)
	for s := range segments {
		start := s * step
		copy(frame, signal[start:start+seg])

		var mean float64
		for _, v := range frame {
			mean += v
		}

		mean /= float64(seg)
		for i := range frame {
			frame[i] = (frame[i] - mean) * win[i]
		}

		bins, err := fft.Real(frame)
		if err != nil {
			return SpectrogramResult{}, fmt.Errorf("spectrum: spectrogram: %w", err)
		}

		pow := Power(bins)
		for k, p := range pow {
			p *= scale
			if k > 0 && (seg%2 == 1 || k < nBins-1) {
				p *= 2
			}

			out.Power[k][s] = p
		}

		out.Times[s] = (float64(start) + float64(seg)/2) / float64(fs)
	}

	return out, nil
}

// PowerToDB converts a power grid to 10*log10(p + 1e-10), returning a new
// grid of the same shape.
func PowerToDB(power [][]float64) [][]float64 {
	out := make([][]float64, len(power))
	for i, row := range power {
		out[i] = make([]float64, len(row))
		for j, p := range row {
			out[i][j] = core.PowerToDB(p)
		}
	}

	return out
}
