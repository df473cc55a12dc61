package resample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-siglab/dsp/core"
)

// Method selects the band-limiting strategy used by Resample.
type Method int

const (
	// MethodFFT resamples in the frequency domain.
	MethodFFT Method = iota
	// MethodPolyphase resamples with a rational polyphase FIR.
	MethodPolyphase
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodFFT:
		return "fft"
	case MethodPolyphase:
		return "polyphase"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod resolves "fft" or "polyphase".
func ParseMethod(name string) (Method, error) {
	switch name {
	case "", "fft":
		return MethodFFT, nil
	case "polyphase", "poly":
		return MethodPolyphase, nil
	default:
		return MethodFFT, fmt.Errorf("resample: unknown method %q: %w", name, core.ErrInvalidInput)
	}
}

// Quality controls the polyphase anti-aliasing filter.
type Quality int

const (
	// QualityFast prioritizes lower CPU usage.
	QualityFast Quality = iota
	// QualityBalanced is the default quality/performance trade-off.
	QualityBalanced
	// QualityBest prioritizes stopband attenuation and passband flatness.
	QualityBest
)

// ParseQuality resolves "fast", "balanced" or "best".
func ParseQuality(name string) (Quality, error) {
	switch name {
	case "fast":
		return QualityFast, nil
	case "", "balanced":
		return QualityBalanced, nil
	case "best":
		return QualityBest, nil
	default:
		return QualityBalanced, fmt.Errorf("resample: unknown quality %q: %w", name, core.ErrInvalidInput)
	}
}

// Profile holds the prototype filter parameters of a quality mode.
type Profile struct {
	TapsPerPhase      int
	CutoffScale       float64
	KaiserBeta        float64
	NominalStopbandDB float64
}

// QualityProfile returns the prototype parameters used by q.
func QualityProfile(q Quality) Profile {
	switch q {
	case QualityFast:
		return Profile{TapsPerPhase: 16, CutoffScale: 0.88, KaiserBeta: 5.0, NominalStopbandDB: 55}
	case QualityBest:
		return Profile{TapsPerPhase: 64, CutoffScale: 0.96, KaiserBeta: 9.0, NominalStopbandDB: 90}
	default:
		return Profile{TapsPerPhase: 32, CutoffScale: 0.92, KaiserBeta: 7.5, NominalStopbandDB: 75}
	}
}

const defaultMaxDenominator = 4096

type config struct {
	method  Method
	quality Quality
	maxDen  int
}

// Option configures Resample.
type Option func(*config)

// WithMethod selects the resampling method. Default MethodFFT.
func WithMethod(m Method) Option {
	return func(cfg *config) {
		cfg.method = m
	}
}

// WithQuality selects the polyphase filter quality. Ignored by MethodFFT.
func WithQuality(q Quality) Option {
	return func(cfg *config) {
		cfg.quality = q
	}
}

// WithMaxDenominator caps the reduced up/down factors of the polyphase
// method. Ratios whose reduced terms exceed n are approximated by continued
// fractions.
func WithMaxDenominator(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxDen = n
		}
	}
}

func defaultConfig() config {
	return config{
		method:  MethodFFT,
		quality: QualityBalanced,
		maxDen:  defaultMaxDenominator,
	}
}

// TargetLength returns round(n*newFs/originalFs), the number of samples
// Resample produces.
func TargetLength(n, originalFs, newFs int) int {
	if n <= 0 || originalFs <= 0 || newFs <= 0 {
		return 0
	}

	return int(math.Round(float64(n) * float64(newFs) / float64(originalFs)))
}

// TimeAxis returns n timestamps i/fs in seconds.
func TimeAxis(n, fs int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(fs)
	}

	return out
}

// Resample converts signal from originalFs to newFs and returns the new
// samples with their time axis i/newFs.
//
// Equal rates return a copy of the input. Otherwise the output holds
// TargetLength(len(signal), originalFs, newFs) samples; a zero target length
// is rejected. Errors wrap core.ErrInvalidInput.
func Resample(signal []float64, originalFs, newFs int, opts ...Option) (out, times []float64, err error) {
	if err := core.ValidateSignal(signal, 1); err != nil {
		return nil, nil, fmt.Errorf("resample: %w", err)
	}

	if err := core.ValidateSampleRate(originalFs); err != nil {
		return nil, nil, fmt.Errorf("resample: original rate: %w", err)
	}

	if err := core.ValidateSampleRate(newFs); err != nil {
		return nil, nil, fmt.Errorf("resample: new rate: %w", err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if newFs == originalFs {
		out = make([]float64, len(signal))
		copy(out, signal)

		return out, TimeAxis(len(out), newFs), nil
	}

	count := TargetLength(len(signal), originalFs, newFs)
	if count == 0 {
		return nil, nil, fmt.Errorf("resample: %d samples at %d Hz leave nothing at %d Hz: %w",
			len(signal), originalFs, newFs, core.ErrInvalidInput)
	}

	switch cfg.method {
	case MethodFFT:
		out, err = fftResample(signal, count)
	case MethodPolyphase:
		out, err = polyphaseResample(signal, originalFs, newFs, count, cfg)
	default:
		err = fmt.Errorf("resample: unsupported method %v: %w", cfg.method, core.ErrInvalidInput)
	}

	if err != nil {
		return nil, nil, err
	}

	return out, TimeAxis(count, newFs), nil
}
