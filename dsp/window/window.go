package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	// TypeNone leaves the signal untouched (rectangular window).
	TypeNone Type = iota
	TypeHann
	TypeHamming
	// TypeTukey is a tapered cosine window; WithAlpha sets the taper fraction.
	TypeTukey
)

var typeNames = map[Type]string{
	TypeNone:    "None",
	TypeHann:    "Hann",
	TypeHamming: "Hamming",
	TypeTukey:   "Tukey",
}

var (
	hannCoeffs    = []float64{0.5, -0.5}
	hammingCoeffs = []float64{0.54, -0.46}
)

// String returns the canonical window name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// Types lists the supported window types in declaration order.
func Types() []Type {
	return []Type{TypeNone, TypeHann, TypeHamming, TypeTukey}
}

// ParseType resolves a case-insensitive window name. "rectangular" and the
// empty string are accepted as aliases for None.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "rectangular":
		return TypeNone, nil
	case "hann", "hanning":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	case "tukey":
		return TypeTukey, nil
	default:
		return TypeNone, fmt.Errorf("window: unknown type %q: %w", name, core.ErrInvalidInput)
	}
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	periodic bool
}

func defaultConfig() config {
	return config{
		alpha: 0.5,
	}
}

// WithAlpha sets the Tukey taper fraction in [0, 1].
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 && v <= 1 {
			c.alpha = v
		}
	}
}

// WithPeriodic selects the periodic (DFT-even) form used for STFT framing
// instead of the default symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
//
// The symmetric form matches numpy.hanning / numpy.hamming. A length-1
// window is always [1].
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic), cfg)
	}

	return out
}

// Apply returns a new slice holding samples multiplied by the selected
// window. samples is not modified. TypeNone returns a plain copy.
func Apply(t Type, samples []float64, opts ...Option) []float64 {
	if len(samples) == 0 {
		return nil
	}

	out := make([]float64, len(samples))
	if t == TypeNone {
		copy(out, samples)
		return out
	}

	vecmath.MulBlock(out, samples, Generate(t, len(samples), opts...))

	return out
}

func evalWindow(t Type, x float64, cfg config) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeTukey:
		return tukeyAt(x, cfg.alpha)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}

	if alpha >= 1 {
		return cosineFromCoeffs(x, hannCoeffs)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}
