package quantize

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/cwbudde/algo-siglab/dsp/core"
)

// DitherType selects the probability distribution of the dither noise.
type DitherType int

const (
	// DitherNone applies no dither.
	DitherNone DitherType = iota
	// DitherRectangular adds uniform noise in [-amp, amp).
	DitherRectangular
	// DitherTriangular adds the difference of two uniform draws (TPDF).
	DitherTriangular
	// DitherGaussian adds normally distributed noise with deviation amp.
	DitherGaussian

	ditherTypeCount
)

var ditherTypeNames = [ditherTypeCount]string{
	"None", "Rectangular", "Triangular", "Gaussian",
}

// String returns the name of the dither type.
func (dt DitherType) String() string {
	if dt.Valid() {
		return ditherTypeNames[dt]
	}

	return fmt.Sprintf("DitherType(%d)", int(dt))
}

// Valid reports whether dt is a known dither type.
func (dt DitherType) Valid() bool {
	return dt >= 0 && dt < ditherTypeCount
}

// ParseDitherType resolves a case-insensitive dither name. "rpdf" and
// "tpdf" are accepted for rectangular and triangular.
func ParseDitherType(name string) (DitherType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return DitherNone, nil
	case "rectangular", "rpdf":
		return DitherRectangular, nil
	case "triangular", "tpdf":
		return DitherTriangular, nil
	case "gaussian":
		return DitherGaussian, nil
	default:
		return DitherNone, fmt.Errorf("quantize: unknown dither %q: %w", name, core.ErrInvalidInput)
	}
}

// ditherSource draws noise in units of one quantization step.
type ditherSource struct {
	kind DitherType
	amp  float64
	rng  *rand.Rand
}

func newDitherSource(kind DitherType, amp float64, seed uint64) *ditherSource {
	if kind == DitherNone || amp == 0 {
		return nil
	}

	return &ditherSource{
		kind: kind,
		amp:  amp,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (d *ditherSource) next() float64 {
	if d == nil {
		return 0
	}

	switch d.kind {
	case DitherRectangular:
		return d.amp * (d.rng.Float64()*2 - 1)
	case DitherTriangular:
		return d.amp * (d.rng.Float64() - d.rng.Float64())
	case DitherGaussian:
		return d.amp * d.rng.NormFloat64()
	default:
		return 0
	}
}
