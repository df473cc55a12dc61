package resample

import (
	"errors"
	"fmt"
	"math"
)

var errZeroSumFilter = errors.New("resample: designed zero-sum filter")

// polyphase is a rational up/down converter built from one prototype
// low-pass split into up branches.
type polyphase struct {
	up, down int
	phases   [][]float64
	delay    int // prototype group delay in upsampled samples
}

func polyphaseResample(x []float64, originalFs, newFs, count int, cfg config) ([]float64, error) {
	up, down := reducedRatio(originalFs, newFs, cfg.maxDen)

	p, err := newPolyphase(up, down, QualityProfile(cfg.quality))
	if err != nil {
		return nil, err
	}

	return p.process(x, count), nil
}

// reducedRatio returns newFs/originalFs in lowest terms, approximated when
// either term exceeds maxDen.
func reducedRatio(originalFs, newFs, maxDen int) (up, down int) {
	g := gcd(originalFs, newFs)
	up, down = newFs/g, originalFs/g

	if up > maxDen || down > maxDen {
		return approximateRatio(float64(newFs)/float64(originalFs), maxDen)
	}

	return up, down
}

func newPolyphase(up, down int, prof Profile) (*polyphase, error) {
	taps, err := designPrototype(up, down, prof)
	if err != nil {
		return nil, err
	}

	phases := make([][]float64, up)
	for ph := range up {
		for i := ph; i < len(taps); i += up {
			phases[ph] = append(phases[ph], taps[i])
		}
	}

	return &polyphase{
		up:     up,
		down:   down,
		phases: phases,
		delay:  (len(taps) - 1) / 2,
	}, nil
}

// process returns count output samples. Output j sits at upsampled index
// j*down; the prototype is centred there, and samples outside x count as 0.
func (p *polyphase) process(x []float64, count int) []float64 {
	out := make([]float64, count)

	for j := range out {
		m := j*p.down + p.delay
		ph := m % p.up
		base := (m - ph) / p.up

		var y float64

		for l, c := range p.phases[ph] {
			idx := base - l
			if idx < 0 {
				break
			}

			if idx < len(x) {
				y += c * x[idx]
			}
		}

		out[j] = y
	}

	return out
}

// designPrototype returns an odd-length Kaiser-windowed sinc low-pass at the
// tighter of the two Nyquist limits, scaled to a DC gain of up.
func designPrototype(up, down int, prof Profile) ([]float64, error) {
	if up <= 0 || down <= 0 {
		return nil, fmt.Errorf("resample: invalid ratio %d/%d", up, down)
	}

	nTaps := prof.TapsPerPhase*up + 1
	fc := 0.5 / float64(max(up, down)) * prof.CutoffScale

	taps := make([]float64, nTaps)
	center := float64(nTaps-1) / 2

	var sum float64

	for n := range taps {
		t := float64(n) - center
		taps[n] = 2 * fc * sinc(2*fc*t) * kaiserWindow(n, nTaps, prof.KaiserBeta)
		sum += taps[n]
	}

	if sum == 0 {
		return nil, errZeroSumFilter
	}

	scale := float64(up) / sum
	for i := range taps {
		taps[i] *= scale
	}

	return taps, nil
}

// approximateRatio finds the continued-fraction convergent of v with the
// largest denominator not exceeding maxDen.
func approximateRatio(v float64, maxDen int) (num, den int) {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1, 1
	}

	p0, q0 := 1.0, 0.0
	p1, q1 := math.Floor(v), 1.0
	x := v

	for {
		frac := x - math.Floor(x)
		if frac == 0 {
			break
		}

		x = 1 / frac
		a := math.Floor(x)

		p2, q2 := a*p1+p0, a*q1+q0
		if q2 > float64(maxDen) {
			break
		}

		p0, q0 = p1, q1
		p1, q1 = p2, q2
	}

	num, den = int(math.Round(p1)), int(math.Round(q1))
	if num <= 0 || den <= 0 {
		return 1, 1
	}

	g := gcd(num, den)

	return num / g, den / g
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	if a == 0 {
		return 1
	}

	return a
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	pix := math.Pi * x

	return math.Sin(pix) / pix
}

func kaiserWindow(i, n int, beta float64) float64 {
	if n <= 1 || beta == 0 {
		return 1
	}

	t := 2*float64(i)/float64(n-1) - 1

	return i0(beta*math.Sqrt(math.Max(0, 1-t*t))) / i0(beta)
}

// i0 is the zeroth-order modified Bessel function of the first kind.
func i0(x float64) float64 {
	sum, term := 1.0, 1.0
	x2 := x * x / 4

	for k := 1; k < 64; k++ {
		term *= x2 / float64(k*k)

		sum += term
		if term < 1e-16*sum {
			break
		}
	}

	return sum
}
