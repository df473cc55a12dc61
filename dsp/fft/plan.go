package fft

import (
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-siglab/dsp/core"
)

// complexPlan is satisfied by *algofft.Plan[complex128] and mixedRadixPlan.
type complexPlan interface {
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// mixedRadixPlan adapts gonum's CmplxFFT to the plan interface and applies
// the 1/n inverse scaling that gonum leaves to the caller.
type mixedRadixPlan struct {
	fft   *fourier.CmplxFFT
	scale float64
}

func (p *mixedRadixPlan) Forward(dst, src []complex128) error {
	p.fft.Coefficients(dst, src)
	return nil
}

func (p *mixedRadixPlan) Inverse(dst, src []complex128) error {
	p.fft.Sequence(dst, src)
	s := complex(p.scale, 0)
	for i := range dst {
		dst[i] *= s
	}
	return nil
}

func newComplexPlan(n int) complexPlan {
	if core.IsPowerOfTwo(n) {
		if plan, err := algofft.NewPlan64(n); err == nil {
			return plan
		}
	}

	return &mixedRadixPlan{fft: fourier.NewCmplxFFT(n), scale: 1 / float64(n)}
}

// planPool keeps one sync.Pool per transform size.
type planPool[T any] struct {
	pools sync.Map
	build func(n int) T
}

func (p *planPool[T]) get(n int) T {
	v, ok := p.pools.Load(n)
	if !ok {
		v, _ = p.pools.LoadOrStore(n, &sync.Pool{New: func() any { return p.build(n) }})
	}

	return v.(*sync.Pool).Get().(T)
}

func (p *planPool[T]) put(n int, plan T) {
	if v, ok := p.pools.Load(n); ok {
		v.(*sync.Pool).Put(plan)
	}
}

var (
	complexPlans = &planPool[complexPlan]{build: newComplexPlan}
	realPlans    = &planPool[*fourier.FFT]{build: fourier.NewFFT}
)
