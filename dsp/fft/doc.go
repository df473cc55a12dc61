// Package fft computes discrete Fourier transforms of arbitrary length.
//
// Power-of-two complex transforms run on algo-fft plans; every other length,
// and all real-input transforms, run on gonum's mixed-radix FFTPACK port.
// Plans are pooled per size, so the functions are safe for concurrent use and
// every call returns freshly allocated output.
//
// Conventions follow numpy.fft: forward transforms are unscaled, inverse
// transforms are scaled by 1/n.
package fft
