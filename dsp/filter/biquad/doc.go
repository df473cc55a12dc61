// Package biquad runs cascades of second-order IIR sections.
//
// A [Section] filters samples in Direct Form II Transposed using
// [Coefficients] normalized so that a0 = 1. A [Chain] feeds the output of each
// section into the next and is what the low-pass path of the filter bank runs.
// Coefficient design lives in dsp/filter/design.
package biquad
