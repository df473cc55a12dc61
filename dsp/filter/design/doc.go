// Package design computes IIR coefficients for dsp/filter/biquad.
//
// [ButterworthLP] returns the second-order sections (plus one first-order
// section for odd orders) of a maximally flat low-pass filter. Each section is
// the prewarped bilinear transform of one analog Butterworth pole pair, so the
// cascade's -3 dB point lands exactly on the requested cutoff.
package design
