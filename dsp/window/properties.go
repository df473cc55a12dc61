package window

import "math"

// Properties holds spectral figures of merit for a set of coefficients.
type Properties struct {
	// CoherentGain is sum(w)/N, the DC gain of the window.
	CoherentGain float64
	// PowerSum is sum(w^2); STFT density scaling divides by fs*PowerSum.
	PowerSum float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// ScallopLossdB is the response half a bin off-center relative to DC.
	ScallopLossdB float64
}

// Analyze computes Properties for coeffs. It returns an error for an empty
// slice or a window with zero coherent gain.
func Analyze(coeffs []float64) (Properties, error) {
	if len(coeffs) == 0 {
		return Properties{}, errEmptyCoeffs
	}

	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	if sum == 0 {
		return Properties{}, errZeroCoherentGain
	}

	n := float64(len(coeffs))
	halfBin := responseAt(coeffs, 0.5/n)

	return Properties{
		CoherentGain:  sum / n,
		PowerSum:      sumSq,
		ENBW:          n * sumSq / (sum * sum),
		ScallopLossdB: 10 * math.Log10(halfBin/(sum*sum)),
	}, nil
}

// responseAt returns |W(f)|^2 at normalized frequency f (cycles/sample).
func responseAt(coeffs []float64, f float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * f
	for k, c := range coeffs {
		re += c * math.Cos(w*float64(k))
		im -= c * math.Sin(w*float64(k))
	}

	return re*re + im*im
}
