package testutil

import "math"

// CombSpec describes a synthetic solar-like oscillation spectrum: a
// Gaussian mode envelope centered at Center with the given FWHM, filled
// with a comb of narrow modes spaced Spacing apart, riding on a unit
// background.
type CombSpec struct {
	Center    float64 // envelope center frequency
	FWHM      float64 // envelope full width at half maximum
	Spacing   float64 // comb spacing between adjacent modes
	ModeWidth float64 // Gaussian sigma of an individual mode
	Amplitude float64 // envelope peak height above the background
}

// UniformGrid returns n frequencies from lo to hi inclusive.
func UniformGrid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// EnvelopeComb evaluates the CombSpec on the given frequency grid,
// returning SNR-like values: 1.0 background plus the enveloped mode
// comb. Modes extend two FWHM to either side of the envelope center.
func EnvelopeComb(freq []float64, spec CombSpec) []float64 {
	sigmaEnv := spec.FWHM / (2 * math.Sqrt(2*math.Ln2))

	nModes := int(2 * spec.FWHM / spec.Spacing)

	out := make([]float64, len(freq))
	for i, f := range freq {
		v := 1.0
		for k := -nModes; k <= nModes; k++ {
			mode := spec.Center + float64(k)*spec.Spacing
			env := spec.Amplitude * math.Exp(-(mode-spec.Center)*(mode-spec.Center)/(2*sigmaEnv*sigmaEnv))
			d := f - mode
			v += env * math.Exp(-d*d/(2*spec.ModeWidth*spec.ModeWidth))
		}
		out[i] = v
	}
	return out
}

// GaussianBump evaluates a single Gaussian of the given center, sigma
// and height on the grid, on a unit baseline. Used for featureless
// envelope fixtures (no resolved mode comb).
func GaussianBump(freq []float64, center, sigma, height float64) []float64 {
	out := make([]float64, len(freq))
	for i, f := range freq {
		d := f - center
		out[i] = 1 + height*math.Exp(-d*d/(2*sigma*sigma))
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}
