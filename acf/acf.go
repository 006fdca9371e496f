// Package acf provides autocorrelation primitives for oscillation
// analysis: single-segment lag autocorrelation and the sliding-window
// autocorrelation map used to locate the frequency of maximum
// oscillation power.
package acf

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-astero/spectrum"
)

// zeroVarianceEps bounds the variance-to-scale ratio below which a
// segment is treated as constant. Mean-subtraction rounding leaves at
// most a few squared ULPs per sample relative to maxAbs^2; real
// spectral structure sits many orders of magnitude above this.
const zeroVarianceEps = 1e-24

// Lags computes the normalized autocorrelation of segment over lags
// 0..maxLag-1 via the Wiener-Khinchin theorem: the segment is mean
// subtracted, zero padded to a power of two at least twice its length
// (so the correlation is linear, not circular), transformed, and the
// inverse transform of its power spectrum yields the autocovariance.
// The result is scaled so lag 0 equals 1.
//
// maxLag is clamped to the segment length; a non-positive maxLag selects
// the full lag range. A segment with zero variance has no defined
// autocorrelation and returns an error.
func Lags(segment []float64, maxLag int) ([]float64, error) {
	n := len(segment)
	if n < 2 {
		return nil, fmt.Errorf("acf: segment requires at least 2 samples, got %d", n)
	}

	if maxLag <= 0 || maxLag > n {
		maxLag = n
	}

	mean := 0.0
	maxAbs := 0.0
	for _, v := range segment {
		mean += v
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range segment {
		d := v - mean
		variance += d * d
	}

	// Relative guard: a constant segment whose value is not exactly
	// representable leaves rounding residue of order (ulp * maxAbs)^2
	// per sample in the accumulated variance.
	if variance <= zeroVarianceEps*float64(n)*maxAbs*maxAbs {
		return nil, fmt.Errorf("acf: segment has zero variance")
	}

	fftSize := nextPowerOf2(2 * n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("acf: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range segment {
		padded[i] = complex(v-mean, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, err
	}

	// |X[k]|^2 via the SIMD power kernel, then back to the lag domain.
	re := make([]float64, fftSize)
	im := make([]float64, fftSize)
	for i, c := range freq {
		re[i] = real(c)
		im[i] = imag(c)
	}

	power := make([]float64, fftSize)
	vecmath.Power(power, re, im)

	for i, p := range power {
		freq[i] = complex(p, 0)
	}

	lagDomain := make([]complex128, fftSize)
	if err := plan.Inverse(lagDomain, freq); err != nil {
		return nil, err
	}

	autocov := make([]float64, maxLag)
	for i := range autocov {
		autocov[i] = real(lagDomain[i])
	}

	if autocov[0] <= 0 {
		return nil, fmt.Errorf("acf: non-positive zero-lag autocovariance")
	}

	out := make([]float64, maxLag)
	vecmath.ScaleBlock(out, autocov, 1/autocov[0])

	return out, nil
}

// Map is a 2D autocorrelation diagnostic grid: one normalized
// autocorrelation row per sliding-window position.
//
// Centers holds the window-center frequencies in increasing order, Lags
// the lag axis in frequency units (shared by all rows), and Rows[i] the
// autocorrelation at Centers[i]. Windows over zero-variance data yield
// all-zero rows.
type Map struct {
	Centers []float64
	Lags    []float64
	Rows    [][]float64
}

// Collapse sums the squared correlation over lag for each window
// position, producing a 1D curve versus window-center frequency.
// Squaring weights coherent structure over the low-level ripple present
// in every window.
func (m *Map) Collapse() []float64 {
	out := make([]float64, len(m.Rows))
	for i, row := range m.Rows {
		sum := 0.0
		for _, v := range row {
			sum += v * v
		}
		out[i] = sum
	}

	return out
}

// SlidingMap computes a sliding-window autocorrelation map over a
// spectrum given as parallel freq/values slices on a near-uniform grid.
//
// windowWidth and step are in frequency units. Windows that would extend
// beyond the spectrum bounds are excluded rather than zero padded, so
// the first center sits half a window above the lowest frequency. Lags
// run up to half the window width.
func SlidingMap(freq, values []float64, windowWidth, step float64) (*Map, error) {
	if len(freq) != len(values) {
		return nil, fmt.Errorf("acf: freq/values length mismatch: %d != %d", len(freq), len(values))
	}

	if windowWidth <= 0 || step <= 0 {
		return nil, fmt.Errorf("acf: window width and step must be > 0: %g, %g", windowWidth, step)
	}

	n := len(freq)
	if n < 2 {
		return nil, fmt.Errorf("acf: spectrum requires at least 2 bins, got %d", n)
	}

	spacing := spectrum.MedianSpacing(freq)
	if spacing <= 0 {
		return nil, fmt.Errorf("acf: degenerate frequency grid")
	}

	widthBins := int(windowWidth/spacing + 0.5)
	if widthBins < 4 {
		return nil, fmt.Errorf("acf: window width %g spans only %d bins, need at least 4", windowWidth, widthBins)
	}

	if widthBins > n {
		return nil, fmt.Errorf("acf: window width %g exceeds spectrum span %g", windowWidth, freq[n-1]-freq[0])
	}

	stepBins := int(step/spacing + 0.5)
	if stepBins < 1 {
		stepBins = 1
	}

	maxLag := widthBins / 2

	m := &Map{
		Lags: make([]float64, maxLag),
	}
	for i := range m.Lags {
		m.Lags[i] = float64(i) * spacing
	}

	for start := 0; start+widthBins <= n; start += stepBins {
		seg := values[start : start+widthBins]

		row, err := Lags(seg, maxLag)
		if err != nil {
			// Featureless window (e.g. flat background); contributes no
			// correlation power.
			row = make([]float64, maxLag)
		}

		center := (freq[start] + freq[start+widthBins-1]) / 2
		m.Centers = append(m.Centers, center)
		m.Rows = append(m.Rows, row)
	}

	if len(m.Rows) == 0 {
		return nil, fmt.Errorf("acf: no window fits inside the spectrum")
	}

	return m, nil
}

// ParabolicPeak refines a discrete argmax by fitting a parabola through
// the sample and its two neighbors, returning the fractional index of
// the vertex. Indices at the slice edges are returned unchanged.
func ParabolicPeak(data []float64, idx int) float64 {
	if idx <= 0 || idx >= len(data)-1 {
		return float64(idx)
	}

	a := data[idx-1]
	b := data[idx]
	c := data[idx+1]

	denom := a - 2*b + c
	if denom == 0 || math.IsNaN(denom) {
		return float64(idx)
	}

	offset := 0.5 * (a - c) / denom
	if offset > 0.5 {
		offset = 0.5
	} else if offset < -0.5 {
		offset = -0.5
	}

	return float64(idx) + offset
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
