package spectrum

import (
	"fmt"
	"math"
	"sort"
)

// PowerSpectrum is a periodogram sampled on a strictly increasing,
// near-uniform frequency grid.
//
// Freq and Power are parallel slices owned by the spectrum. Treat both
// as read-only after construction; [New] copies its inputs so the caller
// keeps ownership of the originals.
type PowerSpectrum struct {
	Freq  []float64
	Power []float64
}

// SNRSpectrum is a background-divided spectrum: dimensionless
// signal-to-noise values near 1.0 outside oscillation regions, on the
// same frequency grid as the PowerSpectrum it was derived from.
//
// Treat both slices as read-only after construction.
type SNRSpectrum struct {
	Freq []float64
	SNR  []float64
}

// New validates and copies the given frequency/power arrays.
//
// The frequency axis must be strictly increasing with at least two
// points; both arrays must have equal length, be finite throughout, and
// power must be non-negative. Violations return a wrapped
// [ErrInvalidSpectrum].
func New(freq, power []float64) (*PowerSpectrum, error) {
	if err := validateAxes(freq, power); err != nil {
		return nil, err
	}

	ps := &PowerSpectrum{
		Freq:  make([]float64, len(freq)),
		Power: make([]float64, len(power)),
	}
	copy(ps.Freq, freq)
	copy(ps.Power, power)

	return ps, nil
}

// NewSNR validates and copies a frequency/SNR pair into an [SNRSpectrum].
//
// This is for callers that already hold a background-divided spectrum
// from an external pipeline; [Flatten] is the usual constructor.
func NewSNR(freq, snr []float64) (*SNRSpectrum, error) {
	if err := validateAxes(freq, snr); err != nil {
		return nil, err
	}

	s := &SNRSpectrum{
		Freq: make([]float64, len(freq)),
		SNR:  make([]float64, len(snr)),
	}
	copy(s.Freq, freq)
	copy(s.SNR, snr)

	return s, nil
}

func validateAxes(freq, values []float64) error {
	if len(freq) < 2 {
		return fmt.Errorf("spectrum requires at least 2 points, got %d: %w", len(freq), ErrInvalidSpectrum)
	}

	if len(freq) != len(values) {
		return fmt.Errorf("spectrum axis length mismatch: %d != %d: %w", len(freq), len(values), ErrInvalidSpectrum)
	}

	for i, f := range freq {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("spectrum frequency not finite at index %d: %w", i, ErrInvalidSpectrum)
		}

		if i > 0 && !(f > freq[i-1]) {
			return fmt.Errorf("spectrum frequency must be strictly increasing at index %d: %w", i, ErrInvalidSpectrum)
		}
	}

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("spectrum value not finite at index %d: %w", i, ErrInvalidSpectrum)
		}

		if v < 0 {
			return fmt.Errorf("spectrum value must be non-negative at index %d: %w", i, ErrInvalidSpectrum)
		}
	}

	return nil
}

// Len returns the number of frequency bins.
func (p *PowerSpectrum) Len() int { return len(p.Freq) }

// MinFreq returns the lowest frequency on the grid.
func (p *PowerSpectrum) MinFreq() float64 { return p.Freq[0] }

// MaxFreq returns the highest frequency on the grid.
func (p *PowerSpectrum) MaxFreq() float64 { return p.Freq[len(p.Freq)-1] }

// Span returns the total frequency extent of the grid.
func (p *PowerSpectrum) Span() float64 { return p.MaxFreq() - p.MinFreq() }

// BinSpacing returns the median frequency spacing between adjacent bins.
func (p *PowerSpectrum) BinSpacing() float64 { return MedianSpacing(p.Freq) }

// Len returns the number of frequency bins.
func (s *SNRSpectrum) Len() int { return len(s.Freq) }

// MinFreq returns the lowest frequency on the grid.
func (s *SNRSpectrum) MinFreq() float64 { return s.Freq[0] }

// MaxFreq returns the highest frequency on the grid.
func (s *SNRSpectrum) MaxFreq() float64 { return s.Freq[len(s.Freq)-1] }

// Span returns the total frequency extent of the grid.
func (s *SNRSpectrum) Span() float64 { return s.MaxFreq() - s.MinFreq() }

// BinSpacing returns the median frequency spacing between adjacent bins.
func (s *SNRSpectrum) BinSpacing() float64 { return MedianSpacing(s.Freq) }

// MedianSpacing computes the median of adjacent-bin frequency steps.
// The median is robust against the occasional gap in an otherwise
// near-uniform grid; every frequency-units-to-bins conversion in this
// module uses it.
func MedianSpacing(freq []float64) float64 {
	if len(freq) < 2 {
		return 0
	}

	steps := make([]float64, len(freq)-1)
	for i := 1; i < len(freq); i++ {
		steps[i-1] = freq[i] - freq[i-1]
	}
	sort.Float64s(steps)

	mid := len(steps) / 2
	if len(steps)%2 == 1 {
		return steps[mid]
	}

	return (steps[mid-1] + steps[mid]) / 2
}

// Regrid resamples the spectrum onto a uniform grid of n points spanning
// the same frequency range, using piecewise-linear interpolation.
//
// Periodogram grids from real pipelines are often only approximately
// uniform; the autocorrelation scan assumes a constant bin spacing, so
// callers with irregular grids should regrid first.
func Regrid(p *PowerSpectrum, n int) (*PowerSpectrum, error) {
	if p == nil {
		return nil, fmt.Errorf("regrid: nil spectrum: %w", ErrInvalidSpectrum)
	}

	if n < 2 {
		return nil, fmt.Errorf("regrid: target size must be >= 2, got %d: %w", n, ErrInvalidSpectrum)
	}

	freq := make([]float64, n)
	step := p.Span() / float64(n-1)
	for i := range freq {
		freq[i] = p.MinFreq() + float64(i)*step
	}
	// Guard against accumulated rounding pushing the last point past the
	// source range.
	freq[n-1] = p.MaxFreq()

	power := interpolateLinear(p.Freq, p.Power, freq)

	return &PowerSpectrum{Freq: freq, Power: power}, nil
}

// interpolateLinear performs piecewise-linear interpolation of (x, y) at
// queryX. x must be strictly increasing (guaranteed by construction of
// every spectrum in this package); queries outside the range clamp to
// the edge values.
func interpolateLinear(x, y, queryX []float64) []float64 {
	out := make([]float64, len(queryX))
	for i, q := range queryX {
		if q <= x[0] {
			out[i] = y[0]
			continue
		}

		if q >= x[len(x)-1] {
			out[i] = y[len(y)-1]
			continue
		}

		j := sort.SearchFloat64s(x, q)
		x0, x1 := x[j-1], x[j]
		t := (q - x0) / (x1 - x0)
		out[i] = y[j-1] + t*(y[j]-y[j-1])
	}

	return out
}
