package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-astero/internal/smooth"
)

// Flatten divides out the slowly varying background of a power spectrum,
// producing a signal-to-noise spectrum.
//
// The background is estimated with a moving median of width filterWidth,
// given in frequency units of the spectrum's grid. A moving median
// follows granulation and white-noise background levels while staying
// insensitive to the narrow oscillation peaks riding on top of them.
//
// filterWidth trades off background fidelity against signal loss: too
// small and the median tracks (and removes) the oscillation envelope
// itself, too large and background curvature leaks into the SNR values.
// A width several times the expected envelope FWHM is a reasonable
// starting point.
//
// Returns a wrapped [ErrInvalidSpectrum] when filterWidth is not
// positive or when the spectrum holds fewer than twice the filter width
// in bins.
func Flatten(p *PowerSpectrum, filterWidth float64) (*SNRSpectrum, error) {
	if p == nil {
		return nil, fmt.Errorf("flatten: nil spectrum: %w", ErrInvalidSpectrum)
	}

	if filterWidth <= 0 {
		return nil, fmt.Errorf("flatten: filter width must be > 0, got %g: %w", filterWidth, ErrInvalidSpectrum)
	}

	spacing := p.BinSpacing()
	if spacing <= 0 {
		return nil, fmt.Errorf("flatten: degenerate frequency grid: %w", ErrInvalidSpectrum)
	}

	widthBins := int(filterWidth/spacing + 0.5)
	if widthBins < 1 {
		widthBins = 1
	}

	if p.Len() < 2*widthBins {
		return nil, fmt.Errorf("flatten: spectrum has %d bins, need at least %d for filter width %g: %w",
			p.Len(), 2*widthBins, filterWidth, ErrInvalidSpectrum)
	}

	background := smooth.MovingMedian(p.Power, widthBins)

	snr := make([]float64, p.Len())
	for i, bg := range background {
		if bg > 0 {
			snr[i] = p.Power[i] / bg
		}
	}

	freq := make([]float64, p.Len())
	copy(freq, p.Freq)

	return &SNRSpectrum{Freq: freq, SNR: snr}, nil
}
