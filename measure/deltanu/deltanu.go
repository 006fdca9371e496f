// Package deltanu measures the large frequency separation (delta_nu)
// of a solar-like oscillator: the average spacing between consecutive
// overtones of the same radial order.
//
// The analysis is restricted to one envelope FWHM centered on nu_max,
// the autocorrelation of that sub-spectrum is computed, and the peak
// nearest an empirical prediction for delta_nu gives the measurement.
package deltanu

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-astero/acf"
	"github.com/cwbudde/algo-astero/spectrum"
)

// Regime selects the empirical envelope-width relation. The source
// material defines no reliable discriminator between the two, so the
// choice is an explicit input, never auto-detected.
type Regime int

const (
	// RegimeMainSequence uses FWHM = 0.25 * nu_max, appropriate for
	// main-sequence and subgiant oscillators.
	RegimeMainSequence Regime = iota

	// RegimeRedGiant uses FWHM = 0.66 * nu_max^0.88, appropriate for
	// red-giant oscillators.
	RegimeRedGiant
)

const (
	defaultPriorCoeff     = 0.294
	defaultPriorExponent  = 0.772
	defaultSearchFraction = 0.25
	defaultMinHeight      = 0.10

	// minSegmentBins is the smallest sub-spectrum worth autocorrelating.
	minSegmentBins = 16
)

// ErrNoPeak reports that no qualifying local maximum exists in the
// autocorrelation search neighborhood around the delta_nu prediction.
var ErrNoPeak = errors.New("deltanu: no autocorrelation peak near predicted spacing")

// Config holds delta_nu measurement parameters. Zero values select the
// published defaults.
//
// The prior relation is delta_nu = PriorCoeff * nu_max^PriorExponent
// (Stello et al. 2009 calibration). The exponent appears without a
// decimal point in some transcriptions of the relation; 0.772 is the
// literature value and is pinned by a regression test.
type Config struct {
	Regime         Regime
	PriorCoeff     float64 // default 0.294
	PriorExponent  float64 // default 0.772
	SearchFraction float64 // half-width of the search neighborhood, as a fraction of the prior
	MinHeight      float64 // minimum normalized correlation for a qualifying peak
}

// Result holds the delta_nu measurement together with the diagnostic
// curve it was derived from.
//
// Lags and ACF are parallel: the normalized autocorrelation of the
// sub-spectrum spanning [WindowLow, WindowHigh], with lags in frequency
// units. Prior is the empirical prediction the search was centered on.
type Result struct {
	Deltanu    float64
	Prior      float64
	WindowLow  float64
	WindowHigh float64
	Lags       []float64
	ACF        []float64
}

// EnvelopeFWHM returns the expected full width at half maximum of the
// oscillation mode envelope for the given nu_max and regime.
func EnvelopeFWHM(numax float64, regime Regime) float64 {
	if regime == RegimeRedGiant {
		return 0.66 * math.Pow(numax, 0.88)
	}

	return 0.25 * numax
}

// Estimate measures delta_nu from the SNR spectrum around a previously
// estimated nu_max.
//
// nu_max must lie within the frequency range of the spectrum; otherwise
// a wrapped [spectrum.ErrInvalidSpectrum] is returned. [ErrNoPeak] is
// returned when the autocorrelation has no local maximum of sufficient
// height within the search neighborhood.
func Estimate(s *spectrum.SNRSpectrum, numax float64, cfg Config) (Result, error) {
	if s == nil || s.Len() < 2 {
		return Result{}, fmt.Errorf("deltanu: %w", spectrum.ErrInvalidSpectrum)
	}

	if numax <= 0 || math.IsNaN(numax) || math.IsInf(numax, 0) {
		return Result{}, fmt.Errorf("deltanu: nu_max must be positive and finite, got %g: %w",
			numax, spectrum.ErrInvalidSpectrum)
	}

	if numax < s.MinFreq() || numax > s.MaxFreq() {
		return Result{}, fmt.Errorf("deltanu: nu_max %g outside spectrum range [%g, %g]: %w",
			numax, s.MinFreq(), s.MaxFreq(), spectrum.ErrInvalidSpectrum)
	}

	cfg = normalizeConfig(cfg)

	fwhm := EnvelopeFWHM(numax, cfg.Regime)

	lo := numax - fwhm/2
	hi := numax + fwhm/2
	if lo < s.MinFreq() {
		lo = s.MinFreq()
	}
	if hi > s.MaxFreq() {
		hi = s.MaxFreq()
	}

	i0 := sort.SearchFloat64s(s.Freq, lo)
	i1 := sort.SearchFloat64s(s.Freq, hi)
	if i1 < s.Len() && s.Freq[i1] == hi {
		i1++
	}

	if i1-i0 < minSegmentBins {
		return Result{}, fmt.Errorf("deltanu: envelope window [%g, %g] spans only %d bins, need at least %d: %w",
			lo, hi, i1-i0, minSegmentBins, spectrum.ErrInvalidSpectrum)
	}

	seg := s.SNR[i0:i1]
	spacing := spectrum.MedianSpacing(s.Freq[i0:i1])

	corr, err := acf.Lags(seg, len(seg)/2)
	if err != nil {
		return Result{}, fmt.Errorf("deltanu: %w", err)
	}

	lags := make([]float64, len(corr))
	for i := range lags {
		lags[i] = float64(i) * spacing
	}

	prior := cfg.PriorCoeff * math.Pow(numax, cfg.PriorExponent)

	searchLo := prior * (1 - cfg.SearchFraction)
	searchHi := prior * (1 + cfg.SearchFraction)

	dn, err := nearestPeak(lags, corr, searchLo, searchHi, prior, cfg.MinHeight)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Deltanu:    dn,
		Prior:      prior,
		WindowLow:  lo,
		WindowHigh: hi,
		Lags:       lags,
		ACF:        corr,
	}, nil
}

// nearestPeak finds the local maximum of corr within [searchLo,
// searchHi] (lag units) closest to the prior, refined by parabolic
// interpolation.
func nearestPeak(lags, corr []float64, searchLo, searchHi, prior, minHeight float64) (float64, error) {
	if len(lags) == 0 {
		return 0, fmt.Errorf("%w: empty autocorrelation", ErrNoPeak)
	}

	spacing := 0.0
	if len(lags) > 1 {
		spacing = lags[1] - lags[0]
	}

	best := -1
	bestDist := math.Inf(1)

	for i := 1; i < len(corr)-1; i++ {
		if lags[i] < searchLo || lags[i] > searchHi {
			continue
		}

		if corr[i] < minHeight {
			continue
		}

		if !(corr[i] > corr[i-1] && corr[i] >= corr[i+1]) {
			continue
		}

		dist := math.Abs(lags[i] - prior)
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	if best < 0 {
		return 0, fmt.Errorf("%w: searched lags [%g, %g]", ErrNoPeak, searchLo, searchHi)
	}

	frac := acf.ParabolicPeak(corr, best)

	return lags[best] + (frac-float64(best))*spacing, nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.PriorCoeff <= 0 {
		cfg.PriorCoeff = defaultPriorCoeff
	}

	if cfg.PriorExponent <= 0 {
		cfg.PriorExponent = defaultPriorExponent
	}

	if cfg.SearchFraction <= 0 || cfg.SearchFraction >= 1 {
		cfg.SearchFraction = defaultSearchFraction
	}

	if cfg.MinHeight <= 0 {
		cfg.MinHeight = defaultMinHeight
	}

	return cfg
}
