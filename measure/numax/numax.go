// Package numax estimates the frequency of maximum oscillation power
// (nu_max) of a solar-like oscillator from a signal-to-noise spectrum.
//
// A window of fixed frequency width slides across the spectrum; each
// window's autocorrelation is collapsed over lag, and the smoothed
// collapsed curve peaks where the oscillation envelope concentrates
// correlation power.
package numax

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-astero/acf"
	"github.com/cwbudde/algo-astero/internal/smooth"
	"github.com/cwbudde/algo-astero/spectrum"
)

const (
	defaultWindowWidth = 250.0
	windowStepFraction = 10.0
	smoothStepFactor   = 3.0
)

// ErrNoPeak reports that the collapsed correlation curve rises or falls
// monotonically edge to edge, so no interior maximum exists.
var ErrNoPeak = errors.New("numax: no interior peak in collapsed correlation curve")

// Config holds nu_max estimation parameters. Zero values select
// defaults: a 250 (µHz-equivalent) window, a step of one tenth of the
// window width, and collapsed-curve smoothing over three steps.
type Config struct {
	WindowWidth float64 // sliding-window width in frequency units
	StepSize    float64 // window advance per scan position
	SmoothWidth float64 // Gaussian smoothing width for the collapsed curve
}

// Result holds the nu_max estimate together with the diagnostic curves
// it was derived from.
//
// Centers, Collapsed and Smoothed are parallel: the collapsed (raw and
// smoothed) correlation power at each window-center frequency. Map is
// the full 2D autocorrelation grid for external rendering.
type Result struct {
	Numax     float64
	Centers   []float64
	Collapsed []float64
	Smoothed  []float64
	Map       *acf.Map
}

// Estimate locates nu_max by scanning a sliding autocorrelation window
// across the SNR spectrum.
//
// Windows that would extend beyond the spectrum bounds are excluded from
// the scan. The collapsed curve is Gaussian smoothed and its global
// maximum, refined by parabolic interpolation between scan positions,
// is returned as nu_max.
//
// A spectrum whose span is shorter than the window width returns a
// wrapped [spectrum.ErrInvalidSpectrum]; a smoothed curve with its
// maximum at either scan edge returns [ErrNoPeak].
func Estimate(s *spectrum.SNRSpectrum, cfg Config) (Result, error) {
	if s == nil || s.Len() < 2 {
		return Result{}, fmt.Errorf("numax: %w", spectrum.ErrInvalidSpectrum)
	}

	cfg = normalizeConfig(cfg)

	if s.Span() < cfg.WindowWidth {
		return Result{}, fmt.Errorf("numax: spectrum span %g is shorter than window width %g: %w",
			s.Span(), cfg.WindowWidth, spectrum.ErrInvalidSpectrum)
	}

	m, err := acf.SlidingMap(s.Freq, s.SNR, cfg.WindowWidth, cfg.StepSize)
	if err != nil {
		return Result{}, fmt.Errorf("numax: %w", err)
	}

	collapsed := m.Collapse()

	if len(collapsed) < 3 {
		return Result{}, fmt.Errorf("%w: only %d scan positions", ErrNoPeak, len(collapsed))
	}

	sigmaSteps := cfg.SmoothWidth / cfg.StepSize
	smoothed := smooth.Gaussian(collapsed, sigmaSteps)

	peak := 0
	for i, v := range smoothed {
		if v > smoothed[peak] {
			peak = i
		}
	}

	if peak == 0 || peak == len(smoothed)-1 {
		return Result{}, fmt.Errorf("%w: maximum at scan edge", ErrNoPeak)
	}

	// Refine between scan positions; centers are uniformly spaced by the
	// scan step.
	frac := acf.ParabolicPeak(smoothed, peak)
	centerStep := m.Centers[1] - m.Centers[0]
	nm := m.Centers[peak] + (frac-float64(peak))*centerStep

	return Result{
		Numax:     nm,
		Centers:   m.Centers,
		Collapsed: collapsed,
		Smoothed:  smoothed,
		Map:       m,
	}, nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.WindowWidth <= 0 {
		cfg.WindowWidth = defaultWindowWidth
	}

	if cfg.StepSize <= 0 {
		cfg.StepSize = cfg.WindowWidth / windowStepFraction
	}

	if cfg.SmoothWidth <= 0 {
		cfg.SmoothWidth = smoothStepFactor * cfg.StepSize
	}

	return cfg
}
