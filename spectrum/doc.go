// Package spectrum provides power-spectrum value types and background
// flattening for solar-like oscillation analysis.
//
// A [PowerSpectrum] holds a periodogram as parallel frequency/power
// slices with a strictly increasing frequency axis. [Flatten] estimates
// the slowly varying background with a wide moving median and divides it
// out, producing an [SNRSpectrum] whose values sit near 1.0 away from the
// oscillation envelope:
//
//	ps, _ := spectrum.New(freq, power)
//	snr, err := spectrum.Flatten(ps, 400) // 400 µHz background scale
//
// Downstream estimators (measure/numax, measure/deltanu) consume the
// SNRSpectrum; all structures are value results and are never mutated
// after construction.
package spectrum
