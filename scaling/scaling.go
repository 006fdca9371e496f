// Package scaling applies the asteroseismic scaling relations: power
// laws connecting nu_max, delta_nu and effective temperature to stellar
// mass, radius and surface gravity, normalized to solar reference
// values.
//
// All functions are pure: no state is retained between calls, and
// identical inputs yield identical outputs.
package scaling

import (
	"errors"
	"fmt"
	"math"
)

// Solar reference values anchoring the scaling relations.
const (
	// SolarNumax is the solar frequency of maximum oscillation power in µHz.
	SolarNumax = 3090.0

	// SolarDeltanu is the solar large frequency separation in µHz.
	SolarDeltanu = 135.1

	// SolarTeff is the solar effective temperature in kelvin.
	SolarTeff = 5777.2

	// SolarGravity is the solar surface gravity in cm s^-2.
	SolarGravity = 27420.0
)

// ErrInvalidInput reports a non-positive or non-finite scalar input to a
// scaling relation.
var ErrInvalidInput = errors.New("scaling: input must be positive and finite")

// SolarReference bundles the solar constants a [Params] estimate was
// normalized against.
type SolarReference struct {
	Numax   float64 // µHz
	Deltanu float64 // µHz
	Teff    float64 // K
	Gravity float64 // cm s^-2
}

// DefaultSolar returns the package's solar reference constants.
func DefaultSolar() SolarReference {
	return SolarReference{
		Numax:   SolarNumax,
		Deltanu: SolarDeltanu,
		Teff:    SolarTeff,
		Gravity: SolarGravity,
	}
}

// Params is a stellar parameter estimate: mass and radius in solar
// units and surface gravity as log10 of cgs gravity, together with the
// solar reference used to derive them.
type Params struct {
	Mass   float64 // M/M_sun
	Radius float64 // R/R_sun
	LogG   float64 // log10(g [cm s^-2])
	Solar  SolarReference
}

// Mass estimates stellar mass in solar units:
//
//	M/M_sun = (nu_max/nu_max_sun)^3 * (delta_nu/delta_nu_sun)^-4 * (Teff/Teff_sun)^1.5
func Mass(numax, deltanu, teff float64) (float64, error) {
	if err := validate("nu_max", numax); err != nil {
		return 0, err
	}
	if err := validate("delta_nu", deltanu); err != nil {
		return 0, err
	}
	if err := validate("teff", teff); err != nil {
		return 0, err
	}

	return math.Pow(numax/SolarNumax, 3) *
		math.Pow(deltanu/SolarDeltanu, -4) *
		math.Pow(teff/SolarTeff, 1.5), nil
}

// Radius estimates stellar radius in solar units:
//
//	R/R_sun = (nu_max/nu_max_sun) * (delta_nu/delta_nu_sun)^-2 * (Teff/Teff_sun)^0.5
func Radius(numax, deltanu, teff float64) (float64, error) {
	if err := validate("nu_max", numax); err != nil {
		return 0, err
	}
	if err := validate("delta_nu", deltanu); err != nil {
		return 0, err
	}
	if err := validate("teff", teff); err != nil {
		return 0, err
	}

	return (numax / SolarNumax) *
		math.Pow(deltanu/SolarDeltanu, -2) *
		math.Sqrt(teff/SolarTeff), nil
}

// LogG estimates surface gravity as log10(g) with g in cm s^-2:
//
//	g/g_sun = (nu_max/nu_max_sun) * (Teff/Teff_sun)^0.5
func LogG(numax, teff float64) (float64, error) {
	if err := validate("nu_max", numax); err != nil {
		return 0, err
	}
	if err := validate("teff", teff); err != nil {
		return 0, err
	}

	g := SolarGravity * (numax / SolarNumax) * math.Sqrt(teff/SolarTeff)

	return math.Log10(g), nil
}

// Estimate bundles [Mass], [Radius] and [LogG] into a single [Params]
// value.
func Estimate(numax, deltanu, teff float64) (Params, error) {
	m, err := Mass(numax, deltanu, teff)
	if err != nil {
		return Params{}, err
	}

	r, err := Radius(numax, deltanu, teff)
	if err != nil {
		return Params{}, err
	}

	lg, err := LogG(numax, teff)
	if err != nil {
		return Params{}, err
	}

	return Params{
		Mass:   m,
		Radius: r,
		LogG:   lg,
		Solar:  DefaultSolar(),
	}, nil
}

func validate(name string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s = %g", ErrInvalidInput, name, v)
	}

	return nil
}
