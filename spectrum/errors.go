package spectrum

import "errors"

// ErrInvalidSpectrum reports a malformed or too-short input spectrum.
//
// It is returned (wrapped with context) by [New], [Flatten], [Regrid] and
// by the estimators in measure/numax and measure/deltanu whenever an
// input spectrum cannot support the requested analysis.
var ErrInvalidSpectrum = errors.New("invalid spectrum")
