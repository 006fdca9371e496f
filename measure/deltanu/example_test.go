package deltanu_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-astero/internal/testutil"
	"github.com/cwbudde/algo-astero/measure/deltanu"
	"github.com/cwbudde/algo-astero/spectrum"
)

func ExampleEstimate() {
	// Synthetic oscillator: mode envelope at 1000 µHz, 50 µHz comb.
	freq := testutil.UniformGrid(0, 2000, 4001)
	values := testutil.EnvelopeComb(freq, testutil.CombSpec{
		Center:    1000,
		FWHM:      300,
		Spacing:   50,
		ModeWidth: 1.0,
		Amplitude: 20,
	})

	snr, err := spectrum.NewSNR(freq, values)
	if err != nil {
		panic(err)
	}

	res, err := deltanu.Estimate(snr, 1000, deltanu.Config{
		Regime: deltanu.RegimeMainSequence,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("delta_nu: %.0f µHz\n", math.Round(res.Deltanu))
	// Output:
	// delta_nu: 50 µHz
}
