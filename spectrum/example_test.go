package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-astero/spectrum"
)

func ExampleFlatten() {
	// A flat 5.0 background divides out to SNR = 1 everywhere.
	n := 401
	freq := make([]float64, n)
	power := make([]float64, n)
	for i := range freq {
		freq[i] = float64(i) * 2.5
		power[i] = 5.0
	}

	ps, err := spectrum.New(freq, power)
	if err != nil {
		panic(err)
	}

	snr, err := spectrum.Flatten(ps, 100)
	if err != nil {
		panic(err)
	}

	fmt.Printf("bins: %d\n", snr.Len())
	fmt.Printf("SNR at center: %.2f\n", snr.SNR[n/2])
	// Output:
	// bins: 401
	// SNR at center: 1.00
}
