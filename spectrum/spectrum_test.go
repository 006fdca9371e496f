package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-astero/internal/testutil"
)

func TestNewCopiesInput(t *testing.T) {
	freq := []float64{1, 2, 3, 4}
	power := []float64{1, 2, 1, 2}

	ps, err := New(freq, power)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	freq[0] = 99
	power[0] = 99

	if ps.Freq[0] != 1 || ps.Power[0] != 1 {
		t.Fatalf("spectrum aliases caller slices: %v, %v", ps.Freq[0], ps.Power[0])
	}
}

func TestNewTooShort(t *testing.T) {
	_, err := New([]float64{1}, []float64{1})
	if !errors.Is(err, ErrInvalidSpectrum) {
		t.Fatalf("err = %v, want ErrInvalidSpectrum", err)
	}
}

func TestNewLengthMismatch(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, []float64{1, 2})
	if !errors.Is(err, ErrInvalidSpectrum) {
		t.Fatalf("err = %v, want ErrInvalidSpectrum", err)
	}
}

func TestNewNonIncreasing(t *testing.T) {
	_, err := New([]float64{1, 3, 2}, []float64{1, 1, 1})
	if !errors.Is(err, ErrInvalidSpectrum) {
		t.Fatalf("err = %v, want ErrInvalidSpectrum", err)
	}

	_, err = New([]float64{1, 2, 2}, []float64{1, 1, 1})
	if !errors.Is(err, ErrInvalidSpectrum) {
		t.Fatalf("duplicate frequency accepted: err = %v", err)
	}
}

func TestNewNonFinite(t *testing.T) {
	_, err := New([]float64{1, math.NaN(), 3}, []float64{1, 1, 1})
	if !errors.Is(err, ErrInvalidSpectrum) {
		t.Fatalf("NaN frequency accepted: err = %v", err)
	}

	_, err = New([]float64{1, 2, 3}, []float64{1, math.Inf(1), 1})
	if !errors.Is(err, ErrInvalidSpectrum) {
		t.Fatalf("Inf power accepted: err = %v", err)
	}
}

func TestNewNegativePower(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, []float64{1, -0.5, 1})
	if !errors.Is(err, ErrInvalidSpectrum) {
		t.Fatalf("negative power accepted: err = %v", err)
	}
}

func TestAccessors(t *testing.T) {
	freq := testutil.UniformGrid(100, 300, 201)
	ps, err := New(freq, testutil.Ones(201))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if ps.Len() != 201 {
		t.Fatalf("Len = %d, want 201", ps.Len())
	}

	testutil.RequireNearlyEqual(t, ps.MinFreq(), 100, 1e-12)
	testutil.RequireNearlyEqual(t, ps.MaxFreq(), 300, 1e-12)
	testutil.RequireNearlyEqual(t, ps.Span(), 200, 1e-12)
	testutil.RequireNearlyEqual(t, ps.BinSpacing(), 1.0, 1e-9)
}

func TestBinSpacingRobustToGap(t *testing.T) {
	// Uniform 1.0 spacing with a single 10x gap; the median must stay 1.0.
	freq := []float64{0, 1, 2, 3, 4, 14, 15, 16, 17, 18, 19}
	ps, err := New(freq, testutil.Ones(len(freq)))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	testutil.RequireNearlyEqual(t, ps.BinSpacing(), 1.0, 1e-12)
}

func TestRegridLinearRamp(t *testing.T) {
	// A linear ramp survives linear regridding exactly.
	freq := []float64{0, 1, 2, 4, 5, 8, 10}
	power := make([]float64, len(freq))
	for i, f := range freq {
		power[i] = 2 * f
	}

	ps, err := New(freq, power)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	rg, err := Regrid(ps, 11)
	if err != nil {
		t.Fatalf("Regrid error: %v", err)
	}

	if rg.Len() != 11 {
		t.Fatalf("Len = %d, want 11", rg.Len())
	}

	for i := range rg.Freq {
		testutil.RequireNearlyEqual(t, rg.Freq[i], float64(i), 1e-12)
		testutil.RequireNearlyEqual(t, rg.Power[i], 2*float64(i), 1e-9)
	}
}

func TestRegridInvalidSize(t *testing.T) {
	ps, err := New([]float64{1, 2, 3}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	_, err = Regrid(ps, 1)
	if !errors.Is(err, ErrInvalidSpectrum) {
		t.Fatalf("err = %v, want ErrInvalidSpectrum", err)
	}
}

func TestNewSNRValidates(t *testing.T) {
	_, err := NewSNR([]float64{2, 1}, []float64{1, 1})
	if !errors.Is(err, ErrInvalidSpectrum) {
		t.Fatalf("err = %v, want ErrInvalidSpectrum", err)
	}

	s, err := NewSNR([]float64{1, 2}, []float64{0.5, 1.5})
	if err != nil {
		t.Fatalf("NewSNR error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}
