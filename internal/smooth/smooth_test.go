package smooth

import (
	"math"
	"testing"
)

func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func requireAllNear(t *testing.T, got []float64, want, eps float64) {
	t.Helper()
	for i, v := range got {
		if math.Abs(v-want) > eps {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
}

func TestBoxcarConstant(t *testing.T) {
	out := Boxcar(constant(3.5, 64), 9)
	requireAllNear(t, out, 3.5, 1e-12)
}

func TestBoxcarWidthOne(t *testing.T) {
	in := []float64{1, 2, 3}
	out := Boxcar(in, 1)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("index %d: got %v, want %v", i, out[i], in[i])
		}
	}
}

func TestBoxcarReducesSpike(t *testing.T) {
	in := constant(0, 21)
	in[10] = 10

	out := Boxcar(in, 5)
	if out[10] >= 10 {
		t.Fatalf("spike not attenuated: %v", out[10])
	}
	if out[10] <= 0 {
		t.Fatalf("spike energy lost entirely: %v", out[10])
	}
}

func TestGaussianConstant(t *testing.T) {
	// Truncated-edge renormalization keeps constants constant.
	out := Gaussian(constant(2.0, 50), 3)
	requireAllNear(t, out, 2.0, 1e-12)
}

func TestGaussianZeroSigma(t *testing.T) {
	in := []float64{1, 2, 3, 4}
	out := Gaussian(in, 0)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("index %d: got %v, want %v", i, out[i], in[i])
		}
	}
}

func TestGaussianSymmetric(t *testing.T) {
	in := make([]float64, 41)
	in[20] = 1

	out := Gaussian(in, 2)
	for i := 0; i <= 20; i++ {
		if math.Abs(out[20-i]-out[20+i]) > 1e-12 {
			t.Fatalf("asymmetric response at offset %d: %v vs %v", i, out[20-i], out[20+i])
		}
	}

	// The peak stays at the impulse position.
	peak := 0
	for i, v := range out {
		if v > out[peak] {
			peak = i
		}
	}
	if peak != 20 {
		t.Fatalf("peak moved to %d", peak)
	}
}

func TestMovingMedianRemovesSpike(t *testing.T) {
	in := constant(1, 31)
	in[15] = 100

	out := MovingMedian(in, 5)
	requireAllNear(t, out, 1.0, 1e-12)
}

func TestMovingMedianEvenWidthRoundsUp(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	a := MovingMedian(in, 4)
	b := MovingMedian(in, 5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: even width %v != odd width %v", i, a[i], b[i])
		}
	}
}

func TestMovingMedianMonotone(t *testing.T) {
	// The moving median of a monotone ramp is the ramp itself away from
	// the edges.
	in := make([]float64, 20)
	for i := range in {
		in[i] = float64(i)
	}

	out := MovingMedian(in, 5)
	for i := 2; i < 18; i++ {
		if out[i] != in[i] {
			t.Fatalf("index %d: got %v, want %v", i, out[i], in[i])
		}
	}
}
