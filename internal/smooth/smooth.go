// Package smooth provides boxcar, Gaussian-kernel and moving-median
// smoothing over sample slices. Edges are handled by truncating the
// window (never zero padding), so constant inputs stay constant.
package smooth

import (
	"math"
	"sort"
)

// Boxcar returns the moving average of data over a window of the given
// width in samples. The window is clamped at the slice edges. A width
// below 2 returns a copy of the input.
func Boxcar(data []float64, width int) []float64 {
	out := make([]float64, len(data))
	if width < 2 {
		copy(out, data)
		return out
	}

	half := width / 2
	for i := range data {
		lo := max(i-half, 0)
		hi := min(i+half, len(data)-1)

		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += data[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}

	return out
}

// Gaussian convolves data with a Gaussian kernel of the given standard
// deviation in samples. The kernel is evaluated out to 4 sigma and
// renormalized where it is truncated by the slice edges. A non-positive
// sigma returns a copy of the input.
func Gaussian(data []float64, sigma float64) []float64 {
	out := make([]float64, len(data))
	if sigma <= 0 || len(data) == 0 {
		copy(out, data)
		return out
	}

	radius := int(math.Ceil(4 * sigma))
	if radius < 1 {
		radius = 1
	}

	kernel := make([]float64, 2*radius+1)
	inv2s2 := 1 / (2 * sigma * sigma)
	for k := -radius; k <= radius; k++ {
		kernel[k+radius] = math.Exp(-float64(k*k) * inv2s2)
	}

	for i := range data {
		sum := 0.0
		weight := 0.0
		for k := -radius; k <= radius; k++ {
			j := i + k
			if j < 0 || j >= len(data) {
				continue
			}
			w := kernel[k+radius]
			sum += w * data[j]
			weight += w
		}
		out[i] = sum / weight
	}

	return out
}

// MovingMedian returns the moving median of data over a window of the
// given width in samples. Even widths are rounded up to the next odd
// width so the window is centered. The window is clamped at the slice
// edges. A width below 2 returns a copy of the input.
func MovingMedian(data []float64, width int) []float64 {
	out := make([]float64, len(data))
	if width < 2 {
		copy(out, data)
		return out
	}

	if width%2 == 0 {
		width++
	}

	half := width / 2
	scratch := make([]float64, 0, width)

	for i := range data {
		lo := max(i-half, 0)
		hi := min(i+half, len(data)-1)

		scratch = scratch[:0]
		scratch = append(scratch, data[lo:hi+1]...)
		sort.Float64s(scratch)

		mid := len(scratch) / 2
		if len(scratch)%2 == 1 {
			out[i] = scratch[mid]
		} else {
			out[i] = (scratch[mid-1] + scratch[mid]) / 2
		}
	}

	return out
}
