// Package statistics provides the batch-relative primitives the volume
// scorers are built on: linear-interpolation percentiles, min-max scaling,
// and a long-tail clip + log transform.
package statistics

import (
	"math"
	"sort"
)

// Percentile computes the p-th percentile (0..100) of values using linear
// interpolation between closest ranks, matching the common dataframe
// quantile behavior. Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}

	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// ClipLogMinMax clips values at the given upper percentile, applies
// log(x+1), and min-max scales the result to [0,1] within the batch.
// Degenerate batches (empty, or constant after the transform) scale to
// all zeros rather than dividing by zero.
func ClipLogMinMax(values []float64, percentile float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	upper := Percentile(values, percentile)
	for i, v := range values {
		if v > upper {
			v = upper
		}
		out[i] = math.Log(v + 1)
	}

	minV, maxV := out[0], out[0]
	for _, v := range out[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	if maxV == minV {
		for i := range out {
			out[i] = 0
		}
		return out
	}

	span := maxV - minV
	for i := range out {
		out[i] = (out[i] - minV) / span
	}
	return out
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Clip bounds v to [lo, hi].
func Clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
