package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
)

// UniformNodes returns n strictly increasing nodes spanning [lo, hi].
func UniformNodes(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// RaisedCosine samples the density 1 + cos(2π t - π), t in [0, 1], on n
// uniform points. The shape is strictly positive away from the endpoints
// and peaks in the middle of the domain.
func RaisedCosine(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = 1 + math.Cos(2*math.Pi*t-math.Pi)
	}
	return out
}

// DeterministicDensity generates a positive density table with a fixed seed
// for reproducibility. Values lie in [0.1, 1.1).
func DeterministicDensity(seed int64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = 0.1 + rng.Float64()
	}
	return out
}

// StratifiedUniform returns n stratified variates (i+0.5)/n covering [0, 1).
func StratifiedUniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = (float64(i) + 0.5) / float64(n)
	}
	return out
}

// Histogram bins samples from [lo, hi] into a density estimate normalized to
// unit mass: the bin values sum to 1/binWidth-weighted unity, so they are
// directly comparable to a normalized density evaluated at bin centers.
// Samples outside [lo, hi] land in the nearest boundary bin.
func Histogram(samples []float64, lo, hi float64, bins int) []float64 {
	counts := make([]float64, bins)
	for _, s := range samples {
		idx := int((s - lo) / (hi - lo) * float64(bins))
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	binWidth := (hi - lo) / float64(bins)
	vecmath.ScaleBlock(counts, counts, 1/(float64(len(samples))*binWidth))
	return counts
}
