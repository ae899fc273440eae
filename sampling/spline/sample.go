package spline

import (
	"math"

	"github.com/cwbudde/algo-sampling/sampling/core"
)

// SampleCatmullRom draws a position distributed proportionally to the
// Catmull-Rom interpolant of the density table (x, f). cdf must be the
// unnormalized running integral built by [IntegrateCatmullRom] from the same
// table, and u a uniform variate in [0, 1). It returns the sampled position
// in [x[0], x[len-1]], the interpolated density at that position, and the
// matching PDF (density over total mass).
//
// The within-segment position solves the quartic antiderivative equation by
// Newton-bisection, starting from the analytic solution for a locally linear
// density.
func SampleCatmullRom(x, f, cdf []float64, u float64) (sample, fval, pdf float64) {
	if len(x) != len(f) || len(f) != len(cdf) {
		panic("spline: table length mismatch")
	}

	// Scale u to the total mass and find the segment holding it.
	u *= cdf[len(cdf)-1]
	i := core.FindInterval(len(cdf), func(j int) bool { return cdf[j] <= u })

	x0, x1 := x[i], x[i+1]
	f0, f1 := f[i], f[i+1]
	width := x1 - x0
	d0, d1 := segmentDerivs(x, f, i)

	// Mass already consumed within the segment, per unit width.
	u = (u - cdf[i]) / width

	// Initial guess from importance sampling a linear interpolant.
	var t float64
	if f0 != f1 {
		t = (f0 - core.SafeSqrt(f0*f0+2*u*(f1-f0))) / (f0 - f1)
	} else {
		t = u / f0
	}

	a, b := 0.0, 1.0
	var Fhat, fhat float64
	for {
		// Fall back to bisection when t leaves the open bracket.
		if !(t > a && t < b) {
			t = 0.5 * (a + b)
		}

		// Antiderivative and density of the Hermite cubic in Horner form.
		Fhat = t * (f0 + t*(0.5*d0+t*((1.0/3.0)*(-2*d0-d1)+f1-f0+t*(0.25*(d0+d1)+0.5*(f0-f1)))))
		fhat = f0 + t*(d0+t*(-2*d0-d1+3*(f1-f0)+t*(d0+d1+2*(f0-f1))))

		if math.Abs(Fhat-u) < solveTol || b-a < solveTol {
			break
		}

		if Fhat-u < 0 {
			a = t
		} else {
			b = t
		}

		t -= (Fhat - u) / fhat
	}

	return x0 + width*t, fhat, fhat / cdf[len(cdf)-1]
}

// SampleCatmullRom2D draws a position along nodes2 from a tensor-product
// density table, conditioned on the first-axis parameter alpha. values holds
// the density samples and cdf the per-row running integrals built by
// [IntegrateCatmullRom2D]; both are row-major with len(nodes1)*len(nodes2)
// entries. u is a uniform variate in [0, 1). The alpha axis is resolved once
// into 4 interpolation weights; every table access then blends the 4
// adjacent rows. It returns the sampled position, the interpolated density,
// and the matching PDF, or all zeros when alpha is outside the nodes1
// domain.
func SampleCatmullRom2D(nodes1, nodes2, values, cdf []float64, alpha, u float64) (sample, fval, pdf float64) {
	n2 := len(nodes2)
	if len(values) != len(nodes1)*n2 {
		panic("spline: 2D value table size mismatch")
	}
	if len(cdf) < len(nodes1)*n2 {
		panic("spline: 2D cdf buffer too short")
	}

	var weights [4]float64
	offset, ok := CatmullRomWeights(nodes1, alpha, weights[:])
	if !ok {
		return 0, 0, 0
	}

	// Blend the 4 rows selected along the alpha axis at column idx.
	// Boundary weights are exactly zero and can carry out-of-range row
	// offsets, so they must be skipped rather than multiplied.
	interpolate := func(table []float64, idx int) float64 {
		value := 0.0
		for j, w := range weights {
			if w != 0 {
				value += table[(offset+j)*n2+idx] * w
			}
		}
		return value
	}

	maximum := interpolate(cdf, n2-1)
	u *= maximum
	idx := core.FindInterval(n2, func(i int) bool { return interpolate(cdf, i) <= u })

	f0, f1 := interpolate(values, idx), interpolate(values, idx+1)
	x0, x1 := nodes2[idx], nodes2[idx+1]
	width := x1 - x0

	u = (u - interpolate(cdf, idx)) / width

	// Finite differences of the interpolated rows.
	var d0, d1 float64
	if idx > 0 {
		d0 = width * (f1 - interpolate(values, idx-1)) / (x1 - nodes2[idx-1])
	} else {
		d0 = f1 - f0
	}
	if idx+2 < n2 {
		d1 = width * (interpolate(values, idx+2) - f0) / (nodes2[idx+2] - x0)
	} else {
		d1 = f1 - f0
	}

	var t float64
	if f0 != f1 {
		t = (f0 - core.SafeSqrt(f0*f0+2*u*(f1-f0))) / (f0 - f1)
	} else {
		t = u / f0
	}

	a, b := 0.0, 1.0
	var Fhat, fhat float64
	for {
		// Closed bracket test here, unlike the open test in the 1D
		// solver; the two converge differently at the bracket edges.
		if !(t >= a && t <= b) {
			t = 0.5 * (a + b)
		}

		Fhat = t * (f0 + t*(0.5*d0+t*((1.0/3.0)*(-2*d0-d1)+f1-f0+t*(0.25*(d0+d1)+0.5*(f0-f1)))))
		fhat = f0 + t*(d0+t*(-2*d0-d1+3*(f1-f0)+t*(d0+d1+2*(f0-f1))))

		if math.Abs(Fhat-u) < solveTol || b-a < solveTol {
			break
		}

		if Fhat-u < 0 {
			a = t
		} else {
			b = t
		}

		t -= (Fhat - u) / fhat
	}

	return x0 + width*t, fhat, fhat / maximum
}
