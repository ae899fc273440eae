package fourier

import (
	"math"

	"github.com/cwbudde/algo-sampling/sampling/core"
)

// solveTol bounds both the residual and the bracket width of the sampling
// solver, matching the spline solvers.
const solveTol = 1e-6

const inv2Pi = 1 / (2 * math.Pi)

// Eval evaluates the cosine series sum a[k]*cos(k*phi) at the given
// cos(phi). The recurrence cos((k+1)phi) = 2 cos(phi) cos(k phi) -
// cos((k-1)phi) generates the higher harmonics, so the caller computes a
// single cosine no matter how many coefficients the series has.
func Eval(a []float64, cosPhi float64) float64 {
	value := 0.0
	cosKMinusOnePhi := cosPhi
	cosKPhi := 1.0
	for _, ak := range a {
		value += ak * cosKPhi
		cosKPlusOnePhi := 2*cosPhi*cosKPhi - cosKMinusOnePhi
		cosKMinusOnePhi = cosKPhi
		cosKPhi = cosKPlusOnePhi
	}
	return value
}

// Recip precomputes the reciprocal table consumed by [Sample]: out[k] = 1/k
// for k >= 1 and out[0] = 0. Table owners build it once per coefficient
// count so the sampler never divides inside its inner loop.
func Recip(n int) []float64 {
	out := make([]float64, n)
	for k := 1; k < n; k++ {
		out[k] = 1 / float64(k)
	}
	return out
}

// Sample draws phi in [0, 2π) distributed proportionally to the cosine
// series ak, which must be non-negative over the circle with ak[0] > 0.
// recip is the reciprocal table from [Recip] and u a uniform variate in
// [0, 1). It returns the series value at phi, the sample PDF
// f(phi)/(2π ak[0]), and phi itself.
//
// The series is even around phi = π, so u picks a half-interval and the
// solver inverts the antiderivative F(phi) = ak[0]*phi + sum ak[k]/k *
// sin(k phi) over [0, π] by Newton-bisection, tracking sine and cosine
// iterates together to get F and its derivative per iteration.
func Sample(ak, recip []float64, u float64) (fval, pdf, phi float64) {
	if len(recip) < len(ak) {
		panic("fourier: recip table shorter than coefficients")
	}

	flip := u >= 0.5
	if flip {
		u = 1 - 2*(u-0.5)
	} else {
		u *= 2
	}

	a, b := 0.0, math.Pi
	phi = 0.5 * math.Pi
	var F, f float64
	for {
		cosPhi := math.Cos(phi)
		sinPhi := core.SafeSqrt(1 - cosPhi*cosPhi)
		cosPhiPrev, cosPhiCur := cosPhi, 1.0
		sinPhiPrev, sinPhiCur := -sinPhi, 0.0

		F = ak[0] * phi
		f = ak[0]
		for k := 1; k < len(ak); k++ {
			sinPhiNext := 2*cosPhi*sinPhiCur - sinPhiPrev
			cosPhiNext := 2*cosPhi*cosPhiCur - cosPhiPrev
			sinPhiPrev, sinPhiCur = sinPhiCur, sinPhiNext
			cosPhiPrev, cosPhiCur = cosPhiCur, cosPhiNext

			F += ak[k] * recip[k] * sinPhiNext
			f += ak[k] * cosPhiNext
		}
		F -= u * ak[0] * math.Pi

		if F > 0 {
			b = phi
		} else {
			a = phi
		}

		if math.Abs(F) < solveTol || b-a < solveTol {
			break
		}

		phi -= F / f
		if !(phi > a && phi < b) {
			phi = 0.5 * (a + b)
		}
	}

	if flip {
		phi = 2*math.Pi - phi
	}
	return f, inv2Pi * f / ak[0], phi
}
