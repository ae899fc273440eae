package spline

import (
	"math"

	"github.com/cwbudde/algo-sampling/sampling/core"
)

// IntegrateCatmullRom integrates the Catmull-Rom interpolant of (x, values)
// over its whole domain and fills cdf with the running integral: cdf[0] = 0
// and cdf[i+1] adds the closed-form area of segment i. It returns the total
// integral. cdf must have length >= len(x). The result is the unnormalized
// CDF consumed by [SampleCatmullRom] and [InvertCatmullRom].
func IntegrateCatmullRom(x, values, cdf []float64) float64 {
	if len(x) != len(values) {
		panic("spline: nodes and values length mismatch")
	}
	if len(cdf) < len(x) {
		panic("spline: cdf buffer shorter than nodes")
	}

	sum := 0.0
	cdf[0] = 0
	for i := 0; i < len(x)-1; i++ {
		f0, f1 := values[i], values[i+1]
		width := x[i+1] - x[i]
		d0, d1 := segmentDerivs(x, values, i)

		// Antiderivative of the Hermite cubic over the unit parameter.
		sum += ((d0-d1)*(1.0/12.0) + (f0+f1)*0.5) * width
		cdf[i+1] = sum
	}

	return sum
}

// IntegrateCatmullRom2D builds the row-major CDF table consumed by
// [SampleCatmullRom2D]: for each nodes1 row it integrates the row's density
// over nodes2, writing len(nodes2) running-integral entries per row. values
// and cdf are row-major with len(nodes1)*len(nodes2) entries. It returns the
// largest row total.
func IntegrateCatmullRom2D(nodes1, nodes2, values, cdf []float64) float64 {
	n1, n2 := len(nodes1), len(nodes2)
	if len(values) != n1*n2 {
		panic("spline: 2D value table size mismatch")
	}
	if len(cdf) < n1*n2 {
		panic("spline: 2D cdf buffer too short")
	}

	maximum := 0.0
	for i := 0; i < n1; i++ {
		row := values[i*n2 : (i+1)*n2]
		total := IntegrateCatmullRom(nodes2, row, cdf[i*n2:(i+1)*n2])
		if total > maximum {
			maximum = total
		}
	}

	return maximum
}

// InvertCatmullRom inverts the Catmull-Rom interpolant of the monotonically
// increasing table (x, values), returning the position y with interpolant
// value u. Out-of-range targets clamp: u <= values[0] returns x[0] and
// u >= values[len-1] returns x[len(x)-1]. Inverting a CDF built by
// [IntegrateCatmullRom] maps an integral value back to a domain position.
func InvertCatmullRom(x, values []float64, u float64) float64 {
	if !(u > values[0]) {
		return x[0]
	} else if !(u < values[len(values)-1]) {
		return x[len(x)-1]
	}

	i := core.FindInterval(len(values), func(j int) bool { return values[j] <= u })
	x0, x1 := x[i], x[i+1]
	f0, f1 := values[i], values[i+1]
	width := x1 - x0
	d0, d1 := segmentDerivs(x, values, i)

	a, b, t := 0.0, 1.0, 0.5
	for {
		if !(t > a && t < b) {
			t = 0.5 * (a + b)
		}

		t2 := t * t
		t3 := t2 * t
		Fhat := (2*t3-3*t2+1)*f0 + (-2*t3+3*t2)*f1 + (t3-2*t2+t)*d0 + (t3-t2)*d1
		fhat := (6*t2-6*t)*f0 + (-6*t2+6*t)*f1 + (3*t2-4*t+1)*d0 + (3*t2-2*t)*d1

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

	return x0 + t*width
}
