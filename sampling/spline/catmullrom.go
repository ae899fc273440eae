package spline

import "github.com/cwbudde/algo-sampling/sampling/core"

// solveTol bounds both the residual and the bracket width of the
// Newton-bisection solvers. The sampling tests are calibrated against this
// exact value; it is not a tuning knob.
const solveTol = 1e-6

// segmentDerivs approximates the interpolant's derivatives at the endpoints
// of segment i using one-sided finite differences over the neighboring
// nodes, falling back to the secant slope f1-f0 at the table boundaries.
// The derivatives are scaled to the unit parameter of the segment.
func segmentDerivs(x, f []float64, i int) (d0, d1 float64) {
	width := x[i+1] - x[i]

	if i > 0 {
		d0 = width * (f[i+1] - f[i-1]) / (x[i+1] - x[i-1])
	} else {
		d0 = f[i+1] - f[i]
	}

	if i+2 < len(x) {
		d1 = width * (f[i+2] - f[i]) / (x[i+2] - x[i])
	} else {
		d1 = f[i+1] - f[i]
	}

	return d0, d1
}

// CatmullRom evaluates the Catmull-Rom interpolant of the tabulated
// function (nodes, values) at x. nodes must be strictly increasing and
// values must have the same length. Queries outside [nodes[0],
// nodes[len-1]] return 0.
func CatmullRom(nodes, values []float64, x float64) float64 {
	if len(nodes) != len(values) {
		panic("spline: nodes and values length mismatch")
	}
	if !(x >= nodes[0] && x <= nodes[len(nodes)-1]) {
		return 0
	}

	i := core.FindInterval(len(nodes), func(j int) bool { return nodes[j] <= x })
	x0, x1 := nodes[i], nodes[i+1]
	f0, f1 := values[i], values[i+1]
	d0, d1 := segmentDerivs(nodes, values, i)

	t := (x - x0) / (x1 - x0)
	t2 := t * t
	t3 := t2 * t

	return (2*t3-3*t2+1)*f0 + (-2*t3+3*t2)*f1 + (t3-2*t2+t)*d0 + (t3-t2)*d1
}

// CatmullRomWeights factors a [CatmullRom] evaluation at x into 4 linear
// weights over consecutive value-table entries. On success it fills
// weights[0:4] and returns the index of the first entry they multiply
// together with ok == true; dotting the weights with values[offset:offset+4]
// reproduces CatmullRom(nodes, values, x) for any value table. At the table
// boundaries offset can reach -1 or len(nodes)-3; the corresponding
// out-of-range weight is exactly 0 and must be skipped. If x is outside the
// node domain, ok is false and weights are left untouched.
//
// weights must have length >= 4.
func CatmullRomWeights(nodes []float64, x float64, weights []float64) (offset int, ok bool) {
	if len(weights) < 4 {
		panic("spline: weights buffer shorter than 4")
	}
	if !(x >= nodes[0] && x <= nodes[len(nodes)-1]) {
		return 0, false
	}

	i := core.FindInterval(len(nodes), func(j int) bool { return nodes[j] <= x })
	offset = i - 1
	x0, x1 := nodes[i], nodes[i+1]

	t := (x - x0) / (x1 - x0)
	t2 := t * t
	t3 := t2 * t

	weights[1] = 2*t3 - 3*t2 + 1
	weights[2] = -2*t3 + 3*t2

	// Fold the derivative terms into the node weights. At the boundaries
	// the secant fallback redistributes the missing neighbor's share.
	if i > 0 {
		w0 := (t3 - 2*t2 + t) * (x1 - x0) / (x1 - nodes[i-1])
		weights[0] = -w0
		weights[2] += w0
	} else {
		w0 := t3 - 2*t2 + t
		weights[0] = 0
		weights[1] -= w0
		weights[2] += w0
	}

	if i+2 < len(nodes) {
		w3 := (t3 - t2) * (x1 - x0) / (nodes[i+2] - x0)
		weights[1] -= w3
		weights[3] = w3
	} else {
		w3 := t3 - t2
		weights[1] -= w3
		weights[2] += w3
		weights[3] = 0
	}

	return offset, true
}
