//go:build !fastmath

package core

import "math"

// sqrtImpl computes sqrt(x) using the standard library.
func sqrtImpl(x float64) float64 {
	return math.Sqrt(x)
}
