//go:build fastmath

package core

import "github.com/meko-christian/algo-approx"

// sqrtImpl computes sqrt(x) using a fast approximation.
func sqrtImpl(x float64) float64 {
	return approx.FastSqrt(x)
}
