package core

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// SafeSqrt returns the square root of max(x, 0).
//
// The discriminants computed by the root-finder initial guesses can dip
// slightly below zero from floating-point round-off; clamping keeps the
// result real.
func SafeSqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return sqrtImpl(x)
}
