package fourier

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrBadSampleCount is returned when the sample count handed to [Project] is
// not a power of two plus one.
var ErrBadSampleCount = errors.New("fourier: sample count must be a power of two plus one")

// Project computes the cosine-series coefficients interpolating uniform
// samples of an even 2π-periodic function: values[j] holds f(π j / N) for
// j = 0..N, so len(values) must be N+1 with N a power of two. The returned
// N+1 coefficients satisfy Eval(a, cos(π j / N)) == values[j] up to
// round-off.
//
// The samples are mirrored to a 2N-point even sequence whose forward FFT is
// the type-I discrete cosine transform of the input.
func Project(values []float64) ([]float64, error) {
	n := len(values) - 1
	if n < 1 || n&(n-1) != 0 {
		return nil, ErrBadSampleCount
	}

	plan, err := algofft.NewPlan64(2 * n)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan: %w", err)
	}

	mirrored := make([]complex128, 2*n)
	for j := 0; j <= n; j++ {
		mirrored[j] = complex(values[j], 0)
	}
	for j := n + 1; j < 2*n; j++ {
		mirrored[j] = complex(values[2*n-j], 0)
	}

	spectrum := make([]complex128, 2*n)
	if err := plan.Forward(spectrum, mirrored); err != nil {
		return nil, fmt.Errorf("fourier: forward transform failed: %w", err)
	}

	coeffs := make([]float64, n+1)
	for k := range coeffs {
		coeffs[k] = real(spectrum[k])
	}
	vecmath.ScaleBlock(coeffs, coeffs, 1/float64(n))

	// The endpoints of a DCT-I carry half weight in the series.
	coeffs[0] *= 0.5
	coeffs[n] *= 0.5
	return coeffs, nil
}
