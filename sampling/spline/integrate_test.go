package spline

import (
	"testing"

	"github.com/cwbudde/algo-sampling/internal/testutil"
)

func TestIntegrateCatmullRomLinearDensity(t *testing.T) {
	// The segment antiderivative is exact for linear data, where it
	// reduces to the trapezoid rule.
	nodes := testutil.UniformNodes(0, 1, 5)
	values := make([]float64, len(nodes))
	for i, x := range nodes {
		values[i] = x
	}

	cdf := make([]float64, len(nodes))
	total := IntegrateCatmullRom(nodes, values, cdf)

	testutil.RequireNear(t, total, 0.5, 1e-12)
	if cdf[0] != 0 {
		t.Fatalf("cdf[0] = %v, want 0", cdf[0])
	}
	testutil.RequireMonotonic(t, cdf)
	for i, x := range nodes {
		testutil.RequireNear(t, cdf[i], x*x/2, 1e-12)
	}
}

func TestIntegrateCatmullRomBoundaryScenario(t *testing.T) {
	nodes := []float64{0, 1, 2, 3}
	values := []float64{0, 1, 0, 1}

	cdf := make([]float64, len(nodes))
	total := IntegrateCatmullRom(nodes, values, cdf)

	// Per-segment closed forms: 1/12 + 1/2, 1/2, -1/12 + 1/2.
	testutil.RequireNear(t, cdf[1], 7.0/12.0, 1e-12)
	testutil.RequireNear(t, cdf[2], 7.0/12.0+0.5, 1e-12)
	testutil.RequireNear(t, total, 1.5, 1e-12)
}

func TestIntegrateInvertRoundTrip(t *testing.T) {
	nodes := []float64{0, 1, 2, 3, 4}
	values := []float64{1, 3, 2, 4, 2}

	cdf := make([]float64, len(nodes))
	total := IntegrateCatmullRom(nodes, values, cdf)
	testutil.RequireMonotonic(t, cdf)

	for _, frac := range []float64{0.05, 0.2, 0.4, 0.5, 0.7, 0.9, 0.99} {
		target := frac * total
		y := InvertCatmullRom(nodes, cdf, target)

		// InvertCatmullRom solves the interpolated CDF for target, so
		// re-evaluating the interpolant at y must recover it.
		testutil.RequireNear(t, CatmullRom(nodes, cdf, y), target, 1e-4)
	}
}

func TestInvertCatmullRomClampsOutOfRange(t *testing.T) {
	nodes := []float64{1, 2, 4}
	values := []float64{0, 3, 5}

	if got := InvertCatmullRom(nodes, values, -1); got != 1 {
		t.Fatalf("below range: got %v, want 1", got)
	}
	if got := InvertCatmullRom(nodes, values, 0); got != 1 {
		t.Fatalf("at front: got %v, want 1", got)
	}
	if got := InvertCatmullRom(nodes, values, 5); got != 4 {
		t.Fatalf("at back: got %v, want 4", got)
	}
	if got := InvertCatmullRom(nodes, values, 17); got != 4 {
		t.Fatalf("above range: got %v, want 4", got)
	}
}

func TestInvertCatmullRomLinearTable(t *testing.T) {
	// Inverting y = 2x recovers x = y/2 everywhere.
	nodes := testutil.UniformNodes(0, 2, 6)
	values := make([]float64, len(nodes))
	for i, x := range nodes {
		values[i] = 2 * x
	}

	for _, u := range []float64{0.4, 1, 1.7, 2.9, 3.6} {
		testutil.RequireNear(t, InvertCatmullRom(nodes, values, u), u/2, 1e-5)
	}
}

func TestIntegrateCatmullRom2DMatchesRows(t *testing.T) {
	nodes1 := []float64{0, 1, 2, 3}
	nodes2 := testutil.UniformNodes(0, 1, 5)

	n1, n2 := len(nodes1), len(nodes2)
	values := testutil.DeterministicDensity(11, n1*n2)

	cdf := make([]float64, n1*n2)
	maximum := IntegrateCatmullRom2D(nodes1, nodes2, values, cdf)

	best := 0.0
	for i := 0; i < n1; i++ {
		rowCDF := make([]float64, n2)
		rowTotal := IntegrateCatmullRom(nodes2, values[i*n2:(i+1)*n2], rowCDF)
		testutil.RequireSliceNearlyEqual(t, cdf[i*n2:(i+1)*n2], rowCDF, 0)
		if rowTotal > best {
			best = rowTotal
		}
	}
	if maximum != best {
		t.Fatalf("maximum = %v, want %v", maximum, best)
	}
}

func TestIntegrateCatmullRomPanicsOnShortCDF(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	IntegrateCatmullRom([]float64{0, 1, 2}, []float64{1, 1, 1}, make([]float64, 2))
}
