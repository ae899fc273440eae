package spline_test

import (
	"fmt"

	"github.com/cwbudde/algo-sampling/sampling/spline"
)

func ExampleIntegrateCatmullRom() {
	nodes := []float64{0, 1, 2}
	values := []float64{0, 1, 2} // f(x) = x

	cdf := make([]float64, len(nodes))
	total := spline.IntegrateCatmullRom(nodes, values, cdf)

	fmt.Println(total, cdf)

	// Output:
	// 2 [0 0.5 2]
}

func ExampleSampleCatmullRom() {
	nodes := []float64{0, 1, 2, 3}
	values := []float64{2, 2, 2, 2} // constant density

	cdf := make([]float64, len(nodes))
	spline.IntegrateCatmullRom(nodes, values, cdf)

	sample, fval, pdf := spline.SampleCatmullRom(nodes, values, cdf, 0.5)
	fmt.Printf("sample=%.4f fval=%.4f pdf=%.4f\n", sample, fval, pdf)

	// Output:
	// sample=1.5000 fval=2.0000 pdf=0.3333
}

func ExampleCatmullRomWeights() {
	nodes := []float64{0, 1, 2, 3}

	weights := make([]float64, 4)
	offset, ok := spline.CatmullRomWeights(nodes, 1.5, weights)

	fmt.Println(ok, offset, weights[0]+weights[1]+weights[2]+weights[3])

	// Output:
	// true 0 1
}
