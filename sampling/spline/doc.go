// Package spline implements Catmull-Rom spline evaluation, integration, and
// exact importance sampling over tabulated functions.
//
//   - [CatmullRom]:           point evaluation of the interpolant
//   - [CatmullRomWeights]:    the 4 basis weights behind an evaluation
//   - [IntegrateCatmullRom]:  CDF construction from closed-form segment areas
//   - [IntegrateCatmullRom2D]: row-wise CDF table construction for 2D sampling
//   - [InvertCatmullRom]:     monotonic interpolant inversion
//   - [SampleCatmullRom]:     1D importance sampling with exact PDF
//   - [SampleCatmullRom2D]:   tensor-product table sampling
//
// Tables are caller-owned flat slices: a strictly increasing node slice of
// length >= 2 paired with a value slice of the same length. The sampling
// routines invert the interpolant's antiderivative with a hybrid
// Newton-bisection solver, so the returned PDF matches the sampled density
// exactly and Monte Carlo estimators built on the samples stay unbiased.
//
// All functions are pure; the only mutation is to caller-provided output
// buffers, which must not be shared across concurrent calls.
package spline
