// Package fourier evaluates and importance-samples cosine series of the form
// f(phi) = sum a[k] * cos(k*phi), the representation used by measured
// reflectance tables.
//
//   - [Eval]:    series evaluation by cosine recurrence
//   - [Sample]:  importance sampling of phi with exact PDF
//   - [Recip]:   the reciprocal table consumed by Sample
//   - [Project]: series coefficients from uniform samples via an FFT-backed DCT
//
// Eval and Sample are pure and allocation-free; Project allocates its FFT
// plan and result per call.
package fourier
