// Package core provides the shared numeric primitives of the sampling kernels.
//
//   - [FindInterval]: segment search over ordered tables via a monotonic predicate
//   - [SafeSqrt]:     square root clamped at zero
//   - [Clamp]:        inclusive range limiting
//   - [EnsureLen]:    buffer reuse helper for CDF construction
//
// All functions are pure and allocation-free; they are safe to call
// concurrently on shared read-only inputs.
package core
