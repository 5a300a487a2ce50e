// Package density evaluates the multivariate Gaussian log-density for a
// Toeplitz covariance, together with its gradient and Hessian with
// respect to a parameter vector θ that indexes μ(θ) and ACF(θ) through
// caller-supplied derivative tables (§4.6).
//
// ℓ = −½(N·log 2π + log|Σ| + εᵀΣ⁻¹ε), ε = X − μ.
//
// The gradient and Hessian formulas are built entirely from the Toeplitz
// handle's Solve, TraceGrad, and TraceHess primitives plus
// toeplitz.ApplyToeplitz for the derivative-table products — this package
// never forms Σ or Σ⁻¹ itself — so they inherit whichever path (GSchur
// or DL) the handle itself is routed through.
//
// Missing derivative tables are part of the public contract, not an
// error: a nil μ defaults to the zero vector, a nil dMu/dACF/d2Mu/d2ACF
// table zeroes out the terms that would otherwise involve it. Mode
// reports which combination was supplied, for tests that must exercise
// all four (§8 scenario (d)).
package density
