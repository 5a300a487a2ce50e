// Package supergauss is a superfast likelihood-inference core for
// stationary Gaussian time series.
//
// What & Why:
//
//	The central object is a symmetric positive-definite Toeplitz covariance
//	matrix of order N, defined by its first row (the autocorrelation
//	function, ACF). This package binds together four linear-algebra
//	primitives on such matrices — multiply, solve, log-determinant, and
//	inverse-action — with three statistical primitives derived from them:
//	Gaussian log-density, gradient, and Hessian with respect to a
//	parameter vector, plus exact simulation of stationary Gaussian vectors.
//
// Performance:
//
//	Toeplitz factorization uses a recursive generator-doubling scheme
//	(package gschur) whose merge steps run on an FFT service
//	(internal/fftsvc). Each split's non-Toeplitz tail is finished by the
//	classical O(n²) recursion, so the factorization costs O(N²) with a
//	smaller constant than one Durbin–Levinson pass; it does not reach
//	O(N log² N).
//	A Durbin–Levinson O(N²) path (package dl) is used below a configurable
//	crossover order and as the reference implementation in tests.
//
// Everything here is organized under leaf subpackages:
//
//	internal/fftsvc/  — process-wide FFT plan cache and transforms
//	internal/workspace/ — per-handle scratch buffer pool
//	gschur/           — generator-displacement Toeplitz factorization
//	dl/               — Durbin–Levinson reference engine
//	toeplitz/         — the stateful Toeplitz Handle
//	simulate/         — circulant-embedding exact sampler
//	density/          — Gaussian log-density, gradient, Hessian kernel
//
// This root package is a thin façade: New, Rnormtz, Dnormtz, SnormGrad,
// and SnormHess delegate to the subpackages above so a caller (typically
// an optimizer driving repeated likelihood evaluations, or an independent
// sampler) has one entry point.
//
//	go get github.com/tgauss/supergauss
package supergauss
