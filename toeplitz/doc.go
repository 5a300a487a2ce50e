// Package toeplitz implements the stateful Toeplitz-matrix handle (§4.3):
// a container bound to an order N and an ACF that lazily maintains a
// GSchur factorization and exposes multiply, solve, log-determinant, and
// trace-of-product primitives on top of it.
//
// A Handle moves through three states: UNBOUND (just constructed),
// BOUND_DIRTY (an ACF is set but not yet factored), and FACTORED (the
// GSchur generators are cached and solves are O(N log N)). Multiply works
// from BOUND_DIRTY without transitioning — it needs only a circulant
// embedding of the ACF, not the factorization. Every other operation that
// needs Σ⁻¹ triggers factorization on first use and caches the result
// until the next SetACF call.
//
// For N below a configurable crossover (environment variable
// SUPERGAUSS_CROSSOVER_N, default 300), the handle routes solve/log-det/
// trace calls through the reference Durbin–Levinson engine (package dl)
// instead of gschur — both are exact, DL is simply cheaper in the regime
// where GSchur's larger constant factor dominates its better asymptotics.
package toeplitz
