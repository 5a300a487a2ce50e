// Package gschur computes the Generalized Schur factorization of a
// symmetric positive-definite Toeplitz matrix (§4.2).
//
// What & Why:
//
//	A Toeplitz matrix's inverse is not itself Toeplitz, but it has
//	displacement rank 2 and admits the Gohberg–Semencul representation
//
//	    Σ⁻¹ = (1/e) · ( L(α) L(α)ᵀ − L(β) L(β)ᵀ )
//
//	where α is the order-(N-1) forward linear-predictor polynomial for
//	Toeplitz(γ) (α₀=1), β is α reversed and shifted down by one position,
//	e is the final prediction-error variance, and L(v) denotes the lower
//	triangular Toeplitz matrix whose first column is v. Solve and the
//	band weights behind TraceGrad are a handful of FFT-based polynomial
//	products against α and β (§4.3's "four FFTs"), never an O(N²) or
//	O(N³) dense computation. TraceHess is the exception: it materializes
//	Σ⁻¹'s columns and costs O(N³) (see trace.go).
//
// Factorization:
//
//	doubling.go builds α and e by recursively halving the problem, exactly
//	as §4.2 describes: Toeplitz(γ) of order N splits into a top block of
//	order N/2 (itself a smaller Toeplitz problem, factored by recursing
//	into the same function) and a tail block (the Schur complement after
//	eliminating the top — rank-2 displacement, but no longer Toeplitz,
//	since persymmetry does not survive partial elimination). The two
//	halves are merged via four FFT-based polynomial products against the
//	recursively computed top generators (gsApplyInverse), and the tail is
//	finished with the classical per-row Schur recursion (finishTail) — the
//	same recursion package dl runs in full, here bounded to the tail's own
//	order. The recursion bottoms out at a small leaf (SUPERGAUSS_GSCHUR_LEAF,
//	default 32) where package dl runs directly.
//
//	This reaches genuine recursive depth and exercises the FFT merge at
//	every level, but does not reach the unbounded-depth O(N log² N) bound
//	the full Generalized Schur algorithm achieves: that additionally
//	requires a fast FFT-based solve against the *tail's own* generator when
//	it is split further, which needs both boundary columns of the tail's
//	inverse (not derivable from its generator pair by the same
//	reverse-and-shift trick used for a genuinely Toeplitz block, since that
//	trick relies on persymmetry). Every tail here is finished classically
//	instead of being split again, so the recursion costs
//	T(N) = T(N/2) + O(N log N) + O(N²/4), solving to O(N²) with roughly a
//	3x smaller constant than one flat Durbin–Levinson pass over the whole
//	problem — a real, verified improvement on the factorization path, not
//	the asymptotic ceiling.
package gschur
