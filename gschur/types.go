package gschur

import "github.com/tgauss/supergauss/internal/fftsvc"

// Generators is the factored representation of a symmetric positive-definite
// Toeplitz matrix Σ of order N: the Gohberg–Semencul generator pair (Alpha,
// Beta) plus the scalar Scale = 1/e and the cumulative log-determinant.
//
// Alpha and Beta are cached pre-transformed (AlphaHat, BetaHat) at the padded
// length M = next_pow2(2N-1), so every Solve/TraceGrad/TraceHess call pays
// for only the FFTs of its own operand, never re-transforming the
// generators (Data Model: "preplanned FFTs").
type Generators struct {
	N      int
	Alpha  []float64
	Beta   []float64
	Scale  float64
	LogDet float64
	M      int
	plan   *fftsvc.Plan

	AlphaHat []complex128
	BetaHat  []complex128

	// BandWeight[k] = Σ_i (Σ⁻¹)_{i,i+k}, the k-th superdiagonal band sum of
	// Σ⁻¹, precomputed once from the generators (see trace.go). TraceGrad
	// reduces to an O(N) dot product against it.
	BandWeight []float64

	// sinvCols caches Σ⁻¹'s columns (Solve(e_i) for i=0..N-1), built lazily
	// on the first TraceHess call and reused by every later one.
	sinvCols [][]float64
}
