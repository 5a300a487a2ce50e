package gschur

import (
	"github.com/sirupsen/logrus"

	"github.com/tgauss/supergauss/internal/fftsvc"
)

var log = logrus.WithField("component", "gschur")

// Factor computes the Gohberg–Semencul generator pair for Toeplitz(gamma).
//
// Stage 1 (Validate): gamma non-empty, gamma[0] > 0.
// Stage 2 (Predictor): run the recursive doubling factorization (doubling.go)
// to get the order-(N-1) forward predictor alpha, final prediction-error e,
// and log|Toeplitz(gamma)| in one pass.
// Stage 3 (Reflect): build beta = shift(reverse(alpha)), the companion
// generator required by the Gohberg–Semencul identity (see doc.go).
// Stage 4 (Plan): cache the padded FFTs of alpha and beta so every later
// Solve/TraceGrad/TraceHess call reuses them.
// Stage 5 (Finalize): adopt the doubling recursion's own running log|Σ|.
//
// Complexity: see doubling.go for Stage 2's recursion; O(N log N) for
// Stages 3–4.
func Factor(gamma []float64) (*Generators, error) {
	n := len(gamma)
	if n == 0 || gamma[0] <= 0 {
		return nil, errNotPD("Factor", errBadLength("Factor", n, 1))
	}

	log.WithField("n", n).Debug("factoring Toeplitz ACF via recursive GSchur doubling")

	alpha, finalErr, logDet, err := doublingPredictor(gamma)
	if err != nil {
		return nil, errNotPD("Factor", err)
	}

	beta := correctBeta(alpha)

	m := fftsvc.NextPow2(2*n - 1)
	plan := fftsvc.Acquire(m)

	padded := func(v []float64) []complex128 {
		c := make([]complex128, m)
		for i, x := range v {
			c[i] = complex(x, 0)
		}
		return plan.ForwardComplex(nil, c)
	}

	g := &Generators{
		N:        n,
		Alpha:    alpha,
		Beta:     beta,
		Scale:    1 / finalErr,
		LogDet:   logDet,
		M:        m,
		plan:     plan,
		AlphaHat: padded(alpha),
		BetaHat:  padded(beta),
	}
	g.BandWeight = g.bandWeight()
	return g, nil
}

// correctBeta builds the Gohberg–Semencul companion generator: beta[0]=0,
// beta[i]=alpha[n-i] for i=1..n-1. This is plain reversal shifted down by
// one position, not a plain reverse(alpha) — the shift is what keeps
// L(beta) strictly lower-triangular with a zero first-row contribution,
// which the Σ⁻¹ = (1/e)(L(α)L(α)ᵀ − L(β)L(β)ᵀ) identity requires.
func correctBeta(alpha []float64) []float64 {
	n := len(alpha)
	beta := make([]float64, n)
	for i := 1; i < n; i++ {
		beta[i] = alpha[n-i]
	}
	return beta
}
