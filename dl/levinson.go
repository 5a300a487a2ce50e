package dl

import "math"

// levinson runs the classical Durbin–Levinson recursion over ACF r
// (length n, r[0] > 0), simultaneously building:
//   - f: the final order-(n-1) forward predictor coefficients (length n-1),
//   - e: the prediction-error variance at every order (length n, e[0]=r[0]),
//   - y: the solution to Toeplitz(r)·y = rhs, when rhs is non-nil.
//
// Passing rhs == nil skips the y-accumulation (used by LogDet, which only
// needs e). This is the one Levinson pass shared by Solve, LogDet, and
// Density so none of them diverges from the others' pivot policy.
//
// Stage 1 (Validate): r[0] > 0 and len(rhs) matches n when rhs != nil.
// Stage 2 (Base case): order 0.
// Stage 3 (Recurse): build order k from order k-1 for k = 1..n-1.
// Stage 4 (Finalize): return f, e, y or ErrNotPositiveDefinite.
// Complexity: O(n²) time, O(n) memory (f and y are replaced by a fresh
// slice at each order; only the current order's are retained).
func levinson(r []float64, rhs []float64) (f, e, y []float64, err error) {
	n := len(r)
	if n == 0 || r[0] <= 0 {
		return nil, nil, nil, errNotPD("levinson", 0)
	}
	if rhs != nil && len(rhs) != n {
		return nil, nil, nil, errBadLength("levinson", len(rhs), n)
	}

	e = make([]float64, n)
	e[0] = r[0]
	f = nil // order-0 predictor has no coefficients
	if rhs != nil {
		y = []float64{rhs[0] / r[0]}
	}

	floor := pivotFloor * math.Abs(r[0])

	for k := 1; k < n; k++ {
		// Stage 3a: reflection coefficient from the order-(k-1) predictor.
		beta := r[k]
		for i := 1; i <= k-1; i++ {
			beta += r[k-i] * f[i-1]
		}
		kappa := -beta / e[k-1]

		// Stage 3b: extend the predictor to order k.
		newF := make([]float64, k)
		for i := 1; i <= k-1; i++ {
			newF[i-1] = f[i-1] + kappa*f[k-1-i]
		}
		newF[k-1] = kappa
		f = newF

		// Stage 3c: update the prediction-error variance; guard the pivot.
		e[k] = e[k-1] * (1 - kappa*kappa)
		if e[k] <= floor {
			return nil, nil, nil, errNotPD("levinson", k)
		}

		// Stage 3d: extend the solution, if requested.
		if rhs != nil {
			g := rhs[k]
			for i := 1; i <= k; i++ {
				g -= r[k+1-i] * y[i-1]
			}
			mu := g / e[k]
			newY := make([]float64, k+1)
			for i := 1; i <= k; i++ {
				newY[i-1] = y[i-1] + mu*f[k-i]
			}
			newY[k] = mu
			y = newY
		}
	}

	return f, e, y, nil
}

// logDetFromErrors sums log(e_k) over the prediction-error sequence,
// matching log|Σ| = Σ_k log(e_k) for the Durbin–Levinson factorization.
func logDetFromErrors(e []float64) float64 {
	var ld float64
	for _, ek := range e {
		ld += math.Log(ek)
	}
	return ld
}
