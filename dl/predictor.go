package dl

// Predictor returns the order-(n-1) forward linear-predictor polynomial
// phi (length n, phi[0]=1) and its final prediction-error variance for
// Toeplitz(gamma), satisfying Toeplitz(gamma)·phi = finalErr·e₁ (e₁ the
// first standard basis vector).
//
// This is the bridge between the O(N²) Durbin–Levinson recursion and
// gschur's Gohberg–Semencul generator representation (§4.2): gschur builds
// its α,β generator pair directly from phi and finalErr.
//
// Complexity: O(N²) time, O(N) memory.
func Predictor(gamma []float64) (phi []float64, finalErr float64, err error) {
	n := len(gamma)
	f, e, _, lerr := levinson(gamma, nil)
	if lerr != nil {
		return nil, 0, lerr
	}
	phi = make([]float64, n)
	phi[0] = 1
	copy(phi[1:], f)
	return phi, e[n-1], nil
}
