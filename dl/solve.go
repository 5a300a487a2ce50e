package dl

// Solve returns w = Toeplitz(gamma)^{-1} z together with log|Toeplitz(gamma)|,
// computed by a single Durbin–Levinson pass (§4.4).
//
// Complexity: O(N²) time, O(N) memory.
func Solve(gamma, z []float64) (w []float64, logDet float64, err error) {
	if len(z) != len(gamma) {
		return nil, 0, errBadLength("Solve", len(z), len(gamma))
	}
	_, e, y, err := levinson(gamma, z)
	if err != nil {
		return nil, 0, err
	}
	return y, logDetFromErrors(e), nil
}

// SolveMatrix applies Solve independently to each of the k columns of Z
// (N×k, row-major), matching the Toeplitz.solve(z: f64[N×k]) contract.
//
// Complexity: O(k N²) time.
func SolveMatrix(gamma []float64, z []float64, k int) (w []float64, logDet float64, err error) {
	n := len(gamma)
	if k <= 0 || len(z) != n*k {
		return nil, 0, errBadLength("SolveMatrix", len(z), n*k)
	}
	w = make([]float64, n*k)
	col := make([]float64, n)
	for c := 0; c < k; c++ {
		for i := 0; i < n; i++ {
			col[i] = z[i*k+c]
		}
		var wc []float64
		wc, logDet, err = Solve(gamma, col)
		if err != nil {
			return nil, 0, err
		}
		for i := 0; i < n; i++ {
			w[i*k+c] = wc[i]
		}
	}
	return w, logDet, nil
}

// LogDet returns log|Toeplitz(gamma)| via the Durbin–Levinson factorization
// alone, without solving against any right-hand side.
//
// Complexity: O(N²) time, O(N) memory.
func LogDet(gamma []float64) (float64, error) {
	_, e, _, err := levinson(gamma, nil)
	if err != nil {
		return 0, err
	}
	return logDetFromErrors(e), nil
}
