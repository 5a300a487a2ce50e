package toeplitz

import "github.com/tgauss/supergauss/dl"

// Solve computes w = Σ⁻¹z, triggering factorization if dirty (§4.3).
// Orders below the configured crossover route through the reference
// Durbin-Levinson engine instead of GSchur (§4.4).
func (h *Handle) Solve(z []float64) ([]float64, error) {
	if len(z) != h.c.n {
		return nil, errBadLength("Solve", len(z), h.c.n)
	}
	if h.usesDL() {
		acf, err := h.ensureDLReady()
		if err != nil {
			return nil, err
		}
		w, _, err := dl.Solve(acf, z)
		return w, err
	}
	gen, err := h.ensureFactored()
	if err != nil {
		return nil, err
	}
	return gen.Solve(z)
}

// SolveMatrix solves for k right-hand sides packed row-major as an N×k
// matrix, matching Toeplitz.solve's f64[N×k] signature (§6).
func (h *Handle) SolveMatrix(z []float64, k int) ([]float64, error) {
	if len(z) != h.c.n*k {
		return nil, errBadLength("SolveMatrix", len(z), h.c.n*k)
	}
	if h.usesDL() {
		acf, err := h.ensureDLReady()
		if err != nil {
			return nil, err
		}
		w, _, err := dl.SolveMatrix(acf, z, k)
		return w, err
	}
	gen, err := h.ensureFactored()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(z))
	col := make([]float64, h.c.n)
	for j := 0; j < k; j++ {
		for i := 0; i < h.c.n; i++ {
			col[i] = z[i*k+j]
		}
		w, err := gen.Solve(col)
		if err != nil {
			return nil, err
		}
		for i := 0; i < h.c.n; i++ {
			out[i*k+j] = w[i]
		}
	}
	return out, nil
}
