package toeplitz

import "github.com/tgauss/supergauss/dl"

// TraceGrad returns tr(Σ⁻¹T(dgamma)), the quantity the density kernel's
// gradient needs (§4.3, §4.6). Routes through GSchur's O(N log N)
// closed form above the crossover, and a direct O(N³) dense evaluation
// (N DL solves, see dlInverseColumns) below it.
func (h *Handle) TraceGrad(dgamma []float64) (float64, error) {
	if len(dgamma) != h.c.n {
		return 0, errBadLength("TraceGrad", len(dgamma), h.c.n)
	}
	if h.usesDL() {
		acf, err := h.ensureDLReady()
		if err != nil {
			return 0, err
		}
		cols, err := dlInverseColumns(acf)
		if err != nil {
			return 0, err
		}
		n := len(acf)
		var s float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				d := i - j
				if d < 0 {
					d = -d
				}
				s += cols[i][j] * dgamma[d]
			}
		}
		return s, nil
	}
	gen, err := h.ensureFactored()
	if err != nil {
		return 0, err
	}
	return gen.TraceGrad(dgamma)
}

// TraceHess returns tr(Σ⁻¹T(p)Σ⁻¹T(q)), needed by the density kernel's
// Hessian (§4.3, §4.6).
func (h *Handle) TraceHess(p, q []float64) (float64, error) {
	if len(p) != h.c.n {
		return 0, errBadLength("TraceHess", len(p), h.c.n)
	}
	if len(q) != h.c.n {
		return 0, errBadLength("TraceHess", len(q), h.c.n)
	}
	if h.usesDL() {
		acf, err := h.ensureDLReady()
		if err != nil {
			return 0, err
		}
		return dlTraceHess(acf, p, q)
	}
	gen, err := h.ensureFactored()
	if err != nil {
		return 0, err
	}
	return gen.TraceHess(p, q)
}

// dlInverseColumns materializes dense Σ⁻¹ as N columns via N calls to
// dl.Solve, an O(N³) reference computation acceptable only below the
// GSchur crossover.
func dlInverseColumns(acf []float64) ([][]float64, error) {
	n := len(acf)
	cols := make([][]float64, n)
	e := make([]float64, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			e[i-1] = 0
		}
		e[i] = 1
		w, _, err := dl.Solve(acf, e)
		if err != nil {
			return nil, err
		}
		cols[i] = w
	}
	return cols, nil
}

func denseToeplitzApply(v, x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for j := 0; j < n; j++ {
		var s float64
		for k := 0; k < n; k++ {
			d := j - k
			if d < 0 {
				d = -d
			}
			s += v[d] * x[k]
		}
		out[j] = s
	}
	return out
}

func dlTraceHess(acf, p, q []float64) (float64, error) {
	n := len(acf)
	cols, err := dlInverseColumns(acf)
	if err != nil {
		return 0, err
	}
	var trace float64
	tq := make([]float64, n)
	for i := 0; i < n; i++ {
		aRow := denseToeplitzApply(p, cols[i])
		for k := 0; k < n; k++ {
			d := k - i
			if d < 0 {
				d = -d
			}
			tq[k] = q[d]
		}
		bCol, _, err := dl.Solve(acf, tq)
		if err != nil {
			return 0, err
		}
		var dot float64
		for k := range aRow {
			dot += aRow[k] * bCol[k]
		}
		trace += dot
	}
	return trace, nil
}
