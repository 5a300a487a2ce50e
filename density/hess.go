package density

import "github.com/tgauss/supergauss/toeplitz"

// SnormHess computes the Hessian of the Gaussian log-density with
// respect to (θ_p, θ_q) (§4.6), returned row-major as a P×P matrix.
// d2Mu and d2ACF are indexed d2Mu[p*P+q] (each length N), P×P flattened;
// both may be nil (no second-order dependence through that table).
//
// Derivation (ε = X−μ(θ), S_p = T(dACF_p), w = Σ⁻¹ε):
//
//	H_pq =  d2Mu_pqᵀw
//	      − dMu_pᵀ(Σ⁻¹S_qΣ⁻¹ε) − dMu_pᵀ(Σ⁻¹dMu_q) − dMu_qᵀ(Σ⁻¹S_pΣ⁻¹ε)
//	      − εᵀΣ⁻¹S_pΣ⁻¹S_qΣ⁻¹ε + ½εᵀΣ⁻¹T(d2ACF_pq)Σ⁻¹ε
//	      + ½tr(Σ⁻¹S_pΣ⁻¹S_q) − ½tr(Σ⁻¹T(d2ACF_pq))
//
// obtained by differentiating SnormGrad's expression a second time and
// using Σ⁻¹'s symmetry to fold the two equal cubic quadratic-form terms
// into one.
func SnormHess(x, mu []float64, h *toeplitz.Handle, dMu, dACF [][]float64, d2Mu, d2ACF [][]float64) ([]float64, Mode, error) {
	n := h.N()
	mode := inferMode(mu, dMu, dACF)

	eps := make([]float64, n)
	for i := 0; i < n; i++ {
		v := x[i]
		if mu != nil {
			v -= mu[i]
		}
		eps[i] = v
	}
	w, err := h.Solve(eps)
	if err != nil {
		return nil, mode, err
	}

	var p int
	switch {
	case dACF != nil:
		p = len(dACF)
	case dMu != nil:
		p = len(dMu)
	}
	if p == 0 {
		return nil, mode, nil
	}

	// Per-parameter quantities, each computed once and reused across the
	// P×P loop below.
	s := make([][]float64, p) // Solve(dMu_q)
	y := make([][]float64, p) // T(dACF_q)·w
	u := make([][]float64, p) // Solve(T(dACF_q)·w)
	for idx := 0; idx < p; idx++ {
		if dMu != nil {
			sq, err := h.Solve(dMu[idx])
			if err != nil {
				return nil, mode, err
			}
			s[idx] = sq
		}
		if dACF != nil {
			yq, err := toeplitz.ApplyToeplitz(dACF[idx], w)
			if err != nil {
				return nil, mode, err
			}
			uq, err := h.Solve(yq)
			if err != nil {
				return nil, mode, err
			}
			y[idx] = yq
			u[idx] = uq
		}
	}

	dot := func(a, b []float64) float64 {
		var s float64
		for i := range a {
			s += a[i] * b[i]
		}
		return s
	}

	hess := make([]float64, p*p)
	for pi := 0; pi < p; pi++ {
		for qi := 0; qi < p; qi++ {
			var hpq float64

			if d2Mu != nil {
				hpq += dot(d2Mu[pi*p+qi], w)
			}
			if dMu != nil {
				hpq -= dot(dMu[pi], u[qi])
				hpq -= dot(dMu[pi], s[qi])
				hpq -= dot(dMu[qi], u[pi])
			}
			if dACF != nil {
				hpq -= dot(y[pi], u[qi])

				th, err := h.TraceHess(dACF[pi], dACF[qi])
				if err != nil {
					return nil, mode, err
				}
				hpq += 0.5 * th
			}
			if d2ACF != nil {
				sw, err := toeplitz.ApplyToeplitz(d2ACF[pi*p+qi], w)
				if err != nil {
					return nil, mode, err
				}
				hpq += 0.5 * dot(w, sw)

				tg, err := h.TraceGrad(d2ACF[pi*p+qi])
				if err != nil {
					return nil, mode, err
				}
				hpq -= 0.5 * tg
			}

			hess[pi*p+qi] = hpq
		}
	}
	return hess, mode, nil
}
