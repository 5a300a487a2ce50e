package density

import "github.com/tgauss/supergauss/toeplitz"

// SnormGrad computes the gradient of the Gaussian log-density with
// respect to each parameter θ_p (§4.6):
//
//	∂ℓ/∂θ_p = dMu_pᵀΣ⁻¹ε + ½εᵀΣ⁻¹T(dACF_p)Σ⁻¹ε − ½tr(Σ⁻¹T(dACF_p))
//
// mu, dMu, and dACF may be nil (ModeNoMu/ModeNoDMu/ModeNoDACF) — a nil
// table contributes zero to every term that would otherwise use it.
func SnormGrad(x, mu []float64, h *toeplitz.Handle, dMu, dACF [][]float64) ([]float64, Mode, error) {
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

	p := 0
	switch {
	case dACF != nil:
		p = len(dACF)
	case dMu != nil:
		p = len(dMu)
	}
	grad := make([]float64, p)

	for idx := 0; idx < p; idx++ {
		var term1 float64
		if dMu != nil {
			if len(dMu[idx]) != n {
				return nil, mode, errBadLength("SnormGrad", len(dMu[idx]), n)
			}
			for i := 0; i < n; i++ {
				term1 += dMu[idx][i] * w[i]
			}
		}

		var term2, term3 float64
		if dACF != nil {
			if len(dACF[idx]) != n {
				return nil, mode, errBadLength("SnormGrad", len(dACF[idx]), n)
			}
			sw, err := toeplitz.ApplyToeplitz(dACF[idx], w)
			if err != nil {
				return nil, mode, err
			}
			for i := range w {
				term2 += w[i] * sw[i]
			}
			term2 *= 0.5

			tg, err := h.TraceGrad(dACF[idx])
			if err != nil {
				return nil, mode, err
			}
			term3 = 0.5 * tg
		}

		grad[idx] = term1 + term2 - term3
	}
	return grad, mode, nil
}
