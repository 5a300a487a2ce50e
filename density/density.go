package density

import (
	"math"

	"github.com/tgauss/supergauss/toeplitz"
)

var log2pi = math.Log(2 * math.Pi)

// Dnormtz evaluates the Gaussian log-density (or density, if !logScale)
// of k realizations packed row-major as an N×k matrix X, for covariance
// Σ bound to h and optional mean mu (nil defaults to zero) (§6).
func Dnormtz(x []float64, mu []float64, h *toeplitz.Handle, k int, logScale bool) ([]float64, error) {
	n := h.N()
	if len(x) != n*k {
		return nil, errBadLength("Dnormtz", len(x), n*k)
	}
	if mu != nil && len(mu) != n {
		return nil, errBadLength("Dnormtz", len(mu), n)
	}

	logDet, err := h.LogDet()
	if err != nil {
		return nil, err
	}

	out := make([]float64, k)
	eps := make([]float64, n)
	for c := 0; c < k; c++ {
		for i := 0; i < n; i++ {
			v := x[i*k+c]
			if mu != nil {
				v -= mu[i]
			}
			eps[i] = v
		}
		w, err := h.Solve(eps)
		if err != nil {
			return nil, err
		}
		var quad float64
		for i := range eps {
			quad += eps[i] * w[i]
		}
		ll := -0.5 * (float64(n)*log2pi + logDet + quad)
		if logScale {
			out[c] = ll
		} else {
			out[c] = math.Exp(ll)
		}
	}
	return out, nil
}
