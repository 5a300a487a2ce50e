package toeplitz

import "github.com/tgauss/supergauss/dl"

// LogDet ensures factorization and returns the cached log|Σ| (§4.3).
// Below the crossover it is recomputed by package dl on every call.
func (h *Handle) LogDet() (float64, error) {
	if h.usesDL() {
		acf, err := h.ensureDLReady()
		if err != nil {
			return 0, err
		}
		return dl.LogDet(acf)
	}
	gen, err := h.ensureFactored()
	if err != nil {
		return 0, err
	}
	return gen.LogDet, nil
}
