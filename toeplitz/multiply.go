package toeplitz

import (
	"github.com/tgauss/supergauss/internal/fftsvc"
	"github.com/tgauss/supergauss/internal/workspace"
)

// Multiply computes w = Σz by embedding Toeplitz(γ) in a circulant of
// length M = next_pow2(2N) and performing one forward+inverse complex FFT
// pair (§4.3). It only requires BOUND_DIRTY, never triggering
// factorization — this is the one primitive that stays correct even for
// a non-positive-definite ACF (scenario (e)).
func (h *Handle) Multiply(z []float64) ([]float64, error) {
	acf, err := h.ensureDLReady()
	if err != nil {
		return nil, err
	}
	if len(z) != h.c.n {
		return nil, errBadLength("Multiply", len(z), h.c.n)
	}
	return circulantMultiply(acf, z, h.c.ws), nil
}

// ApplyToeplitz computes T(v)·x for the symmetric Toeplitz lift of v
// (§4.6's T(·)), via circulant embedding. Unlike Handle.Multiply this is
// a free function with no bound state or workspace reuse — it exists
// for the density package's derivative-table terms, where v is a dACF
// column rather than a handle's own ACF.
func ApplyToeplitz(v, x []float64) ([]float64, error) {
	if len(x) != len(v) {
		return nil, errBadLength("ApplyToeplitz", len(x), len(v))
	}
	ws := workspace.New(len(v))
	return circulantMultiply(v, x, ws), nil
}

// circulantMultiply computes Toeplitz(gamma)·z exactly via circulant
// embedding: c[0:n] = gamma, c[n] = 0, c[m-i] = gamma[i] for i=1..n-1,
// where m = next_pow2(2n). z is zero-padded to m, circularly convolved
// with c via FFT, and the first n entries of the result are returned.
// The embedding and padding buffers are drawn from the handle's
// workspace pool (§4.7) so repeated Multiply calls at fixed N reuse the
// same backing arrays instead of reallocating every time.
func circulantMultiply(gamma, z []float64, ws *workspace.Pool) []float64 {
	n := len(gamma)
	m := fftsvc.NextPow2(2 * n)
	plan := fftsvc.Acquire(m)

	c := ws.Complex("circulant")
	for i, g := range gamma {
		c[i] = complex(g, 0)
	}
	for i := 1; i < n; i++ {
		c[m-i] = complex(gamma[i], 0)
	}

	zp := ws.Complex("z_padded")
	for i, x := range z {
		zp[i] = complex(x, 0)
	}

	cHat := plan.ForwardComplex(nil, c)
	zHat := plan.ForwardComplex(nil, zp)
	prod := make([]complex128, m)
	for i := range prod {
		prod[i] = cHat[i] * zHat[i]
	}
	inv := plan.InverseComplex(nil, prod)

	w := make([]float64, n)
	for i := range w {
		w[i] = real(inv[i]) / float64(m)
	}
	return w
}
