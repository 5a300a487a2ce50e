package supergauss

import (
	"math/rand"

	"github.com/tgauss/supergauss/density"
	"github.com/tgauss/supergauss/simulate"
	"github.com/tgauss/supergauss/toeplitz"
)

// Handle is the stateful Toeplitz-matrix container (§3, §4.3). See
// package toeplitz for the full method set (SetACF, GetACF, Multiply,
// Solve, LogDet, TraceGrad, TraceHess, CloneShallow, CloneDeep).
type Handle = toeplitz.Handle

// Mode reports which optional derivative tables were supplied to
// SnormGrad/SnormHess (§9 "Open questions").
type Mode = density.Mode

const (
	ModeFull   = density.ModeFull
	ModeNoDMu  = density.ModeNoDMu
	ModeNoDACF = density.ModeNoDACF
	ModeNoMu   = density.ModeNoMu
)

// New allocates a Toeplitz handle of order N (§6 "Toeplitz.new").
func New(n int, opts ...toeplitz.Option) *Handle {
	return toeplitz.New(n, opts...)
}

// Rnormtz draws nPaths exact realizations of a length-N stationary
// Gaussian vector with the given ACF (§6 "rnormtz"), row-major as an
// N×nPaths matrix. useFFT selects the circulant-embedding path over the
// dense Cholesky fallback.
func Rnormtz(acf []float64, nPaths int, useFFT bool, src rand.Source) ([]float64, error) {
	return simulate.Rnormtz(acf, nPaths, useFFT, src)
}

// Dnormtz evaluates the Gaussian log-density (or density) of k
// realizations packed row-major as an N×k matrix, against a covariance
// bound to h and optional mean mu (§6 "dnormtz").
func Dnormtz(x, mu []float64, h *Handle, k int, logScale bool) ([]float64, error) {
	return density.Dnormtz(x, mu, h, k, logScale)
}

// SnormGrad computes the gradient of the Gaussian log-density with
// respect to a parameter vector θ, given derivative tables dMu (∂μ/∂θ)
// and dACF (∂γ/∂θ); either may be nil (§6 "snorm_grad", §4.6).
func SnormGrad(x, mu []float64, h *Handle, dMu, dACF [][]float64) ([]float64, Mode, error) {
	return density.SnormGrad(x, mu, h, dMu, dACF)
}

// SnormHess computes the Hessian of the Gaussian log-density with
// respect to (θ_p, θ_q), given first- and second-order derivative tables
// (any of which may be nil) (§6 "snorm_hess", §4.6).
func SnormHess(x, mu []float64, h *Handle, dMu, dACF, d2Mu, d2ACF [][]float64) ([]float64, Mode, error) {
	return density.SnormHess(x, mu, h, dMu, dACF, d2Mu, d2ACF)
}
