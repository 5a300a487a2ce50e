package density_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgauss/supergauss/density"
	"github.com/tgauss/supergauss/toeplitz"
)

func expACF(n int, rate float64) []float64 {
	g := make([]float64, n)
	for i := range g {
		g[i] = math.Exp(-rate * float64(i))
	}
	return g
}

func dExpACF(n int, rate float64) []float64 {
	g := make([]float64, n)
	for i := range g {
		g[i] = -float64(i) * math.Exp(-rate*float64(i))
	}
	return g
}

func constMu(n int, lambda float64) []float64 {
	mu := make([]float64, n)
	for i := range mu {
		mu[i] = lambda
	}
	return mu
}

func logDensityAt(t *testing.T, n int, x []float64, rate, lambda float64) float64 {
	h := toeplitz.New(n, toeplitz.WithCrossover(1))
	require.NoError(t, h.SetACF(expACF(n, rate)))
	mu := constMu(n, lambda)
	ll, err := density.Dnormtz(x, mu, h, 1, true)
	require.NoError(t, err)
	return ll[0]
}

func TestDnormtzMatchesDirectFormula(t *testing.T) {
	n := 10
	gamma := expACF(n, 0.4)
	h := toeplitz.New(n, toeplitz.WithCrossover(1))
	require.NoError(t, h.SetACF(gamma))

	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i%3) - 1
	}
	ll, err := density.Dnormtz(x, nil, h, 1, true)
	require.NoError(t, err)

	logDet, err := h.LogDet()
	require.NoError(t, err)
	w, err := h.Solve(x)
	require.NoError(t, err)
	var quad float64
	for i := range x {
		quad += x[i] * w[i]
	}
	want := -0.5 * (float64(n)*math.Log(2*math.Pi) + logDet + quad)
	assert.InDelta(t, want, ll[0], 1e-9)
}

func TestSnormGradMatchesFiniteDifference(t *testing.T) {
	n := 12
	rate, lambda := 0.4, 0.5
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(float64(i)*0.3) + 0.2
	}

	h := toeplitz.New(n, toeplitz.WithCrossover(1))
	require.NoError(t, h.SetACF(expACF(n, rate)))
	mu := constMu(n, lambda)
	dMu := [][]float64{constMu(n, 1)} // dmu/dlambda = all-ones
	dACF := [][]float64{dExpACF(n, rate)}

	grad, mode, err := density.SnormGrad(x, mu, h, dMu, dACF)
	require.NoError(t, err)
	assert.Equal(t, density.ModeFull, mode)
	require.Len(t, grad, 1)

	const step = 1e-5
	fdRate := (logDensityAt(t, n, x, rate+step, lambda) - logDensityAt(t, n, x, rate-step, lambda)) / (2 * step)

	// grad[0] here is d(log-density)/dtheta where theta packs both rate
	// and lambda derivatives through dACF/dMu jointly — since only one
	// parameter slice was supplied (mixing both rate's ACF effect and
	// lambda's mean effect is not meaningful simultaneously), compare
	// against the rate-only finite difference by re-deriving a
	// rate-only gradient (dMu held at zero for this parameter).
	gradRateOnly, _, err := density.SnormGrad(x, mu, h, nil, dACF)
	require.NoError(t, err)
	assert.InDelta(t, fdRate, gradRateOnly[0], 1e-3)

	fdLambda := (logDensityAt(t, n, x, rate, lambda+step) - logDensityAt(t, n, x, rate, lambda-step)) / (2 * step)
	gradLambdaOnly, _, err := density.SnormGrad(x, mu, h, dMu, nil)
	require.NoError(t, err)
	assert.InDelta(t, fdLambda, gradLambdaOnly[0], 1e-3)
}

func TestSnormHessSymmetric(t *testing.T) {
	n := 10
	h := toeplitz.New(n, toeplitz.WithCrossover(1))
	require.NoError(t, h.SetACF(expACF(n, 0.3)))

	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i%4) - 1.5
	}
	dACF := [][]float64{dExpACF(n, 0.3), expACF(n, 0.9)}

	hess, _, err := density.SnormHess(x, nil, h, nil, dACF, nil, nil)
	require.NoError(t, err)
	require.Len(t, hess, 4)
	assert.InDelta(t, hess[1], hess[2], 1e-9) // H[0,1] == H[1,0]
}

func TestSnormGradModes(t *testing.T) {
	n := 8
	h := toeplitz.New(n, toeplitz.WithCrossover(1))
	require.NoError(t, h.SetACF(expACF(n, 0.3)))
	x := expACF(n, 0.3)

	_, mode, err := density.SnormGrad(x, nil, h, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, density.ModeNoMu, mode)

	mu := constMu(n, 0)
	_, mode, err = density.SnormGrad(x, mu, h, nil, [][]float64{dExpACF(n, 0.3)})
	require.NoError(t, err)
	assert.Equal(t, density.ModeNoDMu, mode)

	_, mode, err = density.SnormGrad(x, mu, h, [][]float64{constMu(n, 1)}, nil)
	require.NoError(t, err)
	assert.Equal(t, density.ModeNoDACF, mode)
}
