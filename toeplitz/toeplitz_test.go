package toeplitz_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgauss/supergauss/errs"
	"github.com/tgauss/supergauss/toeplitz"
)

func expACF(n int, rate float64) []float64 {
	g := make([]float64, n)
	for i := range g {
		g[i] = math.Exp(-rate * float64(i))
	}
	return g
}

func denseToeplitz(gamma []float64) [][]float64 {
	n := len(gamma)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			d := i - j
			if d < 0 {
				d = -d
			}
			m[i][j] = gamma[d]
		}
	}
	return m
}

func matVec(m [][]float64, v []float64) []float64 {
	out := make([]float64, len(m))
	for i := range m {
		var s float64
		for j := range v {
			s += m[i][j] * v[j]
		}
		out[i] = s
	}
	return out
}

func TestMultiplyMatchesDense(t *testing.T) {
	gamma := []float64{2, 1, 0.5, 0.25}
	h := toeplitz.New(4)
	require.NoError(t, h.SetACF(gamma))

	w, err := h.Multiply([]float64{1, 0, 0, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, gamma, w, 1e-12)
}

func TestSolveRoundTripBothPaths(t *testing.T) {
	gamma := expACF(20, 0.3)
	z := make([]float64, 20)
	for i := range z {
		z[i] = math.Sin(float64(i))
	}
	dense := denseToeplitz(gamma)
	rhs := matVec(dense, z)

	for _, crossover := range []int{1, 1000} {
		h := toeplitz.New(20, toeplitz.WithCrossover(crossover))
		require.NoError(t, h.SetACF(gamma))
		w, err := h.Solve(rhs)
		require.NoError(t, err)
		for i := range z {
			assert.InDeltaf(t, z[i], w[i], 1e-6, "crossover=%d index=%d", crossover, i)
		}
	}
}

func TestUnboundOperationsFail(t *testing.T) {
	h := toeplitz.New(5)
	_, err := h.Multiply([]float64{1, 2, 3, 4, 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnbound)

	_, err = h.Solve([]float64{1, 2, 3, 4, 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnbound)
}

func TestNonPositiveDefiniteMultiplyStillWorks(t *testing.T) {
	h := toeplitz.New(2)
	require.NoError(t, h.SetACF([]float64{1, 2}))

	w, err := h.Multiply([]float64{1, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, w, 1e-12)

	_, err = h.Solve([]float64{1, 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotPositiveDefinite)
}

func TestRecoveryAfterNonPositiveDefinite(t *testing.T) {
	h := toeplitz.New(2, toeplitz.WithCrossover(1))
	require.NoError(t, h.SetACF([]float64{1, 2}))
	_, err := h.Solve([]float64{1, 0})
	require.Error(t, err)

	require.NoError(t, h.SetACF([]float64{1, 0.5}))
	w, err := h.Solve([]float64{1, 0})
	require.NoError(t, err)
	assert.Len(t, w, 2)
}

func TestShallowCloneAliasesState(t *testing.T) {
	h1 := toeplitz.New(3)
	require.NoError(t, h1.SetACF([]float64{1, 0.5, 0.25}))

	h2 := h1.CloneShallow()
	require.NoError(t, h1.SetACF([]float64{2, 1, 0.5}))

	assert.Equal(t, []float64{2, 1, 0.5}, h2.GetACF())
}

func TestDeepCloneIsIndependent(t *testing.T) {
	h1 := toeplitz.New(3)
	require.NoError(t, h1.SetACF([]float64{1, 0.5, 0.25}))

	h3 := h1.CloneDeep()
	require.NoError(t, h1.SetACF([]float64{2, 1, 0.5}))

	assert.Equal(t, []float64{1, 0.5, 0.25}, h3.GetACF())
}

func TestLogDetMatchesAcrossCrossover(t *testing.T) {
	gamma := expACF(24, 0.2)

	hDL := toeplitz.New(24, toeplitz.WithCrossover(1000))
	require.NoError(t, hDL.SetACF(gamma))
	wantLD, err := hDL.LogDet()
	require.NoError(t, err)

	hGS := toeplitz.New(24, toeplitz.WithCrossover(1))
	require.NoError(t, hGS.SetACF(gamma))
	gotLD, err := hGS.LogDet()
	require.NoError(t, err)

	assert.InDelta(t, wantLD, gotLD, 1e-6)
}

func TestTraceGradMatchesAcrossCrossover(t *testing.T) {
	gamma := expACF(16, 0.3)
	v := expACF(16, 0.6)

	hDL := toeplitz.New(16, toeplitz.WithCrossover(1000))
	require.NoError(t, hDL.SetACF(gamma))
	want, err := hDL.TraceGrad(v)
	require.NoError(t, err)

	hGS := toeplitz.New(16, toeplitz.WithCrossover(1))
	require.NoError(t, hGS.SetACF(gamma))
	got, err := hGS.TraceGrad(v)
	require.NoError(t, err)

	assert.InDelta(t, want, got, 1e-6)
}
