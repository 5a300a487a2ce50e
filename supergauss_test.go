package supergauss_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgauss/supergauss"
)

func TestFacadeMultiplySolveRoundTrip(t *testing.T) {
	gamma := []float64{2, 1, 0.5, 0.25}
	h := supergauss.New(4)
	require.NoError(t, h.SetACF(gamma))

	w, err := h.Multiply([]float64{1, 0, 0, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, gamma, w, 1e-12)

	solved, err := h.Solve(w)
	require.NoError(t, err)
	assert.InDelta(t, 1, solved[0], 1e-8)
	for _, v := range solved[1:] {
		assert.InDelta(t, 0, v, 1e-8)
	}
}

func TestFacadeRnormtzProducesFiniteSamples(t *testing.T) {
	n := 10
	gamma := make([]float64, n)
	for i := range gamma {
		gamma[i] = math.Exp(-0.2 * float64(i))
	}
	out, err := supergauss.Rnormtz(gamma, 5, true, rand.NewSource(1))
	require.NoError(t, err)
	require.Len(t, out, n*5)
	for _, v := range out {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestFacadeNonPositiveDefiniteSentinel(t *testing.T) {
	h := supergauss.New(2)
	require.NoError(t, h.SetACF([]float64{1, 2}))
	_, err := h.Solve([]float64{1, 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, supergauss.ErrNotPositiveDefinite)
}
