package simulate_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgauss/supergauss/simulate"
)

func expACF(n int, rate float64) []float64 {
	g := make([]float64, n)
	for i := range g {
		g[i] = math.Exp(-rate * float64(i))
	}
	return g
}

func TestSampleShapeAndVariance(t *testing.T) {
	gamma := expACF(16, 0.1)
	src := rand.NewSource(42)

	const paths = 4000
	out, err := simulate.Sample(gamma, paths, src)
	require.NoError(t, err)
	require.Len(t, out, 16*paths)

	// Empirical variance at lag 0 should land near gamma[0]=1 within a
	// few standard errors of the mean (std err of a sample variance over
	// `paths` draws is roughly sqrt(2/paths) for a unit-variance normal).
	var mean, m2 float64
	for p := 0; p < paths; p++ {
		x := out[p] // row 0 (i=0), path p
		mean += x
	}
	mean /= paths
	for p := 0; p < paths; p++ {
		d := out[p] - mean
		m2 += d * d
	}
	variance := m2 / float64(paths-1)
	assert.InDelta(t, gamma[0], variance, 0.15)
}

func TestSampleAndCholeskySampleAgreeInDistributionMean(t *testing.T) {
	gamma := expACF(8, 0.3)
	const paths = 2000

	fftOut, err := simulate.Rnormtz(gamma, paths, true, rand.NewSource(7))
	require.NoError(t, err)
	cholOut, err := simulate.Rnormtz(gamma, paths, false, rand.NewSource(7))
	require.NoError(t, err)

	meanAt := func(out []float64, i int) float64 {
		var s float64
		for p := 0; p < paths; p++ {
			s += out[i*paths+p]
		}
		return s / float64(paths)
	}
	for i := 0; i < 8; i++ {
		assert.InDelta(t, 0, meanAt(fftOut, i), 0.2)
		assert.InDelta(t, 0, meanAt(cholOut, i), 0.2)
	}
}

func TestSampleRejectsBadNPaths(t *testing.T) {
	_, err := simulate.Sample(expACF(4, 0.2), 0, rand.NewSource(1))
	require.Error(t, err)
}

func TestCholeskySampleRejectsNonPositiveDefinite(t *testing.T) {
	_, err := simulate.CholeskySample([]float64{1, 2}, 10, rand.NewSource(1))
	require.Error(t, err)
}
