package dl_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgauss/supergauss/dl"
)

// denseToeplitz builds the dense N×N Toeplitz(γ) matrix for brute-force
// cross-checks in tests.
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

func denseLogDet(gamma []float64) float64 {
	// Dense Cholesky log-det for an independent reference.
	n := len(gamma)
	a := denseToeplitz(gamma)
	l := make([][]float64, n)
	for i := range l {
		l[i] = make([]float64, n)
	}
	var ld float64
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			s := a[i][j]
			for k := 0; k < j; k++ {
				s -= l[i][k] * l[j][k]
			}
			if i == j {
				l[i][j] = math.Sqrt(s)
				ld += 2 * math.Log(l[i][j])
			} else {
				l[i][j] = s / l[j][j]
			}
		}
	}
	return ld
}

func expACF(n int, rate float64) []float64 {
	g := make([]float64, n)
	for i := range g {
		g[i] = math.Exp(-rate * float64(i))
	}
	return g
}

func TestSolveRoundTrip(t *testing.T) {
	gamma := expACF(20, 0.3)
	z := make([]float64, 20)
	for i := range z {
		z[i] = math.Sin(float64(i))
	}
	dense := denseToeplitz(gamma)
	b := matVec(dense, z)

	w, _, err := dl.Solve(gamma, b)
	require.NoError(t, err)
	for i := range z {
		assert.InDeltaf(t, z[i], w[i], 1e-8, "index %d", i)
	}
}

func TestLogDetMatchesDense(t *testing.T) {
	gamma := expACF(16, 0.25)
	got, err := dl.LogDet(gamma)
	require.NoError(t, err)
	want := denseLogDet(gamma)
	assert.InDelta(t, want, got, 1e-8*16)
}

func TestDensityMatchesDirectFormula(t *testing.T) {
	gamma := expACF(12, 0.4)
	x := make([]float64, 12)
	for i := range x {
		x[i] = float64(i%3) - 1
	}
	got, err := dl.Density(x, nil, gamma)
	require.NoError(t, err)

	dense := denseToeplitz(gamma)
	w, _, err := dl.Solve(gamma, x)
	require.NoError(t, err)
	_ = dense
	var quad float64
	for i := range x {
		quad += x[i] * w[i]
	}
	ld := denseLogDet(gamma)
	want := -0.5 * (float64(len(x))*math.Log(2*math.Pi) + ld + quad)
	assert.InDelta(t, want, got, 1e-6)
}

func TestSolveRejectsNonPositiveDefinite(t *testing.T) {
	gamma := []float64{1, 2} // |γ1| > γ0: not PD
	_, _, err := dl.Solve(gamma, []float64{1, 0})
	require.Error(t, err)
}

func TestSolveRejectsLengthMismatch(t *testing.T) {
	_, _, err := dl.Solve([]float64{1, 0.5}, []float64{1})
	require.Error(t, err)
}

func TestSolveMatrixMatchesPerColumnSolve(t *testing.T) {
	gamma := expACF(8, 0.5)
	z := []float64{
		1, 0,
		0, 1,
		0, 0,
		0, 0,
		0, 0,
		0, 0,
		0, 0,
		0, 0,
	}
	w, _, err := dl.SolveMatrix(gamma, z, 2)
	require.NoError(t, err)

	col0 := make([]float64, 8)
	col1 := make([]float64, 8)
	for i := 0; i < 8; i++ {
		col0[i] = z[i*2]
		col1[i] = z[i*2+1]
	}
	wantCol0, _, err := dl.Solve(gamma, col0)
	require.NoError(t, err)
	wantCol1, _, err := dl.Solve(gamma, col1)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		assert.InDelta(t, wantCol0[i], w[i*2], 1e-9)
		assert.InDelta(t, wantCol1[i], w[i*2+1], 1e-9)
	}
}
