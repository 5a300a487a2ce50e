package simulate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// CholeskySample is the fallback sampler for small N (§4.5 "a fallback
// dl_sample using DL on the Cholesky path"): it builds the dense
// Cholesky factor L of Toeplitz(gamma) and draws x = Lz for z ~ N(0,I).
// O(N²) memory and O(N³) time — acceptable only below the GSchur/DL
// crossover where the circulant path's FFT setup cost is not amortized.
func CholeskySample(gamma []float64, nPaths int, src rand.Source) ([]float64, error) {
	n := len(gamma)
	if n == 0 {
		return nil, errBadLength("CholeskySample", n, 1)
	}
	if nPaths <= 0 {
		return nil, errBadLength("CholeskySample", nPaths, 1)
	}

	l, err := denseCholesky(gamma)
	if err != nil {
		return nil, err
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	out := make([]float64, n*nPaths)
	z := make([]float64, n)
	for p := 0; p < nPaths; p++ {
		for i := range z {
			z[i] = normal.Rand()
		}
		for i := 0; i < n; i++ {
			var s float64
			for j := 0; j <= i; j++ {
				s += l[i][j] * z[j]
			}
			out[i*nPaths+p] = s
		}
	}
	return out, nil
}

// denseCholesky computes the lower-triangular Cholesky factor of the
// dense Toeplitz(gamma) matrix by the classical O(N³) algorithm,
// returning ErrNotPositiveDefinite on a non-positive pivot.
func denseCholesky(gamma []float64) ([][]float64, error) {
	n := len(gamma)
	l := make([][]float64, n)
	for i := range l {
		l[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			d := i - j
			s := gamma[d]
			for k := 0; k < j; k++ {
				s -= l[i][k] * l[j][k]
			}
			if i == j {
				if s <= 0 {
					return nil, errNotPD("denseCholesky", i)
				}
				l[i][j] = math.Sqrt(s)
			} else {
				l[i][j] = s / l[j][j]
			}
		}
	}
	return l, nil
}
