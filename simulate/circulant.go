package simulate

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tgauss/supergauss/internal/fftsvc"
)

var log = logrus.WithField("component", "simulate")

// Sample draws nPaths independent exact realizations of a length-N
// stationary Gaussian vector with autocorrelation gamma, via circulant
// embedding (§4.5). Results are returned row-major as an N×nPaths
// matrix: path p's i-th entry is at index i*nPaths+p, matching the
// f64[N×k] convention used throughout this module.
//
// Algorithm:
//  1. Embed gamma in a symmetric circulant c of length L=2(N-1).
//  2. FFT(c) must be elementwise nonnegative (Bochner's criterion at this
//     embedding size); otherwise ErrNonEmbeddable.
//  3. Each complex FFT of a length-L Gaussian white-noise vector yields
//     two independent real/imaginary realizations once rescaled by
//     sqrt(FFT(c)/L) and inverse-transformed — so ⌈nPaths/2⌉ FFTs produce
//     nPaths paths.
func Sample(gamma []float64, nPaths int, src rand.Source) ([]float64, error) {
	n := len(gamma)
	if n < 2 {
		return nil, errBadLength("Sample", n, 2)
	}
	if nPaths <= 0 {
		return nil, errBadLength("Sample", nPaths, 1)
	}

	l := 2 * (n - 1)
	spectrum, err := embedSpectrum(gamma, l)
	if err != nil {
		return nil, err
	}

	plan := fftsvc.Acquire(l)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	out := make([]float64, n*nPaths)
	for pathsDone := 0; pathsDone < nPaths; pathsDone += 2 {
		w := make([]complex128, l)
		for i := 0; i < l; i++ {
			w[i] = complex(normal.Rand(), normal.Rand())
		}
		for i := range w {
			w[i] *= complex(math.Sqrt(spectrum[i]/float64(l)), 0)
		}
		x := plan.InverseComplex(nil, w)

		for i := 0; i < n; i++ {
			out[i*nPaths+pathsDone] = real(x[i])
		}
		if pathsDone+1 < nPaths {
			for i := 0; i < n; i++ {
				out[i*nPaths+pathsDone+1] = imag(x[i])
			}
		}
	}

	log.WithField("n_paths", nPaths).Debug("sampled via circulant embedding")
	return out, nil
}

// embedSpectrum builds the length-L symmetric circulant extension of
// gamma (c[0:n]=gamma, c[L-i]=gamma[i] for i=1..n-2) and returns its
// (real, elementwise-nonnegative) FFT, failing with ErrNonEmbeddable if
// spectral nonnegativity does not hold at this embedding size.
func embedSpectrum(gamma []float64, l int) ([]float64, error) {
	n := len(gamma)
	c := make([]complex128, l)
	for i, g := range gamma {
		c[i] = complex(g, 0)
	}
	for i := 1; i < n-1; i++ {
		c[l-i] = complex(gamma[i], 0)
	}

	plan := fftsvc.Acquire(l)
	hat := plan.ForwardComplex(nil, c)

	const tol = -1e-8
	spectrum := make([]float64, l)
	for i, v := range hat {
		re := real(v)
		if re < tol*math.Abs(real(hat[0])) {
			return nil, errNonEmbeddable("embedSpectrum", n)
		}
		if re < 0 {
			re = 0
		}
		spectrum[i] = re
	}
	return spectrum, nil
}
