package simulate

import "math/rand"

// Rnormtz is the public entry point matching §6's
// rnormtz(acf, n_paths, use_fft, rng) -> f64[N × n_paths]. useFFT selects
// the circulant-embedding path; otherwise the dense Cholesky fallback is
// used (both are exact; the fallback is cheaper only for small N).
func Rnormtz(acf []float64, nPaths int, useFFT bool, src rand.Source) ([]float64, error) {
	if useFFT {
		return Sample(acf, nPaths, src)
	}
	return CholeskySample(acf, nPaths, src)
}
