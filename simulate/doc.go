// Package simulate exactly samples stationary Gaussian vectors with a
// given ACF via circulant embedding (§4.5): the Toeplitz covariance is
// embedded in a larger circulant diagonalized by the FFT, one complex
// FFT produces two independent real realizations (real and imaginary
// parts). A dense O(N³) Cholesky sampler (CholeskySample, not a
// Durbin-Levinson one) is the alternative path, chosen by the caller
// through Rnormtz's useFFT flag; Sample does not fall back to it when
// the embedding fails spectral nonnegativity.
package simulate
