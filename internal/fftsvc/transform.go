package fftsvc

// Transforms are unnormalized, matching gonum's dsp/fourier convention and
// §4.1's contract: callers divide by M after an inverse when an L² inverse
// is wanted. Forward/Inverse operate on real-valued sequences;
// ForwardComplex/InverseComplex operate on full complex sequences (used by
// gschur's polynomial products, toeplitz's circulant multiply, and the
// circulant simulator).

// Forward computes the forward real-to-complex DFT of seq (length M) into
// len(seq)/2+1 complex coefficients, reusing dst's backing array when it has
// enough capacity.
//
// Complexity: O(M log M).
func (p *Plan) Forward(dst []complex128, seq []float64) []complex128 {
	if len(seq) != p.m {
		panic("fftsvc: Forward length mismatch with plan")
	}
	return p.real.Coefficients(dst, seq)
}

// Inverse computes the unnormalized inverse complex-to-real DFT of cf into a
// real sequence of length M.
//
// Complexity: O(M log M).
func (p *Plan) Inverse(dst []float64, cf []complex128) []float64 {
	return p.real.Sequence(dst, cf)
}

// ForwardComplex computes the forward complex-to-complex DFT of seq (length
// M) into dst, reusing dst's backing array when possible.
//
// Complexity: O(M log M).
func (p *Plan) ForwardComplex(dst, seq []complex128) []complex128 {
	if len(seq) != p.m {
		panic("fftsvc: ForwardComplex length mismatch with plan")
	}
	return p.cmplx.Coefficients(dst, seq)
}

// InverseComplex computes the unnormalized inverse complex-to-complex DFT of
// cf (length M) into dst.
//
// Complexity: O(M log M).
func (p *Plan) InverseComplex(dst, cf []complex128) []complex128 {
	if len(cf) != p.m {
		panic("fftsvc: InverseComplex length mismatch with plan")
	}
	return p.cmplx.Sequence(dst, cf)
}

// NextPow2 returns the smallest power of two greater than or equal to n.
// Used by toeplitz and workspace to compute M = next_pow2(2N), and by
// gschur to compute M = next_pow2(2N-1).
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	m := 1
	for m < n {
		m <<= 1
	}
	return m
}
