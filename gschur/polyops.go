package gschur

// polyops.go implements the FFT-based polynomial products the Gohberg–
// Semencul formula is built from: convolve computes a full linear
// convolution, correlate computes a lag-0..N-1 cross-correlation (both via
// one forward/inverse complex-FFT pair each), and applyL/applyLT apply a
// cached generator's lower-triangular Toeplitz operator (or its transpose)
// to an arbitrary vector by reusing the generator's precomputed FFT.

func (g *Generators) pad(v []float64) []complex128 {
	c := make([]complex128, g.M)
	for i, x := range v {
		c[i] = complex(x, 0)
	}
	return c
}

// convolve returns the full linear convolution of a and b (length
// len(a)+len(b)-1), computed via one forward/inverse complex-FFT pair at
// the Generators' padded length M.
func (g *Generators) convolve(a, b []float64) []float64 {
	fa := g.plan.ForwardComplex(nil, g.pad(a))
	fb := g.plan.ForwardComplex(nil, g.pad(b))
	prod := make([]complex128, len(fa))
	for i := range prod {
		prod[i] = fa[i] * fb[i]
	}
	inv := g.plan.InverseComplex(nil, prod)
	out := make([]float64, len(a)+len(b)-1)
	for i := range out {
		out[i] = real(inv[i]) / float64(g.M)
	}
	return out
}

// correlate returns corr[k] = Σ_{m=0}^{N-1-k} a[m]·b[m+k] for k=0..N-1,
// where N = len(a) = len(b), via the identity
//
//	corr[k] = convolve(a, reverse(b))[N-1-k].
func (g *Generators) correlate(a, b []float64) []float64 {
	n := len(a)
	revB := make([]float64, n)
	for i := range b {
		revB[i] = b[n-1-i]
	}
	full := g.convolve(a, revB)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = full[n-1-k]
	}
	return out
}

// applyLT computes L(col)ᵀ v = corr[k] = Σ_{m=0}^{N-1-k} col[m]·v[m+k],
// reusing the generator's precomputed FFT (colHat) instead of
// re-transforming col on every call.
func (g *Generators) applyLT(colHat []complex128, v []float64) []float64 {
	n := g.N
	revV := make([]float64, n)
	for i := range v {
		revV[i] = v[n-1-i]
	}
	fv := g.plan.ForwardComplex(nil, g.pad(revV))
	prod := make([]complex128, len(colHat))
	for i := range prod {
		prod[i] = colHat[i] * fv[i]
	}
	inv := g.plan.InverseComplex(nil, prod)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = real(inv[n-1-k]) / float64(g.M)
	}
	return out
}

// applyL computes y = L(col) v (the first N entries of convolve(col, v)),
// reusing the generator's precomputed FFT.
func (g *Generators) applyL(colHat []complex128, v []float64) []float64 {
	n := g.N
	fv := g.plan.ForwardComplex(nil, g.pad(v))
	prod := make([]complex128, len(colHat))
	for i := range prod {
		prod[i] = colHat[i] * fv[i]
	}
	inv := g.plan.InverseComplex(nil, prod)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = real(inv[i]) / float64(g.M)
	}
	return out
}
