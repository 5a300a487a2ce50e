package gschur

// Solve computes w = Σ⁻¹ z via the Gohberg–Semencul representation
//
//	Σ⁻¹ z = Scale · ( L(α) (L(α)ᵀ z) − L(β) (L(β)ᵀ z) ).
//
// Each of the four applyL/applyLT calls costs one forward and one inverse
// complex FFT at the cached padded length M, for a total of eight FFTs
// per Solve — O(N log N) regardless of N.
func (g *Generators) Solve(z []float64) ([]float64, error) {
	if len(z) != g.N {
		return nil, errBadLength("Solve", len(z), g.N)
	}

	uAlpha := g.applyLT(g.AlphaHat, z)
	pAlpha := g.applyL(g.AlphaHat, uAlpha)

	uBeta := g.applyLT(g.BetaHat, z)
	pBeta := g.applyL(g.BetaHat, uBeta)

	w := make([]float64, g.N)
	for i := range w {
		w[i] = g.Scale * (pAlpha[i] - pBeta[i])
	}
	return w, nil
}

// Quad computes the quadratic form zᵀΣ⁻¹z without materializing Σ⁻¹z twice.
func (g *Generators) Quad(z []float64) (float64, error) {
	w, err := g.Solve(z)
	if err != nil {
		return 0, err
	}
	var s float64
	for i, x := range z {
		s += x * w[i]
	}
	return s, nil
}
