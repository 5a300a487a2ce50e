package gschur

// trace.go computes the two trace identities the Gaussian log-likelihood's
// gradient and Hessian reduce to (§4.6):
//
//	TraceGrad(v) = tr( Σ⁻¹ T(v) )
//	TraceHess(p, q) = tr( Σ⁻¹ T(p) Σ⁻¹ T(q) )
//
// where T(v) is the symmetric Toeplitz lift of a vector v (T(v)_{ij} =
// v[|i-j|]).

// bandWeight precomputes BandWeight[k] = Σ_i (Σ⁻¹)_{i,i+k} for k=0..N-1,
// using the decomposition Σ⁻¹ = Scale·(L(α)L(α)ᵀ − L(β)L(β)ᵀ) and the fact
// that the k-th band sum of L(u)L(u)ᵀ is a weighted autocorrelation of u:
//
//	bandsum_k(L(u)L(u)ᵀ) = Σ_{m=0}^{N-1-k} (N-k-m)·u[m]·u[m+k]
//	                     = (N-k)·corr(u,u)[k] − corr(ramp·u, u)[k]
//
// where ramp·u is u scaled elementwise by its index. Each corr(·,·) costs
// one FFT pair, so BandWeight is obtained in O(1) FFTs total, independent
// of how many TraceGrad calls follow.
func (g *Generators) bandWeight() []float64 {
	n := g.N

	band := func(u []float64) []float64 {
		ramp := make([]float64, n)
		for i, x := range u {
			ramp[i] = float64(i) * x
		}
		a := g.correlate(u, u)
		b := g.correlate(ramp, u)
		out := make([]float64, n)
		for k := 0; k < n; k++ {
			out[k] = float64(n-k)*a[k] - b[k]
		}
		return out
	}

	bAlpha := band(g.Alpha)
	bBeta := band(g.Beta)
	w := make([]float64, n)
	for k := range w {
		w[k] = g.Scale * (bAlpha[k] - bBeta[k])
	}
	return w
}

// TraceGrad computes tr(Σ⁻¹T(v)) in O(N) given the cached BandWeight,
// using T(v) = L(v) + L(v)ᵀ − v[0]I and the symmetry of Σ⁻¹:
//
//	tr(Σ⁻¹T(v)) = v[0]·w[0] + 2·Σ_{k=1}^{N-1} v[k]·w[k]
func (g *Generators) TraceGrad(v []float64) (float64, error) {
	if len(v) != g.N {
		return 0, errBadLength("TraceGrad", len(v), g.N)
	}
	s := v[0] * g.BandWeight[0]
	for k := 1; k < g.N; k++ {
		s += 2 * v[k] * g.BandWeight[k]
	}
	return s, nil
}

// inverseColumns lazily materializes Σ⁻¹'s N columns (Solve(e_i) for each
// i), an O(N² log N) one-time cost amortized across every TraceHess call
// made against this Generators.
func (g *Generators) inverseColumns() ([][]float64, error) {
	if g.sinvCols != nil {
		return g.sinvCols, nil
	}
	cols := make([][]float64, g.N)
	e := make([]float64, g.N)
	for i := 0; i < g.N; i++ {
		if i > 0 {
			e[i-1] = 0
		}
		e[i] = 1
		col, err := g.Solve(e)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	g.sinvCols = cols
	return cols, nil
}

// TraceHess computes tr(Σ⁻¹T(p)Σ⁻¹T(q)) for a pair of ACF derivative
// vectors p, q. Writing A = Σ⁻¹T(p), B = Σ⁻¹T(q) and using Σ⁻¹'s symmetry
// (row i of Σ⁻¹ equals Σ⁻¹'s i-th column, sinvCols[i]):
//
//	A_row(i) = T(p)·sinvCols[i]   (T(p) symmetric, so this is Multiply(p, ·))
//	B_col(i) = Σ⁻¹·(T(q)·e_i)     (a Solve against T(q)'s i-th column)
//	tr(AB)   = Σ_i  A_row(i) · B_col(i)
//
// This costs N Solves (O(N² log N)) plus N direct O(N²) toeplitzApply
// calls, O(N³) overall, rather than the O(N log N) a single closed-form
// pair would give; no closed form is implemented here.
func (g *Generators) TraceHess(p, q []float64) (float64, error) {
	if len(p) != g.N {
		return 0, errBadLength("TraceHess", len(p), g.N)
	}
	if len(q) != g.N {
		return 0, errBadLength("TraceHess", len(q), g.N)
	}

	cols, err := g.inverseColumns()
	if err != nil {
		return 0, err
	}

	var trace float64
	tq := make([]float64, g.N)
	for i := 0; i < g.N; i++ {
		aRow := toeplitzApply(p, cols[i])

		for k := 0; k < g.N; k++ {
			tq[k] = q[abs(k-i)]
		}
		bCol, err := g.Solve(tq)
		if err != nil {
			return 0, err
		}

		var dot float64
		for k := range aRow {
			dot += aRow[k] * bCol[k]
		}
		trace += dot
	}
	return trace, nil
}

// toeplitzApply computes T(v)·x for the symmetric Toeplitz lift of v
// (T(v)_{jk} = v[|j-k|]) directly, in O(N²). TraceHess calls this N
// times, which makes these calls the O(N³) term of its cost.
func toeplitzApply(v, x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for j := 0; j < n; j++ {
		var s float64
		for k := 0; k < n; k++ {
			s += v[abs(j-k)] * x[k]
		}
		out[j] = s
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
