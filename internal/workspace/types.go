package workspace

import "github.com/tgauss/supergauss/internal/fftsvc"

// Pool is a fixed-size, role-indexed collection of scratch buffers sized to
// a single order N's padded transform length M = next_pow2(2N).
//
// Pool is not safe for concurrent use — it is owned exclusively by one
// toeplitz.Handle, matching §5's "single-threaded per Toeplitz handle"
// scheduling model.
type Pool struct {
	n, m  int
	reals map[string][]float64
	cplxs map[string][]complex128
}

// New allocates a Pool sized for order n. No buffers are materialized yet;
// each named slot is allocated lazily on first request and then reused for
// the life of the Pool at length M, never resized afterward.
func New(n int) *Pool {
	if n <= 0 {
		panic("workspace: New requires a positive order")
	}
	return &Pool{
		n:     n,
		m:     fftsvc.NextPow2(2 * n),
		reals: make(map[string][]float64),
		cplxs: make(map[string][]complex128),
	}
}

// N returns the order this Pool was constructed for.
func (p *Pool) N() int { return p.n }

// M returns the padded transform length (next_pow2(2N)) this Pool's
// buffers are sized to.
func (p *Pool) M() int { return p.m }
