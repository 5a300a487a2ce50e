package fftsvc

import (
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Plan bundles the real and complex transforms for one transform length M.
// Both are precomputed once (gonum.NewFFT/NewCmplxFFT precompute twiddle
// factors) and reused for every Forward/Inverse/ForwardComplex/InverseComplex
// call at that length.
type Plan struct {
	m     int
	real  *fourier.FFT
	cmplx *fourier.CmplxFFT
}

// Len returns the transform length this Plan was built for.
func (p *Plan) Len() int { return p.m }

// cache is the process-wide, grow-only plan store keyed by transform length.
// Stage (Concurrency): muPlans guards the map; individual *Plan values are
// themselves safe for concurrent use once constructed (see doc.go).
var (
	muPlans sync.RWMutex
	cache   = make(map[int]*Plan)
)

// Acquire returns the cached Plan for length m, constructing and caching it
// on first use. Acquisition is idempotent: concurrent Acquire(m) calls for
// an unseen m may race to construct a Plan, but only one survives in the
// cache and callers converge on an equivalent (same-length) plan either way.
//
// Stage 1 (Validate): m must be a positive transform length.
// Stage 2 (Fast path): read-lock lookup; return cached Plan if present.
// Stage 3 (Slow path): construct new Plan, write-lock and cache it.
// Complexity: O(1) amortized; O(M log M) on first construction per length.
func Acquire(m int) *Plan {
	// Stage 1: validate
	if m <= 0 {
		panic("fftsvc: Acquire requires a positive transform length")
	}

	// Stage 2: fast path, existing plan
	muPlans.RLock()
	p, ok := cache[m]
	muPlans.RUnlock()
	if ok {
		return p
	}

	// Stage 3: slow path, build once and cache
	p = &Plan{
		m:     m,
		real:  fourier.NewFFT(m),
		cmplx: fourier.NewCmplxFFT(m),
	}
	muPlans.Lock()
	// Re-check under write lock: another goroutine may have won the race.
	if existing, ok := cache[m]; ok {
		muPlans.Unlock()
		return existing
	}
	cache[m] = p
	muPlans.Unlock()

	return p
}
