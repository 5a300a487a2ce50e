package workspace

// Real returns the named real-valued scratch slot, length M, allocating it
// on first request and zeroing it on every subsequent request so callers
// always see a clean buffer without paying for a fresh allocation.
//
// Complexity: O(M) per call (O(M) on first allocation, O(M) to zero on
// every call thereafter — the clear is cheaper than the allocate-and-GC
// cycle it replaces).
func (p *Pool) Real(role string) []float64 {
	buf, ok := p.reals[role]
	if !ok {
		buf = make([]float64, p.m)
		p.reals[role] = buf
		return buf
	}
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// Complex returns the named complex-valued scratch slot, length M, with the
// same lazy-allocate-then-reuse-and-clear discipline as Real.
func (p *Pool) Complex(role string) []complex128 {
	buf, ok := p.cplxs[role]
	if !ok {
		buf = make([]complex128, p.m)
		p.cplxs[role] = buf
		return buf
	}
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// Release drops all buffers held by the Pool. The Pool must not be used
// afterward. Matches §4.7's "Teardown releases all buffers and FFT plans" —
// the FFT plan cache itself is process-wide (package fftsvc) and is not
// torn down per-handle, only this Pool's own buffers are.
func (p *Pool) Release() {
	p.reals = nil
	p.cplxs = nil
}
