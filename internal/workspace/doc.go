// Package workspace implements the fixed-size scratch-buffer pool bound to
// a single Toeplitz handle's lifetime (§4.7).
//
// What & Why:
//
//	toeplitz's circulant multiply needs complex scratch buffers of length
//	M = next_pow2(2N). The dominant use pattern is a likelihood evaluated
//	repeatedly at fixed N inside an optimizer, so the pool allocates each
//	named slot once, on its first request, and every subsequent call
//	reuses the same backing arrays instead of allocating and discarding
//	per call. Package gschur does not draw from the pool; its
//	factorization and solves allocate their own buffers.
//
// Lifetime:
//
//	A Pool is constructed for a fixed order N (hence a fixed M); its
//	slots keep length M and are never resized. Teardown (Release)
//	drops all buffers and lets the garbage collector reclaim them; there
//	is no process-wide workspace state, unlike the FFT plan cache.
package workspace
