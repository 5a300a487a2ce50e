// Package fftsvc wraps gonum's real and complex 1-D FFT transforms behind
// a process-wide, length-keyed plan cache.
//
// What & Why:
//
//	gschur's recursive merge step and toeplitz's circulant multiply
//	all need a forward+inverse FFT pair at a handful of power-of-two
//	lengths, repeated many times per likelihood evaluation. Planning a
//	transform (gonum's NewFFT/NewCmplxFFT precompute twiddle factors) is
//	not free, so this package caches plans by length and reuses them
//	across every caller in the process, the same way a caller reuses a
//	prepared statement across queries instead of re-parsing SQL.
//
// Concurrency:
//
//	The cache is safe for concurrent plan acquisition from multiple
//	goroutines (sync.RWMutex-guarded map). Executing a transform on a
//	borrowed buffer is safe concurrently across distinct buffers; gonum's
//	FFT/CmplxFFT types hold no per-call mutable state beyond the plan's
//	precomputed twiddle tables, so two goroutines transforming different
//	buffers through the same cached plan do not race.
//
// Failure modes:
//
//	None beyond allocation. A negative or zero length is a programmer
//	error and panics rather than returning an error, matching §4.1's
//	"No failure modes besides allocation; failures are fatal."
package fftsvc
