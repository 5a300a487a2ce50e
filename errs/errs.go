// Package errs declares the sentinel error kinds shared across every
// component of supergauss (§7, Error Handling Design).
//
// Every package that can raise one of these wraps it with fmt.Errorf's
// %w rather than redeclaring it, so a caller can always match with
// errors.Is(err, errs.ErrNotPositiveDefinite) regardless of whether the
// error originated in gschur, dl, toeplitz, simulate, or density. This
// package has no dependencies so every other package may import it
// without risking an import cycle.
package errs

import "errors"

var (
	// ErrInvalidLength is returned when an input vector's length does not
	// match the handle's order N (or a derivative table's column count).
	ErrInvalidLength = errors.New("supergauss: invalid length")

	// ErrUnbound is returned by an operation that requires an ACF to have
	// been set on a Handle via SetACF, before one has been.
	ErrUnbound = errors.New("supergauss: toeplitz handle is unbound")

	// ErrNotPositiveDefinite is returned when a factorization (GSchur or
	// Durbin–Levinson) encounters a non-positive pivot or normalization
	// denominator. It is a distinguished sentinel, not a panic: callers
	// such as optimizers are expected to catch it and penalize rather
	// than abort (§7).
	ErrNotPositiveDefinite = errors.New("supergauss: matrix is not positive definite")

	// ErrNonEmbeddable is returned by the circulant simulator when the
	// spectral nonnegativity check on the circulant embedding fails
	// (§4.5 step 2).
	ErrNonEmbeddable = errors.New("supergauss: ACF is not embeddable in a nonnegative circulant at this size")

	// ErrAlloc marks a workspace allocation failure. Declared for
	// completeness with §7; ordinary Go allocation failures are fatal
	// long before this sentinel could be constructed, and no function in
	// this module returns it.
	ErrAlloc = errors.New("supergauss: workspace allocation failed")
)
