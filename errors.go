package supergauss

import "github.com/tgauss/supergauss/errs"

// Sentinel error kinds (§7), re-exported from package errs so callers
// need only import this root package for errors.Is checks.
var (
	ErrInvalidLength       = errs.ErrInvalidLength
	ErrUnbound             = errs.ErrUnbound
	ErrNotPositiveDefinite = errs.ErrNotPositiveDefinite
	ErrNonEmbeddable       = errs.ErrNonEmbeddable
	ErrAlloc               = errs.ErrAlloc
)
