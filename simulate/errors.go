package simulate

import (
	"fmt"

	"github.com/tgauss/supergauss/errs"
)

func errBadLength(fn string, got, want int) error {
	return fmt.Errorf("simulate.%s: length %d, want %d: %w", fn, got, want, errs.ErrInvalidLength)
}

func errNonEmbeddable(fn string, n int) error {
	return fmt.Errorf("simulate.%s: circulant embedding at size %d has a negative spectral entry: %w", fn, n, errs.ErrNonEmbeddable)
}

func errNotPD(fn string, order int) error {
	return fmt.Errorf("simulate.%s: non-positive Cholesky pivot at order %d: %w", fn, order, errs.ErrNotPositiveDefinite)
}
