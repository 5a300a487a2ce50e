package gschur

import (
	"fmt"

	"github.com/tgauss/supergauss/errs"
)

func errBadLength(fn string, got, want int) error {
	return fmt.Errorf("gschur.%s: length %d, want %d: %w", fn, got, want, errs.ErrInvalidLength)
}

func errNotPD(fn string, cause error) error {
	return fmt.Errorf("gschur.%s: %w: %w", fn, errs.ErrNotPositiveDefinite, cause)
}
