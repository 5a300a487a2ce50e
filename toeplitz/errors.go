package toeplitz

import (
	"fmt"

	"github.com/tgauss/supergauss/errs"
)

func errBadLength(fn string, got, want int) error {
	return fmt.Errorf("toeplitz.%s: length %d, want %d: %w", fn, got, want, errs.ErrInvalidLength)
}

func errUnbound(fn string) error {
	return fmt.Errorf("toeplitz.%s: %w", fn, errs.ErrUnbound)
}
