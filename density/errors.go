package density

import (
	"fmt"

	"github.com/tgauss/supergauss/errs"
)

func errBadLength(fn string, got, want int) error {
	return fmt.Errorf("density.%s: length %d, want %d: %w", fn, got, want, errs.ErrInvalidLength)
}
