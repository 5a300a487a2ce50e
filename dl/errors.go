package dl

import (
	"fmt"

	"github.com/tgauss/supergauss/errs"
)

// pivotFloor is the relative tolerance (scaled by γ0) below which a
// prediction-error variance is treated as a non-positive pivot, matching
// gschur's normalization-denominator policy (§4.2).
const pivotFloor = 1e-14

func errBadLength(fn string, got, want int) error {
	return fmt.Errorf("dl.%s: length %d, want %d: %w", fn, got, want, errs.ErrInvalidLength)
}

func errNotPD(fn string, order int) error {
	return fmt.Errorf("dl.%s: non-positive pivot at order %d: %w", fn, order, errs.ErrNotPositiveDefinite)
}
