package toeplitz

import (
	"github.com/sirupsen/logrus"

	"github.com/tgauss/supergauss/gschur"
	"github.com/tgauss/supergauss/internal/workspace"
)

var log = logrus.WithField("component", "toeplitz")

// New allocates a Handle of order N in the UNBOUND state.
func New(n int, opts ...Option) *Handle {
	if n <= 0 {
		panic("toeplitz: New requires a positive order")
	}
	h := &Handle{
		c: &core{
			n:     n,
			state: Unbound,
		},
		crossoverN: defaultCrossoverN(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// N returns the handle's fixed order.
func (h *Handle) N() int { return h.c.n }

// State reports the handle's current factorization state.
func (h *Handle) State() State {
	h.c.mu.Lock()
	defer h.c.mu.Unlock()
	return h.c.state
}

// SetACF installs a new ACF, transitioning to BOUND_DIRTY without
// factoring (§4.3). len(gamma) must equal N.
func (h *Handle) SetACF(gamma []float64) error {
	if len(gamma) != h.c.n {
		return errBadLength("SetACF", len(gamma), h.c.n)
	}
	h.c.mu.Lock()
	defer h.c.mu.Unlock()

	acf := make([]float64, h.c.n)
	copy(acf, gamma)
	h.c.acf = acf
	h.c.state = BoundDirty
	h.c.gen = nil
	if h.c.ws == nil {
		h.c.ws = workspace.New(h.c.n)
	}
	log.WithField("n", h.c.n).Debug("ACF set, handle marked BOUND_DIRTY")
	return nil
}

// GetACF returns a copy of the currently bound ACF, or nil if UNBOUND.
func (h *Handle) GetACF() []float64 {
	h.c.mu.Lock()
	defer h.c.mu.Unlock()
	if h.c.acf == nil {
		return nil
	}
	out := make([]float64, len(h.c.acf))
	copy(out, h.c.acf)
	return out
}

// usesDL reports whether this handle's order routes through the
// Durbin-Levinson reference engine instead of GSchur (§4.4 crossover).
func (h *Handle) usesDL() bool {
	return h.c.n < h.crossoverN
}

// ensureFactored factors the current ACF via GSchur if not already
// FACTORED, returning the cached generators. Callers below the DL
// crossover should not call this — they route through package dl
// directly instead.
func (h *Handle) ensureFactored() (*gschur.Generators, error) {
	h.c.mu.Lock()
	defer h.c.mu.Unlock()

	if h.c.acf == nil {
		return nil, errUnbound("ensureFactored")
	}
	if h.c.state == Factored {
		return h.c.gen, nil
	}

	log.WithField("n", h.c.n).Debug("factoring via GSchur")
	gen, err := gschur.Factor(h.c.acf)
	if err != nil {
		// No partial mutation survives a failed factorization (§7): the
		// handle stays BOUND_DIRTY.
		return nil, err
	}
	h.c.gen = gen
	h.c.state = Factored
	return gen, nil
}

// ensureDLReady validates that the handle is bound, for the DL-routed
// path (which has no persistent factorization state to cache).
func (h *Handle) ensureDLReady() ([]float64, error) {
	h.c.mu.Lock()
	defer h.c.mu.Unlock()
	if h.c.acf == nil {
		return nil, errUnbound("ensureDLReady")
	}
	return h.c.acf, nil
}
