package toeplitz

import (
	"github.com/tgauss/supergauss/gschur"
	"github.com/tgauss/supergauss/internal/workspace"
)

// CloneShallow returns a second handle aliasing the same underlying
// state (§3 "Ownership", §8 property 7): mutating one through SetACF is
// observed by the other.
func (h *Handle) CloneShallow() *Handle {
	return &Handle{c: h.c, crossoverN: h.crossoverN}
}

// CloneDeep returns an independent handle with its own copy of the
// current ACF (and, if FACTORED, its own independently-computed
// generators) — mutating the original afterward has no effect on the
// clone (§3, §8 property 7).
func (h *Handle) CloneDeep() *Handle {
	h.c.mu.Lock()
	defer h.c.mu.Unlock()

	nc := &core{n: h.c.n, state: h.c.state}
	if h.c.acf != nil {
		acf := make([]float64, len(h.c.acf))
		copy(acf, h.c.acf)
		nc.acf = acf
		nc.ws = workspace.New(h.c.n)
	}
	clone := &Handle{c: nc, crossoverN: h.crossoverN}

	if h.c.state == Factored {
		var gen *gschur.Generators
		gen, err := gschur.Factor(nc.acf)
		if err == nil {
			nc.gen = gen
			nc.state = Factored
		} else {
			// Should not happen: the source was already successfully
			// factored from the same ACF values. Fall back to dirty so the
			// clone still behaves correctly (re-factors lazily on demand).
			nc.state = BoundDirty
			nc.gen = nil
		}
		_ = gen
	}
	return clone
}
