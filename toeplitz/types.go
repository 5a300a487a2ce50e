package toeplitz

import (
	"sync"

	"github.com/tgauss/supergauss/gschur"
	"github.com/tgauss/supergauss/internal/workspace"
)

// State is a Toeplitz handle's factorization state (§3, §4.3).
type State int

const (
	// Unbound is the state of a freshly constructed handle with no ACF.
	Unbound State = iota
	// BoundDirty is the state once an ACF is set but not yet factored.
	BoundDirty
	// Factored is the state once GSchur generators are cached.
	Factored
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "UNBOUND"
	case BoundDirty:
		return "BOUND_DIRTY"
	case Factored:
		return "FACTORED"
	default:
		return "UNKNOWN"
	}
}

// core is the mutable state shared by every shallow clone of a Handle.
type core struct {
	mu    sync.Mutex
	n     int
	acf   []float64
	state State
	gen   *gschur.Generators
	ws    *workspace.Pool
}

// Handle is a stateful Toeplitz-matrix container bound to an order N
// (§3 "Toeplitz handle"). The zero value is not usable; construct with
// New. Shallow clones share the underlying core (mutations are visible
// to both observers); deep clones allocate independent state.
type Handle struct {
	c          *core
	crossoverN int
}
