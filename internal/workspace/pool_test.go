package workspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgauss/supergauss/internal/workspace"
)

func TestPoolRealReuseAndClear(t *testing.T) {
	p := workspace.New(10)
	buf := p.Real("tmp0")
	require.Len(t, buf, p.M())
	buf[0] = 42

	again := p.Real("tmp0")
	assert.Equal(t, 0.0, again[0], "Real must clear the slot on every request")
	// Same backing array reused, not reallocated.
	again[1] = 7
	assert.Equal(t, 7.0, buf[1], "Real must return the same backing slice across calls")
}

func TestPoolComplexDistinctRoles(t *testing.T) {
	p := workspace.New(5)
	a := p.Complex("alpha_hat")
	b := p.Complex("beta_hat")
	require.Len(t, a, p.M())
	require.Len(t, b, p.M())
	a[0] = 1 + 2i
	assert.NotEqual(t, a[0], b[0], "distinct roles must not alias")
}

func TestPoolReleaseIsIdempotent(t *testing.T) {
	p := workspace.New(4)
	_ = p.Real("x")
	p.Release()
	assert.NotPanics(t, func() {
		p.Release() // idempotent
	})
}
