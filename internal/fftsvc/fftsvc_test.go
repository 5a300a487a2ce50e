package fftsvc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgauss/supergauss/internal/fftsvc"
)

func TestNextPow2(t *testing.T) {
	cases := map[int]int{
		1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1000: 1024, 1024: 1024,
	}
	for n, want := range cases {
		assert.Equalf(t, want, fftsvc.NextPow2(n), "NextPow2(%d)", n)
	}
}

func TestAcquireIdempotent(t *testing.T) {
	p1 := fftsvc.Acquire(64)
	p2 := fftsvc.Acquire(64)
	assert.Same(t, p1, p2, "Acquire must return the same cached Plan for a repeated length")
	assert.Equal(t, 64, p1.Len())
}

// TestRealRoundTrip checks that Inverse(Forward(seq))/M reconstructs seq,
// exercising the unnormalized-transform contract from §4.1.
func TestRealRoundTrip(t *testing.T) {
	const m = 16
	plan := fftsvc.Acquire(m)

	seq := make([]float64, m)
	for i := range seq {
		seq[i] = math.Sin(float64(i) * 0.37)
	}

	coeffs := plan.Forward(nil, seq)
	require.Len(t, coeffs, m/2+1)

	rec := plan.Inverse(nil, coeffs)
	require.Len(t, rec, m)
	for i := range seq {
		got := rec[i] / float64(m)
		assert.InDeltaf(t, seq[i], got, 1e-9, "index %d", i)
	}
}

// TestComplexRoundTrip exercises the complex-to-complex pair used by
// gschur's polynomial products.
func TestComplexRoundTrip(t *testing.T) {
	const m = 8
	plan := fftsvc.Acquire(m)

	seq := make([]complex128, m)
	for i := range seq {
		seq[i] = complex(float64(i)-3, float64(i)*0.5)
	}

	coeffs := plan.ForwardComplex(nil, seq)
	rec := plan.InverseComplex(nil, coeffs)
	require.Len(t, rec, m)
	for i := range seq {
		got := rec[i] / complex(float64(m), 0)
		assert.InDeltaf(t, real(seq[i]), real(got), 1e-9, "real index %d", i)
		assert.InDeltaf(t, imag(seq[i]), imag(got), 1e-9, "imag index %d", i)
	}
}
