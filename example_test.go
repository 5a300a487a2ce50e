package supergauss_test

import (
	"fmt"
	"math"

	"github.com/tgauss/supergauss"
)

func Example() {
	n := 8
	gamma := make([]float64, n)
	for i := range gamma {
		gamma[i] = math.Exp(-0.3 * float64(i))
	}

	h := supergauss.New(n)
	if err := h.SetACF(gamma); err != nil {
		panic(err)
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(float64(i))
	}

	ll, err := supergauss.Dnormtz(x, nil, h, 1, true)
	if err != nil {
		panic(err)
	}
	fmt.Printf("log-density is finite: %v\n", !math.IsInf(ll[0], 0) && !math.IsNaN(ll[0]))
	// Output:
	// log-density is finite: true
}
