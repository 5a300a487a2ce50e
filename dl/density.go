package dl

import "math"

// log2pi = log(2π), precomputed once for Density.
var log2pi = math.Log(2 * math.Pi)

// Density evaluates the stationary Gaussian log-density
//
//	ℓ = -½(N log 2π + log|Σ| + εᵀΣ⁻¹ε),   ε = x - mu,
//
// via a single Durbin–Levinson pass over gamma (§4.4, §4.6). mu may be nil,
// meaning the zero vector.
//
// Complexity: O(N²) time, O(N) memory.
func Density(x, mu, gamma []float64) (float64, error) {
	n := len(gamma)
	if len(x) != n {
		return 0, errBadLength("Density", len(x), n)
	}
	eps := make([]float64, n)
	for i := range x {
		eps[i] = x[i]
		if mu != nil {
			eps[i] -= mu[i]
		}
	}

	w, logDet, err := Solve(gamma, eps)
	if err != nil {
		return 0, err
	}

	var quad float64
	for i := range eps {
		quad += eps[i] * w[i]
	}

	return -0.5 * (float64(n)*log2pi + logDet + quad), nil
}
