// Package dl implements the Durbin–Levinson reference path for symmetric
// positive-definite Toeplitz systems (§4.4).
//
// What & Why:
//
//	dl is the O(N²)-time, O(N)-memory ground truth against which gschur's
//	O(N log² N) path is checked (§8, property 4, "GSchur ≡ DL"), and it is
//	the production path for orders below the configurable crossover
//	threshold, where the asymptotically faster but more intricate GSchur
//	recursion has no practical advantage.
//
// Algorithm:
//
//	The classical Levinson recursion builds, order by order, the forward
//	prediction coefficients f_k and the one-step prediction error e_k for
//	an autoregressive fit to the ACF. f_k and e_k together let Solve and
//	LogDet be computed without ever materializing Σ or Σ⁻¹: Solve applies
//	the same recursion forward, and LogDet is the sum of log e_k, the log
//	of their running product (§4.2's "log|Σ| = Σ log(...)" is this same quantity, computed the
//	slow way here and the superfast way in gschur).
package dl
