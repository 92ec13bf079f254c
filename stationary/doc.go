// SPDX-License-Identifier: MIT

// Package stationary turns Markov processes into conic programs whose
// optimal values are rigorous bounds on stationary statistics.
//
// Every template follows the same recipe: allocate one weight function per
// partition cell (a scalar on Point cells, a decision polynomial of degree ≤
// order elsewhere), certify −(L w + target) ≥ 0 on each cell, glue adjacent
// weights on their interfaces, and maximize a free constant folded into the
// targets. Because E[L w] = 0 under any stationary measure, the certificate
// forces E[target] ≤ 0, which each template shapes into its statistic:
//
//	Polynomial / Mean       lower/upper bounds on E[p]
//	Variance                upper bound on Var[p] (2×2 Schur device)
//	CovarianceEllipsoid     upper bound on det Cov[v] (log-det device)
//	Mass / MassOfSet        two-sided bounds on stationary probabilities
//	ApproximateMeasure      cell masses from stationarity duals
//	MaxEntropyMeasure       cell masses under a max-entropy criterion
//
// Templates are pure functions: each call builds a fresh model, fresh
// weights and fresh multipliers, and nothing is shared across calls.
// Partition, relaxation cone and side information arrive as functional
// options; the defaults are the whole-space single cell and the full SOS
// cone. Bounds are rigorous for every feasible solution, so tighter orders
// only improve them; a solve that does not reach optimality returns an error
// and no Bound.
package stationary
