// Package ergodic computes rigorous bounds on stationary statistics of
// continuous- and jump-time Markov processes via sum-of-squares conic
// programming.
//
// 🚀 What is ergodic?
//
//	A pure-Go library that assembles, per partition cell, the polynomial
//	certificates proving that a candidate auxiliary function dominates the
//	generator action on a target observable, and solves the resulting conic
//	program for a provable steady-state bound:
//		• Polynomials: deterministic multivariate polynomial values
//		• Partitions: state-space cells (points & semialgebraic regions) on a graph
//		• Processes: jump generators, diffusions, reaction networks
//		• Certificates: SOS / diagonally-dominant cones, stationarity & coupling
//		• Templates: mean, variance, covariance-ellipsoid volume,
//		  probability mass, approximate & max-entropy stationary measures
//
// ✨ Why choose ergodic?
//
//   - Provable results – every returned value is a valid one-sided bound
//   - Deterministic – stable monomial, vertex and constraint ordering throughout
//   - Solver-agnostic – bring any conic solver behind a narrow interface
//   - Tightenable – raise the relaxation order or refine the partition
//
// Under the hood, everything is organized under six subpackages:
//
//	poly/       — multivariate polynomial values & monomial bases
//	partition/  — cell-tagged partition graphs with coupling edges
//	markov/     — jump & diffusion generators, reaction-network adapters
//	conic/      — optimization-model builder and the Solver interface
//	sos/        — stationarity & coupling constraint compilation
//	stationary/ — the bound-computation program templates
//
// Quick sketch: for a birth–death chain with birth rate λ and death rate γ·x,
//
//	net := markov.BirthDeath(lambda, gamma)
//	lo, up, err := stationary.Mean(net.Process(), x, 2, mySolver)
//
// brackets the stationary mean population between lo.Value and up.Value.
//
// Bounds tighten monotonically with the relaxation order; see each
// subpackage's doc.go for the mathematical contract it honors.
package ergodic
