// SPDX-License-Identifier: MIT

// Package poly provides deterministic multivariate polynomial values over
// named variables with float64 coefficients.
//
// What this package is:
//
//   - A value type: every operation returns a fresh Polynomial; receivers are
//     never mutated, so polynomials are safe to share across goroutines.
//   - Canonical: terms are keyed by a canonical monomial key and enumerated in
//     graded-lexicographic order (total degree first, then key order), so any
//     two equal polynomials print, hash and iterate identically.
//   - Strict about numbers: NaN and ±Inf coefficients are programmer errors.
//     Constructors panic with a stable message; ingestion paths that receive
//     external data should call Validate and branch on
//     ErrNonFiniteCoefficient instead.
//
// What this package is NOT: a symbolic algebra engine. There is no rational
// arithmetic, no factoring, no simplification beyond collecting like terms.
// The calculus helpers (Differentiate, Shift) exist because infinitesimal
// generators of diffusion and jump processes need exactly those two
// operations, nothing more.
//
// Basis(vars, d) enumerates the graded-lexicographic monomial basis of degree
// ≤ d, which is the shared vocabulary between decision polynomials and Gram
// matrices in the sos package.
package poly
