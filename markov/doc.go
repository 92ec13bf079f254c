// SPDX-License-Identifier: MIT

// Package markov represents Markov processes through the one operator the
// bound-computation templates need: the action of the infinitesimal generator
// on polynomial observables.
//
// Two process families are supported:
//
//   - Jump processes: L f(x) = Σ_r a_r(x)·(f(x+ν_r) − f(x)) with polynomial
//     rates a_r and constant displacements ν_r. Chemical reaction networks
//     translate into this family with stochastic mass-action propensities
//     (falling factorials).
//   - Diffusion processes: L f = b·∇f + ½·Σ A_ij·∂²f/∂x_i∂x_j with polynomial
//     drift b and diffusion matrix A = σσᵀ.
//
// In both cases the generator maps polynomials to polynomials and is linear,
// so downstream packages may apply it monomial-by-monomial to decision
// polynomials whose coefficients are optimization variables.
//
// Processes are immutable after construction and safe to share across
// concurrent program builds.
//
// Reaction networks also ingest from YAML documents via ParseNetworkYAML:
//
//	reactions:
//	  - name: birth
//	    rate: 0.8
//	    products: {X: 1}
//	  - name: death
//	    rate: 0.1
//	    reactants: {X: 1}
package markov
