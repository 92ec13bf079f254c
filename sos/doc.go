// SPDX-License-Identifier: MIT

// Package sos compiles polynomial nonnegativity statements into conic
// constraints and provides the two constraint primitives every program
// template builds on: stationarity and coupling.
//
// The central object is LinPoly — a polynomial whose coefficients are affine
// expressions over optimization variables. Decision polynomials, generator
// images of decision polynomials and template targets are all LinPoly
// values; the certificate compiler turns "q ≥ 0 on a cell" into solver rows:
//
//	Point        q(x*) ≥ 0                    one scalar inequality
//	Region       q = σ0 + Σ σ_i·g_i + Σ λ_j·h_j   (Putinar form)
//	             with SOS multipliers σ (Gram matrices in the chosen cone)
//	             and free multipliers λ, matched monomial by monomial
//	RegionGroup  one Region certificate per member, shared q
//
// Two relaxation cones are available: SOSCone (full sum-of-squares, Gram
// matrices constrained PSD — the default) and DDCone (diagonally dominant
// Gram matrices — a weaker inner approximation that stays entirely linear,
// solvable by LP backends).
//
// The stationarity primitive certifies −(L w_v + target) ≥ 0 on a vertex's
// cell; taking stationary expectations (E[L w] = 0) then yields
// E[target] ≤ 0, which is the engine behind every bound template. At Point
// cells the generator is evaluated exactly: jump destinations are resolved
// to their cells through Partition.Locate and read the destination cell's
// weight, so discrete chains are represented without polynomial
// approximation.
//
// The coupling primitive glues adjacent cells: across an edge with interface
// polynomial h, the weight difference w_u − w_v must lie in the ideal of h
// (w_u − w_v = μ·h for a free polynomial multiplier μ), i.e. the weights
// agree on {h = 0}. Edges without an interface couple nothing.
//
// Every certificate returns a Handle recording its constraint rows; after a
// successful solve, Handle.Mass reads the dual of the constant-monomial row
// (summed over sub-certificates), which the measure-reconstruction templates
// interpret as the cell's stationary probability mass.
package sos
