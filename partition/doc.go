// SPDX-License-Identifier: MIT

// Package partition models decompositions of a Markov process's state space
// into cells organized as a graph with adjacency (coupling) edges.
//
// Cells come in exactly three kinds, expressed as a closed sum type:
//
//	Point       — a single fixed state (weights over it are plain scalars)
//	Region      — a semialgebraic set {g_i ≥ 0, h_j = 0}
//	RegionGroup — an ordered list of Regions sharing one weight function
//
// The Cell interface is sealed (unexported marker method), so a switch over
// the three kinds is exhaustive by construction; adding a fourth kind is a
// compile-time-visible change in this package, not a silent fallthrough in a
// caller.
//
// Vertices carry dense integer ids assigned in insertion order (0..n−1) and
// exactly one Cell; both are fixed at insertion. Edges are unordered vertex
// pairs and may carry an interface polynomial h, meaning the two cells are
// glued across the zero set {h = 0} and their weight functions must agree
// there (the coupling constraint consumed by the sos package).
//
// Determinism: Vertices() enumerates ids ascending, Edges() in insertion
// order; every program built over the same partition therefore emits
// constraints in the same order.
//
// A Partition must not be mutated while a program is being assembled over it;
// all read accessors are safe to share across concurrent, independent builds.
package partition
