// SPDX-License-Identifier: MIT

// Package conic is the optimization-model layer: an explicit builder for
// conic programs (linear rows, PSD blocks, dual-exponential cones, a maximize
// objective) plus the narrow Solver interface the numerical backend plugs
// into.
//
// Design rules:
//
//   - The Model is an explicit value threaded through every helper; nothing
//     captures it implicitly and every constraint-adding call returns the
//     handle needed later (e.g. a ConstraintID for dual lookup).
//   - The package contains no numerical solver. Solve hands a fully lowered
//     Program to the supplied Solver and refuses up front when the program
//     needs a cone the solver does not declare (ErrCapability) — a
//     configuration error, never silently degraded.
//   - A non-Optimal termination surfaces as ErrNotOptimal carrying the
//     status; objective, values and duals must not be trusted unless Solve
//     returned nil. No retries happen at this layer.
//
// Determinism: variables, rows, PSD blocks and cones keep insertion order;
// the lowered Program is identical across runs for the same build sequence.
package conic
