// SPDX-License-Identifier: MIT

// errors.go — sentinel errors for the conic package.
// Branch with errors.Is; call sites attach context with %w.

package conic

import "errors"

// ErrCapability indicates the program requires a cone the chosen solver does
// not support (e.g. exponential cones for ellipsoid or entropy templates).
var ErrCapability = errors.New("conic: solver lacks required cone support")

// ErrNoObjective indicates Solve was called before Maximize.
var ErrNoObjective = errors.New("conic: no objective set")

// ErrNotSolved indicates a value/dual readback before a successful Solve.
var ErrNotSolved = errors.New("conic: model not solved")

// ErrNotOptimal indicates the solver terminated without an optimal solution
// (infeasible, unbounded or unknown). The status is carried in the wrap.
var ErrNotOptimal = errors.New("conic: solve did not reach optimality")

// ErrBadConstraint indicates a malformed constraint (non-square PSD block,
// unknown variable id, unknown constraint id).
var ErrBadConstraint = errors.New("conic: bad constraint")

// ErrSolverFailure wraps a hard error returned by the solver backend.
var ErrSolverFailure = errors.New("conic: solver failure")
