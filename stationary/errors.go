// SPDX-License-Identifier: MIT

// errors.go — sentinel errors for the stationary package.
// Branch with errors.Is; call sites attach context with %w.

package stationary

import "errors"

// ErrBadOrder indicates a negative relaxation order.
var ErrBadOrder = errors.New("stationary: relaxation order must be nonnegative")

// ErrNoObservables indicates an empty observable list where at least one is
// required.
var ErrNoObservables = errors.New("stationary: no observables")

// ErrBadSet indicates a set descriptor MassOfSet cannot split on: the set
// must carry at least one inequality and no equalities.
var ErrBadSet = errors.New("stationary: set must be described by inequalities only")

// ErrEmptyVertexSet indicates a probability-mass query over no vertices.
var ErrEmptyVertexSet = errors.New("stationary: empty vertex set")
