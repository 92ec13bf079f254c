// SPDX-License-Identifier: MIT

// polynomial.go — lower bounds on stationary expectations of polynomial
// observables, and the two-sided Mean wrapper.

package stationary

import (
	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/markov"
	"github.com/katalvlaran/ergodic/poly"
	"github.com/katalvlaran/ergodic/sos"
)

// Polynomial computes a rigorous lower bound on E[p] under every stationary
// measure of the process: maximize s subject to the stationarity certificate
// of s − p on each cell and coupling on each edge. The returned Bound.Value
// satisfies Value ≤ E[p]; tightness grows with the relaxation order.
func Polynomial(proc *markov.Process, p poly.Polynomial, order int, solver conic.Solver, opts ...Option) (*Bound, error) {
	if err := checkObservable(proc, p); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	pr, err := newProgram(proc, o, order)
	if err != nil {
		return nil, err
	}

	targets := pr.uniformTargets(sos.FromPoly(p.Neg()))
	if err := pr.finish(proc, targets, o.cone, pr.offset, solver); err != nil {
		return nil, err
	}
	obj, err := pr.model.ObjectiveValue()
	if err != nil {
		return nil, err
	}

	return pr.bound(obj)
}

// Mean brackets E[p] with two independent solves: a lower bound on E[p] and
// a lower bound on E[−p] flipped into an upper bound. Both bounds are valid
// simultaneously; lower.Value ≤ E[p] ≤ upper.Value.
func Mean(proc *markov.Process, p poly.Polynomial, order int, solver conic.Solver, opts ...Option) (lower, upper *Bound, err error) {
	lower, err = Polynomial(proc, p, order, solver, opts...)
	if err != nil {
		return nil, nil, err
	}
	upper, err = Polynomial(proc, p.Neg(), order, solver, opts...)
	if err != nil {
		return nil, nil, err
	}
	upper.Value = -upper.Value

	return lower, upper, nil
}
