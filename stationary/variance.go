// SPDX-License-Identifier: MIT

// variance.go — upper bounds on the stationary variance of an observable.

package stationary

import (
	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/markov"
	"github.com/katalvlaran/ergodic/poly"
	"github.com/katalvlaran/ergodic/sos"
)

// Variance computes a rigorous upper bound on Var[p] = E[p²] − E[p]².
//
// The quadratic term in E[p] is handled by a 2×2 Schur device: a PSD matrix
// [[V, a], [a, 1]] makes V + 2a·m + m² ≥ 0 for every value m, so certifying
// E[s + p² + 2a·p] ≤ 0 yields Var[p] ≤ V − s for the optimal (V, a). The
// objective maximizes s − V and the bound is the negated objective, hence
// always nonnegative. Requires a CapPSD backend even under the DD cone.
func Variance(proc *markov.Process, p poly.Polynomial, order int, solver conic.Solver, opts ...Option) (*Bound, error) {
	if err := checkObservable(proc, p); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	pr, err := newProgram(proc, o, order)
	if err != nil {
		return nil, err
	}

	schur := pr.model.NewPSDMatrix("S", 2)
	pr.model.AddEquality(schur[1][1].AddConst(-1))

	extra := sos.LinPoly{}.
		AddPoly(p.Mul(p)).
		AddExprTimesPoly(schur[0][1].Scale(2), p)
	targets := pr.uniformTargets(extra)

	objective := pr.offset.Sub(schur[0][0])
	if err := pr.finish(proc, targets, o.cone, objective, solver); err != nil {
		return nil, err
	}
	obj, err := pr.model.ObjectiveValue()
	if err != nil {
		return nil, err
	}

	return pr.bound(-obj)
}
