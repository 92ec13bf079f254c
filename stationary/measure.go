// SPDX-License-Identifier: MIT

// measure.go — approximate stationary measures reconstructed from the duals
// of the stationarity constraints.

package stationary

import (
	"strconv"

	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/markov"
	"github.com/katalvlaran/ergodic/poly"
	"github.com/katalvlaran/ergodic/sos"
)

// ApproximateMeasure solves the lower-bound program for the regularizing
// observable ρ and reads the per-cell stationary masses from the duals of the
// stationarity constraints (the constant-monomial rows, summed over
// RegionGroup members). The masses come back ordered by vertex id and sum to
// one up to solver tolerance; the Bound carries the lower bound on E[ρ].
// Requires a backend that produces duals.
func ApproximateMeasure(proc *markov.Process, regularizer poly.Polynomial, order int, solver conic.Solver, opts ...Option) (*Bound, []float64, error) {
	if err := checkObservable(proc, regularizer); err != nil {
		return nil, nil, err
	}
	o := gatherOptions(opts)
	pr, err := newProgram(proc, o, order)
	if err != nil {
		return nil, nil, err
	}

	targets := pr.uniformTargets(sos.FromPoly(regularizer.Neg()))
	if err := pr.finish(proc, targets, o.cone, pr.offset, solver); err != nil {
		return nil, nil, err
	}
	obj, err := pr.model.ObjectiveValue()
	if err != nil {
		return nil, nil, err
	}
	masses, err := pr.masses()
	if err != nil {
		return nil, nil, err
	}
	b, err := pr.bound(obj)
	if err != nil {
		return nil, nil, err
	}

	return b, masses, nil
}

// MaxEntropyMeasure reconstructs the stationary masses under a maximum
// entropy criterion: each vertex gets a dual-exponential triple (−1, q_v, u_v)
// with q_v folded into the vertex target, and the objective trades Σu_v
// against the stationarity constant s. Masses come from the same duals as
// ApproximateMeasure. Requires CapExpCone and a dual-producing backend.
func MaxEntropyMeasure(proc *markov.Process, order int, solver conic.Solver, opts ...Option) (*Bound, []float64, error) {
	o := gatherOptions(opts)
	pr, err := newProgram(proc, o, order)
	if err != nil {
		return nil, nil, err
	}
	m := pr.model

	uSum := conic.LinExpr{}
	targets := make(map[int]sos.LinPoly, pr.part.VertexCount())
	for _, id := range pr.part.Vertices() {
		q := conic.VarExpr(m.NewVariable("q" + strconv.Itoa(id)))
		u := conic.VarExpr(m.NewVariable("u" + strconv.Itoa(id)))
		m.AddDualExpConstraint(conic.ConstExpr(-1), q, u)
		targets[id] = pr.base.Add(sos.FromExpr(q))
		uSum = uSum.Add(u)
	}

	objective := pr.offset.Sub(uSum)
	if err := pr.finish(proc, targets, o.cone, objective, solver); err != nil {
		return nil, nil, err
	}
	obj, err := m.ObjectiveValue()
	if err != nil {
		return nil, nil, err
	}
	masses, err := pr.masses()
	if err != nil {
		return nil, nil, err
	}
	b, err := pr.bound(obj)
	if err != nil {
		return nil, nil, err
	}

	return b, masses, nil
}
