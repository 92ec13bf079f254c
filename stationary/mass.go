// SPDX-License-Identifier: MIT

// mass.go — two-sided bounds on the stationary probability of a set of cells.

package stationary

import (
	"fmt"

	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/markov"
	"github.com/katalvlaran/ergodic/partition"
	"github.com/katalvlaran/ergodic/poly"
	"github.com/katalvlaran/ergodic/sos"
)

// Mass brackets the stationary probability of the union of the given
// partition cells. Two independent programs run: one with the indicator
// added to the flagged vertex targets (upper bound, negated objective) and
// one with it subtracted (lower bound, plain objective). Both values lie in
// [0, 1] by construction.
func Mass(proc *markov.Process, vertices []int, order int, solver conic.Solver, opts ...Option) (lower, upper *Bound, err error) {
	if len(vertices) == 0 {
		return nil, nil, ErrEmptyVertexSet
	}
	o := gatherOptions(opts)
	flagged := make(map[int]bool, len(vertices))
	for _, id := range vertices {
		if _, err := o.part.Cell(id); err != nil {
			return nil, nil, fmt.Errorf("Mass: %w", err)
		}
		flagged[id] = true
	}

	solve := func(sense float64) (*Bound, error) {
		pr, err := newProgram(proc, o, order)
		if err != nil {
			return nil, err
		}
		targets := make(map[int]sos.LinPoly, pr.part.VertexCount())
		for _, id := range pr.part.Vertices() {
			t := pr.base
			if flagged[id] {
				t = t.AddPoly(poly.Const(sense))
			}
			targets[id] = t
		}
		if err := pr.finish(proc, targets, o.cone, pr.offset, solver); err != nil {
			return nil, err
		}
		obj, err := pr.model.ObjectiveValue()
		if err != nil {
			return nil, err
		}
		value := obj
		if sense > 0 {
			value = -obj
		}

		return pr.bound(value)
	}

	if upper, err = solve(1); err != nil {
		return nil, nil, err
	}
	if lower, err = solve(-1); err != nil {
		return nil, nil, err
	}

	return lower, upper, nil
}

// MassOfSet brackets the stationary probability of a semialgebraic set. It
// splits the space into the set and its complement (a RegionGroup with one
// member per negated inequality), glues them on the product of the boundary
// polynomials, and delegates to Mass. The set must carry at least one
// inequality and no equalities; any caller-provided partition is replaced by
// the split.
func MassOfSet(proc *markov.Process, set partition.Region, order int, solver conic.Solver, opts ...Option) (lower, upper *Bound, err error) {
	if len(set.Inequalities) == 0 || len(set.Equalities) > 0 {
		return nil, nil, ErrBadSet
	}

	split := partition.New()
	inside, err := split.AddVertex(set)
	if err != nil {
		return nil, nil, fmt.Errorf("MassOfSet: %w", err)
	}
	complement := make(partition.RegionGroup, len(set.Inequalities))
	for i, g := range set.Inequalities {
		complement[i] = partition.Region{Inequalities: []poly.Polynomial{g.Neg()}}
	}
	outside, err := split.AddVertex(complement)
	if err != nil {
		return nil, nil, fmt.Errorf("MassOfSet: %w", err)
	}

	boundary := poly.Const(1)
	for _, g := range set.Inequalities {
		boundary = boundary.Mul(g)
	}
	if err := split.AddEdge(inside, outside, partition.WithInterface(boundary)); err != nil {
		return nil, nil, fmt.Errorf("MassOfSet: %w", err)
	}

	merged := append(append([]Option(nil), opts...), WithPartition(split))

	return Mass(proc, []int{inside}, order, solver, merged...)
}
