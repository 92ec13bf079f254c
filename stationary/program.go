// SPDX-License-Identifier: MIT

// program.go — shared scaffolding of the templates: fresh model, weight
// allocation, side-info multipliers, stationarity + coupling, solve, and
// post-solve extraction. Every template call builds everything from scratch;
// nothing is cached across calls.

package stationary

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/markov"
	"github.com/katalvlaran/ergodic/partition"
	"github.com/katalvlaran/ergodic/poly"
	"github.com/katalvlaran/ergodic/sos"
)

// program is one template invocation in flight.
type program struct {
	model   *conic.Model
	part    *partition.Partition
	weights sos.WeightMap
	handles map[int]*sos.Handle

	// base is s + Σ η_j·f_j, the target part shared by every vertex;
	// offset is s + Σ η_j·c_j, the objective part they contribute.
	base   sos.LinPoly
	offset conic.LinExpr
}

// newProgram allocates the model, the per-vertex weights and the side-info
// multipliers.
func newProgram(proc *markov.Process, o *options, order int) (*program, error) {
	if order < 0 {
		return nil, ErrBadOrder
	}
	m := conic.NewModel()
	weights, err := sos.NewWeights(m, o.part, proc.Vars(), order)
	if err != nil {
		return nil, err
	}

	s := conic.VarExpr(m.NewVariable("s"))
	base := sos.FromExpr(s)
	offset := s
	for j, info := range o.side {
		if err := checkObservable(proc, info.Observable); err != nil {
			return nil, fmt.Errorf("side info %d: %w", j, err)
		}
		eta := conic.VarExpr(m.NewVariable("eta" + strconv.Itoa(j)))
		if !info.Equality {
			m.AddInequality(eta)
		}
		base = base.AddExprTimesPoly(eta, info.Observable)
		offset = offset.Add(eta.Scale(info.Value))
	}

	return &program{model: m, part: o.part, weights: weights, base: base, offset: offset}, nil
}

// uniformTargets assigns the same extra target polynomial to every vertex on
// top of the shared base.
func (pr *program) uniformTargets(extra sos.LinPoly) map[int]sos.LinPoly {
	targets := make(map[int]sos.LinPoly, pr.part.VertexCount())
	for _, id := range pr.part.Vertices() {
		targets[id] = pr.base.Add(extra)
	}

	return targets
}

// finish emits stationarity and coupling rows, sets the objective and solves.
func (pr *program) finish(proc *markov.Process, targets map[int]sos.LinPoly, cone sos.Cone, objective conic.LinExpr, solver conic.Solver) error {
	handles, err := sos.AddStationarityConstraints(pr.model, proc, pr.part, pr.weights, targets, cone)
	if err != nil {
		return err
	}
	pr.handles = handles
	if err := sos.AddCouplingConstraints(pr.model, proc, pr.part, pr.weights); err != nil {
		return err
	}
	pr.model.Maximize(objective)

	return pr.model.Solve(solver)
}

// bound resolves the weight polynomials and wraps the result.
func (pr *program) bound(value float64) (*Bound, error) {
	resolved := make(map[int]poly.Polynomial, len(pr.weights))
	for id, w := range pr.weights {
		switch wt := w.(type) {
		case sos.ScalarWeight:
			c, err := pr.model.Value(wt.Expr)
			if err != nil {
				return nil, err
			}
			resolved[id] = poly.Const(c)
		case sos.PolyWeight:
			p, err := wt.Poly.Resolve(pr.model)
			if err != nil {
				return nil, err
			}
			resolved[id] = p
		}
	}

	return &Bound{Value: value, Model: pr.model, Partition: pr.part, Weights: resolved}, nil
}

// masses reads the stationarity duals per vertex, ordered by vertex id.
func (pr *program) masses() ([]float64, error) {
	out := make([]float64, pr.part.VertexCount())
	for _, id := range pr.part.Vertices() {
		mass, err := pr.handles[id].Mass(pr.model)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", id, err)
		}
		out[id] = mass
	}

	return out, nil
}

// checkObservable rejects observables over variables the process lacks.
func checkObservable(proc *markov.Process, p poly.Polynomial) error {
	if err := p.Validate(); err != nil {
		return err
	}
	known := map[poly.Var]struct{}{}
	for _, v := range proc.Vars() {
		known[v] = struct{}{}
	}
	for _, v := range p.Vars() {
		if _, ok := known[v]; !ok {
			return fmt.Errorf("observable: %q: %w", v, markov.ErrUnknownVariable)
		}
	}

	return nil
}
