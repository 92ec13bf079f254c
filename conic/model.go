// SPDX-License-Identifier: MIT

// model.go — the Model builder: variables, rows, cones, objective, Solve and
// post-solve readback.

package conic

import (
	"fmt"
	"strconv"
)

// rowKind distinguishes the two scalar row families.
type rowKind uint8

const (
	rowEquality   rowKind = iota // expr == 0
	rowInequality                // expr >= 0
)

type row struct {
	kind rowKind
	expr LinExpr
}

// Model accumulates a conic program. Construct with NewModel; not safe for
// concurrent mutation (each program build owns its model).
type Model struct {
	names    []string
	rows     []row
	psd      [][][]LinExpr
	expCones [][3]LinExpr

	objective    LinExpr
	hasObjective bool

	solution *Solution
}

// NewModel creates an empty model.
// Complexity: O(1).
func NewModel() *Model { return &Model{} }

// NumVariables returns the number of scalar decision variables.
func (m *Model) NumVariables() int { return len(m.names) }

// NumRows returns the number of scalar constraint rows.
func (m *Model) NumRows() int { return len(m.rows) }

// NumPSDBlocks returns the number of PSD matrix constraints.
func (m *Model) NumPSDBlocks() int { return len(m.psd) }

// NumExpCones returns the number of dual-exponential cone constraints.
func (m *Model) NumExpCones() int { return len(m.expCones) }

// NewVariable declares one free scalar variable.
func (m *Model) NewVariable(name string) VarID {
	m.names = append(m.names, name)

	return VarID(len(m.names) - 1)
}

// NewVariables declares k free scalar variables name[0..k).
func (m *Model) NewVariables(name string, k int) []VarID {
	ids := make([]VarID, k)
	for i := range ids {
		ids[i] = m.NewVariable(name + "[" + strconv.Itoa(i) + "]")
	}

	return ids
}

// NewPSDMatrix declares a dim×dim symmetric matrix of fresh variables
// (upper triangle allocated, mirrored below) and registers the PSD
// constraint on it. The returned matrix entries are LinExpr views.
func (m *Model) NewPSDMatrix(name string, dim int) [][]LinExpr {
	entries := make([][]LinExpr, dim)
	for i := range entries {
		entries[i] = make([]LinExpr, dim)
	}
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			id := m.NewVariable(name + "[" + strconv.Itoa(i) + "," + strconv.Itoa(j) + "]")
			entries[i][j] = VarExpr(id)
			entries[j][i] = entries[i][j]
		}
	}
	m.psd = append(m.psd, entries)

	return entries
}

// AddEquality adds the row expr == 0 and returns its id for dual lookup.
func (m *Model) AddEquality(expr LinExpr) ConstraintID {
	m.rows = append(m.rows, row{kind: rowEquality, expr: expr})

	return ConstraintID(len(m.rows) - 1)
}

// AddInequality adds the row expr ≥ 0 and returns its id for dual lookup.
func (m *Model) AddInequality(expr LinExpr) ConstraintID {
	m.rows = append(m.rows, row{kind: rowInequality, expr: expr})

	return ConstraintID(len(m.rows) - 1)
}

// AddPSDConstraint registers a symmetric matrix of affine expressions that
// must be positive semidefinite. The block must be square.
func (m *Model) AddPSDConstraint(entries [][]LinExpr) error {
	for _, r := range entries {
		if len(r) != len(entries) {
			return fmt.Errorf("AddPSDConstraint: %dx%d: %w", len(entries), len(r), ErrBadConstraint)
		}
	}
	m.psd = append(m.psd, entries)

	return nil
}

// AddDualExpConstraint registers (u, v, w) ∈ dual exponential cone.
func (m *Model) AddDualExpConstraint(u, v, w LinExpr) {
	m.expCones = append(m.expCones, [3]LinExpr{u, v, w})
}

// Maximize sets the objective (last call wins).
func (m *Model) Maximize(expr LinExpr) {
	m.objective = expr
	m.hasObjective = true
}

// Program lowers the model into the solver exchange form. The lowering is
// deterministic: rows split into equalities then inequalities preserving
// insertion order within each family.
func (m *Model) Program() *Program {
	p := &Program{NumVars: len(m.names), Objective: m.objective}
	for _, r := range m.rows {
		if r.kind == rowEquality {
			p.Equalities = append(p.Equalities, r.expr)
		} else {
			p.Inequalities = append(p.Inequalities, r.expr)
		}
	}
	p.PSDBlocks = m.psd
	p.ExpCones = m.expCones

	return p
}

// Solve lowers the model and hands it to the solver.
//
// Failure modes, in order of checking:
//   - ErrNoObjective when Maximize was never called;
//   - ErrCapability when the program needs a cone the solver lacks;
//   - ErrSolverFailure wrapping a hard backend error;
//   - ErrNotOptimal wrapping the status on non-optimal termination (the
//     solution is still stored for inspection, but values must not be
//     trusted).
func (m *Model) Solve(s Solver) error {
	if !m.hasObjective {
		return ErrNoObjective
	}
	p := m.Program()
	if need := p.RequiredCapabilities(); !s.Capabilities().Has(need) {
		return fmt.Errorf("solver %q: %w", s.Name(), ErrCapability)
	}

	sol, err := s.Solve(p)
	if err != nil {
		return fmt.Errorf("solver %q: %w: %w", s.Name(), ErrSolverFailure, err)
	}
	m.solution = sol
	if sol.Status != StatusOptimal {
		return fmt.Errorf("solver %q: status %s: %w", s.Name(), sol.Status, ErrNotOptimal)
	}

	return nil
}

// Solved reports whether an optimal solution is available.
func (m *Model) Solved() bool { return m.solution != nil && m.solution.Status == StatusOptimal }

// ObjectiveValue returns the optimal objective.
func (m *Model) ObjectiveValue() (float64, error) {
	if !m.Solved() {
		return 0, ErrNotSolved
	}

	return m.solution.Objective, nil
}

// Value evaluates an affine expression at the optimal point.
func (m *Model) Value(e LinExpr) (float64, error) {
	if !m.Solved() {
		return 0, ErrNotSolved
	}

	return e.eval(m.solution.X), nil
}

// VariableValue returns the optimal value of one variable.
func (m *Model) VariableValue(id VarID) (float64, error) {
	if id < 0 || int(id) >= len(m.names) {
		return 0, fmt.Errorf("VariableValue(%d): %w", id, ErrBadConstraint)
	}

	return m.Value(VarExpr(id))
}

// Dual returns the dual multiplier of a scalar row. Requires a backend that
// produces duals; rows are addressed by the ConstraintID returned at add
// time.
func (m *Model) Dual(id ConstraintID) (float64, error) {
	if !m.Solved() {
		return 0, ErrNotSolved
	}
	if id < 0 || int(id) >= len(m.rows) {
		return 0, fmt.Errorf("Dual(%d): %w", id, ErrBadConstraint)
	}

	// Recover the position within the row's family (lowering order).
	family, pos := m.rows[id].kind, 0
	for i := 0; i < int(id); i++ {
		if m.rows[i].kind == family {
			pos++
		}
	}
	if family == rowEquality {
		if pos >= len(m.solution.EqDuals) {
			return 0, fmt.Errorf("Dual(%d): backend produced no equality duals: %w", id, ErrBadConstraint)
		}

		return m.solution.EqDuals[pos], nil
	}
	if pos >= len(m.solution.IneqDuals) {
		return 0, fmt.Errorf("Dual(%d): backend produced no inequality duals: %w", id, ErrBadConstraint)
	}

	return m.solution.IneqDuals[pos], nil
}
