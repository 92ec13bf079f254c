// SPDX-License-Identifier: MIT

// Package lpsolve is a dense two-phase simplex backend implementing
// conic.Solver for the linear capability only. It exists so the library is
// exercisable end to end without an external conic solver: point-partition
// programs and the diagonally dominant relaxation are fully linear and land
// here in the test suite. Production use should plug in a real backend.
//
// Row duals are reported in the Lagrangian convention
// c + Σ λ_i·∇row_i = 0 with λ ≥ 0 on inequality rows, which is what the
// measure-reconstruction templates read stationary masses from.
package lpsolve

import (
	"math"

	"github.com/katalvlaran/ergodic/conic"
)

// DefaultTolerance is the pivot and feasibility tolerance.
const DefaultTolerance = 1e-9

// maxPivots bounds the simplex iterations; Bland's rule terminates long
// before this on any sane program.
const maxPivots = 100000

const panicToleranceInvalid = "lpsolve: tolerance must be positive and finite"

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithTolerance overrides the pivot tolerance.
// Panics with a stable message on NaN/±Inf/non-positive values.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(s *Solver) { s.tol = tol }
}

// Solver is the simplex backend. Construct with New; Solve touches no state
// beyond the tolerance, so one Solver may serve concurrent solves.
type Solver struct {
	tol float64
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name identifies the backend in diagnostics.
func (s *Solver) Name() string { return "lpsolve" }

// Capabilities declares linear rows only; PSD and exponential-cone programs
// are refused upstream by the model.
func (s *Solver) Capabilities() conic.Capability { return conic.CapLinear }

// denseRow is one scalar row a·x + b (== 0 or ≥ 0).
type denseRow struct {
	a  []float64
	b  float64
	eq bool
}

// Solve optimizes max c·x subject to the program's rows.
// Complexity: each pivot is O(m·cols) on an m×(2n+m+q) tableau.
func (s *Solver) Solve(p *conic.Program) (*conic.Solution, error) {
	used, cols := usedColumns(p)
	n := len(cols)

	rows := make([]denseRow, 0, len(p.Equalities)+len(p.Inequalities))
	for _, e := range p.Equalities {
		rows = append(rows, dense(e, used, n, true))
	}
	for _, e := range p.Inequalities {
		rows = append(rows, dense(e, used, n, false))
	}
	obj := dense(p.Objective, used, n, false)

	if n == 0 {
		return constantSolution(p, rows, obj.b, s.tol), nil
	}

	t := newTableau(rows, n)
	status, x, lam := t.optimize(obj.a, s.tol)
	if status != conic.StatusOptimal {
		return &conic.Solution{Status: status}, nil
	}

	fullX := make([]float64, p.NumVars)
	for j, col := range cols {
		fullX[col] = x[j]
	}

	return &conic.Solution{
		Status:    conic.StatusOptimal,
		Objective: obj.b + dot(obj.a, x),
		X:         fullX,
		EqDuals:   lam[:len(p.Equalities)],
		IneqDuals: lam[len(p.Equalities):],
	}, nil
}

// usedColumns maps variables that appear in rows or objective to dense
// column indices. Untouched variables are pinned to zero.
func usedColumns(p *conic.Program) (map[conic.VarID]int, []conic.VarID) {
	seen := map[conic.VarID]struct{}{}
	mark := func(e conic.LinExpr) {
		for id := range e.Coefficients() {
			seen[id] = struct{}{}
		}
	}
	for _, e := range p.Equalities {
		mark(e)
	}
	for _, e := range p.Inequalities {
		mark(e)
	}
	mark(p.Objective)

	cols := make([]conic.VarID, 0, len(seen))
	for id := conic.VarID(0); int(id) < p.NumVars; id++ {
		if _, ok := seen[id]; ok {
			cols = append(cols, id)
		}
	}
	used := make(map[conic.VarID]int, len(cols))
	for j, id := range cols {
		used[id] = j
	}

	return used, cols
}

// dense projects an expression onto the dense column layout.
func dense(e conic.LinExpr, used map[conic.VarID]int, n int, eq bool) denseRow {
	r := denseRow{a: make([]float64, n), b: e.Constant(), eq: eq}
	for id, c := range e.Coefficients() {
		r.a[used[id]] = c
	}

	return r
}

// constantSolution classifies a program without live variables.
func constantSolution(p *conic.Program, rows []denseRow, obj, tol float64) *conic.Solution {
	for _, r := range rows {
		if r.eq && math.Abs(r.b) > tol {
			return &conic.Solution{Status: conic.StatusInfeasible}
		}
		if !r.eq && r.b < -tol {
			return &conic.Solution{Status: conic.StatusInfeasible}
		}
	}

	return &conic.Solution{
		Status:    conic.StatusOptimal,
		Objective: obj,
		X:         make([]float64, p.NumVars),
		EqDuals:   make([]float64, len(p.Equalities)),
		IneqDuals: make([]float64, len(p.Inequalities)),
	}
}

// tableau is the standard-form system A·z = d, z ≥ 0 after splitting free
// variables (x = x⁺ − x⁻), adding one slack per inequality and one
// artificial per row. Column layout: [0,n) x⁺, [n,2n) x⁻, [2n,2n+q) slacks,
// [artStart, artStart+m) artificials.
type tableau struct {
	m, n, cols int
	artStart   int
	a          [][]float64
	rhs        []float64
	basis      []int
	flip       []float64 // row sign applied to make d ≥ 0
}

func newTableau(rows []denseRow, n int) *tableau {
	m := len(rows)
	q := 0
	for _, r := range rows {
		if !r.eq {
			q++
		}
	}
	t := &tableau{
		m:        m,
		n:        n,
		cols:     2*n + q + m,
		artStart: 2*n + q,
		a:        make([][]float64, m),
		rhs:      make([]float64, m),
		basis:    make([]int, m),
		flip:     make([]float64, m),
	}

	slack := 2 * n
	for i, r := range rows {
		sign := 1.0
		if -r.b < 0 {
			sign = -1
		}
		t.flip[i] = sign
		row := make([]float64, t.cols)
		for j, c := range r.a {
			row[j] = sign * c
			row[n+j] = -sign * c
		}
		if !r.eq {
			row[slack] = -sign
			slack++
		}
		row[t.artStart+i] = 1
		t.a[i] = row
		t.rhs[i] = sign * -r.b
		t.basis[i] = t.artStart + i
	}

	return t
}

// optimize runs both simplex phases and extracts the primal point and the
// Lagrangian row multipliers.
func (t *tableau) optimize(objA []float64, tol float64) (conic.Status, []float64, []float64) {
	// Phase 1: drive the artificial sum to zero.
	phase1 := make([]float64, t.cols)
	for j := t.artStart; j < t.cols; j++ {
		phase1[j] = -1
	}
	if st := t.simplex(phase1, t.cols, tol); st != conic.StatusOptimal {
		return conic.StatusUnknown, nil, nil
	}
	if t.objective(phase1) < -math.Sqrt(tol) {
		return conic.StatusInfeasible, nil, nil
	}
	t.evictArtificials(tol)

	// Phase 2: the real objective, artificial columns locked out.
	phase2 := make([]float64, t.cols)
	for j := 0; j < t.n; j++ {
		phase2[j] = objA[j]
		phase2[t.n+j] = -objA[j]
	}
	if st := t.simplex(phase2, t.artStart, tol); st != conic.StatusOptimal {
		return st, nil, nil
	}

	// Primal point x = x⁺ − x⁻.
	z := make([]float64, t.cols)
	for i, b := range t.basis {
		z[b] = t.rhs[i]
	}
	x := make([]float64, t.n)
	for j := range x {
		x[j] = z[j] - z[t.n+j]
	}

	// Duals: the artificial column of row i is B⁻¹·e_i, so
	// y_i = Σ_k cost(basis_k)·T[k][art_i]; undo the sign flip and negate
	// into the Lagrangian convention λ = −y.
	lam := make([]float64, t.m)
	for i := 0; i < t.m; i++ {
		lam[i] = -t.flip[i] * t.colCost(phase2, t.artStart+i)
	}

	return conic.StatusOptimal, x, lam
}

// simplex maximizes cost over columns [0, limit) with Bland's rule.
func (t *tableau) simplex(cost []float64, limit int, tol float64) conic.Status {
	for iter := 0; iter < maxPivots; iter++ {
		enter := -1
		for j := 0; j < limit; j++ {
			if cost[j]-t.colCost(cost, j) > tol {
				enter = j

				break
			}
		}
		if enter < 0 {
			return conic.StatusOptimal
		}

		leave := -1
		best := 0.0
		for i := 0; i < t.m; i++ {
			if t.a[i][enter] <= tol {
				continue
			}
			ratio := t.rhs[i] / t.a[i][enter]
			if leave < 0 || ratio < best || (ratio == best && t.basis[i] < t.basis[leave]) {
				leave, best = i, ratio
			}
		}
		if leave < 0 {
			return conic.StatusUnbounded
		}
		t.pivot(leave, enter)
	}

	return conic.StatusUnknown
}

// evictArtificials pivots basic artificials onto real columns where the row
// allows it; rows that do not allow it are redundant and stay inert.
func (t *tableau) evictArtificials(tol float64) {
	for i := 0; i < t.m; i++ {
		if t.basis[i] < t.artStart {
			continue
		}
		for j := 0; j < t.artStart; j++ {
			if math.Abs(t.a[i][j]) > math.Sqrt(tol) {
				t.pivot(i, j)

				break
			}
		}
	}
}

// colCost computes c_B·B⁻¹·A_j, the basic cost of column j.
func (t *tableau) colCost(cost []float64, j int) float64 {
	sum := 0.0
	for i, b := range t.basis {
		if cost[b] != 0 {
			sum += cost[b] * t.a[i][j]
		}
	}

	return sum
}

// objective computes the current basic objective value.
func (t *tableau) objective(cost []float64) float64 {
	sum := 0.0
	for i, b := range t.basis {
		sum += cost[b] * t.rhs[i]
	}

	return sum
}

// pivot makes column j basic in row i.
func (t *tableau) pivot(i, j int) {
	inv := 1 / t.a[i][j]
	for c := 0; c < t.cols; c++ {
		t.a[i][c] *= inv
	}
	t.rhs[i] *= inv
	for r := 0; r < t.m; r++ {
		if r == i {
			continue
		}
		f := t.a[r][j]
		if f == 0 {
			continue
		}
		for c := 0; c < t.cols; c++ {
			t.a[r][c] -= f * t.a[i][c]
		}
		t.rhs[r] -= f * t.rhs[i]
	}
	t.basis[i] = j
}

func dot(a, x []float64) float64 {
	sum := 0.0
	for i, v := range a {
		sum += v * x[i]
	}

	return sum
}
