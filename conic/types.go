// SPDX-License-Identifier: MIT

// types.go — identifiers, affine expressions, solver capabilities, statuses
// and the lowered Program/Solution pair exchanged with solver backends.

package conic

// VarID identifies one scalar decision variable within a Model.
// Ids are dense and assigned in creation order.
type VarID int

// ConstraintID identifies one scalar row (equality or inequality) within a
// Model, usable for dual lookup after a successful solve.
type ConstraintID int

// LinExpr is an affine expression Σ coef_i·x_i + constant over model
// variables. The zero value is the constant 0. LinExpr values are immutable;
// all operations return fresh expressions.
type LinExpr struct {
	coef     map[VarID]float64
	constant float64
}

// ConstExpr returns the constant expression c.
func ConstExpr(c float64) LinExpr { return LinExpr{constant: c} }

// VarExpr returns the expression 1·id.
func VarExpr(id VarID) LinExpr {
	return LinExpr{coef: map[VarID]float64{id: 1}}
}

// Add returns e + o.
func (e LinExpr) Add(o LinExpr) LinExpr { return e.AddScaled(o, 1) }

// Sub returns e − o.
func (e LinExpr) Sub(o LinExpr) LinExpr { return e.AddScaled(o, -1) }

// AddScaled returns e + c·o.
func (e LinExpr) AddScaled(o LinExpr, c float64) LinExpr {
	out := LinExpr{coef: make(map[VarID]float64, len(e.coef)+len(o.coef)), constant: e.constant + c*o.constant}
	for id, v := range e.coef {
		out.coef[id] = v
	}
	for id, v := range o.coef {
		out.coef[id] += c * v
		if out.coef[id] == 0 {
			delete(out.coef, id)
		}
	}

	return out
}

// Scale returns c·e.
func (e LinExpr) Scale(c float64) LinExpr {
	out := LinExpr{coef: make(map[VarID]float64, len(e.coef)), constant: c * e.constant}
	if c == 0 {
		return LinExpr{}
	}
	for id, v := range e.coef {
		out.coef[id] = c * v
	}

	return out
}

// Neg returns −e.
func (e LinExpr) Neg() LinExpr { return e.Scale(-1) }

// AddConst returns e + c.
func (e LinExpr) AddConst(c float64) LinExpr {
	out := e.Scale(1)
	out.constant += c

	return out
}

// Constant returns the constant part.
func (e LinExpr) Constant() float64 { return e.constant }

// Coefficients returns a copy of the variable coefficients.
func (e LinExpr) Coefficients() map[VarID]float64 {
	out := make(map[VarID]float64, len(e.coef))
	for id, v := range e.coef {
		out[id] = v
	}

	return out
}

// IsConstant reports whether the expression involves no variables.
func (e LinExpr) IsConstant() bool { return len(e.coef) == 0 }

// eval computes the expression under a variable assignment.
func (e LinExpr) eval(x []float64) float64 {
	sum := e.constant
	for id, v := range e.coef {
		sum += v * x[id]
	}

	return sum
}

// Capability is a bitmask of cone families a Solver supports.
type Capability uint8

const (
	// CapLinear covers equality and inequality rows.
	CapLinear Capability = 1 << iota
	// CapPSD covers positive-semidefinite matrix constraints.
	CapPSD
	// CapExpCone covers dual-exponential cone constraints.
	CapExpCone
)

// Has reports whether all bits of want are present.
func (c Capability) Has(want Capability) bool { return c&want == want }

// Status is the solver's termination status.
type Status int

const (
	// StatusUnknown means the solver gave no usable classification.
	StatusUnknown Status = iota
	// StatusOptimal means the reported solution is optimal within tolerance.
	StatusOptimal
	// StatusInfeasible means the program admits no feasible point.
	StatusInfeasible
	// StatusUnbounded means the objective is unbounded above.
	StatusUnbounded
)

// String renders the status for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Program is the fully lowered conic program handed to a Solver.
// Semantics: maximize Objective subject to
// Equalities[i] == 0, Inequalities[i] ≥ 0, every PSDBlock ⪰ 0 entrywise as a
// symmetric matrix of affine expressions, and every ExpCone triple (u,v,w)
// in the dual exponential cone {(u,v,w) : u < 0, −u·e^(v/u) ≤ e·w}.
type Program struct {
	NumVars      int
	Equalities   []LinExpr
	Inequalities []LinExpr
	PSDBlocks    [][][]LinExpr
	ExpCones     [][3]LinExpr
	Objective    LinExpr
}

// RequiredCapabilities returns the cone families the program uses.
func (p *Program) RequiredCapabilities() Capability {
	caps := CapLinear
	if len(p.PSDBlocks) > 0 {
		caps |= CapPSD
	}
	if len(p.ExpCones) > 0 {
		caps |= CapExpCone
	}

	return caps
}

// Solution is the solver's answer. Duals are aligned with the program's
// Equalities and Inequalities slices; either may be nil when the backend does
// not produce duals (templates that need duals must use a backend that does).
type Solution struct {
	Status    Status
	Objective float64
	X         []float64
	EqDuals   []float64
	IneqDuals []float64
}

// Solver is the external numerical backend. Implementations are expected to
// be blocking and synchronous; cancellation and timeouts are the backend's
// own concern.
type Solver interface {
	// Name identifies the backend in diagnostics.
	Name() string

	// Capabilities declares the cone families the backend accepts.
	Capabilities() Capability

	// Solve optimizes the program. A non-nil error means the backend itself
	// failed; an unfavorable Status is not an error at this level.
	Solve(p *Program) (*Solution, error)
}
