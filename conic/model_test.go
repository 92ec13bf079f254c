// SPDX-License-Identifier: MIT

package conic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergodic/conic"
)

// scripted is a test backend returning a canned solution.
type scripted struct {
	caps conic.Capability
	sol  conic.Solution
	got  *conic.Program
}

func (s *scripted) Name() string                  { return "scripted" }
func (s *scripted) Capabilities() conic.Capability { return s.caps }
func (s *scripted) Solve(p *conic.Program) (*conic.Solution, error) {
	s.got = p

	sol := s.sol

	return &sol, nil
}

// TestLinExprAlgebra exercises the affine expression operations.
func TestLinExprAlgebra(t *testing.T) {
	m := conic.NewModel()
	a := m.NewVariable("a")
	b := m.NewVariable("b")

	e := conic.VarExpr(a).Scale(2).Add(conic.VarExpr(b).Neg()).AddConst(3) // 2a − b + 3
	require.InDelta(t, 3, e.Constant(), 1e-15)
	coef := e.Coefficients()
	require.InDelta(t, 2, coef[a], 1e-15)
	require.InDelta(t, -1, coef[b], 1e-15)

	// 2a − b + 3 − (2a) = −b + 3: cancelled coefficients are dropped.
	cancelled := e.AddScaled(conic.VarExpr(a), -2)
	require.NotContains(t, cancelled.Coefficients(), a)
}

// TestProgramLowering verifies row splitting keeps insertion order.
func TestProgramLowering(t *testing.T) {
	m := conic.NewModel()
	x := m.NewVariable("x")
	m.AddInequality(conic.VarExpr(x))                // x ≥ 0
	m.AddEquality(conic.VarExpr(x).AddConst(-1))     // x − 1 == 0
	m.AddInequality(conic.VarExpr(x).AddConst(5))    // x + 5 ≥ 0
	m.Maximize(conic.VarExpr(x))

	p := m.Program()
	require.Equal(t, 1, p.NumVars)
	require.Len(t, p.Equalities, 1)
	require.Len(t, p.Inequalities, 2)
	require.Equal(t, conic.CapLinear, p.RequiredCapabilities())
}

// TestCapabilityRefusal rejects PSD programs on a linear-only backend
// before the backend is even invoked.
func TestCapabilityRefusal(t *testing.T) {
	m := conic.NewModel()
	m.NewPSDMatrix("S", 2)
	m.Maximize(conic.ConstExpr(0))

	s := &scripted{caps: conic.CapLinear}
	err := m.Solve(s)
	require.ErrorIs(t, err, conic.ErrCapability)
	require.Nil(t, s.got, "backend must not see an unsupported program")
}

// TestNoObjective rejects Solve before Maximize.
func TestNoObjective(t *testing.T) {
	m := conic.NewModel()
	m.NewVariable("x")
	require.ErrorIs(t, m.Solve(&scripted{caps: conic.CapLinear}), conic.ErrNoObjective)
}

// TestStatusPropagation surfaces non-optimal termination as ErrNotOptimal
// and keeps readback locked.
func TestStatusPropagation(t *testing.T) {
	m := conic.NewModel()
	x := m.NewVariable("x")
	m.Maximize(conic.VarExpr(x))

	err := m.Solve(&scripted{caps: conic.CapLinear, sol: conic.Solution{Status: conic.StatusUnbounded}})
	require.ErrorIs(t, err, conic.ErrNotOptimal)

	_, err = m.ObjectiveValue()
	require.ErrorIs(t, err, conic.ErrNotSolved)
}

// TestReadback evaluates values and duals from a scripted optimal solution.
func TestReadback(t *testing.T) {
	m := conic.NewModel()
	x := m.NewVariable("x")
	y := m.NewVariable("y")
	ineq := m.AddInequality(conic.VarExpr(x))                                // x ≥ 0
	eq := m.AddEquality(conic.VarExpr(x).Add(conic.VarExpr(y)).AddConst(-2)) // x + y == 2
	m.Maximize(conic.VarExpr(y))

	s := &scripted{
		caps: conic.CapLinear,
		sol: conic.Solution{
			Status:    conic.StatusOptimal,
			Objective: 2,
			X:         []float64{0, 2},
			EqDuals:   []float64{1},
			IneqDuals: []float64{0.5},
		},
	}
	require.NoError(t, m.Solve(s))

	obj, err := m.ObjectiveValue()
	require.NoError(t, err)
	require.InDelta(t, 2, obj, 1e-15)

	v, err := m.Value(conic.VarExpr(x).Add(conic.VarExpr(y)))
	require.NoError(t, err)
	require.InDelta(t, 2, v, 1e-15)

	d, err := m.Dual(eq)
	require.NoError(t, err)
	require.InDelta(t, 1, d, 1e-15)

	d, err = m.Dual(ineq)
	require.NoError(t, err)
	require.InDelta(t, 0.5, d, 1e-15)
}

// TestPSDMatrixShape checks symmetry of the declared entries.
func TestPSDMatrixShape(t *testing.T) {
	m := conic.NewModel()
	mat := m.NewPSDMatrix("S", 3)
	require.Equal(t, 6, m.NumVariables()) // upper triangle of a 3×3
	require.Equal(t, 1, m.NumPSDBlocks())
	require.Equal(t, mat[0][1], mat[1][0])
}
