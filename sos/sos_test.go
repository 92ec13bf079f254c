// SPDX-License-Identifier: MIT

package sos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/markov"
	"github.com/katalvlaran/ergodic/partition"
	"github.com/katalvlaran/ergodic/poly"
	"github.com/katalvlaran/ergodic/sos"
)

const x = poly.Var("x")

// birthDeathChain builds the two-state chain 0 ↔ 1 with birth rate a·(1−x)
// and death rate b·x, and its two-point partition.
func birthDeathChain(t *testing.T, a, b float64) (*markov.Process, *partition.Partition) {
	t.Helper()

	proc, err := markov.NewJumpProcess([]poly.Var{x}, []markov.Jump{
		{Rate: poly.Const(a).Sub(poly.NewVar(x).Scale(a)), Displacement: map[poly.Var]float64{x: 1}},
		{Rate: poly.NewVar(x).Scale(b), Displacement: map[poly.Var]float64{x: -1}},
	})
	require.NoError(t, err)

	part := partition.New()
	v0, err := part.AddVertex(partition.Point{At: map[poly.Var]float64{x: 0}})
	require.NoError(t, err)
	v1, err := part.AddVertex(partition.Point{At: map[poly.Var]float64{x: 1}})
	require.NoError(t, err)
	require.NoError(t, part.AddEdge(v0, v1))

	return proc, part
}

// TestLinPolyAlgebra exercises construction, arithmetic and evaluation.
func TestLinPolyAlgebra(t *testing.T) {
	m := conic.NewModel()
	s := conic.VarExpr(m.NewVariable("s"))

	// s·x² + 3x − 1
	lp := sos.LinPoly{}.
		AddExprTimesPoly(s, poly.NewVar(x).Pow(2)).
		AddPoly(poly.NewVar(x).Scale(3).Add(poly.Const(-1)))

	require.Equal(t, 2, lp.Degree())
	require.Len(t, lp.Monomials(), 3)

	// Collapse at x = 2: 4s + 5.
	e := lp.EvalAt(map[poly.Var]float64{x: 2})
	require.InDelta(t, 5, e.Constant(), 1e-12)
	require.InDelta(t, 4, e.Coefficients()[conic.VarID(0)], 1e-12)

	// Exact cancellation drops the monomial.
	gone := lp.Sub(sos.LinPoly{}.AddExprTimesPoly(s, poly.NewVar(x).Pow(2)))
	require.Equal(t, 1, gone.Degree())
	require.True(t, gone.Coefficient(poly.Monomial{x: 2}).IsConstant())
}

// TestNewPolyVariable allocates one variable per basis monomial.
func TestNewPolyVariable(t *testing.T) {
	m := conic.NewModel()
	w := sos.NewPolyVariable(m, "w", []poly.Var{x, "y"}, 2)

	// C(2+2, 2) = 6 monomials in two variables up to degree 2.
	require.Equal(t, 6, m.NumVariables())
	require.Equal(t, 2, w.Degree())
	require.Panics(t, func() { sos.NewPolyVariable(m, "w", []poly.Var{x}, -1) })
}

// TestApplyGenerator pushes a decision polynomial through a jump generator.
func TestApplyGenerator(t *testing.T) {
	proc, _ := birthDeathChain(t, 2, 3)

	m := conic.NewModel()
	w := sos.NewPolyVariable(m, "w", []poly.Var{x}, 1)
	lw, err := sos.ApplyGenerator(proc, w)
	require.NoError(t, err)

	// L(c0 + c1·x) = c1·L(x) = c1·(2 − 5x): degree stays 1, constant term
	// carries only c1.
	require.Equal(t, 1, lw.Degree())
	coef := lw.Coefficient(poly.Monomial{x: 1}).Coefficients()
	require.InDelta(t, -5, coef[conic.VarID(1)], 1e-12)
}

// TestCertifyPoint emits a single pointwise inequality.
func TestCertifyPoint(t *testing.T) {
	m := conic.NewModel()
	q := sos.FromPoly(poly.NewVar(x).Add(poly.Const(1)))

	h, err := sos.Certify(m, "q", q, partition.Point{At: map[poly.Var]float64{x: 2}}, sos.SOSCone)
	require.NoError(t, err)
	require.Equal(t, 1, h.Subs())
	require.Len(t, m.Program().Inequalities, 1)
	require.Empty(t, m.Program().Equalities)
}

// TestCertifyRegionSOS builds the Putinar certificate for a degree-2 target
// on the half-line.
func TestCertifyRegionSOS(t *testing.T) {
	m := conic.NewModel()
	q := sos.FromPoly(poly.NewVar(x).Pow(2).Add(poly.Const(1)))
	halfLine := partition.Region{Inequalities: []poly.Polynomial{poly.NewVar(x)}}

	_, err := sos.Certify(m, "q", q, halfLine, sos.SOSCone)
	require.NoError(t, err)

	// One Gram per multiplier: σ0 over {1, x} and σ1 over {1}.
	require.Equal(t, 2, m.NumPSDBlocks())

	// Monomial matching rows for 1, x, x².
	p := m.Program()
	require.Len(t, p.Equalities, 3)
	require.True(t, p.RequiredCapabilities().Has(conic.CapPSD))
}

// TestCertifyRegionDD stays entirely linear.
func TestCertifyRegionDD(t *testing.T) {
	m := conic.NewModel()
	q := sos.FromPoly(poly.NewVar(x).Pow(2).Add(poly.Const(1)))
	halfLine := partition.Region{Inequalities: []poly.Polynomial{poly.NewVar(x)}}

	_, err := sos.Certify(m, "q", q, halfLine, sos.DDCone)
	require.NoError(t, err)
	require.Zero(t, m.NumPSDBlocks())
	require.Equal(t, conic.CapLinear, m.Program().RequiredCapabilities())
}

// TestCertifyRegionGroup emits one sub-certificate per member.
func TestCertifyRegionGroup(t *testing.T) {
	m := conic.NewModel()
	q := sos.FromPoly(poly.NewVar(x).Pow(2))
	group := partition.RegionGroup{
		{Inequalities: []poly.Polynomial{poly.NewVar(x)}},
		{Inequalities: []poly.Polynomial{poly.NewVar(x).Neg()}},
	}

	h, err := sos.Certify(m, "q", q, group, sos.SOSCone)
	require.NoError(t, err)
	require.Equal(t, 2, h.Subs())
}

// TestCertifyEmpty rejects the identically-zero target.
func TestCertifyEmpty(t *testing.T) {
	m := conic.NewModel()
	_, err := sos.Certify(m, "q", sos.LinPoly{}, partition.Region{}, sos.SOSCone)
	require.ErrorIs(t, err, sos.ErrEmptyCertificate)
}

// TestNewWeights allocates scalars on points and polynomials on regions.
func TestNewWeights(t *testing.T) {
	part := partition.New()
	vp, err := part.AddVertex(partition.Point{At: map[poly.Var]float64{x: 0}})
	require.NoError(t, err)
	vr, err := part.AddVertex(partition.Region{Inequalities: []poly.Polynomial{poly.NewVar(x)}})
	require.NoError(t, err)

	m := conic.NewModel()
	w, err := sos.NewWeights(m, part, []poly.Var{x}, 2)
	require.NoError(t, err)
	require.IsType(t, sos.ScalarWeight{}, w[vp])
	require.IsType(t, sos.PolyWeight{}, w[vr])

	// One scalar plus a degree-2 univariate polynomial (3 coefficients).
	require.Equal(t, 4, m.NumVariables())
}

// TestStationarityTwoStateChain wires the exact point constraints of the
// 0 ↔ 1 chain. Zero-rate channels at the boundary states must be skipped,
// not reported as jumps leaving the partition.
func TestStationarityTwoStateChain(t *testing.T) {
	proc, part := birthDeathChain(t, 2, 3)

	m := conic.NewModel()
	w, err := sos.NewWeights(m, part, proc.Vars(), 1)
	require.NoError(t, err)

	s := conic.VarExpr(m.NewVariable("s"))
	targets := map[int]sos.LinPoly{}
	for _, id := range part.Vertices() {
		targets[id] = sos.FromExpr(s).AddPoly(poly.NewVar(x).Neg())
	}

	handles, err := sos.AddStationarityConstraints(m, proc, part, w, targets, sos.SOSCone)
	require.NoError(t, err)
	require.Len(t, handles, 2)
	require.Len(t, m.Program().Inequalities, 2)
}

// TestStationarityPointErrors covers the pointwise failure modes.
func TestStationarityPointErrors(t *testing.T) {
	part := partition.New()
	_, err := part.AddVertex(partition.Point{At: map[poly.Var]float64{x: 0}})
	require.NoError(t, err)

	// Diffusions cannot be evaluated at a singleton.
	ou, err := markov.NewDiffusionProcess(
		[]poly.Var{x},
		[]poly.Polynomial{poly.NewVar(x).Neg()},
		[][]poly.Polynomial{{poly.Const(1)}},
	)
	require.NoError(t, err)

	m := conic.NewModel()
	w := sos.WeightMap{0: sos.ScalarWeight{Expr: conic.VarExpr(m.NewVariable("w0"))}}
	_, err = sos.AddStationarityConstraints(m, ou, part, w, nil, sos.SOSCone)
	require.ErrorIs(t, err, sos.ErrPointCellNeedsJump)

	// A live jump with no destination cell leaves the partition.
	leak, err := markov.NewJumpProcess([]poly.Var{x}, []markov.Jump{
		{Rate: poly.Const(1), Displacement: map[poly.Var]float64{x: 1}},
	})
	require.NoError(t, err)
	_, err = sos.AddStationarityConstraints(m, leak, part, w, nil, sos.SOSCone)
	require.ErrorIs(t, err, sos.ErrJumpLeavesPartition)

	// Missing weights are reported before any row is emitted.
	chain, partBD := birthDeathChain(t, 1, 1)
	_, err = sos.AddStationarityConstraints(conic.NewModel(), chain, partBD, sos.WeightMap{}, nil, sos.SOSCone)
	require.ErrorIs(t, err, sos.ErrMissingWeight)
}

// TestCouplingInterface matches the weight difference into the ideal of h.
func TestCouplingInterface(t *testing.T) {
	proc, err := markov.NewDiffusionProcess([]poly.Var{x}, []poly.Polynomial{poly.Const(-1)}, nil)
	require.NoError(t, err)

	part := partition.New()
	left, err := part.AddVertex(partition.Region{Inequalities: []poly.Polynomial{poly.NewVar(x).Neg()}})
	require.NoError(t, err)
	right, err := part.AddVertex(partition.Region{Inequalities: []poly.Polynomial{poly.NewVar(x)}})
	require.NoError(t, err)
	require.NoError(t, part.AddEdge(left, right, partition.WithInterface(poly.NewVar(x))))

	m := conic.NewModel()
	w, err := sos.NewWeights(m, part, proc.Vars(), 1)
	require.NoError(t, err)

	require.NoError(t, sos.AddCouplingConstraints(m, proc, part, w))

	// diff is degree 1, h = x, so μ is a constant: matching rows for 1 and x.
	require.Equal(t, 2, m.NumRows())
}

// TestCouplingNoInterface leaves point-point edges alone.
func TestCouplingNoInterface(t *testing.T) {
	proc, part := birthDeathChain(t, 1, 1)

	m := conic.NewModel()
	w, err := sos.NewWeights(m, part, proc.Vars(), 1)
	require.NoError(t, err)

	require.NoError(t, sos.AddCouplingConstraints(m, proc, part, w))
	require.Zero(t, m.NumRows())
}
