// SPDX-License-Identifier: MIT

package poly_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergodic/poly"
)

const eps = 1e-12

// TestCanonicalOrdering verifies that Terms enumerates graded-lex regardless
// of construction order.
func TestCanonicalOrdering(t *testing.T) {
	x, y := poly.NewVar("x"), poly.NewVar("y")
	// y² + x + 3 + x·y, assembled out of order.
	p := y.Mul(y).Add(x).Add(poly.Const(3)).Add(x.Mul(y))

	terms := p.Terms()
	require.Len(t, terms, 4)
	require.Equal(t, "1", terms[0].Mono.String())
	require.Equal(t, "x", terms[1].Mono.String())
	require.Equal(t, "x*y", terms[2].Mono.String())
	require.Equal(t, "y^2", terms[3].Mono.String())
}

// TestAddCancellation checks that opposite terms vanish structurally.
func TestAddCancellation(t *testing.T) {
	x := poly.NewVar("x")
	p := x.Mul(x).Sub(x.Mul(x))
	require.True(t, p.IsZero())
	require.Equal(t, -1, p.Degree())
}

// TestMulDegree verifies degree additivity and coefficient collection.
func TestMulDegree(t *testing.T) {
	x := poly.NewVar("x")
	// (x+1)·(x−1) = x² − 1
	p := x.Add(poly.Const(1)).Mul(x.Sub(poly.Const(1)))
	require.Equal(t, 2, p.Degree())
	require.InDelta(t, 1, p.Coefficient(poly.Monomial{"x": 2}), eps)
	require.InDelta(t, 0, p.Coefficient(poly.Monomial{"x": 1}), eps)
	require.InDelta(t, -1, p.Constant(), eps)
}

// TestEval evaluates a mixed polynomial at a point.
func TestEval(t *testing.T) {
	x, y := poly.NewVar("x"), poly.NewVar("y")
	p := x.Mul(x).Add(y.Scale(2)).Add(poly.Const(1)) // x² + 2y + 1
	got := p.Eval(map[poly.Var]float64{"x": 3, "y": -1})
	require.InDelta(t, 8, got, eps)
}

// TestDifferentiate checks the power rule and vanishing of absent variables.
func TestDifferentiate(t *testing.T) {
	x := poly.NewVar("x")
	p := x.Pow(3).Scale(2) // 2x³
	d := p.Differentiate("x")
	require.True(t, d.Equal(x.Pow(2).Scale(6), eps))
	require.True(t, p.Differentiate("y").IsZero())
}

// TestShiftBinomial verifies p(x+δ) against a hand expansion:
// (x+1)² = x² + 2x + 1.
func TestShiftBinomial(t *testing.T) {
	x := poly.NewVar("x")
	p := x.Pow(2)
	s := p.Shift(map[poly.Var]float64{"x": 1})
	want := x.Pow(2).Add(x.Scale(2)).Add(poly.Const(1))
	require.True(t, s.Equal(want, eps))
}

// TestShiftUntouchedVariables leaves variables without deltas intact.
func TestShiftUntouchedVariables(t *testing.T) {
	x, y := poly.NewVar("x"), poly.NewVar("y")
	p := x.Mul(y) // x·y shifted in x by 2 ⇒ x·y + 2y
	s := p.Shift(map[poly.Var]float64{"x": 2})
	want := x.Mul(y).Add(y.Scale(2))
	require.True(t, s.Equal(want, eps))
}

// TestBasisCount checks C(n+d, d) and the leading constant monomial.
func TestBasisCount(t *testing.T) {
	b := poly.Basis([]poly.Var{"x", "y"}, 2)
	require.Len(t, b, 6) // 1, x, y, x², xy, y²
	require.Equal(t, "1", b[0].String())
	require.Equal(t, 2, b[len(b)-1].Degree())
}

// TestBasisDeterminism ensures input variable order does not matter.
func TestBasisDeterminism(t *testing.T) {
	a := poly.Basis([]poly.Var{"y", "x"}, 3)
	b := poly.Basis([]poly.Var{"x", "y", "x"}, 3)
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, a[i].String(), b[i].String())
	}
}

// TestNonFinitePanics verifies the strict ingestion policy.
func TestNonFinitePanics(t *testing.T) {
	require.Panics(t, func() { poly.Const(math.Inf(1)) })
	require.Panics(t, func() { poly.NewVar("x").Scale(math.NaN()) })
}
