// SPDX-License-Identifier: MIT

// certify.go — the certificate compiler: "q ≥ 0 on a cell" becomes conic rows.

package sos

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/partition"
	"github.com/katalvlaran/ergodic/poly"
)

// subCertificate is the row bookkeeping of one cell member.
type subCertificate struct {
	rows        map[string]conic.ConstraintID
	constantRow conic.ConstraintID
}

// Handle records the constraint rows a certificate emitted. RegionGroup
// certificates carry one sub-certificate per member; Point and Region carry
// exactly one.
type Handle struct {
	subs []subCertificate
}

// Subs returns the number of sub-certificates.
func (h *Handle) Subs() int { return len(h.subs) }

// Mass reads the dual multiplier of the constant-monomial row, summed over
// sub-certificates. For stationarity certificates this dual is the stationary
// probability mass the optimal measure places on the cell.
func (h *Handle) Mass(m *conic.Model) (float64, error) {
	total := 0.0
	for _, sub := range h.subs {
		d, err := m.Dual(sub.constantRow)
		if err != nil {
			return 0, err
		}
		total += d
	}

	return total, nil
}

// Certify emits conic rows forcing q ≥ 0 on the cell:
//
//	Point        one scalar inequality q(x*) ≥ 0
//	Region       Putinar matching q = σ0 + Σ σ_i·g_i + Σ λ_j·h_j
//	RegionGroup  one Region certificate per member (shared q)
//
// name prefixes the multiplier variables for readable programs. Returns
// ErrEmptyCertificate when q is identically zero.
// Complexity: O(b²·t) for basis size b and t cell constraints.
func Certify(m *conic.Model, name string, q LinPoly, cell partition.Cell, cone Cone) (*Handle, error) {
	if q.IsZero() {
		return nil, fmt.Errorf("Certify(%s): %w", name, ErrEmptyCertificate)
	}

	switch c := cell.(type) {
	case partition.Point:
		id := m.AddInequality(q.EvalAt(c.At))

		return &Handle{subs: []subCertificate{{constantRow: id}}}, nil
	case partition.Region:
		sub := certifyRegion(m, name, q, c, cone)

		return &Handle{subs: []subCertificate{sub}}, nil
	case partition.RegionGroup:
		h := &Handle{}
		for i, r := range c {
			h.subs = append(h.subs, certifyRegion(m, name+"#"+strconv.Itoa(i), q, r, cone))
		}

		return h, nil
	default:
		return nil, fmt.Errorf("Certify(%s): %T: %w", name, cell, partition.ErrInvalidCell)
	}
}

// certifyRegion emits the Putinar matching rows for one basic region.
func certifyRegion(m *conic.Model, name string, q LinPoly, reg partition.Region, cone Cone) subCertificate {
	vars := certVars(q, reg)

	// Certificate degree: the even ceiling of deg q.
	d2 := q.Degree()
	if d2 < 0 {
		d2 = 0
	}
	if d2%2 == 1 {
		d2++
	}

	residual := q

	// σ0 over the full half-degree basis.
	b0 := poly.Basis(vars, d2/2)
	residual = residual.Sub(gramExpansion(newGram(m, name+".s0", b0, cone), b0))

	// One SOS multiplier per inequality, degree-matched; skipped when the
	// inequality already exhausts the certificate degree.
	for i, g := range reg.Inequalities {
		sd := d2 - g.Degree()
		if sd < 0 {
			continue
		}
		bi := poly.Basis(vars, sd/2)
		gm := newGram(m, name+".s"+strconv.Itoa(i+1), bi, cone)
		residual = residual.Sub(gramExpansion(gm, bi).MulPoly(g))
	}

	// One free multiplier per equality.
	for j, h := range reg.Equalities {
		ld := d2 - h.Degree()
		if ld < 0 {
			continue
		}
		lam := NewPolyVariable(m, name+".l"+strconv.Itoa(j), vars, ld)
		residual = residual.Sub(lam.MulPoly(h))
	}

	// Monomial-by-monomial matching. The constant row always exists (the σ0
	// basis contains the constant monomial) and carries the mass dual.
	sub := subCertificate{rows: make(map[string]conic.ConstraintID)}
	sawConstant := false
	for _, mono := range residual.Monomials() {
		id := m.AddEquality(residual.Coefficient(mono))
		sub.rows[mono.String()] = id
		if mono.Degree() == 0 {
			sub.constantRow = id
			sawConstant = true
		}
	}
	if !sawConstant {
		id := m.AddEquality(conic.LinExpr{})
		sub.rows[poly.Monomial{}.String()] = id
		sub.constantRow = id
	}

	return sub
}

// newGram allocates a symmetric Gram matrix over the basis, constrained to
// the chosen cone.
func newGram(m *conic.Model, name string, basis []poly.Monomial, cone Cone) [][]conic.LinExpr {
	n := len(basis)
	if cone == SOSCone {
		return m.NewPSDMatrix(name, n)
	}

	// Diagonally dominant: plain symmetric variables plus |G_ij| bounds
	// t_ij ≥ ±G_ij and row dominance G_ii ≥ Σ_{j≠i} t_ij.
	g := make([][]conic.LinExpr, n)
	for i := range g {
		g[i] = make([]conic.LinExpr, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			id := m.NewVariable(name + "[" + strconv.Itoa(i) + "," + strconv.Itoa(j) + "]")
			g[i][j] = conic.VarExpr(id)
			g[j][i] = g[i][j]
		}
	}
	abs := make([][]conic.LinExpr, n)
	for i := range abs {
		abs[i] = make([]conic.LinExpr, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			t := conic.VarExpr(m.NewVariable(name + ".t[" + strconv.Itoa(i) + "," + strconv.Itoa(j) + "]"))
			m.AddInequality(t.Sub(g[i][j]))
			m.AddInequality(t.Add(g[i][j]))
			abs[i][j] = t
			abs[j][i] = t
		}
	}
	for i := 0; i < n; i++ {
		rowSum := g[i][i]
		for j := 0; j < n; j++ {
			if j != i {
				rowSum = rowSum.Sub(abs[i][j])
			}
		}
		m.AddInequality(rowSum)
	}

	return g
}

// gramExpansion turns a Gram matrix over a basis into the polynomial
// Σ_{i,j} G_ij·b_i·b_j.
func gramExpansion(g [][]conic.LinExpr, basis []poly.Monomial) LinPoly {
	out := LinPoly{}
	for i := range basis {
		for j := range basis {
			out = out.withTerm(monoMul(basis[i], basis[j]), g[i][j])
		}
	}

	return out
}

// monoMul multiplies two monomials (exponent addition).
func monoMul(a, b poly.Monomial) poly.Monomial {
	out := a.Clone()
	for v, e := range b {
		out[v] += e
	}

	return out
}

// certVars collects the sorted variable union of the target and the region.
func certVars(q LinPoly, reg partition.Region) []poly.Var {
	set := map[poly.Var]struct{}{}
	for _, mono := range q.Monomials() {
		for v := range mono {
			set[v] = struct{}{}
		}
	}
	for _, g := range reg.Inequalities {
		for _, v := range g.Vars() {
			set[v] = struct{}{}
		}
	}
	for _, h := range reg.Equalities {
		for _, v := range h.Vars() {
			set[v] = struct{}{}
		}
	}
	vars := make([]poly.Var, 0, len(set))
	for v := range set {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })

	return vars
}
