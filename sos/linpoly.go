// SPDX-License-Identifier: MIT

// linpoly.go — polynomials with affine-expression coefficients: the bridge
// between decision variables and polynomial constraints.

package sos

import (
	"sort"

	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/markov"
	"github.com/katalvlaran/ergodic/poly"
)

// linTerm is one monomial with an affine coefficient.
type linTerm struct {
	mono poly.Monomial
	expr conic.LinExpr
}

// LinPoly is a polynomial Σ e_m(x_dec)·x^m whose coefficients e_m are affine
// expressions over optimization variables. The zero value is the zero
// polynomial. LinPoly values are immutable; operations return fresh values.
type LinPoly struct {
	terms map[string]linTerm
}

// exprIsZero reports a structurally zero affine expression.
func exprIsZero(e conic.LinExpr) bool {
	return e.IsConstant() && e.Constant() == 0
}

// withTerm returns a copy of lp with expr added onto monomial m.
func (lp LinPoly) withTerm(m poly.Monomial, expr conic.LinExpr) LinPoly {
	out := LinPoly{terms: make(map[string]linTerm, len(lp.terms)+1)}
	for k, t := range lp.terms {
		out.terms[k] = t
	}
	k := m.String()
	if t, ok := out.terms[k]; ok {
		expr = t.expr.Add(expr)
	}
	if exprIsZero(expr) {
		delete(out.terms, k)

		return out
	}
	out.terms[k] = linTerm{mono: m.Clone(), expr: expr}

	return out
}

// FromPoly lifts a numeric polynomial into a LinPoly with constant
// coefficients.
func FromPoly(p poly.Polynomial) LinPoly {
	out := LinPoly{terms: make(map[string]linTerm)}
	for _, t := range p.Terms() {
		out.terms[t.Mono.String()] = linTerm{mono: t.Mono, expr: conic.ConstExpr(t.Coef)}
	}

	return out
}

// FromExpr lifts an affine expression into the constant monomial.
func FromExpr(e conic.LinExpr) LinPoly {
	return LinPoly{}.withTerm(poly.Monomial{}, e)
}

// Add returns lp + o.
func (lp LinPoly) Add(o LinPoly) LinPoly {
	out := lp
	for _, t := range o.terms {
		out = out.withTerm(t.mono, t.expr)
	}

	return out
}

// AddPoly returns lp + p for a numeric polynomial p.
func (lp LinPoly) AddPoly(p poly.Polynomial) LinPoly { return lp.Add(FromPoly(p)) }

// Sub returns lp − o.
func (lp LinPoly) Sub(o LinPoly) LinPoly { return lp.Add(o.Neg()) }

// AddExprTimesPoly returns lp + e·p: the affine expression e multiplied by
// every term of the numeric polynomial p.
func (lp LinPoly) AddExprTimesPoly(e conic.LinExpr, p poly.Polynomial) LinPoly {
	out := lp
	for _, t := range p.Terms() {
		out = out.withTerm(t.Mono, e.Scale(t.Coef))
	}

	return out
}

// MulPoly returns lp·p for a numeric polynomial p.
func (lp LinPoly) MulPoly(p poly.Polynomial) LinPoly {
	out := LinPoly{terms: make(map[string]linTerm)}
	for _, lt := range lp.terms {
		for _, pt := range p.Terms() {
			m := lt.mono.Clone()
			for v, e := range pt.Mono {
				m[v] += e
			}
			out = out.withTerm(m, lt.expr.Scale(pt.Coef))
		}
	}

	return out
}

// Scale returns c·lp.
func (lp LinPoly) Scale(c float64) LinPoly {
	out := LinPoly{terms: make(map[string]linTerm, len(lp.terms))}
	if c == 0 {
		return out
	}
	for k, t := range lp.terms {
		out.terms[k] = linTerm{mono: t.mono.Clone(), expr: t.expr.Scale(c)}
	}

	return out
}

// Neg returns −lp.
func (lp LinPoly) Neg() LinPoly { return lp.Scale(-1) }

// Coefficient returns the affine coefficient of monomial m (0 when absent).
func (lp LinPoly) Coefficient(m poly.Monomial) conic.LinExpr {
	t, ok := lp.terms[m.String()]
	if !ok {
		return conic.LinExpr{}
	}

	return t.expr
}

// Monomials enumerates the support in graded-lexicographic order.
func (lp LinPoly) Monomials() []poly.Monomial {
	out := make([]poly.Monomial, 0, len(lp.terms))
	for _, t := range lp.terms {
		out = append(out, t.mono.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return poly.GradedLess(out[i], out[j]) })

	return out
}

// Degree returns the total degree of the support, or −1 when empty.
func (lp LinPoly) Degree() int {
	d := -1
	for _, t := range lp.terms {
		if td := t.mono.Degree(); td > d {
			d = td
		}
	}

	return d
}

// IsZero reports an empty support.
func (lp LinPoly) IsZero() bool { return len(lp.terms) == 0 }

// EvalAt collapses the polynomial at a numeric state: Σ e_m·x^m becomes one
// affine expression.
func (lp LinPoly) EvalAt(at map[poly.Var]float64) conic.LinExpr {
	out := conic.LinExpr{}
	for _, t := range lp.terms {
		out = out.Add(t.expr.Scale(poly.FromMonomial(t.mono, 1).Eval(at)))
	}

	return out
}

// Resolve substitutes the optimal variable values, producing the numeric
// polynomial the decision polynomial converged to.
func (lp LinPoly) Resolve(m *conic.Model) (poly.Polynomial, error) {
	out := poly.Zero()
	for _, t := range lp.terms {
		c, err := m.Value(t.expr)
		if err != nil {
			return poly.Polynomial{}, err
		}
		out = out.Add(poly.FromMonomial(t.mono, c))
	}

	return out, nil
}

// NewPolyVariable declares a decision polynomial of degree ≤ degree in vars:
// one fresh scalar variable per graded-lexicographic basis monomial.
// Panics with a stable message for negative degree (programmer error).
func NewPolyVariable(m *conic.Model, name string, vars []poly.Var, degree int) LinPoly {
	if degree < 0 {
		panic(panicNegativeOrder)
	}
	out := LinPoly{terms: make(map[string]linTerm)}
	for _, mono := range poly.Basis(vars, degree) {
		id := m.NewVariable(name + "{" + mono.String() + "}")
		out.terms[mono.String()] = linTerm{mono: mono, expr: conic.VarExpr(id)}
	}

	return out
}

// ApplyGenerator pushes a LinPoly through the process generator. Generators
// are linear, so L(Σ e_m·x^m) = Σ e_m·L(x^m) with numeric L(x^m).
func ApplyGenerator(proc *markov.Process, w LinPoly) (LinPoly, error) {
	out := LinPoly{}
	for _, t := range w.terms {
		lm, err := proc.ApplyToMonomial(t.mono)
		if err != nil {
			return LinPoly{}, err
		}
		out = out.AddExprTimesPoly(t.expr, lm)
	}

	return out, nil
}
