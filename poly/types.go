// SPDX-License-Identifier: MIT

// types.go — Var, Monomial, Term and the Polynomial container.
//
// Representation: a Polynomial is a map from canonical monomial keys to
// (monomial, coefficient) pairs. Exact-zero coefficients are pruned on every
// operation so that IsZero and Degree are structural, not numeric, questions.

package poly

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Var names a state variable. Determinism relies on the lexicographic
// ordering of these names across all packages.
type Var string

// Monomial maps variables to strictly positive integer exponents.
// The empty Monomial is the constant monomial 1.
type Monomial map[Var]int

// Degree returns the total degree of the monomial.
// Complexity: O(v) for v variables present.
func (m Monomial) Degree() int {
	d := 0
	for _, e := range m {
		d += e
	}

	return d
}

// Clone returns an independent copy of the monomial.
func (m Monomial) Clone() Monomial {
	c := make(Monomial, len(m))
	for v, e := range m {
		c[v] = e
	}

	return c
}

// String renders the canonical key, e.g. "1", "x", "x^2*y".
// Variables appear in ascending name order.
func (m Monomial) String() string {
	if len(m) == 0 {
		return "1"
	}
	vars := make([]string, 0, len(m))
	for v := range m {
		vars = append(vars, string(v))
	}
	sort.Strings(vars)

	parts := make([]string, 0, len(vars))
	for _, v := range vars {
		e := m[Var(v)]
		if e == 1 {
			parts = append(parts, v)
		} else {
			parts = append(parts, v+"^"+strconv.Itoa(e))
		}
	}

	return strings.Join(parts, "*")
}

// mulMono multiplies two monomials (exponent addition).
func mulMono(a, b Monomial) Monomial {
	c := a.Clone()
	for v, e := range b {
		c[v] += e
	}

	return c
}

// GradedLess orders monomials by total degree, ties broken by key order.
// This is the single ordering used everywhere in the module.
func GradedLess(a, b Monomial) bool {
	da, db := a.Degree(), b.Degree()
	if da != db {
		return da < db
	}

	return a.String() < b.String()
}

// Term is one (monomial, coefficient) pair of a Polynomial in canonical order.
type Term struct {
	Mono Monomial
	Coef float64
}

// term is the internal storage variant (monomial not defensively copied).
type term struct {
	mono Monomial
	coef float64
}

// Polynomial is an immutable multivariate polynomial value.
// The zero value is the zero polynomial and is ready to use.
type Polynomial struct {
	terms map[string]term
}

// Zero returns the zero polynomial.
func Zero() Polynomial { return Polynomial{} }

// Const returns the constant polynomial c.
// Panics with a stable message when c is NaN or ±Inf (programmer error).
func Const(c float64) Polynomial {
	if isNonFinite(c) {
		panic(panicNonFinite)
	}
	if c == 0 {
		return Polynomial{}
	}

	return Polynomial{terms: map[string]term{"1": {mono: Monomial{}, coef: c}}}
}

// NewVar returns the degree-one polynomial consisting of the single variable v.
func NewVar(v Var) Polynomial {
	m := Monomial{v: 1}

	return Polynomial{terms: map[string]term{m.String(): {mono: m, coef: 1}}}
}

// FromMonomial returns c·m.
// Panics on non-finite c or negative exponents in m (programmer error).
func FromMonomial(m Monomial, c float64) Polynomial {
	if isNonFinite(c) {
		panic(panicNonFinite)
	}
	for _, e := range m {
		if e < 0 {
			panic(panicNegativeExp)
		}
	}
	if c == 0 {
		return Polynomial{}
	}
	mm := Monomial{}
	for v, e := range m {
		if e > 0 {
			mm[v] = e
		}
	}

	return Polynomial{terms: map[string]term{mm.String(): {mono: mm, coef: c}}}
}

// IsZero reports whether the polynomial has no terms.
func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Degree returns the total degree, or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	if len(p.terms) == 0 {
		return -1
	}
	d := 0
	for _, t := range p.terms {
		if td := t.mono.Degree(); td > d {
			d = td
		}
	}

	return d
}

// Coefficient returns the coefficient of monomial m (0 when absent).
func (p Polynomial) Coefficient(m Monomial) float64 {
	t, ok := p.terms[m.String()]
	if !ok {
		return 0
	}

	return t.coef
}

// Constant returns the coefficient of the constant monomial.
func (p Polynomial) Constant() float64 { return p.Coefficient(Monomial{}) }

// Terms enumerates the terms in graded-lexicographic order.
// Returned monomials are independent copies.
// Complexity: O(t log t) for t terms.
func (p Polynomial) Terms() []Term {
	out := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, Term{Mono: t.mono.Clone(), Coef: t.coef})
	}
	sort.Slice(out, func(i, j int) bool { return GradedLess(out[i].Mono, out[j].Mono) })

	return out
}

// Vars returns the variables appearing with non-zero coefficient, ascending.
func (p Polynomial) Vars() []Var {
	seen := map[Var]struct{}{}
	for _, t := range p.terms {
		for v := range t.mono {
			seen[v] = struct{}{}
		}
	}
	out := make([]Var, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Eval evaluates the polynomial at the given assignment.
// Missing variables evaluate as 0.
func (p Polynomial) Eval(at map[Var]float64) float64 {
	sum := 0.0
	for _, t := range p.terms {
		prod := t.coef
		for v, e := range t.mono {
			prod *= pow(at[v], e)
		}
		sum += prod
	}

	return sum
}

// Equal reports coefficient-wise equality within tolerance eps.
func (p Polynomial) Equal(q Polynomial, eps float64) bool {
	for k, t := range p.terms {
		qt, ok := q.terms[k]
		if !ok {
			qt.coef = 0
		}
		if math.Abs(t.coef-qt.coef) > eps {
			return false
		}
	}
	for k, t := range q.terms {
		if _, ok := p.terms[k]; !ok && math.Abs(t.coef) > eps {
			return false
		}
	}

	return true
}

// Validate reports ErrNonFiniteCoefficient when any coefficient is NaN/±Inf.
// Intended for data-driven ingestion paths (e.g. parsed rate polynomials).
func (p Polynomial) Validate() error {
	for _, t := range p.terms {
		if isNonFinite(t.coef) {
			return ErrNonFiniteCoefficient
		}
	}

	return nil
}

// String renders the polynomial in graded-lexicographic term order.
func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	terms := p.Terms()
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		c := strconv.FormatFloat(t.Coef, 'g', -1, 64)
		if len(t.Mono) == 0 {
			parts = append(parts, c)
			continue
		}
		if t.Coef == 1 {
			parts = append(parts, t.Mono.String())
			continue
		}
		if t.Coef == -1 {
			parts = append(parts, "-"+t.Mono.String())
			continue
		}
		parts = append(parts, c+"*"+t.Mono.String())
	}

	return strings.Join(parts, " + ")
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(f float64) bool { return math.IsNaN(f) || math.IsInf(f, 0) }

// pow is integer exponentiation for evaluation (e ≥ 0).
func pow(x float64, e int) float64 {
	r := 1.0
	for i := 0; i < e; i++ {
		r *= x
	}

	return r
}
