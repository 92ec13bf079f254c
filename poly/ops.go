// SPDX-License-Identifier: MIT

// ops.go — ring operations. All operations build fresh term maps; receivers
// and arguments are never mutated. Exact-zero coefficients are pruned so the
// term set stays canonical.

package poly

// builder accumulates terms during an operation.
type builder map[string]term

// add accumulates c·m into the builder, pruning exact zeros.
func (b builder) add(m Monomial, c float64) {
	if c == 0 {
		return
	}
	k := m.String()
	t, ok := b[k]
	if !ok {
		b[k] = term{mono: m.Clone(), coef: c}

		return
	}
	t.coef += c
	if t.coef == 0 {
		delete(b, k)

		return
	}
	b[k] = t
}

// finish converts the builder into a Polynomial.
func (b builder) finish() Polynomial {
	if len(b) == 0 {
		return Polynomial{}
	}

	return Polynomial{terms: b}
}

// Add returns p + q.
// Complexity: O(|p| + |q|).
func (p Polynomial) Add(q Polynomial) Polynomial {
	b := make(builder, len(p.terms)+len(q.terms))
	for _, t := range p.terms {
		b.add(t.mono, t.coef)
	}
	for _, t := range q.terms {
		b.add(t.mono, t.coef)
	}

	return b.finish()
}

// Sub returns p − q.
func (p Polynomial) Sub(q Polynomial) Polynomial { return p.Add(q.Neg()) }

// Neg returns −p.
func (p Polynomial) Neg() Polynomial { return p.Scale(-1) }

// Scale returns c·p.
// Panics with a stable message when c is NaN or ±Inf (programmer error).
func (p Polynomial) Scale(c float64) Polynomial {
	if isNonFinite(c) {
		panic(panicNonFinite)
	}
	if c == 0 || len(p.terms) == 0 {
		return Polynomial{}
	}
	b := make(builder, len(p.terms))
	for _, t := range p.terms {
		b.add(t.mono, t.coef*c)
	}

	return b.finish()
}

// Mul returns p · q.
// Complexity: O(|p|·|q|).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.terms) == 0 || len(q.terms) == 0 {
		return Polynomial{}
	}
	b := make(builder, len(p.terms)*len(q.terms))
	for _, pt := range p.terms {
		for _, qt := range q.terms {
			b.add(mulMono(pt.mono, qt.mono), pt.coef*qt.coef)
		}
	}

	return b.finish()
}

// Pow returns p^n for n ≥ 0 (p^0 = 1, including 0^0 by convention).
// Panics with a stable message for n < 0 (programmer error).
func (p Polynomial) Pow(n int) Polynomial {
	if n < 0 {
		panic(panicNegativePow)
	}
	out := Const(1)
	for i := 0; i < n; i++ {
		out = out.Mul(p)
	}

	return out
}
