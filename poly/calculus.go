// SPDX-License-Identifier: MIT

// calculus.go — the two calculus operations infinitesimal generators need:
// partial differentiation (diffusion generators) and argument shifting
// (jump generators: f(x+ν) from f(x)).

package poly

// Differentiate returns ∂p/∂v.
// Complexity: O(|p|).
func (p Polynomial) Differentiate(v Var) Polynomial {
	b := make(builder, len(p.terms))
	for _, t := range p.terms {
		e, ok := t.mono[v]
		if !ok {
			continue
		}
		m := t.mono.Clone()
		if e == 1 {
			delete(m, v)
		} else {
			m[v] = e - 1
		}
		b.add(m, t.coef*float64(e))
	}

	return b.finish()
}

// Shift returns p(x + δ): each variable v present in deltas is replaced by
// v + deltas[v]. Variables absent from deltas are left untouched.
// Implemented by binomial expansion of (v + δ)^e per term.
// Complexity: O(|p| · d²) for degree d.
func (p Polynomial) Shift(deltas map[Var]float64) Polynomial {
	if len(deltas) == 0 {
		return p
	}
	for _, d := range deltas {
		if isNonFinite(d) {
			panic(panicNonFinite)
		}
	}

	out := Zero()
	for _, t := range p.terms {
		shifted := Const(t.coef)
		for v, e := range t.mono {
			d, ok := deltas[v]
			if !ok || d == 0 {
				shifted = shifted.Mul(FromMonomial(Monomial{v: e}, 1))

				continue
			}
			shifted = shifted.Mul(binomial(v, d, e))
		}
		out = out.Add(shifted)
	}

	return out
}

// binomial expands (v + d)^e = Σ_k C(e,k)·d^(e−k)·v^k.
func binomial(v Var, d float64, e int) Polynomial {
	b := make(builder, e+1)
	c := 1.0 // running C(e,k)
	for k := 0; k <= e; k++ {
		if k > 0 {
			c = c * float64(e-k+1) / float64(k)
		}
		coef := c * pow(d, e-k)
		if k == 0 {
			b.add(Monomial{}, coef)
		} else {
			b.add(Monomial{v: k}, coef)
		}
	}

	return b.finish()
}
