// SPDX-License-Identifier: MIT

// basis.go — graded-lexicographic monomial bases. The basis is the shared
// vocabulary between decision polynomials and Gram matrices: both must
// enumerate monomials in exactly this order for constraint rows to line up.

package poly

import "sort"

// Basis enumerates all monomials in vars of total degree ≤ maxDegree, in
// graded-lexicographic order. The first element is always the constant
// monomial. Duplicate variables are collapsed; the variable order used for
// lexicographic ties is ascending name order regardless of input order.
// Panics with a stable message when maxDegree < 0 (programmer error).
// Complexity: O(C(n+d, d)) monomials for n variables, degree d.
func Basis(vars []Var, maxDegree int) []Monomial {
	if maxDegree < 0 {
		panic(panicNegativeDegree)
	}
	uniq := map[Var]struct{}{}
	for _, v := range vars {
		uniq[v] = struct{}{}
	}
	ordered := make([]Var, 0, len(uniq))
	for v := range uniq {
		ordered = append(ordered, v)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	var out []Monomial
	exps := make([]int, len(ordered))
	var walk func(idx, remaining int)
	walk = func(idx, remaining int) {
		if idx == len(ordered) {
			m := Monomial{}
			for i, e := range exps {
				if e > 0 {
					m[ordered[i]] = e
				}
			}
			out = append(out, m)

			return
		}
		for e := 0; e <= remaining; e++ {
			exps[idx] = e
			walk(idx+1, remaining-e)
		}
		exps[idx] = 0
	}
	walk(0, maxDegree)

	sort.Slice(out, func(i, j int) bool { return GradedLess(out[i], out[j]) })

	return out
}
