// SPDX-License-Identifier: MIT

// cell.go — the closed Cell sum type: Point | Region | RegionGroup.

package partition

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/ergodic/poly"
)

// Cell describes the geometry a partition vertex covers. Sealed: the only
// implementations are Point, Region and RegionGroup in this package.
type Cell interface {
	fmt.Stringer

	// contains reports membership of a state within tolerance eps.
	contains(at map[poly.Var]float64, eps float64) bool

	// validate rejects non-finite cell data.
	validate() error

	// isCell seals the interface.
	isCell()
}

// Point is a singleton cell: one fixed state. Weight functions over a Point
// degenerate to plain scalars, which is an exact representation (no
// polynomial approximation happens there).
type Point struct {
	// At assigns a coordinate to every state variable of the process.
	At map[poly.Var]float64
}

func (Point) isCell() {}

func (p Point) contains(at map[poly.Var]float64, eps float64) bool {
	for v, c := range p.At {
		if math.Abs(at[v]-c) > eps {
			return false
		}
	}
	for v, c := range at {
		if _, ok := p.At[v]; !ok && math.Abs(c) > eps {
			return false
		}
	}

	return true
}

func (p Point) validate() error {
	for _, c := range p.At {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrInvalidCell
		}
	}

	return nil
}

// String renders the point deterministically, e.g. "point{x=2, y=0}".
func (p Point) String() string {
	vars := make([]string, 0, len(p.At))
	for _, v := range sortedVars(p.At) {
		vars = append(vars, fmt.Sprintf("%s=%g", v, p.At[v]))
	}

	return "point{" + strings.Join(vars, ", ") + "}"
}

// Region is a basic closed semialgebraic set
// {x : g(x) ≥ 0 for all g in Inequalities, h(x) = 0 for all h in Equalities}.
// An empty Region is the whole space.
type Region struct {
	Inequalities []poly.Polynomial
	Equalities   []poly.Polynomial
}

func (Region) isCell() {}

func (r Region) contains(at map[poly.Var]float64, eps float64) bool {
	for _, g := range r.Inequalities {
		if g.Eval(at) < -eps {
			return false
		}
	}
	for _, h := range r.Equalities {
		if math.Abs(h.Eval(at)) > eps {
			return false
		}
	}

	return true
}

func (r Region) validate() error {
	for _, g := range r.Inequalities {
		if err := g.Validate(); err != nil {
			return ErrInvalidCell
		}
	}
	for _, h := range r.Equalities {
		if err := h.Validate(); err != nil {
			return ErrInvalidCell
		}
	}

	return nil
}

// String renders the defining constraints.
func (r Region) String() string {
	if len(r.Inequalities) == 0 && len(r.Equalities) == 0 {
		return "region{ℝⁿ}"
	}
	parts := make([]string, 0, len(r.Inequalities)+len(r.Equalities))
	for _, g := range r.Inequalities {
		parts = append(parts, g.String()+" ≥ 0")
	}
	for _, h := range r.Equalities {
		parts = append(parts, h.String()+" = 0")
	}

	return "region{" + strings.Join(parts, ", ") + "}"
}

// RegionGroup is an ordered list of Regions covered by one weight function.
// Each member contributes its own certificate (and its own dual) while the
// vertex keeps a single decision polynomial.
type RegionGroup []Region

func (RegionGroup) isCell() {}

func (g RegionGroup) contains(at map[poly.Var]float64, eps float64) bool {
	for _, r := range g {
		if r.contains(at, eps) {
			return true
		}
	}

	return false
}

func (g RegionGroup) validate() error {
	for _, r := range g {
		if err := r.validate(); err != nil {
			return err
		}
	}
	if len(g) == 0 {
		return ErrInvalidCell
	}

	return nil
}

// String renders the group members in order.
func (g RegionGroup) String() string {
	parts := make([]string, len(g))
	for i, r := range g {
		parts[i] = r.String()
	}

	return "group{" + strings.Join(parts, "; ") + "}"
}

// sortedVars returns the assignment's variables in ascending order.
func sortedVars(at map[poly.Var]float64) []poly.Var {
	vars := make([]poly.Var, 0, len(at))
	for v := range at {
		vars = append(vars, v)
	}
	for i := 1; i < len(vars); i++ {
		for j := i; j > 0 && vars[j] < vars[j-1]; j-- {
			vars[j], vars[j-1] = vars[j-1], vars[j]
		}
	}

	return vars
}
