// SPDX-License-Identifier: MIT

// reaction.go — chemical reaction networks and their jump-process
// translation with stochastic mass-action propensities.

package markov

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ergodic/poly"
)

// Species names a chemical species. Each species maps to one state variable
// carrying the same name.
type Species string

// Reaction is one channel of a network: reactants are consumed, products are
// produced, and the propensity is mass action with constant Rate:
//
//	a(x) = Rate · Π_s x_s·(x_s−1)·…·(x_s−m_s+1)
//
// for reactant multiplicities m_s (the falling factorial counts ordered
// reactant tuples in the stochastic semantics).
type Reaction struct {
	Name      string
	Rate      float64
	Reactants map[Species]int
	Products  map[Species]int
}

// Network is an immutable reaction network. Construct with NewNetwork or
// ParseNetworkYAML.
type Network struct {
	species   []Species
	reactions []Reaction
}

// NewNetwork validates and assembles a network. The species set is inferred
// from reactant and product maps; multiplicities must be positive and rate
// constants finite and non-negative.
func NewNetwork(reactions ...Reaction) (*Network, error) {
	if len(reactions) == 0 {
		return nil, ErrEmptyNetwork
	}
	seen := map[Species]struct{}{}
	for i, r := range reactions {
		if math.IsNaN(r.Rate) || math.IsInf(r.Rate, 0) || r.Rate < 0 {
			return nil, fmt.Errorf("reaction %d (%s): %w", i, r.Name, ErrBadRate)
		}
		for s, m := range r.Reactants {
			if m <= 0 {
				return nil, fmt.Errorf("reaction %d (%s): reactant %q multiplicity %d: %w", i, r.Name, s, m, ErrBadRate)
			}
			seen[s] = struct{}{}
		}
		for s, m := range r.Products {
			if m <= 0 {
				return nil, fmt.Errorf("reaction %d (%s): product %q multiplicity %d: %w", i, r.Name, s, m, ErrBadRate)
			}
			seen[s] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("no species referenced: %w", ErrEmptyNetwork)
	}
	species := make([]Species, 0, len(seen))
	for s := range seen {
		species = append(species, s)
	}
	sort.Slice(species, func(i, j int) bool { return species[i] < species[j] })

	cp := make([]Reaction, len(reactions))
	copy(cp, reactions)

	return &Network{species: species, reactions: cp}, nil
}

// Species returns all species in ascending name order.
func (n *Network) Species() []Species {
	out := make([]Species, len(n.species))
	copy(out, n.species)

	return out
}

// Reactions returns the reaction list in declaration order.
func (n *Network) Reactions() []Reaction {
	out := make([]Reaction, len(n.reactions))
	copy(out, n.reactions)

	return out
}

// SpeciesVar maps a species to its state variable.
func (n *Network) SpeciesVar(s Species) poly.Var { return poly.Var(s) }

// Process translates the network into its jump process: one channel per
// reaction, displacement = products − reactants, mass-action propensity.
func (n *Network) Process() (*Process, error) {
	vars := make([]poly.Var, len(n.species))
	for i, s := range n.species {
		vars[i] = n.SpeciesVar(s)
	}

	jumps := make([]Jump, 0, len(n.reactions))
	for _, r := range n.reactions {
		rate := poly.Const(r.Rate)
		for s, m := range r.Reactants {
			rate = rate.Mul(fallingFactorial(n.SpeciesVar(s), m))
		}

		disp := map[poly.Var]float64{}
		for s, m := range r.Products {
			disp[n.SpeciesVar(s)] += float64(m)
		}
		for s, m := range r.Reactants {
			disp[n.SpeciesVar(s)] -= float64(m)
		}
		for v, d := range disp {
			if d == 0 {
				delete(disp, v)
			}
		}
		jumps = append(jumps, Jump{Rate: rate, Displacement: disp})
	}

	return NewJumpProcess(vars, jumps)
}

// BirthDeath is the canonical two-reaction network ∅→X (rate birth),
// X→∅ (rate death·x). Used throughout examples and tests.
func BirthDeath(birth, death float64) (*Network, error) {
	return NewNetwork(
		Reaction{Name: "birth", Rate: birth, Products: map[Species]int{"X": 1}},
		Reaction{Name: "death", Rate: death, Reactants: map[Species]int{"X": 1}},
	)
}

// fallingFactorial returns x·(x−1)·…·(x−m+1).
func fallingFactorial(v poly.Var, m int) poly.Polynomial {
	x := poly.NewVar(v)
	out := poly.Const(1)
	for k := 0; k < m; k++ {
		out = out.Mul(x.Sub(poly.Const(float64(k))))
	}

	return out
}
