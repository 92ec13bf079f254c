// SPDX-License-Identifier: MIT

// partition.go — the partition graph: dense integer vertex ids, one Cell per
// vertex, adjacency edges with optional interface polynomials, and Locate.

package partition

import (
	"fmt"

	"github.com/katalvlaran/ergodic/poly"
)

// DefaultEpsilon is the membership tolerance used by Locate and by Point
// containment checks.
const DefaultEpsilon = 1e-9

// Option configures a Partition at construction time.
type Option func(*Partition)

// WithEpsilon overrides the membership tolerance.
// Panics with a stable message on NaN/±Inf/negative eps (programmer error).
func WithEpsilon(eps float64) Option {
	if eps != eps || eps < 0 || eps > 1e308 {
		panic(panicEpsilonInvalid)
	}

	return func(p *Partition) { p.eps = eps }
}

// Edge is an adjacency pair requiring a coupling constraint. When
// HasInterface is true the cells are glued across {Interface = 0}; otherwise
// the edge carries no geometric interface (point–point adjacency in discrete
// chains) and coupling degenerates to a no-op.
type Edge struct {
	U, V         int
	Interface    poly.Polynomial
	HasInterface bool
}

// EdgeOption configures a single edge when added.
type EdgeOption func(*Edge)

// WithInterface attaches the gluing polynomial h: the two weight functions
// must agree on {h = 0}.
func WithInterface(h poly.Polynomial) EdgeOption {
	return func(e *Edge) {
		e.Interface = h
		e.HasInterface = true
	}
}

// Partition is the cell graph. The zero value is unusable; construct with New.
type Partition struct {
	eps   float64
	cells []Cell
	edges []Edge
	adj   map[[2]int]struct{} // normalized {min,max} pairs, duplicate guard
}

// New creates an empty Partition.
// Complexity: O(1).
func New(opts ...Option) *Partition {
	p := &Partition{eps: DefaultEpsilon, adj: make(map[[2]int]struct{})}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// AddVertex appends a vertex covering cell and returns its dense id.
// Ids are assigned in insertion order starting at 0 and never reused.
func (p *Partition) AddVertex(cell Cell) (int, error) {
	if cell == nil {
		return 0, fmt.Errorf("AddVertex: %w", ErrNilCell)
	}
	if err := cell.validate(); err != nil {
		return 0, fmt.Errorf("AddVertex: %w", err)
	}
	p.cells = append(p.cells, cell)

	return len(p.cells) - 1, nil
}

// AddEdge declares u and v adjacent. Self-edges and duplicates are rejected.
func (p *Partition) AddEdge(u, v int, opts ...EdgeOption) error {
	if u < 0 || u >= len(p.cells) || v < 0 || v >= len(p.cells) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfEdge)
	}
	key := [2]int{min(u, v), max(u, v)}
	if _, dup := p.adj[key]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	e := Edge{U: u, V: v}
	for _, opt := range opts {
		opt(&e)
	}
	if e.HasInterface {
		if err := e.Interface.Validate(); err != nil {
			return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrInvalidCell)
		}
	}
	p.adj[key] = struct{}{}
	p.edges = append(p.edges, e)

	return nil
}

// VertexCount returns the number of vertices.
func (p *Partition) VertexCount() int { return len(p.cells) }

// Vertices enumerates all vertex ids in ascending order.
// The returned slice is fresh; callers may keep it.
func (p *Partition) Vertices() []int {
	ids := make([]int, len(p.cells))
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// Cell returns the cell descriptor of vertex id.
func (p *Partition) Cell(id int) (Cell, error) {
	if id < 0 || id >= len(p.cells) {
		return nil, fmt.Errorf("Cell(%d): %w", id, ErrVertexNotFound)
	}

	return p.cells[id], nil
}

// Edges enumerates adjacency edges in insertion order.
func (p *Partition) Edges() []Edge {
	out := make([]Edge, len(p.edges))
	copy(out, p.edges)

	return out
}

// Epsilon returns the membership tolerance in force.
func (p *Partition) Epsilon() float64 { return p.eps }

// Locate returns the id of the first vertex (ascending) whose cell contains
// the given state within the partition tolerance.
// Complexity: O(n·c) for n vertices with c constraints each.
func (p *Partition) Locate(at map[poly.Var]float64) (int, error) {
	for id, c := range p.cells {
		if c.contains(at, p.eps) {
			return id, nil
		}
	}

	return 0, fmt.Errorf("Locate: %w", ErrPointNotCovered)
}

// Whole returns the default single-cell partition: one unconstrained Region
// covering the whole space. Every program template falls back to it when the
// caller supplies no partition.
func Whole() *Partition {
	p := New()
	_, _ = p.AddVertex(Region{})

	return p
}

// Orthant returns a single-cell partition covering {x_i ≥ 0 for all i},
// the natural domain of population processes.
func Orthant(vars []poly.Var) *Partition {
	r := Region{}
	for _, v := range vars {
		r.Inequalities = append(r.Inequalities, poly.NewVar(v))
	}
	p := New()
	_, _ = p.AddVertex(r)

	return p
}
