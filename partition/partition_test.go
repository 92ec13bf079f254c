// SPDX-License-Identifier: MIT

package partition_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergodic/partition"
	"github.com/katalvlaran/ergodic/poly"
)

// TestVertexIDsDense verifies insertion-order dense ids.
func TestVertexIDsDense(t *testing.T) {
	p := partition.New()
	for i := 0; i < 4; i++ {
		id, err := p.AddVertex(partition.Point{At: map[poly.Var]float64{"x": float64(i)}})
		require.NoError(t, err)
		require.Equal(t, i, id)
	}
	require.Equal(t, []int{0, 1, 2, 3}, p.Vertices())
}

// TestNilCellRejected fails fast on a vertex without a descriptor.
func TestNilCellRejected(t *testing.T) {
	p := partition.New()
	_, err := p.AddVertex(nil)
	require.ErrorIs(t, err, partition.ErrNilCell)
}

// TestEdgeValidation covers unknown vertices, self edges and duplicates.
func TestEdgeValidation(t *testing.T) {
	p := partition.New()
	a, _ := p.AddVertex(partition.Point{At: map[poly.Var]float64{"x": 0}})
	b, _ := p.AddVertex(partition.Point{At: map[poly.Var]float64{"x": 1}})

	require.ErrorIs(t, p.AddEdge(a, 9), partition.ErrVertexNotFound)
	require.ErrorIs(t, p.AddEdge(a, a), partition.ErrSelfEdge)
	require.NoError(t, p.AddEdge(a, b))
	require.ErrorIs(t, p.AddEdge(b, a), partition.ErrDuplicateEdge)
}

// TestLocatePoint matches singleton cells within tolerance.
func TestLocatePoint(t *testing.T) {
	p := partition.New()
	_, _ = p.AddVertex(partition.Point{At: map[poly.Var]float64{"x": 0}})
	id1, _ := p.AddVertex(partition.Point{At: map[poly.Var]float64{"x": 1}})

	got, err := p.Locate(map[poly.Var]float64{"x": 1 + 1e-12})
	require.NoError(t, err)
	require.Equal(t, id1, got)

	_, err = p.Locate(map[poly.Var]float64{"x": 7})
	require.ErrorIs(t, err, partition.ErrPointNotCovered)
}

// TestLocateRegion matches semialgebraic membership.
func TestLocateRegion(t *testing.T) {
	x := poly.NewVar("x")
	p := partition.New()
	// Vertex 0: x ≤ 2 (i.e. 2−x ≥ 0). Vertex 1: x ≥ 2.
	neg, _ := p.AddVertex(partition.Region{Inequalities: []poly.Polynomial{poly.Const(2).Sub(x)}})
	pos, _ := p.AddVertex(partition.Region{Inequalities: []poly.Polynomial{x.Sub(poly.Const(2))}})

	got, err := p.Locate(map[poly.Var]float64{"x": -5})
	require.NoError(t, err)
	require.Equal(t, neg, got)

	got, err = p.Locate(map[poly.Var]float64{"x": 3})
	require.NoError(t, err)
	require.Equal(t, pos, got)
}

// TestRegionGroupMembership accepts any member region.
func TestRegionGroupMembership(t *testing.T) {
	x := poly.NewVar("x")
	left := partition.Region{Inequalities: []poly.Polynomial{poly.Const(-1).Sub(x)}} // x ≤ −1
	right := partition.Region{Inequalities: []poly.Polynomial{x.Sub(poly.Const(1))}} // x ≥ 1
	p := partition.New()
	id, err := p.AddVertex(partition.RegionGroup{left, right})
	require.NoError(t, err)

	got, err := p.Locate(map[poly.Var]float64{"x": 5})
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = p.Locate(map[poly.Var]float64{"x": 0})
	require.ErrorIs(t, err, partition.ErrPointNotCovered)
}

// TestEmptyRegionGroupInvalid rejects a group with no members.
func TestEmptyRegionGroupInvalid(t *testing.T) {
	p := partition.New()
	_, err := p.AddVertex(partition.RegionGroup{})
	require.ErrorIs(t, err, partition.ErrInvalidCell)
}

// TestWholeDefault covers every state with one region cell.
func TestWholeDefault(t *testing.T) {
	p := partition.Whole()
	require.Equal(t, 1, p.VertexCount())
	id, err := p.Locate(map[poly.Var]float64{"x": 123.4, "y": -9})
	require.NoError(t, err)
	require.Equal(t, 0, id)
}

// TestClosedCellSwitch documents the exhaustive three-way match callers rely on.
func TestClosedCellSwitch(t *testing.T) {
	cells := []partition.Cell{
		partition.Point{At: map[poly.Var]float64{"x": 0}},
		partition.Region{},
		partition.RegionGroup{partition.Region{}},
	}
	for _, c := range cells {
		switch c.(type) {
		case partition.Point, partition.Region, partition.RegionGroup:
			// ok — the sum type is closed.
		default:
			t.Fatalf("unexpected cell kind %T", c)
		}
	}
	require.True(t, errors.Is(partition.ErrNilCell, partition.ErrNilCell))
}
