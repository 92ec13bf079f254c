// SPDX-License-Identifier: MIT

// errors.go — sentinel errors for the partition package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     methods attach context with %w.
//   - Validation panics are confined to option constructors.

package partition

import "errors"

// ErrNilCell indicates AddVertex received a nil Cell.
// A vertex without a cell descriptor is unrepresentable; fail fast.
var ErrNilCell = errors.New("partition: nil cell")

// ErrVertexNotFound indicates an operation referenced an unknown vertex id.
var ErrVertexNotFound = errors.New("partition: vertex not found")

// ErrSelfEdge indicates an adjacency edge from a vertex to itself.
var ErrSelfEdge = errors.New("partition: self edge not allowed")

// ErrDuplicateEdge indicates the unordered vertex pair is already adjacent.
var ErrDuplicateEdge = errors.New("partition: duplicate edge")

// ErrPointNotCovered indicates Locate found no cell containing the point.
var ErrPointNotCovered = errors.New("partition: point not covered by any cell")

// ErrInvalidCell indicates a cell carries non-finite data (coordinates or
// polynomial coefficients).
var ErrInvalidCell = errors.New("partition: invalid cell data")

const panicEpsilonInvalid = "partition: WithEpsilon: eps must be finite, non-negative"
