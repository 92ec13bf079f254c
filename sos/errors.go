// SPDX-License-Identifier: MIT

// errors.go — sentinel errors for the sos package.
// Branch with errors.Is; call sites attach context with %w.

package sos

import "errors"

// ErrPointCellNeedsJump indicates a stationarity constraint was requested at
// a Point cell of a diffusion process; pointwise generator evaluation is
// only defined for jump processes.
var ErrPointCellNeedsJump = errors.New("sos: point cell requires a jump process")

// ErrJumpLeavesPartition indicates a jump from a Point cell lands outside
// every cell of the partition. The partition must cover all reachable states.
var ErrJumpLeavesPartition = errors.New("sos: jump leaves the partition")

// ErrMissingWeight indicates the weight map has no entry for a vertex.
var ErrMissingWeight = errors.New("sos: missing weight for vertex")

// ErrWeightKind indicates a weight of the wrong kind for the cell (scalar
// where a polynomial is required, or vice versa).
var ErrWeightKind = errors.New("sos: weight kind does not match cell kind")

// ErrEmptyCertificate indicates a certificate was requested for the
// identically-zero polynomial, which constrains nothing.
var ErrEmptyCertificate = errors.New("sos: empty certificate")

const panicNegativeOrder = "sos: negative relaxation order"
