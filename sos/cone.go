// SPDX-License-Identifier: MIT

package sos

// Cone selects the nonnegativity relaxation applied to Gram matrices.
type Cone uint8

const (
	// SOSCone constrains Gram matrices to be positive semidefinite: the full
	// sum-of-squares relaxation. Requires a CapPSD backend.
	SOSCone Cone = iota

	// DDCone constrains Gram matrices to be diagonally dominant with a
	// nonnegative diagonal: an inner approximation of SOSCone whose rows are
	// all linear, so any LP backend can solve it. Bounds stay valid but are
	// weaker.
	DDCone
)

// String implements fmt.Stringer.
func (c Cone) String() string {
	switch c {
	case SOSCone:
		return "sos"
	case DDCone:
		return "dd"
	default:
		return "cone(" + string(rune('0'+c)) + ")"
	}
}
