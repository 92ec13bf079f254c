// SPDX-License-Identifier: MIT

// errors.go — sentinel errors for the markov package.
// Callers branch with errors.Is; context is attached with %w at call sites.

package markov

import "errors"

// ErrNoVariables indicates a process was constructed without state variables.
var ErrNoVariables = errors.New("markov: no state variables")

// ErrUnknownVariable indicates a jump displacement, drift or rate references
// a variable outside the process's state-variable set.
var ErrUnknownVariable = errors.New("markov: unknown state variable")

// ErrDimensionMismatch indicates drift/diffusion dimensions do not match the
// state-variable count.
var ErrDimensionMismatch = errors.New("markov: dimension mismatch")

// ErrBadRate indicates a negative or non-finite rate constant, or a rate
// polynomial with non-finite coefficients.
var ErrBadRate = errors.New("markov: bad rate")

// ErrEmptyNetwork indicates a reaction network with no reactions.
var ErrEmptyNetwork = errors.New("markov: empty reaction network")

// ErrBadDocument indicates a YAML network document that cannot be decoded or
// fails validation.
var ErrBadDocument = errors.New("markov: bad network document")
