package qcirc

import "errors"

var (
	// ErrQubitIndex reports a qubit index outside [0, n).
	ErrQubitIndex = errors.New("qubit index out of range")

	// ErrInvalidOp reports a structurally invalid operation: a target
	// inside its own control set, duplicate controls, a SWAP of a qubit
	// with itself, a controlled gate without controls, or a gate call
	// without targets. Raised while building, before any shot runs.
	ErrInvalidOp = errors.New("invalid operation")

	// ErrDegenerate reports a measurement whose sampled branch has zero
	// probability. Unreachable after a valid unitary history; if it
	// surfaces, the shot is abandoned.
	ErrDegenerate = errors.New("degenerate state: measured branch has zero probability")
)
