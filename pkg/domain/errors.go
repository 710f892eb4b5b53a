package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned when a network cannot be built from its node specs.
var ErrMalformedInput = errors.New("malformed input")

// ErrEmptyNetwork is returned when a search is requested over a network without nodes.
var ErrEmptyNetwork = errors.New("empty network")

// ErrUnknownStartNode is returned when the requested start node is not part of the network.
var ErrUnknownStartNode = errors.New("unknown start node")

// ErrInvalidRequest is returned when the search parameters are out of range.
var ErrInvalidRequest = errors.New("invalid request")

// ErrResultNotFound is returned when a result cannot be found in the store.
var ErrResultNotFound = errors.New("result not found")

// InputError describes a single structural problem found while building a network.
// It unwraps to ErrMalformedInput.
type InputError struct {
	Node   string // Offending node ID (may be empty)
	Reason string // Human-readable reason for failure
}

func (e *InputError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedInput, e.Reason)
	}
	return fmt.Sprintf("%s: node %q: %s", ErrMalformedInput, e.Node, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrMalformedInput
}

func malformed(node, format string, args ...any) error {
	return &InputError{Node: node, Reason: fmt.Sprintf(format, args...)}
}
