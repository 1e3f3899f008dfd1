package analyzer

import "errors"

// Sentinel errors returned by the core profiling primitives. Callers match
// them with errors.Is; the service layer maps them onto domain error codes.
var (
	// ErrInvalidParameter reports a non-positive gram dimension or register
	// capacity.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrMalformedTree reports a tree whose walk revisits a node, i.e. a
	// cycle or a node owned by more than one parent.
	ErrMalformedTree = errors.New("malformed tree")
)
