package graphmodel

import "errors"

// Sentinel errors for the graphmodel package.
var (
	// ErrNodeNotFound indicates an operation referenced a node id not
	// present in the Graph.
	ErrNodeNotFound = errors.New("graphmodel: node not found")

	// ErrNodeExists indicates AddNode was called with an id already
	// present in the Graph.
	ErrNodeExists = errors.New("graphmodel: node id already exists")

	// ErrUnknownVariant indicates a Component carried a Variant outside
	// the closed enum; per spec §6, this is always a fatal validation
	// error, never a silently-ignored node.
	ErrUnknownVariant = errors.New("graphmodel: unrecognized component variant")

	// ErrMissingArgument indicates a Component is missing a required
	// named argument for its Variant.
	ErrMissingArgument = errors.New("graphmodel: missing required argument")

	// ErrArityMismatch indicates a Component was given a number of
	// arguments incompatible with its Variant.
	ErrArityMismatch = errors.New("graphmodel: argument arity mismatch")

	// ErrWrongArgumentType indicates a named argument resolved to a
	// node whose data type disagrees with what the Variant requires.
	ErrWrongArgumentType = errors.New("graphmodel: wrong argument data type")

	// ErrNotReleasable indicates Union(flatten=true) or another
	// releasable-only operation was applied to non-public data.
	ErrNotReleasable = errors.New("graphmodel: operation requires releasable data")
)
