package model

import "errors"

// Store error taxonomy. Anything else coming out of the persistence layer is
// a storage failure and is surfaced unchanged.
var (
	// ErrNotFound: a mutation addressed a record that no longer exists.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidReference: a product named a supplier that does not exist.
	ErrInvalidReference = errors.New("supplier reference does not exist")

	// ErrMalformedInput: a transfer document failed structural validation.
	// The import aborts before any mutation.
	ErrMalformedInput = errors.New("malformed transfer document")
)
