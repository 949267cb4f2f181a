// Package catalog holds the immutable object table the engine queries.
package catalog

import "errors"

// Sentinel errors for catalog operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNotFound indicates the requested object key does not exist.
	ErrNotFound = errors.New("object not found")

	// ErrInvalidEntry indicates a source entry that cannot be normalized,
	// for example one missing both a diameter and a diameter range.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)
