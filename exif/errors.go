// File: exif/errors.go

package exif

import "errors"

// Traversal and query failure conditions. Malformed entries are
// reported by the tiff package (tiff.ErrMalformed); everything here is
// contained to the smallest possible subtree and recorded as a
// diagnostic rather than aborting the parse.
var (
	// ErrCyclicReference marks a directory offset that was already
	// visited on the current descent; the subtree is abandoned and
	// sibling entries continue.
	ErrCyclicReference = errors.New("cyclic directory reference")

	// ErrTooDeep marks a descent past the configured depth limit.
	ErrTooDeep = errors.New("directory nesting too deep")

	// ErrNotFound is returned for query misses. Not logged.
	ErrNotFound = errors.New("tag not found")

	// ErrAmbiguous is reserved for a future strict resolution mode.
	// Current policy ranks unknown namespaces lowest instead of failing.
	ErrAmbiguous = errors.New("ambiguous tag name")
)
