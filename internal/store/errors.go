package store

import "errors"

// Sentinel errors returned by document reads and link operations. Callers
// match them with errors.Is; the wrapped message carries the file or id.
var (
	// ErrNotFound indicates the backing file for a document kind is absent.
	ErrNotFound = errors.New("document not found")

	// ErrCorrupt indicates the backing file exists but is not valid JSON
	// for its kind.
	ErrCorrupt = errors.New("document corrupt")

	// ErrLinkNotFound indicates a link id that is not in the collection.
	ErrLinkNotFound = errors.New("link not found")

	// ErrDuplicateLink indicates a reorder payload naming the same id twice.
	ErrDuplicateLink = errors.New("duplicate link id")
)
