package domain

import "errors"

// Load failures are terminal for the session: no retry, no partial dataset.
var (
	ErrSourceUnavailable = errors.New("source document unavailable")
	ErrBadStatus         = errors.New("source returned non-success status")
	ErrMalformedDocument = errors.New("malformed source document")
	ErrEmptyDocument     = errors.New("source document has no series")

	// ErrDatasetUnavailable is what readers of the store see before a
	// successful load (or forever after a failed one).
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)
