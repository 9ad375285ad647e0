package server

import "errors"

// Standard errors returned by session handlers.
var (
	// ErrDocumentNotOpen indicates an event referenced a document that was
	// never opened, or was already closed.
	ErrDocumentNotOpen = errors.New("document not open")
)
