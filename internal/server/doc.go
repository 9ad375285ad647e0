// Package server implements the carbon-ls session: capability negotiation
// with the client editor, tracking of open documents and their per-document
// settings, the fixed completion surface, and diagnostic publication.
//
// All protocol transport (stdio framing, JSON-RPC dispatch, method routing)
// belongs to the glsp runtime; this package only registers handlers on a
// protocol.Handler and reacts to the decoded messages.
//
// # Session state
//
// A Server owns every piece of mutable session state explicitly: the three
// capability flags read once during initialize, the settings cache, and the
// open-document table. Nothing lives in package globals, and nothing
// survives the process.
//
// # Lifecycle
//
//	initialize   → record client capabilities, answer with server capabilities
//	initialized  → register for configuration pushes when the client scopes them
//	steady state → document sync, completion, resolve, configuration changes
//
// There is no terminal state; the session ends when the process exits.
package server
