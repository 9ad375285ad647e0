package server

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := &Document{
		URI:        string(params.TextDocument.URI),
		LanguageID: params.TextDocument.LanguageID,
		Version:    params.TextDocument.Version,
		Text:       params.TextDocument.Text,
	}

	s.mu.Lock()
	s.docs[doc.URI] = doc
	snap := *doc
	s.mu.Unlock()

	return s.validate(ctx, &snap)
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.mu.Lock()
	doc, ok := s.docs[string(params.TextDocument.URI)]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrDocumentNotOpen, params.TextDocument.URI)
	}
	doc.ApplyChanges(params.ContentChanges)
	doc.Version = params.TextDocument.Version
	snap := *doc
	s.mu.Unlock()

	return s.validate(ctx, &snap)
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)

	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()

	s.settingsCache().Invalidate(uri)
	return nil
}

func (s *Server) completion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	// Cursor position and document identity do not matter: the set is fixed.
	return s.catalog.Items(), nil
}

func (s *Server) resolveCompletion(ctx *glsp.Context, params *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	return s.catalog.Resolve(params), nil
}
