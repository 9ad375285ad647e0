package server

import (
	"fmt"
	"regexp"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/carbon-tools/carbon-ls/internal/settings"
)

// validate resolves the document's settings, possibly blocking on a shared
// configuration pull, then publishes its diagnostic set. A failed pull fails
// only this handler.
//
// The all-caps scanner below is not wired in: every publish carries an
// empty list.
func (s *Server) validate(ctx *glsp.Context, doc *Document) error {
	if _, err := s.settingsCache().Get(doc.URI, s.pullSettings(ctx)); err != nil {
		return fmt.Errorf("resolving settings for %s: %w", doc.URI, err)
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(doc.URI),
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// validateAll re-runs validation for every open document, continuing past
// individual failures and reporting the first one.
func (s *Server) validateAll(ctx *glsp.Context) error {
	s.mu.RLock()
	snaps := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		snap := *doc
		snaps = append(snaps, &snap)
	}
	s.mu.RUnlock()

	var firstErr error
	for _, doc := range snaps {
		if err := s.validate(ctx, doc); err != nil {
			log.Errorf("validate %s: %v", doc.URI, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

var allCapsPattern = regexp.MustCompile(`\b[A-Z][A-Z]+\b`)

// scanAllCaps flags words spelled entirely in uppercase, capped by the
// document's problem budget. Dormant: validate never calls it.
func scanAllCaps(doc *Document, cfg settings.Settings, related bool) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	severity := protocol.DiagnosticSeverityWarning
	source := "carbon-ls"

	for _, loc := range allCapsPattern.FindAllStringIndex(doc.Text, -1) {
		if len(diagnostics) >= cfg.MaxNumberOfProblems {
			break
		}
		rng := protocol.Range{
			Start: doc.positionAt(loc[0]),
			End:   doc.positionAt(loc[1]),
		}
		diag := protocol.Diagnostic{
			Range:    rng,
			Severity: &severity,
			Source:   &source,
			Message:  doc.Text[loc[0]:loc[1]] + " is all uppercase.",
		}
		if related {
			diag.RelatedInformation = []protocol.DiagnosticRelatedInformation{{
				Location: protocol.Location{URI: protocol.DocumentUri(doc.URI), Range: rng},
				Message:  "Spelling matters",
			}}
		}
		diagnostics = append(diagnostics, diag)
	}

	return diagnostics
}
