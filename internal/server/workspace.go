package server

import (
	"encoding/json"
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/carbon-tools/carbon-ls/internal/settings"
)

func (s *Server) didChangeConfiguration(ctx *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
	cache := s.settingsCache()
	if cache.Scoped() {
		// Scoped clients get re-queried per document; drop everything.
		cache.Clear()
	} else {
		raw, err := json.Marshal(params.Settings)
		if err != nil {
			return fmt.Errorf("decoding pushed settings: %w", err)
		}
		cache.SetGlobal(settings.FromPush(raw))
	}

	return s.validateAll(ctx)
}

func (s *Server) didChangeWorkspaceFolders(ctx *glsp.Context, params *protocol.DidChangeWorkspaceFoldersParams) error {
	log.Info("workspace folders changed",
		"added", len(params.Event.Added),
		"removed", len(params.Event.Removed))
	return nil
}

func (s *Server) didChangeWatchedFiles(ctx *glsp.Context, params *protocol.DidChangeWatchedFilesParams) error {
	log.Info("watched files changed", "count", len(params.Changes))
	return nil
}

// pullSettings builds the fetch used for scoped configuration lookups: one
// workspace/configuration request scoped to the document's URI.
func (s *Server) pullSettings(ctx *glsp.Context) settings.FetchFunc {
	return func(uri string) (settings.Settings, error) {
		scope := protocol.URI(uri)
		section := settings.Section
		var result []json.RawMessage
		ctx.Call(protocol.ServerWorkspaceConfiguration, &protocol.ConfigurationParams{
			Items: []protocol.ConfigurationItem{{ScopeURI: &scope, Section: &section}},
		}, &result)
		if len(result) == 0 {
			return settings.Default(), nil
		}
		return settings.FromSection(result[0]), nil
	}
}
