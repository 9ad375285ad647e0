package server

import (
	"sync"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/carbon-tools/carbon-ls/internal/catalog"
	"github.com/carbon-tools/carbon-ls/internal/settings"
)

var log = commonlog.GetLogger("carbon-ls.server")

// Server is the session orchestrator. It owns the capability flags recorded
// during initialize, the settings cache, and the open-document table, and
// routes every protocol event to the right component.
type Server struct {
	name    string
	version string

	handler protocol.Handler
	catalog *catalog.Catalog

	mu       sync.RWMutex
	caps     Capabilities
	settings *settings.Cache
	docs     map[string]*Document
}

// New creates a server and wires its protocol handlers.
func New(name, version string) *Server {
	s := &Server{
		name:     name,
		version:  version,
		catalog:  catalog.New(),
		settings: settings.NewCache(false),
		docs:     make(map[string]*Document),
	}

	s.handler = protocol.Handler{
		Initialize:                         s.initialize,
		Initialized:                        s.initialized,
		Shutdown:                           s.shutdown,
		SetTrace:                           s.setTrace,
		WorkspaceDidChangeConfiguration:    s.didChangeConfiguration,
		WorkspaceDidChangeWorkspaceFolders: s.didChangeWorkspaceFolders,
		WorkspaceDidChangeWatchedFiles:     s.didChangeWatchedFiles,
		TextDocumentDidOpen:                s.didOpen,
		TextDocumentDidChange:              s.didChange,
		TextDocumentDidClose:               s.didClose,
		TextDocumentCompletion:             s.completion,
		CompletionItemResolve:              s.resolveCompletion,
	}

	return s
}

// Handler exposes the protocol handler for the glsp runtime.
func (s *Server) Handler() *protocol.Handler { return &s.handler }

func (s *Server) capabilities() Capabilities {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.caps
}

func (s *Server) settingsCache() *settings.Cache {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}
