package server

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/carbon-tools/carbon-ls/internal/settings"
)

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	caps := DetectCapabilities(&params.Capabilities)

	s.mu.Lock()
	s.caps = caps
	s.settings = settings.NewCache(caps.ScopedConfiguration)
	s.mu.Unlock()

	log.Info("initializing session",
		"scopedConfiguration", caps.ScopedConfiguration,
		"workspaceFolders", caps.WorkspaceFolders,
		"relatedInformation", caps.RelatedInformation)

	syncKind := protocol.TextDocumentSyncKindIncremental
	openClose := true
	resolveProvider := true
	serverCaps := protocol.ServerCapabilities{
		TextDocumentSync: protocol.TextDocumentSyncOptions{
			OpenClose: &openClose,
			Change:    &syncKind,
		},
		CompletionProvider: &protocol.CompletionOptions{
			ResolveProvider: &resolveProvider,
		},
	}
	if caps.WorkspaceFolders {
		supported := true
		serverCaps.Workspace = &protocol.ServerCapabilitiesWorkspace{
			WorkspaceFolders: &protocol.WorkspaceFoldersServerCapabilities{
				Supported: &supported,
			},
		}
	}

	return protocol.InitializeResult{
		Capabilities: serverCaps,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    s.name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	caps := s.capabilities()
	if caps.ScopedConfiguration {
		// Register dynamically so configuration pushes reach us.
		ctx.Call(protocol.ServerClientRegisterCapability, &protocol.RegistrationParams{
			Registrations: []protocol.Registration{{
				ID:     "workspace/didChangeConfiguration",
				Method: "workspace/didChangeConfiguration",
			}},
		}, nil)
	}
	if caps.WorkspaceFolders {
		log.Info("listening for workspace folder changes")
	}
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}
