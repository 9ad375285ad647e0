package server

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Capabilities is the subset of client capabilities this server acts on.
// The flags are read once during initialize and never change afterwards.
type Capabilities struct {
	// ScopedConfiguration is support for per-resource
	// workspace/configuration pulls.
	ScopedConfiguration bool

	// WorkspaceFolders is support for multi-root workspaces.
	WorkspaceFolders bool

	// RelatedInformation is support for related locations on diagnostics.
	RelatedInformation bool
}

// DetectCapabilities reads the flags this server cares about from the
// client's declared capability set. Absent sections count as unsupported.
func DetectCapabilities(caps *protocol.ClientCapabilities) Capabilities {
	var out Capabilities
	if ws := caps.Workspace; ws != nil {
		out.ScopedConfiguration = ws.Configuration != nil && *ws.Configuration
		out.WorkspaceFolders = ws.WorkspaceFolders != nil && *ws.WorkspaceFolders
	}
	if td := caps.TextDocument; td != nil {
		if pd := td.PublishDiagnostics; pd != nil {
			out.RelatedInformation = pd.RelatedInformation != nil && *pd.RelatedInformation
		}
	}
	return out
}
