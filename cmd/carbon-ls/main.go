// Package main is the entry point for the carbon-ls language server.
package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	glspserver "github.com/tliron/glsp/server"

	"github.com/carbon-tools/carbon-ls/internal/server"

	_ "github.com/tliron/commonlog/simple"
)

const serverName = "carbon-ls"

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Logging goes to stderr; stdin/stdout carry the protocol.
	commonlog.Configure(1, nil)

	srv := server.New(serverName, version)

	// The runtime owns framing, dispatch, and the stdio transport.
	runtime := glspserver.NewServer(srv.Handler(), serverName, false)
	if err := runtime.RunStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: server terminated: %v\n", err)
		return 1
	}

	return 0
}
