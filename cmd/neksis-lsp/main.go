// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"neksis/internal/lsp"
)

const lsName = "neksis" // Name identifier for the language server

var (
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	// Create a new instance of the NeksisHandler (the language-specific handler)
	neksisHandler := lsp.NewNeksisHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     neksisHandler.Initialize,
		Initialized:                    neksisHandler.Initialized,
		Shutdown:                       neksisHandler.Shutdown,
		SetTrace:                       neksisHandler.SetTrace,
		TextDocumentDidOpen:            neksisHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           neksisHandler.TextDocumentDidClose,
		TextDocumentDidChange:          neksisHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: neksisHandler.TextDocumentSemanticTokensFull,
	}

	// Create a new GLSP server instance
	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Neksis LSP server...")

	// Serve over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Neksis LSP server:", err)
		os.Exit(1)
	}
}
