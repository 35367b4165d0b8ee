// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/Neugomonyy/jasy/internal/lsp"
)

const lsName = "jasy" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	jasyHandler := lsp.NewJasyHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     jasyHandler.Initialize,
		Initialized:                    jasyHandler.Initialized,
		Shutdown:                       jasyHandler.Shutdown,
		SetTrace:                       jasyHandler.SetTrace,
		TextDocumentDidOpen:            jasyHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           jasyHandler.TextDocumentDidClose,
		TextDocumentDidChange:          jasyHandler.TextDocumentDidChange,
		TextDocumentCompletion:         jasyHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: jasyHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting jasy LSP server...")

	// Serve over standard input/output, the transport most editors use
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting jasy LSP server:", err)
		os.Exit(1)
	}
}
