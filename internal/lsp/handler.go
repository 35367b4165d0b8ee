package lsp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Neugomonyy/jasy/internal/tokenizer"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"string",
	"regexp",
	"operator",
	"comment",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
	"deprecated",
}

// JasyHandler implements the LSP server handlers for JavaScript sources,
// backed by the tokenizer rather than a full parse.
type JasyHandler struct {
	mu      sync.RWMutex
	content map[string]string
	tokens  map[string][]tokenizer.Token
}

// NewJasyHandler creates and returns a new JasyHandler instance
func NewJasyHandler() *JasyHandler {
	return &JasyHandler{
		content: make(map[string]string),
		tokens:  make(map[string][]tokenizer.Token),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *JasyHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *JasyHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("jasy LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *JasyHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("jasy LSP Shutdown")
	return nil
}

// SetTrace handles trace level changes requested by the client
func (h *JasyHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *JasyHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateTokens(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to tokenize document: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *JasyHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.tokens, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *JasyHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateTokens(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to tokenize document: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion offers the reserved words as completion items
func (h *JasyHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	kind := protocol.CompletionItemKindKeyword

	var items []protocol.CompletionItem
	for _, word := range tokenizer.Keywords() {
		items = append(items, protocol.CompletionItem{
			Label: word,
			Kind:  &kind,
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *JasyHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	source, scanned, err := h.getOrUpdateTokens(ctx, path, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(source, scanned)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

func (h *JasyHandler) getOrUpdateTokens(ctx *glsp.Context, path string, rawURI protocol.DocumentUri) (string, []tokenizer.Token, error) {
	h.mu.RLock()
	source, ok := h.content[path]
	scanned := h.tokens[path]
	h.mu.RUnlock()

	if !ok {
		diagnostics, err := h.updateTokens(rawURI)
		if err != nil {
			return "", nil, err
		}

		h.mu.RLock()
		source = h.content[path]
		scanned = h.tokens[path]
		h.mu.RUnlock()

		if len(diagnostics) > 0 {
			sendDiagnosticNotification(ctx, rawURI, diagnostics)
		}
	}

	return source, scanned, nil
}

// updateTokens re-reads a document from disk, re-tokenizes it and caches
// the result, keeping whatever tokens were scanned before a lexical error.
func (h *JasyHandler) updateTokens(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	source := string(content)
	scanned, scanErr := tokenizer.ScanAll(source, path)

	var diagnostics []protocol.Diagnostic
	if scanErr != nil {
		if serr, ok := scanErr.(*tokenizer.ScanError); ok {
			diagnostics = ConvertScanError(source, serr)
		} else {
			return nil, scanErr
		}
	}

	h.mu.Lock()
	h.content[path] = source
	h.tokens[path] = scanned
	h.mu.Unlock()

	return diagnostics, nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	diagnosticsJSON, err := json.Marshal(diagnostics)
	if err != nil {
		fmt.Println("Failed to marshal diagnostics:", err)
		return
	}

	log.Println("Sending diagnostics:", string(diagnosticsJSON))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
