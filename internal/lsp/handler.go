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

	"neksis/internal/analysis"
	"neksis/internal/ast"
	"neksis/internal/parser"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"function",
	"variable",
	"parameter",
	"keyword",
	"number",
	"operator",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
}

// NeksisHandler implements the LSP server handlers for the Neksis language
type NeksisHandler struct {
	mu       sync.RWMutex
	content  map[string]string
	programs map[string]*ast.Program
}

// NewNeksisHandler creates and returns a new NeksisHandler instance
func NewNeksisHandler() *NeksisHandler {
	return &NeksisHandler{
		content:  make(map[string]string),
		programs: make(map[string]*ast.Program),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *NeksisHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *NeksisHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Neksis LSP initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *NeksisHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Neksis LSP shutdown")
	return nil
}

// SetTrace adjusts the protocol trace verbosity requested by the client
func (h *NeksisHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *NeksisHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateDocument(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// The server advertises full sync, so the last whole-document change wins.
func (h *NeksisHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	text, ok := wholeDocumentText(params.ContentChanges)
	if !ok {
		return nil
	}

	diagnostics, err := h.updateDocument(params.TextDocument.URI, text)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *NeksisHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.programs, path)

	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *NeksisHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	program, err := h.getOrLoadProgram(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	// Walk the AST and collect semantic tokens
	tokens := collectSemanticTokens(program)

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

		// Append the encoded semantic token entry
		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// getOrLoadProgram returns the cached program for a document, falling back to
// a disk read when the document has not been opened through the protocol.
func (h *NeksisHandler) getOrLoadProgram(ctx *glsp.Context, rawURI protocol.DocumentUri) (*ast.Program, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.RLock()
	program, ok := h.programs[path]
	h.mu.RUnlock()

	if ok {
		return program, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	diagnostics, err := h.updateDocument(rawURI, string(content))
	if err != nil {
		return nil, err
	}

	sendDiagnosticNotification(ctx, rawURI, diagnostics)

	h.mu.RLock()
	program = h.programs[path]
	h.mu.RUnlock()

	return program, nil
}

// updateDocument reparses a document and returns the diagnostics to publish:
// parse errors when the text is broken, opportunity hints otherwise. On parse
// failure the previously cached program is kept, so stale semantic tokens
// remain available while the buffer is mid-edit.
func (h *NeksisHandler) updateDocument(rawURI protocol.DocumentUri, text string) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	program, parseErrors := parser.ParseSource(path, text)
	if len(parseErrors) > 0 {
		return ConvertParseErrors(parseErrors), nil
	}

	h.mu.Lock()
	h.content[path] = text
	h.programs[path] = program
	h.mu.Unlock()

	report := analysis.NewAnalyzer().Analyze(program)

	return ConvertOpportunities(report.Opportunities), nil
}

// wholeDocumentText extracts the most recent whole-document text from a
// didChange notification's content changes.
func wholeDocumentText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				return change.Text, true
			}
		}
	}

	return "", false
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
	if ctx == nil || ctx.Notify == nil {
		return
	}

	if diagnostics == nil {
		// An empty array clears stale diagnostics on the client
		diagnostics = []protocol.Diagnostic{}
	}

	diagnosticsJSON, err := json.Marshal(diagnostics)
	if err != nil {
		log.Println("Failed to marshal diagnostics:", err)
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
