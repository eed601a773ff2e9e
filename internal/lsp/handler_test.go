package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"neksis/internal/analysis"
	"neksis/internal/ast"
	"neksis/internal/lsp"
	"neksis/internal/parser"
)

// notifyCapture builds a glsp context whose Notify callback records every
// published diagnostics batch.
func notifyCapture(published *[]protocol.PublishDiagnosticsParams) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if p, ok := params.(*protocol.PublishDiagnosticsParams); ok {
				*published = append(*published, *p)
			}
		},
	}
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	handler := lsp.NewNeksisHandler()

	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	initResult, ok := result.(*protocol.InitializeResult)
	require.True(t, ok, "Initialize should return *protocol.InitializeResult")

	require.NotNil(t, initResult.Capabilities.TextDocumentSync)
	require.NotNil(t, initResult.Capabilities.SemanticTokensProvider)

	tokensProvider, ok := initResult.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, tokensProvider.Legend.TokenTypes)
	assert.Equal(t, lsp.SemanticTokenModifiers, tokensProvider.Legend.TokenModifiers)
}

func TestDidOpenPublishesOpportunityHints(t *testing.T) {
	source := `module demo;

fn tiny(x: Int) -> Int {
    x + 1
}

fn main() -> Int {
    let mut i = 0;
    while i < 10 {
        i = i + 1;
    }
    tiny(i)
}
`

	var published []protocol.PublishDiagnosticsParams
	ctx := notifyCapture(&published)
	handler := lsp.NewNeksisHandler()
	uri := "file:///virtual/demo.nx"

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: source},
	})
	require.NoError(t, err)
	require.Len(t, published, 1)

	diags := published[0].Diagnostics
	require.Len(t, diags, 2, "expected one inlining hint and one loop hint")

	inlining := diags[0]
	require.NotNil(t, inlining.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityHint, *inlining.Severity)
	require.NotNil(t, inlining.Code)
	assert.Equal(t, "N0801", inlining.Code.Value)
	assert.Equal(t, "neksis-analyzer", *inlining.Source)
	assert.Contains(t, inlining.Message, "demo::tiny")
	assert.Contains(t, inlining.Message, "hint:")
	assert.Equal(t, uint32(2), inlining.Range.Start.Line)
	assert.Equal(t, uint32(0), inlining.Range.Start.Character)

	loop := diags[1]
	assert.Equal(t, protocol.DiagnosticSeverityHint, *loop.Severity)
	assert.Equal(t, "N0802", loop.Code.Value)
	assert.Contains(t, loop.Message, "unrolling")
	assert.Equal(t, uint32(8), loop.Range.Start.Line)
	assert.Equal(t, uint32(4), loop.Range.Start.Character)
}

func TestDidOpenPublishesParseErrors(t *testing.T) {
	var published []protocol.PublishDiagnosticsParams
	ctx := notifyCapture(&published)
	handler := lsp.NewNeksisHandler()
	uri := "file:///virtual/broken.nx"

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "fn broken( {\n"},
	})
	require.NoError(t, err)
	require.Len(t, published, 1)

	diags := published[0].Diagnostics
	require.NotEmpty(t, diags)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	assert.Equal(t, "N0100", diags[0].Code.Value)
	assert.Equal(t, "neksis-parser", *diags[0].Source)
}

func TestDidChangeReparsesWholeDocument(t *testing.T) {
	var published []protocol.PublishDiagnosticsParams
	ctx := notifyCapture(&published)
	handler := lsp.NewNeksisHandler()
	uri := "file:///virtual/edit.nx"

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "fn broken( {\n"},
	})
	require.NoError(t, err)
	require.Len(t, published, 1)
	require.NotEmpty(t, published[0].Diagnostics)

	err = handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "fn main() -> Int { 0 }\n"},
		},
	})
	require.NoError(t, err)
	require.Len(t, published, 2)

	// The fixed document has no anchored opportunities, so the second batch
	// clears the earlier parse error.
	assert.Empty(t, published[1].Diagnostics)
}

func TestDidCloseDropsDocument(t *testing.T) {
	var published []protocol.PublishDiagnosticsParams
	ctx := notifyCapture(&published)
	handler := lsp.NewNeksisHandler()

	// The file exists only as an editor buffer, never on disk.
	uri := "file:///virtual/buffer-only.nx"

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "fn main() -> Int { 0 }\n"},
	})
	require.NoError(t, err)

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint32{
		0, 3, 4, 2, 1, // "main" function declaration
		0, 10, 3, 1, 0, // "Int" return type
	}, tokens.Data)

	err = handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	// With the cache dropped the handler falls back to disk and fails.
	_, err = handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.Error(t, err)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	source := "module demo;\n\nfn add(a: Int, b: Int) -> Int {\n    let sum = a + b;\n    sum\n}\n"

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.nx")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	handler := lsp.NewNeksisHandler()
	var published []protocol.PublishDiagnosticsParams
	ctx := notifyCapture(&published)

	uri := "file://" + filepath.ToSlash(path)
	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 11)

	assertToken(t, &decoded[0], 1, 8, 4, "namespace", []string{"declaration"})
	assertToken(t, &decoded[1], 3, 4, 3, "function", []string{"declaration"})
	assertToken(t, &decoded[2], 3, 8, 1, "parameter", nil)
	assertToken(t, &decoded[3], 3, 11, 3, "type", nil)
	assertToken(t, &decoded[4], 3, 16, 1, "parameter", nil)
	assertToken(t, &decoded[5], 3, 19, 3, "type", nil)
	assertToken(t, &decoded[6], 3, 27, 3, "type", nil)
	assertToken(t, &decoded[7], 4, 9, 3, "variable", []string{"declaration", "readonly"})
	assertToken(t, &decoded[8], 4, 15, 1, "variable", nil)
	assertToken(t, &decoded[9], 4, 19, 1, "variable", nil)
	assertToken(t, &decoded[10], 5, 5, 3, "variable", nil)
}

func TestConvertParseErrorsUsesZeroBasedPositions(t *testing.T) {
	parseErr := parser.ParseError{
		Position: ast.Position{Filename: "test.nx", Line: 3, Column: 7},
		Message:  "unexpected token",
	}

	diags := lsp.ConvertParseErrors([]parser.ParseError{parseErr})
	require.Len(t, diags, 1)

	assert.Equal(t, uint32(2), diags[0].Range.Start.Line)
	assert.Equal(t, uint32(6), diags[0].Range.Start.Character)
	assert.Equal(t, uint32(2), diags[0].Range.End.Line)
	assert.Greater(t, diags[0].Range.End.Character, diags[0].Range.Start.Character)
	assert.Equal(t, "unexpected token", diags[0].Message)
}

func TestConvertOpportunitiesSkipsUnanchored(t *testing.T) {
	opportunities := []*analysis.Opportunity{
		{
			Kind:        analysis.OpportunityDeadCode,
			Description: "program may contain unreachable or unused code",
			Hint:        "enable dead code elimination to prune unused functions",
		},
		{
			Kind:        analysis.OpportunityLoopUnrolling,
			Pos:         ast.Position{Filename: "test.nx", Line: 2, Column: 5},
			Description: "while loop may benefit from unrolling",
			Hint:        "unroll small fixed-count loops",
		},
	}

	diags := lsp.ConvertOpportunities(opportunities)
	require.Len(t, diags, 1, "position-less suggestions should be dropped")
	assert.Equal(t, "N0802", diags[0].Code.Value)
	assert.Contains(t, diags[0].Message, "hint: unroll small fixed-count loops")
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // back to 1-based for readable assertions
			Char:      char + 1,
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
