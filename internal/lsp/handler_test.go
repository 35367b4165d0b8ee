package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Neugomonyy/jasy/internal/lsp"
)

func writeFixture(t *testing.T, source string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.js")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644), "Failed to write fixture")

	return "file://" + filepath.ToSlash(path)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewJasyHandler()

	uri := writeFixture(t, "var total = 0x10;\ntotal += 2;\n// sum\nvar msg = \"done\";\n")

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 11, "Unexpected number of semantic tokens")

	assertToken(t, &decoded[0], 1, 1, 3, "keyword", nil)
	assertToken(t, &decoded[1], 1, 5, 5, "variable", nil)
	assertToken(t, &decoded[2], 1, 11, 1, "operator", nil)
	assertToken(t, &decoded[3], 1, 13, 4, "number", nil)
	assertToken(t, &decoded[4], 2, 1, 5, "variable", nil)
	assertToken(t, &decoded[5], 2, 7, 2, "operator", nil)
	assertToken(t, &decoded[6], 2, 10, 1, "number", nil)
	assertToken(t, &decoded[7], 4, 1, 3, "keyword", nil)
	assertToken(t, &decoded[8], 4, 5, 3, "variable", nil)
	assertToken(t, &decoded[9], 4, 9, 1, "operator", nil)
	assertToken(t, &decoded[10], 4, 11, 6, "string", nil)
}

func TestTextDocumentSemanticTokensRegex(t *testing.T) {
	handler := lsp.NewJasyHandler()

	uri := writeFixture(t, "var re = /ab+c/gi;\n")

	tokens, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 4)

	assertToken(t, &decoded[0], 1, 1, 3, "keyword", nil)
	assertToken(t, &decoded[1], 1, 5, 2, "variable", nil)
	assertToken(t, &decoded[2], 1, 8, 1, "operator", nil)
	assertToken(t, &decoded[3], 1, 10, 8, "regexp", nil)
}

func TestTextDocumentCompletion(t *testing.T) {
	handler := lsp.NewJasyHandler()

	result, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok, "Expected a CompletionList")
	require.Len(t, list.Items, 33, "All reserved words should be offered")

	labels := make(map[string]bool)
	for _, item := range list.Items {
		labels[item.Label] = true
		require.Equal(t, protocol.CompletionItemKindKeyword, *item.Kind)
	}
	require.True(t, labels["function"])
	require.True(t, labels["typeof"])
	require.True(t, labels["instanceof"])
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
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
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
