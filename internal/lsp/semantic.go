package lsp

import (
	"strings"

	"github.com/Neugomonyy/jasy/internal/tokenizer"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based positions.
// TokenType is an index into SemanticTokenTypes.
// TokenModifiers is a bitmask based on SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens maps a scanned token stream to LSP semantic
// tokens. Punctuation gets no highlight, and comments are left to the
// client's syntax grammar: they ride on the following token without
// positions of their own.
func collectSemanticTokens(source string, tokens []tokenizer.Token) []SemanticToken {
	var out []SemanticToken

	for _, tok := range tokens {
		name, ok := semanticTypeFor(tok.Type)
		if !ok {
			continue
		}
		out = append(out, SemanticToken{
			Line:           uint32(tok.Line - 1),
			StartChar:      uint32(tokenizer.Column(source, tok.Start) - 1),
			Length:         uint32(clampToLine(source, tok.Start, tok.End)),
			TokenType:      indexOf(name, SemanticTokenTypes),
			TokenModifiers: 0,
		})
	}

	return out
}

func semanticTypeFor(tt tokenizer.TokenType) (string, bool) {
	switch {
	case tt >= tokenizer.Break && tt <= tokenizer.With:
		return "keyword", true
	case tt == tokenizer.Identifier:
		return "variable", true
	case tt == tokenizer.Number:
		return "number", true
	case tt == tokenizer.String:
		return "string", true
	case tt == tokenizer.RegExp:
		return "regexp", true
	case tt >= tokenizer.Or && tt <= tokenizer.BitwiseNot:
		return "operator", true
	}
	return "", false
}

// clampToLine limits a token's highlight length to its first source line;
// a semantic token entry cannot span line breaks.
func clampToLine(source string, start, end int) int {
	if nl := strings.IndexByte(source[start:end], '\n'); nl >= 0 {
		return nl
	}
	return end - start
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
