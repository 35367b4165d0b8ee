package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Neugomonyy/jasy/internal/tokenizer"
)

// ConvertScanError transforms a lexical error into LSP diagnostics for
// IDE display. The tokenizer reports a line but no column, so the whole
// offending line is marked.
func ConvertScanError(source string, scanErr *tokenizer.ScanError) []protocol.Diagnostic {
	if scanErr == nil {
		return nil
	}

	line := scanErr.Line
	if line < 1 {
		line = 1
	}

	lineLen := 1
	lines := strings.Split(source, "\n")
	if line <= len(lines) {
		lineLen = len(lines[line-1])
		if lineLen < 1 {
			lineLen = 1
		}
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(line - 1),
				Character: 0,
			},
			End: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(lineLen),
			},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("jasy-tokenizer"),
		Code:     &protocol.IntegerOrString{Value: scanErr.Code},
		Message:  scanErr.Message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
