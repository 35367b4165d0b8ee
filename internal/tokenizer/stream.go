package tokenizer

// The mode flags exist for a real parser to toggle at grammar-determined
// points. The token-dump surfaces (CLI, REPL, LSP) have no parser, so they
// drive the flags with the usual standalone heuristic: after a token that
// can end an expression, a "/" is division; everywhere else it opens a
// regex literal.

// endsExpression reports whether a token of this type can be the last
// token of a complete expression.
func endsExpression(tt TokenType) bool {
	switch tt {
	case Identifier, Number, String, RegExp,
		True, False, Null, This,
		RightParen, RightBracket, RightCurly,
		Increment, Decrement:
		return true
	}
	return false
}

// ScanAll tokenizes an entire source text with the operator-context
// heuristic and returns every token, ending with the end-of-input token.
// On a lexical error the tokens scanned so far are returned alongside it.
func ScanAll(source, filename string) ([]Token, error) {
	t := NewTokenizer(source, filename)

	var out []Token
	for {
		tt, err := t.Get()
		if err != nil {
			return out, err
		}
		out = append(out, *t.Current())
		if tt == End {
			return out, nil
		}
		t.ScanOperand = !endsExpression(tt)
	}
}
