package tokenizer

import "sort"

var keywords = map[string]TokenType{
	"break":      Break,
	"case":       Case,
	"catch":      Catch,
	"const":      Const,
	"continue":   Continue,
	"debugger":   Debugger,
	"default":    Default,
	"delete":     Delete,
	"do":         Do,
	"else":       Else,
	"enum":       Enum,
	"false":      False,
	"finally":    Finally,
	"for":        For,
	"function":   Function,
	"if":         If,
	"in":         In,
	"instanceof": Instanceof,
	"let":        Let,
	"new":        New,
	"null":       Null,
	"return":     Return,
	"switch":     Switch,
	"this":       This,
	"throw":      Throw,
	"true":       True,
	"try":        Try,
	"typeof":     Typeof,
	"var":        Var,
	"void":       Void,
	"yield":      Yield,
	"while":      While,
	"with":       With,
}

// LookupIdent checks the keyword table for an identifier-shaped run.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return Identifier
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for word := range keywords {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}
