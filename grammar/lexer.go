// Package grammar carries a declarative, regex-driven mirror of the
// lexical grammar the hand-written tokenizer implements. It is used to
// cross-check token boundaries in tests and as machine-readable
// documentation of the literal patterns. Regex literals are absent on
// purpose: deciding "/" needs the parser-driven operand context, which a
// stateless rule set cannot express.
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var ScriptLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "BlockComment", Pattern: `/\*(?s:.*?)\*/`, Action: nil},
		{Name: "LineComment", Pattern: `//[^\n]*`, Action: nil},

		// Floating point literals must win over bare integers so 1.5,
		// .5 and 1e10 are not mis-split.
		{Name: "Float", Pattern: `\d+\.\d*(?:[eE][-+]?\d+)?|\d+(?:\.\d*)?[eE][-+]?\d+|\.\d+(?:[eE][-+]?\d+)?`, Action: nil},

		// Hex, legacy octal and decimal integers
		{Name: "Integer", Pattern: `0[xX][0-9a-fA-F]+|0[0-7]*|\d+`, Action: nil},

		// Keywords and identifiers share one shape
		{Name: "Ident", Pattern: `[$_a-zA-Z][$_a-zA-Z0-9]*`, Action: nil},

		// Both string quoting styles, backslash escapes included
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`, Action: nil},

		// Operators and punctuators, longest alternatives first
		{Name: "Operator", Pattern: `>>>=|===|!==|>>>|<<=|>>=|\|\||&&|\+\+|--|[-+*/%&|^]=|==|!=|<=|>=|<<|>>|[-+*/%&|^!~<>=?:;,.[\](){}]`, Action: nil},

		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
