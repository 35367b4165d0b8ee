package tokenizer

import "fmt"

type TokenType int

const (
	// Special tokens
	End TokenType = iota
	Newline

	// Operators and punctuators
	Semicolon
	Comma
	Hook
	Colon
	Or
	And
	BitwiseOr
	BitwiseXor
	BitwiseAnd
	StrictEq
	Eq
	Assign
	StrictNe
	Ne
	Lsh
	Le
	Lt
	Ursh
	Rsh
	Ge
	Gt
	Increment
	Decrement
	Plus
	Minus
	Mul
	Div
	Mod
	Not
	BitwiseNot
	Dot
	LeftBracket
	RightBracket
	LeftCurly
	RightCurly
	LeftParen
	RightParen

	// Identifiers + literals
	Identifier
	Number
	String
	RegExp

	// Keywords
	Break
	Case
	Catch
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Enum
	False
	Finally
	For
	Function
	If
	In
	Instanceof
	Let
	New
	Null
	Return
	Switch
	This
	Throw
	True
	Try
	Typeof
	Var
	Void
	Yield
	While
	With
)

var tokenNames = [...]string{
	End:          "end",
	Newline:      "newline",
	Semicolon:    "semicolon",
	Comma:        "comma",
	Hook:         "hook",
	Colon:        "colon",
	Or:           "or",
	And:          "and",
	BitwiseOr:    "bitwise_or",
	BitwiseXor:   "bitwise_xor",
	BitwiseAnd:   "bitwise_and",
	StrictEq:     "strict_eq",
	Eq:           "eq",
	Assign:       "assign",
	StrictNe:     "strict_ne",
	Ne:           "ne",
	Lsh:          "lsh",
	Le:           "le",
	Lt:           "lt",
	Ursh:         "ursh",
	Rsh:          "rsh",
	Ge:           "ge",
	Gt:           "gt",
	Increment:    "increment",
	Decrement:    "decrement",
	Plus:         "plus",
	Minus:        "minus",
	Mul:          "mul",
	Div:          "div",
	Mod:          "mod",
	Not:          "not",
	BitwiseNot:   "bitwise_not",
	Dot:          "dot",
	LeftBracket:  "left_bracket",
	RightBracket: "right_bracket",
	LeftCurly:    "left_curly",
	RightCurly:   "right_curly",
	LeftParen:    "left_paren",
	RightParen:   "right_paren",
	Identifier:   "identifier",
	Number:       "number",
	String:       "string",
	RegExp:       "regexp",
	Break:        "break",
	Case:         "case",
	Catch:        "catch",
	Const:        "const",
	Continue:     "continue",
	Debugger:     "debugger",
	Default:      "default",
	Delete:       "delete",
	Do:           "do",
	Else:         "else",
	Enum:         "enum",
	False:        "false",
	Finally:      "finally",
	For:          "for",
	Function:     "function",
	If:           "if",
	In:           "in",
	Instanceof:   "instanceof",
	Let:          "let",
	New:          "new",
	Null:         "null",
	Return:       "return",
	Switch:       "switch",
	This:         "this",
	Throw:        "throw",
	True:         "true",
	Try:          "try",
	Typeof:       "typeof",
	Var:          "var",
	Void:         "void",
	Yield:        "yield",
	While:        "while",
	With:         "with",
}

func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("token(%d)", int(tt))
}

// Literal sub-kinds stored in Token.Variant. Regex literals store their
// flag letters there instead.
const (
	VariantInt    = "int"
	VariantFloat  = "float"
	VariantSingle = "single"
	VariantDouble = "double"
)

// Token is one classified unit of lexical input. All fields are always
// present; fields that do not apply to a token's type are left at their
// zero value so consumers can rely on a stable shape.
type Token struct {
	Type     TokenType
	Value    string    // decoded string, regex pattern body, or raw operator text
	Number   float64   // parsed numeric value when Type == Number
	Variant  string    // int/float, single/double, or regex flags
	AssignOp TokenType // base operator when Type == Assign, e.g. Plus for "+="
	Start    int       // byte offset of the first character
	End      int       // byte offset just past the last character
	Line     int       // 1-based line number of Start
	Comments []string  // raw comment texts skipped immediately before this token
}
