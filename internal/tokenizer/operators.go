package tokenizer

// Operator and punctuator table. Because the tokenizer never backtracks,
// every prefix of a valid symbol must itself be a valid symbol (e.g. "!=="
// is fine since "!=" and "!" are both tokens), so greedy longest-first
// matching is unambiguous. Newline is handled separately and is not listed.
var operators = map[string]TokenType{
	";":   Semicolon,
	",":   Comma,
	"?":   Hook,
	":":   Colon,
	"||":  Or,
	"&&":  And,
	"|":   BitwiseOr,
	"^":   BitwiseXor,
	"&":   BitwiseAnd,
	"===": StrictEq,
	"==":  Eq,
	"=":   Assign,
	"!==": StrictNe,
	"!=":  Ne,
	"<<":  Lsh,
	"<=":  Le,
	"<":   Lt,
	">>>": Ursh,
	">>":  Rsh,
	">=":  Ge,
	">":   Gt,
	"++":  Increment,
	"--":  Decrement,
	"+":   Plus,
	"-":   Minus,
	"*":   Mul,
	"/":   Div,
	"%":   Mod,
	"!":   Not,
	"~":   BitwiseNot,
	".":   Dot,
	"[":   LeftBracket,
	"]":   RightBracket,
	"{":   LeftCurly,
	"}":   RightCurly,
	"(":   LeftParen,
	")":   RightParen,
}

// maxOperatorLen is the longest symbol in the table (">>>").
const maxOperatorLen = 3

// Operators that combine with a trailing "=" into a compound assignment.
var assignableOps = map[TokenType]bool{
	BitwiseOr:  true,
	BitwiseXor: true,
	BitwiseAnd: true,
	Lsh:        true,
	Rsh:        true,
	Ursh:       true,
	Plus:       true,
	Minus:      true,
	Mul:        true,
	Div:        true,
	Mod:        true,
}
