package tokenizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Neugomonyy/jasy/internal/errors"
)

// ScanError is a lexical error with enough position data for the driver
// to render a diagnostic. It aborts the current scan; a Tokenizer that has
// returned a ScanError must not be used further.
type ScanError struct {
	Code     string
	Message  string
	Filename string
	Line     int
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s:%d: %s [%s]", e.Filename, e.Line, e.Message, e.Code)
}

// Tokenizer scans one in-memory source text into typed, positioned tokens.
// It keeps a 4-slot ring buffer of recent tokens so the driving parser can
// peek and push back without re-scanning. A Tokenizer is single-caller
// state: it is not safe for concurrent use.
//
// ScanNewlines and ScanOperand are toggled by the parser between calls.
// ScanNewlines makes line breaks significant tokens instead of skippable
// whitespace. ScanOperand tells the tokenizer an expression is expected
// next, so a leading "/" opens a regex literal rather than division.
type Tokenizer struct {
	source   string
	filename string

	cursor int
	line   int

	tokens     [4]Token
	tokenIndex int // slot of the most recently consumed token
	lookahead  int // buffered-but-unconsumed tokens, 0..3

	ScanNewlines bool
	ScanOperand  bool
}

func NewTokenizer(source, filename string) *Tokenizer {
	return &Tokenizer{
		source:      source,
		filename:    filename,
		line:        1,
		ScanOperand: true,
	}
}

// Current returns the most recently consumed token. The returned pointer
// aliases a ring buffer slot and stays valid only until the buffer wraps.
func (t *Tokenizer) Current() *Token {
	return &t.tokens[t.tokenIndex]
}

// Done reports whether the next token is the end-of-input marker.
func (t *Tokenizer) Done() (bool, error) {
	tt, err := t.Peek()
	if err != nil {
		return false, err
	}
	return tt == End, nil
}

// Get consumes and returns the type of the next token. Buffered lookahead
// is replayed without re-scanning; transient newline tokens left over from
// a speculative peek are skipped when ScanNewlines is off.
func (t *Tokenizer) Get() (TokenType, error) {
	for t.lookahead > 0 {
		t.lookahead--
		t.tokenIndex = (t.tokenIndex + 1) & 3
		tok := &t.tokens[t.tokenIndex]
		if tok.Type != Newline || t.ScanNewlines {
			return tok.Type, nil
		}
	}

	comments, err := t.skip()
	if err != nil {
		return End, err
	}

	t.tokenIndex = (t.tokenIndex + 1) & 3
	tok := &t.tokens[t.tokenIndex]
	*tok = Token{Line: t.line, Comments: comments}

	if t.cursor >= len(t.source) {
		tok.Type = End
		tok.Start = len(t.source)
		tok.End = len(t.source)
		return End, nil
	}

	tok.Start = t.cursor

	ch := t.source[t.cursor]
	switch {
	case isIdentStart(ch):
		t.lexIdent(tok)
	case t.ScanOperand && ch == '/':
		err = t.lexRegExp(tok)
	case ch == '.' && t.cursor+1 < len(t.source) && isDigit(t.source[t.cursor+1]):
		err = t.lexFloat(tok)
	case ch >= '1' && ch <= '9':
		err = t.lexNumber(tok)
	case ch == '0':
		err = t.lexZeroNumber(tok)
	case ch == '"' || ch == '\'':
		err = t.lexString(tok)
	case ch == '\n':
		// Reachable only with ScanNewlines set; otherwise skip consumed it.
		tok.Type = Newline
		tok.Value = "\n"
		t.cursor++
		t.line++
	default:
		err = t.lexOp(tok)
	}
	if err != nil {
		return End, err
	}

	tok.End = t.cursor
	return tok.Type, nil
}

// Unget pushes the current token back onto the lookahead buffer. More than
// 3 pending tokens means the caller is broken, not the source text: the
// grammar never needs deeper lookahead, so this panics instead of
// returning an error.
func (t *Tokenizer) Unget() {
	t.lookahead++
	if t.lookahead == 4 {
		panic(&ScanError{
			Code:     errors.ErrorLookaheadOverflow,
			Message:  "too much lookahead",
			Filename: t.filename,
			Line:     t.line,
		})
	}
	t.tokenIndex = (t.tokenIndex + 3) & 3
}

// Match consumes the next token if it has the wanted type, otherwise
// pushes it back.
func (t *Tokenizer) Match(tt TokenType) (bool, error) {
	got, err := t.Get()
	if err != nil {
		return false, err
	}
	if got == tt {
		return true, nil
	}
	t.Unget()
	return false, nil
}

// MustMatch is Match with a "missing token" diagnostic on failure.
func (t *Tokenizer) MustMatch(tt TokenType) (*Token, error) {
	ok, err := t.Match(tt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, t.scanError(errors.ErrorMissingExpectedToken, "Missing "+tt.String())
	}
	return t.Current(), nil
}

// Peek returns the type of the next token without consuming it. With
// ScanNewlines set and a buffered token on a different line than the
// tokenizer's current one, Newline is reported instead of the buffered
// token's real type so the parser can detect an intervening line break.
func (t *Tokenizer) Peek() (TokenType, error) {
	if t.lookahead > 0 {
		next := &t.tokens[(t.tokenIndex+t.lookahead)&3]
		if t.ScanNewlines && next.Line != t.line {
			return Newline, nil
		}
		return next.Type, nil
	}

	tt, err := t.Get()
	if err != nil {
		return End, err
	}
	t.Unget()
	return tt, nil
}

// PeekOnSameLine peeks with newline tokens forced significant, so the
// caller learns whether the next token sits on the current source line.
func (t *Tokenizer) PeekOnSameLine() (TokenType, error) {
	saved := t.ScanNewlines
	t.ScanNewlines = true
	tt, err := t.Peek()
	t.ScanNewlines = saved
	return tt, err
}

// skip consumes insignificant whitespace and comments before a fresh
// token, returning the raw comment texts in order.
func (t *Tokenizer) skip() ([]string, error) {
	var comments []string
	for {
		for t.cursor < len(t.source) && t.isSkippable(t.source[t.cursor]) {
			if t.source[t.cursor] == '\n' {
				t.line++
			}
			t.cursor++
		}

		if t.cursor+1 < len(t.source) && t.source[t.cursor] == '/' {
			switch t.source[t.cursor+1] {
			case '*':
				text, err := t.skipBlockComment()
				if err != nil {
					return nil, err
				}
				comments = append(comments, text)
				continue
			case '/':
				comments = append(comments, t.skipLineComment())
				continue
			}
		}

		return comments, nil
	}
}

func (t *Tokenizer) isSkippable(ch byte) bool {
	if ch == ' ' || ch == '\t' {
		return true
	}
	if t.ScanNewlines {
		return false
	}
	return ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func (t *Tokenizer) skipBlockComment() (string, error) {
	start := t.cursor
	t.cursor += 2
	for t.cursor < len(t.source) {
		if t.source[t.cursor] == '*' && t.cursor+1 < len(t.source) && t.source[t.cursor+1] == '/' {
			t.cursor += 2
			return t.source[start:t.cursor], nil
		}
		if t.source[t.cursor] == '\n' {
			t.line++
		}
		t.cursor++
	}
	return "", t.scanError(errors.ErrorUnterminatedComment, "Unterminated comment")
}

func (t *Tokenizer) skipLineComment() string {
	start := t.cursor
	t.cursor += 2
	for t.cursor < len(t.source) && t.source[t.cursor] != '\n' {
		t.cursor++
	}
	return t.source[start:t.cursor]
}

func (t *Tokenizer) lexIdent(tok *Token) {
	for t.cursor < len(t.source) && isIdentPart(t.source[t.cursor]) {
		t.cursor++
	}
	text := t.source[tok.Start:t.cursor]
	tok.Type = LookupIdent(text)
	tok.Value = text
}

// lexExponent consumes an exponent part if one starts at the cursor and
// reports whether it did.
func (t *Tokenizer) lexExponent() (bool, error) {
	if t.cursor >= len(t.source) {
		return false, nil
	}
	ch := t.source[t.cursor]
	if ch != 'e' && ch != 'E' {
		return false, nil
	}

	t.cursor++
	if t.cursor < len(t.source) && (t.source[t.cursor] == '+' || t.source[t.cursor] == '-') {
		t.cursor++
	}
	if t.cursor >= len(t.source) || !isDigit(t.source[t.cursor]) {
		return false, t.scanError(errors.ErrorMissingExponentDigits, "Missing exponent")
	}
	for t.cursor < len(t.source) && isDigit(t.source[t.cursor]) {
		t.cursor++
	}
	return true, nil
}

// lexNumber scans a literal starting with a nonzero digit.
func (t *Tokenizer) lexNumber(tok *Token) error {
	for t.cursor < len(t.source) && isDigit(t.source[t.cursor]) {
		t.cursor++
	}

	floating := false
	if t.cursor < len(t.source) && t.source[t.cursor] == '.' {
		floating = true
		t.cursor++
		for t.cursor < len(t.source) && isDigit(t.source[t.cursor]) {
			t.cursor++
		}
	}

	exp, err := t.lexExponent()
	if err != nil {
		return err
	}

	return t.finishNumber(tok, floating || exp)
}

// lexZeroNumber scans a literal starting with "0": a fraction, a hex or
// legacy octal integer, or plain zero (optionally with an exponent, e.g.
// 0E1).
func (t *Tokenizer) lexZeroNumber(tok *Token) error {
	t.cursor++ // the "0"

	if t.cursor < len(t.source) {
		switch ch := t.source[t.cursor]; {
		case ch == '.':
			t.cursor++
			for t.cursor < len(t.source) && isDigit(t.source[t.cursor]) {
				t.cursor++
			}
			if _, err := t.lexExponent(); err != nil {
				return err
			}
			return t.finishNumber(tok, true)

		case (ch == 'x' || ch == 'X') && t.cursor+1 < len(t.source) && isHexDigit(t.source[t.cursor+1]):
			t.cursor += 2
			for t.cursor < len(t.source) && isHexDigit(t.source[t.cursor]) {
				t.cursor++
			}
			return t.finishNumber(tok, false)

		case ch >= '0' && ch <= '7':
			for t.cursor < len(t.source) && t.source[t.cursor] >= '0' && t.source[t.cursor] <= '7' {
				t.cursor++
			}
			return t.finishNumber(tok, false)
		}
	}

	exp, err := t.lexExponent()
	if err != nil {
		return err
	}
	return t.finishNumber(tok, exp)
}

// lexFloat scans a literal of the ".5" shape. The caller has already
// checked that a digit follows the dot.
func (t *Tokenizer) lexFloat(tok *Token) error {
	t.cursor++ // the "."
	for t.cursor < len(t.source) && isDigit(t.source[t.cursor]) {
		t.cursor++
	}
	if _, err := t.lexExponent(); err != nil {
		return err
	}
	return t.finishNumber(tok, true)
}

func (t *Tokenizer) finishNumber(tok *Token, floating bool) error {
	text := t.source[tok.Start:t.cursor]
	tok.Type = Number
	tok.Value = text

	if floating {
		tok.Variant = VariantFloat
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return t.scanError(errors.ErrorIllegalToken, "Illegal number "+text)
		}
		tok.Number = f
		return nil
	}

	tok.Variant = VariantInt
	// Base 0 handles the 0x prefix and the legacy leading-zero octal form.
	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		numErr, ok := err.(*strconv.NumError)
		if !ok || numErr.Err != strconv.ErrRange {
			return t.scanError(errors.ErrorIllegalToken, "Illegal number "+text)
		}
		// Out-of-range literals saturate; ParseInt already clamped n.
	}
	tok.Number = float64(n)
	return nil
}

func (t *Tokenizer) lexString(tok *Token) error {
	delim := t.source[t.cursor]
	t.cursor++

	hasEscapes := false
	for {
		if t.cursor >= len(t.source) {
			return t.scanError(errors.ErrorUnterminatedString, "Unterminated string")
		}
		ch := t.source[t.cursor]
		if ch == delim {
			t.cursor++
			break
		}
		if ch == '\\' {
			hasEscapes = true
			t.cursor++
			if t.cursor >= len(t.source) {
				return t.scanError(errors.ErrorUnterminatedString, "Unterminated string")
			}
		}
		if t.source[t.cursor] == '\n' {
			t.line++
		}
		t.cursor++
	}

	raw := t.source[tok.Start+1 : t.cursor-1]
	tok.Type = String
	if hasEscapes {
		tok.Value = decodeEscapes(raw)
	} else {
		tok.Value = raw
	}
	if delim == '\'' {
		tok.Variant = VariantSingle
	} else {
		tok.Variant = VariantDouble
	}
	return nil
}

// decodeEscapes resolves backslash escapes in a string literal body.
// Unrecognized escapes pass the escaped character through literally.
func decodeEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// Line continuation contributes nothing.
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func (t *Tokenizer) lexRegExp(tok *Token) error {
	t.cursor++ // the opening "/"

	for {
		if t.cursor >= len(t.source) {
			return t.scanError(errors.ErrorUnterminatedRegExp, "Unterminated regex literal")
		}
		switch t.source[t.cursor] {
		case '\\':
			t.cursor++
			if t.cursor >= len(t.source) {
				return t.scanError(errors.ErrorUnterminatedRegExp, "Unterminated regex literal")
			}
			t.cursor++
		case '[':
			t.cursor++
			for {
				if t.cursor >= len(t.source) {
					return t.scanError(errors.ErrorUnterminatedCharClass, "Unterminated character class")
				}
				ch := t.source[t.cursor]
				if ch == '\\' {
					t.cursor++
					if t.cursor >= len(t.source) {
						return t.scanError(errors.ErrorUnterminatedCharClass, "Unterminated character class")
					}
					t.cursor++
					continue
				}
				t.cursor++
				if ch == ']' {
					break
				}
				if ch == '\n' {
					t.line++
				}
			}
		case '/':
			t.cursor++
			bodyEnd := t.cursor - 1
			flagsStart := t.cursor
			for t.cursor < len(t.source) && t.source[t.cursor] >= 'a' && t.source[t.cursor] <= 'z' {
				t.cursor++
			}
			tok.Type = RegExp
			tok.Value = t.source[tok.Start+1 : bodyEnd]
			tok.Variant = t.source[flagsStart:t.cursor]
			return nil
		default:
			if t.source[t.cursor] == '\n' {
				t.line++
			}
			t.cursor++
		}
	}
}

func (t *Tokenizer) lexOp(tok *Token) error {
	rest := t.source[t.cursor:]
	n := maxOperatorLen
	if n > len(rest) {
		n = len(rest)
	}
	for ; n > 0; n-- {
		if tt, ok := operators[rest[:n]]; ok {
			t.cursor += n
			if assignableOps[tt] && t.cursor < len(t.source) && t.source[t.cursor] == '=' {
				t.cursor++
				tok.Type = Assign
				tok.AssignOp = tt
				tok.Value = rest[:n] + "="
			} else {
				tok.Type = tt
				tok.Value = rest[:n]
			}
			return nil
		}
	}
	return t.scanError(errors.ErrorIllegalToken, "Illegal token")
}

func (t *Tokenizer) scanError(code, message string) *ScanError {
	return &ScanError{
		Code:     code,
		Message:  message,
		Filename: t.filename,
		Line:     t.line,
	}
}

func isIdentStart(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '$' || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return ('0' <= ch && ch <= '9') || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

// Column returns the 1-based column of a byte offset within source, for
// diagnostics; the tokenizer itself tracks offsets and lines only.
func Column(source string, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return offset - strings.LastIndexByte(source[:offset], '\n')
}
