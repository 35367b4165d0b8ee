package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jserrors "github.com/Neugomonyy/jasy/internal/errors"
)

func TestUngetThenGetIsNoOp(t *testing.T) {
	tk := NewTokenizer("foo + bar", "test.js")

	_, err := tk.Get()
	require.NoError(t, err)
	first := *tk.Current()

	tk.Unget()

	_, err = tk.Get()
	require.NoError(t, err)
	replayed := *tk.Current()

	assert.Equal(t, first, replayed, "unget followed by get should replay the same token")
}

func TestLookaheadReplayOrder(t *testing.T) {
	tk := NewTokenizer("a b c", "test.js")

	var consumed []string
	for i := 0; i < 3; i++ {
		_, err := tk.Get()
		require.NoError(t, err)
		consumed = append(consumed, tk.Current().Value)
	}
	assert.Equal(t, []string{"a", "b", "c"}, consumed)

	// Push all three back and replay.
	tk.Unget()
	tk.Unget()
	tk.Unget()

	consumed = nil
	for i := 0; i < 3; i++ {
		_, err := tk.Get()
		require.NoError(t, err)
		consumed = append(consumed, tk.Current().Value)
	}
	assert.Equal(t, []string{"a", "b", "c"}, consumed, "replay must preserve order without re-scanning")
}

func TestLookaheadOverflowPanics(t *testing.T) {
	tk := NewTokenizer("a b c d e", "test.js")
	_, err := tk.Get()
	require.NoError(t, err)

	tk.Unget()
	tk.Unget()
	tk.Unget()

	assert.PanicsWithError(t, "test.js:1: too much lookahead [E0107]", func() {
		tk.Unget()
	})
}

func TestMatch(t *testing.T) {
	tk := NewTokenizer("var x", "test.js")

	ok, err := tk.Match(Var)
	require.NoError(t, err)
	assert.True(t, ok, "var should match")
	assert.Equal(t, "var", tk.Current().Value)

	ok, err = tk.Match(Semicolon)
	require.NoError(t, err)
	assert.False(t, ok, "identifier should not match semicolon")

	// The failed match must have rewound exactly one token.
	tt, err := tk.Get()
	require.NoError(t, err)
	assert.Equal(t, Identifier, tt)
	assert.Equal(t, "x", tk.Current().Value)
}

func TestMustMatch(t *testing.T) {
	tk := NewTokenizer("return 42", "test.js")

	tok, err := tk.MustMatch(Return)
	require.NoError(t, err)
	assert.Equal(t, Return, tok.Type)

	_, err = tk.MustMatch(Semicolon)
	require.Error(t, err)

	serr, ok := err.(*ScanError)
	require.True(t, ok, "MustMatch failure should be a ScanError")
	assert.Equal(t, jserrors.ErrorMissingExpectedToken, serr.Code)
	assert.Equal(t, "Missing semicolon", serr.Message)
	assert.Equal(t, "test.js", serr.Filename)
	assert.Equal(t, 1, serr.Line)
}

func TestPeekDoesNotConsume(t *testing.T) {
	tk := NewTokenizer("x = 1", "test.js")

	for i := 0; i < 3; i++ {
		tt, err := tk.Peek()
		require.NoError(t, err)
		assert.Equal(t, Identifier, tt, "peek %d", i)
	}

	tt, err := tk.Get()
	require.NoError(t, err)
	assert.Equal(t, Identifier, tt)
	assert.Equal(t, "x", tk.Current().Value)
}

func TestPeekOnSameLine(t *testing.T) {
	tk := NewTokenizer("a b", "test.js")
	_, err := tk.Get()
	require.NoError(t, err)

	tt, err := tk.PeekOnSameLine()
	require.NoError(t, err)
	assert.Equal(t, Identifier, tt, "b is on the same line as a")
	assert.False(t, tk.ScanNewlines, "flag must be restored")

	tk = NewTokenizer("a\nb", "test.js")
	_, err = tk.Get()
	require.NoError(t, err)

	tt, err = tk.PeekOnSameLine()
	require.NoError(t, err)
	assert.Equal(t, Newline, tt, "a line break separates a and b")
	assert.False(t, tk.ScanNewlines)

	// The transient newline token is invisible to a normal get.
	tt, err = tk.Get()
	require.NoError(t, err)
	assert.Equal(t, Identifier, tt)
	assert.Equal(t, "b", tk.Current().Value)
}

func TestDone(t *testing.T) {
	tk := NewTokenizer("  // only trivia\n", "test.js")

	done, err := tk.Done()
	require.NoError(t, err)
	assert.True(t, done)

	tk = NewTokenizer("x", "test.js")
	done, err = tk.Done()
	require.NoError(t, err)
	assert.False(t, done)

	_, err = tk.Get()
	require.NoError(t, err)
	done, err = tk.Done()
	require.NoError(t, err)
	assert.True(t, done)
}

func TestEndTokenIsStable(t *testing.T) {
	tk := NewTokenizer("x", "test.js")
	_, err := tk.Get()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		tt, err := tk.Get()
		require.NoError(t, err)
		assert.Equal(t, End, tt, "end repeats once input is exhausted")
	}
}

func TestRingBufferWraps(t *testing.T) {
	tk := NewTokenizer("a b c d e f g h i j", "test.js")

	values := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for _, want := range values {
		// Peek then get: exercises buffer slots across several wraps.
		tt, err := tk.Peek()
		require.NoError(t, err)
		assert.Equal(t, Identifier, tt)

		_, err = tk.Get()
		require.NoError(t, err)
		assert.Equal(t, want, tk.Current().Value)
	}
}

func TestModeFlagDefaults(t *testing.T) {
	tk := NewTokenizer("", "test.js")
	assert.True(t, tk.ScanOperand, "a source unit starts expecting an operand")
	assert.False(t, tk.ScanNewlines)
}

func TestScanAllHeuristic(t *testing.T) {
	// After a completed expression "/" divides; at operand position it
	// opens a regex literal.
	tokens, err := ScanAll("a / b", "test.js")
	require.NoError(t, err)
	assert.Equal(t, Div, tokens[1].Type)

	tokens, err = ScanAll("a = /b/g;", "test.js")
	require.NoError(t, err)
	assert.Equal(t, RegExp, tokens[2].Type)
	assert.Equal(t, "b", tokens[2].Value)

	tokens, err = ScanAll("(x) / 2", "test.js")
	require.NoError(t, err)
	assert.Equal(t, Div, tokens[3].Type)
}
