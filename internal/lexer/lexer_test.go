package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(toks []Token) []TokenType {
	var out []TokenType
	for _, tok := range toks {
		out = append(out, tok.Type)
	}
	return out
}

func TestTokenize_SimpleFunction(t *testing.T) {
	src := "def f(x: int) -> int:\n    return x\n"
	l := New(src, "<test>")
	toks := l.Tokenize()
	require.Empty(t, l.Errors())

	types := tokenTypes(toks)
	assert.Contains(t, types, DEF)
	assert.Contains(t, types, INDENT)
	assert.Contains(t, types, DEDENT)
	assert.Contains(t, types, RETURN)
	assert.Equal(t, EOF, types[len(types)-1])
}

func TestTokenize_IndentDedentBalance(t *testing.T) {
	src := "def f() -> int:\n    if true:\n        return 1\n    return 0\n"
	l := New(src, "<test>")
	toks := l.Tokenize()
	require.Empty(t, l.Errors())

	opens, closes := 0, 0
	for _, tt := range tokenTypes(toks) {
		if tt == INDENT {
			opens++
		}
		if tt == DEDENT {
			closes++
		}
	}
	assert.Equal(t, opens, closes)
}

func TestTokenize_OperatorsAndLiterals(t *testing.T) {
	src := "x: int = 1 + 2 * 3 // 4 % 5\n"
	l := New(src, "<test>")
	toks := l.Tokenize()
	require.Empty(t, l.Errors())

	types := tokenTypes(toks)
	assert.Contains(t, types, INT)
	assert.Contains(t, types, PLUS)
	assert.Contains(t, types, STAR)
	assert.Contains(t, types, DSLASH)
	assert.Contains(t, types, PERCENT)
}

func TestTokenize_StringLiteral(t *testing.T) {
	src := `s: str = "hello"` + "\n"
	l := New(src, "<test>")
	toks := l.Tokenize()
	require.Empty(t, l.Errors())

	var found bool
	for _, tok := range toks {
		if tok.Type == STRING {
			found = true
			assert.Equal(t, "hello", tok.Literal)
		}
	}
	assert.True(t, found)
}

func TestNormalize_StripsBOMAndNormalizesLineEndings(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	src := append(bom, []byte("a\r\nb\rc\n")...)
	got := Normalize(src)
	assert.Equal(t, "a\nb\nc\n", string(got))
}

func TestNormalize_LeavesPlainLFUnchanged(t *testing.T) {
	src := []byte("a\nb\n")
	assert.Equal(t, src, Normalize(src))
}
