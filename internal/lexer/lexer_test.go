package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	l := New(src)
	var toks []Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func types(toks []Token) []Type {
	out := make([]Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestTokenizeOperatorsAndPunctuation(t *testing.T) {
	toks := tokenize(t, "a == b != c <= d >= e -> f .. g ..= h")
	got := types(toks)
	assert.Contains(t, got, EQ)
	assert.Contains(t, got, NEQ)
	assert.Contains(t, got, LTE)
	assert.Contains(t, got, GTE)
	assert.Contains(t, got, ARROW)
	assert.Contains(t, got, DOTDOT)
	assert.Contains(t, got, DOTDOTEQ)
}

func TestTokenizeKeywords(t *testing.T) {
	toks := tokenize(t, "true false global for in if yield and or")
	got := types(toks)
	assert.Equal(t, []Type{
		TRUE, FALSE, GLOBAL, FOR, IN, IF, YIELD, AND, OR, EOF,
	}, got)
}

func TestElseIsAPlainIdentifier(t *testing.T) {
	toks := tokenize(t, "else")
	require.Len(t, toks, 2)
	assert.Equal(t, IDENT, toks[0].Type)
	assert.Equal(t, "else", toks[0].Lexeme)
}

func TestStringEscapes(t *testing.T) {
	toks := tokenize(t, `"a\nb\t\"c\\d"`)
	require.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "a\nb\t\"c\\d", toks[0].Lexeme)
}

func TestUnterminatedStringIsAnError(t *testing.T) {
	l := New(`"unterminated`)
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestNumberLiteralWithFraction(t *testing.T) {
	toks := tokenize(t, "3.14")
	require.Equal(t, NUMBER, toks[0].Type)
	assert.Equal(t, "3.14", toks[0].Lexeme)
}

func TestCommentsAreSkipped(t *testing.T) {
	toks := tokenize(t, "1 # this is a comment\n2")
	got := types(toks)
	assert.Equal(t, []Type{NUMBER, NEWLINE, NUMBER, EOF}, got)
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	l := New("ab")
	clone := l.Clone()

	_, err := l.NextToken()
	require.NoError(t, err)
	_, err = l.NextToken()
	require.NoError(t, err)

	tok, err := clone.NextToken()
	require.NoError(t, err)
	assert.Equal(t, IDENT, tok.Type)
	assert.Equal(t, "ab", tok.Lexeme, "advancing the original must not move the clone")
}
