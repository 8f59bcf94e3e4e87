package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sel-lang/sel/core/token"
)

func tokenTypes(t *testing.T, source string) []token.Type {
	t.Helper()
	toks, err := Tokenize(source)
	require.NoError(t, err)
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizeArithmeticExpression(t *testing.T) {
	t.Parallel()
	types := tokenTypes(t, "5 + 10 * (2 - 1)")
	assert.Equal(t, []token.Type{
		token.INTEGER, token.PLUS, token.INTEGER, token.ASTERISK,
		token.START_GROUP, token.INTEGER, token.MINUS, token.INTEGER, token.END_GROUP,
	}, types)
}

func TestTokenizeDistinguishesIntegerAndDecimal(t *testing.T) {
	t.Parallel()
	toks, err := Tokenize("5 5.5")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.INTEGER, toks[0].Type)
	assert.Equal(t, "5", toks[0].Lexeme)
	assert.Equal(t, token.DECIMAL, toks[1].Type)
	assert.Equal(t, "5.5", toks[1].Lexeme)
}

func TestTokenizeRangeDoesNotSwallowDecimalPoint(t *testing.T) {
	t.Parallel()
	types := tokenTypes(t, "5..10")
	assert.Equal(t, []token.Type{token.INTEGER, token.EXCLUSIVE_RANGE, token.INTEGER}, types)
}

func TestTokenizeInclusiveRangeIsLongestMatch(t *testing.T) {
	t.Parallel()
	types := tokenTypes(t, "5...10")
	assert.Equal(t, []token.Type{token.INTEGER, token.INCLUSIVE_RANGE, token.INTEGER}, types)
}

func TestTokenizeStringsAndEscapes(t *testing.T) {
	t.Parallel()
	toks, err := Tokenize(`"a\nb" 'c'`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.DOUBLE_QUOTED_STRING, toks[0].Type)
	assert.Equal(t, "a\nb", toks[0].Lexeme)
	assert.Equal(t, token.SINGLE_QUOTED_STRING, toks[1].Type)
	assert.Equal(t, "c", toks[1].Lexeme)
}

func TestTokenizeBooleanKeywordsAreNotIdentifiers(t *testing.T) {
	t.Parallel()
	toks, err := Tokenize("true false truest")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.BOOLEAN, toks[0].Type)
	assert.Equal(t, token.BOOLEAN, toks[1].Type)
	assert.Equal(t, token.IDENTIFIER, toks[2].Type)
}

func TestTokenizeLineEndIsSignificant(t *testing.T) {
	t.Parallel()
	types := tokenTypes(t, "5 + 10\n? + 20")
	assert.Contains(t, types, token.LINE_END)
}

func TestTokenizeMatchFamilyLongestMatch(t *testing.T) {
	t.Parallel()
	types := tokenTypes(t, "a =!=> b")
	assert.Equal(t, []token.Type{token.IDENTIFIER, token.MATCH_NOT_EQUAL, token.IDENTIFIER}, types)
}

func TestTokenizeSymbolPrefix(t *testing.T) {
	t.Parallel()
	types := tokenTypes(t, ":status")
	assert.Equal(t, []token.Type{token.SYMBOL_PREFIX, token.IDENTIFIER}, types)
}

func TestTokenizeAnnotation(t *testing.T) {
	t.Parallel()
	toks, err := Tokenize("@ a comment\n5")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.COMMENT_ANNOTATION, toks[0].Type)
	assert.Equal(t, "a comment", toks[0].Lexeme)
	assert.Equal(t, token.LINE_END, toks[1].Type)
	assert.Equal(t, token.INTEGER, toks[2].Type)
}

func TestTokenizeUnterminatedStringErrors(t *testing.T) {
	t.Parallel()
	_, err := Tokenize(`"unterminated`)
	assert.Error(t, err)
}
