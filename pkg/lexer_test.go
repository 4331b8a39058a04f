package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.calc.dev/internal/test"
)

func withoutLocations(toks []Token) []Token {
	if toks == nil {
		return nil
	}

	stripped := make([]Token, len(toks))
	for i, tok := range toks {
		stripped[i] = Token{Typ: tok.Typ, Value: tok.Value}
	}

	return stripped
}

func TestLexer(t *testing.T) {
	cases := []struct {
		data   string
		fail   bool
		expect []Token
	}{
		{
			"x = 5",
			false,
			[]Token{
				{TokenVariable, "x", nil},
				{TokenAssign, "=", nil},
				{TokenNumber, "5", nil},
			},
		},
		{
			"(2-(2+4+(3-2)))/(2+1)*(2-1)",
			false,
			[]Token{
				{TokenOpenParentheses, "(", nil},
				{TokenNumber, "2", nil},
				{TokenMinus, "-", nil},
				{TokenOpenParentheses, "(", nil},
				{TokenNumber, "2", nil},
				{TokenPlus, "+", nil},
				{TokenNumber, "4", nil},
				{TokenPlus, "+", nil},
				{TokenOpenParentheses, "(", nil},
				{TokenNumber, "3", nil},
				{TokenMinus, "-", nil},
				{TokenNumber, "2", nil},
				{TokenCloseParentheses, ")", nil},
				{TokenCloseParentheses, ")", nil},
				{TokenCloseParentheses, ")", nil},
				{TokenDivide, "/", nil},
				{TokenOpenParentheses, "(", nil},
				{TokenNumber, "2", nil},
				{TokenPlus, "+", nil},
				{TokenNumber, "1", nil},
				{TokenCloseParentheses, ")", nil},
				{TokenMultiply, "*", nil},
				{TokenOpenParentheses, "(", nil},
				{TokenNumber, "2", nil},
				{TokenMinus, "-", nil},
				{TokenNumber, "1", nil},
				{TokenCloseParentheses, ")", nil},
			},
		},
		{
			"x=5x+3",
			false,
			[]Token{
				{TokenVariable, "x", nil},
				{TokenAssign, "=", nil},
				{TokenNumber, "5", nil},
				{TokenVariable, "x", nil},
				{TokenPlus, "+", nil},
				{TokenNumber, "3", nil},
			},
		},
		{
			// Digits end a name, names are letters and underscores only
			"snake_case12_other",
			false,
			[]Token{
				{TokenVariable, "snake_case", nil},
				{TokenNumber, "12", nil},
				{TokenVariable, "_other", nil},
			},
		},
		{
			"  \t\n  007 \r\n",
			false,
			[]Token{
				{TokenNumber, "007", nil},
			},
		},
		{
			"",
			false,
			nil,
		},
		{
			"   ",
			false,
			nil,
		},
		{
			"1 + $",
			true,
			nil,
		},
		{
			"1.5",
			true,
			nil,
		},
		{
			"únicode",
			true,
			nil,
		},
	}

	for _, c := range cases {
		l := NewLexer(c.data)

		toks, err := l.Tokenize()
		if c.fail {
			assert.Error(t, err, c.data)
		} else {
			assert.NoError(t, err, c.data)
		}

		assert.Equal(t, c.expect, withoutLocations(toks), c.data)
	}
}

func TestLexerLocations(t *testing.T) {
	l := NewLexer("ab =\n  12")

	toks, err := l.Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 3)

	assert.Equal(t, &Location{Offset: 0, Line: 1, Column: 1}, toks[0].Loc)
	assert.Equal(t, &Location{Offset: 3, Line: 1, Column: 4}, toks[1].Loc)
	assert.Equal(t, &Location{Offset: 7, Line: 2, Column: 3}, toks[2].Loc)
}

func TestLexerError(t *testing.T) {
	l := NewLexer("1 +\n #")

	for i := 0; i < 2; i++ {
		_, err := l.Next()
		require.NoError(t, err)
	}

	_, err := l.Next()
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, '#', lexErr.Char)
	assert.Equal(t, &Location{Offset: 5, Line: 2, Column: 2}, lexErr.Loc)

	// The cursor stays on the bad character
	_, err = l.Next()
	assert.ErrorAs(t, err, &lexErr)
}

func TestLexerEOFIsTerminal(t *testing.T) {
	l := NewLexer("x")

	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenVariable, tok.Typ)

	for i := 0; i < 3; i++ {
		tok, err = l.Next()
		require.NoError(t, err)
		assert.Equal(t, TokenEOF, tok.Typ)
	}
}

func TestLexerSetPosition(t *testing.T) {
	l := NewLexer("x = 1")

	_, err := l.Next()
	require.NoError(t, err)

	saved := l.Position()
	ahead, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenAssign, ahead.Typ)

	l.SetPosition(saved)
	again, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, ahead, again)
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "Multiply", TokenMultiply.String())
	assert.Equal(t, "EOF", TokenEOF.String())
	assert.Equal(t, "TokenType(99)", TokenType(99).String())
	assert.Equal(t, "Variable 'x'", Token{Typ: TokenVariable, Value: "x"}.String())
}

// Use a package-level variable to avoid compiler optimisation
var benchResult []Token

func benchmarkLexer(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		// Setup
		b.StopTimer()
		data := test.GetRandomTokens(size)
		l := NewLexer(data)

		var err error
		b.StartTimer()

		benchResult, err = l.Tokenize()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexer100(b *testing.B) {
	benchmarkLexer(100, b)
}

func BenchmarkLexer1000(b *testing.B) {
	benchmarkLexer(1000, b)
}

func BenchmarkLexer10000(b *testing.B) {
	benchmarkLexer(10000, b)
}

func BenchmarkLexer100000(b *testing.B) {
	benchmarkLexer(100000, b)
}
