package calc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type TokenType uint64

const (
	EOF rune = 0

	TokenEOF TokenType = iota
	TokenNumber
	TokenVariable

	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide
	TokenOpenParentheses
	TokenCloseParentheses
	TokenAssign
)

var tokenNames = map[TokenType]string{
	TokenEOF:              "EOF",
	TokenNumber:           "Number",
	TokenVariable:         "Variable",
	TokenPlus:             "Plus",
	TokenMinus:            "Minus",
	TokenMultiply:         "Multiply",
	TokenDivide:           "Divide",
	TokenOpenParentheses:  "OpenParentheses",
	TokenCloseParentheses: "CloseParentheses",
	TokenAssign:           "Assign",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TokenType(%d)", uint64(t))
}

var operatorTable = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMultiply,
	'/': TokenDivide,
	'(': TokenOpenParentheses,
	')': TokenCloseParentheses,
	'=': TokenAssign,
}

// Location is a point in the source text. Line and Column are 1-based,
// Offset is the byte offset from the start of the input.
type Location struct {
	Offset int
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

type Token struct {
	Typ   TokenType
	Value string
	Loc   *Location
}

func (t Token) String() string {
	if t.Typ == TokenEOF {
		return "EOF"
	}

	return fmt.Sprintf("%s '%s'", t.Typ, t.Value)
}

// Tokenizer is the token source consumed by the Parser. Position and
// SetPosition snapshot and restore the read cursor so the parser can look
// one token further ahead without consuming it.
type Tokenizer interface {
	Next() (Token, error)
	Position() Location
	SetPosition(Location)
}

type Lexer struct {
	source string
	cursor Location
}

func NewLexer(source string) *Lexer {
	return &Lexer{
		source: source,
		cursor: Location{Offset: 0, Line: 1, Column: 1},
	}
}

func (l *Lexer) Position() Location {
	return l.cursor
}

func (l *Lexer) SetPosition(loc Location) {
	l.cursor = loc
}

// Next returns the following token. Once the input is exhausted every call
// returns a TokenEOF.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	start := l.cursor
	switch r := l.peek(); {
	case r == EOF && l.isAtEnd():
		return Token{Typ: TokenEOF, Loc: &start}, nil
	case isAlpha(r):
		return l.variable(), nil
	case isDigit(r):
		return l.number(), nil
	default:
		if tok, ok := operatorTable[r]; ok {
			l.next()
			return Token{Typ: tok, Value: string(r), Loc: &start}, nil
		}

		return Token{}, &LexError{Char: r, Loc: &start}
	}
}

// Tokenize drains the lexer. The trailing TokenEOF is not included.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}

		if tok.Typ == TokenEOF {
			return tokens, nil
		}

		tokens = append(tokens, tok)
	}
}

func (l *Lexer) variable() Token {
	start := l.cursor

	var id strings.Builder
	for r := l.peek(); isAlpha(r); r = l.peek() {
		id.WriteRune(l.next())
	}

	return Token{Typ: TokenVariable, Value: id.String(), Loc: &start}
}

func (l *Lexer) number() Token {
	start := l.cursor

	var num strings.Builder
	for r := l.peek(); isDigit(r); r = l.peek() {
		num.WriteRune(l.next())
	}

	return Token{Typ: TokenNumber, Value: num.String(), Loc: &start}
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.peek()) {
		l.next()
	}
}

func (l *Lexer) isAtEnd() bool {
	return l.cursor.Offset >= len(l.source)
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return EOF
	}

	r, _ := utf8.DecodeRuneInString(l.source[l.cursor.Offset:])
	return r
}

func (l *Lexer) next() rune {
	if l.isAtEnd() {
		return EOF
	}

	r, size := utf8.DecodeRuneInString(l.source[l.cursor.Offset:])
	l.cursor.Offset += size

	if r == '\n' {
		l.cursor.Line++
		l.cursor.Column = 1
	} else {
		l.cursor.Column++
	}

	return r
}

func isAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}
