package calc

import "fmt"

// LexError reports a character that does not start any token.
type LexError struct {
	Char rune
	Loc  *Location
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%sunexpected character %q", where(e.Loc), e.Char)
}

// SyntaxError reports a token that does not fit the grammar at its
// position. Expected is zero when the parser was looking for the start of
// a factor rather than one specific token.
type SyntaxError struct {
	Expected TokenType
	Got      Token
	Msg      string
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Msg != "":
		return fmt.Sprintf("%s%s", where(e.Got.Loc), e.Msg)
	case e.Expected != 0:
		return fmt.Sprintf("%sexpected %s, got %s", where(e.Got.Loc), e.Expected, e.Got)
	default:
		return fmt.Sprintf("%sunexpected %s", where(e.Got.Loc), e.Got)
	}
}

// NameError reports a reference to a variable that has not been assigned.
type NameError struct {
	Name string
	Loc  *Location
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%sundefined variable: %s", where(e.Loc), e.Name)
}

// ArithmeticError reports a division by zero.
type ArithmeticError struct {
	Op  BinaryOp
	Loc *Location
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%sdivision by zero", where(e.Loc))
}

func where(loc *Location) string {
	if loc == nil {
		return ""
	}

	return loc.String() + " "
}
