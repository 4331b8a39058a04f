package calc

import (
	"fmt"
	"strconv"
)

type Parser struct {
	tokenizer Tokenizer
	current   Token
}

func NewParser(tokenizer Tokenizer) *Parser {
	return &Parser{
		tokenizer: tokenizer,
	}
}

// Parse reads the whole input and returns every statement in it. Nothing is
// returned alongside an error.
func (p *Parser) Parse() (*Program, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	program := &Program{}
	for p.current.Typ != TokenEOF {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		program.Statements = append(program.Statements, stmt)
	}

	return program, nil
}

func (p *Parser) advance() error {
	tok, err := p.tokenizer.Next()
	if err != nil {
		return err
	}

	p.current = tok
	return nil
}

// peek returns the token after the current one. The tokenizer cursor is
// restored afterwards, so the token is read again by the next advance.
func (p *Parser) peek() (Token, error) {
	saved := p.tokenizer.Position()
	defer p.tokenizer.SetPosition(saved)

	return p.tokenizer.Next()
}

func (p *Parser) eat(typ TokenType) error {
	if p.current.Typ != typ {
		return &SyntaxError{Expected: typ, Got: p.current}
	}

	return p.advance()
}

func (p *Parser) statement() (Node, error) {
	if p.current.Typ == TokenVariable {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}

		if next.Typ == TokenAssign {
			return p.assignment()
		}
	}

	return p.expr()
}

func (p *Parser) assignment() (Node, error) {
	target := p.current
	if err := p.eat(TokenVariable); err != nil {
		return nil, err
	}

	if err := p.eat(TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.expr()
	if err != nil {
		return nil, err
	}

	return &Assignment{
		Name:  target.Value,
		Value: value,
		Loc:   target.Loc,
	}, nil
}

func (p *Parser) expr() (Node, error) {
	lhs, err := p.term()
	if err != nil {
		return nil, err
	}

	// Chained operands (for example 1 - 3 + 1) nest to the left
	for tok := p.current; tok.Typ == TokenPlus || tok.Typ == TokenMinus; tok = p.current {
		if err := p.eat(tok.Typ); err != nil {
			return nil, err
		}

		rhs, err := p.term()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: binaryOps[tok.Typ],
			Left:      lhs,
			Right:     rhs,
			Loc:       tok.Loc,
		}
	}

	return lhs, nil
}

func (p *Parser) term() (Node, error) {
	lhs, err := p.factor()
	if err != nil {
		return nil, err
	}

	for tok := p.current; tok.Typ == TokenMultiply || tok.Typ == TokenDivide; tok = p.current {
		if err := p.eat(tok.Typ); err != nil {
			return nil, err
		}

		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: binaryOps[tok.Typ],
			Left:      lhs,
			Right:     rhs,
			Loc:       tok.Loc,
		}
	}

	return lhs, nil
}

func (p *Parser) factor() (Node, error) {
	switch tok := p.current; tok.Typ {
	case TokenNumber:
		return p.number()
	case TokenVariable:
		if err := p.eat(TokenVariable); err != nil {
			return nil, err
		}

		return &VariableRef{Name: tok.Value, Loc: tok.Loc}, nil
	case TokenOpenParentheses:
		return p.parenthesisedExpression()
	default:
		return nil, &SyntaxError{Got: tok}
	}
}

func (p *Parser) number() (Node, error) {
	tok := p.current

	v, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return nil, &SyntaxError{
			Got: tok,
			Msg: fmt.Sprintf("number literal out of range: %s", tok.Value),
		}
	}

	if err := p.eat(TokenNumber); err != nil {
		return nil, err
	}

	return &NumberLiteral{Value: v}, nil
}

func (p *Parser) parenthesisedExpression() (Node, error) {
	if err := p.eat(TokenOpenParentheses); err != nil {
		return nil, err
	}

	exp, err := p.expr()
	if err != nil {
		return nil, err
	}

	if err := p.eat(TokenCloseParentheses); err != nil {
		return nil, err
	}

	return exp, nil
}
