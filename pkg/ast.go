package calc

import (
	"strconv"
	"strings"
)

type Program struct {
	Statements []Node
}

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Statements))
	for _, stmt := range p.Statements {
		parts = append(parts, stmt.String())
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Node is implemented only by the node types in this file, so a type
// switch over them in the evaluator and the IR builder is exhaustive.
type Node interface {
	String() string
	node()
}

type NumberLiteral struct {
	Value int64
}

type VariableRef struct {
	Name string
	Loc  *Location
}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
)

var binaryOps = map[TokenType]BinaryOp{
	TokenPlus:     BinaryAddition,
	TokenMinus:    BinarySubtraction,
	TokenMultiply: BinaryMultiplication,
	TokenDivide:   BinaryDivision,
}

type BinaryExpr struct {
	Operation BinaryOp
	Left      Node
	Right     Node
	Loc       *Location
}

type Assignment struct {
	Name  string
	Value Node
	Loc   *Location
}

func (*NumberLiteral) node() {}
func (*VariableRef) node()   {}
func (*BinaryExpr) node()    {}
func (*Assignment) node()    {}

func (n *NumberLiteral) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (n *VariableRef) String() string {
	return n.Name
}

// String prints the expression fully parenthesised, so the grouping chosen
// by the parser is visible.
func (n *BinaryExpr) String() string {
	var str strings.Builder
	str.WriteString("(")
	str.WriteString(n.Left.String())
	str.WriteString(" ")
	str.WriteString(string(n.Operation))
	str.WriteString(" ")
	str.WriteString(n.Right.String())
	str.WriteString(")")

	return str.String()
}

func (n *Assignment) String() string {
	return n.Name + " = " + n.Value.String()
}
