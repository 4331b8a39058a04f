package calc

import (
	"fmt"
	"sort"
)

// Value is the runtime representation of every number. Integer literals
// are promoted on evaluation and division is real division, so there is
// only one numeric type.
type Value = float64

// SymbolTable holds the variables bound by a single program run.
type SymbolTable struct {
	Entries map[string]Value
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Entries: make(map[string]Value),
	}
}

func (t *SymbolTable) Set(name string, v Value) {
	t.Entries[name] = v
}

func (t *SymbolTable) Get(name string) (Value, bool) {
	v, contains := t.Entries[name]
	return v, contains
}

func (t *SymbolTable) Len() int {
	return len(t.Entries)
}

// Names returns the bound names in lexical order.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.Entries))
	for name := range t.Entries {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (t *SymbolTable) Copy() *SymbolTable {
	t2 := NewSymbolTable()
	for k, v := range t.Entries {
		t2.Entries[k] = v
	}

	return t2
}

func (t *SymbolTable) String() string {
	str := "{"
	for i, name := range t.Names() {
		if i > 0 {
			str += ", "
		}

		str += fmt.Sprintf("%s: %s", name, FormatValue(t.Entries[name]))
	}

	return str + "}"
}

// Evaluate evaluates a single node against table.
func Evaluate(node Node, table *SymbolTable) (Value, error) {
	return NewEvaluator(table).Evaluate(node)
}

type Evaluator struct {
	table *SymbolTable
}

func NewEvaluator(table *SymbolTable) *Evaluator {
	return &Evaluator{table: table}
}

func (e *Evaluator) Table() *SymbolTable {
	return e.table
}

// EvaluateProgram evaluates every statement in order and returns their
// values. The first error stops the run.
func (e *Evaluator) EvaluateProgram(program *Program) ([]Value, error) {
	values := make([]Value, 0, len(program.Statements))
	for _, stmt := range program.Statements {
		v, err := e.Evaluate(stmt)
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, nil
}

func (e *Evaluator) Evaluate(node Node) (Value, error) {
	switch n := node.(type) {
	case *NumberLiteral:
		return Value(n.Value), nil
	case *VariableRef:
		if v, ok := e.table.Get(n.Name); ok {
			return v, nil
		}

		return 0, &NameError{Name: n.Name, Loc: n.Loc}
	case *BinaryExpr:
		return e.binaryExpression(n)
	case *Assignment:
		v, err := e.Evaluate(n.Value)
		if err != nil {
			return 0, err
		}

		e.table.Set(n.Name, v)
		return v, nil
	default:
		panic(fmt.Sprintf("unexpected node %T", node))
	}
}

func (e *Evaluator) binaryExpression(n *BinaryExpr) (Value, error) {
	lhs, err := e.Evaluate(n.Left)
	if err != nil {
		return 0, err
	}

	rhs, err := e.Evaluate(n.Right)
	if err != nil {
		return 0, err
	}

	switch n.Operation {
	case BinaryAddition:
		return lhs + rhs, nil
	case BinarySubtraction:
		return lhs - rhs, nil
	case BinaryMultiplication:
		return lhs * rhs, nil
	case BinaryDivision:
		if rhs == 0 {
			return 0, &ArithmeticError{Op: n.Operation, Loc: n.Loc}
		}

		return lhs / rhs, nil
	default:
		panic("unexpected binary op: " + n.Operation)
	}
}
