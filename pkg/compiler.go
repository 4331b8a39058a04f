package calc

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Result is the outcome of a program run.
type Result struct {
	Program *Program
	Table   *SymbolTable
	// Values holds the value of every statement, in order.
	Values []Value
	// Value is the value of the last statement. It is only meaningful when
	// HasValue is set, an empty program produces no value.
	Value    Value
	HasValue bool
}

// Run parses the whole input and then evaluates it against a fresh
// variable table.
func Run(input string) (*Result, error) {
	return RunWithTable(input, NewSymbolTable())
}

// RunWithTable is Run with a caller supplied table. The table is mutated
// by every assignment the program performs.
func RunWithTable(input string, table *SymbolTable) (*Result, error) {
	program, err := Parse(input)
	if err != nil {
		return nil, err
	}

	values, err := NewEvaluator(table).EvaluateProgram(program)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Program: program,
		Table:   table,
		Values:  values,
	}

	if len(values) != 0 {
		res.Value = values[len(values)-1]
		res.HasValue = true
	}

	return res, nil
}

func RunReader(reader io.Reader) (*Result, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	return Run(string(data))
}

func RunFile(filename string) (*Result, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", filename)
	}
	defer f.Close()

	res, err := RunReader(f)
	if err != nil {
		return nil, errors.WithMessage(err, filename)
	}

	return res, nil
}

func Parse(input string) (*Program, error) {
	return NewParser(NewLexer(input)).Parse()
}

// Compile lowers input to textual LLVM IR.
func Compile(input string) (string, error) {
	program, err := Parse(input)
	if err != nil {
		return "", err
	}

	mod, err := NewLLVMGenerator(program).Do()
	if err != nil {
		return "", err
	}

	return mod.String(), nil
}
