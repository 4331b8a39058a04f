package calc

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

type ValueLookup struct {
	vals map[string]value.Value
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Get(id string) (value.Value, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val value.Value) {
	l.vals[id] = val
}

type LLVMIRBuilder struct {
	mod    *ir.Module
	fn     *ir.Func
	block  *ir.Block
	values *ValueLookup
	funcs  *ValueLookup

	divisions int
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod:    ir.NewModule(),
		values: NewValueLookup(),
		funcs:  NewValueLookup(),
	}

	defineBuiltins(builder)
	return builder
}

func (b *LLVMIRBuilder) builtin(name string) value.Value {
	f, ok := b.funcs.Get(name)
	if !ok {
		panic("undefined builtin: " + name)
	}

	return f
}

// run emits `double @run()`, which evaluates every statement in order and
// returns the value of the last one.
func (b *LLVMIRBuilder) run(program *Program) (*ir.Func, error) {
	f := b.mod.NewFunc("run", types.Double)
	b.fn = f
	b.block = f.NewBlock("entry")

	var last value.Value = constant.NewFloat(types.Double, 0)
	for _, stmt := range program.Statements {
		v, err := b.recursiveLoad(stmt)
		if err != nil {
			return nil, err
		}

		last = v
	}

	b.block.NewRet(last)
	return f, nil
}

// entrypoint emits `i32 @main()`, which prints the result of run.
func (b *LLVMIRBuilder) entrypoint(run *ir.Func) {
	f := b.mod.NewFunc("main", types.I32)
	block := f.NewBlock("entry")

	result := block.NewCall(run)
	block.NewCall(b.builtin("print"), result)
	block.NewRet(constant.NewInt(types.I32, 0))
}

func (b *LLVMIRBuilder) recursiveLoad(node Node) (value.Value, error) {
	switch n := node.(type) {
	case *NumberLiteral:
		return constant.NewFloat(types.Double, float64(n.Value)), nil
	case *VariableRef:
		if v, ok := b.values.Get(n.Name); ok {
			return v, nil
		}

		return nil, &NameError{Name: n.Name, Loc: n.Loc}
	case *BinaryExpr:
		return b.binaryExpression(n)
	case *Assignment:
		return b.assignment(n)
	default:
		panic(fmt.Sprintf("unexpected node %T", node))
	}
}

func (b *LLVMIRBuilder) binaryExpression(expr *BinaryExpr) (value.Value, error) {
	v1, err := b.recursiveLoad(expr.Left)
	if err != nil {
		return nil, err
	}

	v2, err := b.recursiveLoad(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operation {
	case BinaryAddition:
		return b.block.NewFAdd(v1, v2), nil
	case BinarySubtraction:
		return b.block.NewFSub(v1, v2), nil
	case BinaryMultiplication:
		return b.block.NewFMul(v1, v2), nil
	case BinaryDivision:
		return b.division(v1, v2), nil
	default:
		panic("unexpected binary op: " + expr.Operation)
	}
}

// division guards the divisor: a zero divisor traps instead of producing
// an infinity or a NaN.
func (b *LLVMIRBuilder) division(v1, v2 value.Value) value.Value {
	b.divisions++
	trap := b.fn.NewBlock(fmt.Sprintf("div.zero.%d", b.divisions))
	cont := b.fn.NewBlock(fmt.Sprintf("div.ok.%d", b.divisions))

	zero := constant.NewFloat(types.Double, 0)
	isZero := b.block.NewFCmp(enum.FPredOEQ, v2, zero)
	b.block.NewCondBr(isZero, trap, cont)

	trap.NewCall(b.builtin("llvm.trap"))
	trap.NewUnreachable()

	b.block = cont
	return cont.NewFDiv(v1, v2)
}

func (b *LLVMIRBuilder) assignment(expr *Assignment) (value.Value, error) {
	v, err := b.recursiveLoad(expr.Value)
	if err != nil {
		return nil, err
	}

	b.values.Set(expr.Name, v)
	return v, nil
}

type LLVMGenerator struct {
	program *Program
}

func NewLLVMGenerator(program *Program) *LLVMGenerator {
	return &LLVMGenerator{
		program: program,
	}
}

// Do lowers the program into a module. Reading a variable before it has
// been assigned fails with a NameError, the same as evaluating it would.
func (g LLVMGenerator) Do() (*ir.Module, error) {
	builder := NewLLVMIRBuilder()

	run, err := builder.run(g.program)
	if err != nil {
		return nil, err
	}

	builder.entrypoint(run)
	return builder.mod, nil
}
