package runtime

import (
	"fmt"

	"github.com/shubham1882003/plipy/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

// IntegerValue is the single numeric domain of the language: a 64-bit
// signed integer. Comparisons produce 1 or 0; division truncates toward
// zero.
type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind { return KindInteger }

func (v IntegerValue) String() string { return fmt.Sprintf("%d", v.Val) }

// NewIntegerValue wraps a host integer.
func NewIntegerValue(val int64) IntegerValue { return IntegerValue{Val: val} }

//-----------------------------------------------------------------------------
// Functions & closures
//-----------------------------------------------------------------------------

// FunctionValue pairs a declared function with the environment snapshot
// taken at the moment its declaration executed. The snapshot shares frames
// with every other holder; calling the function resolves non-local names
// against those live frames, which is what makes scoping static.
type FunctionValue struct {
	Name     string
	Formals  []string
	Body     ast.Statement
	Captured Snapshot
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

func (v *FunctionValue) String() string {
	return fmt.Sprintf("function %s/%d", v.Name, len(v.Formals))
}

// NewFunctionValue builds the binding stored by a function declaration.
func NewFunctionValue(name string, formals []string, body ast.Statement, captured Snapshot) *FunctionValue {
	return &FunctionValue{Name: name, Formals: formals, Body: body, Captured: captured}
}
