package interpreter

import (
	"github.com/shubham1882003/plipy/pkg/ast"
	"github.com/shubham1882003/plipy/pkg/runtime"
)

// DefaultMaxCallDepth bounds recursion before the host stack is at risk.
const DefaultMaxCallDepth = 10000

// Interpreter drives evaluation of Cuppa3 AST nodes. It owns the single
// scope environment of a program run; function calls swap whole
// environment configurations in and out via Snapshot/Restore, which is
// what realizes static scoping.
type Interpreter struct {
	env      *runtime.Environment
	io       IO
	maxDepth int
	depth    int
}

// New returns an interpreter with an empty global scope, standard I/O and
// the default call depth limit.
func New() *Interpreter {
	return &Interpreter{
		env:      runtime.NewEnvironment(),
		io:       NewStdIO(nil, nil),
		maxDepth: DefaultMaxCallDepth,
	}
}

// SetIO replaces the collaborator serving get and put.
func (i *Interpreter) SetIO(io IO) {
	if io != nil {
		i.io = io
	}
}

// SetMaxCallDepth adjusts the recursion guard. Values below 1 are ignored.
func (i *Interpreter) SetMaxCallDepth(n int) {
	if n >= 1 {
		i.maxDepth = n
	}
}

// Environment exposes the live scope environment (REPL inspection, tests).
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}

// EvaluateProgram executes a program from its first statement. A Returning
// completion reaching the top level simply ends the run; errors abort it.
func (i *Interpreter) EvaluateProgram(program *ast.Program) error {
	tracef("program start, %d top-level statements", len(program.Statements))
	for _, stmt := range program.Statements {
		comp, err := i.executeStatement(stmt)
		if err != nil {
			return err
		}
		if comp.kind == completionReturn {
			break
		}
	}
	tracef("program end")
	return nil
}

// EvaluateExpression evaluates one expression against the current
// environment (used by the REPL).
func (i *Interpreter) EvaluateExpression(expr ast.Expression) (runtime.Value, error) {
	return i.evaluateExpression(expr)
}

// EvaluateCall performs a call outside any expression context, so a callee
// that produces no value is not an error. The REPL uses it for bare calls,
// printing the value only when there is one.
func (i *Interpreter) EvaluateCall(callee string, arguments []ast.Expression) (runtime.Value, error) {
	return i.callFunction(callee, arguments)
}

// completion is the result of executing one statement: plain fall-through,
// or an early return travelling up to the nearest enclosing call. It is an
// ordinary value checked by every statement executor, so a return can never
// accidentally cross a call boundary the way unwinding would.
type completion struct {
	kind  completionKind
	value runtime.Value // return payload, nil for value-less returns
}

type completionKind int

const (
	completionNormal completionKind = iota
	completionReturn
)

var normalCompletion = completion{kind: completionNormal}

// callFunction performs the full call protocol and returns the produced
// value, or nil when the executed path never reached a return with a value.
// Whether a nil result is an error depends on the call context and is
// decided by the caller.
func (i *Interpreter) callFunction(name string, argExprs []ast.Expression) (runtime.Value, error) {
	target, err := i.env.Lookup(name)
	if err != nil {
		return nil, err
	}
	fn, ok := target.(*runtime.FunctionValue)
	if !ok {
		return nil, runtime.NewNotCallableError(name)
	}

	// Actuals evaluate left to right in the caller's environment, fully,
	// before any rebinding (call by value).
	args := make([]runtime.Value, 0, len(argExprs))
	for _, argExpr := range argExprs {
		val, err := i.evaluateExpression(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	if len(args) != len(fn.Formals) {
		return nil, runtime.NewArityMismatchError(name, len(fn.Formals), len(args))
	}

	if i.depth >= i.maxDepth {
		return nil, runtime.NewStackExhaustionError(i.maxDepth)
	}
	i.depth++
	defer func() { i.depth-- }()

	// Swap to the declaration-time configuration, push the activation
	// frame, and guarantee the caller's view comes back no matter how the
	// body ends. Restore supersedes a missed PopScope on error paths.
	callerCfg := i.env.Snapshot()
	i.env.Restore(fn.Captured)
	i.env.PushScope()
	defer i.env.Restore(callerCfg)

	tracef("call %s/%d depth=%d", name, len(fn.Formals), i.depth)

	for idx, formal := range fn.Formals {
		if err := i.env.DeclareScalar(formal, args[idx]); err != nil {
			return nil, err
		}
	}

	comp, err := i.executeStatement(fn.Body)
	if err != nil {
		return nil, err
	}
	i.env.PopScope()

	if comp.kind == completionReturn {
		tracef("call %s returned", name)
		return comp.value, nil
	}
	tracef("call %s completed without return", name)
	return nil, nil
}
