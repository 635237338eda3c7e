package interpreter

import (
	"strings"
	"testing"

	"github.com/shubham1882003/plipy/pkg/ast"
	"github.com/shubham1882003/plipy/pkg/runtime"
)

func TestUndefinedSymbolInExpression(t *testing.T) {
	program := ast.Prog(ast.Put(ast.ID("ghost")))
	runExpectErrorKind(t, program, runtime.ErrUndefinedSymbol)
}

func TestAssignToUndeclaredVariable(t *testing.T) {
	program := ast.Prog(ast.Assign("ghost", ast.Int(1)))
	runExpectErrorKind(t, program, runtime.ErrUndefinedSymbol)
}

func TestGetIntoUndeclaredVariable(t *testing.T) {
	program := ast.Prog(ast.Get("ghost"))
	interp := New()
	interp.SetIO(&QueueIO{Inputs: []int64{5}})
	err := interp.EvaluateProgram(program)
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrUndefinedSymbol {
		t.Fatalf("expected undefined-symbol error, got %v", err)
	}
}

func TestDuplicateScalarDeclarationInSameFrame(t *testing.T) {
	program := ast.Prog(
		ast.Decl("x", ast.Int(1)),
		ast.Decl("x", ast.Int(2)),
	)
	runExpectErrorKind(t, program, runtime.ErrDuplicateDeclaration)
}

func TestDuplicateFunctionOverScalarDeclaration(t *testing.T) {
	program := ast.Prog(
		ast.Decl("f", ast.Int(1)),
		ast.Fn("f", nil, ast.Ret(ast.Int(0))),
	)
	runExpectErrorKind(t, program, runtime.ErrDuplicateDeclaration)
}

func TestCallingAScalarIsNotCallable(t *testing.T) {
	program := ast.Prog(
		ast.Decl("x", ast.Int(1)),
		ast.CallS("x"),
	)
	runExpectErrorKind(t, program, runtime.ErrNotCallable)
}

func TestCallingAnUndeclaredName(t *testing.T) {
	program := ast.Prog(ast.Put(ast.CallE("missing", ast.Int(1))))
	runExpectErrorKind(t, program, runtime.ErrUndefinedSymbol)
}

func TestArityMismatchEveryWrongCount(t *testing.T) {
	makeCall := func(args ...ast.Expression) *ast.Program {
		return ast.Prog(
			ast.Fn("pair", []string{"a", "b"}, ast.Ret(ast.Bin("+", ast.ID("a"), ast.ID("b")))),
			ast.Put(ast.CallE("pair", args...)),
		)
	}
	cases := map[string]*ast.Program{
		"zero args":  makeCall(),
		"one arg":    makeCall(ast.Int(1)),
		"three args": makeCall(ast.Int(1), ast.Int(2), ast.Int(3)),
	}
	for name, program := range cases {
		t.Run(name, func(t *testing.T) {
			runExpectErrorKind(t, program, runtime.ErrArityMismatch)
		})
	}
}

func TestArityMismatchMessageNamesFunctionAndCounts(t *testing.T) {
	program := ast.Prog(
		ast.Fn("pair", []string{"a", "b"}, ast.Ret(ast.Int(0))),
		ast.CallS("pair", ast.Int(1)),
	)
	interp := New()
	interp.SetIO(&QueueIO{})
	err := interp.EvaluateProgram(program)
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if !strings.Contains(err.Error(), "'pair' expects 2 arguments, got 1") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestActualsEvaluateBeforeArityCheck(t *testing.T) {
	// The single actual blows up during evaluation, so that failure wins
	// over the arity complaint that would otherwise follow.
	program := ast.Prog(
		ast.Fn("pair", []string{"a", "b"}, ast.Ret(ast.Int(0))),
		ast.CallS("pair", ast.Bin("/", ast.Int(1), ast.Int(0))),
	)
	runExpectErrorKind(t, program, runtime.ErrDivisionByZero)
}

func TestVoidResultInExpressionPosition(t *testing.T) {
	program := ast.Prog(
		ast.Fn("noop", nil, ast.Put(ast.Int(9))),
		ast.Put(ast.CallE("noop")),
	)
	runExpectErrorKind(t, program, runtime.ErrVoidValueInExpression)
}

func TestBareReturnYieldsNoValue(t *testing.T) {
	program := ast.Prog(
		ast.Fn("quit", nil, ast.Ret(nil)),
		ast.Decl("x", ast.CallE("quit")),
	)
	runExpectErrorKind(t, program, runtime.ErrVoidValueInExpression)
}

func TestDivisionByZero(t *testing.T) {
	program := ast.Prog(ast.Put(ast.Bin("/", ast.Int(10), ast.Int(0))))
	runExpectErrorKind(t, program, runtime.ErrDivisionByZero)
}

func TestRunawayRecursionHitsDepthLimit(t *testing.T) {
	program := ast.Prog(
		ast.Fn("loop", nil, ast.Ret(ast.CallE("loop"))),
		ast.CallS("loop"),
	)
	interp := New()
	interp.SetIO(&QueueIO{})
	interp.SetMaxCallDepth(32)
	err := interp.EvaluateProgram(program)
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrStackExhaustion {
		t.Fatalf("expected stack-exhaustion error, got %v", err)
	}
	if !strings.Contains(err.Error(), "max 32") {
		t.Fatalf("expected the limit in the message, got %v", err)
	}
}

func TestAssignToFunctionName(t *testing.T) {
	program := ast.Prog(
		ast.Fn("f", nil, ast.Ret(ast.Int(0))),
		ast.Assign("f", ast.Int(1)),
	)
	runExpectErrorKind(t, program, runtime.ErrTypeMismatch)
}

func TestFunctionNameUsedAsScalar(t *testing.T) {
	program := ast.Prog(
		ast.Fn("f", nil, ast.Ret(ast.Int(0))),
		ast.Put(ast.ID("f")),
	)
	runExpectErrorKind(t, program, runtime.ErrTypeMismatch)
}

func TestCallerEnvironmentSurvivesFailedCall(t *testing.T) {
	interp := New()
	interp.SetIO(&QueueIO{})
	program := ast.Prog(
		ast.Decl("x", ast.Int(7)),
		ast.Fn("boom", nil, ast.Ret(ast.Bin("/", ast.Int(1), ast.Int(0)))),
		ast.Put(ast.CallE("boom")),
	)
	err := interp.EvaluateProgram(program)
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrDivisionByZero {
		t.Fatalf("expected division-by-zero error, got %v", err)
	}
	env := interp.Environment()
	if depth := env.Depth(); depth != 1 {
		t.Fatalf("expected the caller configuration back, got depth %d", depth)
	}
	val, lookupErr := env.Lookup("x")
	if lookupErr != nil {
		t.Fatalf("caller binding lost after failed call: %v", lookupErr)
	}
	intVal, ok := val.(runtime.IntegerValue)
	if !ok || intVal.Val != 7 {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestErrorDeepInCalleeStillRestoresCaller(t *testing.T) {
	// The failure happens three activations down; every intermediate call
	// unwinds through its deferred restore.
	interp := New()
	interp.SetIO(&QueueIO{})
	program := ast.Prog(
		ast.Fn("c", nil, ast.Ret(ast.ID("nowhere"))),
		ast.Fn("b", nil, ast.Ret(ast.CallE("c"))),
		ast.Fn("a", nil, ast.Ret(ast.CallE("b"))),
		ast.CallS("a"),
	)
	err := interp.EvaluateProgram(program)
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrUndefinedSymbol {
		t.Fatalf("expected undefined-symbol error, got %v", err)
	}
	if depth := interp.Environment().Depth(); depth != 1 {
		t.Fatalf("expected the caller configuration back, got depth %d", depth)
	}
}

func TestShadowingInNestedScopeIsNotADuplicate(t *testing.T) {
	program := ast.Prog(
		ast.Decl("x", ast.Int(1)),
		ast.Block(
			ast.Decl("x", ast.Int(2)),
		),
		ast.Fn("f", []string{"x"}, ast.Ret(ast.ID("x"))),
		ast.Put(ast.CallE("f", ast.Int(3))),
	)
	runExpectOutputs(t, program, []int64{3})
}
