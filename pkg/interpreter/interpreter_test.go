package interpreter

import (
	"reflect"
	"testing"

	"github.com/shubham1882003/plipy/pkg/ast"
	"github.com/shubham1882003/plipy/pkg/runtime"
)

func runExpectOutputs(t *testing.T, program *ast.Program, want []int64) {
	t.Helper()
	qio := &QueueIO{}
	interp := New()
	interp.SetIO(qio)
	if err := interp.EvaluateProgram(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(qio.Outputs, want) {
		t.Fatalf("unexpected outputs %v, want %v", qio.Outputs, want)
	}
}

func runExpectErrorKind(t *testing.T, program *ast.Program, kind runtime.ErrorKind) {
	t.Helper()
	interp := New()
	interp.SetIO(&QueueIO{})
	err := interp.EvaluateProgram(program)
	if err == nil {
		t.Fatalf("expected %s error, got none", kind)
	}
	got, ok := runtime.KindOf(err)
	if !ok {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
	if got != kind {
		t.Fatalf("expected %s error, got %s (%v)", kind, got, err)
	}
}

// declare fact(x) { if (x <= 1) return 1; else return x * fact(x - 1); }
func factDecl() *ast.DeclareFunction {
	return ast.Fn("fact", []string{"x"},
		ast.If(
			ast.Bin("<=", ast.ID("x"), ast.Int(1)),
			ast.Ret(ast.Int(1)),
			ast.Ret(ast.Bin("*", ast.ID("x"), ast.CallE("fact", ast.Bin("-", ast.ID("x"), ast.Int(1))))),
		),
	)
}

func TestFactorialRecursion(t *testing.T) {
	program := ast.Prog(
		factDecl(),
		ast.Put(ast.CallE("fact", ast.Int(5))),
	)
	runExpectOutputs(t, program, []int64{120})
}

func TestStaticScopingUsesDeclarationContext(t *testing.T) {
	// declare step = 10;
	// declare inc(x) { return x + step; }
	// { declare step = 2; put inc(5); }
	// A result of 7 would mean the call resolved step dynamically.
	program := ast.Prog(
		ast.Decl("step", ast.Int(10)),
		ast.Fn("inc", []string{"x"}, ast.Ret(ast.Bin("+", ast.ID("x"), ast.ID("step")))),
		ast.Block(
			ast.Decl("step", ast.Int(2)),
			ast.Put(ast.CallE("inc", ast.Int(5))),
		),
	)
	runExpectOutputs(t, program, []int64{15})
}

func TestClosureSeesMutationAfterDeclaration(t *testing.T) {
	// The captured chain shares frames with the live environment, so an
	// assignment after the declaration is visible at call time.
	program := ast.Prog(
		ast.Decl("base", ast.Int(1)),
		ast.Fn("read", nil, ast.Ret(ast.ID("base"))),
		ast.Assign("base", ast.Int(42)),
		ast.Put(ast.CallE("read")),
	)
	runExpectOutputs(t, program, []int64{42})
}

func TestNestedFunctionCapturesEnclosingActivation(t *testing.T) {
	// declare outer(a) { declare inner(b) { return a + b; } return inner(5); }
	program := ast.Prog(
		ast.Fn("outer", []string{"a"},
			ast.Fn("inner", []string{"b"}, ast.Ret(ast.Bin("+", ast.ID("a"), ast.ID("b")))),
			ast.Ret(ast.CallE("inner", ast.Int(5))),
		),
		ast.Put(ast.CallE("outer", ast.Int(10))),
	)
	runExpectOutputs(t, program, []int64{15})
}

func TestMutualRecursionThroughSharedGlobalFrame(t *testing.T) {
	// odd is declared after even, yet even's body finds it: the captured
	// snapshot references the global frame itself, not a copy of it.
	program := ast.Prog(
		ast.Fn("even", []string{"n"},
			ast.If(ast.Bin("==", ast.ID("n"), ast.Int(0)),
				ast.Ret(ast.Int(1)),
				ast.Ret(ast.CallE("odd", ast.Bin("-", ast.ID("n"), ast.Int(1))))),
		),
		ast.Fn("odd", []string{"n"},
			ast.If(ast.Bin("==", ast.ID("n"), ast.Int(0)),
				ast.Ret(ast.Int(0)),
				ast.Ret(ast.CallE("even", ast.Bin("-", ast.ID("n"), ast.Int(1))))),
		),
		ast.Put(ast.CallE("even", ast.Int(10))),
		ast.Put(ast.CallE("even", ast.Int(7))),
	)
	runExpectOutputs(t, program, []int64{1, 0})
}

func TestIterativeAndRecursiveAccumulationAgree(t *testing.T) {
	// seqsum with a multiplicative accumulator computes the same 120 the
	// recursive factorial does for n = 5.
	program := ast.Prog(
		factDecl(),
		ast.Fn("seqsum", []string{"n"},
			ast.Decl("acc", ast.Int(1)),
			ast.Decl("i", ast.Int(1)),
			ast.While(ast.Bin("<=", ast.ID("i"), ast.ID("n")),
				ast.Assign("acc", ast.Bin("*", ast.ID("acc"), ast.ID("i"))),
				ast.Assign("i", ast.Bin("+", ast.ID("i"), ast.Int(1))),
			),
			ast.Ret(ast.ID("acc")),
		),
		ast.Put(ast.CallE("fact", ast.Int(5))),
		ast.Put(ast.CallE("seqsum", ast.Int(5))),
	)
	runExpectOutputs(t, program, []int64{120, 120})
}

func TestBlockShadowingRestoresOuterBinding(t *testing.T) {
	program := ast.Prog(
		ast.Decl("x", ast.Int(1)),
		ast.Block(
			ast.Decl("x", ast.Int(2)),
			ast.Put(ast.ID("x")),
		),
		ast.Put(ast.ID("x")),
	)
	runExpectOutputs(t, program, []int64{2, 1})
}

func TestDeclareWithoutInitializerDefaultsToZero(t *testing.T) {
	program := ast.Prog(
		ast.Decl("v", nil),
		ast.Put(ast.ID("v")),
	)
	runExpectOutputs(t, program, []int64{0})
}

func TestWhileRunsZeroTimesOnFalseCondition(t *testing.T) {
	program := ast.Prog(
		ast.Decl("n", ast.Int(0)),
		ast.While(ast.ID("n"),
			ast.Put(ast.Int(99)),
		),
		ast.Put(ast.Int(1)),
	)
	runExpectOutputs(t, program, []int64{1})
}

func TestUnaryAndComparisonOperators(t *testing.T) {
	program := ast.Prog(
		ast.Decl("x", ast.Int(7)),
		ast.Put(ast.Neg(ast.ID("x"))),
		ast.Put(ast.Not(ast.ID("x"))),
		ast.Put(ast.Not(ast.Int(0))),
		ast.Put(ast.Bin("==", ast.Int(3), ast.Int(3))),
		ast.Put(ast.Bin("==", ast.Int(3), ast.Int(4))),
		ast.Put(ast.Bin("<=", ast.Int(3), ast.Int(4))),
		ast.Put(ast.Bin("<=", ast.Int(4), ast.Int(3))),
	)
	runExpectOutputs(t, program, []int64{-7, 0, 1, 1, 0, 1, 0})
}

func TestIntegerDivisionTruncatesTowardZero(t *testing.T) {
	program := ast.Prog(
		ast.Put(ast.Bin("/", ast.Int(7), ast.Int(2))),
		ast.Put(ast.Bin("/", ast.Neg(ast.Int(7)), ast.Int(2))),
	)
	runExpectOutputs(t, program, []int64{3, -3})
}

func TestGetStoresInputIntoDeclaredVariable(t *testing.T) {
	program := ast.Prog(
		ast.Decl("x", nil),
		ast.Get("x"),
		ast.Put(ast.Bin("+", ast.ID("x"), ast.Int(1))),
	)
	qio := &QueueIO{Inputs: []int64{41}}
	interp := New()
	interp.SetIO(qio)
	if err := interp.EvaluateProgram(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(qio.Outputs, []int64{42}) {
		t.Fatalf("unexpected outputs %v", qio.Outputs)
	}
}

func TestReturnSkipsRemainingStatementsInCallOnly(t *testing.T) {
	// The return exits read's body from inside a nested block and loop,
	// but the caller's statement sequence continues normally.
	program := ast.Prog(
		ast.Fn("read", []string{"n"},
			ast.While(ast.Int(1),
				ast.Block(
					ast.Ret(ast.ID("n")),
				),
			),
			ast.Put(ast.Int(99)),
		),
		ast.Put(ast.CallE("read", ast.Int(7))),
		ast.Put(ast.Int(1)),
	)
	runExpectOutputs(t, program, []int64{7, 1})
}

func TestTopLevelReturnEndsTheRun(t *testing.T) {
	program := ast.Prog(
		ast.Put(ast.Int(1)),
		ast.Ret(nil),
		ast.Put(ast.Int(2)),
	)
	runExpectOutputs(t, program, []int64{1})
}

func TestValuelessCallAsStatementIsFine(t *testing.T) {
	program := ast.Prog(
		ast.Decl("hits", ast.Int(0)),
		ast.Fn("bump", nil,
			ast.Assign("hits", ast.Bin("+", ast.ID("hits"), ast.Int(1))),
		),
		ast.CallS("bump"),
		ast.CallS("bump"),
		ast.Put(ast.ID("hits")),
	)
	runExpectOutputs(t, program, []int64{2})
}

func TestRecursiveCallsGetDistinctActivationFrames(t *testing.T) {
	// Each activation declares its own saved copy; if activations shared a
	// frame the inner call would clobber the outer value before the return.
	program := ast.Prog(
		ast.Fn("probe", []string{"x"},
			ast.If(ast.Bin("<=", ast.ID("x"), ast.Int(0)),
				ast.Ret(ast.Int(0)),
				ast.Block(
					ast.Decl("saved", ast.ID("x")),
					ast.CallS("probe", ast.Bin("-", ast.ID("x"), ast.Int(1))),
					ast.Ret(ast.ID("saved")),
				),
			),
		),
		ast.Put(ast.CallE("probe", ast.Int(3))),
	)
	runExpectOutputs(t, program, []int64{3})
}

func TestEnvironmentDepthRestoredAroundCalls(t *testing.T) {
	interp := New()
	interp.SetIO(&QueueIO{})
	program := ast.Prog(
		factDecl(),
		ast.Put(ast.CallE("fact", ast.Int(6))),
	)
	if err := interp.EvaluateProgram(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if depth := interp.Environment().Depth(); depth != 1 {
		t.Fatalf("expected only the global frame after the run, got depth %d", depth)
	}
}

func TestEvaluateExpressionAgainstSession(t *testing.T) {
	interp := New()
	interp.SetIO(&QueueIO{})
	if err := interp.EvaluateProgram(ast.Prog(ast.Decl("x", ast.Int(20)))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, err := interp.EvaluateExpression(ast.Bin("+", ast.ID("x"), ast.Int(2)))
	if err != nil {
		t.Fatalf("expression evaluation failed: %v", err)
	}
	intVal, ok := val.(runtime.IntegerValue)
	if !ok || intVal.Val != 22 {
		t.Fatalf("unexpected value %#v", val)
	}
}
