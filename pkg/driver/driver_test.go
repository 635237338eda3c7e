package driver

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shubham1882003/plipy/pkg/interpreter"
	"github.com/shubham1882003/plipy/pkg/parser"
	"github.com/shubham1882003/plipy/pkg/runtime"
)

func TestRunSourceCollectsOutputs(t *testing.T) {
	qio := &interpreter.QueueIO{Inputs: []int64{20}}
	err := RunSource(`
declare x;
get x;
put x + x + 2;
`, qio, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qio.Outputs) != 1 || qio.Outputs[0] != 42 {
		t.Fatalf("outputs = %v, want [42]", qio.Outputs)
	}
}

func TestRunHonorsMaxCallDepth(t *testing.T) {
	qio := &interpreter.QueueIO{}
	err := RunSource("declare spin(n) return spin(n + 1); put spin(0);", qio, Options{MaxCallDepth: 16})
	if err == nil {
		t.Fatalf("expected stack exhaustion")
	}
	kind, ok := runtime.KindOf(err)
	if !ok || kind != runtime.ErrStackExhaustion {
		t.Fatalf("kind = %v (ok=%v), want stack-exhaustion", kind, ok)
	}
}

func TestRunTraceTogglesBackOff(t *testing.T) {
	if interpreter.Verbose {
		t.Fatalf("trace should start off")
	}
	qio := &interpreter.QueueIO{}
	if err := RunSource("put 1;", qio, Options{Trace: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if interpreter.Verbose {
		t.Fatalf("trace should be restored after the run")
	}
}

func TestRunFileMissing(t *testing.T) {
	qio := &interpreter.QueueIO{}
	err := RunFile(filepath.Join(t.TempDir(), "nope.cuppa"), qio, Options{})
	if err == nil {
		t.Fatalf("expected read error")
	}
}

func TestCompileSurfacesSyntaxErrors(t *testing.T) {
	_, err := Compile("put (1 + 2;")
	if err == nil {
		t.Fatalf("expected syntax error")
	}
	var serr *parser.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *parser.SyntaxError, got %T: %v", err, err)
	}
	if serr.Line != 1 || serr.Col != 11 {
		t.Fatalf("position = %d:%d, want 1:11", serr.Line, serr.Col)
	}
}

func TestDescribeErrorFormatsSyntaxPosition(t *testing.T) {
	_, err := Compile("put (1 + 2;")
	if err == nil {
		t.Fatalf("expected syntax error")
	}
	got := DescribeError("main.cuppa", err)
	want := "main.cuppa:1:11: expected ')', got ';'"
	if got != want {
		t.Fatalf("DescribeError = %q, want %q", got, want)
	}
}

func TestDescribeErrorPrefixesRuntimeErrors(t *testing.T) {
	qio := &interpreter.QueueIO{}
	err := RunSource("put 1 / 0;", qio, Options{})
	if err == nil {
		t.Fatalf("expected division error")
	}
	got := DescribeError("prog.cuppa", err)
	want := "prog.cuppa: division by zero"
	if got != want {
		t.Fatalf("DescribeError = %q, want %q", got, want)
	}
	if plain := DescribeError("", err); plain != "division by zero" {
		t.Fatalf("unlabelled DescribeError = %q", plain)
	}
}
