// Package driver wires the Cuppa3 front end and interpreter into one
// pipeline shared by the CLI, the fixture harness and tests. It also loads
// the YAML run manifests that describe fixture programs and their expected
// behaviour.
package driver

import (
	"errors"
	"fmt"
	"os"

	"github.com/shubham1882003/plipy/pkg/ast"
	"github.com/shubham1882003/plipy/pkg/interpreter"
	"github.com/shubham1882003/plipy/pkg/parser"
)

// Options configures a single program run.
type Options struct {
	// MaxCallDepth overrides the interpreter recursion guard when positive.
	MaxCallDepth int
	// Trace turns the timestamped evaluator trace on for the run and turns
	// it back off afterwards.
	Trace bool
}

// Compile parses Cuppa3 source into a program AST. Errors are the parser's
// own; use DescribeError to render them with a source label.
func Compile(source string) (*ast.Program, error) {
	return parser.ParseProgram(source)
}

// Run executes a compiled program against a fresh interpreter with the
// supplied I/O collaborator.
func Run(program *ast.Program, io interpreter.IO, opts Options) error {
	interp := interpreter.New()
	interp.SetIO(io)
	if opts.MaxCallDepth > 0 {
		interp.SetMaxCallDepth(opts.MaxCallDepth)
	}
	if opts.Trace {
		prev := interpreter.Verbose
		interpreter.Verbose = true
		defer func() { interpreter.Verbose = prev }()
	}
	return interp.EvaluateProgram(program)
}

// RunSource compiles and runs source in one step.
func RunSource(source string, io interpreter.IO, opts Options) error {
	program, err := Compile(source)
	if err != nil {
		return err
	}
	return Run(program, io, opts)
}

// RunFile loads a program from disk and runs it.
func RunFile(path string, io interpreter.IO, opts Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("driver: read %s: %w", path, err)
	}
	return RunSource(string(data), io, opts)
}

// DescribeError renders err for CLI output. Syntax errors become
// "name:line:col: message"; everything else is prefixed with the source
// label alone.
func DescribeError(name string, err error) string {
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		if name != "" {
			return fmt.Sprintf("%s:%d:%d: %s", name, serr.Line, serr.Col, serr.Msg)
		}
		return serr.Error()
	}
	if name != "" {
		return fmt.Sprintf("%s: %v", name, err)
	}
	return err.Error()
}
