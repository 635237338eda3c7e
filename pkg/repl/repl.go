// Package repl implements the interactive cuppa3 session: a liner-backed
// prompt feeding statements and expressions to one persistent interpreter.
package repl

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/shurcooL/go-goon"

	"github.com/shubham1882003/plipy/pkg/ast"
	"github.com/shubham1882003/plipy/pkg/driver"
	"github.com/shubham1882003/plipy/pkg/interpreter"
	"github.com/shubham1882003/plipy/pkg/parser"
	"github.com/shubham1882003/plipy/pkg/runtime"
)

// Version identifies the interpreter release in the repl banner and the
// CLI version output.
const Version = "v1.0.0"

var continuationPrompt = ">> "

// isBalanced reports whether every '(' and '{' has closed again.
// Overclosed input counts as balanced so the parser gets to report it. It
// does not track comment state, so an unbalanced paren inside a comment
// keeps the continuation prompt going.
func isBalanced(str string) bool {
	parens := 0
	braces := 0

	for _, c := range str {
		switch c {
		case '(':
			parens++
		case ')':
			parens--
		case '{':
			braces++
		case '}':
			braces--
		}
	}

	return parens <= 0 && braces <= 0
}

func (pr *Prompter) getExpressionWithLiner() (string, error) {
	line, err := pr.Getline(nil)
	if err != nil {
		return "", err
	}

	for !isBalanced(line) {
		nextline, err := pr.Getline(&continuationPrompt)
		if err != nil {
			return "", err
		}
		line += "\n" + nextline
	}
	return line, nil
}

// Repl runs the interactive loop against one persistent interpreter until
// :quit or end of input.
func Repl(interp *interpreter.Interpreter, cfg *Config) {
	fmt.Printf("cuppa3 version %s\n", Version)
	fmt.Printf("press tab (repeatedly) to get completion suggestions.\n")
	pr := NewPrompter()
	defer pr.Close()

	for {
		line, err := pr.getExpressionWithLiner()
		if err == io.EOF {
			fmt.Println()
			break
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if processCommand(interp, cfg, trimmed) {
				break
			}
			continue
		}

		evalLine(interp, line)
	}
}

// evalLine evaluates one submitted chunk. Statements run against the
// session environment; a line that only parses as a bare expression is
// evaluated and its value printed. A single bare call prints its value too,
// when it produced one.
func evalLine(interp *interpreter.Interpreter, line string) {
	program, perr := parser.ParseProgram(line)
	if perr == nil {
		if len(program.Statements) == 1 {
			if call, ok := program.Statements[0].(*ast.CallStatement); ok {
				printValue(interp.EvaluateCall(call.Callee, call.Arguments))
				return
			}
		}
		if err := interp.EvaluateProgram(program); err != nil {
			fmt.Println(driver.DescribeError("", err))
		}
		return
	}

	expr, eerr := parser.ParseExpression(line)
	if eerr != nil {
		fmt.Println(driver.DescribeError("", perr))
		return
	}
	val, err := interp.EvaluateExpression(expr)
	if err != nil {
		fmt.Println(driver.DescribeError("", err))
		return
	}
	fmt.Println(val)
}

func printValue(val runtime.Value, err error) {
	if err != nil {
		fmt.Println(driver.DescribeError("", err))
		return
	}
	if val != nil {
		fmt.Println(val)
	}
}

// processCommand handles one colon command, reporting whether the session
// should end.
func processCommand(interp *interpreter.Interpreter, cfg *Config, line string) bool {
	parts := strings.Fields(line)
	cmd := parts[0]
	rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

	switch cmd {
	case ":quit":
		return true
	case ":help":
		printHelp()
	case ":trace":
		interpreter.Verbose = !interpreter.Verbose
		if interpreter.Verbose {
			fmt.Println("trace on")
		} else {
			fmt.Println("trace off")
		}
	case ":reset":
		fresh := interpreter.New()
		if cfg.MaxCallDepth > 0 {
			fresh.SetMaxCallDepth(cfg.MaxCallDepth)
		}
		*interp = *fresh
		fmt.Println("session reset")
	case ":env":
		dumpEnvironment(interp)
	case ":ast":
		if rest == "" {
			fmt.Println("usage: :ast <source>")
			break
		}
		dumpTree(rest)
	default:
		fmt.Printf("unknown command %s (try :help)\n", cmd)
	}
	return false
}

func printHelp() {
	fmt.Print(`commands:
  :ast <source>   print the syntax tree of a statement or expression
  :env            list the bindings of each scope frame
  :trace          toggle the evaluator trace
  :reset          discard the session and start a fresh one
  :help           show this help
  :quit           leave the repl
`)
}

// dumpEnvironment prints the declared names per frame, innermost first.
func dumpEnvironment(interp *interpreter.Interpreter) {
	env := interp.Environment()
	for level, names := range env.FrameKeys() {
		fmt.Printf("frame %d:\n", level)
		for _, name := range names {
			val, err := env.Lookup(name)
			if err != nil {
				continue
			}
			fmt.Printf("  %s = %v\n", name, val)
		}
	}
}

// dumpTree parses source and pretty prints the tree, trying a bare
// expression when it is not a whole program.
func dumpTree(source string) {
	if program, err := parser.ParseProgram(source); err == nil {
		goon.Dump(program)
		return
	}
	expr, err := parser.ParseExpression(source)
	if err != nil {
		fmt.Println(driver.DescribeError("", err))
		return
	}
	goon.Dump(expr)
}

// runScript executes a source file against the session, then either exits
// or drops into the repl on failure, matching the exitonfail flag.
func runScript(interp *interpreter.Interpreter, fname string, cfg *Config) {
	data, err := os.ReadFile(fname)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	runSource(interp, string(data), fname, cfg)
}

func runSource(interp *interpreter.Interpreter, source, name string, cfg *Config) {
	program, err := driver.Compile(source)
	if err != nil {
		fmt.Println(driver.DescribeError(name, err))
		os.Exit(-1)
	}

	if err := interp.EvaluateProgram(program); err != nil {
		fmt.Println(driver.DescribeError(name, err))
		if cfg.ExitOnFailure {
			os.Exit(-1)
		}
		Repl(interp, cfg)
	}
}

// ReplMain is the repl subcommand entrypoint: profiling setup, then either
// script mode or the interactive loop.
func ReplMain(cfg *Config) {
	interp := interpreter.New()
	if cfg.MaxCallDepth > 0 {
		interp.SetMaxCallDepth(cfg.MaxCallDepth)
	}
	if cfg.Trace {
		interpreter.Verbose = true
	}

	if cfg.CpuProfile != "" {
		f, err := os.Create(cfg.CpuProfile)
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
		defer pprof.StopCPUProfile()
	}

	args := cfg.Flags.Args()
	switch {
	case cfg.Expr != "":
		runSource(interp, cfg.Expr, "<expr>", cfg)
	case len(args) > 0:
		runScript(interp, args[0], cfg)
	default:
		Repl(interp, cfg)
	}

	if cfg.MemProfile != "" {
		f, err := os.Create(cfg.MemProfile)
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
		defer f.Close()

		err = pprof.Lookup("heap").WriteTo(f, 1)
		if err != nil {
			fmt.Println(err)
			os.Exit(-1)
		}
	}
}
