package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/shurcooL/go-goon"

	"github.com/shubham1882003/plipy/pkg/ast"
	"github.com/shubham1882003/plipy/pkg/astio"
	"github.com/shubham1882003/plipy/pkg/driver"
	"github.com/shubham1882003/plipy/pkg/interpreter"
	"github.com/shubham1882003/plipy/pkg/repl"
)

const cliToolVersion = "cuppa3 " + repl.Version

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return runRepl(nil)
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runProgram(args[1:])
	case "check":
		return runCheck(args[1:])
	case "dump":
		return runDump(args[1:])
	case "export":
		return runExport(args[1:])
	case "repl":
		return runRepl(args[1:])
	default:
		// A bare source path runs directly.
		return runProgram(args)
	}
}

func runRepl(args []string) int {
	cfg := repl.NewConfig("cuppa3 repl")
	cfg.DefineFlags()
	if err := cfg.Flags.Parse(args); err != nil {
		return 1
	}
	if err := cfg.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	repl.ReplMain(cfg)
	return 0
}

func runProgram(args []string) int {
	cfg := repl.NewConfig("cuppa3 run")
	cfg.DefineFlags()
	if err := cfg.Flags.Parse(args); err != nil {
		return 1
	}
	if err := cfg.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	rest := cfg.Flags.Args()
	var source, name string
	switch {
	case cfg.Expr != "":
		if len(rest) > 0 {
			fmt.Fprintln(os.Stderr, "cuppa3 run takes either -e or a source file, not both")
			return 1
		}
		source, name = cfg.Expr, "<expr>"
	case len(rest) == 1:
		data, err := os.ReadFile(rest[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		source, name = string(data), rest[0]
	default:
		fmt.Fprintln(os.Stderr, "cuppa3 run requires one source file or -e <src>")
		return 1
	}

	if cfg.CpuProfile != "" {
		f, err := os.Create(cfg.CpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	runErr := driver.RunSource(source, interpreter.NewStdIO(nil, nil), driver.Options{
		MaxCallDepth: cfg.MaxCallDepth,
		Trace:        cfg.Trace,
	})

	if cfg.MemProfile != "" {
		f, err := os.Create(cfg.MemProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		defer f.Close()
		if err := pprof.Lookup("heap").WriteTo(f, 1); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", driver.DescribeError(name, runErr))
		return 1
	}
	return 0
}

func runCheck(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "cuppa3 check requires one manifest path")
		return 1
	}
	results, err := driver.RunManifest(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stdout, "FAIL %s: %v\n", res.Case.Name, res.Err)
		} else {
			fmt.Fprintf(os.Stdout, "ok   %s\n", res.Case.Name)
		}
	}
	fmt.Fprintf(os.Stdout, "%d cases, %d failed\n", len(results), failed)
	if failed > 0 {
		return 1
	}
	return 0
}

func runDump(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "cuppa3 dump requires one source file")
		return 1
	}
	program, code := compileFile(args[0])
	if code != 0 {
		return code
	}
	goon.Dump(program)
	return 0
}

func runExport(args []string) int {
	fs := flag.NewFlagSet("cuppa3 export", flag.ExitOnError)
	format := fs.String("format", "json", "output encoding: json or msgpack")
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "cuppa3 export requires one source file")
		return 1
	}

	program, code := compileFile(rest[0])
	if code != 0 {
		return code
	}

	var data []byte
	var err error
	switch *format {
	case "json":
		data, err = astio.EncodeJSON(program)
	case "msgpack":
		data, err = astio.EncodeMsgpack(program)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (want json or msgpack)\n", *format)
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	if *out == "" {
		os.Stdout.Write(data)
		if *format == "json" {
			fmt.Println()
		}
		return 0
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

func compileFile(path string) (*ast.Program, int) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return nil, 1
	}
	program, err := driver.Compile(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", driver.DescribeError(path, err))
		return nil, 1
	}
	return program, 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  cuppa3 run [-e <src>] [-trace] [-maxdepth n] <file.cuppa>")
	fmt.Fprintln(os.Stderr, "  cuppa3 check <manifest.yaml>")
	fmt.Fprintln(os.Stderr, "  cuppa3 dump <file.cuppa>")
	fmt.Fprintln(os.Stderr, "  cuppa3 export [-format json|msgpack] [-o out] <file.cuppa>")
	fmt.Fprintln(os.Stderr, "  cuppa3 repl [script.cuppa]")
	fmt.Fprintln(os.Stderr, "  cuppa3 <file.cuppa>")
}
