package repl

import (
	"strings"
	"testing"

	cv "github.com/glycerine/goconvey/convey"

	"github.com/shubham1882003/plipy/pkg/interpreter"
	"github.com/shubham1882003/plipy/pkg/parser"
)

func Test001ContinuationDetection(t *testing.T) {

	cv.Convey(`Given a partially typed line, isBalanced should tell the prompt loop whether to keep reading`, t, func() {

		cases := []struct {
			line string
			want bool
		}{
			{"", true},
			{"put 1;", true},
			{"declare f(a, b) {", false},
			{"declare f(a) { return a; }", true},
			{"while (n", false},
			{"if (x == 1) { put 1; } else {", false},
			{"}", true},
			{"put (1 + 2) * 3;", true},
		}
		for _, c := range cases {
			cv.So(isBalanced(c.line), cv.ShouldEqual, c.want)
		}
	})
}

func Test002ConfigFlagParsing(t *testing.T) {

	cv.Convey(`Given command line flags, the Config should carry them into the session`, t, func() {

		cfg := NewConfig("cuppa3")
		cfg.DefineFlags()
		err := cfg.Flags.Parse([]string{"-trace", "-maxdepth", "64", "-e", "put 1;", "prog.cuppa"})
		cv.So(err, cv.ShouldBeNil)
		cv.So(cfg.Trace, cv.ShouldEqual, true)
		cv.So(cfg.MaxCallDepth, cv.ShouldEqual, 64)
		cv.So(cfg.Expr, cv.ShouldEqual, "put 1;")
		cv.So(cfg.Flags.Args(), cv.ShouldResemble, []string{"prog.cuppa"})

		cv.Convey(`and ValidateConfig should reject a negative call depth`, func() {
			cv.So(cfg.ValidateConfig(), cv.ShouldBeNil)
			cfg.MaxCallDepth = -1
			cv.So(cfg.ValidateConfig(), cv.ShouldNotBeNil)
		})
	})
}

func Test003ColonCommands(t *testing.T) {

	cv.Convey(`Given a running session, the colon commands should control it without touching the language`, t, func() {

		cfg := NewConfig("cuppa3")
		cfg.DefineFlags()
		interp := interpreter.New()

		cv.Convey(`:quit should stop the loop`, func() {
			cv.So(processCommand(interp, cfg, ":quit"), cv.ShouldEqual, false)
		})

		cv.Convey(`:trace should toggle tracing on and back off`, func() {
			prev := interpreter.Verbose
			defer func() { interpreter.Verbose = prev }()

			interpreter.Verbose = false
			cv.So(processCommand(interp, cfg, ":trace"), cv.ShouldEqual, true)
			cv.So(interpreter.Verbose, cv.ShouldEqual, true)
			cv.So(processCommand(interp, cfg, ":trace"), cv.ShouldEqual, true)
			cv.So(interpreter.Verbose, cv.ShouldEqual, false)
		})

		cv.Convey(`:reset should discard every declared name`, func() {
			program, err := parser.ParseProgram("declare x = 5;")
			cv.So(err, cv.ShouldBeNil)
			cv.So(interp.EvaluateProgram(program), cv.ShouldBeNil)
			_, err = interp.Environment().Lookup("x")
			cv.So(err, cv.ShouldBeNil)

			cv.So(processCommand(interp, cfg, ":reset"), cv.ShouldEqual, true)
			_, err = interp.Environment().Lookup("x")
			cv.So(err, cv.ShouldNotBeNil)
		})
	})
}

func Test004HistoryFileLocation(t *testing.T) {

	cv.Convey(`The prompt history should live in a dotfile named after the tool`, t, func() {
		cv.So(strings.HasSuffix(historyPath(), ".cuppa3hist"), cv.ShouldEqual, true)
	})
}
